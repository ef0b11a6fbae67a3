package catalog

import (
	"context"
	"errors"

	catalogdomain "mealpoll-go/internal/domain/catalog"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type foodSide struct {
	FoodID uint `gorm:"primaryKey"`
	SideID uint `gorm:"primaryKey"`
}

func (foodSide) TableName() string {
	return "food_sides"
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(catalogdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListMealTypes(ctx context.Context) ([]catalogdomain.MealType, error) {
	var mealTypes []catalogdomain.MealType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&mealTypes).Error; err != nil {
		return nil, err
	}
	return mealTypes, nil
}

func (r *PostgresRepository) ListDrinks(ctx context.Context) ([]catalogdomain.Drink, error) {
	var drinks []catalogdomain.Drink
	if err := r.db.WithContext(ctx).Order("label asc").Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *PostgresRepository) ListFoods(ctx context.Context) ([]catalogdomain.Food, error) {
	var foods []catalogdomain.Food
	if err := r.db.WithContext(ctx).
		Preload("Sides", func(db *gorm.DB) *gorm.DB { return db.Order("sides.label asc") }).
		Order("label asc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *PostgresRepository) ListSides(ctx context.Context) ([]catalogdomain.Side, error) {
	var sides []catalogdomain.Side
	if err := r.db.WithContext(ctx).Order("label asc").Find(&sides).Error; err != nil {
		return nil, err
	}
	return sides, nil
}

func (r *PostgresRepository) GetMealType(ctx context.Context, id uint) (*catalogdomain.MealType, error) {
	var mealType catalogdomain.MealType
	if err := r.db.WithContext(ctx).First(&mealType, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &mealType, nil
}

func (r *PostgresRepository) GetDrink(ctx context.Context, id uint) (*catalogdomain.Drink, error) {
	var drink catalogdomain.Drink
	if err := r.db.WithContext(ctx).First(&drink, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &drink, nil
}

func (r *PostgresRepository) GetFood(ctx context.Context, id uint) (*catalogdomain.Food, error) {
	var food catalogdomain.Food
	if err := r.db.WithContext(ctx).First(&food, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &food, nil
}

func (r *PostgresRepository) GetSide(ctx context.Context, id uint) (*catalogdomain.Side, error) {
	var side catalogdomain.Side
	if err := r.db.WithContext(ctx).First(&side, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &side, nil
}

func (r *PostgresRepository) CreateMealType(ctx context.Context, mealType *catalogdomain.MealType) error {
	return r.db.WithContext(ctx).Create(mealType).Error
}

func (r *PostgresRepository) CreateDrink(ctx context.Context, drink *catalogdomain.Drink) error {
	return r.db.WithContext(ctx).Create(drink).Error
}

func (r *PostgresRepository) CreateFood(ctx context.Context, food *catalogdomain.Food) error {
	return r.db.WithContext(ctx).Omit("Sides").Create(food).Error
}

func (r *PostgresRepository) CreateSide(ctx context.Context, side *catalogdomain.Side) error {
	return r.db.WithContext(ctx).Create(side).Error
}

func (r *PostgresRepository) UpdateMealType(ctx context.Context, mealType *catalogdomain.MealType) error {
	return r.db.WithContext(ctx).Model(mealType).
		Select("name").
		Updates(map[string]interface{}{"name": mealType.Name}).Error
}

func (r *PostgresRepository) UpdateDrink(ctx context.Context, drink *catalogdomain.Drink) error {
	return r.db.WithContext(ctx).Model(drink).
		Select("label", "description").
		Updates(map[string]interface{}{"label": drink.Label, "description": drink.Description}).Error
}

func (r *PostgresRepository) UpdateFood(ctx context.Context, food *catalogdomain.Food) error {
	return r.db.WithContext(ctx).Model(food).
		Select("label", "description").
		Updates(map[string]interface{}{"label": food.Label, "description": food.Description}).Error
}

func (r *PostgresRepository) UpdateSide(ctx context.Context, side *catalogdomain.Side) error {
	return r.db.WithContext(ctx).Model(side).
		Select("label", "description").
		Updates(map[string]interface{}{"label": side.Label, "description": side.Description}).Error
}

func (r *PostgresRepository) DeleteMealType(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&catalogdomain.MealType{}, id).Error
}

func (r *PostgresRepository) DeleteDrink(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&catalogdomain.Drink{}, id).Error
}

func (r *PostgresRepository) DeleteFood(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&catalogdomain.Food{}, id).Error
}

func (r *PostgresRepository) DeleteSide(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&catalogdomain.Side{}, id).Error
}

func (r *PostgresRepository) SideIDsByFood(ctx context.Context, foodID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&foodSide{}).
		Where("food_id = ?", foodID).
		Order("side_id asc").
		Pluck("side_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) SidesByFood(ctx context.Context, foodID uint) ([]catalogdomain.Side, error) {
	var sides []catalogdomain.Side
	if err := r.db.WithContext(ctx).
		Table("sides").
		Select("sides.id, sides.label, sides.description").
		Joins("join food_sides on food_sides.side_id = sides.id").
		Where("food_sides.food_id = ?", foodID).
		Order("sides.label asc").
		Find(&sides).Error; err != nil {
		return nil, err
	}
	return sides, nil
}

func (r *PostgresRepository) AddFoodSides(ctx context.Context, foodID uint, sideIDs []uint) error {
	if len(sideIDs) == 0 {
		return nil
	}
	rows := make([]foodSide, 0, len(sideIDs))
	for _, sideID := range sideIDs {
		rows = append(rows, foodSide{FoodID: foodID, SideID: sideID})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *PostgresRepository) RemoveFoodSides(ctx context.Context, foodID uint, sideIDs []uint) error {
	if len(sideIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("food_id = ? AND side_id IN ?", foodID, sideIDs).
		Delete(&foodSide{}).Error
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalogdomain.ErrItemNotFound
	}
	return err
}
