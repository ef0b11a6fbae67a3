package meal

import (
	"context"
	"errors"

	catalogdomain "mealpoll-go/internal/domain/catalog"
	mealdomain "mealpoll-go/internal/domain/meal"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type mealDrink struct {
	MealID  uint `gorm:"primaryKey"`
	DrinkID uint `gorm:"primaryKey"`
}

func (mealDrink) TableName() string {
	return "meal_drinks"
}

type mealFood struct {
	MealID uint `gorm:"primaryKey"`
	FoodID uint `gorm:"primaryKey"`
}

func (mealFood) TableName() string {
	return "meal_foods"
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(mealdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context) ([]mealdomain.Meal, error) {
	var meals []mealdomain.Meal
	if err := r.preloaded(ctx).Order("date asc").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *PostgresRepository) ListOpen(ctx context.Context) ([]mealdomain.Meal, error) {
	var meals []mealdomain.Meal
	if err := r.preloaded(ctx).
		Where("registration_open = ?", true).
		Order("date asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uint) (*mealdomain.Meal, error) {
	var result mealdomain.Meal
	if err := r.preloaded(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mealdomain.ErrMealNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, meal *mealdomain.Meal) error {
	return r.db.WithContext(ctx).Omit("MealType", "Drinks", "Foods").Create(meal).Error
}

func (r *PostgresRepository) Update(ctx context.Context, meal *mealdomain.Meal) error {
	return r.db.WithContext(ctx).Model(&mealdomain.Meal{}).
		Where("id = ?", meal.ID).
		Select("meal_type_id", "restaurant", "date", "registration_open").
		Updates(map[string]interface{}{
			"meal_type_id":      meal.MealTypeID,
			"restaurant":        meal.Restaurant,
			"date":              meal.Date,
			"registration_open": meal.RegistrationOpen,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&mealdomain.Meal{}, id).Error
}

func (r *PostgresRepository) MealTypeExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalogdomain.MealType{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) DrinkIDs(ctx context.Context, mealID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&mealDrink{}).
		Where("meal_id = ?", mealID).
		Order("drink_id asc").
		Pluck("drink_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) FoodIDs(ctx context.Context, mealID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&mealFood{}).
		Where("meal_id = ?", mealID).
		Order("food_id asc").
		Pluck("food_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) AddDrinks(ctx context.Context, mealID uint, drinkIDs []uint) error {
	if len(drinkIDs) == 0 {
		return nil
	}
	rows := make([]mealDrink, 0, len(drinkIDs))
	for _, drinkID := range drinkIDs {
		rows = append(rows, mealDrink{MealID: mealID, DrinkID: drinkID})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *PostgresRepository) RemoveDrinks(ctx context.Context, mealID uint, drinkIDs []uint) error {
	if len(drinkIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("meal_id = ? AND drink_id IN ?", mealID, drinkIDs).
		Delete(&mealDrink{}).Error
}

func (r *PostgresRepository) AddFoods(ctx context.Context, mealID uint, foodIDs []uint) error {
	if len(foodIDs) == 0 {
		return nil
	}
	rows := make([]mealFood, 0, len(foodIDs))
	for _, foodID := range foodIDs {
		rows = append(rows, mealFood{MealID: mealID, FoodID: foodID})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *PostgresRepository) RemoveFoods(ctx context.Context, mealID uint, foodIDs []uint) error {
	if len(foodIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("meal_id = ? AND food_id IN ?", mealID, foodIDs).
		Delete(&mealFood{}).Error
}

func (r *PostgresRepository) DeleteResponses(ctx context.Context, mealID uint) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM responses WHERE meal_id = ?", mealID).Error
}

func (r *PostgresRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("MealType").
		Preload("Drinks", func(db *gorm.DB) *gorm.DB { return db.Order("drinks.label asc") }).
		Preload("Foods", func(db *gorm.DB) *gorm.DB { return db.Order("foods.id asc") })
}
