package response

import (
	"context"

	responsedomain "mealpoll-go/internal/domain/response"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) MealExists(ctx context.Context, mealID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("meals").Where("id = ?", mealID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) FoodExists(ctx context.Context, foodID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("foods").Where("id = ?", foodID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) FoodsByMeal(ctx context.Context, mealID uint) ([]responsedomain.Choice, error) {
	var choices []responsedomain.Choice
	if err := r.db.WithContext(ctx).
		Table("foods").
		Select("foods.id, foods.label, foods.description").
		Joins("join meal_foods on meal_foods.food_id = foods.id").
		Where("meal_foods.meal_id = ?", mealID).
		Order("foods.id asc").
		Scan(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *PostgresRepository) DrinksByMeal(ctx context.Context, mealID uint) ([]responsedomain.Choice, error) {
	var choices []responsedomain.Choice
	if err := r.db.WithContext(ctx).
		Table("drinks").
		Select("drinks.id, drinks.label, drinks.description").
		Joins("join meal_drinks on meal_drinks.drink_id = drinks.id").
		Where("meal_drinks.meal_id = ?", mealID).
		Order("drinks.label asc").
		Scan(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *PostgresRepository) SidesByFood(ctx context.Context, foodID uint) ([]responsedomain.Choice, error) {
	var choices []responsedomain.Choice
	if err := r.db.WithContext(ctx).
		Table("sides").
		Select("sides.id, sides.label, sides.description").
		Joins("join food_sides on food_sides.side_id = sides.id").
		Where("food_sides.food_id = ?", foodID).
		Order("sides.label asc").
		Scan(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *PostgresRepository) Create(ctx context.Context, response *responsedomain.Response) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *PostgresRepository) ListByMeal(ctx context.Context, mealID uint) ([]responsedomain.Response, error) {
	var responses []responsedomain.Response
	if err := r.db.WithContext(ctx).
		Where("meal_id = ?", mealID).
		Order("created_at asc, id asc").
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}
