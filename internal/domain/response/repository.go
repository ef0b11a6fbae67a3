package response

import "context"

type Repository interface {
	MealExists(ctx context.Context, mealID uint) (bool, error)
	FoodExists(ctx context.Context, foodID uint) (bool, error)

	// FoodsByMeal returns the meal's foods in association order.
	FoodsByMeal(ctx context.Context, mealID uint) ([]Choice, error)
	// DrinksByMeal returns the meal's drinks ordered by label.
	DrinksByMeal(ctx context.Context, mealID uint) ([]Choice, error)
	// SidesByFood returns the food's sides ordered by label.
	SidesByFood(ctx context.Context, foodID uint) ([]Choice, error)

	Create(ctx context.Context, response *Response) error
	ListByMeal(ctx context.Context, mealID uint) ([]Response, error)
}
