package meal

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	List(ctx context.Context) ([]Meal, error)
	ListOpen(ctx context.Context) ([]Meal, error)
	Get(ctx context.Context, id uint) (*Meal, error)
	Create(ctx context.Context, meal *Meal) error
	Update(ctx context.Context, meal *Meal) error
	Delete(ctx context.Context, id uint) error

	MealTypeExists(ctx context.Context, id uint) (bool, error)

	DrinkIDs(ctx context.Context, mealID uint) ([]uint, error)
	FoodIDs(ctx context.Context, mealID uint) ([]uint, error)
	AddDrinks(ctx context.Context, mealID uint, drinkIDs []uint) error
	RemoveDrinks(ctx context.Context, mealID uint, drinkIDs []uint) error
	AddFoods(ctx context.Context, mealID uint, foodIDs []uint) error
	RemoveFoods(ctx context.Context, mealID uint, foodIDs []uint) error

	DeleteResponses(ctx context.Context, mealID uint) error
}
