package catalog

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	ListMealTypes(ctx context.Context) ([]MealType, error)
	ListDrinks(ctx context.Context) ([]Drink, error)
	ListFoods(ctx context.Context) ([]Food, error)
	ListSides(ctx context.Context) ([]Side, error)

	GetMealType(ctx context.Context, id uint) (*MealType, error)
	GetDrink(ctx context.Context, id uint) (*Drink, error)
	GetFood(ctx context.Context, id uint) (*Food, error)
	GetSide(ctx context.Context, id uint) (*Side, error)

	CreateMealType(ctx context.Context, mealType *MealType) error
	CreateDrink(ctx context.Context, drink *Drink) error
	CreateFood(ctx context.Context, food *Food) error
	CreateSide(ctx context.Context, side *Side) error

	UpdateMealType(ctx context.Context, mealType *MealType) error
	UpdateDrink(ctx context.Context, drink *Drink) error
	UpdateFood(ctx context.Context, food *Food) error
	UpdateSide(ctx context.Context, side *Side) error

	DeleteMealType(ctx context.Context, id uint) error
	DeleteDrink(ctx context.Context, id uint) error
	DeleteFood(ctx context.Context, id uint) error
	DeleteSide(ctx context.Context, id uint) error

	SideIDsByFood(ctx context.Context, foodID uint) ([]uint, error)
	SidesByFood(ctx context.Context, foodID uint) ([]Side, error)
	AddFoodSides(ctx context.Context, foodID uint, sideIDs []uint) error
	RemoveFoodSides(ctx context.Context, foodID uint, sideIDs []uint) error
}
