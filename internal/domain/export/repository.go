package export

import "context"

type Repository interface {
	MealInfo(ctx context.Context, mealID uint) (*MealInfo, error)
	// Entries returns the meal's responses in submission order.
	Entries(ctx context.Context, mealID uint) ([]Entry, error)
}
