package response

import "errors"

var (
	ErrMealNotFound = errors.New("meal not found")
	ErrFoodNotFound = errors.New("food not found")
)
