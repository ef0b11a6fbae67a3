package meal

import "errors"

var (
	ErrMealNotFound     = errors.New("meal not found")
	ErrMealTypeNotFound = errors.New("meal type not found")
)
