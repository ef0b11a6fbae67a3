package export

import "errors"

var ErrMealNotFound = errors.New("meal not found")
