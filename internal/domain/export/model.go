package export

import "time"

// MealInfo is the header data the export filename is built from.
type MealInfo struct {
	Date         time.Time
	MealTypeName string
}

// Entry is one response row with its catalog labels already joined in.
// A nil label means the respondent had no catalog selection (or the catalog
// item was deleted since) and the free-text override applies.
type Entry struct {
	FirstName string
	LastName  string
	Email     string

	FoodLabel  *string
	SideLabel  *string
	DrinkLabel *string

	FoodOther  string
	SideOther  string
	DrinkOther string

	Note      string
	CreatedAt time.Time
}

type Export struct {
	Filename string
	Data     []byte
}
