package response

import "time"

// Response is one respondent's submitted choices for a meal. Rows are only
// ever inserted; nothing updates a response after creation.
type Response struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:64;not null"`
	LastName  string `gorm:"size:64;not null"`
	Email     string `gorm:"size:64"`
	MealID    uint   `gorm:"index;not null"`

	FoodID  *uint
	DrinkID *uint
	SideID  *uint

	FoodOther  string `gorm:"size:140"`
	DrinkOther string `gorm:"size:140"`
	SideOther  string `gorm:"size:140"`

	Note      string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// OtherID is the synthetic, non-persisted choice id signaling free text
// instead of a catalog selection.
const OtherID uint = 0

type Choice struct {
	ID          uint
	Label       string
	Description string
}

type Choices struct {
	Foods  []Choice
	Sides  []Choice
	Drinks []Choice
}

type SubmitInput struct {
	MealID    uint
	FirstName string
	LastName  string
	Email     string

	FoodID     uint
	FoodOther  string
	SideID     uint
	SideOther  string
	DrinkID    uint
	DrinkOther string

	Note string
}
