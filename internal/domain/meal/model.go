package meal

import (
	"time"

	"mealpoll-go/internal/domain/catalog"
)

type Meal struct {
	ID uint `gorm:"primaryKey"`
	// MealTypeID is nullable: deleting a meal type nulls it out rather than
	// cascading to the meal.
	MealTypeID       *uint     `gorm:"index"`
	Restaurant       string    `gorm:"size:128"`
	Date             time.Time `gorm:"type:date;not null"`
	RegistrationOpen bool      `gorm:"not null;default:false"`

	MealType *catalog.MealType `gorm:"foreignKey:MealTypeID"`
	Drinks   []catalog.Drink   `gorm:"many2many:meal_drinks"`
	Foods    []catalog.Food    `gorm:"many2many:meal_foods"`
}

type Input struct {
	MealTypeID       uint
	Restaurant       string
	Date             time.Time
	DrinkIDs         []uint
	FoodIDs          []uint
	RegistrationOpen bool
}
