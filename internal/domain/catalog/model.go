package catalog

type MealType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:64;index;not null"`
}

type Drink struct {
	ID          uint   `gorm:"primaryKey"`
	Label       string `gorm:"size:140;not null"`
	Description string `gorm:"size:250"`
}

type Food struct {
	ID          uint   `gorm:"primaryKey"`
	Label       string `gorm:"size:140;not null"`
	Description string `gorm:"size:250"`
	Sides       []Side `gorm:"many2many:food_sides"`
}

type Side struct {
	ID          uint   `gorm:"primaryKey"`
	Label       string `gorm:"size:140;not null"`
	Description string `gorm:"size:250"`
}

// Item is the kind-independent view of a catalog entity. Display carries the
// name for meal types and the label for everything else.
type Item struct {
	ID          uint
	Display     string
	Description string
	SideIDs     []uint
}

type Input struct {
	Name        string
	Label       string
	Description string
	SideIDs     []uint
}
