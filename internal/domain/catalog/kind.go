package catalog

import "strings"

// Kind enumerates the catalog entity kinds. The set is closed: every admin
// operation is dispatched through it, so an unrecognized kind can only surface
// at ParseKind on the transport boundary.
type Kind int

const (
	KindMealType Kind = iota
	KindDrink
	KindFood
	KindSide
)

var kindNames = map[Kind]string{
	KindMealType: "meal_type",
	KindDrink:    "drink",
	KindFood:     "food",
	KindSide:     "side",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// UsesName reports whether the kind's display field is "name" rather than
// "label". Only meal types use a name.
func (k Kind) UsesName() bool {
	return k == KindMealType
}

func ParseKind(value string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	switch normalized {
	case "meal_type", "mealtype":
		return KindMealType, nil
	case "drink":
		return KindDrink, nil
	case "food":
		return KindFood, nil
	case "side":
		return KindSide, nil
	default:
		return 0, ErrUnknownKind
	}
}
