package catalog

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"meal_type": KindMealType,
		"MealType":  KindMealType,
		"meal-type": KindMealType,
		"drink":     KindDrink,
		"Food":      KindFood,
		" side ":    KindSide,
	}
	for value, want := range cases {
		got, err := ParseKind(value)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", value, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	if _, err := ParseKind("dessert"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
