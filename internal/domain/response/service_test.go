package response

import (
	"context"
	"errors"
	"testing"

	"mealpoll-go/pkg/validate"
)

type fakeResponseRepo struct {
	meals     map[uint]struct{}
	mealFoods map[uint][]Choice
	drinks    map[uint][]Choice
	foodSides map[uint][]Choice
	responses []Response
	nextID    uint
}

func newFakeResponseRepo() *fakeResponseRepo {
	return &fakeResponseRepo{
		meals:     make(map[uint]struct{}),
		mealFoods: make(map[uint][]Choice),
		drinks:    make(map[uint][]Choice),
		foodSides: make(map[uint][]Choice),
	}
}

func (r *fakeResponseRepo) MealExists(ctx context.Context, mealID uint) (bool, error) {
	_, ok := r.meals[mealID]
	return ok, nil
}

func (r *fakeResponseRepo) FoodExists(ctx context.Context, foodID uint) (bool, error) {
	_, ok := r.foodSides[foodID]
	return ok, nil
}

func (r *fakeResponseRepo) FoodsByMeal(ctx context.Context, mealID uint) ([]Choice, error) {
	return append([]Choice{}, r.mealFoods[mealID]...), nil
}

func (r *fakeResponseRepo) DrinksByMeal(ctx context.Context, mealID uint) ([]Choice, error) {
	return append([]Choice{}, r.drinks[mealID]...), nil
}

func (r *fakeResponseRepo) SidesByFood(ctx context.Context, foodID uint) ([]Choice, error) {
	return append([]Choice{}, r.foodSides[foodID]...), nil
}

func (r *fakeResponseRepo) Create(ctx context.Context, response *Response) error {
	r.nextID++
	response.ID = r.nextID
	r.responses = append(r.responses, *response)
	return nil
}

func (r *fakeResponseRepo) ListByMeal(ctx context.Context, mealID uint) ([]Response, error) {
	result := make([]Response, 0)
	for _, response := range r.responses {
		if response.MealID == mealID {
			result = append(result, response)
		}
	}
	return result, nil
}

func seedMeal(repo *fakeResponseRepo) uint {
	const mealID = 1
	repo.meals[mealID] = struct{}{}
	repo.mealFoods[mealID] = []Choice{
		{ID: 10, Label: "Hamburger"},
		{ID: 11, Label: "Chicken"},
	}
	repo.drinks[mealID] = []Choice{
		{ID: 20, Label: "Coffee"},
		{ID: 21, Label: "Tea"},
	}
	repo.foodSides[10] = []Choice{
		{ID: 30, Label: "Fries"},
		{ID: 31, Label: "Rice"},
	}
	repo.foodSides[11] = []Choice{}
	return mealID
}

func TestPresentChoices(t *testing.T) {
	repo := newFakeResponseRepo()
	mealID := seedMeal(repo)
	svc := NewService(repo)

	choices, err := svc.PresentChoices(context.Background(), mealID)
	if err != nil {
		t.Fatalf("present choices: %v", err)
	}

	wantFoods := []string{"Hamburger", "Chicken", "Other"}
	if len(choices.Foods) != len(wantFoods) {
		t.Fatalf("expected %d foods, got %+v", len(wantFoods), choices.Foods)
	}
	for i, want := range wantFoods {
		if choices.Foods[i].Label != want {
			t.Fatalf("food %d: got %q, want %q", i, choices.Foods[i].Label, want)
		}
	}

	// Sides come from the first food.
	wantSides := []string{"Fries", "Rice", "Other"}
	if len(choices.Sides) != len(wantSides) {
		t.Fatalf("expected %d sides, got %+v", len(wantSides), choices.Sides)
	}
	for i, want := range wantSides {
		if choices.Sides[i].Label != want {
			t.Fatalf("side %d: got %q, want %q", i, choices.Sides[i].Label, want)
		}
	}
	last := choices.Sides[len(choices.Sides)-1]
	if last.ID != OtherID || last.Description != "Choose another side." {
		t.Fatalf("unexpected synthetic side entry: %+v", last)
	}

	wantDrinks := []string{"Coffee", "Tea", "Other"}
	for i, want := range wantDrinks {
		if choices.Drinks[i].Label != want {
			t.Fatalf("drink %d: got %q, want %q", i, choices.Drinks[i].Label, want)
		}
	}
}

func TestPresentChoicesNoFoods(t *testing.T) {
	repo := newFakeResponseRepo()
	repo.meals[5] = struct{}{}
	svc := NewService(repo)

	choices, err := svc.PresentChoices(context.Background(), 5)
	if err != nil {
		t.Fatalf("present choices: %v", err)
	}
	if len(choices.Sides) != 0 {
		t.Fatalf("expected no sides without foods, got %+v", choices.Sides)
	}
	// Foods and drinks still carry the free-text fallback.
	if len(choices.Foods) != 1 || choices.Foods[0].ID != OtherID {
		t.Fatalf("expected only the Other food, got %+v", choices.Foods)
	}
	if len(choices.Drinks) != 1 || choices.Drinks[0].ID != OtherID {
		t.Fatalf("expected only the Other drink, got %+v", choices.Drinks)
	}
}

func TestPresentChoicesUnknownMeal(t *testing.T) {
	svc := NewService(newFakeResponseRepo())
	if _, err := svc.PresentChoices(context.Background(), 99); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestSidesForFood(t *testing.T) {
	repo := newFakeResponseRepo()
	seedMeal(repo)
	svc := NewService(repo)
	ctx := context.Background()

	sides, err := svc.SidesForFood(ctx, 10)
	if err != nil {
		t.Fatalf("sides for food: %v", err)
	}
	if len(sides) != 3 || sides[2].ID != OtherID {
		t.Fatalf("expected real sides plus Other, got %+v", sides)
	}

	// A food with no sides gets no synthetic entry.
	sides, err = svc.SidesForFood(ctx, 11)
	if err != nil {
		t.Fatalf("sides for sideless food: %v", err)
	}
	if len(sides) != 0 {
		t.Fatalf("expected no sides, got %+v", sides)
	}

	if _, err := svc.SidesForFood(ctx, 404); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}
}

func TestSubmitWithOtherFood(t *testing.T) {
	repo := newFakeResponseRepo()
	mealID := seedMeal(repo)
	svc := NewService(repo)

	created, err := svc.Submit(context.Background(), SubmitInput{
		MealID:    mealID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		FoodID:    OtherID,
		FoodOther: "Filet Mignon",
		DrinkID:   20,
		SideID:    30,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.FoodID != nil {
		t.Fatalf("expected no food id for the Other choice, got %v", *created.FoodID)
	}
	if created.FoodOther != "Filet Mignon" {
		t.Fatalf("expected free text kept, got %q", created.FoodOther)
	}
	if created.DrinkID == nil || *created.DrinkID != 20 {
		t.Fatalf("expected drink id 20, got %v", created.DrinkID)
	}
	if created.SideID == nil || *created.SideID != 30 {
		t.Fatalf("expected side id 30, got %v", created.SideID)
	}
}

func TestSubmitKeepsOtherTextAlongsideSelection(t *testing.T) {
	repo := newFakeResponseRepo()
	mealID := seedMeal(repo)
	svc := NewService(repo)

	created, err := svc.Submit(context.Background(), SubmitInput{
		MealID:     mealID,
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@example.com",
		FoodID:     10,
		FoodOther:  "Stray note",
		DrinkID:    OtherID,
		DrinkOther: "Kombucha",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.FoodID == nil || *created.FoodID != 10 {
		t.Fatalf("expected food id 10, got %v", created.FoodID)
	}
	if created.FoodOther != "Stray note" {
		t.Fatalf("expected free text stored verbatim, got %q", created.FoodOther)
	}
	if created.DrinkID != nil {
		t.Fatalf("expected no drink id, got %v", *created.DrinkID)
	}
	if created.DrinkOther != "Kombucha" {
		t.Fatalf("expected drink text kept, got %q", created.DrinkOther)
	}
}

func TestSubmitValidation(t *testing.T) {
	repo := newFakeResponseRepo()
	mealID := seedMeal(repo)
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), SubmitInput{
		MealID: mealID,
		Email:  "not-an-email",
	})
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"first_name", "last_name", "email"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected %s error, got %v", field, errs)
		}
	}
}

func TestSubmitUnknownMeal(t *testing.T) {
	svc := NewService(newFakeResponseRepo())
	_, err := svc.Submit(context.Background(), SubmitInput{
		MealID:    77,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	if !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestSubmitAllowsDuplicates(t *testing.T) {
	repo := newFakeResponseRepo()
	mealID := seedMeal(repo)
	svc := NewService(repo)
	ctx := context.Background()

	input := SubmitInput{
		MealID:    mealID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		FoodID:    10,
	}
	if _, err := svc.Submit(ctx, input); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(ctx, input); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	listed, err := svc.ListByMeal(ctx, mealID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(listed))
	}
}
