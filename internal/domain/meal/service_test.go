package meal

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"mealpoll-go/pkg/validate"
)

type fakeMealRepo struct {
	meals      map[uint]*Meal
	mealTypes  map[uint]struct{}
	mealDrinks map[uint][]uint
	mealFoods  map[uint][]uint
	responses  map[uint][]uint
	nextID     uint
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{
		meals:      make(map[uint]*Meal),
		mealTypes:  make(map[uint]struct{}),
		mealDrinks: make(map[uint][]uint),
		mealFoods:  make(map[uint][]uint),
		responses:  make(map[uint][]uint),
	}
}

func (r *fakeMealRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeMealRepo) List(ctx context.Context) ([]Meal, error) {
	result := make([]Meal, 0, len(r.meals))
	for _, m := range r.meals {
		result = append(result, *m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *fakeMealRepo) ListOpen(ctx context.Context) ([]Meal, error) {
	result := make([]Meal, 0)
	for _, m := range r.meals {
		if m.RegistrationOpen {
			result = append(result, *m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *fakeMealRepo) Get(ctx context.Context, id uint) (*Meal, error) {
	m, ok := r.meals[id]
	if !ok {
		return nil, ErrMealNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMealRepo) Create(ctx context.Context, meal *Meal) error {
	r.nextID++
	meal.ID = r.nextID
	r.meals[meal.ID] = meal
	return nil
}

func (r *fakeMealRepo) Update(ctx context.Context, meal *Meal) error {
	if _, ok := r.meals[meal.ID]; !ok {
		return ErrMealNotFound
	}
	r.meals[meal.ID] = meal
	return nil
}

func (r *fakeMealRepo) Delete(ctx context.Context, id uint) error {
	delete(r.meals, id)
	delete(r.mealDrinks, id)
	delete(r.mealFoods, id)
	return nil
}

func (r *fakeMealRepo) MealTypeExists(ctx context.Context, id uint) (bool, error) {
	_, ok := r.mealTypes[id]
	return ok, nil
}

func (r *fakeMealRepo) DrinkIDs(ctx context.Context, mealID uint) ([]uint, error) {
	return append([]uint{}, r.mealDrinks[mealID]...), nil
}

func (r *fakeMealRepo) FoodIDs(ctx context.Context, mealID uint) ([]uint, error) {
	return append([]uint{}, r.mealFoods[mealID]...), nil
}

func (r *fakeMealRepo) AddDrinks(ctx context.Context, mealID uint, drinkIDs []uint) error {
	r.mealDrinks[mealID] = append(r.mealDrinks[mealID], drinkIDs...)
	return nil
}

func (r *fakeMealRepo) RemoveDrinks(ctx context.Context, mealID uint, drinkIDs []uint) error {
	r.mealDrinks[mealID] = removeIDs(r.mealDrinks[mealID], drinkIDs)
	return nil
}

func (r *fakeMealRepo) AddFoods(ctx context.Context, mealID uint, foodIDs []uint) error {
	r.mealFoods[mealID] = append(r.mealFoods[mealID], foodIDs...)
	return nil
}

func (r *fakeMealRepo) RemoveFoods(ctx context.Context, mealID uint, foodIDs []uint) error {
	r.mealFoods[mealID] = removeIDs(r.mealFoods[mealID], foodIDs)
	return nil
}

func (r *fakeMealRepo) DeleteResponses(ctx context.Context, mealID uint) error {
	delete(r.responses, mealID)
	return nil
}

func removeIDs(current, toRemove []uint) []uint {
	remove := make(map[uint]struct{}, len(toRemove))
	for _, id := range toRemove {
		remove[id] = struct{}{}
	}
	kept := current[:0]
	for _, id := range current {
		if _, ok := remove[id]; !ok {
			kept = append(kept, id)
		}
	}
	return kept
}

func validInput() Input {
	return Input{
		MealTypeID: 1,
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		DrinkIDs:   []uint{10, 11},
		FoodIDs:    []uint{20},
	}
}

func TestCreateMealSuccess(t *testing.T) {
	repo := newFakeMealRepo()
	repo.mealTypes[1] = struct{}{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.RegistrationOpen {
		t.Fatalf("expected registration closed by default")
	}
	if got := repo.mealDrinks[created.ID]; len(got) != 2 {
		t.Fatalf("expected 2 drinks attached, got %v", got)
	}
	if got := repo.mealFoods[created.ID]; len(got) != 1 {
		t.Fatalf("expected 1 food attached, got %v", got)
	}
}

func TestCreateMealValidation(t *testing.T) {
	repo := newFakeMealRepo()
	repo.mealTypes[1] = struct{}{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Input{MealTypeID: 1})
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"date", "drink_ids", "food_ids"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected %s error, got %v", field, errs)
		}
	}
}

func TestCreateMealUnknownMealType(t *testing.T) {
	svc := NewService(newFakeMealRepo())
	_, err := svc.Create(context.Background(), validInput())
	if !errors.Is(err, ErrMealTypeNotFound) {
		t.Fatalf("expected ErrMealTypeNotFound, got %v", err)
	}
}

func TestUpdateMealReplacesAssociations(t *testing.T) {
	repo := newFakeMealRepo()
	repo.mealTypes[1] = struct{}{}
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	input := validInput()
	input.DrinkIDs = []uint{11, 12}
	input.FoodIDs = []uint{21}
	input.RegistrationOpen = true

	updated, err := svc.Update(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.RegistrationOpen {
		t.Fatalf("expected registration open after update")
	}

	drinks := append([]uint{}, repo.mealDrinks[created.ID]...)
	sort.Slice(drinks, func(i, j int) bool { return drinks[i] < drinks[j] })
	if len(drinks) != 2 || drinks[0] != 11 || drinks[1] != 12 {
		t.Fatalf("expected drinks [11 12], got %v", drinks)
	}
	if foods := repo.mealFoods[created.ID]; len(foods) != 1 || foods[0] != 21 {
		t.Fatalf("expected foods [21], got %v", foods)
	}
}

func TestUpdateMissingMeal(t *testing.T) {
	repo := newFakeMealRepo()
	repo.mealTypes[1] = struct{}{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 99, validInput())
	if !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestDeleteMealCascadesResponses(t *testing.T) {
	repo := newFakeMealRepo()
	repo.mealTypes[1] = struct{}{}
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.responses[created.ID] = []uint{1, 2, 3}
	repo.responses[999] = []uint{4}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.responses[created.ID]; ok {
		t.Fatalf("expected responses for meal %d removed", created.ID)
	}
	if got := repo.responses[999]; len(got) != 1 {
		t.Fatalf("expected unrelated responses kept, got %v", got)
	}
}

func TestDeleteMissingMeal(t *testing.T) {
	svc := NewService(newFakeMealRepo())
	if err := svc.Delete(context.Background(), 5); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound, got %v", err)
	}
}

func TestListOpenOnly(t *testing.T) {
	repo := newFakeMealRepo()
	repo.mealTypes[1] = struct{}{}
	svc := NewService(repo)
	ctx := context.Background()

	open := validInput()
	open.RegistrationOpen = true
	openMeal, err := svc.Create(ctx, open)
	if err != nil {
		t.Fatalf("create open: %v", err)
	}
	if _, err := svc.Create(ctx, validInput()); err != nil {
		t.Fatalf("create closed: %v", err)
	}

	meals, err := svc.ListOpen(ctx)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(meals) != 1 || meals[0].ID != openMeal.ID {
		t.Fatalf("expected only the open meal, got %+v", meals)
	}
}
