package meal

import (
	"context"
	"strings"

	"mealpoll-go/pkg/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every meal ordered by date ascending.
func (s *Service) List(ctx context.Context) ([]Meal, error) {
	return s.repo.List(ctx)
}

// ListOpen returns meals open for registration, ordered by date ascending.
// This feeds the public landing view.
func (s *Service) ListOpen(ctx context.Context) ([]Meal, error) {
	return s.repo.ListOpen(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*Meal, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (*Meal, error) {
	input.Restaurant = strings.TrimSpace(input.Restaurant)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var result *Meal
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.MealTypeExists(ctx, input.MealTypeID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrMealTypeNotFound
		}

		mealTypeID := input.MealTypeID
		created := Meal{
			MealTypeID:       &mealTypeID,
			Restaurant:       input.Restaurant,
			Date:             input.Date,
			RegistrationOpen: input.RegistrationOpen,
		}
		if err := tx.Create(ctx, &created); err != nil {
			return err
		}
		if err := tx.AddDrinks(ctx, created.ID, input.DrinkIDs); err != nil {
			return err
		}
		if err := tx.AddFoods(ctx, created.ID, input.FoodIDs); err != nil {
			return err
		}

		result = &created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, result.ID)
}

// Update rewrites the meal's fields and reconciles its drink and food sets as
// a set difference inside one transaction, so readers never observe an empty
// association set mid-update.
func (s *Service) Update(ctx context.Context, id uint, input Input) (*Meal, error) {
	input.Restaurant = strings.TrimSpace(input.Restaurant)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		exists, err := tx.MealTypeExists(ctx, input.MealTypeID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrMealTypeNotFound
		}

		mealTypeID := input.MealTypeID
		existing.MealTypeID = &mealTypeID
		existing.Restaurant = input.Restaurant
		existing.Date = input.Date
		existing.RegistrationOpen = input.RegistrationOpen
		if err := tx.Update(ctx, existing); err != nil {
			return err
		}

		currentDrinks, err := tx.DrinkIDs(ctx, id)
		if err != nil {
			return err
		}
		addedDrinks, removedDrinks := diffIDs(currentDrinks, input.DrinkIDs)
		if err := tx.RemoveDrinks(ctx, id, removedDrinks); err != nil {
			return err
		}
		if err := tx.AddDrinks(ctx, id, addedDrinks); err != nil {
			return err
		}

		currentFoods, err := tx.FoodIDs(ctx, id)
		if err != nil {
			return err
		}
		addedFoods, removedFoods := diffIDs(currentFoods, input.FoodIDs)
		if err := tx.RemoveFoods(ctx, id, removedFoods); err != nil {
			return err
		}
		return tx.AddFoods(ctx, id, addedFoods)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id)
}

// Delete removes the meal and every response submitted for it.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.Get(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteResponses(ctx, id); err != nil {
			return err
		}
		return tx.Delete(ctx, id)
	})
}

func validateInput(input Input) error {
	errs := validate.Errors{}
	if input.MealTypeID == 0 {
		errs.Add("meal_type_id", "is required")
	}
	if input.Date.IsZero() {
		errs.Add("date", "is required")
	}
	if len(input.DrinkIDs) == 0 {
		errs.Add("drink_ids", "at least one drink is required")
	}
	if len(input.FoodIDs) == 0 {
		errs.Add("food_ids", "at least one food is required")
	}
	return errs.OrNil()
}

func diffIDs(current, desired []uint) (added, removed []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	desiredSet := make(map[uint]struct{}, len(desired))
	for _, id := range desired {
		desiredSet[id] = struct{}{}
	}

	for _, id := range desired {
		if _, ok := currentSet[id]; !ok {
			added = append(added, id)
			currentSet[id] = struct{}{}
		}
	}
	for _, id := range current {
		if _, ok := desiredSet[id]; !ok {
			removed = append(removed, id)
			desiredSet[id] = struct{}{}
		}
	}
	return added, removed
}
