package response

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

// PresentChoices computes the option sets shown on the sign-up form for a
// meal. Sides come from the meal's first food; the per-food side list is
// served separately by SidesForFood for clients that refresh after a food is
// picked.
func (s *Service) PresentChoices(ctx context.Context, mealID uint) (*Choices, error) {
	exists, err := s.repo.MealExists(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMealNotFound
	}

	foods, err := s.repo.FoodsByMeal(ctx, mealID)
	if err != nil {
		return nil, err
	}

	drinks, err := s.repo.DrinksByMeal(ctx, mealID)
	if err != nil {
		return nil, err
	}

	var sides []Choice
	if len(foods) > 0 {
		sides, err = s.repo.SidesByFood(ctx, foods[0].ID)
		if err != nil {
			return nil, err
		}
	}

	return &Choices{
		Foods:  appendOther(foods, ""),
		Sides:  appendOtherIfAny(sides, "Choose another side."),
		Drinks: appendOther(drinks, ""),
	}, nil
}

// SidesForFood returns the side options for one food, with the synthetic
// "Other" entry appended only when the food has at least one real side.
func (s *Service) SidesForFood(ctx context.Context, foodID uint) ([]Choice, error) {
	exists, err := s.repo.FoodExists(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrFoodNotFound
	}

	sides, err := s.repo.SidesByFood(ctx, foodID)
	if err != nil {
		return nil, err
	}

	return appendOtherIfAny(sides, "Choose another side."), nil
}

// Submit validates and persists one sign-up. Selected catalog ids are taken
// structurally and are not cross-checked against the meal's option sets.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*Response, error) {
	input = trimSubmitInput(input)

	errs := validate.Errors{}
	errs.Require("first_name", input.FirstName)
	errs.Require("last_name", input.LastName)
	errs.Require("email", input.Email)
	if input.Email != "" && !validate.ValidEmail(input.Email) {
		errs.Add("email", "is not a valid email address")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	exists, err := s.repo.MealExists(ctx, input.MealID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMealNotFound
	}

	created := Response{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		MealID:     input.MealID,
		FoodID:     selectedID(input.FoodID),
		DrinkID:    selectedID(input.DrinkID),
		SideID:     selectedID(input.SideID),
		FoodOther:  input.FoodOther,
		DrinkOther: input.DrinkOther,
		SideOther:  input.SideOther,
		Note:       input.Note,
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *Service) ListByMeal(ctx context.Context, mealID uint) ([]Response, error) {
	exists, err := s.repo.MealExists(ctx, mealID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMealNotFound
	}
	return s.repo.ListByMeal(ctx, mealID)
}

func trimSubmitInput(input SubmitInput) SubmitInput {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.FoodOther = strings.TrimSpace(input.FoodOther)
	input.DrinkOther = strings.TrimSpace(input.DrinkOther)
	input.SideOther = strings.TrimSpace(input.SideOther)
	input.Note = strings.TrimSpace(input.Note)
	return input
}

// selectedID maps the synthetic OtherID to "no catalog selection".
func selectedID(id uint) *uint {
	if id == OtherID {
		return nil
	}
	return &id
}

func appendOther(choices []Choice, description string) []Choice {
	return append(choices, Choice{ID: OtherID, Label: "Other", Description: description})
}

func appendOtherIfAny(choices []Choice, description string) []Choice {
	if len(choices) == 0 {
		return choices
	}
	return appendOther(choices, description)
}
