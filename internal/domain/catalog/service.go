package catalog

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

// List returns every item of the kind, ordered by name for meal types and by
// label for everything else.
func (s *Service) List(ctx context.Context, kind Kind) ([]Item, error) {
	switch kind {
	case KindMealType:
		mealTypes, err := s.repo.ListMealTypes(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, 0, len(mealTypes))
		for _, mealType := range mealTypes {
			items = append(items, Item{ID: mealType.ID, Display: mealType.Name})
		}
		return items, nil
	case KindDrink:
		drinks, err := s.repo.ListDrinks(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, 0, len(drinks))
		for _, drink := range drinks {
			items = append(items, Item{ID: drink.ID, Display: drink.Label, Description: drink.Description})
		}
		return items, nil
	case KindFood:
		foods, err := s.repo.ListFoods(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, 0, len(foods))
		for _, food := range foods {
			sideIDs := make([]uint, 0, len(food.Sides))
			for _, side := range food.Sides {
				sideIDs = append(sideIDs, side.ID)
			}
			items = append(items, Item{ID: food.ID, Display: food.Label, Description: food.Description, SideIDs: sideIDs})
		}
		return items, nil
	case KindSide:
		sides, err := s.repo.ListSides(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, 0, len(sides))
		for _, side := range sides {
			items = append(items, Item{ID: side.ID, Display: side.Label, Description: side.Description})
		}
		return items, nil
	default:
		return nil, ErrUnknownKind
	}
}

func (s *Service) Get(ctx context.Context, kind Kind, id uint) (*Item, error) {
	switch kind {
	case KindMealType:
		mealType, err := s.repo.GetMealType(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Item{ID: mealType.ID, Display: mealType.Name}, nil
	case KindDrink:
		drink, err := s.repo.GetDrink(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Item{ID: drink.ID, Display: drink.Label, Description: drink.Description}, nil
	case KindFood:
		food, err := s.repo.GetFood(ctx, id)
		if err != nil {
			return nil, err
		}
		sideIDs, err := s.repo.SideIDsByFood(ctx, food.ID)
		if err != nil {
			return nil, err
		}
		return &Item{ID: food.ID, Display: food.Label, Description: food.Description, SideIDs: sideIDs}, nil
	case KindSide:
		side, err := s.repo.GetSide(ctx, id)
		if err != nil {
			return nil, err
		}
		return &Item{ID: side.ID, Display: side.Label, Description: side.Description}, nil
	default:
		return nil, ErrUnknownKind
	}
}

func (s *Service) Create(ctx context.Context, kind Kind, input Input) (*Item, error) {
	input = trimInput(input)
	if err := validateInput(kind, input); err != nil {
		return nil, err
	}

	switch kind {
	case KindMealType:
		mealType := MealType{Name: input.Name}
		if err := s.repo.CreateMealType(ctx, &mealType); err != nil {
			return nil, err
		}
		return &Item{ID: mealType.ID, Display: mealType.Name}, nil
	case KindDrink:
		drink := Drink{Label: input.Label, Description: input.Description}
		if err := s.repo.CreateDrink(ctx, &drink); err != nil {
			return nil, err
		}
		return &Item{ID: drink.ID, Display: drink.Label, Description: drink.Description}, nil
	case KindFood:
		food := Food{Label: input.Label, Description: input.Description}
		err := s.repo.Transaction(ctx, func(tx Repository) error {
			if err := tx.CreateFood(ctx, &food); err != nil {
				return err
			}
			return tx.AddFoodSides(ctx, food.ID, input.SideIDs)
		})
		if err != nil {
			return nil, err
		}
		return &Item{ID: food.ID, Display: food.Label, Description: food.Description, SideIDs: input.SideIDs}, nil
	case KindSide:
		side := Side{Label: input.Label, Description: input.Description}
		if err := s.repo.CreateSide(ctx, &side); err != nil {
			return nil, err
		}
		return &Item{ID: side.ID, Display: side.Label, Description: side.Description}, nil
	default:
		return nil, ErrUnknownKind
	}
}

func (s *Service) Update(ctx context.Context, kind Kind, id uint, input Input) (*Item, error) {
	input = trimInput(input)
	if err := validateInput(kind, input); err != nil {
		return nil, err
	}

	switch kind {
	case KindMealType:
		mealType, err := s.repo.GetMealType(ctx, id)
		if err != nil {
			return nil, err
		}
		mealType.Name = input.Name
		if err := s.repo.UpdateMealType(ctx, mealType); err != nil {
			return nil, err
		}
		return &Item{ID: mealType.ID, Display: mealType.Name}, nil
	case KindDrink:
		drink, err := s.repo.GetDrink(ctx, id)
		if err != nil {
			return nil, err
		}
		drink.Label = input.Label
		drink.Description = input.Description
		if err := s.repo.UpdateDrink(ctx, drink); err != nil {
			return nil, err
		}
		return &Item{ID: drink.ID, Display: drink.Label, Description: drink.Description}, nil
	case KindFood:
		var result Item
		err := s.repo.Transaction(ctx, func(tx Repository) error {
			food, err := tx.GetFood(ctx, id)
			if err != nil {
				return err
			}
			food.Label = input.Label
			food.Description = input.Description
			if err := tx.UpdateFood(ctx, food); err != nil {
				return err
			}

			current, err := tx.SideIDsByFood(ctx, food.ID)
			if err != nil {
				return err
			}
			added, removed := diffIDs(current, input.SideIDs)
			if err := tx.RemoveFoodSides(ctx, food.ID, removed); err != nil {
				return err
			}
			if err := tx.AddFoodSides(ctx, food.ID, added); err != nil {
				return err
			}

			result = Item{ID: food.ID, Display: food.Label, Description: food.Description, SideIDs: input.SideIDs}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &result, nil
	case KindSide:
		side, err := s.repo.GetSide(ctx, id)
		if err != nil {
			return nil, err
		}
		side.Label = input.Label
		side.Description = input.Description
		if err := s.repo.UpdateSide(ctx, side); err != nil {
			return nil, err
		}
		return &Item{ID: side.ID, Display: side.Label, Description: side.Description}, nil
	default:
		return nil, ErrUnknownKind
	}
}

// Delete removes the item and its association rows. Responses that referenced
// the item keep only their free-text override; meals lose the join row.
func (s *Service) Delete(ctx context.Context, kind Kind, id uint) error {
	switch kind {
	case KindMealType:
		if _, err := s.repo.GetMealType(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteMealType(ctx, id)
	case KindDrink:
		if _, err := s.repo.GetDrink(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteDrink(ctx, id)
	case KindFood:
		if _, err := s.repo.GetFood(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteFood(ctx, id)
	case KindSide:
		if _, err := s.repo.GetSide(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteSide(ctx, id)
	default:
		return ErrUnknownKind
	}
}

func (s *Service) SidesForFood(ctx context.Context, foodID uint) ([]Side, error) {
	if _, err := s.repo.GetFood(ctx, foodID); err != nil {
		return nil, err
	}
	return s.repo.SidesByFood(ctx, foodID)
}

func trimInput(input Input) Input {
	input.Name = strings.TrimSpace(input.Name)
	input.Label = strings.TrimSpace(input.Label)
	input.Description = strings.TrimSpace(input.Description)
	return input
}

func validateInput(kind Kind, input Input) error {
	errs := validate.Errors{}
	if kind.UsesName() {
		errs.Require("name", input.Name)
	} else {
		errs.Require("label", input.Label)
	}
	return errs.OrNil()
}

// diffIDs computes the additions and removals needed to turn current into
// desired, ignoring duplicates on either side.
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
