package handler

import (
	"errors"
	"net/http"

	mealdomain "mealpoll-go/internal/domain/meal"
	"github.com/go-chi/chi/v5"
)

type mealRequest struct {
	MealTypeID       uint   `json:"meal_type_id"`
	Restaurant       string `json:"restaurant"`
	Date             string `json:"date"`
	DrinkIDs         []uint `json:"drink_ids"`
	FoodIDs          []uint `json:"food_ids"`
	RegistrationOpen bool   `json:"registration_open"`
}

type mealResponse struct {
	ID               uint             `json:"id"`
	MealTypeID       *uint            `json:"meal_type_id"`
	MealTypeName     string           `json:"meal_type_name"`
	Restaurant       string           `json:"restaurant,omitempty"`
	Date             string           `json:"date"`
	RegistrationOpen bool             `json:"registration_open"`
	Drinks           []choiceResponse `json:"drinks"`
	Foods            []choiceResponse `json:"foods"`
}

type mealListResponse struct {
	Items []mealResponse `json:"items"`
}

func (h *Handlers) ListOpenMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.Meals.ListOpen(r.Context())
	if err != nil {
		h.log.InternalError("meals.list_open: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toMealListResponse(meals))
}

func (h *Handlers) ListMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.Meals.List(r.Context())
	if err != nil {
		h.log.InternalError("meals.list: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toMealListResponse(meals))
}

func (h *Handlers) GetMeal(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "meal_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal id")
		return
	}

	result, err := h.Meals.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, mealdomain.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		h.log.InternalError("meals.get: failed", err, "meal_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toMealResponse(*result))
}

func (h *Handlers) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	input, err := toMealInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date, expected YYYY-MM-DD")
		return
	}

	created, err := h.Meals.Create(r.Context(), input)
	if err != nil {
		h.writeMealError(w, err, "meals.create")
		return
	}
	writeJSON(w, http.StatusCreated, toMealResponse(*created))
}

func (h *Handlers) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "meal_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal id")
		return
	}

	var req mealRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	input, err := toMealInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date, expected YYYY-MM-DD")
		return
	}

	updated, err := h.Meals.Update(r.Context(), id, input)
	if err != nil {
		h.writeMealError(w, err, "meals.update")
		return
	}
	writeJSON(w, http.StatusOK, toMealResponse(*updated))
}

func (h *Handlers) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "meal_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal id")
		return
	}

	if err := h.Meals.Delete(r.Context(), id); err != nil {
		if errors.Is(err, mealdomain.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		h.log.InternalError("meals.delete: failed", err, "meal_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) writeMealError(w http.ResponseWriter, err error, op string) {
	if errs, ok := asValidation(err); ok {
		writeValidationError(w, errs)
		return
	}
	if errors.Is(err, mealdomain.ErrMealNotFound) {
		writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
		return
	}
	if errors.Is(err, mealdomain.ErrMealTypeNotFound) {
		writeError(w, http.StatusNotFound, "meal_type_not_found", "meal type not found")
		return
	}
	h.log.InternalError(op+": failed", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func toMealInput(req mealRequest) (mealdomain.Input, error) {
	date, err := parseDateRequired(req.Date)
	if err != nil {
		return mealdomain.Input{}, err
	}
	return mealdomain.Input{
		MealTypeID:       req.MealTypeID,
		Restaurant:       req.Restaurant,
		Date:             date,
		DrinkIDs:         req.DrinkIDs,
		FoodIDs:          req.FoodIDs,
		RegistrationOpen: req.RegistrationOpen,
	}, nil
}

func toMealResponse(m mealdomain.Meal) mealResponse {
	drinks := make([]choiceResponse, 0, len(m.Drinks))
	for _, drink := range m.Drinks {
		drinks = append(drinks, choiceResponse{ID: drink.ID, Label: drink.Label, Description: drink.Description})
	}
	foods := make([]choiceResponse, 0, len(m.Foods))
	for _, food := range m.Foods {
		foods = append(foods, choiceResponse{ID: food.ID, Label: food.Label, Description: food.Description})
	}

	result := mealResponse{
		ID:               m.ID,
		MealTypeID:       m.MealTypeID,
		Restaurant:       m.Restaurant,
		Date:             m.Date.Format("2006-01-02"),
		RegistrationOpen: m.RegistrationOpen,
		Drinks:           drinks,
		Foods:            foods,
	}
	if m.MealType != nil {
		result.MealTypeName = m.MealType.Name
	}
	return result
}

func toMealListResponse(meals []mealdomain.Meal) mealListResponse {
	items := make([]mealResponse, 0, len(meals))
	for _, m := range meals {
		items = append(items, toMealResponse(m))
	}
	return mealListResponse{Items: items}
}
