package handler

import (
	"errors"
	"net/http"
	"time"

	responsedomain "mealpoll-go/internal/domain/response"
	"github.com/go-chi/chi/v5"
)

type choiceResponse struct {
	ID          uint   `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type choicesResponse struct {
	Foods  []choiceResponse `json:"foods"`
	Sides  []choiceResponse `json:"sides"`
	Drinks []choiceResponse `json:"drinks"`
}

type sidesResponse struct {
	Sides []choiceResponse `json:"sides"`
}

type submitResponseRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	FoodID     uint   `json:"food_id"`
	FoodOther  string `json:"food_other"`
	SideID     uint   `json:"side_id"`
	SideOther  string `json:"side_other"`
	DrinkID    uint   `json:"drink_id"`
	DrinkOther string `json:"drink_other"`

	Note string `json:"note"`
}

type responseResponse struct {
	ID        uint   `json:"id"`
	MealID    uint   `json:"meal_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	FoodID     *uint  `json:"food_id"`
	FoodOther  string `json:"food_other,omitempty"`
	SideID     *uint  `json:"side_id"`
	SideOther  string `json:"side_other,omitempty"`
	DrinkID    *uint  `json:"drink_id"`
	DrinkOther string `json:"drink_other,omitempty"`

	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type responseListResponse struct {
	Items []responseResponse `json:"items"`
}

// GetMealChoices serves the option sets for the public sign-up form.
func (h *Handlers) GetMealChoices(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "meal_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal id")
		return
	}

	choices, err := h.Responses.PresentChoices(r.Context(), id)
	if err != nil {
		if errors.Is(err, responsedomain.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		h.log.InternalError("responses.choices: failed", err, "meal_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, choicesResponse{
		Foods:  toChoiceResponses(choices.Foods),
		Sides:  toChoiceResponses(choices.Sides),
		Drinks: toChoiceResponses(choices.Drinks),
	})
}

// GetFoodSides serves the side options for one food, refreshed by the form
// when the respondent picks a food.
func (h *Handlers) GetFoodSides(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "food_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid food id")
		return
	}

	sides, err := h.Responses.SidesForFood(r.Context(), id)
	if err != nil {
		if errors.Is(err, responsedomain.ErrFoodNotFound) {
			writeError(w, http.StatusNotFound, "food_not_found", "food not found")
			return
		}
		h.log.InternalError("responses.sides: failed", err, "food_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, sidesResponse{Sides: toChoiceResponses(sides)})
}

func (h *Handlers) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	mealID, err := parseIDParam(chi.URLParam(r, "meal_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal id")
		return
	}

	var req submitResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	created, err := h.Responses.Submit(r.Context(), responsedomain.SubmitInput{
		MealID:     mealID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		FoodID:     req.FoodID,
		FoodOther:  req.FoodOther,
		SideID:     req.SideID,
		SideOther:  req.SideOther,
		DrinkID:    req.DrinkID,
		DrinkOther: req.DrinkOther,
		Note:       req.Note,
	})
	if err != nil {
		if errs, ok := asValidation(err); ok {
			writeValidationError(w, errs)
			return
		}
		if errors.Is(err, responsedomain.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		h.log.InternalError("responses.submit: failed", err, "meal_id", mealID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toResponseResponse(*created))
}

func (h *Handlers) ListMealResponses(w http.ResponseWriter, r *http.Request) {
	mealID, err := parseIDParam(chi.URLParam(r, "meal_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal id")
		return
	}

	responses, err := h.Responses.ListByMeal(r.Context(), mealID)
	if err != nil {
		if errors.Is(err, responsedomain.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		h.log.InternalError("responses.list: failed", err, "meal_id", mealID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]responseResponse, 0, len(responses))
	for _, entry := range responses {
		items = append(items, toResponseResponse(entry))
	}
	writeJSON(w, http.StatusOK, responseListResponse{Items: items})
}

func toChoiceResponses(choices []responsedomain.Choice) []choiceResponse {
	result := make([]choiceResponse, 0, len(choices))
	for _, choice := range choices {
		result = append(result, choiceResponse{ID: choice.ID, Label: choice.Label, Description: choice.Description})
	}
	return result
}

func toResponseResponse(entry responsedomain.Response) responseResponse {
	return responseResponse{
		ID:         entry.ID,
		MealID:     entry.MealID,
		FirstName:  entry.FirstName,
		LastName:   entry.LastName,
		Email:      entry.Email,
		FoodID:     entry.FoodID,
		FoodOther:  entry.FoodOther,
		SideID:     entry.SideID,
		SideOther:  entry.SideOther,
		DrinkID:    entry.DrinkID,
		DrinkOther: entry.DrinkOther,
		Note:       entry.Note,
		CreatedAt:  entry.CreatedAt,
	}
}
