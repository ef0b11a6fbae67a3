package handler

import (
	"errors"
	"fmt"
	"net/http"

	exportdomain "mealpoll-go/internal/domain/export"
	"github.com/go-chi/chi/v5"
)

// ExportMealResponses streams a meal's responses as a CSV attachment.
func (h *Handlers) ExportMealResponses(w http.ResponseWriter, r *http.Request) {
	mealID, err := parseIDParam(chi.URLParam(r, "meal_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid meal id")
		return
	}

	result, err := h.Exports.ResponsesCSV(r.Context(), mealID)
	if err != nil {
		if errors.Is(err, exportdomain.ErrMealNotFound) {
			writeError(w, http.StatusNotFound, "meal_not_found", "meal not found")
			return
		}
		h.log.InternalError("export.csv: failed", err, "meal_id", mealID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}
