package handler

import (
	"errors"
	"net/http"

	catalogdomain "mealpoll-go/internal/domain/catalog"
	"github.com/go-chi/chi/v5"
)

type catalogItemRequest struct {
	Name        string `json:"name,omitempty"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	SideIDs     []uint `json:"side_ids,omitempty"`
}

type catalogItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name,omitempty"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	SideIDs     []uint `json:"side_ids,omitempty"`
}

type catalogListResponse struct {
	Kind  string                `json:"kind"`
	Items []catalogItemResponse `json:"items"`
}

func (h *Handlers) ListCatalog(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.parseKind(w, r)
	if !ok {
		return
	}

	items, err := h.Catalog.List(r.Context(), kind)
	if err != nil {
		h.log.InternalError("catalog.list: failed", err, "kind", kind.String())
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	result := catalogListResponse{Kind: kind.String(), Items: make([]catalogItemResponse, 0, len(items))}
	for _, item := range items {
		result.Items = append(result.Items, toCatalogItemResponse(kind, item))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateCatalogItem(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.parseKind(w, r)
	if !ok {
		return
	}

	var req catalogItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	item, err := h.Catalog.Create(r.Context(), kind, toCatalogInput(req))
	if err != nil {
		h.writeCatalogError(w, err, "catalog.create")
		return
	}
	writeJSON(w, http.StatusCreated, toCatalogItemResponse(kind, *item))
}

func (h *Handlers) UpdateCatalogItem(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.parseKind(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "item_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid item id")
		return
	}

	var req catalogItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	item, err := h.Catalog.Update(r.Context(), kind, id, toCatalogInput(req))
	if err != nil {
		h.writeCatalogError(w, err, "catalog.update")
		return
	}
	writeJSON(w, http.StatusOK, toCatalogItemResponse(kind, *item))
}

func (h *Handlers) DeleteCatalogItem(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.parseKind(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(chi.URLParam(r, "item_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid item id")
		return
	}

	if err := h.Catalog.Delete(r.Context(), kind, id); err != nil {
		h.writeCatalogError(w, err, "catalog.delete")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) parseKind(w http.ResponseWriter, r *http.Request) (catalogdomain.Kind, bool) {
	kind, err := catalogdomain.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_kind", "unknown catalog kind")
		return 0, false
	}
	return kind, true
}

func (h *Handlers) writeCatalogError(w http.ResponseWriter, err error, op string) {
	if errs, ok := asValidation(err); ok {
		writeValidationError(w, errs)
		return
	}
	if errors.Is(err, catalogdomain.ErrItemNotFound) {
		writeError(w, http.StatusNotFound, "item_not_found", "catalog item not found")
		return
	}
	h.log.InternalError(op+": failed", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func toCatalogInput(req catalogItemRequest) catalogdomain.Input {
	return catalogdomain.Input{
		Name:        req.Name,
		Label:       req.Label,
		Description: req.Description,
		SideIDs:     req.SideIDs,
	}
}

func toCatalogItemResponse(kind catalogdomain.Kind, item catalogdomain.Item) catalogItemResponse {
	result := catalogItemResponse{
		ID:          item.ID,
		Description: item.Description,
		SideIDs:     item.SideIDs,
	}
	if kind.UsesName() {
		result.Name = item.Display
	} else {
		result.Label = item.Display
	}
	return result
}
