package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/internal/pagination"
	"github.com/etorres/go-api-scaffold/internal/service"
	"github.com/etorres/go-api-scaffold/internal/utils"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, offset, ok := parseListWindow(w, r)
	if !ok {
		return
	}

	query := service.ItemListQuery{
		Limit:      limit,
		Offset:     offset,
		Name:       r.URL.Query().Get("name"),
		OwnerLogin: r.URL.Query().Get("owner"),
	}

	if rawID := r.URL.Query().Get("id"); rawID != "" {
		itemID, err := uuid.Parse(rawID)
		if err != nil {
			http.Error(w, "invalid `id` query parameter", http.StatusBadRequest)
			return
		}
		query.ItemID = itemID
	}

	items, total, err := h.services.ItemService.ListItems(ctx, query)
	if err != nil {
		log.Err(err).Msg("error occurred during listing items")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	page, err := pagination.GetPagination(offset, limit, total, r.URL.RequestURI())
	if err != nil {
		log.Err(err).Msg("error occurred during pagination assembly")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := make([]models.ItemResponse, 0, len(items))
	for _, item := range items {
		data = append(data, models.ItemResponse{
			ItemID: item.ID.String(),
			Name:   item.Name,
		})
	}

	utils.WriteJSON(w, models.ItemListResponse{Data: data, Pagination: page}, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.GetItem(ctx, itemID)
	if err != nil {
		log.Err(err).Str("item_id", itemID.String()).Msg("error occurred during getting item")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var create models.ItemCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.CreateItem(ctx, ownerID, create)
	if err != nil {
		log.Err(err).Msg("error occurred during creating item")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Location", "/api/v1/items/"+item.ID.String())
	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var update models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.UpdateItem(ctx, itemID, update)
	if err != nil {
		log.Err(err).Str("item_id", itemID.String()).Msg("error occurred during updating item")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	itemID, ok := parseItemID(w, r)
	if !ok {
		return
	}

	// ?soft=true marks the row deleted instead of removing it.
	if r.URL.Query().Get("soft") == "true" {
		item, err := h.services.ItemService.SoftDeleteItem(ctx, itemID)
		if err != nil {
			log.Err(err).Str("item_id", itemID.String()).Msg("error occurred during soft-deleting item")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		utils.WriteJSON(w, item, http.StatusOK)
		return
	}

	if err := h.services.ItemService.DeleteItem(ctx, itemID); err != nil {
		log.Err(err).Str("item_id", itemID.String()).Msg("error occurred during deleting item")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseListWindow extracts and validates the limit/offset query parameters.
// On validation failure it writes a 400 response and returns ok=false.
func parseListWindow(w http.ResponseWriter, r *http.Request) (limit, offset int, ok bool) {
	limit = pagination.DefaultLimit

	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 || parsed > pagination.MaxLimit {
			http.Error(w, "invalid `limit` query parameter", http.StatusBadRequest)
			return 0, 0, false
		}
		limit = parsed
	}

	if rawOffset := r.URL.Query().Get("offset"); rawOffset != "" {
		parsed, err := strconv.Atoi(rawOffset)
		if err != nil || parsed < 0 || parsed > pagination.MaxOffset {
			http.Error(w, "invalid `offset` query parameter", http.StatusBadRequest)
			return 0, 0, false
		}
		offset = parsed
	}

	return limit, offset, true
}

// parseItemID extracts the {id} route parameter as a UUID. On failure it
// writes a 400 response and returns ok=false.
func parseItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return itemID, true
}
