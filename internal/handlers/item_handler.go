package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/mandatum/internal/interfaces"
	"github.com/ternarybob/mandatum/internal/models"
)

// ItemHandler handles direct REST access to the item collection. It shares
// storage with the AI query orchestrator, so items created either way are
// visible to both surfaces.
type ItemHandler struct {
	storage interfaces.ItemStorage
	logger  arbor.ILogger
}

// NewItemHandler creates a new item handler
func NewItemHandler(storage interfaces.ItemStorage, logger arbor.ILogger) *ItemHandler {
	return &ItemHandler{
		storage: storage,
		logger:  logger,
	}
}

// ListHandler handles GET /api/items.
// An optional ?name= parameter filters by case-insensitive substring, the
// same matching rule the AI query path applies.
func (h *ItemHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	filter := &models.ItemFilter{
		Name:        r.URL.Query().Get("name"),
		Description: r.URL.Query().Get("description"),
	}

	items, err := h.storage.FindItems(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list items")
		WriteError(w, http.StatusInternalServerError, "Failed to list items")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// CreateHandler handles POST /api/items
func (h *ItemHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var data models.ItemData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if data.Name == "" || data.Description == "" {
		WriteError(w, http.StatusBadRequest, "Name and description are required")
		return
	}

	item, err := h.storage.CreateItem(r.Context(), &data)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create item")
		WriteError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	WriteJSON(w, http.StatusCreated, item)
}

// GetHandler handles GET /api/items/{id}
func (h *ItemHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id := itemIDFromPath(r.URL.Path)
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Item ID is required")
		return
	}

	item, err := h.storage.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrItemNotFound) {
			WriteError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to get item")
		WriteError(w, http.StatusInternalServerError, "Failed to get item")
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// UpdateHandler handles PUT /api/items/{id}
func (h *ItemHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id := itemIDFromPath(r.URL.Path)
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Item ID is required")
		return
	}

	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if patch.IsEmpty() {
		WriteError(w, http.StatusBadRequest, "At least one field must be set")
		return
	}

	item, err := h.storage.UpdateItem(r.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, interfaces.ErrItemNotFound) {
			WriteError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to update item")
		WriteError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// DeleteHandler handles DELETE /api/items/{id}
func (h *ItemHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id := itemIDFromPath(r.URL.Path)
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Item ID is required")
		return
	}

	item, err := h.storage.DeleteItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrItemNotFound) {
			WriteError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to delete item")
		WriteError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// StatsHandler handles GET /api/items/stats
func (h *ItemHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	count, err := h.storage.CountItems(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to count items")
		WriteError(w, http.StatusInternalServerError, "Failed to get statistics")
		return
	}

	WriteJSON(w, http.StatusOK, &models.ItemStats{
		TotalItems:  count,
		LastUpdated: time.Now(),
	})
}

// itemIDFromPath extracts the item ID from /api/items/{id}
func itemIDFromPath(path string) string {
	id := strings.TrimPrefix(path, "/api/items/")
	id = strings.TrimSuffix(id, "/")
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
