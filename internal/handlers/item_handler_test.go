package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/mandatum/internal/common"
	"github.com/ternarybob/mandatum/internal/interfaces"
	"github.com/ternarybob/mandatum/internal/models"
	"github.com/ternarybob/mandatum/internal/storage/badger"
)

func newItemHandler(t *testing.T) (*ItemHandler, interfaces.ItemStorage) {
	t.Helper()

	logger := arbor.NewLogger()
	db, err := badger.NewBadgerDB(logger, &common.BadgerConfig{
		Path: filepath.Join(t.TempDir(), "db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	storage := badger.NewItemStorage(db, logger)
	return NewItemHandler(storage, logger), storage
}

func seedItems(t *testing.T, storage interfaces.ItemStorage, items map[string]string) {
	t.Helper()
	for name, description := range items {
		_, err := storage.CreateItem(context.Background(), &models.ItemData{
			Name:        name,
			Description: description,
		})
		require.NoError(t, err)
	}
}

func jsonDecode(rec *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

func TestItemCreateAndGet(t *testing.T) {
	handler, _ := newItemHandler(t)

	rec := httptest.NewRecorder()
	handler.CreateHandler(rec, httptest.NewRequest(http.MethodPost, "/api/items",
		strings.NewReader(`{"name": "apple", "description": "a fruit"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Item
	require.NoError(t, jsonDecode(rec, &created))
	assert.NotEmpty(t, created.ID)

	rec = httptest.NewRecorder()
	handler.GetHandler(rec, httptest.NewRequest(http.MethodGet, "/api/items/"+created.ID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got models.Item
	require.NoError(t, jsonDecode(rec, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "apple", got.Name)
}

func TestItemCreateRejectsIncompleteBody(t *testing.T) {
	handler, _ := newItemHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing description", `{"name": "apple"}`},
		{"missing name", `{"description": "a fruit"}`},
		{"not json", `apple`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.CreateHandler(rec, httptest.NewRequest(http.MethodPost, "/api/items",
				strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestItemListWithNameFilter(t *testing.T) {
	handler, storage := newItemHandler(t)
	seedItems(t, storage, map[string]string{
		"Green Apple": "a fruit",
		"Pineapple":   "another fruit",
		"Carrot":      "a vegetable",
	})

	rec := httptest.NewRecorder()
	handler.ListHandler(rec, httptest.NewRequest(http.MethodGet, "/api/items?name=apple", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items []*models.Item `json:"items"`
		Count int            `json:"count"`
	}
	require.NoError(t, jsonDecode(rec, &body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Items, 2)
}

func TestItemUpdateNotFound(t *testing.T) {
	handler, _ := newItemHandler(t)

	rec := httptest.NewRecorder()
	handler.UpdateHandler(rec, httptest.NewRequest(http.MethodPut, "/api/items/item_missing",
		strings.NewReader(`{"description": "new"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemUpdateEmptyPatch(t *testing.T) {
	handler, storage := newItemHandler(t)
	seedItems(t, storage, map[string]string{"Apple": "a fruit"})

	items, err := storage.FindItems(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	rec := httptest.NewRecorder()
	handler.UpdateHandler(rec, httptest.NewRequest(http.MethodPut, "/api/items/"+items[0].ID,
		strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItemDeleteReturnsRemoved(t *testing.T) {
	handler, storage := newItemHandler(t)
	seedItems(t, storage, map[string]string{"Apple": "a fruit"})

	items, err := storage.FindItems(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	rec := httptest.NewRecorder()
	handler.DeleteHandler(rec, httptest.NewRequest(http.MethodDelete, "/api/items/"+items[0].ID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var removed models.Item
	require.NoError(t, jsonDecode(rec, &removed))
	assert.Equal(t, "Apple", removed.Name)

	rec = httptest.NewRecorder()
	handler.GetHandler(rec, httptest.NewRequest(http.MethodGet, "/api/items/"+items[0].ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemStats(t *testing.T) {
	handler, storage := newItemHandler(t)
	seedItems(t, storage, map[string]string{
		"Apple":  "a fruit",
		"Banana": "another fruit",
	})

	rec := httptest.NewRecorder()
	handler.StatsHandler(rec, httptest.NewRequest(http.MethodGet, "/api/items/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.ItemStats
	require.NoError(t, jsonDecode(rec, &stats))
	assert.Equal(t, 2, stats.TotalItems)
}

func TestItemIDFromPath(t *testing.T) {
	assert.Equal(t, "item_1", itemIDFromPath("/api/items/item_1"))
	assert.Equal(t, "item_1", itemIDFromPath("/api/items/item_1/"))
	assert.Equal(t, "", itemIDFromPath("/api/items/"))
	assert.Equal(t, "", itemIDFromPath("/api/items/item_1/extra"))
}
