package badger

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/mandatum/internal/common"
	"github.com/ternarybob/mandatum/internal/interfaces"
	"github.com/ternarybob/mandatum/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// ItemStorage implements the ItemStorage interface for Badger
type ItemStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewItemStorage creates a new ItemStorage instance
func NewItemStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ItemStorage {
	return &ItemStorage{
		db:     db,
		logger: logger,
	}
}

// CreateItem inserts a new item and assigns its identity.
func (s *ItemStorage) CreateItem(ctx context.Context, data *models.ItemData) (*models.Item, error) {
	now := time.Now()
	item := &models.Item{
		ID:          common.NewItemID(),
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.db.Store().Insert(item.ID, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Debug().Str("id", item.ID).Str("name", item.Name).Msg("Item created")
	return item, nil
}

// GetItem returns a single item by ID.
func (s *ItemStorage) GetItem(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	if err := s.db.Store().Get(id, &item); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, interfaces.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

// FindItems returns items matching the filter. Name filters use a
// case-insensitive substring match (models.MatchSubstringFold); description
// filters are exact. An empty or nil filter matches all items.
func (s *ItemStorage) FindItems(ctx context.Context, filter *models.ItemFilter) ([]*models.Item, error) {
	query, err := buildFilterQuery(filter)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if err := s.db.Store().Find(&items, query); err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}

	result := make([]*models.Item, len(items))
	for i := range items {
		result[i] = &items[i]
	}
	return result, nil
}

// buildFilterQuery translates an ItemFilter into a badgerhold query applying
// the per-field matching policy.
func buildFilterQuery(filter *models.ItemFilter) (*badgerhold.Query, error) {
	if filter.IsEmpty() {
		return badgerhold.Where("ID").Ne(""), nil
	}

	var query *badgerhold.Query
	if filter.Name != "" {
		// Escape regex special characters so the filter value is treated as
		// literal text.
		regex, err := regexp.Compile("(?i)" + regexp.QuoteMeta(filter.Name))
		if err != nil {
			return nil, fmt.Errorf("invalid name filter: %w", err)
		}
		query = badgerhold.Where("Name").RegExp(regex)
	}

	if filter.Description != "" {
		if query == nil {
			query = badgerhold.Where("Description").Eq(filter.Description)
		} else {
			query = query.And("Description").Eq(filter.Description)
		}
	}

	return query, nil
}

// UpdateItem applies a field-level patch to a single item and returns the
// post-update representation.
func (s *ItemStorage) UpdateItem(ctx context.Context, id string, patch *models.ItemPatch) (*models.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	item.UpdatedAt = time.Now()

	if err := s.db.Store().Update(id, item); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, interfaces.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.logger.Debug().Str("id", id).Msg("Item updated")
	return item, nil
}

// DeleteItem removes a single item and returns the removed representation.
func (s *ItemStorage) DeleteItem(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Store().Delete(id, &models.Item{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, interfaces.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	s.logger.Debug().Str("id", id).Msg("Item deleted")
	return item, nil
}

// CountItems returns the total number of items in the collection.
func (s *ItemStorage) CountItems(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.Item{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return int(count), nil
}
