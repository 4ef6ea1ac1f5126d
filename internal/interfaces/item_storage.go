package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/mandatum/internal/models"
)

// ErrItemNotFound is returned when an item lookup by ID matches nothing.
var ErrItemNotFound = errors.New("item not found")

// ItemStorage is the document collection holding Items.
//
// FindItems applies the matching policy declared by models.FieldMatchPolicy:
// name filters are case-insensitive substring matches, description filters
// are exact, and an empty filter matches all items.
type ItemStorage interface {
	CreateItem(ctx context.Context, data *models.ItemData) (*models.Item, error)
	GetItem(ctx context.Context, id string) (*models.Item, error)
	FindItems(ctx context.Context, filter *models.ItemFilter) ([]*models.Item, error)
	UpdateItem(ctx context.Context, id string, patch *models.ItemPatch) (*models.Item, error)
	DeleteItem(ctx context.Context, id string) (*models.Item, error)
	CountItems(ctx context.Context) (int, error)
}

// QueryOrchestrator translates a free-text request into storage operations
// and returns the outcome of the last operation executed.
type QueryOrchestrator interface {
	Execute(ctx context.Context, query string) (*models.QueryResult, error)
}
