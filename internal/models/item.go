package models

import (
	"time"
)

// Item is the persisted record type. Identity is assigned by the storage
// layer on creation (item_{uuid}).
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemData carries the full field set required to create an Item.
type ItemData struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ItemPatch carries a partial field-level update. Nil fields are left
// untouched on the target item.
type ItemPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (p *ItemPatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Description == nil)
}

// MatchPolicy names the matching strategy a storage backend must apply to a
// filter field. The policy is part of the service contract so alternate
// backends implement matching identically.
type MatchPolicy string

const (
	// MatchSubstringFold matches when the stored value contains the filter
	// value, ignoring case.
	MatchSubstringFold MatchPolicy = "substring_fold"
	// MatchExact matches on exact equality.
	MatchExact MatchPolicy = "exact"
)

// ItemFilter selects items by partial match. An empty filter matches all
// items.
type ItemFilter struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsEmpty reports whether the filter matches all items.
func (f *ItemFilter) IsEmpty() bool {
	return f == nil || (f.Name == "" && f.Description == "")
}

// FieldMatchPolicy returns the matching strategy for an Item filter field.
// Name searches are substring and case-insensitive; everything else is exact.
func FieldMatchPolicy(field string) MatchPolicy {
	if field == "Name" || field == "name" {
		return MatchSubstringFold
	}
	return MatchExact
}

// ItemStats contains collection statistics.
type ItemStats struct {
	TotalItems  int       `json:"total_items"`
	LastUpdated time.Time `json:"last_updated"`
}
