// Package items provides persistence for the global item directory
package items

//go:generate mockgen -destination=mock/mock_repository.go -package=itemsmock github.com/KirkDiggler/rpg-tooltips/internal/repositories/items Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
)

// Repository defines the interface for directory item persistence
type Repository interface {
	// Get retrieves a directory item by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the item does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every directory item ordered by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Upsert stores an item, replacing any previous version
	// Returns errors.InvalidArgument when the item or its ID is missing
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// Delete removes an item from the directory
	// Returns errors.NotFound if the item does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *item.Item
}

// ListInput defines the input for listing items
type ListInput struct {
	// Type filters by type tag when set
	Type string
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []*item.Item
}

// UpsertInput defines the input for storing an item
type UpsertInput struct {
	Item *item.Item
}

// UpsertOutput defines the output for storing an item
type UpsertOutput struct {
	Item *item.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}
