// Package actors provides persistence for actor sheets and their owned items
package actors

//go:generate mockgen -destination=mock/mock_repository.go -package=actorsmock github.com/KirkDiggler/rpg-tooltips/internal/repositories/actors Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Get retrieves an actor with its owned items
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the actor does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetItem retrieves one item owned by an actor
	// Returns errors.NotFound if the actor or the item does not exist
	GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error)

	// List returns every actor ordered by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Upsert stores an actor and its items
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *item.Actor
}

// GetItemInput defines the input for getting an owned item
type GetItemInput struct {
	ActorID string
	ItemID  string
}

// GetItemOutput defines the output for getting an owned item
type GetItemOutput struct {
	Item *item.Item
}

// ListInput defines the input for listing actors
type ListInput struct{}

// ListOutput defines the output for listing actors
type ListOutput struct {
	Actors []*item.Actor
}

// UpsertInput defines the input for storing an actor
type UpsertInput struct {
	Actor *item.Actor
}

// UpsertOutput defines the output for storing an actor
type UpsertOutput struct {
	Actor *item.Actor
}
