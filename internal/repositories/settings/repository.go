// Package settings persists the add-on settings and broadcasts changes to
// running hosts
package settings

//go:generate mockgen -destination=mock/mock_repository.go -package=settingsmock github.com/KirkDiggler/rpg-tooltips/internal/repositories/settings Repository

import (
	"context"

	entities "github.com/KirkDiggler/rpg-tooltips/internal/entities/settings"
)

// Repository defines the interface for settings persistence
type Repository interface {
	// Get retrieves the stored settings
	// Returns errors.NotFound if nothing has been stored yet
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update stores the settings and notifies watchers
	// Returns errors.InvalidArgument for invalid settings
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Watch calls OnChange for every update until ctx is done or Stop is
	// called. It returns once the subscription is active.
	Watch(ctx context.Context, input WatchInput) (*WatchOutput, error)
}

// GetInput defines the input for getting settings
type GetInput struct{}

// GetOutput defines the output for getting settings
type GetOutput struct {
	Settings *entities.Settings
}

// UpdateInput defines the input for updating settings
type UpdateInput struct {
	Settings *entities.Settings
}

// UpdateOutput defines the output for updating settings
type UpdateOutput struct {
	Settings *entities.Settings
}

// WatchInput defines the input for watching settings
type WatchInput struct {
	OnChange func(*entities.Settings)
}

// WatchOutput defines the output for watching settings
type WatchOutput struct {
	// Stop ends the watch and waits for the delivery goroutine to exit
	Stop func()
}
