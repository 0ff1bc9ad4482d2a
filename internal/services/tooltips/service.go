// Package tooltips wires the hover tooltip into a running host: it decides
// whether the add-on activates, starts the controller, registers the row
// bindings and keeps type visibility in sync with stored settings.
package tooltips

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-tooltips/internal/clients/compendium"
	entities "github.com/KirkDiggler/rpg-tooltips/internal/entities/settings"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/handlers/hover"
	"github.com/KirkDiggler/rpg-tooltips/internal/host"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/settings"
)

// Activation outcomes
const (
	ReasonActive         = "active"
	ReasonDisabled       = "disabled"
	ReasonSystemMismatch = "system_mismatch"
)

// Controller is the tooltip controller as driven by the service
type Controller interface {
	hover.Controller
	Start() error
	Stop()
	SetVisibility(v entities.TypeVisibility)
}

// Config holds the dependencies for the add-on service
type Config struct {
	Controller Controller
	Hooks      *host.Hooks
	Settings   settings.Repository
	Actors     actors.Repository
	Items      items.Repository
	Compendium compendium.Client
	// Defaults apply until settings are stored. Defaults to
	// entities.Defaults().
	Defaults *entities.Settings
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Controller == nil {
		vb.RequiredField("Controller")
	}
	if c.Hooks == nil {
		vb.RequiredField("Hooks")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}
	if c.Actors == nil {
		vb.RequiredField("Actors")
	}
	if c.Items == nil {
		vb.RequiredField("Items")
	}
	if c.Compendium == nil {
		vb.RequiredField("Compendium")
	}

	return vb.Build()
}

// ActivateInput identifies the host being activated in
type ActivateInput struct {
	Host host.Info
}

// ActivateOutput reports whether the add-on is running
type ActivateOutput struct {
	Active   bool
	Reason   string
	Settings *entities.Settings
}

// Service manages the add-on lifecycle
type Service struct {
	controller Controller
	hooks      *host.Hooks
	settings   settings.Repository
	defaults   *entities.Settings
	binders    []hover.Binder

	mu        sync.Mutex
	active    bool
	unhook    func()
	stopWatch func()
	cancel    context.CancelFunc
}

// NewService creates the add-on service
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sheet, err := hover.NewSheetBinder(&hover.SheetConfig{Controller: cfg.Controller, Actors: cfg.Actors})
	if err != nil {
		return nil, err
	}
	directory, err := hover.NewDirectoryBinder(&hover.DirectoryConfig{Controller: cfg.Controller, Items: cfg.Items})
	if err != nil {
		return nil, err
	}
	pack, err := hover.NewCompendiumBinder(&hover.CompendiumConfig{Controller: cfg.Controller, Client: cfg.Compendium})
	if err != nil {
		return nil, err
	}

	defaults := cfg.Defaults
	if defaults == nil {
		defaults = entities.Defaults()
	}

	return &Service{
		controller: cfg.Controller,
		hooks:      cfg.Hooks,
		settings:   cfg.Settings,
		defaults:   defaults,
		binders:    []hover.Binder{sheet, directory, pack},
	}, nil
}

// Activate starts the add-on unless it is disabled or the host runs a
// different game system. Activating an active service does nothing.
func (s *Service) Activate(ctx context.Context, input *ActivateInput) (*ActivateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if s.active {
		return &ActivateOutput{Active: true, Reason: ReasonActive, Settings: current}, nil
	}

	if !current.Enabled {
		slog.InfoContext(ctx, "tooltips disabled")
		return &ActivateOutput{Reason: ReasonDisabled, Settings: current}, nil
	}
	if input.Host.SystemID != current.SystemID {
		slog.WarnContext(ctx, "tooltips not activated for this game system",
			"host_system_id", input.Host.SystemID,
			"supported_system_id", current.SystemID)
		return &ActivateOutput{Reason: ReasonSystemMismatch, Settings: current}, nil
	}

	s.controller.SetVisibility(current.Types)
	if err := s.controller.Start(); err != nil {
		return nil, errors.Wrap(err, "failed to start tooltip controller")
	}
	s.unhook = hover.Register(s.hooks, s.binders...)

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	watch, err := s.settings.Watch(watchCtx, settings.WatchInput{OnChange: s.apply})
	if err != nil {
		slog.WarnContext(ctx, "settings changes will not apply until restart", "error", err)
	} else {
		s.stopWatch = watch.Stop
	}

	s.active = true
	slog.InfoContext(ctx, "tooltips activated",
		"system_id", current.SystemID,
		"types", current.Types.String())

	return &ActivateOutput{Active: true, Reason: ReasonActive, Settings: current}, nil
}

// Deactivate removes the bindings, stops the settings watch and the
// controller
func (s *Service) Deactivate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	if s.unhook != nil {
		s.unhook()
		s.unhook = nil
	}
	if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.controller.Stop()
	s.active = false

	slog.InfoContext(ctx, "tooltips deactivated")
}

// Active reports whether the add-on is running
func (s *Service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Service) load(ctx context.Context) (*entities.Settings, error) {
	out, err := s.settings.Get(ctx, settings.GetInput{})
	if err != nil {
		if errors.IsNotFound(err) {
			d := *s.defaults
			return &d, nil
		}
		return nil, errors.Wrap(err, "failed to load settings")
	}
	return out.Settings, nil
}

func (s *Service) apply(next *entities.Settings) {
	s.controller.SetVisibility(next.Types)
	slog.Info("tooltip type visibility changed", "types", next.Types.String())
	if !next.Enabled {
		slog.Info("tooltips disabled, takes effect on next activation")
	}
}
