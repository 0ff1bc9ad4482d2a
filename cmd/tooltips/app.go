package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-tooltips/internal/clients/compendium"
	"github.com/KirkDiggler/rpg-tooltips/internal/config"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	"github.com/KirkDiggler/rpg-tooltips/internal/i18n"
	redisclient "github.com/KirkDiggler/rpg-tooltips/internal/redis"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/items"
	"github.com/KirkDiggler/rpg-tooltips/internal/repositories/settings"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/content"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/enricher"
	"github.com/KirkDiggler/rpg-tooltips/internal/services/tooltips"
)

// app bundles the dependencies shared by the commands
type app struct {
	cfg        *config.Config
	redis      redisclient.Client
	items      items.Repository
	actors     actors.Repository
	settings   settings.Repository
	compendium compendium.Client
	localizer  *i18n.Localizer
	renderer   *content.Renderer
	logOut     io.Closer
}

// newApp loads configuration, sets up logging and connects to Redis. The
// default log file is used when --log-file is not given.
func newApp(defaultLogFile string) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if err := a.setupLogging(defaultLogFile); err != nil {
		return nil, err
	}

	a.redis, err = redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{PingOnCreate: true})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	if a.items, err = items.NewRedis(&items.RedisConfig{Client: a.redis}); err != nil {
		a.Close()
		return nil, err
	}
	if a.actors, err = actors.NewRedis(&actors.RedisConfig{Client: a.redis}); err != nil {
		a.Close()
		return nil, err
	}
	if a.settings, err = settings.NewRedis(&settings.RedisConfig{Client: a.redis}); err != nil {
		a.Close()
		return nil, err
	}

	a.compendium, err = compendium.New(&compendium.Config{
		BaseURL:  cfg.CompendiumURL,
		CacheTTL: cfg.CompendiumCacheTTL,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.localizer, err = i18n.New(&i18n.Config{Locale: cfg.Locale})
	if err != nil {
		a.Close()
		return nil, err
	}

	names, err := tooltips.NewNameResolver(&tooltips.NamesConfig{
		Items:      a.items,
		Actors:     a.actors,
		Compendium: a.compendium,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.renderer, err = content.NewRenderer(&content.RendererConfig{
		Localizer: a.localizer,
		Expander:  enricher.New(&enricher.Config{Names: names}),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *app) setupLogging(defaultLogFile string) error {
	level, err := a.cfg.SlogLevel()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid log level")
	}

	var out io.Writer = os.Stderr
	path := logFile
	if path == "" {
		path = defaultLogFile
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "failed to open log file %s", path)
		}
		out = f
		a.logOut = f
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return nil
}

// currentSettings returns the stored settings, or the environment's when
// nothing is stored yet
func (a *app) currentSettings(ctx context.Context) (*settingsResult, error) {
	out, err := a.settings.Get(ctx, settings.GetInput{})
	if err != nil {
		if errors.IsNotFound(err) {
			return &settingsResult{Settings: a.cfg.Settings(), Stored: false}, nil
		}
		return nil, err
	}
	return &settingsResult{Settings: out.Settings, Stored: true}, nil
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.logOut != nil {
		_ = a.logOut.Close()
	}
}
