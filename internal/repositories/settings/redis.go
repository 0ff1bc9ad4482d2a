package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	entities "github.com/KirkDiggler/rpg-tooltips/internal/entities/settings"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-tooltips/internal/redis"
)

const (
	// Key holds the settings document
	Key = "tooltips:settings"
	// ChangedChannel carries the new settings document after every update
	ChangedChannel = "tooltips:settings:changed"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis settings repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, Key).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFound("settings not stored")
		}
		return nil, errors.Wrap(err, "failed to get settings")
	}

	s, err := decode(result)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Settings: s}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Settings == nil {
		return nil, errors.InvalidArgument("settings are required")
	}
	if strings.TrimSpace(input.Settings.SystemID) == "" {
		return nil, errors.InvalidArgument("system ID cannot be empty")
	}

	data, err := json.Marshal(input.Settings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal settings")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key, data, 0)
	pipe.Publish(ctx, ChangedChannel, data)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	slog.InfoContext(ctx, "settings updated",
		"enabled", input.Settings.Enabled,
		"system_id", input.Settings.SystemID,
		"types", input.Settings.Types.String())

	return &UpdateOutput{Settings: input.Settings}, nil
}

func (r *redisRepository) Watch(ctx context.Context, input WatchInput) (*WatchOutput, error) {
	if input.OnChange == nil {
		return nil, errors.InvalidArgument("OnChange is required")
	}

	pubsub := r.client.Subscribe(ctx, ChangedChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to subscribe to settings changes")
	}

	done := make(chan struct{})
	ch := pubsub.Channel()
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				_ = pubsub.Close()
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				s, err := decode(msg.Payload)
				if err != nil {
					slog.WarnContext(ctx, "ignoring malformed settings change", "error", err)
					continue
				}
				input.OnChange(s)
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			_ = pubsub.Close()
			<-done
		})
	}

	return &WatchOutput{Stop: stop}, nil
}

func decode(raw string) (*entities.Settings, error) {
	s := entities.Defaults()
	if err := json.Unmarshal([]byte(raw), s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal settings")
	}
	return s, nil
}
