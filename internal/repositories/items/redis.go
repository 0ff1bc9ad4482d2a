package items

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-tooltips/internal/redis"
)

const (
	itemKeyPrefix = "item:"
	directoryKey  = "items:directory"

	errItemIDEmpty = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis item repository
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

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.ID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("item %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item %s", input.ID)
	}

	var it item.Item
	if err := json.Unmarshal([]byte(result), &it); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item %s", input.ID)
	}

	return &GetOutput{Item: &it}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, directoryKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list directory")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = GetKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load directory items")
	}

	filter := item.NormalizeType(input.Type)
	out := make([]*item.Item, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a document; skip it.
			slog.WarnContext(ctx, "directory index references missing item", "item_id", ids[i])
			continue
		}

		var it item.Item
		if err := json.Unmarshal([]byte(raw), &it); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item %s", ids[i])
		}
		if filter != "" && it.GetType() != filter {
			continue
		}
		out = append(out, &it)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})

	return &ListOutput{Items: out}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item %s", input.Item.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(input.Item.ID), data, 0)
	pipe.SAdd(ctx, directoryKey, input.Item.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store item %s", input.Item.ID)
	}

	return &UpsertOutput{Item: input.Item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	exists, err := r.client.Exists(ctx, GetKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check item existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("item %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, GetKey(input.ID))
	pipe.SRem(ctx, directoryKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for an item
// Exposed for testing purposes
func GetKey(id string) string {
	return fmt.Sprintf("%s%s", itemKeyPrefix, id)
}
