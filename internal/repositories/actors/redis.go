package actors

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-tooltips/internal/redis"
)

const (
	actorKeyPrefix = "actor:"
	actorsIndexKey = "actors"

	errActorIDEmpty = "actor ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis actor repository
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

// NewRedis creates a new Redis-backed actor repository
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
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Actor: actor}, nil
}

func (r *redisRepository) GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	actor, err := r.load(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	it := actor.Item(input.ItemID)
	if it == nil {
		return nil, errors.NotFoundf("item %s not owned by actor %s", input.ItemID, input.ActorID).
			WithMeta("actor_id", input.ActorID)
	}

	return &GetItemOutput{Item: it}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, actorsIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}

	out := make([]*item.Actor, 0, len(ids))
	for _, id := range ids {
		actor, err := r.load(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out = append(out, actor)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return &ListOutput{Actors: out}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	for _, it := range input.Actor.Items {
		if it == nil || it.ID == "" {
			return nil, errors.InvalidArgument("owned items need an ID").
				WithMeta("actor_id", input.Actor.ID)
		}
	}

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor %s", input.Actor.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(input.Actor.ID), data, 0)
	pipe.SAdd(ctx, actorsIndexKey, input.Actor.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store actor %s", input.Actor.ID)
	}

	return &UpsertOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*item.Actor, error) {
	result, err := r.client.Get(ctx, GetKey(id)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("actor %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get actor %s", id)
	}

	var actor item.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor %s", id)
	}
	return &actor, nil
}

// GetKey returns the Redis key for an actor
// Exposed for testing purposes
func GetKey(id string) string {
	return fmt.Sprintf("%s%s", actorKeyPrefix, id)
}
