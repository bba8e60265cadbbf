package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-trainer/internal/redis"
)

const (
	// Key pattern: catalog:slot:{slot}
	slotKeyPrefix = "catalog:slot:"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a Redis backed slot document cache.
// Expiry is delegated to Redis key TTLs.
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, r.buildKey(input.Slot)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, NotCached(input.Slot)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get catalog slot %s from Redis", input.Slot)
	}

	var doc SlotDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal catalog slot %s", input.Slot)
	}

	return &GetOutput{Document: &doc}, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	ttl := ttlOrDefault(input.TTL)
	doc := &SlotDocument{
		Slot:      input.Slot,
		Document:  input.Document,
		Source:    input.Source,
		FetchedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal catalog slot %s", input.Slot)
	}

	if err := r.client.Set(ctx, r.buildKey(input.Slot), raw, ttl).Err(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to store catalog slot %s in Redis", input.Slot)
	}

	return &PutOutput{Document: doc}, nil
}

// buildKey creates the Redis key for a slot document
func (r *redisRepository) buildKey(slot osrs.Slot) string {
	return fmt.Sprintf("%s%s", slotKeyPrefix, slot)
}
