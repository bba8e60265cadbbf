package catalog

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Used when no Redis endpoint is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[osrs.Slot]*SlotDocument
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[osrs.Slot]*SlotDocument),
		clock: clk,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a slot document that has not expired
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	r.mu.RLock()
	doc, exists := r.store[input.Slot]
	r.mu.RUnlock()

	if !exists || !r.clock.Now().Before(doc.ExpiresAt) {
		return nil, NotCached(input.Slot)
	}

	copied := *doc
	return &GetOutput{Document: &copied}, nil
}

// Put stores a slot document
func (r *InMemoryRepository) Put(_ context.Context, input *PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	doc := &SlotDocument{
		Slot:      input.Slot,
		Document:  append([]byte(nil), input.Document...),
		Source:    input.Source,
		FetchedAt: now,
		ExpiresAt: now.Add(ttlOrDefault(input.TTL)),
	}

	r.mu.Lock()
	r.store[input.Slot] = doc
	r.mu.Unlock()

	copied := *doc
	return &PutOutput{Document: &copied}, nil
}
