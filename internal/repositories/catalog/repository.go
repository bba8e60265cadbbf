// Package catalog caches raw osrsbox slot documents so restarts do not
// re-download the whole item database.
package catalog

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-trainer/internal/repositories/catalog Repository

const (
	// DefaultTTL is used when PutInput.TTL is zero
	DefaultTTL = 24 * time.Hour

	// SlotDocumentType is the entity type of a cached slot document
	SlotDocumentType = "catalog_slot"
)

// SlotDocument is one cached items-json-slot document
type SlotDocument struct {
	Slot      osrs.Slot `json:"slot"`
	Document  []byte    `json:"document"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

var _ core.Entity = (*SlotDocument)(nil)

// GetID returns the slot the document was fetched for
func (d *SlotDocument) GetID() string {
	return string(d.Slot)
}

// GetType returns the entity type
func (d *SlotDocument) GetType() string {
	return SlotDocumentType
}

// NotCached is the NotFound error Get returns for an absent or expired slot.
// It wraps core.ErrEntityNotFound.
func NotCached(slot osrs.Slot) error {
	cause := core.NewEntityError("get", SlotDocumentType, string(slot), core.ErrEntityNotFound)
	return errors.WrapWithCodef(cause, errors.CodeNotFound, "catalog slot %s not cached", slot)
}

// GetInput contains parameters for retrieving a slot document
type GetInput struct {
	Slot osrs.Slot
}

// GetOutput contains the cached document
type GetOutput struct {
	Document *SlotDocument
}

// PutInput contains parameters for caching a slot document
type PutInput struct {
	Slot     osrs.Slot
	Document []byte
	Source   string
	// TTL of the entry, DefaultTTL when zero
	TTL time.Duration
}

// PutOutput contains the stored entry
type PutOutput struct {
	Document *SlotDocument
}

// Repository defines the interface for slot document storage
type Repository interface {
	// Get returns a cached document, NotFound when absent or expired
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put stores a document, replacing any previous entry for the slot
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)
}

func validateSlot(slot osrs.Slot) error {
	if slot == "" {
		return errors.InvalidArgument("slot is required")
	}
	if !osrs.IsEquipmentSlot(slot) {
		return errors.InvalidArgumentf("unknown equipment slot %q", slot)
	}
	return nil
}

func validatePut(input *PutInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if err := validateSlot(input.Slot); err != nil {
		return err
	}
	if len(input.Document) == 0 {
		return errors.InvalidArgument("document is required")
	}
	if input.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl == 0 {
		return DefaultTTL
	}
	return ttl
}
