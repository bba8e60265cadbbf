// Package catalog loads the melee item catalog from osrsbox, reading
// through the slot document cache.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/rpg-trainer/internal/services/catalog Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-trainer/internal/clients/osrsbox"
	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
	"github.com/KirkDiggler/rpg-trainer/internal/gear"
	catalogrepo "github.com/KirkDiggler/rpg-trainer/internal/repositories/catalog"
)

// Service defines the catalog loading interface
type Service interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}

// LoadInput contains catalog loading parameters
type LoadInput struct {
	// Slots to load, every equipment slot when empty
	Slots []osrs.Slot
	// Refresh bypasses cached documents
	Refresh bool
}

// LoadOutput contains the merged catalog
type LoadOutput struct {
	Items []osrs.Item
	Slots []SlotReport
}

// SlotReport describes where a slot's items came from
type SlotReport struct {
	Slot   osrs.Slot
	Source string
	Cached bool
	Items  int
}

// Config holds the dependencies for the catalog service
type Config struct {
	Client     osrsbox.Client
	Repository catalogrepo.Repository
	// CacheTTL for stored documents (optional, repository default when zero)
	CacheTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

type service struct {
	client osrsbox.Client
	repo   catalogrepo.Repository
	ttl    time.Duration
}

// New creates a new catalog service
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		client: cfg.Client,
		repo:   cfg.Repository,
		ttl:    cfg.CacheTTL,
	}, nil
}

type slotResult struct {
	items  []osrs.Item
	report SlotReport
}

// Load fetches every requested slot concurrently and merges them by id.
// Cache failures only cost a download; download or parse failures abort.
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	slots := input.Slots
	if len(slots) == 0 {
		slots = osrs.EquipmentSlots
	}
	for _, slot := range slots {
		if !osrs.IsEquipmentSlot(slot) {
			return nil, errors.InvalidArgumentf("unknown equipment slot %q", slot)
		}
	}

	results := make([]slotResult, len(slots))
	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		g.Go(func() error {
			res, err := s.loadSlot(gctx, slot, input.Refresh)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bySlot := make(map[osrs.Slot][]osrs.Item, len(results))
	reports := make([]SlotReport, 0, len(results))
	cached := 0
	for _, res := range results {
		bySlot[res.report.Slot] = res.items
		reports = append(reports, res.report)
		if res.report.Cached {
			cached++
		}
	}
	items := gear.MergeSlots(bySlot)

	slog.Info("Loaded item catalog",
		"slots", len(slots),
		"cached_slots", cached,
		"items", len(items))

	return &LoadOutput{Items: items, Slots: reports}, nil
}

func (s *service) loadSlot(ctx context.Context, slot osrs.Slot, refresh bool) (slotResult, error) {
	if !refresh {
		if res, ok := s.fromCache(ctx, slot); ok {
			return res, nil
		}
	}

	fetched, err := s.client.FetchSlot(ctx, &osrsbox.FetchSlotInput{Slot: slot})
	if err != nil {
		return slotResult{}, errors.Wrapf(err, "failed to fetch catalog slot %s", slot)
	}

	items, err := osrsbox.ParseItems(fetched.Document)
	if err != nil {
		return slotResult{}, errors.Wrapf(err, "failed to parse catalog slot %s", slot).
			WithMeta("source", fetched.Source)
	}

	_, err = s.repo.Put(ctx, &catalogrepo.PutInput{
		Slot:     slot,
		Document: fetched.Document,
		Source:   fetched.Source,
		TTL:      s.ttl,
	})
	if err != nil {
		slog.Warn("Failed to cache catalog slot", "slot", slot, "error", err)
	}

	return slotResult{
		items: items,
		report: SlotReport{
			Slot:   slot,
			Source: fetched.Source,
			Items:  len(items),
		},
	}, nil
}

func (s *service) fromCache(ctx context.Context, slot osrs.Slot) (slotResult, bool) {
	cached, err := s.repo.Get(ctx, &catalogrepo.GetInput{Slot: slot})
	if err != nil {
		if !errors.Is(err, core.ErrEntityNotFound) {
			slog.Warn("Failed to read cached catalog slot", "slot", slot, "error", err)
		}
		return slotResult{}, false
	}

	items, err := osrsbox.ParseItems(cached.Document.Document)
	if err != nil {
		slog.Warn("Discarding unreadable cached catalog slot", "slot", slot, "error", err)
		return slotResult{}, false
	}

	slog.Debug("Using cached catalog slot", "slot", slot, "fetched_at", cached.Document.FetchedAt)
	return slotResult{
		items: items,
		report: SlotReport{
			Slot:   slot,
			Source: cached.Document.Source,
			Cached: true,
			Items:  len(items),
		},
	}, true
}
