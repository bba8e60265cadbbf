// Package osrsbox fetches per-slot item documents from the osrsbox item
// database, over HTTP or from a local mirror directory.
package osrsbox

//go:generate mockgen -destination=mock/mock_client.go -package=osrsboxmock github.com/KirkDiggler/rpg-trainer/internal/clients/osrsbox Client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-trainer/internal/entities/osrs"
	"github.com/KirkDiggler/rpg-trainer/internal/errors"
)

const (
	// DefaultBaseURL serves items-<slot>.json documents
	DefaultBaseURL = "https://www.osrsbox.com/osrsbox-db/items-json-slot/"
	// DefaultHTTPTimeout bounds a single document download
	DefaultHTTPTimeout = 30 * time.Second

	// documents are a few megabytes at most
	maxDocumentBytes = 64 << 20
)

// Client defines the interface for catalog document retrieval
type Client interface {
	// FetchSlot returns the raw JSON document of one equipment slot
	FetchSlot(ctx context.Context, input *FetchSlotInput) (*FetchSlotOutput, error)
}

// FetchSlotInput defines the request for one slot document
type FetchSlotInput struct {
	Slot osrs.Slot
}

// FetchSlotOutput defines the response for one slot document
type FetchSlotOutput struct {
	Document []byte
	// Source is the URL or file path the document came from
	Source string
}

// Config contains configuration options for the osrsbox client.
type Config struct {
	// BaseURL of the slot documents (optional, defaults to DefaultBaseURL)
	BaseURL string
	// Dir reads documents from a local directory instead of BaseURL (optional)
	Dir string
	// HTTPTimeout for downloads (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.InvalidField("BaseURL", "must be an absolute URL")
	}
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	dir        string
	httpClient *http.Client
}

// New creates a new osrsbox client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/") + "/",
		dir:        cfg.Dir,
		httpClient: httpClient,
	}, nil
}

// DocumentName returns the file name of a slot document
func DocumentName(slot osrs.Slot) string {
	return fmt.Sprintf("items-%s.json", slot)
}

func (c *client) FetchSlot(ctx context.Context, input *FetchSlotInput) (*FetchSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !osrs.IsEquipmentSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("unknown equipment slot %q", input.Slot)
	}

	if c.dir != "" {
		return c.readFile(input.Slot)
	}
	return c.download(ctx, input.Slot)
}

func (c *client) readFile(slot osrs.Slot) (*FetchSlotOutput, error) {
	path := filepath.Join(c.dir, DocumentName(slot))

	doc, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog document %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog document %s", path)
	}

	slog.Debug("Read catalog document", "slot", slot, "path", path, "bytes", len(doc))
	return &FetchSlotOutput{Document: doc, Source: path}, nil
}

func (c *client) download(ctx context.Context, slot osrs.Slot) (*FetchSlotOutput, error) {
	target := c.baseURL + DocumentName(slot)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", target)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to download %s", target)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("Failed to close response body", "url", target, "error", closeErr)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("catalog document %s not found", target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errors.Unavailablef("catalog source returned %s for %s", resp.Status, target).
			WithMeta("status", resp.StatusCode)
	}

	doc, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", target)
	}

	slog.Debug("Downloaded catalog document",
		"slot", slot,
		"url", target,
		"bytes", len(doc),
		"duration", time.Since(start))

	return &FetchSlotOutput{Document: doc, Source: target}, nil
}
