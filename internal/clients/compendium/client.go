// Package compendium serves read-only document packs backed by the D&D 5e
// SRD API. Documents come back as items with deliberately uneven data bags,
// the way imported compendium content looks in practice.
package compendium

//go:generate mockgen -destination=mock/mock_client.go -package=compendiummock github.com/KirkDiggler/rpg-tooltips/internal/clients/compendium Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
	"github.com/KirkDiggler/rpg-tooltips/internal/errors"
)

// Document names a pack can hold
const (
	DocumentItem  = "Item"
	DocumentActor = "Actor"
)

// Built-in pack IDs
const (
	PackSpells    = "srd.spells"
	PackFeatures  = "srd.features"
	PackEquipment = "srd.equipment"
	PackMonsters  = "srd.monsters"
)

// Pack describes one compendium collection
type Pack struct {
	ID           string
	Label        string
	DocumentName string
}

// IndexEntry is a lightweight listing of one document
type IndexEntry struct {
	ID   string
	Name string
}

// Client defines the interface for compendium access
type Client interface {
	// Packs lists the available packs in display order
	Packs() []Pack

	// ListIndex lists the documents of a pack without loading them
	// Returns errors.NotFound for an unknown pack
	ListIndex(ctx context.Context, input *ListIndexInput) (*ListIndexOutput, error)

	// GetDocument loads one item document
	// Returns errors.NotFound for an unknown pack or document
	// Returns errors.FailedPrecondition for packs that do not hold items
	GetDocument(ctx context.Context, input *GetDocumentInput) (*GetDocumentOutput, error)
}

// ListIndexInput defines the input for listing a pack
type ListIndexInput struct {
	PackID string
}

// ListIndexOutput defines the output for listing a pack
type ListIndexOutput struct {
	Pack    Pack
	Entries []*IndexEntry
}

// GetDocumentInput defines the input for loading a document
type GetDocumentInput struct {
	PackID     string
	DocumentID string
}

// GetDocumentOutput defines the output for loading a document
type GetDocumentOutput struct {
	Item *item.Item
}

// Config contains configuration options for the compendium client
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts must not be negative")
	}
	return nil
}

type client struct {
	api   dnd5e.Interface
	packs []Pack
}

// New creates a compendium client with the given configuration
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return newClient(dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)), nil
}

func newClient(api dnd5e.Interface) *client {
	return &client{
		api: api,
		packs: []Pack{
			{ID: PackSpells, Label: "SRD Spells", DocumentName: DocumentItem},
			{ID: PackFeatures, Label: "SRD Class Features", DocumentName: DocumentItem},
			{ID: PackEquipment, Label: "SRD Equipment", DocumentName: DocumentItem},
			{ID: PackMonsters, Label: "SRD Monsters", DocumentName: DocumentActor},
		},
	}
}

func (c *client) Packs() []Pack {
	out := make([]Pack, len(c.packs))
	copy(out, c.packs)
	return out
}

func (c *client) pack(id string) (Pack, error) {
	for _, p := range c.packs {
		if p.ID == id {
			return p, nil
		}
	}
	return Pack{}, errors.NotFoundf("pack %s not found", id)
}

func (c *client) ListIndex(ctx context.Context, input *ListIndexInput) (*ListIndexOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	pack, err := c.pack(input.PackID)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "list index")
	}

	slog.DebugContext(ctx, "Calling D&D 5e API to list pack", "pack", pack.ID)

	var found []*entities.ReferenceItem
	switch pack.ID {
	case PackSpells:
		found, err = c.api.ListSpells(&dnd5e.ListSpellsInput{})
	case PackFeatures:
		found, err = c.api.ListFeatures()
	case PackEquipment:
		found, err = c.api.ListEquipment()
	case PackMonsters:
		found, err = c.api.ListMonsters()
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list pack "+pack.ID)
	}

	entries := make([]*IndexEntry, 0, len(found))
	for _, ref := range found {
		if ref == nil || ref.Key == "" {
			continue
		}
		entries = append(entries, &IndexEntry{ID: ref.Key, Name: ref.Name})
	}

	return &ListIndexOutput{Pack: pack, Entries: entries}, nil
}

func (c *client) GetDocument(ctx context.Context, input *GetDocumentInput) (*GetDocumentOutput, error) {
	if input == nil || input.DocumentID == "" {
		return nil, errors.InvalidArgument("document ID is required")
	}
	pack, err := c.pack(input.PackID)
	if err != nil {
		return nil, err
	}
	if pack.DocumentName != DocumentItem {
		return nil, errors.FailedPrecondition("pack " + pack.ID + " does not hold items")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "get document")
	}

	slog.DebugContext(ctx, "Calling D&D 5e API to get document", "pack", pack.ID, "document", input.DocumentID)

	var it *item.Item
	switch pack.ID {
	case PackSpells:
		spell, err := c.api.GetSpell(input.DocumentID)
		if err != nil {
			return nil, lookupError(err, pack.ID, input.DocumentID)
		}
		it = convertSpell(spell)
	case PackFeatures:
		feature, err := c.api.GetFeature(input.DocumentID)
		if err != nil {
			return nil, lookupError(err, pack.ID, input.DocumentID)
		}
		it = convertFeature(feature)
	case PackEquipment:
		equipment, err := c.api.GetEquipment(input.DocumentID)
		if err != nil {
			return nil, lookupError(err, pack.ID, input.DocumentID)
		}
		it = convertEquipment(equipment)
	}

	if it == nil {
		return nil, errors.NotFoundf("document %s not found in %s", input.DocumentID, pack.ID)
	}
	it.ID = DocumentRef(pack.ID, input.DocumentID)

	return &GetDocumentOutput{Item: it}, nil
}

// DocumentRef builds the reference used for compendium items and links,
// e.g. "srd.spells.fireball"
func DocumentRef(packID, documentID string) string {
	return packID + "." + documentID
}

// SplitRef reverses DocumentRef for the built-in packs
func SplitRef(ref string) (packID, documentID string, ok bool) {
	for _, p := range []string{PackSpells, PackFeatures, PackEquipment, PackMonsters} {
		if strings.HasPrefix(ref, p+".") && len(ref) > len(p)+1 {
			return p, ref[len(p)+1:], true
		}
	}
	return "", "", false
}

// lookupError maps API failures. The SRD client reports missing documents
// as plain errors mentioning the status, so 404s are recognised by text.
func lookupError(err error, packID, documentID string) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "404") || strings.Contains(msg, "not found") {
		return errors.NotFoundf("document %s not found in %s", documentID, packID)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get "+DocumentRef(packID, documentID))
}
