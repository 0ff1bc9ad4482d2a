// Package item defines the documents the tooltip reads: items carrying a
// loosely-typed data bag, and actors that own them.
package item

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Well-known item type tags. Any other tag is valid and is treated as a
// generic item.
const (
	TypePower      = "power"
	TypeTrait      = "trait"
	TypeTag        = "tag"
	TypeOccupation = "occupation"
	TypeOrigin     = "origin"
	TypeItem       = "item"
)

// Item is a game item as the host stores it. System is whatever the game
// system put there; shapes vary between item types and data sources.
type Item struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	System Data   `json:"system,omitempty"`
}

var _ core.Entity = (*Item)(nil)

// GetID implements core.Entity
func (i *Item) GetID() string {
	return i.ID
}

// GetType implements core.Entity. The tag is normalized to lower case.
func (i *Item) GetType() string {
	return NormalizeType(i.Type)
}

// NormalizeType lower-cases and trims a type tag
func NormalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// Data is an untyped nested data bag
type Data map[string]any

// Lookup walks a dot-separated path through nested maps. It reports false
// when any segment is missing or an intermediate value is not a map.
func (d Data) Lookup(path string) (any, bool) {
	if d == nil || path == "" {
		return nil, false
	}

	var current any = map[string]any(d)
	for _, segment := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Data:
		return m, true
	default:
		return nil, false
	}
}
