// Package settings holds the add-on's user-facing settings
package settings

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
)

// DefaultSystemID is the game system the add-on targets unless configured
const DefaultSystemID = "marvel-multiverse"

// TypeVisibility controls which item types get a tooltip. Item is the
// catch-all for every type that is not one of the five named ones.
type TypeVisibility struct {
	Power      bool `json:"power"`
	Trait      bool `json:"trait"`
	Tag        bool `json:"tag"`
	Occupation bool `json:"occupation"`
	Origin     bool `json:"origin"`
	Item       bool `json:"item"`
}

// AllVisible returns visibility with every type enabled
func AllVisible() TypeVisibility {
	return TypeVisibility{
		Power:      true,
		Trait:      true,
		Tag:        true,
		Occupation: true,
		Origin:     true,
		Item:       true,
	}
}

// Allows reports whether items of the given type tag get a tooltip
func (v TypeVisibility) Allows(itemType string) bool {
	if flag := v.flag(item.NormalizeType(itemType)); flag != nil {
		return *flag
	}
	return v.Item
}

// Set enables or disables one named type. Unknown names report false.
func (v *TypeVisibility) Set(name string, visible bool) bool {
	flag := v.flag(item.NormalizeType(name))
	if flag == nil {
		if item.NormalizeType(name) != item.TypeItem {
			return false
		}
		flag = &v.Item
	}
	*flag = visible
	return true
}

// Map returns the flags keyed by type tag
func (v TypeVisibility) Map() map[string]bool {
	return map[string]bool{
		item.TypePower:      v.Power,
		item.TypeTrait:      v.Trait,
		item.TypeTag:        v.Tag,
		item.TypeOccupation: v.Occupation,
		item.TypeOrigin:     v.Origin,
		item.TypeItem:       v.Item,
	}
}

// String lists the flags in a stable order, e.g. "item:true,origin:false,..."
func (v TypeVisibility) String() string {
	m := v.Map()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		state := "false"
		if m[name] {
			state = "true"
		}
		parts[i] = name + ":" + state
	}
	return strings.Join(parts, ",")
}

// TypeNames lists the type tags that have their own flag, catch-all last
func TypeNames() []string {
	return []string{
		item.TypePower,
		item.TypeTrait,
		item.TypeTag,
		item.TypeOccupation,
		item.TypeOrigin,
		item.TypeItem,
	}
}

func (v *TypeVisibility) flag(t string) *bool {
	switch t {
	case item.TypePower:
		return &v.Power
	case item.TypeTrait:
		return &v.Trait
	case item.TypeTag:
		return &v.Tag
	case item.TypeOccupation:
		return &v.Occupation
	case item.TypeOrigin:
		return &v.Origin
	default:
		return nil
	}
}

// Settings is the persisted add-on configuration
type Settings struct {
	Enabled  bool           `json:"enabled"`
	SystemID string         `json:"system_id"`
	Types    TypeVisibility `json:"types"`
}

// Defaults returns the settings used before anything is stored
func Defaults() *Settings {
	return &Settings{
		Enabled:  true,
		SystemID: DefaultSystemID,
		Types:    AllVisible(),
	}
}
