// Package content turns an item's loosely-typed data bag into tooltip
// content: an ordered set of labeled fields, rendered to an HTML payload.
package content

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
)

// Label keys for the built-in fields
const (
	LabelDescription = "Tooltips.Tooltip.Description"
	LabelAction      = "Tooltips.Tooltip.Action"
	LabelTrigger     = "Tooltips.Tooltip.Trigger"
	LabelDuration    = "Tooltips.Tooltip.Duration"
	LabelCost        = "Tooltips.Tooltip.Cost"
	LabelEffect      = "Tooltips.Tooltip.Effect"
	LabelRange       = "Tooltips.Tooltip.Range"
)

// FieldSpec describes one logical field: where to look for it, in order,
// and whether its text carries host markup.
type FieldSpec struct {
	LabelKey string
	Paths    []string
	Rich     bool
}

// Built-in logical fields and their candidate paths
var (
	FieldDescription = FieldSpec{
		LabelKey: LabelDescription,
		Paths:    []string{"description", "details.description", "system.description", "desc"},
		Rich:     true,
	}
	FieldAction = FieldSpec{
		LabelKey: LabelAction,
		Paths:    []string{"action", "details.action"},
	}
	FieldTrigger = FieldSpec{
		LabelKey: LabelTrigger,
		Paths:    []string{"trigger", "details.trigger"},
	}
	FieldDuration = FieldSpec{
		LabelKey: LabelDuration,
		Paths:    []string{"duration", "details.duration"},
	}
	FieldCost = FieldSpec{
		LabelKey: LabelCost,
		Paths:    []string{"cost", "details.cost"},
	}
	FieldEffect = FieldSpec{
		LabelKey: LabelEffect,
		Paths:    []string{"effect", "details.effect", "effectsText"},
		Rich:     true,
	}
	FieldRange = FieldSpec{
		LabelKey: LabelRange,
		Paths:    []string{"range", "details.range"},
	}
)

// FieldTable maps item type tags to the fields shown for them. Types without
// an entry use Fallback.
type FieldTable struct {
	ByType   map[string][]FieldSpec
	Fallback []FieldSpec
}

// DefaultFieldTable returns the stock table: the full field set for powers,
// description and range for everything else.
func DefaultFieldTable() FieldTable {
	return FieldTable{
		ByType: map[string][]FieldSpec{
			item.TypePower: {
				FieldDescription,
				FieldAction,
				FieldTrigger,
				FieldDuration,
				FieldCost,
				FieldEffect,
				FieldRange,
			},
		},
		Fallback: []FieldSpec{FieldDescription, FieldRange},
	}
}

// FieldsFor returns the field list for a type tag, matched case-insensitively.
// A key already in normalized form wins over other spellings of the same tag.
func (t FieldTable) FieldsFor(itemType string) []FieldSpec {
	normalized := item.NormalizeType(itemType)
	if fields, ok := t.ByType[normalized]; ok {
		return fields
	}
	for _, key := range slices.Sorted(maps.Keys(t.ByType)) {
		fields := t.ByType[key]
		if item.NormalizeType(key) == normalized {
			return fields
		}
	}
	return t.Fallback
}

// ResolvedField is one field that was found on an item
type ResolvedField struct {
	LabelKey string
	Raw      string
	Rich     bool
}

// Resolver extracts fields from item data using a FieldTable
type Resolver struct {
	table FieldTable
}

// NewResolver creates a resolver over the given table
func NewResolver(table FieldTable) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the fields present on the item in display order. Fields
// with no usable value are omitted; the result is empty when nothing
// resolves.
func (r *Resolver) Resolve(it *item.Item) []ResolvedField {
	if it == nil {
		return nil
	}

	var resolved []ResolvedField
	for _, spec := range r.table.FieldsFor(it.Type) {
		raw, ok := firstValue(it.System, spec.Paths)
		if !ok {
			continue
		}
		resolved = append(resolved, ResolvedField{
			LabelKey: spec.LabelKey,
			Raw:      raw,
			Rich:     spec.Rich,
		})
	}
	return resolved
}

func firstValue(data item.Data, paths []string) (string, bool) {
	for _, path := range paths {
		v, ok := data.Lookup(path)
		if !ok {
			continue
		}
		text, ok := coerce(v)
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		return text, true
	}
	return "", false
}

// coerce renders scalar values as text. Host rich-text objects of the form
// {"value": ...} are unwrapped; any other composite value has no text.
func coerce(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case json.Number:
		return val.String(), true
	case map[string]any:
		if inner, ok := val["value"]; ok {
			return coerce(inner)
		}
		return "", false
	case item.Data:
		return coerce(map[string]any(val))
	default:
		return "", false
	}
}
