package compendium

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-tooltips/internal/entities/item"
)

// convertSpell maps a spell to a power. The description is a rich-text
// object holding HTML, the casting details sit under "details" and the
// effect is a plain string at the top level.
func convertSpell(spell *entities.Spell) *item.Item {
	if spell == nil {
		return nil
	}

	var desc []string
	desc = append(desc, "<p>"+spellHeader(spell)+"</p>")
	if spell.SpellDamage != nil && spell.SpellDamage.SpellDamageAtSlotLevel != nil {
		if dice := baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel); dice != "" {
			damageType := ""
			if spell.SpellDamage.SpellDamageType != nil {
				damageType = " " + strings.ToLower(spell.SpellDamage.SpellDamageType.Name)
			}
			desc = append(desc, fmt.Sprintf("<p>Damage: [[/r %s]]%s</p>", dice, damageType))
		}
	}
	if names := spellClassNames(spell); names != "" {
		desc = append(desc, "<p>Classes: "+names+"</p>")
	}

	details := item.Data{
		"action": spell.CastingTime,
		"range":  spell.Range,
		"cost":   spellCost(spell.SpellLevel),
	}
	duration := spell.Duration
	if spell.Concentration && duration != "" {
		duration = "Concentration, " + duration
	}
	details["duration"] = duration
	if spell.Ritual {
		details["trigger"] = "May be cast as a ritual"
	}

	system := item.Data{
		"description": map[string]any{"value": strings.Join(desc, "")},
		"details":     details,
	}
	if effect := spellEffect(spell); effect != "" {
		system["effect"] = effect
	}

	return &item.Item{
		Name:   spell.Name,
		Type:   item.TypePower,
		System: system,
	}
}

func spellHeader(spell *entities.Spell) string {
	level := "Cantrip"
	if spell.SpellLevel > 0 {
		level = fmt.Sprintf("Level %d", spell.SpellLevel)
	}
	school := "unknown school"
	if spell.SpellSchool != nil && spell.SpellSchool.Name != "" {
		school = strings.ToLower(spell.SpellSchool.Name)
	}
	return fmt.Sprintf("%s %s spell.", level, school)
}

func spellCost(level int) string {
	if level <= 0 {
		return "At will"
	}
	return fmt.Sprintf("Level %d slot", level)
}

func spellEffect(spell *entities.Spell) string {
	var parts []string
	if spell.DC != nil {
		save := "Saving throw"
		if spell.DC.DCType != nil && spell.DC.DCType.Name != "" {
			save = spell.DC.DCType.Name + " save"
		}
		if spell.DC.DCSuccess != "" && spell.DC.DCSuccess != "none" {
			save += " for " + spell.DC.DCSuccess
		}
		parts = append(parts, save)
	}
	if spell.AreaOfEffect != nil && spell.AreaOfEffect.Type != "" {
		parts = append(parts, fmt.Sprintf("%d ft %s", spell.AreaOfEffect.Size, spell.AreaOfEffect.Type))
	}
	return strings.Join(parts, "; ")
}

func spellClassNames(spell *entities.Spell) string {
	var names []string
	for _, class := range spell.SpellClasses {
		if class != nil && class.Name != "" {
			names = append(names, class.Name)
		}
	}
	return strings.Join(names, ", ")
}

func baseDamage(level int, at *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return at.FirstLevel
	case 2:
		return at.SecondLevel
	case 3:
		return at.ThirdLevel
	case 4:
		return at.FourthLevel
	case 5:
		return at.FifthLevel
	case 6:
		return at.SixthLevel
	case 7:
		return at.SeventhLevel
	case 8:
		return at.EighthLevel
	case 9:
		return at.NinthLevel
	default:
		return ""
	}
}

// convertFeature maps a class feature to a trait whose only text lives
// under the short "desc" key
func convertFeature(feature *entities.Feature) *item.Item {
	if feature == nil {
		return nil
	}

	className := "Class"
	if feature.Class != nil && feature.Class.Name != "" {
		className = feature.Class.Name
	}

	desc := fmt.Sprintf("%s feature gained at level %d.", className, feature.Level)
	if feature.Level <= 0 {
		desc = className + " feature."
	}

	return &item.Item{
		Name: feature.Name,
		Type: item.TypeTrait,
		System: item.Data{
			"desc":  desc,
			"level": feature.Level,
		},
	}
}

// convertEquipment maps gear to generic items. Weapons nest their text under
// system.description, armor uses details.description and other gear keeps a
// flat description.
func convertEquipment(equipment dnd5e.EquipmentInterface) *item.Item {
	if equipment == nil {
		return nil
	}

	switch eq := equipment.(type) {
	case *entities.Weapon:
		text := strings.TrimSpace(fmt.Sprintf("%s %s weapon.", eq.WeaponCategory, strings.ToLower(eq.WeaponRange)))
		if eq.Damage != nil && eq.Damage.DamageDice != "" {
			damage := eq.Damage.DamageDice
			if eq.Damage.DamageType != nil {
				damage += " " + strings.ToLower(eq.Damage.DamageType.Name)
			}
			text += " **" + damage + "**."
		}
		if props := propertyNames(eq.Properties); props != "" {
			text += " Properties: " + props + "."
		}
		return &item.Item{
			Name: eq.Name,
			Type: item.TypeItem,
			System: item.Data{
				"system": map[string]any{"description": text},
				"range":  eq.WeaponRange,
				"cost":   costText(eq.Cost),
			},
		}

	case *entities.Armor:
		text := eq.ArmorCategory + " armor."
		if eq.ArmorClass != nil {
			text = fmt.Sprintf("%s armor, AC %d", eq.ArmorCategory, eq.ArmorClass.Base)
			if eq.ArmorClass.DexBonus {
				text += " + Dex modifier"
			}
			text += "."
		}
		if eq.StrMinimum > 0 {
			text += fmt.Sprintf(" Requires Str %d.", eq.StrMinimum)
		}
		if eq.StealthDisadvantage {
			text += " Disadvantage on Stealth checks."
		}
		return &item.Item{
			Name: eq.Name,
			Type: item.TypeItem,
			System: item.Data{
				"details": map[string]any{"description": text},
				"cost":    costText(eq.Cost),
			},
		}

	case *entities.Equipment:
		text := "Adventuring gear."
		if eq.EquipmentCategory != nil && eq.EquipmentCategory.Name != "" {
			text = eq.EquipmentCategory.Name + "."
		}
		if cost := costText(eq.Cost); cost != "" {
			text += " Costs " + cost + "."
		}
		return &item.Item{
			Name: eq.Name,
			Type: item.TypeItem,
			System: item.Data{
				"description": text,
			},
		}
	}

	return nil
}

func propertyNames(props []*entities.ReferenceItem) string {
	names := make([]string, 0, len(props))
	for _, p := range props {
		if p != nil && p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return strings.Join(names, ", ")
}

func costText(cost *entities.Cost) string {
	if cost == nil || cost.Unit == "" {
		return ""
	}
	return fmt.Sprintf("%d %s", cost.Quantity, cost.Unit)
}
