// Package powerup describes the power-up codes shown on the choice cards and
// in the HUD: names, glyphs, descriptions and rarity tiers.
package powerup

type Type int

const (
	None Type = iota
	Ghost
	Slow
	Magnet
	Shield
	Portal
	Double
	Diamond
	Laser
	Mini
)

// All lists every selectable power-up in code order.
func All() []Type {
	return []Type{Ghost, Slow, Magnet, Shield, Portal, Double, Diamond, Laser, Mini}
}

// BuffName is the upper-case label used by the HUD buff indicator.
func (t Type) BuffName() string {
	switch t {
	case Ghost:
		return "GHOST"
	case Slow:
		return "SLOW"
	case Magnet:
		return "MAGNET"
	case Shield:
		return "SHIELD"
	case Portal:
		return "PORTAL"
	case Double:
		return "DOUBLE"
	case Diamond:
		return "DIAMOND"
	case Laser:
		return "LASER"
	case Mini:
		return "MINI"
	default:
		return "NONE"
	}
}

func (t Type) String() string {
	return t.BuffName()
}

// Glyph is the single-character board marker.
func (t Type) Glyph() string {
	switch t {
	case Ghost:
		return "G"
	case Slow:
		return "S"
	case Magnet:
		return "M"
	case Shield:
		return "H"
	case Portal:
		return "P"
	case Double:
		return "2"
	case Diamond:
		return "D"
	case Laser:
		return "L"
	case Mini:
		return "m"
	default:
		return "?"
	}
}

// ChoiceGlyph is the badge text on a choice card. Score multipliers show the factor.
func (t Type) ChoiceGlyph() string {
	switch t {
	case Double:
		return "2x"
	case Diamond:
		return "3x"
	default:
		return t.Glyph()
	}
}

func (t Type) ChoiceName() string {
	switch t {
	case Ghost:
		return "Ghost"
	case Slow:
		return "Slow"
	case Magnet:
		return "Magnet"
	case Shield:
		return "Shield"
	case Portal:
		return "Portal"
	case Double:
		return "Double"
	case Diamond:
		return "Diamond"
	case Laser:
		return "Laser"
	case Mini:
		return "Mini"
	default:
		return "Unknown"
	}
}

func (t Type) Description() string {
	switch t {
	case Ghost:
		return "Pass through self"
	case Slow:
		return "Decrease speed"
	case Magnet:
		return "Attract food"
	case Shield:
		return "One extra life"
	case Portal:
		return "Phase through walls"
	case Double:
		return "Double points"
	case Diamond:
		return "Triple points"
	case Laser:
		return "Break obstacle"
	case Mini:
		return "Shrink body"
	default:
		return "Debug preview"
	}
}

type Choice struct {
	Type        Type   `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (t Type) Choice() Choice {
	return Choice{Type: t, Name: t.ChoiceName(), Description: t.Description()}
}
