package powerup

type Tier int

const (
	Common Tier = iota + 1
	Uncommon
	Rare
	Epic
)

func (t Tier) String() string {
	switch t {
	case Epic:
		return "EPIC"
	case Rare:
		return "RARE"
	case Uncommon:
		return "UNCOMMON"
	default:
		return "COMMON"
	}
}

// Rarity maps a power-up to its tier. Unknown codes are Common.
func (t Type) Rarity() Tier {
	switch t {
	case Diamond:
		return Epic
	case Double, Laser:
		return Rare
	case Shield, Portal:
		return Uncommon
	default:
		return Common
	}
}

func (t Type) RarityName() string {
	return t.Rarity().String()
}
