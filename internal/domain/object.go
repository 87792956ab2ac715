package domain

// ObjectClass - класс предмета на полу.
type ObjectClass uint8

const (
	GoldClass ObjectClass = iota
	GemClass
	WeaponClass
	ArmorClass
	FoodClass
	PotionClass
	ScrollClass
	WandClass
	RingClass
	ToolClass
	BookClass
	CandleClass
	AmuletClass
	StatueClass
)

func (c ObjectClass) String() string {
	switch c {
	case GoldClass:
		return "gold"
	case GemClass:
		return "gem"
	case WeaponClass:
		return "weapon"
	case ArmorClass:
		return "armor"
	case FoodClass:
		return "food"
	case PotionClass:
		return "potion"
	case ScrollClass:
		return "scroll"
	case WandClass:
		return "wand"
	case RingClass:
		return "ring"
	case ToolClass:
		return "tool"
	case BookClass:
		return "book"
	case CandleClass:
		return "candle"
	case AmuletClass:
		return "amulet"
	case StatueClass:
		return "statue"
	}
	return "unknown"
}

// Object - предмет, лежащий на клетке уровня.
type Object struct {
	Class    ObjectClass
	Quantity int
	X, Y     int

	// Магазинный товар: не оплачен и имеет цену.
	Unpaid bool
	Price  int
}

// NewGold - куча золота.
func NewGold(x, y, amount int) Object {
	return Object{Class: GoldClass, Quantity: amount, X: x, Y: y}
}
