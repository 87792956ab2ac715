package domain

import "github.com/pierreaubert/nethack-rs-sub002/pkg/rng"

// RoomType - семантический тип комнаты. Числовые значения зафиксированы
// (значение 1 не используется, так сложилось исторически в формате).
type RoomType uint8

const (
	Ordinary       RoomType = 0
	Court          RoomType = 2
	Swamp          RoomType = 3
	Vault          RoomType = 4
	Beehive        RoomType = 5
	Morgue         RoomType = 6
	Barracks       RoomType = 7
	Zoo            RoomType = 8
	Delphi         RoomType = 9
	Temple         RoomType = 10
	LeprechaunHall RoomType = 11
	CockatriceNest RoomType = 12
	Anthole        RoomType = 13
	GeneralShop    RoomType = 14
	ArmorShop      RoomType = 15
	ScrollShop     RoomType = 16
	PotionShop     RoomType = 17
	WeaponShop     RoomType = 18
	FoodShop       RoomType = 19
	RingShop       RoomType = 20
	WandShop       RoomType = 21
	ToolShop       RoomType = 22
	BookShop       RoomType = 23
	HealthFoodShop RoomType = 24
	CandleShop     RoomType = 25
)

// SpecialRoomTypes - особые комнаты (не обычные и не магазины).
var SpecialRoomTypes = [12]RoomType{
	Court, Swamp, Vault, Beehive, Morgue, Barracks,
	Zoo, Delphi, Temple, LeprechaunHall, CockatriceNest, Anthole,
}

// ShopTypes - все типы магазинов.
var ShopTypes = [12]RoomType{
	GeneralShop, ArmorShop, ScrollShop, PotionShop, WeaponShop, FoodShop,
	RingShop, WandShop, ToolShop, BookShop, HealthFoodShop, CandleShop,
}

func (t RoomType) IsShop() bool {
	return t >= GeneralShop && t <= CandleShop
}

// IsSpecial - особая комната. Категории IsShop/IsSpecial взаимоисключающие.
func (t RoomType) IsSpecial() bool {
	return t != Ordinary && !t.IsShop()
}

// MonstersSleep - обитатели комнаты создаются спящими.
func (t RoomType) MonstersSleep() bool {
	switch t {
	case Court, Beehive, Morgue, Barracks, Zoo,
		LeprechaunHall, CockatriceNest, Anthole:
		return true
	}
	return false
}

// MinDepth - минимальная глубина появления. 0 = комната не генерируется
// случайно (например Delphi - только спец-уровень).
func (t RoomType) MinDepth() int {
	switch t {
	case Ordinary, Vault:
		return 1
	case Court:
		return 4
	case LeprechaunHall:
		return 5
	case Zoo:
		return 6
	case Temple:
		return 8
	case Beehive:
		return 9
	case Morgue:
		return 11
	case Anthole:
		return 12
	case Barracks:
		return 14
	case Swamp:
		return 15
	case CockatriceNest:
		return 16
	case Delphi:
		return 0
	}
	if t.IsShop() {
		return 2
	}
	return 0
}

// SpawnChance - вероятность появления как (числитель, знаменатель).
// Ноль в знаменателе = случайно не появляется.
func (t RoomType) SpawnChance() (int, int) {
	switch t {
	case Court, Swamp, Morgue:
		return 1, 6
	case Vault:
		return 1, 2
	case Beehive, Temple, Anthole:
		return 1, 5
	case Barracks:
		return 1, 4
	case Zoo:
		return 1, 7
	case LeprechaunHall, CockatriceNest:
		return 1, 8
	}
	if t.IsShop() {
		return 3, 100
	}
	return 0, 0
}

func (t RoomType) String() string {
	switch t {
	case Ordinary:
		return "ordinary"
	case Court:
		return "court"
	case Swamp:
		return "swamp"
	case Vault:
		return "vault"
	case Beehive:
		return "beehive"
	case Morgue:
		return "morgue"
	case Barracks:
		return "barracks"
	case Zoo:
		return "zoo"
	case Delphi:
		return "delphi"
	case Temple:
		return "temple"
	case LeprechaunHall:
		return "leprechaun hall"
	case CockatriceNest:
		return "cockatrice nest"
	case Anthole:
		return "anthole"
	case GeneralShop:
		return "general shop"
	case ArmorShop:
		return "armor shop"
	case ScrollShop:
		return "scroll shop"
	case PotionShop:
		return "potion shop"
	case WeaponShop:
		return "weapon shop"
	case FoodShop:
		return "food shop"
	case RingShop:
		return "ring shop"
	case WandShop:
		return "wand shop"
	case ToolShop:
		return "tool shop"
	case BookShop:
		return "book shop"
	case HealthFoodShop:
		return "health food shop"
	case CandleShop:
		return "candle shop"
	}
	return "unknown"
}

// MaxSubrooms - максимум вложенных комнат у родителя.
const MaxSubrooms = 24

// Room - комната: прямоугольник интерьера (без стен) плюс метаданные.
type Room struct {
	X, Y int // левый верхний угол интерьера
	W, H int // размеры интерьера
	Type RoomType
	Lit  bool

	DoorCount int
	FirstDoor int // индекс первой двери комнаты в Level.Doors

	Irregular bool
	Parent    int // индекс родителя, -1 = верхний уровень
	Subrooms  []int
}

// NewRoom - обычная освещенная комната.
func NewRoom(x, y, w, h int) Room {
	return Room{X: x, Y: y, W: w, H: h, Type: Ordinary, Lit: true, Parent: -1}
}

// NewTypedRoom - комната с типом. Морги и сокровищницы темные.
func NewTypedRoom(x, y, w, h int, t RoomType) Room {
	return Room{
		X: x, Y: y, W: w, H: h,
		Type:   t,
		Lit:    t != Morgue && t != Vault,
		Parent: -1,
	}
}

func (r *Room) IsSubroom() bool {
	return r.Parent >= 0
}

// AddSubroom регистрирует вложенную комнату. Сверх лимита - no-op.
func (r *Room) AddSubroom(idx int) {
	if len(r.Subrooms) < MaxSubrooms {
		r.Subrooms = append(r.Subrooms, idx)
	}
}

// Overlaps - прямоугольники пересекаются с учетом буфера вокруг каждого.
func (r *Room) Overlaps(other *Room, buffer int) bool {
	x1, y1 := r.X-buffer, r.Y-buffer
	x2, y2 := r.X+r.W+buffer, r.Y+r.H+buffer

	ox1, oy1 := other.X-buffer, other.Y-buffer
	ox2, oy2 := other.X+other.W+buffer, other.Y+other.H+buffer

	return !(x2 <= ox1 || x1 >= ox2 || y2 <= oy1 || y1 >= oy2)
}

// Center - центральная клетка интерьера.
func (r *Room) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains - точка внутри интерьера.
func (r *Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ContainsWithWalls - точка внутри комнаты включая стены.
func (r *Room) ContainsWithWalls(x, y int) bool {
	return x >= r.X-1 && x <= r.X+r.W && y >= r.Y-1 && y <= r.Y+r.H
}

func (r *Room) Area() int {
	return r.W * r.H
}

// Bounds - границы интерьера (left, top, right, bottom) включительно.
func (r *Room) Bounds() (int, int, int, int) {
	return r.X, r.Y, r.X + r.W - 1, r.Y + r.H - 1
}

// WallBounds - границы вместе со стенами.
func (r *Room) WallBounds() (int, int, int, int) {
	return r.X - 1, r.Y - 1, r.X + r.W, r.Y + r.H
}

// SomeX - случайная X-координата внутри интерьера.
func (r *Room) SomeX(rnd *rng.Rand) int {
	return r.X + rnd.Rn2(r.W)
}

// SomeY - случайная Y-координата внутри интерьера.
func (r *Room) SomeY(rnd *rng.Rand) int {
	return r.Y + rnd.Rn2(r.H)
}

// RandomPoint - случайная клетка интерьера.
func (r *Room) RandomPoint(rnd *rng.Rand) (int, int) {
	return r.SomeX(rnd), r.SomeY(rnd)
}
