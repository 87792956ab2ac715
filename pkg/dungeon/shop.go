package dungeon

import (
	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/rng"
)

// shopClasses - классы товаров по типу магазина.
func shopClasses(t domain.RoomType) []domain.ObjectClass {
	switch t {
	case domain.ArmorShop:
		return []domain.ObjectClass{domain.ArmorClass}
	case domain.WeaponShop:
		return []domain.ObjectClass{domain.WeaponClass}
	case domain.ScrollShop:
		return []domain.ObjectClass{domain.ScrollClass}
	case domain.PotionShop:
		return []domain.ObjectClass{domain.PotionClass}
	case domain.RingShop:
		return []domain.ObjectClass{domain.RingClass}
	case domain.WandShop:
		return []domain.ObjectClass{domain.WandClass}
	case domain.FoodShop, domain.HealthFoodShop:
		return []domain.ObjectClass{domain.FoodClass}
	case domain.BookShop:
		return []domain.ObjectClass{domain.BookClass}
	case domain.ToolShop, domain.CandleShop:
		return []domain.ObjectClass{domain.ToolClass}
	case domain.GeneralShop:
		return []domain.ObjectClass{
			domain.WeaponClass, domain.ArmorClass, domain.RingClass,
			domain.AmuletClass, domain.ToolClass, domain.FoodClass,
			domain.PotionClass, domain.ScrollClass, domain.WandClass,
		}
	}
	return nil
}

var shopkeeperNames = map[domain.RoomType][]string{
	domain.ArmorShop:  {"Narfi", "Hjuki", "Skuld", "Delling", "Dagr"},
	domain.WeaponShop: {"Sigurd", "Brynhild", "Gunnar", "Hogni", "Atli"},
	domain.FoodShop:   {"Njord", "Frey", "Freya", "Skirnir", "Byggvir"},
	domain.ScrollShop: {"Odin", "Mimir", "Saga", "Snotra", "Vor"},
	domain.PotionShop: {"Idunn", "Bragi", "Gefjon", "Hlin", "Sjofn"},
	domain.RingShop:   {"Draupnir", "Andvaranaut", "Brisingamen", "Gullinbursti", "Megingjord"},
	domain.WandShop:   {"Gandalf", "Merlin", "Circe", "Morgana", "Prospero"},
	domain.BookShop:   {"Snorri", "Voluspa", "Havamal", "Gylfaginning", "Skaldskaparmal"},
	domain.ToolShop:   {"Volund", "Dvalin", "Alfrik", "Berling", "Grer"},
	domain.CandleShop: {"Nott", "Hati", "Skoll", "Mani", "Sol"},
}

var defaultShopkeeperNames = []string{
	"Izchak", "Asidonhopo", "Adjama", "Akhastatoth", "Annodharma",
}

func shopkeeperName(t domain.RoomType, rnd *rng.Rand) string {
	names, ok := shopkeeperNames[t]
	if !ok {
		names = defaultShopkeeperNames
	}
	return names[rnd.Rn2(len(names))]
}

// findRoomDoor - первая дверь на периметре комнаты.
func findRoomDoor(l *domain.Level, room *domain.Room) (int, int, bool) {
	for x := room.X - 1; x <= room.X+room.W; x++ {
		for y := room.Y - 1; y <= room.Y+room.H; y++ {
			if room.Contains(x, y) {
				continue
			}
			t := l.TypeAt(x, y)
			if t == domain.Door || t == domain.SecretDoor {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// keeperPosition - клетка для хозяина: внутри комнаты, вплотную к двери.
func keeperPosition(room *domain.Room, dx, dy int) (int, int) {
	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	switch {
	case dx < room.X:
		return room.X, clamp(dy, room.Y, room.Y+room.H-1)
	case dx >= room.X+room.W:
		return room.X + room.W - 1, clamp(dy, room.Y, room.Y+room.H-1)
	case dy < room.Y:
		return clamp(dx, room.X, room.X+room.W-1), room.Y
	}
	return clamp(dx, room.X, room.X+room.W-1), room.Y + room.H - 1
}

// shopItem - случайный товар с ценой.
func shopItem(classes []domain.ObjectClass, rnd *rng.Rand, x, y int) domain.Object {
	class := classes[rnd.Rn2(len(classes))]

	obj := domain.Object{Class: class, Quantity: 1, X: x, Y: y, Unpaid: true}
	switch class {
	case domain.FoodClass, domain.PotionClass, domain.ScrollClass:
		obj.Quantity = rnd.Rnd(3) + 1
	}

	switch class {
	case domain.WeaponClass:
		obj.Price = 10 + rnd.Rnd(50)
	case domain.ArmorClass:
		obj.Price = 20 + rnd.Rnd(80)
	case domain.RingClass:
		obj.Price = 100 + rnd.Rnd(200)
	case domain.AmuletClass:
		obj.Price = 150 + rnd.Rnd(250)
	case domain.WandClass:
		obj.Price = 50 + rnd.Rnd(100)
	case domain.ScrollClass:
		obj.Price = 20 + rnd.Rnd(30)
	case domain.PotionClass:
		obj.Price = 20 + rnd.Rnd(50)
	case domain.BookClass:
		obj.Price = 100 + rnd.Rnd(400)
	case domain.FoodClass:
		obj.Price = 5 + rnd.Rnd(15)
	case domain.ToolClass:
		obj.Price = 10 + rnd.Rnd(40)
	default:
		obj.Price = 10
	}
	return obj
}

// populateShop сажает хозяина у входа и раскладывает товар
// примерно на половине клеток.
func populateShop(l *domain.Level, room *domain.Room, rnd *rng.Rand) {
	kx, ky := room.Center()
	if dx, dy, ok := findRoomDoor(l, room); ok {
		kx, ky = keeperPosition(room, dx, dy)
	}
	if room.Contains(kx, ky) && l.MonsterAt(kx, ky) == nil {
		keeper := domain.NewMonster(domain.Shopkeeper, kx, ky, rnd)
		keeper.Peaceful = true
		keeper.Name = shopkeeperName(room.Type, rnd)
		l.AddMonster(keeper)
	}

	classes := shopClasses(room.Type)
	if len(classes) == 0 {
		return
	}
	for x := room.X; x < room.X+room.W; x++ {
		for y := room.Y; y < room.Y+room.H; y++ {
			if l.TypeAt(x, y) != domain.RoomFloor {
				continue
			}
			if l.MonsterAt(x, y) != nil {
				continue
			}
			if rnd.OneIn(2) {
				l.AddObject(shopItem(classes, rnd, x, y))
			}
		}
	}
}
