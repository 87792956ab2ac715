package dungeon

import (
	"hash/fnv"

	"github.com/zyedidia/generic/mapset"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/rng"
)

type coord struct {
	x, y int
}

// reservedCells - клетки, на которые нельзя сажать обитателей:
// лестницы и места под трон или алтарь.
func reservedCells(l *domain.Level, extra ...coord) mapset.Set[coord] {
	set := mapset.New[coord]()
	for i := range l.Stairs {
		set.Put(coord{l.Stairs[i].X, l.Stairs[i].Y})
	}
	for _, c := range extra {
		set.Put(c)
	}
	return set
}

// spawnDensity - знаменатель шанса заселения клетки по типу комнаты.
func spawnDensity(t domain.RoomType) int {
	switch t {
	case domain.Court, domain.Barracks, domain.LeprechaunHall:
		return 4
	case domain.Zoo, domain.Morgue:
		return 3
	case domain.Beehive, domain.Anthole:
		return 2
	case domain.CockatriceNest:
		return 5
	}
	return 0
}

// populateSpecialRoom заселяет особую комнату тематическими
// существами и ставит ее атрибуты (трон, алтарь, болотные лужи).
func populateSpecialRoom(l *domain.Level, roomIdx int, rnd *rng.Rand, vit *domain.VitalityTable) {
	room := &l.Rooms[roomIdx]
	depth := l.ID.Depth()
	cx, cy := room.Center()

	density := spawnDensity(room.Type)
	if density == 0 {
		switch room.Type {
		case domain.Temple:
			populateTemple(l, room, rnd)
		case domain.Swamp:
			populateSwamp(l, room, rnd, vit)
		}
		return
	}

	reserved := reservedCells(l)
	if room.Type == domain.Court {
		reserved.Put(coord{cx, cy})
	}

	sleeping := room.Type.MonstersSleep()
	for x := room.X; x < room.X+room.W; x++ {
		for y := room.Y; y < room.Y+room.H; y++ {
			if l.TypeAt(x, y) != domain.RoomFloor {
				continue
			}
			if reserved.Has(coord{x, y}) || l.MonsterAt(x, y) != nil {
				continue
			}
			if rnd.Rn2(density) != 0 {
				continue
			}
			kind := roomMonster(room.Type, rnd, l.Seed, depth, x == cx && y == cy)
			if !vit.Alive(kind) {
				continue
			}
			m := domain.NewMonster(kind, x, y, rnd)
			m.Sleeping = sleeping
			l.AddMonster(m)
		}
	}

	if room.Type == domain.Court {
		l.SetType(cx, cy, domain.Throne)
	}
}

// roomMonster выбирает вид обитателя по типу комнаты.
func roomMonster(t domain.RoomType, rnd *rng.Rand, seed int64, depth int, center bool) domain.MonsterKind {
	switch t {
	case domain.Court:
		return courtMonster(rnd, depth)
	case domain.Morgue:
		return morgueMonster(rnd, depth)
	case domain.Barracks:
		return squadMonster(rnd, depth)
	case domain.Beehive:
		if center {
			return domain.QueenBee
		}
		return domain.KillerBee
	case domain.Anthole:
		return antholeMonster(seed, depth)
	case domain.LeprechaunHall:
		return domain.Leprechaun
	case domain.CockatriceNest:
		return domain.Cockatrice
	}
	return wanderingKind(rnd, depth)
}

// courtMonster - свита тронного зала, иерархия по сложности.
func courtMonster(rnd *rng.Rand, depth int) domain.MonsterKind {
	return wanderingKind(rnd, depth)
}

// morgueMonster - нежить морга.
func morgueMonster(rnd *rng.Rand, depth int) domain.MonsterKind {
	i := rnd.Rn2(100)
	hd := rnd.Rn2(depth)

	if hd > 10 && i < 10 {
		return domain.Demon
	}
	if hd > 8 && i > 85 {
		return domain.Vampire
	}
	switch {
	case i < 20:
		return domain.Ghost
	case i < 40:
		return domain.Wraith
	}
	return domain.Zombie
}

// squadMonster - военная иерархия казармы.
func squadMonster(rnd *rng.Rand, depth int) domain.MonsterKind {
	prob := rnd.Rnd(80 + depth)
	switch {
	case prob >= 100:
		return domain.Captain
	case prob >= 96:
		return domain.Lieutenant
	case prob >= 81:
		return domain.Sergeant
	}
	return domain.Soldier
}

// antholeMonster - вид муравьев фиксирован парой (зерно, глубина)
// и не зависит от общего потока случайных чисел.
func antholeMonster(seed int64, depth int) domain.MonsterKind {
	h := fnv.New64a()
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(uint64(seed) >> (8 * i))
		buf[8+i] = byte(uint64(depth) >> (8 * i))
	}
	h.Write(buf[:])

	switch h.Sum64() % 3 {
	case 0:
		return domain.SoldierAnt
	case 1:
		return domain.FireAnt
	}
	return domain.GiantAnt
}

// swampMonster - водные обитатели болота.
func swampMonster(rnd *rng.Rand) domain.MonsterKind {
	switch i := rnd.Rn2(10); {
	case i < 8:
		return domain.GiantEel
	case i == 8:
		return domain.Piranha
	}
	return domain.ElectricEel
}

// populateTemple ставит алтарь в центре и мирного жреца рядом.
func populateTemple(l *domain.Level, room *domain.Room, rnd *rng.Rand) {
	cx, cy := room.Center()

	l.SetType(cx, cy, domain.Altar)
	align := domain.AltarAlign(rnd.Rn2(3) + 1)
	l.At(cx, cy).SetAltarAlign(align)

	for _, p := range [4]coord{{cx - 1, cy}, {cx + 1, cy}, {cx, cy - 1}, {cx, cy + 1}} {
		if !room.Contains(p.x, p.y) || l.MonsterAt(p.x, p.y) != nil {
			continue
		}
		priest := domain.NewMonster(domain.AlignedPriest, p.x, p.y, rnd)
		priest.Peaceful = true
		l.AddMonster(priest)
		break
	}
}

// populateSwamp выкладывает лужи в шахматном порядке и заселяет их.
func populateSwamp(l *domain.Level, room *domain.Room, rnd *rng.Rand, vit *domain.VitalityTable) {
	for x := room.X; x < room.X+room.W; x++ {
		for y := room.Y; y < room.Y+room.H; y++ {
			if l.TypeAt(x, y) != domain.RoomFloor {
				continue
			}
			if (x+y)%2 == 0 {
				l.SetType(x, y, domain.Pool)
				if rnd.OneIn(2) && l.MonsterAt(x, y) == nil {
					kind := swampMonster(rnd)
					if vit.Alive(kind) {
						m := domain.NewMonster(kind, x, y, rnd)
						m.Sleeping = true
						l.AddMonster(m)
					}
				}
			} else if rnd.OneIn(4) && l.MonsterAt(x, y) == nil {
				if vit.Alive(domain.Fungus) {
					m := domain.NewMonster(domain.Fungus, x, y, rnd)
					m.Sleeping = true
					l.AddMonster(m)
				}
			}
		}
	}
}

// populateVault засыпает сокровищницу золотом. В каждой клетке куча,
// размер растет с глубиной. С шансом 1 к 3 внутрь ведет телепорт.
func populateVault(l *domain.Level, room *domain.Room, rnd *rng.Rand) {
	depth := l.ID.Depth()

	for x := room.X; x < room.X+room.W; x++ {
		for y := room.Y; y < room.Y+room.H; y++ {
			if l.TypeAt(x, y) != domain.RoomFloor {
				continue
			}
			amount := 50 * depth * rnd.Rnd(10)
			if amount < 50 {
				amount = 50
			}
			l.AddObject(domain.NewGold(x, y, amount))
		}
	}

	if rnd.OneIn(3) {
		tx, ty := room.RandomPoint(rnd)
		l.AddTrap(domain.NewTrap(tx, ty, domain.Teleport))
	}

	darkenRoom(l, room)
}
