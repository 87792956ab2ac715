package dungeon

import (
	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/rng"
)

// Generate строит уровень id из зерна seed. Один и тот же seed
// воспроизводит уровень бит в бит, включая каждую клетку.
func Generate(id domain.DLevel, seed int64) *domain.Level {
	return GenerateWith(id, seed, nil)
}

// GenerateWith учитывает таблицу истребленных видов при заселении.
func GenerateWith(id domain.DLevel, seed int64, vit *domain.VitalityTable) *domain.Level {
	l := domain.NewLevel(id, seed)
	rnd := rng.New(seed)

	switch {
	case id.Branch == domain.BranchPlanes:
		makePlane(l, rnd)
	case isMazeLevel(id):
		makeMaze(l, rnd)
	default:
		makeRoomsAndCorridors(l, rnd, vit)
	}
	return l
}

// isMazeLevel - уровень генерируется лабиринтом: весь Геенном
// и глубины основного подземелья от 25.
func isMazeLevel(id domain.DLevel) bool {
	if id.Branch == domain.BranchGehennom {
		return true
	}
	return id.Branch == domain.BranchMain && id.Depth() >= 25
}

// makeRoomsAndCorridors - стандартный уровень: 6-9 комнат,
// коридоры в четыре прохода, двери, лестницы, обитатели.
func makeRoomsAndCorridors(l *domain.Level, rnd *rng.Rand, vit *domain.VitalityTable) {
	numRooms := rnd.Rnd(4) + 5

	for try := 0; try < numRooms*3 && len(l.Rooms) < numRooms; try++ {
		w := rnd.Rnd(7) + 2 // 3-9
		h := rnd.Rnd(5) + 2 // 3-7

		maxX := domain.ColNo - (w + 2)
		maxY := domain.RowNo - (h + 2)
		if maxX < 2 || maxY < 2 {
			continue
		}
		x := rnd.Rn2(maxX-1) + 1
		y := rnd.Rn2(maxY-1) + 1

		room := domain.NewRoom(x, y, w, h)
		if overlapsAny(l.Rooms, &room, 1) {
			continue
		}
		idx := l.AddRoom(room)
		carveRoom(l, &l.Rooms[idx], int8(idx))
	}

	makeCorridors(l, rnd)
	placeDoors(l, rnd)

	depth := l.ID.Depth()
	if special, ok := selectSpecialRoomType(rnd, depth, &l.Flags); ok {
		if idx := pickRoomForSpecial(l.Rooms, special); idx >= 0 {
			room := &l.Rooms[idx]
			room.Type = special
			room.Lit = special != domain.Morgue && special != domain.Vault
			setLevelFlags(&l.Flags, special)
			if !room.Lit {
				darkenRoom(l, room)
			}
			switch {
			case special.IsShop():
				populateShop(l, room, rnd)
			default:
				populateSpecialRoom(l, idx, rnd, vit)
			}
		}
	}

	makeVault(l, rnd)
	placeFountains(l, rnd)

	if len(l.Rooms) > 0 {
		placeStairs(l, rnd)
	}
	placeMonsters(l, rnd, vit)
}

func overlapsAny(rooms []domain.Room, r *domain.Room, buffer int) bool {
	for i := range rooms {
		if r.Overlaps(&rooms[i], buffer) {
			return true
		}
	}
	return false
}

// carveRoom вырезает комнату: стены по периметру, пол внутри.
func carveRoom(l *domain.Level, room *domain.Room, idx int8) {
	for x := room.X - 1; x <= room.X+room.W && x < domain.ColNo; x++ {
		for y := room.Y - 1; y <= room.Y+room.H && y < domain.RowNo; y++ {
			if x < 0 || y < 0 {
				continue
			}
			vEdge := x == room.X-1 || x == room.X+room.W
			hEdge := y == room.Y-1 || y == room.Y+room.H

			cell := l.At(x, y)
			switch {
			case vEdge && hEdge:
				cell.Type = domain.HWall // углы рисуются как HWall
			case vEdge:
				cell.Type = domain.VWall
			case hEdge:
				cell.Type = domain.HWall
			default:
				cell.Type = domain.RoomFloor
				cell.Lit = room.Lit
				cell.RoomIdx = idx
			}
		}
	}
}

// placeDoors добавляет двери на стенах, к которым подошли коридоры.
func placeDoors(l *domain.Level, rnd *rng.Rand) {
	depth := l.ID.Depth()
	for i := range l.Rooms {
		room := &l.Rooms[i]
		shop := room.Type.IsShop()

		for x := room.X; x < room.X+room.W; x++ {
			if room.Y > 0 {
				tryPlaceDoor(l, rnd, x, room.Y-1, i, depth, shop)
			}
			if room.Y+room.H < domain.RowNo {
				tryPlaceDoor(l, rnd, x, room.Y+room.H, i, depth, shop)
			}
		}
		for y := room.Y; y < room.Y+room.H; y++ {
			if room.X > 0 {
				tryPlaceDoor(l, rnd, room.X-1, y, i, depth, shop)
			}
			if room.X+room.W < domain.ColNo {
				tryPlaceDoor(l, rnd, room.X+room.W, y, i, depth, shop)
			}
		}
	}
}

// tryPlaceDoor ставит дверь в стену, если за ней коридор и рядом
// нет другой двери. Иногда вместо двери остается просто проем.
func tryPlaceDoor(l *domain.Level, rnd *rng.Rand, x, y, roomIdx, depth int, shop bool) {
	if !l.TypeAt(x, y).IsWall() {
		return
	}

	hasCorridor := false
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		t := l.TypeAt(x+d[0], y+d[1])
		if t == domain.Corridor || t == domain.SecretCorridor {
			hasCorridor = true
			break
		}
	}
	if !hasCorridor || bydoor(l, x, y) {
		return
	}

	if rnd.Rn2(8) < 7 {
		typ, state := rollDoorState(rnd, depth, shop)
		l.SetType(x, y, typ)
		l.At(x, y).SetDoorState(state)
		l.AddDoor(x, y, roomIdx)
	} else {
		l.SetType(x, y, domain.Corridor)
	}
}

// rollDoorState разыгрывает тип и состояние двери.
func rollDoorState(rnd *rng.Rand, depth int, shop bool) (domain.CellType, domain.DoorState) {
	secret := rnd.Rn2(8) == 0
	typ := domain.Door
	if secret {
		typ = domain.SecretDoor
	}

	var state domain.DoorState
	if shop {
		if secret {
			state = domain.DoorLocked
		} else {
			state = domain.DoorOpen
		}
	} else {
		switch rnd.Rn2(3) {
		case 0:
			state = domain.DoorLocked
		case 1:
			state = domain.DoorClosed
		default:
			state = domain.DoorOpen
		}
	}
	if depth >= 5 && state.Has(domain.DoorLocked) && rnd.Rn2(25) == 0 {
		state |= domain.DoorTrapped
	}
	if secret {
		state |= domain.DoorSecret
	}
	return typ, state
}

// selectSpecialRoomType выбирает тип особой комнаты по глубине.
// Проверки идут от мелких комнат к глубоким, каждая со своим шансом.
func selectSpecialRoomType(rnd *rng.Rand, depth int, flags *domain.LevelFlags) (domain.RoomType, bool) {
	if depth < 2 {
		return domain.Ordinary, false
	}

	// Магазины до глубины Людиоса, шанс тает с глубиной.
	if depth < 19 && rnd.Rn2(depth) < 3 {
		flags.HasShop = true
		return selectShopType(rnd), true
	}

	if depth >= 4 && rnd.OneIn(6) && !flags.HasCourt {
		flags.HasCourt = true
		return domain.Court, true
	}
	if depth >= 5 && rnd.OneIn(8) && !flags.HasLepHall {
		flags.HasLepHall = true
		return domain.LeprechaunHall, true
	}
	if depth >= 6 && rnd.OneIn(7) && !flags.HasZoo {
		flags.HasZoo = true
		return domain.Zoo, true
	}
	if depth >= 8 && rnd.OneIn(5) && !flags.HasTemple {
		flags.HasTemple = true
		return domain.Temple, true
	}
	if depth >= 9 && rnd.OneIn(5) && !flags.HasBeehive {
		flags.HasBeehive = true
		return domain.Beehive, true
	}
	if depth >= 11 && rnd.OneIn(6) && !flags.HasMorgue {
		flags.HasMorgue = true
		flags.Graveyard = true
		return domain.Morgue, true
	}
	if depth >= 12 && rnd.OneIn(5) && !flags.HasAnthole {
		flags.HasAnthole = true
		return domain.Anthole, true
	}
	if depth >= 14 && rnd.OneIn(4) && !flags.HasBarracks {
		flags.HasBarracks = true
		return domain.Barracks, true
	}
	if depth >= 15 && rnd.OneIn(6) && !flags.HasSwamp {
		flags.HasSwamp = true
		return domain.Swamp, true
	}
	if depth >= 16 && rnd.OneIn(8) && !flags.HasNest {
		flags.HasNest = true
		return domain.CockatriceNest, true
	}
	return domain.Ordinary, false
}

// selectShopType - взвешенный выбор типа магазина.
func selectShopType(rnd *rng.Rand) domain.RoomType {
	roll := rnd.Rn2(100)
	switch {
	case roll < 44:
		return domain.GeneralShop
	case roll < 60:
		return domain.FoodShop
	case roll < 74:
		return domain.WeaponShop
	case roll < 84:
		return domain.ArmorShop
	case roll < 92:
		return domain.ToolShop
	case roll < 96:
		return domain.BookShop
	case roll < 98:
		return domain.RingShop
	case roll < 99:
		return domain.WandShop
	}
	return domain.CandleShop
}

// pickRoomForSpecial ищет подходящую обычную комнату с конца списка.
// Первая комната обычно занята лестницей вверх.
func pickRoomForSpecial(rooms []domain.Room, special domain.RoomType) int {
	minArea := 9
	if special.IsShop() {
		minArea = 12
	}
	for idx := len(rooms) - 1; idx >= 0; idx-- {
		if rooms[idx].Type != domain.Ordinary || rooms[idx].Area() < minArea {
			continue
		}
		if idx > 0 || len(rooms) == 1 {
			return idx
		}
	}
	return -1
}

func setLevelFlags(flags *domain.LevelFlags, t domain.RoomType) {
	switch t {
	case domain.Court:
		flags.HasCourt = true
	case domain.Swamp:
		flags.HasSwamp = true
	case domain.Vault:
		flags.HasVault = true
	case domain.Beehive:
		flags.HasBeehive = true
	case domain.Morgue:
		flags.HasMorgue = true
	case domain.Barracks:
		flags.HasBarracks = true
	case domain.Zoo:
		flags.HasZoo = true
	case domain.Temple:
		flags.HasTemple = true
	case domain.LeprechaunHall:
		flags.HasLepHall = true
	case domain.CockatriceNest:
		flags.HasNest = true
	case domain.Anthole:
		flags.HasAnthole = true
	default:
		if t.IsShop() {
			flags.HasShop = true
		}
	}
}

func darkenRoom(l *domain.Level, room *domain.Room) {
	for x := room.X; x < room.X+room.W; x++ {
		for y := room.Y; y < room.Y+room.H; y++ {
			if c := l.At(x, y); c != nil {
				c.Lit = false
			}
		}
	}
}

// makeVault вырезает изолированную сокровищницу 2x2 в толще породы.
// У нее нет дверей; внутрь ведет разве что телепортационная ловушка.
func makeVault(l *domain.Level, rnd *rng.Rand) {
	if l.Flags.HasVault || rnd.Rn2(2) != 0 {
		return
	}

	for try := 0; try < 50; try++ {
		x := rnd.Rn2(domain.ColNo-6) + 3
		y := rnd.Rn2(domain.RowNo-6) + 3

		// Область 2x2 плюс стены плюс зазор должна быть сплошной породой.
		clear := true
		for dx := -2; dx <= 3 && clear; dx++ {
			for dy := -2; dy <= 3 && clear; dy++ {
				if l.TypeAt(x+dx, y+dy) != domain.Stone {
					clear = false
				}
			}
		}
		if !clear {
			continue
		}

		room := domain.NewTypedRoom(x, y, 2, 2, domain.Vault)
		idx := l.AddRoom(room)
		carveRoom(l, &l.Rooms[idx], int8(idx))
		l.Flags.HasVault = true
		populateVault(l, &l.Rooms[idx], rnd)
		return
	}
}

// placeFountains добавляет фонтаны в случайные комнаты.
func placeFountains(l *domain.Level, rnd *rng.Rand) {
	if len(l.Rooms) == 0 {
		return
	}
	for rnd.Rn2(7) == 0 && l.Flags.FountainCount < 3 {
		room := &l.Rooms[rnd.Rn2(len(l.Rooms))]
		if room.Type != domain.Ordinary {
			continue
		}
		x, y := room.RandomPoint(rnd)
		if l.TypeAt(x, y) != domain.RoomFloor {
			continue
		}
		l.SetType(x, y, domain.Fountain)
		l.Flags.FountainCount++
	}
}

// placeStairs ставит лестницу вверх в первой комнате и вниз в последней.
// На дне ветки лестницы вниз нет.
func placeStairs(l *domain.Level, rnd *rng.Rand) {
	up := &l.Rooms[0]
	ux, uy := up.RandomPoint(rnd)
	l.SetType(ux, uy, domain.Stairs)
	l.AddStairway(domain.Stairway{X: ux, Y: uy, Up: true, Dest: l.ID.Above()})

	if l.ID.IsDeepest() {
		return
	}
	downIdx := 0
	if len(l.Rooms) > 1 {
		downIdx = len(l.Rooms) - 1
		if l.Rooms[downIdx].Type == domain.Vault {
			downIdx--
		}
	}
	dx, dy := l.Rooms[downIdx].RandomPoint(rnd)
	if dx == ux && dy == uy {
		return
	}
	l.SetType(dx, dy, domain.Stairs)
	l.AddStairway(domain.Stairway{X: dx, Y: dy, Up: false, Dest: l.ID.Below()})
}

// placeMonsters заселяет уровень 3-8 случайными существами.
func placeMonsters(l *domain.Level, rnd *rng.Rand, vit *domain.VitalityTable) {
	if len(l.Rooms) == 0 {
		return
	}
	depth := l.ID.Depth()
	count := rnd.Rnd(6) + 2

	for i := 0; i < count; i++ {
		idx := 0
		if len(l.Rooms) > 1 {
			idx = rnd.Rn2(len(l.Rooms)-1) + 1
		}
		room := &l.Rooms[idx]
		if room.Type == domain.Vault {
			continue
		}
		x, y := room.RandomPoint(rnd)
		if l.MonsterAt(x, y) != nil {
			continue
		}
		kind := wanderingKind(rnd, depth)
		if !vit.Alive(kind) {
			continue
		}
		l.AddMonster(domain.NewMonster(kind, x, y, rnd))
	}
}

// wanderingKind - случайный обитатель по шкале глубины.
func wanderingKind(rnd *rng.Rand, depth int) domain.MonsterKind {
	i := rnd.Rnd(60) + rnd.Rnd(3*depth)
	switch {
	case i > 100:
		return domain.Dragon
	case i > 95:
		return domain.Giant
	case i > 85:
		return domain.Troll
	case i > 75:
		return domain.Centaur
	case i > 60:
		return domain.Orc
	case i > 45:
		return domain.Bugbear
	case i > 30:
		return domain.Hobgoblin
	case i > 15:
		return domain.Gnome
	}
	return domain.Kobold
}
