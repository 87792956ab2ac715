package dungeon

import (
	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/rng"
)

// Plane - один из пяти финальных планов.
type Plane int8

const (
	PlaneEarth Plane = 1 + iota
	PlaneAir
	PlaneFire
	PlaneWater
	PlaneAstral
)

// DLevel - план как уровень ветки планов.
func (p Plane) DLevel() domain.DLevel {
	return domain.NewDLevel(domain.BranchPlanes, int8(p))
}

func (p Plane) Name() string {
	switch p {
	case PlaneEarth:
		return "Plane of Earth"
	case PlaneAir:
		return "Plane of Air"
	case PlaneFire:
		return "Plane of Fire"
	case PlaneWater:
		return "Plane of Water"
	case PlaneAstral:
		return "Astral Plane"
	}
	return "unknown plane"
}

// makePlane строит финальный план по номеру уровня ветки.
func makePlane(l *domain.Level, rnd *rng.Rand) {
	switch Plane(l.ID.Level) {
	case PlaneEarth:
		makeEarthPlane(l, rnd)
	case PlaneAir:
		makeAirPlane(l, rnd)
	case PlaneFire:
		makeFirePlane(l, rnd)
	case PlaneWater:
		makeWaterPlane(l, rnd)
	case PlaneAstral:
		makeAstralPlane(l)
	}
}

// fillPlane заливает карту базовой породой. Телепортация
// на планах отключена всегда.
func fillPlane(l *domain.Level, t domain.CellType) {
	for x := 0; x < domain.ColNo; x++ {
		for y := 0; y < domain.RowNo; y++ {
			l.Cells[x][y].Type = t
			l.Cells[x][y].Lit = false
		}
	}
	l.Flags.NoTeleport = true
}

// carveBlob вырезает круглую область типа t радиусом r вокруг (cx, cy).
func carveBlob(l *domain.Level, cx, cy, r int, t domain.CellType, lit bool) {
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			if c := l.At(cx+dx, cy+dy); c != nil {
				c.Type = t
				c.Lit = lit
			}
		}
	}
}

// makeEarthPlane - план Земли: пещеры в сплошной породе.
func makeEarthPlane(l *domain.Level, rnd *rng.Rand) {
	fillPlane(l, domain.Stone)

	for i := 0; i < 15; i++ {
		cx := 5 + rnd.Rn2(70)
		cy := 2 + rnd.Rn2(17)
		r := 2 + rnd.Rn2(4)
		carveBlob(l, cx, cy, r, domain.RoomFloor, false)
	}
	connectCaverns(l, rnd)

	for i := 0; i < 10; i++ {
		if x, y, ok := findOpenSpot(l, rnd); ok {
			l.AddTrap(domain.NewTrap(x, y, domain.RockFall))
		}
	}

	placePlanePortal(l, rnd, PlaneAir)
	placePlaneEntry(l, rnd, domain.NewDLevel(domain.BranchGehennom, domain.BranchMaxLevel(domain.BranchGehennom)))
}

// makeAirPlane - план Воздуха: пустота с облачными островами.
func makeAirPlane(l *domain.Level, rnd *rng.Rand) {
	fillPlane(l, domain.Air)

	for i := 0; i < 20; i++ {
		cx := 5 + rnd.Rn2(70)
		cy := 2 + rnd.Rn2(17)
		w := 3 + rnd.Rn2(6)
		h := 2 + rnd.Rn2(4)
		for x := cx; x < cx+w && x < domain.ColNo-1; x++ {
			for y := cy; y < cy+h && y < domain.RowNo-1; y++ {
				c := l.At(x, y)
				c.Type = domain.Cloud
				c.Lit = true
			}
		}
	}

	// Центральная твердая площадка.
	cx, cy := domain.ColNo/2, domain.RowNo/2
	for x := cx - 5; x < cx+5; x++ {
		for y := cy - 3; y < cy+3; y++ {
			c := l.At(x, y)
			c.Type = domain.RoomFloor
			c.Lit = true
		}
	}

	placePlanePortal(l, rnd, PlaneFire)
	placePlaneEntry(l, rnd, PlaneEarth.DLevel())
}

// makeFirePlane - план Огня: лава с каменными островами.
func makeFirePlane(l *domain.Level, rnd *rng.Rand) {
	fillPlane(l, domain.Lava)

	for i := 0; i < 12; i++ {
		cx := 5 + rnd.Rn2(70)
		cy := 2 + rnd.Rn2(17)
		r := 2 + rnd.Rn2(5)
		carveBlob(l, cx, cy, r, domain.RoomFloor, true)
	}

	// Центральная башня.
	cx, cy := domain.ColNo/2, domain.RowNo/2
	for x := cx - 6; x < cx+6; x++ {
		for y := cy - 4; y < cy+4; y++ {
			c := l.At(x, y)
			c.Type = domain.RoomFloor
			c.Lit = true
		}
	}

	for i := 0; i < 8; i++ {
		if x, y, ok := findOpenSpot(l, rnd); ok {
			l.AddTrap(domain.NewTrap(x, y, domain.FireTrap))
		}
	}

	placePlanePortal(l, rnd, PlaneWater)
	placePlaneEntry(l, rnd, PlaneAir.DLevel())
}

// makeWaterPlane - план Воды: толща воды с воздушными пузырями.
func makeWaterPlane(l *domain.Level, rnd *rng.Rand) {
	fillPlane(l, domain.Water)

	for i := 0; i < 15; i++ {
		cx := 5 + rnd.Rn2(70)
		cy := 2 + rnd.Rn2(17)
		r := 2 + rnd.Rn2(4)
		carveBlob(l, cx, cy, r, domain.RoomFloor, true)
	}

	// Центральный пузырь.
	cx, cy := domain.ColNo/2, domain.RowNo/2
	for x := cx - 8; x < cx+8; x++ {
		for y := cy - 5; y < cy+5; y++ {
			c := l.At(x, y)
			c.Type = domain.RoomFloor
			c.Lit = true
		}
	}

	placePlanePortal(l, rnd, PlaneAstral)
	placePlaneEntry(l, rnd, PlaneFire.DLevel())
}

// makeAstralPlane - Астральный план: облачная основа, главный коридор
// и три храма с алтарями. Конечная точка, прямого выхода нет.
func makeAstralPlane(l *domain.Level) {
	fillPlane(l, domain.Cloud)

	mid := domain.RowNo / 2
	for x := 5; x < domain.ColNo-5; x++ {
		c := l.At(x, mid)
		c.Type = domain.RoomFloor
		c.Lit = true
	}

	temples := [3]struct {
		x     int
		align domain.AltarAlign
	}{
		{15, domain.AlignLawful},
		{40, domain.AlignNeutral},
		{65, domain.AlignChaotic},
	}
	const ty = 5

	for _, t := range temples {
		for x := t.x - 5; x < t.x+5; x++ {
			for y := ty; y < ty+8 && y < domain.RowNo; y++ {
				c := l.At(x, y)
				c.Type = domain.RoomFloor
				c.Lit = true
			}
		}
		l.SetType(t.x, ty+4, domain.Altar)
		l.At(t.x, ty+4).SetAltarAlign(t.align)

		for y := ty + 8; y < mid; y++ {
			l.SetType(t.x, y, domain.Corridor)
		}
	}
}

// connectCaverns соединяет случайные пары открытых клеток
// Г-образными проходами сквозь породу.
func connectCaverns(l *domain.Level, rnd *rng.Rand) {
	var open []coord
	for x := 2; x < domain.ColNo-2; x++ {
		for y := 2; y < domain.RowNo-2; y++ {
			if l.TypeAt(x, y) == domain.RoomFloor {
				open = append(open, coord{x, y})
			}
		}
	}
	if len(open) < 2 {
		return
	}
	for i := 0; i < 15; i++ {
		a := open[rnd.Rn2(len(open))]
		b := open[rnd.Rn2(len(open))]
		if a != b {
			carveTunnel(l, a.x, a.y, b.x, b.y)
		}
	}
}

func carveTunnel(l *domain.Level, x1, y1, x2, y2 int) {
	x, y := x1, y1
	for x != x2 {
		if l.TypeAt(x, y) == domain.Stone {
			l.SetType(x, y, domain.Corridor)
		}
		if x < x2 {
			x++
		} else {
			x--
		}
	}
	for y != y2 {
		if l.TypeAt(x, y) == domain.Stone {
			l.SetType(x, y, domain.Corridor)
		}
		if y < y2 {
			y++
		} else {
			y--
		}
	}
}

// findOpenSpot ищет открытую клетку случайным перебором.
func findOpenSpot(l *domain.Level, rnd *rng.Rand) (int, int, bool) {
	for try := 0; try < 50; try++ {
		x := 5 + rnd.Rn2(70)
		y := 2 + rnd.Rn2(17)
		t := l.TypeAt(x, y)
		if t == domain.RoomFloor || t == domain.Corridor {
			return x, y, true
		}
	}
	return 0, 0, false
}

// placePlanePortal ставит ровно один портал на следующий план.
func placePlanePortal(l *domain.Level, rnd *rng.Rand, next Plane) {
	for try := 0; try < 100; try++ {
		x := 5 + rnd.Rn2(70)
		y := 2 + rnd.Rn2(17)
		if l.TypeAt(x, y) != domain.RoomFloor || l.TrapAt(x, y) != nil {
			continue
		}
		trap := domain.NewTrap(x, y, domain.MagicPortal)
		trap.Dest = next.DLevel()
		l.AddTrap(trap)
		return
	}
}

// placePlaneEntry ставит лестницу входа с предыдущего уровня.
func placePlaneEntry(l *domain.Level, rnd *rng.Rand, from domain.DLevel) {
	for try := 0; try < 100; try++ {
		x := 5 + rnd.Rn2(70)
		y := 2 + rnd.Rn2(17)
		if l.TypeAt(x, y) != domain.RoomFloor || l.TrapAt(x, y) != nil {
			continue
		}
		l.SetType(x, y, domain.Stairs)
		l.AddStairway(domain.Stairway{X: x, Y: y, Up: true, Dest: from})
		return
	}
}

// WaterBubble - подвижный воздушный пузырь плана Воды.
type WaterBubble struct {
	X, Y   int
	Radius int
	DX, DY int
}

// NewWaterBubble - пузырь со случайным направлением дрейфа.
func NewWaterBubble(x, y, r int, rnd *rng.Rand) WaterBubble {
	return WaterBubble{
		X: x, Y: y, Radius: r,
		DX: rnd.Rn2(3) - 1,
		DY: rnd.Rn2(3) - 1,
	}
}

// MoveStep сдвигает пузырь на шаг, отражаясь от краев карты.
func (b *WaterBubble) MoveStep(rnd *rng.Rand) {
	if rnd.OneIn(10) {
		b.DX = rnd.Rn2(3) - 1
		b.DY = rnd.Rn2(3) - 1
	}

	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	b.X = clamp(b.X+b.DX, b.Radius+2, domain.ColNo-b.Radius-2)
	b.Y = clamp(b.Y+b.DY, b.Radius+2, domain.RowNo-b.Radius-2)

	if b.X <= b.Radius+2 || b.X >= domain.ColNo-b.Radius-2 {
		b.DX = -b.DX
	}
	if b.Y <= b.Radius+2 || b.Y >= domain.RowNo-b.Radius-2 {
		b.DY = -b.DY
	}
}

// CreateWaterBubbles - стартовый набор из 5-8 пузырей.
func CreateWaterBubbles(rnd *rng.Rand) []WaterBubble {
	count := 5 + rnd.Rn2(4)
	bubbles := make([]WaterBubble, 0, count)
	for i := 0; i < count; i++ {
		x := 10 + rnd.Rn2(60)
		y := 4 + rnd.Rn2(13)
		r := 2 + rnd.Rn2(3)
		bubbles = append(bubbles, NewWaterBubble(x, y, r, rnd))
	}
	return bubbles
}

// UpdateWaterCells перезаписывает открытые клетки водой и заново
// вырезает пузыри в их текущих позициях.
func UpdateWaterCells(l *domain.Level, bubbles []WaterBubble) {
	for x := 0; x < domain.ColNo; x++ {
		for y := 0; y < domain.RowNo; y++ {
			if l.Cells[x][y].Type == domain.RoomFloor {
				l.Cells[x][y].Type = domain.Water
			}
		}
	}
	for i := range bubbles {
		b := &bubbles[i]
		for dx := -b.Radius; dx <= b.Radius; dx++ {
			for dy := -b.Radius; dy <= b.Radius; dy++ {
				if dx*dx+dy*dy > b.Radius*b.Radius {
					continue
				}
				c := l.At(b.X+dx, b.Y+dy)
				// Лестницы и прочие особые клетки пузырь обтекает.
				if c != nil && c.Type == domain.Water {
					c.Type = domain.RoomFloor
					c.Lit = true
				}
			}
		}
	}
}
