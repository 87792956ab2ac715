package dungeon

import (
	"github.com/zyedidia/generic/stack"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/rng"
)

// makeMaze строит уровень-лабиринт: проходы шириной в клетку,
// несколько комнат, лестницы, ловушки и золото.
func makeMaze(l *domain.Level, rnd *rng.Rand) {
	depth := l.ID.Depth()
	l.Flags.IsMaze = true

	// Мелкие лабиринты освещены целиком.
	lit := depth < 10
	for x := 0; x < domain.ColNo; x++ {
		for y := 0; y < domain.RowNo; y++ {
			l.Cells[x][y].Lit = lit
		}
	}

	// Старт на нечетной клетке, чтобы между проходами оставались стены.
	startX := 2 + rnd.Rn2((domain.ColNo-4)/2)*2 + 1
	startY := 2 + rnd.Rn2((domain.RowNo-4)/2)*2 + 1
	carveMaze(l, rnd, startX, startY)

	for i := rnd.Rnd(3); i > 0; i-- {
		placeMazeRoom(l, rnd)
	}

	wallify(l, 1, 1, domain.ColNo-2, domain.RowNo-2)
	placeMazeStairs(l, rnd)
	placeMazeTraps(l, rnd, depth)
	placeMazeGold(l, rnd, depth)
}

type mazeFrame struct {
	x, y int
	dirs [4][2]int
	next int
}

// carveMaze прокапывает лабиринт обратным следованием. Явный стек
// вместо рекурсии, порядок выборки случайных чисел тот же.
func carveMaze(l *domain.Level, rnd *rng.Rand, x, y int) {
	st := stack.New[*mazeFrame]()
	st.Push(newMazeFrame(l, rnd, x, y))

	for st.Size() > 0 {
		f := st.Peek()
		if f.next >= 4 {
			st.Pop()
			continue
		}
		d := f.dirs[f.next]
		f.next++

		nx, ny := f.x+d[0], f.y+d[1]
		if nx < 2 || nx >= domain.ColNo-2 || ny < 2 || ny >= domain.RowNo-2 {
			continue
		}
		if l.TypeAt(nx, ny) != domain.Stone {
			continue
		}
		// Пробиваем перемычку и уходим в новую клетку.
		l.SetType(f.x+d[0]/2, f.y+d[1]/2, domain.Corridor)
		st.Push(newMazeFrame(l, rnd, nx, ny))
	}
}

func newMazeFrame(l *domain.Level, rnd *rng.Rand, x, y int) *mazeFrame {
	l.SetType(x, y, domain.Corridor)
	f := &mazeFrame{x: x, y: y, dirs: [4][2]int{{0, -2}, {0, 2}, {2, 0}, {-2, 0}}}
	for i := 3; i >= 1; i-- {
		j := rnd.Rn2(i + 1)
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	}
	return f
}

// placeMazeRoom пытается вырезать комнату в толще лабиринта.
func placeMazeRoom(l *domain.Level, rnd *rng.Rand) {
	w := 3 + rnd.Rn2(4)
	h := 3 + rnd.Rn2(2)

	for try := 0; try < 50; try++ {
		x := 3 + rnd.Rn2(domain.ColNo-w-6)
		y := 2 + rnd.Rn2(domain.RowNo-h-4)

		// Площадка должна быть хотя бы на 60% нетронутой породой.
		stone, total := 0, 0
		for rx := x; rx < x+w; rx++ {
			for ry := y; ry < y+h; ry++ {
				total++
				if l.TypeAt(rx, ry) == domain.Stone {
					stone++
				}
			}
		}
		if stone*100/total < 60 {
			continue
		}

		idx := len(l.Rooms)
		for rx := x; rx < x+w; rx++ {
			for ry := y; ry < y+h; ry++ {
				c := l.At(rx, ry)
				c.Type = domain.RoomFloor
				c.Lit = true
				c.RoomIdx = int8(idx)
			}
		}
		l.AddRoom(domain.NewRoom(x, y, w, h))
		connectMazeRoom(l, x, y, w, h)
		return
	}
}

// connectMazeRoom следит, чтобы комната касалась прохода лабиринта.
func connectMazeRoom(l *domain.Level, x, y, w, h int) {
	for rx := x; rx < x+w; rx++ {
		if l.TypeAt(rx, y-1) == domain.Corridor || l.TypeAt(rx, y+h) == domain.Corridor {
			return
		}
	}
	for ry := y; ry < y+h; ry++ {
		if l.TypeAt(x-1, ry) == domain.Corridor || l.TypeAt(x+w, ry) == domain.Corridor {
			return
		}
	}
	// Соседнего прохода нет - пробиваем стену слева.
	if x > 2 {
		l.SetType(x-1, y+h/2, domain.Corridor)
	}
}

// placeMazeStairs ставит лестницы на открытых клетках подальше друг
// от друга. Лестница вниз требует манхэттенской дистанции от 20.
func placeMazeStairs(l *domain.Level, rnd *rng.Rand) {
	upPlaced, downPlaced := false, false
	needDown := !l.ID.IsDeepest()

	for try := 0; try < 100; try++ {
		if upPlaced && (downPlaced || !needDown) {
			break
		}
		x := 2 + rnd.Rn2(domain.ColNo-4)
		y := 2 + rnd.Rn2(domain.RowNo-4)

		t := l.TypeAt(x, y)
		if t != domain.Corridor && t != domain.RoomFloor {
			continue
		}

		if !upPlaced {
			l.SetType(x, y, domain.Stairs)
			l.AddStairway(domain.Stairway{X: x, Y: y, Up: true, Dest: l.ID.Above()})
			upPlaced = true
			continue
		}
		up := &l.Stairs[0]
		if abs(x-up.X)+abs(y-up.Y) < 20 {
			continue
		}
		l.SetType(x, y, domain.Stairs)
		l.AddStairway(domain.Stairway{X: x, Y: y, Up: false, Dest: l.ID.Below()})
		downPlaced = true
	}
}

// placeMazeTraps рассыпает ловушки по проходам, в лабиринтах их больше.
func placeMazeTraps(l *domain.Level, rnd *rng.Rand, depth int) {
	count := rnd.Rnd(depth) + 2
	if count > 15 {
		count = 15
	}

	for i := 0; i < count; i++ {
		for try := 0; try < 20; try++ {
			x := 2 + rnd.Rn2(domain.ColNo-4)
			y := 2 + rnd.Rn2(domain.RowNo-4)

			if l.TypeAt(x, y) != domain.Corridor || l.TrapAt(x, y) != nil {
				continue
			}
			l.AddTrap(domain.NewTrap(x, y, selectMazeTrap(rnd, depth)))
			break
		}
	}
}

var shallowMazeTraps = []domain.TrapKind{
	domain.Teleport, domain.Pit, domain.SpikedPit, domain.ArrowTrap,
	domain.DartTrap, domain.BearTrap, domain.SleepingGas,
}

var deepMazeTraps = []domain.TrapKind{
	domain.Teleport, domain.Teleport, domain.FireTrap, domain.Pit,
	domain.SpikedPit, domain.Hole, domain.TrapDoor, domain.LandMine,
	domain.MagicTrap, domain.AntiMagic,
}

func selectMazeTrap(rnd *rng.Rand, depth int) domain.TrapKind {
	table := shallowMazeTraps
	if depth >= 15 {
		table = deepMazeTraps
	}
	return table[rnd.Rn2(len(table))]
}

// placeMazeGold прячет несколько куч золота в проходах.
func placeMazeGold(l *domain.Level, rnd *rng.Rand, depth int) {
	piles := 2 + rnd.Rnd(3)
	for i := 0; i < piles; i++ {
		for try := 0; try < 20; try++ {
			x := 2 + rnd.Rn2(domain.ColNo-4)
			y := 2 + rnd.Rn2(domain.RowNo-4)

			t := l.TypeAt(x, y)
			if t != domain.Corridor && t != domain.RoomFloor {
				continue
			}
			amount := rnd.Rnd(20+depth*3) + 10
			l.AddObject(domain.NewGold(x, y, amount))
			break
		}
	}
}
