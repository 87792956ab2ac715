// Package dungeon строит уровни подземелья: комнаты с коридорами,
// лабиринты, особые комнаты и финальные планы.
package dungeon

import (
	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/rng"
)

// tracker - учет связности комнат методом общих меток.
// Комнаты с одинаковой меткой уже соединены коридором.
type tracker struct {
	smeq []int
}

func newTracker(n int) *tracker {
	t := &tracker{smeq: make([]int, n)}
	for i := range t.smeq {
		t.smeq[i] = i
	}
	return t
}

func (t *tracker) connected(a, b int) bool {
	return t.smeq[a] == t.smeq[b]
}

// merge сливает метки: младшая метка побеждает.
func (t *tracker) merge(a, b int) {
	if t.smeq[a] < t.smeq[b] {
		t.smeq[b] = t.smeq[a]
	} else {
		t.smeq[a] = t.smeq[b]
	}
}

// bydoor - рядом с клеткой (по 4 направлениям) уже есть дверь.
func bydoor(l *domain.Level, x, y int) bool {
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		t := l.TypeAt(x+d[0], y+d[1])
		if t == domain.Door || t == domain.SecretDoor {
			return true
		}
	}
	return false
}

// okdoor - в клетку можно поставить дверь: это стена и рядом дверей нет.
func okdoor(l *domain.Level, x, y int) bool {
	t := l.TypeAt(x, y)
	if t != domain.HWall && t != domain.VWall {
		return false
	}
	return !bydoor(l, x, y)
}

// finddpos ищет позицию для двери на отрезке стены (xl,yl)-(xh,yh).
func finddpos(l *domain.Level, rnd *rng.Rand, xl, yl, xh, yh int) (int, int) {
	x, y := xl, yl
	if xl < xh {
		x = xl + rnd.Rn2(xh-xl+1)
	}
	if yl < yh {
		y = yl + rnd.Rn2(yh-yl+1)
	}
	if okdoor(l, x, y) {
		return x, y
	}

	for x = xl; x <= xh; x++ {
		for y = yl; y <= yh; y++ {
			if okdoor(l, x, y) {
				return x, y
			}
		}
	}
	// Двери вплотную допустимы, если свободных мест на стене нет.
	for x = xl; x <= xh; x++ {
		for y = yl; y <= yh; y++ {
			t := l.TypeAt(x, y)
			if t == domain.Door || t == domain.SecretDoor {
				return x, y
			}
		}
	}
	return xl, yh
}

// dodoor ставит дверь комнаты roomIdx: обычную или (1 к 8) потайную.
func dodoor(l *domain.Level, rnd *rng.Rand, x, y, roomIdx int) {
	typ := domain.Door
	if rnd.Rn2(8) == 0 {
		typ = domain.SecretDoor
	}
	dosdoor(l, rnd, x, y, roomIdx, typ)
}

// dosdoor ставит дверь типа typ и разыгрывает ее состояние.
func dosdoor(l *domain.Level, rnd *rng.Rand, x, y, roomIdx int, typ domain.CellType) {
	if !l.TypeAt(x, y).IsWall() {
		typ = domain.Door // потайная дверь бывает только в стене
	}
	l.SetType(x, y, typ)
	cell := l.At(x, y)
	if cell == nil {
		return
	}

	depth := l.ID.Depth()
	shop := roomIdx >= 0 && roomIdx < len(l.Rooms) && l.Rooms[roomIdx].Type.IsShop()

	if typ == domain.Door {
		var state domain.DoorState
		if rnd.Rn2(3) != 0 {
			// Чаще всего просто проем.
			state = domain.NoDoor
			if shop {
				state = domain.DoorOpen
			}
		} else {
			if rnd.Rn2(5) == 0 {
				state = domain.DoorOpen
			} else if rnd.Rn2(6) == 0 {
				state = domain.DoorLocked
			} else {
				state = domain.DoorClosed
			}
			if state != domain.DoorOpen && !shop &&
				depth >= 5 && rnd.Rn2(25) == 0 {
				state |= domain.DoorTrapped
			}
		}
		if state.Has(domain.DoorTrapped) && depth >= 9 && rnd.Rn2(5) == 0 {
			// На глубине ловушку заменяет проем-приманка.
			state = domain.NoDoor
		}
		cell.SetDoorState(state)
	} else {
		state := domain.DoorClosed
		if shop || rnd.Rn2(5) == 0 {
			state = domain.DoorLocked
		}
		if depth >= 4 && rnd.Rn2(20) == 0 {
			state |= domain.DoorTrapped
		}
		cell.SetDoorState(state | domain.DoorSecret)
	}
	l.AddDoor(x, y, roomIdx)
}

// digCorridor прокапывает коридор от org к dest через породу btyp,
// оставляя клетки ftyp. nxcor - "лишний" коридор, может оборваться.
func digCorridor(l *domain.Level, rnd *rng.Rand, orgX, orgY, destX, destY int, nxcor bool, ftyp, btyp domain.CellType) bool {
	dx, dy := 0, 0
	xx, yy := orgX, orgY
	tx, ty := destX, destY

	switch {
	case xx-1 > tx:
		dx = -1
	case xx+1 < tx:
		dx = 1
	case yy-1 > ty:
		dy = -1
	case yy+1 < ty:
		dy = 1
	default:
		return false
	}
	xx -= dx
	yy -= dy

	cct := 0
	for xx != tx || yy != ty {
		cct++
		if cct > 500 || (nxcor && rnd.Rn2(35) == 0) {
			return false
		}
		xx += dx
		yy += dy
		if xx >= domain.ColNo-1 || xx <= 0 || yy >= domain.RowNo-1 || yy <= 0 {
			return false
		}

		switch l.TypeAt(xx, yy) {
		case btyp:
			if ftyp != domain.Corridor || rnd.Rn2(100) != 0 {
				l.SetType(xx, yy, ftyp)
			} else {
				l.SetType(xx, yy, domain.SecretCorridor)
			}
		case ftyp, domain.SecretCorridor:
			// Уже прокопано - идем дальше.
		default:
			return false
		}

		dix := abs(xx - tx)
		diy := abs(yy - ty)
		if dix > diy && diy != 0 && rnd.Rn2(dix-diy+1) == 0 {
			dix = 0
		} else if diy > dix && dix != 0 && rnd.Rn2(diy-dix+1) == 0 {
			diy = 0
		}

		// Смена направления в сторону цели, если там можно копать.
		if dy != 0 && dix > diy {
			ddx := 1
			if xx > tx {
				ddx = -1
			}
			if diggable(l.TypeAt(xx+ddx, yy), ftyp, btyp) {
				dx, dy = ddx, 0
				continue
			}
		} else if dx != 0 && diy > dix {
			ddy := 1
			if yy > ty {
				ddy = -1
			}
			if diggable(l.TypeAt(xx, yy+ddy), ftyp, btyp) {
				dx, dy = 0, ddy
				continue
			}
		}

		if diggable(l.TypeAt(xx+dx, yy+dy), ftyp, btyp) {
			continue // прямо
		}

		// Поворот к цели, иначе разворот.
		if dx != 0 {
			dx = 0
			dy = 1
			if ty < yy {
				dy = -1
			}
		} else {
			dy = 0
			dx = 1
			if tx < xx {
				dx = -1
			}
		}
		if diggable(l.TypeAt(xx+dx, yy+dy), ftyp, btyp) {
			continue
		}
		dx, dy = -dx, -dy
	}
	return true
}

func diggable(t, ftyp, btyp domain.CellType) bool {
	return t == btyp || t == ftyp || t == domain.SecretCorridor
}

// joinRooms соединяет комнаты a и b коридором с дверьми на концах.
func joinRooms(l *domain.Level, rnd *rng.Rand, a, b int, nxcor bool, tr *tracker) {
	croom := &l.Rooms[a]
	troom := &l.Rooms[b]

	cl, ct, cr, cb := croom.Bounds()
	tl, tt, tr2, tb := troom.Bounds()

	var dx, dy int
	var ccx, ccy, ttx, tty int

	switch {
	case tl > cr: // troom правее
		dx = 1
		ccx, ccy = finddpos(l, rnd, cr+1, ct, cr+1, cb)
		ttx, tty = finddpos(l, rnd, tl-1, tt, tl-1, tb)
	case tb < ct: // troom выше
		dy = -1
		ccx, ccy = finddpos(l, rnd, cl, ct-1, cr, ct-1)
		ttx, tty = finddpos(l, rnd, tl, tb+1, tr2, tb+1)
	case tr2 < cl: // troom левее
		dx = -1
		ccx, ccy = finddpos(l, rnd, cl-1, ct, cl-1, cb)
		ttx, tty = finddpos(l, rnd, tr2+1, tt, tr2+1, tb)
	default: // troom ниже
		dy = 1
		ccx, ccy = finddpos(l, rnd, cl, cb+1, cr, cb+1)
		ttx, tty = finddpos(l, rnd, tl, tt-1, tr2, tt-1)
	}

	if nxcor && l.TypeAt(ccx+dx, ccy+dy) != domain.Stone {
		return
	}
	if okdoor(l, ccx, ccy) || !nxcor {
		dodoor(l, rnd, ccx, ccy, a)
	}

	if !digCorridor(l, rnd, ccx+dx, ccy+dy, ttx-dx, tty-dy,
		nxcor, domain.Corridor, domain.Stone) {
		return
	}

	if okdoor(l, ttx, tty) || !nxcor {
		dodoor(l, rnd, ttx, tty, b)
	}

	if tr != nil && !tr.connected(a, b) {
		tr.merge(a, b)
	}
}

// makeCorridors соединяет все комнаты уровня в четыре прохода:
// соседние пары, через одну, добивка несвязанных и случайные лишние.
func makeCorridors(l *domain.Level, rnd *rng.Rand) {
	nroom := len(l.Rooms)
	if nroom < 2 {
		return
	}
	tr := newTracker(nroom)

	for a := 0; a < nroom-1; a++ {
		joinRooms(l, rnd, a, a+1, false, tr)
		if rnd.Rn2(50) == 0 {
			break
		}
	}
	for a := 0; a < nroom-2; a++ {
		if !tr.connected(a, a+2) {
			joinRooms(l, rnd, a, a+2, false, tr)
		}
	}
	for a, any := 0, true; any && a < nroom; a++ {
		any = false
		for b := 0; b < nroom; b++ {
			if !tr.connected(a, b) {
				joinRooms(l, rnd, a, b, false, tr)
				any = true
			}
		}
	}
	if nroom > 2 {
		for i := rnd.Rn2(nroom) + 4; i > 0; i-- {
			a := rnd.Rn2(nroom)
			b := rnd.Rn2(nroom - 2)
			if b >= a {
				b += 2
			}
			joinRooms(l, rnd, a, b, true, tr)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
