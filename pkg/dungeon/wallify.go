package dungeon

import "github.com/pierreaubert/nethack-rs-sub002/internal/domain"

// spineWalls - тип стены по маске проходимых соседей N<<3|S<<2|E<<1|W.
// Стена поворачивается так, чтобы смотреть на все прилегающие проходы.
var spineWalls = [16]domain.CellType{
	domain.VWall,     // изолированная
	domain.HWall,     // W
	domain.HWall,     // E
	domain.HWall,     // E|W
	domain.VWall,     // S
	domain.TRCorner,  // S|W
	domain.TLCorner,  // S|E
	domain.TDWall,    // S|E|W
	domain.VWall,     // N
	domain.BRCorner,  // N|W
	domain.BLCorner,  // N|E
	domain.TUWall,    // N|E|W
	domain.VWall,     // N|S
	domain.TLWall,    // N|S|W
	domain.TRWall,    // N|S|E
	domain.CrossWall, // N|S|E|W
}

// passage - клетка считается проходом при обращении стен.
func passage(t domain.CellType) bool {
	return t == domain.Corridor || t == domain.RoomFloor || t == domain.Door
}

// wallify превращает породу, граничащую с проходами, в стены
// подходящей ориентации. Используется лабиринтами и планами.
func wallify(l *domain.Level, x1, y1, x2, y2 int) {
	type fix struct {
		x, y int
		t    domain.CellType
	}
	var fixes []fix

	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			if l.TypeAt(x, y) != domain.Stone {
				continue
			}
			mask := 0
			if passage(l.TypeAt(x, y-1)) {
				mask |= 8
			}
			if passage(l.TypeAt(x, y+1)) {
				mask |= 4
			}
			if passage(l.TypeAt(x+1, y)) {
				mask |= 2
			}
			if passage(l.TypeAt(x-1, y)) {
				mask |= 1
			}
			// Диагональные соседи тоже требуют стену.
			diag := mask == 0 &&
				(passage(l.TypeAt(x-1, y-1)) || passage(l.TypeAt(x+1, y-1)) ||
					passage(l.TypeAt(x-1, y+1)) || passage(l.TypeAt(x+1, y+1)))
			if mask != 0 {
				fixes = append(fixes, fix{x, y, spineWalls[mask]})
			} else if diag {
				fixes = append(fixes, fix{x, y, spineWalls[0]})
			}
		}
	}
	// Типы меняются после прохода, чтобы не влиять на маски соседей.
	for _, f := range fixes {
		l.SetType(f.x, f.y, f.t)
	}
}
