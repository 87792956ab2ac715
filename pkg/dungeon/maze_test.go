package dungeon

import (
	"testing"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
)

func TestMazeLevelSelection(t *testing.T) {
	if !isMazeLevel(domain.NewDLevel(domain.BranchGehennom, 1)) {
		t.Error("Gehennom levels should be mazes")
	}
	if !isMazeLevel(domain.NewDLevel(domain.BranchMain, 26)) {
		t.Error("main dungeon depth 26 should be a maze")
	}
	if isMazeLevel(domain.NewDLevel(domain.BranchMain, 10)) {
		t.Error("main dungeon depth 10 should not be a maze")
	}
}

func TestMazeHasManyCorridors(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchGehennom, 3), seed)
		if !l.Flags.IsMaze {
			t.Fatalf("seed %d: maze flag not set", seed)
		}
		corridors := 0
		for x := 0; x < domain.ColNo; x++ {
			for y := 0; y < domain.RowNo; y++ {
				if l.Cells[x][y].Type == domain.Corridor {
					corridors++
				}
			}
		}
		if corridors < 100 {
			t.Errorf("seed %d: maze has only %d corridor cells", seed, corridors)
		}
	}
}

// Лестницы лабиринта разнесены не меньше чем на 20 шагов.
func TestMazeStairsDistance(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchGehennom, 3), seed)
		up := l.FindUpstairs()
		down := l.FindDownstairs()
		if up == nil {
			t.Fatalf("seed %d: maze has no upstairs", seed)
		}
		if down == nil {
			continue // за сто попыток место могло не найтись
		}
		if d := abs(up.X-down.X) + abs(up.Y-down.Y); d < 20 {
			t.Errorf("seed %d: stairs distance %d, want >= 20", seed, d)
		}
	}
}

// Ловушки лабиринта лежат в проходах и не дублируются по клеткам.
func TestMazeTrapPlacement(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchGehennom, 5), seed)
		seen := map[coord]bool{}
		for _, tr := range l.Traps {
			c := coord{tr.X, tr.Y}
			if seen[c] {
				t.Fatalf("seed %d: duplicate trap at (%d, %d)", seed, tr.X, tr.Y)
			}
			seen[c] = true
			if l.TypeAt(tr.X, tr.Y) != domain.Corridor {
				t.Fatalf("seed %d: trap at (%d, %d) on %v",
					seed, tr.X, tr.Y, l.TypeAt(tr.X, tr.Y))
			}
		}
	}
}

// Обратное следование дает связный лабиринт: от лестницы вверх
// достижима подавляющая часть открытых клеток. Комнаты лабиринта
// изредка остаются глухими, поэтому порог ниже, чем у обычных уровней.
func TestMazeReachability(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchGehennom, 3), seed)
		up := l.FindUpstairs()
		if up == nil {
			t.Fatalf("seed %d: no upstairs", seed)
		}
		reached := floodOpen(l, up.X, up.Y)
		total := countOpen(l)
		if reached*100/total < 75 {
			t.Errorf("seed %d: only %d of %d open cells reachable", seed, reached, total)
		}
	}
}

// Стены лабиринта обращены к проходам: голой породы вплотную
// к коридору не остается.
func TestMazeWallification(t *testing.T) {
	l := Generate(domain.NewDLevel(domain.BranchGehennom, 2), 11)
	for x := 1; x < domain.ColNo-1; x++ {
		for y := 1; y < domain.RowNo-1; y++ {
			if l.Cells[x][y].Type != domain.Stone {
				continue
			}
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				if passage(l.TypeAt(x+d[0], y+d[1])) {
					t.Fatalf("stone at (%d, %d) borders a passage", x, y)
				}
			}
		}
	}
}

func TestMazeGold(t *testing.T) {
	l := Generate(domain.NewDLevel(domain.BranchGehennom, 4), 9)
	gold := 0
	for _, o := range l.Objects {
		if o.Class == domain.GoldClass {
			gold++
			if o.Quantity <= 0 {
				t.Errorf("gold pile at (%d, %d) has quantity %d", o.X, o.Y, o.Quantity)
			}
		}
	}
	if gold < 3 {
		t.Errorf("maze has %d gold piles, want at least 3", gold)
	}
}
