package dungeon

import (
	"reflect"
	"testing"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
)

// Одно зерно - один и тот же уровень бит в бит.
func TestGenerateDeterminism(t *testing.T) {
	ids := []domain.DLevel{
		domain.NewDLevel(domain.BranchMain, 1),
		domain.NewDLevel(domain.BranchMain, 14),
		domain.NewDLevel(domain.BranchMain, 26),
		domain.NewDLevel(domain.BranchGehennom, 3),
		domain.NewDLevel(domain.BranchPlanes, 4),
	}
	for _, id := range ids {
		for _, seed := range []int64{1, 42, 987654321} {
			a := Generate(id, seed)
			b := Generate(id, seed)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("%v seed %d: generation is not reproducible", id, seed)
			}
		}
	}
}

func TestGenerateSeedSensitivity(t *testing.T) {
	id := domain.NewDLevel(domain.BranchMain, 5)
	a := Generate(id, 1)
	b := Generate(id, 2)
	if reflect.DeepEqual(a.Cells, b.Cells) {
		t.Error("different seeds produced identical cell grids")
	}
}

// Комнаты с буфером в одну клетку не пересекаются.
func TestRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchMain, 5), seed)
		for i := range l.Rooms {
			for j := i + 1; j < len(l.Rooms); j++ {
				if l.Rooms[i].Overlaps(&l.Rooms[j], 1) {
					t.Fatalf("seed %d: rooms %d and %d overlap", seed, i, j)
				}
			}
		}
	}
}

// Каждая дверь стоит на дверной клетке с корректным состоянием
// и примыкает хотя бы к одной клетке пола или коридора.
func TestDoorLegality(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchMain, 7), seed)
		for _, d := range l.Doors {
			cell := l.At(d.X, d.Y)
			if cell == nil {
				t.Fatalf("seed %d: door at (%d, %d) out of bounds", seed, d.X, d.Y)
			}
			if cell.Type != domain.Door && cell.Type != domain.SecretDoor {
				t.Fatalf("seed %d: door record at (%d, %d) on %v cell",
					seed, d.X, d.Y, cell.Type)
			}
			state := cell.DoorState()
			if state != domain.NoDoor && !state.Has(domain.DoorOpen) &&
				!state.Has(domain.DoorClosed) && !state.Has(domain.DoorLocked) &&
				!state.Has(domain.DoorBroken) {
				t.Fatalf("seed %d: door at (%d, %d) has no base state (%d)",
					seed, d.X, d.Y, state)
			}

			adjacent := false
			for _, n := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nt := l.TypeAt(d.X+n[0], d.Y+n[1])
				if nt == domain.RoomFloor || nt == domain.Corridor ||
					nt == domain.SecretCorridor || nt == domain.Stairs ||
					nt == domain.Fountain || nt == domain.Throne ||
					nt == domain.Altar || nt == domain.Pool {
					adjacent = true
					break
				}
			}
			if !adjacent {
				t.Fatalf("seed %d: door at (%d, %d) touches no open cell",
					seed, d.X, d.Y)
			}
		}
	}
}

// Особый тип комнаты появляется на уровне не более одного раза.
func TestSpecialRoomExclusivity(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchMain, 16), seed)
		seen := map[domain.RoomType]int{}
		for i := range l.Rooms {
			if l.Rooms[i].Type.IsSpecial() {
				seen[l.Rooms[i].Type]++
			}
		}
		for typ, n := range seen {
			if n > 1 {
				t.Fatalf("seed %d: special room %v appears %d times", seed, typ, n)
			}
		}
	}
}

// У сокровищницы нет дверей; внутрь может вести только телепорт.
func TestVaultIsolation(t *testing.T) {
	found := false
	for seed := int64(1); seed <= 100; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchMain, 10), seed)
		if !l.Flags.HasVault {
			continue
		}
		found = true

		var vault *domain.Room
		for i := range l.Rooms {
			if l.Rooms[i].Type == domain.Vault {
				vault = &l.Rooms[i]
				break
			}
		}
		if vault == nil {
			t.Fatalf("seed %d: HasVault set but no vault room", seed)
		}
		if vault.DoorCount != 0 {
			t.Fatalf("seed %d: vault has %d doors", seed, vault.DoorCount)
		}
		for _, d := range l.Doors {
			if vault.ContainsWithWalls(d.X, d.Y) {
				t.Fatalf("seed %d: door at (%d, %d) on vault boundary", seed, d.X, d.Y)
			}
		}

		// В каждой клетке золото.
		for x := vault.X; x < vault.X+vault.W; x++ {
			for y := vault.Y; y < vault.Y+vault.H; y++ {
				hasGold := false
				for _, o := range l.Objects {
					if o.Class == domain.GoldClass && o.X == x && o.Y == y {
						hasGold = true
						break
					}
				}
				if !hasGold {
					t.Fatalf("seed %d: vault cell (%d, %d) has no gold", seed, x, y)
				}
			}
		}
	}
	if !found {
		t.Fatal("no vault generated in 100 seeds")
	}
}

// Зафиксированное зерно: 6-9 комнат, коридоры, по одной лестнице
// в каждую сторону.
func TestKnownSeedLayout(t *testing.T) {
	l := Generate(domain.NewDLevel(domain.BranchMain, 14), 42)

	ordinary := 0
	for i := range l.Rooms {
		if l.Rooms[i].Type != domain.Vault {
			ordinary++
		}
	}
	if ordinary < 6 || ordinary > 9 {
		t.Errorf("room count = %d, want 6..9", ordinary)
	}

	corridors := 0
	for x := 0; x < domain.ColNo; x++ {
		for y := 0; y < domain.RowNo; y++ {
			if l.Cells[x][y].Type == domain.Corridor {
				corridors++
			}
		}
	}
	if corridors == 0 {
		t.Error("level has no corridor cells")
	}

	ups, downs := 0, 0
	for _, s := range l.Stairs {
		if s.Up {
			ups++
		} else {
			downs++
		}
	}
	if ups != 1 {
		t.Errorf("up stairways = %d, want 1", ups)
	}
	if downs != 1 {
		t.Errorf("down stairways = %d, want 1", downs)
	}
}

// На дне ветки лестницы вниз не бывает.
func TestDeepestLevelHasNoDownstairs(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchMines, 8), seed)
		if l.FindDownstairs() != nil {
			t.Fatalf("seed %d: deepest level has downstairs", seed)
		}
		if l.FindUpstairs() == nil {
			t.Fatalf("seed %d: deepest level has no upstairs", seed)
		}
	}
}

// Заливка от лестницы вверх покрывает почти все открытые клетки.
// Изолированная сокровищница и редкие глухие комнаты допустимы.
func TestReachability(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l := Generate(domain.NewDLevel(domain.BranchMain, 5), seed)
		up := l.FindUpstairs()
		if up == nil {
			t.Fatalf("seed %d: no upstairs", seed)
		}
		reached := floodOpen(l, up.X, up.Y)
		total := countOpen(l)
		if total == 0 {
			t.Fatalf("seed %d: no open cells", seed)
		}
		if reached*100/total < 85 {
			t.Errorf("seed %d: only %d of %d open cells reachable", seed, reached, total)
		}
	}
}

// open - клетка, по которой в принципе можно перемещаться,
// двери и потайные ходы считаются проходимыми.
func isOpen(t domain.CellType) bool {
	switch t {
	case domain.RoomFloor, domain.Corridor, domain.SecretCorridor,
		domain.Door, domain.SecretDoor, domain.Stairs, domain.Ladder,
		domain.Fountain, domain.Throne, domain.Sink, domain.Altar,
		domain.Ice, domain.Grave:
		return true
	}
	return false
}

func countOpen(l *domain.Level) int {
	n := 0
	for x := 0; x < domain.ColNo; x++ {
		for y := 0; y < domain.RowNo; y++ {
			if isOpen(l.Cells[x][y].Type) {
				n++
			}
		}
	}
	return n
}

func floodOpen(l *domain.Level, sx, sy int) int {
	var visited [domain.ColNo][domain.RowNo]bool
	queue := []coord{{sx, sy}}
	visited[sx][sy] = true
	count := 0

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := c.x+d[0], c.y+d[1]
			if !domain.InBounds(nx, ny) || visited[nx][ny] {
				continue
			}
			if isOpen(l.TypeAt(nx, ny)) {
				visited[nx][ny] = true
				queue = append(queue, coord{nx, ny})
			}
		}
	}
	return count
}

// Истребленные виды не появляются при генерации.
func TestVitalityRespected(t *testing.T) {
	vit := domain.NewVitalityTable()
	for k := domain.MonsterKind(0); k < 64; k++ {
		vit.MarkExtinct(k)
	}
	l := GenerateWith(domain.NewDLevel(domain.BranchMain, 1), 7, vit)
	if len(l.Monsters) != 0 {
		t.Errorf("extinct-only table still spawned %d monsters", len(l.Monsters))
	}
}

// Вид муравейника зависит только от зерна и глубины.
func TestAntholeKindIsPure(t *testing.T) {
	a := antholeMonster(42, 14)
	b := antholeMonster(42, 14)
	if a != b {
		t.Error("anthole kind changed between calls")
	}
	switch a {
	case domain.SoldierAnt, domain.FireAnt, domain.GiantAnt:
	default:
		t.Errorf("anthole kind = %v, want an ant", a)
	}
}
