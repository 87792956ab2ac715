package domain

import (
	"testing"

	"github.com/pierreaubert/nethack-rs-sub002/pkg/rng"
)

// Флаги двери доступны только на дверных клетках.
func TestDoorStateGating(t *testing.T) {
	c := NewStoneCell()
	c.SetDoorState(DoorLocked)
	if c.DoorState() != NoDoor {
		t.Errorf("door state on stone cell = %d, want NoDoor", c.DoorState())
	}

	c.Type = Door
	c.SetDoorState(DoorLocked)
	if c.DoorState() != DoorLocked {
		t.Errorf("door state = %d, want DoorLocked", c.DoorState())
	}
	if c.IsWalkable() {
		t.Error("locked door should not be walkable")
	}

	c.SetDoorState(DoorOpen)
	if !c.IsWalkable() {
		t.Error("open door should be walkable")
	}
}

func TestAltarAlignGating(t *testing.T) {
	c := NewStoneCell()
	c.SetAltarAlign(AlignLawful)
	if c.AltarAlign() != AlignNone {
		t.Errorf("altar align on stone cell = %d, want AlignNone", c.AltarAlign())
	}

	c.Type = Altar
	c.SetAltarAlign(AlignChaotic)
	if c.AltarAlign() != AlignChaotic {
		t.Errorf("altar align = %d, want AlignChaotic", c.AltarAlign())
	}
}

func TestDepthFormula(t *testing.T) {
	cases := []struct {
		id    DLevel
		depth int
	}{
		{NewDLevel(BranchMain, 1), 1},
		{NewDLevel(BranchMain, 29), 29},
		{NewDLevel(BranchGehennom, 1), 30},
		{NewDLevel(BranchMines, 3), 4},
		{NewDLevel(BranchSokoban, 1), 6},
		{NewDLevel(BranchPlanes, 5), 45},
	}
	for _, c := range cases {
		if got := c.id.Depth(); got != c.depth {
			t.Errorf("%v depth = %d, want %d", c.id, got, c.depth)
		}
	}
}

func TestDeepestLevel(t *testing.T) {
	if NewDLevel(BranchMain, 1).IsDeepest() {
		t.Error("main level 1 should not be deepest")
	}
	if !NewDLevel(BranchMain, 29).IsDeepest() {
		t.Error("main level 29 should be deepest")
	}
	if !NewDLevel(BranchMines, 8).IsDeepest() {
		t.Error("mines level 8 should be deepest")
	}
}

func TestAboveBelow(t *testing.T) {
	id := NewDLevel(BranchMain, 5)
	if a := id.Above(); a.Level != 4 {
		t.Errorf("above level = %d, want 4", a.Level)
	}
	if b := id.Below(); b.Level != 6 {
		t.Errorf("below level = %d, want 6", b.Level)
	}
}

func TestRoomOverlap(t *testing.T) {
	a := NewRoom(5, 5, 4, 4)
	b := NewRoom(12, 5, 4, 4)
	if a.Overlaps(&b, 0) {
		t.Error("disjoint rooms should not overlap")
	}
	// Буфер в 1 требует зазор между стенами.
	c := NewRoom(10, 5, 4, 4)
	if !a.Overlaps(&c, 1) {
		t.Error("adjacent rooms should overlap with buffer 1")
	}
}

func TestRoomRandomPointInside(t *testing.T) {
	r := NewRoom(10, 3, 6, 4)
	rnd := rng.New(7)
	for i := 0; i < 200; i++ {
		x, y := r.RandomPoint(rnd)
		if !r.Contains(x, y) {
			t.Fatalf("random point (%d, %d) outside room", x, y)
		}
	}
}

func TestRoomTypeTables(t *testing.T) {
	if !GeneralShop.IsShop() || GeneralShop.IsSpecial() {
		t.Error("general shop classified incorrectly")
	}
	if Vault.IsShop() || !Vault.IsSpecial() {
		t.Error("vault classified incorrectly")
	}
	if Ordinary.IsSpecial() || Ordinary.IsShop() {
		t.Error("ordinary room classified incorrectly")
	}
	if Court.MinDepth() != 4 {
		t.Errorf("court min depth = %d, want 4", Court.MinDepth())
	}
	num, den := Vault.SpawnChance()
	if num != 1 || den != 2 {
		t.Errorf("vault spawn chance = %d/%d, want 1/2", num, den)
	}
	if !Morgue.MonstersSleep() || Temple.MonstersSleep() {
		t.Error("sleep table wrong for morgue/temple")
	}
}

func TestNewTypedRoomLighting(t *testing.T) {
	if NewTypedRoom(1, 1, 4, 4, Morgue).Lit {
		t.Error("morgue should be dark")
	}
	if NewTypedRoom(1, 1, 4, 4, Vault).Lit {
		t.Error("vault should be dark")
	}
	if !NewTypedRoom(1, 1, 4, 4, Zoo).Lit {
		t.Error("zoo should be lit")
	}
}

func TestLevelBounds(t *testing.T) {
	l := NewLevel(MainDungeonStart(), 1)
	if l.At(-1, 0) != nil || l.At(0, RowNo) != nil {
		t.Error("out-of-bounds access should return nil")
	}
	// Запись за границу не должна паниковать.
	l.SetType(-5, -5, Lava)
	l.SetType(3, 3, Corridor)
	if l.TypeAt(3, 3) != Corridor {
		t.Errorf("cell type = %v, want Corridor", l.TypeAt(3, 3))
	}
	if l.TypeAt(500, 500) != Stone {
		t.Error("out-of-bounds type should read as Stone")
	}
}

func TestLevelDoorBookkeeping(t *testing.T) {
	l := NewLevel(MainDungeonStart(), 1)
	idx := l.AddRoom(NewRoom(5, 5, 4, 4))
	l.AddDoor(4, 6, idx)
	l.AddDoor(9, 6, idx)
	r := &l.Rooms[idx]
	if r.DoorCount != 2 {
		t.Errorf("door count = %d, want 2", r.DoorCount)
	}
	if r.FirstDoor != 0 {
		t.Errorf("first door index = %d, want 0", r.FirstDoor)
	}
}

func TestVitalityTable(t *testing.T) {
	v := NewVitalityTable()
	if !v.AllAlive() || !v.Alive(Dragon) {
		t.Error("fresh table should have all kinds alive")
	}
	v.MarkExtinct(Dragon)
	if v.Alive(Dragon) {
		t.Error("extinct kind reported alive")
	}
	if v.AllAlive() {
		t.Error("table with extinct kind reported all alive")
	}
}

func TestFindStairs(t *testing.T) {
	l := NewLevel(NewDLevel(BranchMain, 3), 1)
	l.AddStairway(Stairway{X: 4, Y: 4, Up: true, Dest: NewDLevel(BranchMain, 2)})
	l.AddStairway(Stairway{X: 20, Y: 10, Up: false, Dest: NewDLevel(BranchMain, 4)})
	up := l.FindUpstairs()
	if up == nil || up.X != 4 {
		t.Fatal("upstairs not found")
	}
	down := l.FindDownstairs()
	if down == nil || down.Dest.Level != 4 {
		t.Fatal("downstairs not found")
	}
}

// Поиск комнаты по точке и занятость клетки.
func TestRoomAtAndOccupied(t *testing.T) {
	l := NewLevel(NewDLevel(BranchMain, 6), 7)
	a := l.AddRoom(NewRoom(3, 3, 5, 4))
	b := l.AddRoom(NewRoom(20, 8, 6, 6))

	if got := l.RoomAt(4, 4); got != a {
		t.Errorf("RoomAt(4,4) = %d, want %d", got, a)
	}
	if got := l.RoomAt(25, 13); got != b {
		t.Errorf("RoomAt(25,13) = %d, want %d", got, b)
	}
	// Стена не принадлежит интерьеру.
	if got := l.RoomAt(2, 3); got != -1 {
		t.Errorf("RoomAt(2,3) = %d, want -1", got)
	}

	if l.Occupied(4, 4) {
		t.Error("empty floor reported occupied")
	}
	l.AddMonster(Monster{X: 4, Y: 4, Kind: Dragon})
	if !l.Occupied(4, 4) {
		t.Error("cell with monster reported free")
	}
	l.AddStairway(Stairway{X: 21, Y: 9, Up: false, Dest: NewDLevel(BranchMain, 7)})
	if !l.Occupied(21, 9) {
		t.Error("cell with stairway reported free")
	}
}

// Вложенные комнаты и границы со стенами.
func TestSubroomsAndWallBounds(t *testing.T) {
	r := NewRoom(10, 5, 8, 6)

	lx, ty, rx, by := r.WallBounds()
	if lx != 9 || ty != 4 || rx != 18 || by != 11 {
		t.Errorf("WallBounds() = (%d,%d,%d,%d), want (9,4,18,11)", lx, ty, rx, by)
	}
	if !r.ContainsWithWalls(9, 4) || r.Contains(9, 4) {
		t.Error("corner wall cell misclassified")
	}

	for i := 0; i < MaxSubrooms+5; i++ {
		r.AddSubroom(i + 1)
	}
	if len(r.Subrooms) != MaxSubrooms {
		t.Errorf("subroom count = %d, want %d", len(r.Subrooms), MaxSubrooms)
	}
	if r.Subrooms[0] != 1 {
		t.Errorf("first subroom = %d, want 1", r.Subrooms[0])
	}
}

// Предикаты проходимости рельефа.
func TestTerrainPredicates(t *testing.T) {
	flight := []CellType{Pool, Moat, Water, Lava, Air, DrawbridgeUp}
	for _, ct := range flight {
		if !ct.RequiresFlight() {
			t.Errorf("%v should require flight", ct)
		}
	}
	ground := []CellType{RoomFloor, Corridor, Ice, Cloud, DrawbridgeDown}
	for _, ct := range ground {
		if ct.RequiresFlight() {
			t.Errorf("%v should not require flight", ct)
		}
	}

	diggable := []CellType{Stone, VWall, TLCorner, Tree, SecretDoor, Door}
	for _, ct := range diggable {
		if !ct.IsDiggable() {
			t.Errorf("%v should be diggable", ct)
		}
	}
	solidRock := []CellType{RoomFloor, Corridor, Pool, Stairs, IronBars}
	for _, ct := range solidRock {
		if ct.IsDiggable() {
			t.Errorf("%v should not be diggable", ct)
		}
	}
}

// Тип клетки Door и запись позиции двери живут в одном пакете.
func TestDoorRecordsDistinctFromTerrain(t *testing.T) {
	l := NewLevel(NewDLevel(BranchMain, 2), 3)
	l.SetType(6, 6, Door)
	l.AddDoor(6, 6, -1)
	if len(l.Doors) != 1 {
		t.Fatalf("door count = %d, want 1", len(l.Doors))
	}
	d := l.Doors[0]
	if l.TypeAt(d.X, d.Y) != Door {
		t.Errorf("cell at recorded door position is %v, want Door", l.TypeAt(d.X, d.Y))
	}
}
