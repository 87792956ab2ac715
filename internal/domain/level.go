package domain

// LevelFlags - свойства уровня, влияющие на генерацию и игровую логику.
type LevelFlags struct {
	NoTeleport bool
	IsMaze     bool
	Graveyard  bool
	HasVault   bool

	HasCourt     bool
	HasSwamp     bool
	HasBeehive   bool
	HasMorgue    bool
	HasBarracks  bool
	HasZoo       bool
	HasTemple    bool
	HasLepHall   bool
	HasNest      bool
	HasAnthole   bool
	HasShop      bool

	FountainCount int
	SinkCount     int
}

// Stairway - лестница с пунктом назначения.
type Stairway struct {
	X, Y int
	Up   bool
	Dest DLevel
}

// DoorPos - позиция двери. Состояние хранится в клетке.
type DoorPos struct {
	X, Y int
}

// Level - полный сгенерированный уровень подземелья.
type Level struct {
	ID    DLevel
	Seed  int64
	Flags LevelFlags

	// Cells индексируется [x][y], x < ColNo, y < RowNo.
	Cells [ColNo][RowNo]Cell

	Rooms    []Room
	Doors    []DoorPos
	Traps    []Trap
	Stairs   []Stairway
	Monsters []Monster
	Objects  []Object
}

// NewLevel - уровень, целиком заполненный скальной породой.
func NewLevel(id DLevel, seed int64) *Level {
	l := &Level{ID: id, Seed: seed}
	for x := 0; x < ColNo; x++ {
		for y := 0; y < RowNo; y++ {
			l.Cells[x][y] = NewStoneCell()
		}
	}
	return l
}

// InBounds - координата в пределах карты.
func InBounds(x, y int) bool {
	return x >= 0 && x < ColNo && y >= 0 && y < RowNo
}

// At - клетка по координатам, nil за границей.
func (l *Level) At(x, y int) *Cell {
	if !InBounds(x, y) {
		return nil
	}
	return &l.Cells[x][y]
}

// TypeAt - тип клетки, Stone за границей.
func (l *Level) TypeAt(x, y int) CellType {
	if !InBounds(x, y) {
		return Stone
	}
	return l.Cells[x][y].Type
}

// SetType меняет тип клетки. За границей - no-op.
func (l *Level) SetType(x, y int, t CellType) {
	if InBounds(x, y) {
		l.Cells[x][y].Type = t
	}
}

// AddRoom регистрирует комнату и возвращает ее индекс.
func (l *Level) AddRoom(r Room) int {
	idx := len(l.Rooms)
	if r.FirstDoor == 0 && r.DoorCount == 0 {
		r.FirstDoor = -1
	}
	l.Rooms = append(l.Rooms, r)
	return idx
}

// AddDoor регистрирует дверь и привязывает ее к комнате roomIdx (или -1).
func (l *Level) AddDoor(x, y, roomIdx int) {
	idx := len(l.Doors)
	l.Doors = append(l.Doors, DoorPos{X: x, Y: y})
	if roomIdx >= 0 && roomIdx < len(l.Rooms) {
		r := &l.Rooms[roomIdx]
		if r.DoorCount == 0 {
			r.FirstDoor = idx
		}
		r.DoorCount++
	}
}

func (l *Level) AddTrap(t Trap) {
	l.Traps = append(l.Traps, t)
}

func (l *Level) AddStairway(s Stairway) {
	l.Stairs = append(l.Stairs, s)
}

func (l *Level) AddMonster(m Monster) {
	l.Monsters = append(l.Monsters, m)
}

func (l *Level) AddObject(o Object) {
	l.Objects = append(l.Objects, o)
}

// MonsterAt - существо на клетке, nil если пусто.
func (l *Level) MonsterAt(x, y int) *Monster {
	for i := range l.Monsters {
		if l.Monsters[i].X == x && l.Monsters[i].Y == y {
			return &l.Monsters[i]
		}
	}
	return nil
}

// TrapAt - ловушка на клетке, nil если пусто.
func (l *Level) TrapAt(x, y int) *Trap {
	for i := range l.Traps {
		if l.Traps[i].X == x && l.Traps[i].Y == y {
			return &l.Traps[i]
		}
	}
	return nil
}

// FindUpstairs - первая лестница вверх, nil если нет.
func (l *Level) FindUpstairs() *Stairway {
	for i := range l.Stairs {
		if l.Stairs[i].Up {
			return &l.Stairs[i]
		}
	}
	return nil
}

// FindDownstairs - первая лестница вниз, nil если нет.
func (l *Level) FindDownstairs() *Stairway {
	for i := range l.Stairs {
		if !l.Stairs[i].Up {
			return &l.Stairs[i]
		}
	}
	return nil
}

// RoomAt - индекс комнаты, интерьер которой содержит точку, -1 если нет.
func (l *Level) RoomAt(x, y int) int {
	for i := range l.Rooms {
		if l.Rooms[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// Occupied - клетка занята существом или лестницей.
func (l *Level) Occupied(x, y int) bool {
	if l.MonsterAt(x, y) != nil {
		return true
	}
	for i := range l.Stairs {
		if l.Stairs[i].X == x && l.Stairs[i].Y == y {
			return true
		}
	}
	return false
}
