package domain

// Размеры сетки уровня. Фиксированы: внешние потребители (снапшоты,
// сравнение с эталоном) рассчитывают на ровно такую сетку.
const (
	ColNo = 80
	RowNo = 21
)

// CellType - тип террейна клетки. Порядок значений зафиксирован:
// он уходит в бинарные снапшоты как есть.
type CellType uint8

const (
	Stone CellType = iota
	VWall
	HWall
	TLCorner
	TRCorner
	BLCorner
	BRCorner
	CrossWall
	TUWall
	TDWall
	TLWall
	TRWall
	DBWall
	Tree
	SecretDoor
	SecretCorridor
	Pool
	Moat
	Water
	DrawbridgeUp
	Lava
	IronBars
	Door
	Corridor
	RoomFloor
	Stairs
	Ladder
	Fountain
	Throne
	Sink
	Grave
	Altar
	Ice
	DrawbridgeDown
	Air
	Cloud

	cellTypeCount
)

// IsWall - все подтипы стен (прямые, углы, T-образные, крест).
func (t CellType) IsWall() bool {
	return t >= VWall && t <= DBWall
}

// IsRock - непрокопанная порода либо дерево.
func (t CellType) IsRock() bool {
	return t == Stone || t == Tree
}

func (t CellType) IsDoor() bool {
	return t == Door || t == SecretDoor
}

// IsPassable - существо может занимать клетку (двери проверяются
// отдельно по DoorState).
func (t CellType) IsPassable() bool {
	switch t {
	case Door, SecretCorridor, Corridor, RoomFloor, Stairs, Ladder,
		Fountain, Throne, Sink, Grave, Altar, Ice, DrawbridgeDown,
		Pool, Moat, Water, Lava, Air, Cloud:
		return true
	}
	return false
}

// IsLiquid - жидкий террейн: ходить нельзя, лететь можно.
func (t CellType) IsLiquid() bool {
	switch t {
	case Pool, Moat, Water, Lava:
		return true
	}
	return false
}

// IsPool - водные клетки (без лавы).
func (t CellType) IsPool() bool {
	return t == Pool || t == Moat || t == Water
}

// IsFurniture - генерируемые предметы обстановки.
func (t CellType) IsFurniture() bool {
	switch t {
	case Fountain, Throne, Sink, Grave, Altar:
		return true
	}
	return false
}

// RequiresFlight - клетку нельзя занять без полета.
func (t CellType) RequiresFlight() bool {
	switch t {
	case Pool, Moat, Water, Lava, Air, DrawbridgeUp:
		return true
	}
	return false
}

// IsDiggable - можно прокопать.
func (t CellType) IsDiggable() bool {
	return t == Stone || t.IsWall() || t == Tree || t == SecretDoor || t == Door
}

// Symbol - символ для текстового дампа карты.
func (t CellType) Symbol() rune {
	switch t {
	case Stone:
		return ' '
	case VWall, TLWall, TRWall:
		return '|'
	case HWall, TUWall, TDWall, DBWall:
		return '-'
	case TLCorner, TRCorner, BLCorner, BRCorner, CrossWall:
		return '-'
	case Tree:
		return '#'
	case SecretDoor:
		return '|'
	case SecretCorridor:
		return '#'
	case Pool, Moat, Water:
		return '}'
	case DrawbridgeUp, DrawbridgeDown:
		return '#'
	case Lava:
		return '}'
	case IronBars:
		return '#'
	case Door:
		return '+'
	case Corridor:
		return '#'
	case RoomFloor:
		return '.'
	case Stairs, Ladder:
		return '>'
	case Fountain:
		return '{'
	case Throne:
		return '\\'
	case Sink:
		return '#'
	case Grave:
		return '|'
	case Altar:
		return '_'
	case Ice:
		return '.'
	case Air:
		return ' '
	case Cloud:
		return '#'
	}
	return '?'
}

// DoorState - битовая маска состояния двери. Имеет смысл только
// когда террейн клетки Door или SecretDoor.
type DoorState uint8

const (
	NoDoor      DoorState = 0
	DoorBroken  DoorState = 1
	DoorOpen    DoorState = 2
	DoorClosed  DoorState = 4
	DoorLocked  DoorState = 8
	DoorTrapped DoorState = 16
	DoorSecret  DoorState = 32
)

func (s DoorState) Has(flag DoorState) bool {
	return s&flag != 0
}

// Walkable - через дверь можно пройти: пустой проем, открыта или выбита.
func (s DoorState) Walkable() bool {
	return s == NoDoor || s.Has(DoorOpen) || s.Has(DoorBroken)
}

// BlocksSight - закрытая или запертая дверь перекрывает обзор.
func (s DoorState) BlocksSight() bool {
	return s.Has(DoorClosed) || s.Has(DoorLocked)
}

// AltarAlign - мировоззрение алтаря. Хранится в том же байте флагов,
// что и DoorState, но для клеток-алтарей.
type AltarAlign uint8

const (
	AlignNone AltarAlign = iota
	AlignLawful
	AlignNeutral
	AlignChaotic
)

// Cell - одна клетка уровня. Байт flags перегружен: для дверей это
// DoorState, для алтарей AltarAlign. Доступ только через типизированные
// геттеры, которые сверяются с террейном, - нелегальные комбинации
// не представимы снаружи.
type Cell struct {
	Type     CellType
	SeenFrom uint8 // маска 8 направлений
	flags    uint8
	Lit      bool
	WasLit   bool
	RoomIdx  int8 // -1 = вне комнат
	Edge     bool
	CanDig   bool
	Explored bool
}

// NewStoneCell - клетка нетронутой породы.
func NewStoneCell() Cell {
	return Cell{Type: Stone, RoomIdx: -1, CanDig: true}
}

// DoorState возвращает состояние двери. Для недверных клеток - NoDoor.
func (c *Cell) DoorState() DoorState {
	if !c.Type.IsDoor() {
		return NoDoor
	}
	return DoorState(c.flags)
}

// SetDoorState выставляет состояние двери. На недверных клетках - no-op.
func (c *Cell) SetDoorState(s DoorState) {
	if !c.Type.IsDoor() {
		return
	}
	c.flags = uint8(s)
}

// AltarAlign возвращает мировоззрение алтаря. Для не-алтарей - AlignNone.
func (c *Cell) AltarAlign() AltarAlign {
	if c.Type != Altar {
		return AlignNone
	}
	return AltarAlign(c.flags)
}

// SetAltarAlign выставляет мировоззрение. На не-алтарях - no-op.
func (c *Cell) SetAltarAlign(a AltarAlign) {
	if c.Type != Altar {
		return
	}
	c.flags = uint8(a)
}

// RawFlags - сырое значение байта флагов (для сериализации).
func (c *Cell) RawFlags() uint8 {
	return c.flags
}

// SetRawFlags восстанавливает байт флагов (для десериализации).
func (c *Cell) SetRawFlags(v uint8) {
	c.flags = v
}

// IsWalkable - по клетке можно ходить с учетом состояния двери.
func (c *Cell) IsWalkable() bool {
	if !c.Type.IsPassable() {
		return false
	}
	if c.Type.IsDoor() {
		return c.DoorState().Walkable()
	}
	return true
}

// BlocksSight - клетка перекрывает линию обзора.
func (c *Cell) BlocksSight() bool {
	switch {
	case c.Type == Stone, c.Type.IsWall(), c.Type == Tree,
		c.Type == SecretDoor, c.Type == SecretCorridor, c.Type == Cloud:
		return true
	case c.Type == Door:
		return c.DoorState().BlocksSight()
	}
	return false
}
