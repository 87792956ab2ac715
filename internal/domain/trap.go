package domain

// TrapKind - разновидность ловушки.
type TrapKind uint8

const (
	NoTrap TrapKind = iota
	ArrowTrap
	DartTrap
	RockFall
	SqueakyBoard
	BearTrap
	LandMine
	RollingBoulder
	SleepingGas
	RustTrap
	FireTrap
	Pit
	SpikedPit
	Hole
	TrapDoor
	Teleport
	LevelTeleport
	MagicPortal
	Web
	StatueTrap
	MagicTrap
	AntiMagic
	PolymorphTrap
)

func (k TrapKind) String() string {
	switch k {
	case ArrowTrap:
		return "arrow trap"
	case DartTrap:
		return "dart trap"
	case RockFall:
		return "falling rock trap"
	case SqueakyBoard:
		return "squeaky board"
	case BearTrap:
		return "bear trap"
	case LandMine:
		return "land mine"
	case RollingBoulder:
		return "rolling boulder trap"
	case SleepingGas:
		return "sleeping gas trap"
	case RustTrap:
		return "rust trap"
	case FireTrap:
		return "fire trap"
	case Pit:
		return "pit"
	case SpikedPit:
		return "spiked pit"
	case Hole:
		return "hole"
	case TrapDoor:
		return "trap door"
	case Teleport:
		return "teleportation trap"
	case LevelTeleport:
		return "level teleporter"
	case MagicPortal:
		return "magic portal"
	case Web:
		return "web"
	case StatueTrap:
		return "statue trap"
	case MagicTrap:
		return "magic trap"
	case AntiMagic:
		return "anti-magic field"
	case PolymorphTrap:
		return "polymorph trap"
	}
	return "no trap"
}

// IsHole - ловушка ведет на уровень ниже.
func (k TrapKind) IsHole() bool {
	return k == Hole || k == TrapDoor
}

// OnceOnly - ловушка срабатывает единожды и исчезает.
func (k TrapKind) OnceOnly() bool {
	switch k {
	case RockFall, SleepingGas, LandMine:
		return true
	}
	return false
}

// Trap - ловушка на клетке уровня.
type Trap struct {
	X, Y int
	Kind TrapKind

	Seen      bool
	Activated bool
	Once      bool

	// Dest - куда ведет портал или телепорт уровня.
	Dest DLevel
}

// NewTrap - скрытая неактивированная ловушка.
func NewTrap(x, y int, kind TrapKind) Trap {
	return Trap{X: x, Y: y, Kind: kind, Once: kind.OnceOnly()}
}
