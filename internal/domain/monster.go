package domain

import "github.com/pierreaubert/nethack-rs-sub002/pkg/rng"

// MonsterKind - вид существа. Набор покрывает обитателей особых комнат
// и общие классы для случайного заселения.
type MonsterKind uint8

const (
	Kobold MonsterKind = iota
	Gnome
	Hobgoblin
	Bugbear
	Orc
	Centaur
	Troll
	Giant
	Dragon
	Ghost
	Wraith
	Zombie
	Vampire
	Demon
	Soldier
	Sergeant
	Lieutenant
	Captain
	KillerBee
	QueenBee
	SoldierAnt
	FireAnt
	GiantAnt
	Leprechaun
	Cockatrice
	Chickatrice
	GiantEel
	ElectricEel
	Piranha
	Fungus
	Priest
	AlignedPriest
	Shopkeeper
	Guard
	monsterKindCount
)

func (k MonsterKind) String() string {
	switch k {
	case Kobold:
		return "kobold"
	case Gnome:
		return "gnome"
	case Hobgoblin:
		return "hobgoblin"
	case Bugbear:
		return "bugbear"
	case Orc:
		return "orc"
	case Centaur:
		return "centaur"
	case Troll:
		return "troll"
	case Giant:
		return "giant"
	case Dragon:
		return "dragon"
	case Ghost:
		return "ghost"
	case Wraith:
		return "wraith"
	case Zombie:
		return "zombie"
	case Vampire:
		return "vampire"
	case Demon:
		return "demon"
	case Soldier:
		return "soldier"
	case Sergeant:
		return "sergeant"
	case Lieutenant:
		return "lieutenant"
	case Captain:
		return "captain"
	case KillerBee:
		return "killer bee"
	case QueenBee:
		return "queen bee"
	case SoldierAnt:
		return "soldier ant"
	case FireAnt:
		return "fire ant"
	case GiantAnt:
		return "giant ant"
	case Leprechaun:
		return "leprechaun"
	case Cockatrice:
		return "cockatrice"
	case Chickatrice:
		return "chickatrice"
	case GiantEel:
		return "giant eel"
	case ElectricEel:
		return "electric eel"
	case Piranha:
		return "piranha"
	case Fungus:
		return "fungus"
	case Priest:
		return "priest"
	case AlignedPriest:
		return "aligned priest"
	case Shopkeeper:
		return "shopkeeper"
	case Guard:
		return "vault guard"
	}
	return "unknown"
}

// IsAquatic - существо живет в воде.
func (k MonsterKind) IsAquatic() bool {
	switch k {
	case GiantEel, ElectricEel, Piranha:
		return true
	}
	return false
}

// Difficulty - базовая сложность вида.
func (k MonsterKind) Difficulty() int {
	switch k {
	case Dragon:
		return 15
	case Demon:
		return 14
	case Giant, Vampire:
		return 12
	case Troll:
		return 10
	case Captain:
		return 10
	case Lieutenant:
		return 8
	case Centaur, Wraith:
		return 7
	case Sergeant, Cockatrice:
		return 6
	case Orc, Soldier, QueenBee:
		return 5
	case Bugbear, Leprechaun, GiantAnt:
		return 4
	case Hobgoblin, Ghost, Zombie, FireAnt, SoldierAnt, GiantEel, ElectricEel:
		return 3
	case Gnome, KillerBee, Chickatrice, Piranha, AlignedPriest, Priest:
		return 2
	case Shopkeeper, Guard:
		return 12
	case Kobold, Fungus:
		return 1
	}
	return 1
}

// RollHP - бросок здоровья при создании.
func (k MonsterKind) RollHP(rnd *rng.Rand) int {
	switch k {
	case Dragon:
		return 80 + rnd.Rnd(40)
	case Demon:
		return 60 + rnd.Rnd(40)
	case Giant:
		return 50 + rnd.Rnd(30)
	case Vampire:
		return 40 + rnd.Rnd(24)
	case Troll:
		return 40 + rnd.Rnd(20)
	case Captain:
		return 40 + rnd.Rnd(16)
	case Lieutenant:
		return 32 + rnd.Rnd(12)
	case Centaur, Wraith:
		return 28 + rnd.Rnd(12)
	case Sergeant:
		return 26 + rnd.Rnd(10)
	case Cockatrice:
		return 24 + rnd.Rnd(10)
	case Orc, Soldier:
		return 20 + rnd.Rnd(10)
	case QueenBee:
		return 22 + rnd.Rnd(8)
	case Bugbear, Leprechaun, GiantAnt:
		return 16 + rnd.Rnd(8)
	case Hobgoblin, Zombie, FireAnt, SoldierAnt:
		return 12 + rnd.Rnd(6)
	case Ghost, GiantEel, ElectricEel:
		return 12 + rnd.Rnd(8)
	case Gnome, KillerBee, Chickatrice, Piranha:
		return 10 + rnd.Rnd(4)
	case Priest, AlignedPriest:
		return 18 + rnd.Rnd(8)
	case Shopkeeper:
		return 30 + rnd.Rnd(20)
	case Guard:
		return 50 + rnd.Rnd(30)
	case Kobold:
		return 8 + rnd.Rnd(6)
	case Fungus:
		return 8 + rnd.Rnd(4)
	}
	return 8 + rnd.Rnd(4)
}

// Monster - существо на уровне в момент генерации.
type Monster struct {
	Kind       MonsterKind
	Name       string
	X, Y       int
	HP, MaxHP  int
	Difficulty int
	Sleeping   bool
	Peaceful   bool
}

// NewMonster создает существо вида kind в точке (x, y).
func NewMonster(kind MonsterKind, x, y int, rnd *rng.Rand) Monster {
	hp := kind.RollHP(rnd)
	return Monster{
		Kind:       kind,
		Name:       kind.String(),
		X:          x,
		Y:          y,
		HP:         hp,
		MaxHP:      hp,
		Difficulty: kind.Difficulty(),
	}
}

// VitalityTable - учет истребленных видов. Истребленный вид больше
// не появляется при заселении комнат.
type VitalityTable struct {
	extinct [monsterKindCount]bool
}

func NewVitalityTable() *VitalityTable {
	return &VitalityTable{}
}

// Alive - вид еще может появляться.
func (v *VitalityTable) Alive(kind MonsterKind) bool {
	if v == nil || kind >= monsterKindCount {
		return true
	}
	return !v.extinct[kind]
}

// MarkExtinct исключает вид из дальнейшей генерации.
func (v *VitalityTable) MarkExtinct(kind MonsterKind) {
	if kind < monsterKindCount {
		v.extinct[kind] = true
	}
}

// AllAlive - ни один вид не истреблен.
func (v *VitalityTable) AllAlive() bool {
	if v == nil {
		return true
	}
	for _, e := range v.extinct {
		if e {
			return false
		}
	}
	return true
}
