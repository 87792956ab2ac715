package domain

import "fmt"

// Ветки подземелья.
const (
	BranchMain int8 = iota
	BranchGehennom
	BranchMines
	BranchSokoban
	BranchQuest
	BranchLudios
	BranchVlad
	BranchPlanes
)

// DLevel - координата уровня: ветка + номер уровня внутри ветки.
type DLevel struct {
	Branch int8
	Level  int8
}

func NewDLevel(branch, level int8) DLevel {
	return DLevel{Branch: branch, Level: level}
}

// MainDungeonStart - вход в подземелье.
func MainDungeonStart() DLevel {
	return DLevel{Branch: BranchMain, Level: 1}
}

// branchDepthStart - глубина первого уровня каждой ветки.
func branchDepthStart(branch int8) int {
	switch branch {
	case BranchMain:
		return 1
	case BranchGehennom:
		return 30
	case BranchMines:
		return 2
	case BranchSokoban:
		return 6
	case BranchQuest:
		return 16
	case BranchLudios:
		return 18
	case BranchVlad:
		return 37
	case BranchPlanes:
		return 41
	}
	return 1
}

// BranchMaxLevel - число уровней в ветке. Нужен для проверки
// "самый глубокий уровень ветки" при размещении лестницы вниз.
func BranchMaxLevel(branch int8) int8 {
	switch branch {
	case BranchMain:
		return 29
	case BranchGehennom:
		return 7
	case BranchMines:
		return 8
	case BranchSokoban:
		return 4
	case BranchQuest:
		return 5
	case BranchLudios:
		return 1
	case BranchVlad:
		return 3
	case BranchPlanes:
		return 5
	}
	return 1
}

// Depth - сквозная глубина для расчетов сложности.
func (d DLevel) Depth() int {
	return branchDepthStart(d.Branch) + int(d.Level) - 1
}

// IsDeepest - уровень последний в своей ветке.
func (d DLevel) IsDeepest() bool {
	return d.Level >= BranchMaxLevel(d.Branch)
}

func (d DLevel) IsDeeperThan(other DLevel) bool {
	return d.Depth() > other.Depth()
}

// Above - координата уровня выше в той же ветке.
func (d DLevel) Above() DLevel {
	return DLevel{Branch: d.Branch, Level: d.Level - 1}
}

// Below - координата уровня ниже в той же ветке.
func (d DLevel) Below() DLevel {
	return DLevel{Branch: d.Branch, Level: d.Level + 1}
}

func (d DLevel) String() string {
	return fmt.Sprintf("Dlvl:%d:%d", d.Branch, d.Level)
}
