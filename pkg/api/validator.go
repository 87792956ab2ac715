package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// branchLevels - число уровней в каждой ветке, индекс = номер ветки.
var branchLevels = [8]int8{29, 7, 8, 4, 5, 1, 3, 5}

func (r GenerateRequest) Validate() error {
	if r.Branch < 0 || int(r.Branch) >= len(branchLevels) {
		return errors.New("unknown dungeon branch")
	}
	if r.Depth < 1 {
		return errors.New("depth must be positive")
	}
	if r.Depth > branchLevels[r.Branch] {
		return errors.New("depth is out of range for branch")
	}
	return nil
}
