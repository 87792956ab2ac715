package utils

import "testing"

func TestStringToSeedStable(t *testing.T) {
	a := StringToSeed("gnomish mines")
	b := StringToSeed("gnomish mines")
	if a != b {
		t.Fatalf("same string produced different seeds: %d vs %d", a, b)
	}
	if StringToSeed("gnomish mines") == StringToSeed("gnomish minez") {
		t.Fatal("different strings produced the same seed")
	}
}

func TestLevelSeedIndependence(t *testing.T) {
	master := int64(987654321)
	if LevelSeed(master, 0, 1) == LevelSeed(master, 0, 2) {
		t.Fatal("adjacent levels share a seed")
	}
	if LevelSeed(master, 0, 1) == LevelSeed(master, 1, 1) {
		t.Fatal("same level number in different branches shares a seed")
	}
	if LevelSeed(master, 0, 1) != LevelSeed(master, 0, 1) {
		t.Fatal("level seed is not deterministic")
	}
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if len(id) != 16 {
			t.Fatalf("unexpected id length: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id: %q", id)
		}
		seen[id] = true
	}
}
