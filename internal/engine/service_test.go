package engine

import (
	"os"
	"reflect"
	"testing"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestServiceCachesLevels(t *testing.T) {
	s := NewService(Config{Seed: 42})

	id := domain.NewDLevel(domain.BranchMain, 3)
	a, err := s.Level(id)
	if err != nil {
		t.Fatalf("Level: %v", err)
	}
	b, err := s.Level(id)
	if err != nil {
		t.Fatalf("Level: %v", err)
	}
	if a != b {
		t.Error("second request returned a different level object")
	}
	if got := s.CachedLevels(); len(got) != 1 || got[0] != id {
		t.Errorf("unexpected cache contents: %v", got)
	}
}

func TestServiceForgetRegeneratesSame(t *testing.T) {
	s := NewService(Config{Seed: 987654321})

	id := domain.NewDLevel(domain.BranchMines, 4)
	a, _ := s.Level(id)
	s.Forget(id)
	b, _ := s.Level(id)

	if a == b {
		t.Fatal("Forget did not drop the cached level")
	}
	if !reflect.DeepEqual(a.Cells, b.Cells) {
		t.Error("regenerated level differs from the original")
	}
}

func TestServiceRejectsBadLevel(t *testing.T) {
	s := NewService(Config{Seed: 1})

	if _, err := s.Level(domain.NewDLevel(domain.BranchMain, 0)); err == nil {
		t.Error("expected error for level 0")
	}
	if _, err := s.Level(domain.NewDLevel(domain.BranchGehennom, 8)); err == nil {
		t.Error("expected error for level past branch end")
	}
	if _, err := s.Level(domain.NewDLevel(99, 1)); err == nil {
		t.Error("expected error for unknown branch")
	}
}

func TestLevelForSeedDoesNotPolluteCache(t *testing.T) {
	s := NewService(Config{Seed: 5})

	id := domain.NewDLevel(domain.BranchMain, 2)
	if _, err := s.LevelForSeed(id, 777); err != nil {
		t.Fatalf("LevelForSeed: %v", err)
	}
	if len(s.CachedLevels()) != 0 {
		t.Error("foreign-seed level ended up in the cache")
	}

	// Нулевой сид означает мастер-сид сервера.
	a, _ := s.LevelForSeed(id, 0)
	b, _ := s.Level(id)
	if a != b {
		t.Error("zero seed did not resolve to the master seed level")
	}
}

func TestBuildSnapshot(t *testing.T) {
	s := NewService(Config{Seed: 42})
	l, _ := s.Level(domain.NewDLevel(domain.BranchMain, 14))

	snap := BuildSnapshot(l)
	if snap.Type != "LEVEL" {
		t.Errorf("unexpected snapshot type %q", snap.Type)
	}
	if snap.Grid.Width != domain.ColNo || snap.Grid.Height != domain.RowNo {
		t.Errorf("unexpected grid size %dx%d", snap.Grid.Width, snap.Grid.Height)
	}
	if len(snap.Cells) == 0 {
		t.Fatal("snapshot has no cells")
	}
	for _, cv := range snap.Cells {
		if cv.Terrain == uint8(domain.Stone) {
			t.Fatal("stone cell leaked into the snapshot")
		}
		if cv.Door != 0 && cv.Terrain != uint8(domain.Door) && cv.Terrain != uint8(domain.SecretDoor) {
			t.Errorf("door state on non-door cell at (%d,%d)", cv.X, cv.Y)
		}
	}
	if len(snap.Rooms) != len(l.Rooms) {
		t.Errorf("rooms: snapshot %d vs level %d", len(snap.Rooms), len(l.Rooms))
	}
	if len(snap.Stairs) != len(l.Stairs) {
		t.Errorf("stairs: snapshot %d vs level %d", len(snap.Stairs), len(l.Stairs))
	}
}
