package engine

import (
	"fmt"
	"sync"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/dungeon"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/logger"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/utils"
)

// Service - сервис генерации уровней. Уровни ленивые: генерируются
// при первом запросе и кешируются. Повторный запрос того же уровня
// возвращает тот же объект.
type Service struct {
	cfg Config

	mu     sync.Mutex
	levels map[domain.DLevel]*domain.Level

	// vitality разделяется всеми уровнями: вымерший вид не появится
	// ни на одном новом уровне.
	vitality *domain.VitalityTable
}

func NewService(cfg Config) *Service {
	return &Service{
		cfg:      cfg,
		levels:   make(map[domain.DLevel]*domain.Level),
		vitality: domain.NewVitalityTable(),
	}
}

func (s *Service) MasterSeed() int64 {
	return s.cfg.Seed
}

// Level возвращает уровень по координате, генерируя его при необходимости.
func (s *Service) Level(id domain.DLevel) (*domain.Level, error) {
	return s.levelFor(id, s.cfg.Seed)
}

// LevelForSeed - то же самое, но от явного мастер-сида. Уровни чужих
// сидов не кешируются, чтобы клиентские эксперименты не вытесняли
// рабочий кеш.
func (s *Service) LevelForSeed(id domain.DLevel, master int64) (*domain.Level, error) {
	if master == 0 || master == s.cfg.Seed {
		return s.levelFor(id, s.cfg.Seed)
	}
	if err := checkLevelID(id); err != nil {
		return nil, err
	}
	seed := utils.LevelSeed(master, id.Branch, id.Level)
	return dungeon.GenerateWith(id, seed, nil), nil
}

func (s *Service) levelFor(id domain.DLevel, master int64) (*domain.Level, error) {
	if err := checkLevelID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.levels[id]; ok {
		return l, nil
	}

	seed := utils.LevelSeed(master, id.Branch, id.Level)
	l := dungeon.GenerateWith(id, seed, s.vitality)
	s.levels[id] = l

	logger.Log.Infof("🗺️ Generated %s (seed=%d, rooms=%d, monsters=%d)",
		id, seed, len(l.Rooms), len(l.Monsters))
	return l, nil
}

// Forget выбрасывает уровень из кеша. Следующий запрос сгенерирует
// его заново - из того же сида, поэтому результат совпадет.
func (s *Service) Forget(id domain.DLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.levels, id)
}

// CachedLevels - координаты всех уровней, находящихся в кеше.
func (s *Service) CachedLevels() []domain.DLevel {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]domain.DLevel, 0, len(s.levels))
	for id := range s.levels {
		ids = append(ids, id)
	}
	return ids
}

// Vitality - общая таблица вымерших видов.
func (s *Service) Vitality() *domain.VitalityTable {
	return s.vitality
}

func checkLevelID(id domain.DLevel) error {
	if id.Branch < domain.BranchMain || id.Branch > domain.BranchPlanes {
		return fmt.Errorf("unknown branch %d", id.Branch)
	}
	if id.Level < 1 || id.Level > domain.BranchMaxLevel(id.Branch) {
		return fmt.Errorf("level %d is out of range for branch %d", id.Level, id.Branch)
	}
	return nil
}
