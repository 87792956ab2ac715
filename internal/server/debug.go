package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/levels", h.handleListLevels)
	mux.HandleFunc("/debug/rooms", h.handleDumpRooms)
	mux.HandleFunc("/debug/map", h.handleDumpMap)
}

// /debug/levels - список уровней в кеше и их сводка
func (h *DebugHandler) handleListLevels(w http.ResponseWriter, r *http.Request) {
	type LevelSummary struct {
		Branch   int8  `json:"branch"`
		Depth    int8  `json:"depth"`
		Seed     int64 `json:"seed"`
		Rooms    int   `json:"rooms"`
		Monsters int   `json:"monsters"`
		Traps    int   `json:"traps"`
		IsMaze   bool  `json:"is_maze"`
	}

	ids := h.Service.CachedLevels()
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Branch != ids[j].Branch {
			return ids[i].Branch < ids[j].Branch
		}
		return ids[i].Level < ids[j].Level
	})

	var summary []LevelSummary
	for _, id := range ids {
		l, err := h.Service.Level(id)
		if err != nil {
			continue
		}
		summary = append(summary, LevelSummary{
			Branch:   id.Branch,
			Depth:    id.Level,
			Seed:     l.Seed,
			Rooms:    len(l.Rooms),
			Monsters: len(l.Monsters),
			Traps:    len(l.Traps),
			IsMaze:   l.Flags.IsMaze,
		})
	}

	writeJSON(w, summary)
}

// /debug/rooms?branch=0&depth=5 - дамп комнат уровня (включая тип и двери)
func (h *DebugHandler) handleDumpRooms(w http.ResponseWriter, r *http.Request) {
	l, ok := h.levelFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, l.Rooms)
}

// /debug/map?branch=0&depth=5 - текстовая карта уровня
func (h *DebugHandler) handleDumpMap(w http.ResponseWriter, r *http.Request) {
	l, ok := h.levelFromQuery(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for y := 0; y < domain.RowNo; y++ {
		line := make([]rune, domain.ColNo)
		for x := 0; x < domain.ColNo; x++ {
			line[x] = l.TypeAt(x, y).Symbol()
		}
		fmt.Fprintln(w, string(line))
	}
}

func (h *DebugHandler) levelFromQuery(w http.ResponseWriter, r *http.Request) (*domain.Level, bool) {
	var branch, depth int
	fmt.Sscanf(r.URL.Query().Get("branch"), "%d", &branch)
	fmt.Sscanf(r.URL.Query().Get("depth"), "%d", &depth)

	l, err := h.Service.Level(domain.NewDLevel(int8(branch), int8(depth)))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return l, true
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (пустой кеш), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
