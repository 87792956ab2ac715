package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling
	"strconv"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/internal/engine"
	"github.com/pierreaubert/nethack-rs-sub002/internal/version"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/api"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/logger"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/utils"
)

type Server struct {
	Engine *engine.Service
	Port   string
}

func New(engine *engine.Service, port string) *Server {
	return &Server{
		Engine: engine,
		Port:   port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/level", enableCORS(s.handleLevel))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Engine)
	debugHandler.RegisterRoutes(mux)

	logger.Log.Infof("🛡️  Dungeon Level Server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Engine, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

// handleLevel - HTTP-вариант генерации: /level?branch=0&depth=5&seed=42.
// Для curl и скриптов, когда WebSocket избыточен. Нечисловой сид
// трактуется как строковый и хешируется.
func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	branch, _ := strconv.Atoi(q.Get("branch"))
	depth, err := strconv.Atoi(q.Get("depth"))
	if err != nil {
		http.Error(w, "depth query parameter is required", http.StatusBadRequest)
		return
	}
	var seed int64
	if v := q.Get("seed"); v != "" {
		seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			seed = utils.StringToSeed(v)
		}
	}

	req := api.GenerateRequest{Branch: int8(branch), Depth: int8(depth), Seed: seed}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := domain.NewDLevel(req.Branch, req.Depth)
	l, err := s.Engine.LevelForSeed(id, req.Seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(engine.BuildSnapshot(l))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
