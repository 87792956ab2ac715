package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pierreaubert/nethack-rs-sub002/internal/engine"
	"github.com/pierreaubert/nethack-rs-sub002/internal/server"
	"github.com/pierreaubert/nethack-rs-sub002/internal/storage"
	"github.com/pierreaubert/nethack-rs-sub002/internal/version"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/logger"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var seedText string
	var saveDir string
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&seedText, "seed-text", "", "Master seed as text (hashed, overrides -seed)")
	flag.StringVar(&saveDir, "save-dir", "", "Directory for binary level snapshots on shutdown")
	flag.Parse()

	logger.Log.Info("Starting Dungeon Level Server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	cfg.SaveDir = saveDir
	if seedText != "" {
		seed = utils.StringToSeed(seedText)
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	port := os.Getenv("DLS_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	svc := engine.NewService(cfg)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(svc, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Сбрасываем кеш уровней на диск, если задан каталог
	if cfg.SaveDir != "" {
		store := storage.NewLevelStore(cfg.SaveDir)
		for _, id := range svc.CachedLevels() {
			l, err := svc.Level(id)
			if err != nil {
				continue
			}
			if err := store.Save(l); err != nil {
				logger.Log.WithError(err).Warnf("failed to save %s", id)
			}
		}
	}

	logger.Log.Info("Done.")
}
