package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - общий логгер приложения. До вызова Init равен nil.
var Log *logrus.Logger

// Init настраивает глобальный логгер. Вызывается один раз из main
// (и из TestMain в пакетах, которые пишут в лог).
func Init() {
	Log = logrus.New()

	// Уровень берется из LOG_LEVEL, по умолчанию info.
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// LOG_FORMAT=json для сбора логов, иначе цветной текст для разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}
