package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни.
	// Сид уровня = хеш(мастер-зерно, ветка, номер уровня).
	Seed int64

	// SaveDir - каталог бинарных снапшотов уровней. Пустая строка
	// отключает сохранение.
	SaveDir string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
	}
}
