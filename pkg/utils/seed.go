package utils

import "hash/fnv"

// StringToSeed превращает произвольную строку в сид.
// Одна и та же строка всегда дает один и тот же сид.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// LevelSeed выводит сид конкретного уровня из мастер-сида.
// Сид уровня = хеш(мастер-сид, ветка, номер): уровни независимы,
// перегенерация одного уровня не трогает остальные.
func LevelSeed(master int64, branch, level int8) int64 {
	h := fnv.New64a()
	var buf [10]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(uint64(master) >> (8 * i))
	}
	buf[8] = byte(branch)
	buf[9] = byte(level)
	h.Write(buf[:])
	return int64(h.Sum64())
}
