package rng

import "math/rand"

// Rand - детерминированный генератор для построения уровня.
// Всегда передается явно по указателю: глобального экземпляра нет,
// один генератор = одна строгая последовательность выборок на сид.
// Делить один Rand между параллельными генерациями нельзя.
type Rand struct {
	seed int64
	src  *rand.Rand
}

// New создает генератор с фиксированным сидом.
func New(seed int64) *Rand {
	return &Rand{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает сид, с которого был создан генератор.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Rn2 возвращает 0..n-1. При n <= 0 возвращает 0.
func (r *Rand) Rn2(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// Rnd возвращает 1..n. При n <= 0 возвращает 0.
func (r *Rand) Rnd(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n) + 1
}

// D бросает n костей по m граней и возвращает сумму.
func (r *Rand) D(n, m int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += r.Rnd(m)
	}
	return sum
}

// OneIn возвращает true с вероятностью 1/n.
func (r *Rand) OneIn(n int) bool {
	return r.Rn2(n) == 0
}

// Percent возвращает true с вероятностью p/100.
func (r *Rand) Percent(p int) bool {
	return r.Rn2(100) < p
}

// Shuffle перемешивает n элементов через swap.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}
