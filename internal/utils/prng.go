// internal/utils/prng.go
package utils

import (
	"go-arena-shooter/internal/defs"
	"math/rand"
	"time"
)

// PRNGService - общий для партии генератор случайных чисел.
// Один сид полностью определяет выбор типов и точек появления врагов.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создаёт генератор с заданным сидом. Сид 0 заменяется текущим временем.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntInclusive возвращает число в диапазоне [0, n].
func (s *PRNGService) IntInclusive(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n + 1)
}

// ChooseWeighted выбирает тип врага пропорционально весу.
// Возвращает false, если таблица пуста.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) (defs.EnemyKind, bool) {
	if len(entries) == 0 {
		return 0, false
	}

	total := 0
	for _, e := range entries {
		total += max(e.Weight, 0)
	}
	if total == 0 {
		return entries[0].Kind, true
	}

	r := s.rng.Intn(total)
	for _, e := range entries {
		w := max(e.Weight, 0)
		if r < w {
			return e.Kind, true
		}
		r -= w
	}
	return entries[len(entries)-1].Kind, true
}
