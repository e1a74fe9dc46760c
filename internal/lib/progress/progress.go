// Package progress рассчитывает процент готовности отчета по времени,
// прошедшему с момента приема запроса.
package progress

import (
	"fmt"
	"time"
)

// Full означает готовый отчет.
const Full = 100

// Policy хранит максимальную ожидаемую длительность обработки запроса.
type Policy struct {
	maxDurationMs int64
}

// New создает Policy из длительности в миллисекундах.
func New(maxDurationMs int) (Policy, error) {
	if maxDurationMs <= 0 {
		return Policy{}, fmt.Errorf("progress.New: max duration must be positive, got %d", maxDurationMs)
	}
	return Policy{maxDurationMs: int64(maxDurationMs)}, nil
}

// MaxDuration возвращает максимальную длительность обработки.
func (p Policy) MaxDuration() time.Duration {
	return time.Duration(p.maxDurationMs) * time.Millisecond
}

// Percent возвращает процент готовности для прошедшего времени elapsed.
// Время усекается до целых миллисекунд, деление целочисленное.
func (p Policy) Percent(elapsed time.Duration) int {
	ms := elapsed.Milliseconds()
	if ms < 0 {
		// часы сервера ушли назад
		ms = 0
	}
	if ms > p.maxDurationMs {
		return Full
	}
	return int(Full * ms / p.maxDurationMs)
}

// Complete сообщает, готов ли отчет при проценте percent.
func Complete(percent int) bool {
	return percent == Full
}
