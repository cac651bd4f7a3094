package stream

import (
	"math"
	"time"
)

// Backoff задает задержку между попытками переподключения
type Backoff struct {
	Initial    time.Duration
	Multiplier float64
	Max        time.Duration
}

// DefaultBackoff: 1s, x2, не более 30s
func DefaultBackoff() Backoff {
	return Backoff{
		Initial:    1 * time.Second,
		Multiplier: 2.0,
		Max:        30 * time.Second,
	}
}

// Next возвращает задержку перед попыткой attempt (1-based)
func (b Backoff) Next(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := float64(b.Initial) * math.Pow(b.Multiplier, float64(attempt-1))
	if delay > float64(b.Max) || math.IsInf(delay, 0) {
		return b.Max
	}
	return time.Duration(delay)
}
