// Package jitter считает интервалы повторов с экспоненциальным ростом и случайной добавкой,
// чтобы переподключения воркеров не шли синхронно.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Backoff описывает политику отступления между попытками.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64
	rng    *rand.Rand
}

func NewBackoff(base, max time.Duration) *Backoff {
	return &Backoff{Base: base, Max: max, Factor: DefaultJitter}
}

// WithRand фиксирует генератор случайных чисел, чтобы результат был детерминированным.
func (b *Backoff) WithRand(rng *rand.Rand) *Backoff {
	b.rng = rng
	return b
}

// Delay возвращает паузу для попытки attempt (нумерация с нуля).
// Результат лежит в диапазоне [d, d*(1+Factor)], где d = min(Base*2^attempt, Max).
func (b *Backoff) Delay(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			d = b.Max
			break
		}
	}

	return d + time.Duration(b.float64()*b.Factor*float64(d))
}

// Wait спит Delay(attempt) или возвращает ошибку контекста, если он завершился раньше.
func (b *Backoff) Wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(b.Delay(attempt))
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Backoff) float64() float64 {
	if b.rng != nil {
		return b.rng.Float64()
	}

	randMutex.Lock()
	defer randMutex.Unlock()
	return globalRand.Float64()
}
