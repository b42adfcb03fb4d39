// Package rate provides a token bucket rate limiter used to keep
// outbound requests to third-party APIs polite.
package rate

import (
	"context"
	"sync"
	"time"
)

// Limiter implements a token bucket. It supports blocking (Wait) and
// non-blocking (Allow) acquisition.
type Limiter struct {
	rate   float64 // tokens per second
	burst  int     // bucket capacity
	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// New creates a limiter adding rate tokens per second to a bucket of the
// given burst capacity. Non-positive arguments fall back to 1.
func New(rate float64, burst int) *Limiter {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &Limiter{
		rate:   rate,
		burst:  burst,
		tokens: float64(burst), // start with a full bucket
		last:   time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		if l.Allow() {
			return nil
		}

		waitTime := l.waitDuration()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}
}

// Allow reports whether an operation may proceed immediately, consuming
// one token if so.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())

	if l.tokens >= 1 {
		l.tokens--
		return true
	}

	return false
}

// Tokens returns the currently available token count.
func (l *Limiter) Tokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())
	return l.tokens
}

// Rate returns the configured fill rate in tokens per second.
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rate
}

// Burst returns the bucket capacity.
func (l *Limiter) Burst() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.burst
}

// advance refills tokens for the elapsed time. Caller holds l.mu.
func (l *Limiter) advance(now time.Time) {
	elapsed := now.Sub(l.last).Seconds()

	l.tokens += elapsed * l.rate
	if l.tokens > float64(l.burst) {
		l.tokens = float64(l.burst)
	}

	l.last = now
}

// waitDuration calculates how long until the next token accumulates.
func (l *Limiter) waitDuration() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())

	if l.tokens >= 1 {
		return 0
	}

	tokensNeeded := 1.0 - l.tokens
	secondsNeeded := tokensNeeded / l.rate

	return time.Duration(secondsNeeded * float64(time.Second))
}
