package service

import (
	"strings"
	"sync"
	"time"
)

// ResetRateLimiter limita la frecuencia de solicitudes de reset por clave.
type ResetRateLimiter interface {
	Allow(key string) bool
}

type resetRateLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	hits      map[string][]time.Time
	lastSweep time.Time
}

// NewResetRateLimiter crea un rate limiter en memoria.
func NewResetRateLimiter(window time.Duration, max int) ResetRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &resetRateLimiter{
		window:    window,
		max:       max,
		hits:      make(map[string][]time.Time),
		lastSweep: time.Now().UTC(),
	}
}

func (l *resetRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	// Misma normalizacion que el limiter de Redis: ambos backends deben
	// contar bajo la misma clave.
	key = strings.ToLower(strings.TrimSpace(key))
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)

	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}

// sweep descarta claves cuyas entradas expiraron; sin esto el mapa crece con
// cada email distinto visto.
func (l *resetRateLimiter) sweep(cutoff time.Time) {
	for k, entries := range l.hits {
		kept := entries[:0]
		for _, ts := range entries {
			if ts.After(cutoff) {
				kept = append(kept, ts)
			}
		}
		if len(kept) == 0 {
			delete(l.hits, k)
		} else {
			l.hits[k] = kept
		}
	}
}
