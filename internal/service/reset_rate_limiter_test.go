package service

import (
	"testing"
	"time"
)

func TestResetRateLimiter_EnforcesWindowMax(t *testing.T) {
	limiter := NewResetRateLimiter(time.Minute, 2)

	if !limiter.Allow("user@example.com") || !limiter.Allow("user@example.com") {
		t.Fatalf("first requests within the window must pass")
	}
	if limiter.Allow("user@example.com") {
		t.Fatalf("request over the max must be rejected")
	}
	if !limiter.Allow("other@example.com") {
		t.Fatalf("other keys must not be affected")
	}
}

func TestResetRateLimiter_KeyNormalization(t *testing.T) {
	limiter := NewResetRateLimiter(time.Minute, 2)

	if !limiter.Allow("User@Example.com") || !limiter.Allow("user@example.com") {
		t.Fatalf("first requests within the window must pass")
	}
	// Misma cuenta con otra capitalizacion: debe contar bajo la misma clave,
	// igual que el backend de Redis.
	if limiter.Allow(" USER@EXAMPLE.COM ") {
		t.Fatalf("expected limit shared across casings of the same key")
	}
}

func TestResetRateLimiter_SweepsExpiredKeys(t *testing.T) {
	limiter := NewResetRateLimiter(10*time.Millisecond, 3).(*resetRateLimiter)

	limiter.Allow("a@example.com")
	time.Sleep(25 * time.Millisecond)
	limiter.Allow("b@example.com")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if _, ok := limiter.hits["a@example.com"]; ok {
		t.Fatalf("expired key must be removed from the map")
	}
	if _, ok := limiter.hits["b@example.com"]; !ok {
		t.Fatalf("active key must remain")
	}
}
