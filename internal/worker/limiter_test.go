package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Errorf("Expected request %d within burst to be allowed", i+1)
		}
	}

	if l.Allow() {
		t.Error("Expected request beyond burst to be denied")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.1, 1)

	// Drain the burst
	if !l.Allow() {
		t.Fatal("Expected first request to be allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := l.Wait(ctx)
	if err == nil {
		t.Error("Expected Wait to fail when context expires before the next slot")
	}
	if time.Since(start) > time.Second {
		t.Error("Wait blocked far past the context deadline")
	}
}

func TestLimiter_DefaultsOnInvalidInput(t *testing.T) {
	l := NewLimiter(0, 0)
	if !l.Allow() {
		t.Error("Expected limiter with defaulted settings to allow a request")
	}
}
