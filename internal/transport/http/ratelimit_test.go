package http

import (
	"sync"
	"testing"
)

func TestRateLimiterCapsAndResets(t *testing.T) {
	rl := newRateLimiter(2)

	if !rl.allow() || !rl.allow() {
		t.Fatal("sends under the limit must be allowed")
	}
	if rl.allow() {
		t.Fatal("send over the limit must be rejected")
	}

	rl.counter.Store(0)
	if !rl.allow() {
		t.Fatal("send after reset must be allowed")
	}
}

func TestRateLimiterUnlimitedWhenDisabled(t *testing.T) {
	rl := newRateLimiter(0)
	for i := 0; i < 100; i++ {
		if !rl.allow() {
			t.Fatal("disabled limiter must allow everything")
		}
	}
	if !(*rateLimiter)(nil).allow() {
		t.Fatal("nil limiter must allow everything")
	}
}

func TestRateLimiterConcurrentAllowAndReset(t *testing.T) {
	rl := newRateLimiter(1000)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				rl.allow()
			}
		}()
	}
	// Resets race against the senders, as the ticker goroutine does.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			rl.counter.Store(0)
		}
	}()
	wg.Wait()

	rl.counter.Store(0)
	if !rl.allow() {
		t.Fatal("limiter must allow after a reset")
	}
}
