package helpers

import (
	"encoding/json"
	"sync"
	"time"
)

// Debounce returns a wrapper that delays fn until delay has elapsed since
// the most recent call. Earlier pending calls are dropped.
func Debounce(fn func(), delay time.Duration) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, fn)
	}
}

// Throttle returns a wrapper that invokes fn at most once per delay.
// Calls inside the window are dropped, not queued.
func Throttle(fn func(), delay time.Duration) func() {
	var mu sync.Mutex
	var last time.Time
	return func() {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if now.Sub(last) >= delay {
			last = now
			fn()
		}
	}
}

// Clone deep-copies a value through its JSON representation.
func Clone[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
