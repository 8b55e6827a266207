package utils

import (
	"sort"
	"sync"
	"time"
)

// Timer is the part of *time.Timer a caller needs to stop a scheduled func.
// The banner never stops its timers; Stop is there so MockClock mirrors
// time.AfterFunc.
type Timer interface {
	Stop() bool
}

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

func (s SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// MockClock only moves when Advance is called. Funcs scheduled with AfterFunc
// run synchronously inside Advance, in deadline order.
type MockClock struct {
	mu       sync.Mutex
	FixedNow time.Time
	timers   []*mockTimer
}

type mockTimer struct {
	clock    *MockClock
	deadline time.Time
	f        func()
	stopped  bool
	fired    bool
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FixedNow = now
}

func (m *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &mockTimer{clock: m, deadline: m.FixedNow.Add(d), f: f}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward and fires every timer whose deadline has passed.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.FixedNow = m.FixedNow.Add(d)
	now := m.FixedNow
	var due, pending []*mockTimer
	for _, t := range m.timers {
		if t.stopped {
			continue
		}
		if !t.deadline.After(now) {
			t.fired = true
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	m.timers = pending
	m.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (m *MockClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
