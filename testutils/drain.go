package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Helper()
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// DrainBlocking expects to receive data in order from ch, then
// expects ch to be closed. Unlike a plain range over ch, it gives up
// after timeout has passed without a receive, so a producer that
// never closes ch fails the test instead of hanging it.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Helper()
	t.Logf("draining: expecting %v", data)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, datum := range data {
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting i=%d %v", i, datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timer.C:
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
	}

	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Error("at the end of draining, channel was empty but unclosed")
	}
}

// DrainAtMost receives from ch until it is closed and expects
// no more than max items. It is for channels whose producer was
// told to stop while it may have had an item in flight.
func DrainAtMost[T any](t TestT, max int, ch <-chan T, timeout time.Duration) {
	t.Helper()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	got := 0
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				assert.LessOrEqual(t, got, max, "received too many items after stopping")
				return
			}
			got++
		case <-timer.C:
			t.Errorf("timed out after receiving %d items", got)
			return
		}
	}
}
