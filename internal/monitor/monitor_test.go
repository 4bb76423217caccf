package monitor

import (
	"errors"
	"sync"
	"testing"
	"time"

	"envirotrack/internal/hw"
	"envirotrack/internal/store"
)

// Test fakes for the three hardware collaborators and the sensor log.

type fakeSensor struct {
	mu       sync.Mutex
	readings []hw.Reading
	err      error
	calls    int
}

func (f *fakeSensor) Read() (hw.Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return hw.Reading{}, f.err
	}
	i := f.calls - 1
	if i >= len(f.readings) {
		i = len(f.readings) - 1
	}
	return f.readings[i], nil
}

func (f *fakeSensor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var errDiskFull = errors.New("disk full")

type fakeLog struct {
	mu        sync.Mutex
	records   []store.Record
	failFirst int // fail this many leading Append calls
	calls     int
}

func (f *fakeLog) Append(rec store.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failFirst {
		return errDiskFull
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeLog) Latest(n int) ([]store.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Record, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeLog) appendCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeLog) stored() []store.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.Record, len(f.records))
	copy(out, f.records)
	return out
}

type shownMessage struct {
	text  string
	color hw.RGB
}

type fakeDisplay struct {
	mu       sync.Mutex
	messages []shownMessage
	cleared  bool
	err      error
}

func (f *fakeDisplay) ShowMessage(text string, c hw.RGB) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, shownMessage{text: text, color: c})
	return f.err
}

func (f *fakeDisplay) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = true
	return nil
}

func (f *fakeDisplay) shown() []shownMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]shownMessage, len(f.messages))
	copy(out, f.messages)
	return out
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", msg)
}
