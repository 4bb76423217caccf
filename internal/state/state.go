// Package state is the single coordination point between the sampling loop,
// the display loop and the joystick handler.
package state

import (
	"sync"

	"envirotrack/internal/classify"
	"envirotrack/internal/hw"
)

// Shared holds the latest published reading/classification pair and the
// paused/stopping flags. The pair is only ever read and written as a unit:
// a snapshot can never mix a reading with a classification from a different
// tick.
type Shared struct {
	mu       sync.Mutex
	reading  hw.Reading
	labels   classify.Classification
	hasValue bool
	paused   bool
	stopping bool
}

func New() *Shared {
	return &Shared{}
}

// Publish atomically replaces the reading/classification pair. Called only
// by the sampling loop.
func (s *Shared) Publish(r hw.Reading, c classify.Classification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reading = r
	s.labels = c
	s.hasValue = true
}

// Snapshot atomically reads the latest pair. ok is false until the first
// Publish.
func (s *Shared) Snapshot() (r hw.Reading, c classify.Classification, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reading, s.labels, s.hasValue
}

// TogglePause flips the pause flag and returns the new state. Called once
// per press edge.
func (s *Shared) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

func (s *Shared) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// RequestStop asks both loops to exit; they notice at the top of their next
// iteration, within one sleep interval.
func (s *Shared) RequestStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopping = true
}

func (s *Shared) Stopping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopping
}
