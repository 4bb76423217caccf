package monitor

import (
	"sync"

	"envirotrack/internal/hw"
)

// lockedDisplay serializes display writes. The rotation loop and the pause
// acknowledgment both scroll messages; without the lock their renders could
// interleave mid-scroll.
type lockedDisplay struct {
	mu sync.Mutex
	d  hw.Display
}

// LockDisplay wraps d so that concurrent callers take turns.
func LockDisplay(d hw.Display) hw.Display {
	return &lockedDisplay{d: d}
}

func (l *lockedDisplay) ShowMessage(text string, c hw.RGB) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.d.ShowMessage(text, c)
}

func (l *lockedDisplay) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.d.Clear()
}
