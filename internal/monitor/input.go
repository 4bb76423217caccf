package monitor

import (
	"context"
	"log/slog"

	"envirotrack/internal/hw"
	"envirotrack/internal/state"
)

var ackColor = hw.RGB{R: 255, G: 255, B: 255}

// PauseHandler decouples the input collaborator's dispatch thread from the
// toggle logic: Press only enqueues, and a dedicated goroutine consumes the
// queue, flips the pause flag and acknowledges on the display out-of-band.
type PauseHandler struct {
	display hw.Display
	shared  *state.Shared
	presses chan struct{}
}

func NewPauseHandler(display hw.Display, shared *state.Shared) *PauseHandler {
	return &PauseHandler{
		display: display,
		shared:  shared,
		presses: make(chan struct{}, 8),
	}
}

// Press records one press edge. It never blocks, so it is safe to call from
// whatever goroutine the input driver dispatches on. A press arriving while
// the queue is already full of unprocessed presses is dropped.
func (h *PauseHandler) Press() {
	select {
	case h.presses <- struct{}{}:
	default:
	}
}

// Run consumes press events until ctx is done. Each event toggles pause
// exactly once and scrolls an immediate "PAUSE"/"RUN" acknowledgment,
// bypassing the rotation loop.
func (h *PauseHandler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.presses:
			paused := h.shared.TogglePause()
			msg := "RUN"
			if paused {
				msg = "PAUSE"
			}
			slog.Info("pause toggled", "paused", paused)
			if err := h.display.ShowMessage(msg, ackColor); err != nil {
				slog.Warn("pause acknowledgment render failed", "error", err)
			}
		}
	}
}
