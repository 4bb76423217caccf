package state

import (
	"sync"
	"testing"

	"envirotrack/internal/classify"
	"envirotrack/internal/hw"
)

func TestSnapshot_EmptyBeforeFirstPublish(t *testing.T) {
	s := New()

	_, _, ok := s.Snapshot()
	if ok {
		t.Fatalf("Snapshot() ok = true before any Publish, want false")
	}
}

func TestPublishSnapshot_RoundTrip(t *testing.T) {
	s := New()
	reading := hw.Reading{Temperature: 25.8, Humidity: 41, Pressure: 1013.2, Pitch: 2, Roll: -1, Yaw: 118}
	labels := classify.Classification{
		Temperature: classify.Comfortable,
		Humidity:    classify.Comfortable,
		Pressure:    classify.Comfortable,
		Orientation: classify.Aligned,
	}

	s.Publish(reading, labels)

	gotReading, gotLabels, ok := s.Snapshot()
	if !ok {
		t.Fatalf("Snapshot() ok = false after Publish, want true")
	}
	if gotReading != reading {
		t.Errorf("Snapshot() reading = %+v, want %+v", gotReading, reading)
	}
	if gotLabels != labels {
		t.Errorf("Snapshot() labels = %+v, want %+v", gotLabels, labels)
	}
}

func TestTogglePause_CountsEdges(t *testing.T) {
	s := New()

	if s.Paused() {
		t.Fatalf("Paused() = true initially, want false")
	}

	// N press edges toggle exactly N times.
	for i := 1; i <= 5; i++ {
		got := s.TogglePause()
		want := i%2 == 1
		if got != want {
			t.Errorf("TogglePause() #%d = %v, want %v", i, got, want)
		}
		if s.Paused() != want {
			t.Errorf("Paused() after toggle #%d = %v, want %v", i, s.Paused(), want)
		}
	}
}

func TestRequestStop(t *testing.T) {
	s := New()
	if s.Stopping() {
		t.Fatalf("Stopping() = true initially, want false")
	}
	s.RequestStop()
	if !s.Stopping() {
		t.Fatalf("Stopping() = false after RequestStop, want true")
	}
}

// The pairing invariant: a snapshot must never combine a reading and a
// classification from two different Publish calls. Each published pair is
// self-describing (the label encodes the reading's value), so any mixed
// snapshot is detectable.
func TestSnapshot_PairingInvariantUnderConcurrency(t *testing.T) {
	s := New()

	statusFor := func(i int) classify.Status {
		if i%2 == 0 {
			return classify.Low
		}
		return classify.High
	}

	const publishes = 5000
	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 0; i < publishes; i++ {
			r := hw.Reading{Temperature: float64(i)}
			c := classify.Classification{Temperature: statusFor(i)}
			s.Publish(r, c)
		}
	}()

	var mismatches int
	for {
		select {
		case <-done:
			wg.Wait()
			if mismatches > 0 {
				t.Fatalf("observed %d mixed reading/classification pairs", mismatches)
			}
			return
		default:
			r, c, ok := s.Snapshot()
			if !ok {
				continue
			}
			if c.Temperature != statusFor(int(r.Temperature)) {
				mismatches++
			}
		}
	}
}
