package x11

import (
	"bytes"
	"errors"
	"log"
	"testing"
	"time"
)

func scripted(evs []Event, end error) func() (Event, error) {
	return func() (Event, error) {
		if len(evs) == 0 {
			return Event{}, end
		}
		ev := evs[0]
		evs = evs[1:]
		return ev, nil
	}
}

func TestPumpEndOfStream(t *testing.T) {
	tests := []struct {
		end    error
		logged bool
	}{
		{ErrClosed, false},
		{errors.New("x11: BadWindow"), true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		orig := log.Writer()
		log.SetOutput(&buf)

		in := []Event{{Kind: EventExpose}, {Kind: EventResize, Width: 3, Height: 4}}
		var got []Event
		for ev := range pump(scripted(in, tt.end), make(chan struct{})) {
			got = append(got, ev)
		}
		log.SetOutput(orig)

		if len(got) != len(in) || got[1] != in[1] {
			t.Fatalf("end %v: got events %+v, want %+v", tt.end, got, in)
		}
		if logged := buf.Len() > 0; logged != tt.logged {
			t.Fatalf("end %v: logged %q, want logged=%v", tt.end, buf.String(), tt.logged)
		}
	}
}

func TestPumpAbandonsSendOnDone(t *testing.T) {
	next := func() (Event, error) { return Event{Kind: EventButtonPress}, nil }
	done := make(chan struct{})
	ch := pump(next, done)

	// Nobody reads, so the pump fills the buffer and blocks on the send.
	time.Sleep(20 * time.Millisecond)
	close(done)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatalf("pump still sending after done was closed")
		}
	}
}
