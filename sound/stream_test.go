package sound

import (
	"encoding/binary"
	"testing"
)

func TestStreamNeverCrossesPlayCursor(t *testing.T) {
	const size = 400 * BytesPerSample
	ring := NewRingBuffer(size)
	stream := NewStream(ring, 256, 40000, 1000)

	// Nothing may be written while the play cursor has not moved.
	if err := stream.Update(); err != nil {
		t.Fatal(err)
	}
	if stream.Wave().SampleIndex != 0 {
		t.Fatalf("wrote %d samples before playback started", stream.Wave().SampleIndex)
	}

	consumed := make([]byte, 0)
	for frame := 0; frame < 50; frame++ {
		chunk := make([]byte, (37*frame%150+1)*BytesPerSample)
		if _, err := ring.Read(chunk); err != nil {
			t.Fatal(err)
		}
		consumed = append(consumed, chunk...)
		if err := stream.Update(); err != nil {
			t.Fatal(err)
		}
		play, _ := ring.PlayCursor()
		lock := stream.Wave().SampleIndex * BytesPerSample
		if lock != play {
			t.Fatalf("frame %d: writer at %d, play cursor at %d", frame, lock, play)
		}
	}

	// Once primed, the ring carries the wave continuously: the second lap of
	// consumed data must start with the first sample written.
	first := int16(binary.LittleEndian.Uint16(ring.data[0:]))
	if first != 1000 {
		t.Fatalf("first written sample: got %d, expected 1000", first)
	}
	if len(consumed) <= size {
		t.Fatalf("test did not wrap the ring: consumed %d of %d", len(consumed), size)
	}
}

type failingOutput struct{ RingBuffer }

func (f *failingOutput) PlayCursor() (int, error) {
	return 0, errTest
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("device lost")

func TestStreamReportsCursorError(t *testing.T) {
	out := &failingOutput{RingBuffer{data: make([]byte, 64)}}
	stream := NewStream(out, 256, 40000, 1)
	if err := stream.Update(); err == nil {
		t.Fatalf("Update should fail when the play cursor is unavailable")
	}
}
