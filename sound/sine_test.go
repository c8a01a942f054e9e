package sound

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestSineWaveFrames(t *testing.T) {
	s := NewSineWave(441, 44100, 2)
	samples := make([]int16, 2*100)
	s.FillFrames(samples)

	// 441 Hz at 44100 Hz is exactly 100 frames per cycle.
	if samples[0] != 0 {
		t.Fatalf("first sample: got %d, expected 0", samples[0])
	}
	if samples[2*25] != math.MaxInt16 {
		t.Fatalf("quarter period: got %d, expected %d", samples[2*25], math.MaxInt16)
	}
	for i := 0; i < 100; i++ {
		if samples[2*i] != samples[2*i+1] {
			t.Fatalf("frame %d: channels differ", i)
		}
	}
	if s.phase < 0 || s.phase >= 2*math.Pi {
		t.Fatalf("phase %f escaped [0, 2π)", s.phase)
	}
}

func TestSineWaveReadMatchesFrames(t *testing.T) {
	a := NewSineWave(440, 44100, 2)
	b := NewSineWave(440, 44100, 2)

	raw := make([]byte, 0, 4000)
	// Odd read sizes exercise the pending tail.
	for _, n := range []int{3, 1, 1000, 7, 989, 2000} {
		p := make([]byte, n)
		got, err := a.Read(p)
		if err != nil || got != n {
			t.Fatalf("Read(%d): n=%d err=%v", n, got, err)
		}
		raw = append(raw, p...)
	}

	samples := make([]int16, len(raw)/2)
	b.FillFrames(samples)
	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		if got != want {
			t.Fatalf("sample %d: got %d, expected %d", i, got, want)
		}
	}
}
