package sound

import (
	"encoding/binary"
	"math"
)

// SineWave produces interleaved signed 16-bit little-endian frames of a sine
// tone. The phase accumulator wraps at 2π so it never loses precision.
type SineWave struct {
	ToneHz    float64
	Rate      int
	Channels  int
	Amplitude float64 // 0 to 1 of full scale
	phase     float64
	pending   []byte
}

func NewSineWave(toneHz float64, rate, channels int) *SineWave {
	return &SineWave{
		ToneHz:    toneHz,
		Rate:      rate,
		Channels:  channels,
		Amplitude: 1,
	}
}

func (s *SineWave) FrameSize() int {
	return 2 * s.Channels
}

// FillFrames writes len(samples)/Channels frames.
func (s *SineWave) FillFrames(samples []int16) {
	const maxPhase = 2 * math.Pi
	step := maxPhase * s.ToneHz / float64(s.Rate)
	maxval := float64(math.MaxInt16) * s.Amplitude
	frames := len(samples) / s.Channels
	for i := 0; i < frames; i++ {
		val := int16(math.Sin(s.phase) * maxval)
		for ch := 0; ch < s.Channels; ch++ {
			samples[i*s.Channels+ch] = val
		}
		s.phase += step
		if s.phase >= maxPhase {
			s.phase -= maxPhase
		}
	}
}

// Read implements io.Reader. It never returns an error.
func (s *SineWave) Read(p []byte) (int, error) {
	n := 0
	if len(s.pending) > 0 {
		n = copy(p, s.pending)
		s.pending = s.pending[n:]
		if n == len(p) {
			return n, nil
		}
	}

	frameSize := s.FrameSize()
	frames := (len(p) - n + frameSize - 1) / frameSize
	samples := make([]int16, frames*s.Channels)
	s.FillFrames(samples)

	raw := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(v))
	}
	c := copy(p[n:], raw)
	s.pending = raw[c:]
	return n + c, nil
}
