package sound

import (
	"fmt"

	"github.com/ushitora-anqou/handmade/util"
)

// Stream keeps an Output topped up with a square wave, one Update per frame.
type Stream struct {
	out  Output
	wave *SquareWave
}

func NewStream(out Output, toneHz, samplesPerSecond int, volume int16) *Stream {
	return &Stream{
		out:  out,
		wave: NewSquareWave(toneHz, samplesPerSecond, volume, out.Size()/BytesPerSample),
	}
}

func (s *Stream) Wave() *SquareWave {
	return s.wave
}

// Update writes from the last written sample up to the play cursor.
func (s *Stream) Update() error {
	playCursor, err := s.out.PlayCursor()
	if err != nil {
		return fmt.Errorf("sound: get play cursor: %w", err)
	}
	size := s.out.Size()
	byteToLock := s.wave.SampleIndex * BytesPerSample % size
	bytesToWrite := Span(byteToLock, playCursor, size)
	util.Trace("sound: lock %d, write %d, play %d", byteToLock, bytesToWrite, playCursor)
	if bytesToWrite == 0 {
		return nil
	}
	return s.out.Write(byteToLock, bytesToWrite, s.wave.FillRegions)
}
