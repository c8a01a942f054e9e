package sound

import "encoding/binary"

// BytesPerSample is the size of one stereo pair of signed 16-bit samples.
const BytesPerSample = 4

// SquareWave writes a square wave into interleaved stereo int16 regions.
type SquareWave struct {
	Volume     int16
	HalfPeriod int
	// Capacity is the number of stereo pairs the ring buffer holds.
	// SampleIndex wraps at this value.
	Capacity    int
	SampleIndex int
}

func NewSquareWave(toneHz, samplesPerSecond int, volume int16, capacity int) *SquareWave {
	half := samplesPerSecond / toneHz / 2
	if half < 1 {
		half = 1
	}
	return &SquareWave{
		Volume:     volume,
		HalfPeriod: half,
		Capacity:   capacity,
	}
}

// Next returns the value for the current sample index and advances it.
func (w *SquareWave) Next() int16 {
	val := w.Volume
	if (w.SampleIndex/w.HalfPeriod)%2 != 0 {
		val = -w.Volume
	}
	w.SampleIndex++
	if w.Capacity > 0 {
		w.SampleIndex %= w.Capacity
	}
	return val
}

// Fill writes one value per stereo pair, identical on both channels, and
// returns the number of pairs written. A trailing partial pair is left alone.
func (w *SquareWave) Fill(region []byte) int {
	n := len(region) / BytesPerSample
	for i := 0; i < n; i++ {
		val := uint16(w.Next())
		binary.LittleEndian.PutUint16(region[i*BytesPerSample:], val)   // left
		binary.LittleEndian.PutUint16(region[i*BytesPerSample+2:], val) // right
	}
	return n
}

// FillRegions fills the two halves of a wrapped ring buffer write in order.
func (w *SquareWave) FillRegions(region1, region2 []byte) {
	w.Fill(region1)
	w.Fill(region2)
}
