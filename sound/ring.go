package sound

import (
	"fmt"
	"sync"
)

// Output is a looping sound buffer whose play cursor is advanced by whatever
// device consumes it.
type Output interface {
	Size() int
	PlayCursor() (int, error)
	// Write hands fill the region [byteToLock, byteToLock+bytesToWrite),
	// split in two when it wraps past the end of the buffer.
	Write(byteToLock, bytesToWrite int, fill func(region1, region2 []byte)) error
}

// Span returns how many bytes can be written from byteToLock up to the play
// cursor, wrapping at the end of a buffer of the given size.
func Span(byteToLock, playCursor, size int) int {
	if byteToLock > playCursor {
		return size - byteToLock + playCursor
	}
	return playCursor - byteToLock
}

// Split returns the length of the part of a write that fits before the end of
// the buffer, and the length of the part that wraps to offset zero.
func Split(byteToLock, bytesToWrite, size int) (len1, len2 int, err error) {
	if byteToLock < 0 || byteToLock >= size {
		return 0, 0, fmt.Errorf("sound: lock offset %d out of range [0, %d)", byteToLock, size)
	}
	if bytesToWrite < 0 || bytesToWrite > size {
		return 0, 0, fmt.Errorf("sound: write of %d bytes exceeds buffer of %d", bytesToWrite, size)
	}
	len1 = bytesToWrite
	if byteToLock+bytesToWrite > size {
		len1 = size - byteToLock
	}
	return len1, bytesToWrite - len1, nil
}

// RingBuffer is an in-memory Output. Read consumes it in a loop the way a
// sound card plays a looping hardware buffer.
type RingBuffer struct {
	mtx        sync.Mutex
	data       []byte
	playCursor int
}

func NewRingBuffer(size int) *RingBuffer {
	return &RingBuffer{data: make([]byte, size)}
}

func (r *RingBuffer) Size() int {
	return len(r.data)
}

func (r *RingBuffer) PlayCursor() (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.playCursor, nil
}

func (r *RingBuffer) Write(byteToLock, bytesToWrite int, fill func(region1, region2 []byte)) error {
	len1, len2, err := Split(byteToLock, bytesToWrite, len(r.data))
	if err != nil {
		return err
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	fill(r.data[byteToLock:byteToLock+len1], r.data[:len2])
	return nil
}

// Read copies len(p) bytes starting at the play cursor, wrapping as often as
// needed, and advances the cursor. It never blocks and never fails.
func (r *RingBuffer) Read(p []byte) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if len(r.data) == 0 {
		return 0, nil
	}
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.playCursor:])
		n += c
		r.playCursor = (r.playCursor + c) % len(r.data)
	}
	return n, nil
}
