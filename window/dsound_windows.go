package window

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/ushitora-anqou/handmade/sound"
)

var (
	dsound                = windows.NewLazySystemDLL("dsound.dll")
	procDirectSoundCreate = dsound.NewProc("DirectSoundCreate")
)

const (
	DSSCL_PRIORITY              = 0x00000002
	DSBCAPS_PRIMARYBUFFER       = 0x00000001
	DSBCAPS_GETCURRENTPOSITION2 = 0x00010000
	DSBPLAY_LOOPING             = 0x00000001

	WAVE_FORMAT_PCM = 1
)

// Vtable slots of IDirectSound and IDirectSoundBuffer.
const (
	iUnknownRelease = 2

	iDirectSoundCreateSoundBuffer   = 3
	iDirectSoundSetCooperativeLevel = 6

	iDirectSoundBufferGetCurrentPosition = 4
	iDirectSoundBufferLock               = 11
	iDirectSoundBufferPlay               = 12
	iDirectSoundBufferSetFormat          = 14
	iDirectSoundBufferUnlock             = 19
)

type waveFormatEx struct {
	FormatTag      uint16
	Channels       uint16
	SamplesPerSec  uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	Size           uint16
}

type dsBufferDesc struct {
	Size          uint32
	Flags         uint32
	BufferBytes   uint32
	Reserved      uint32
	WfxFormat     *waveFormatEx
	GuidAlgorithm windows.GUID
}

// comObject is the memory layout of any COM interface pointer: a pointer to
// its vtable.
type comObject struct {
	vtbl *[32]uintptr
}

func (o *comObject) call(slot int, args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(o.vtbl[slot], append([]uintptr{uintptr(unsafe.Pointer(o))}, args...)...)
	return r
}

func (o *comObject) release() {
	o.call(iUnknownRelease)
}

func hresultError(op string, hr uintptr) error {
	if int32(hr) >= 0 {
		return nil
	}
	return fmt.Errorf("dsound: %s: HRESULT %#08x", op, uint32(hr))
}

// directSoundBuffer is a looping DirectSound secondary buffer. It implements
// sound.Output; the play cursor is owned by the sound card.
type directSoundBuffer struct {
	ds        *comObject
	secondary *comObject
	size      int
}

func newDirectSoundBuffer(hwnd windows.HWND, samplesPerSecond, size int) (*directSoundBuffer, error) {
	if err := procDirectSoundCreate.Find(); err != nil {
		return nil, err
	}

	var ds *comObject
	hr, _, _ := procDirectSoundCreate.Call(0, uintptr(unsafe.Pointer(&ds)), 0)
	if err := hresultError("DirectSoundCreate", hr); err != nil {
		return nil, err
	}
	if err := hresultError("SetCooperativeLevel",
		ds.call(iDirectSoundSetCooperativeLevel, uintptr(hwnd), DSSCL_PRIORITY)); err != nil {
		ds.release()
		return nil, err
	}

	wfx := waveFormatEx{
		FormatTag:     WAVE_FORMAT_PCM,
		Channels:      2,
		SamplesPerSec: uint32(samplesPerSecond),
		BitsPerSample: 16,
	}
	wfx.BlockAlign = wfx.Channels * wfx.BitsPerSample / 8
	wfx.AvgBytesPerSec = wfx.SamplesPerSec * uint32(wfx.BlockAlign)

	// The primary buffer only exists to set the device format.
	primaryDesc := dsBufferDesc{Flags: DSBCAPS_PRIMARYBUFFER}
	primaryDesc.Size = uint32(unsafe.Sizeof(primaryDesc))
	var primary *comObject
	if err := hresultError("CreateSoundBuffer(primary)", ds.call(iDirectSoundCreateSoundBuffer,
		uintptr(unsafe.Pointer(&primaryDesc)), uintptr(unsafe.Pointer(&primary)), 0)); err != nil {
		ds.release()
		return nil, err
	}
	err := hresultError("SetFormat", primary.call(iDirectSoundBufferSetFormat, uintptr(unsafe.Pointer(&wfx))))
	primary.release()
	if err != nil {
		ds.release()
		return nil, err
	}

	desc := dsBufferDesc{
		Flags:       DSBCAPS_GETCURRENTPOSITION2,
		BufferBytes: uint32(size),
		WfxFormat:   &wfx,
	}
	desc.Size = uint32(unsafe.Sizeof(desc))
	var secondary *comObject
	if err := hresultError("CreateSoundBuffer(secondary)", ds.call(iDirectSoundCreateSoundBuffer,
		uintptr(unsafe.Pointer(&desc)), uintptr(unsafe.Pointer(&secondary)), 0)); err != nil {
		ds.release()
		return nil, err
	}

	b := &directSoundBuffer{ds: ds, secondary: secondary, size: size}
	if err := b.Write(0, size, func(r1, r2 []byte) {
		clear(r1)
		clear(r2)
	}); err != nil {
		b.release()
		return nil, err
	}
	if err := hresultError("Play", secondary.call(iDirectSoundBufferPlay, 0, 0, DSBPLAY_LOOPING)); err != nil {
		b.release()
		return nil, err
	}
	return b, nil
}

func (b *directSoundBuffer) Size() int {
	return b.size
}

func (b *directSoundBuffer) PlayCursor() (int, error) {
	var play, write uint32
	hr := b.secondary.call(iDirectSoundBufferGetCurrentPosition,
		uintptr(unsafe.Pointer(&play)), uintptr(unsafe.Pointer(&write)))
	if err := hresultError("GetCurrentPosition", hr); err != nil {
		return 0, err
	}
	return int(play), nil
}

func (b *directSoundBuffer) Write(byteToLock, bytesToWrite int, fill func(region1, region2 []byte)) error {
	if _, _, err := sound.Split(byteToLock, bytesToWrite, b.size); err != nil {
		return err
	}
	var (
		ptr1, ptr2 unsafe.Pointer
		len1, len2 uint32
	)
	hr := b.secondary.call(iDirectSoundBufferLock,
		uintptr(byteToLock), uintptr(bytesToWrite),
		uintptr(unsafe.Pointer(&ptr1)), uintptr(unsafe.Pointer(&len1)),
		uintptr(unsafe.Pointer(&ptr2)), uintptr(unsafe.Pointer(&len2)),
		0)
	if err := hresultError("Lock", hr); err != nil {
		return err
	}
	var region1, region2 []byte
	if ptr1 != nil {
		region1 = unsafe.Slice((*byte)(ptr1), int(len1))
	}
	if ptr2 != nil {
		region2 = unsafe.Slice((*byte)(ptr2), int(len2))
	}
	fill(region1, region2)
	hr = b.secondary.call(iDirectSoundBufferUnlock,
		uintptr(ptr1), uintptr(len1), uintptr(ptr2), uintptr(len2))
	return hresultError("Unlock", hr)
}

func (b *directSoundBuffer) release() {
	b.secondary.release()
	b.ds.release()
}
