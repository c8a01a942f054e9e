package window

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/ushitora-anqou/handmade/joypad"
)

const XUSER_MAX_COUNT = 4

type xinputGamepad struct {
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

type xinputState struct {
	PacketNumber uint32
	Gamepad      xinputGamepad
}

type xinput struct {
	getState *windows.LazyProc
}

// loadXInput returns nil when no XInput DLL is installed; the demo then
// runs on the keyboard alone.
func loadXInput() *xinput {
	for _, name := range []string{"xinput1_4.dll", "xinput1_3.dll", "xinput9_1_0.dll"} {
		proc := windows.NewLazySystemDLL(name).NewProc("XInputGetState")
		if proc.Find() == nil {
			return &xinput{getState: proc}
		}
	}
	return nil
}

// buttons merges the buttons of every connected controller.
func (x *xinput) buttons() joypad.Button {
	var b joypad.Button
	for i := 0; i < XUSER_MAX_COUNT; i++ {
		var state xinputState
		r, _, _ := x.getState.Call(uintptr(i), uintptr(unsafe.Pointer(&state)))
		if r != uintptr(windows.ERROR_SUCCESS) {
			continue
		}
		b |= joypad.FromXInput(state.Gamepad.Buttons)
	}
	return b
}
