package joypad

type Button uint16

const (
	BUTTON_UP Button = 1 << iota
	BUTTON_DOWN
	BUTTON_LEFT
	BUTTON_RIGHT
	BUTTON_START
	BUTTON_BACK
	BUTTON_A
	BUTTON_B
	BUTTON_X
	BUTTON_Y
)

// XInput wButtons bits.
const (
	XINPUT_GAMEPAD_DPAD_UP    = 0x0001
	XINPUT_GAMEPAD_DPAD_DOWN  = 0x0002
	XINPUT_GAMEPAD_DPAD_LEFT  = 0x0004
	XINPUT_GAMEPAD_DPAD_RIGHT = 0x0008
	XINPUT_GAMEPAD_START      = 0x0010
	XINPUT_GAMEPAD_BACK       = 0x0020
	XINPUT_GAMEPAD_A          = 0x1000
	XINPUT_GAMEPAD_B          = 0x2000
	XINPUT_GAMEPAD_X          = 0x4000
	XINPUT_GAMEPAD_Y          = 0x8000
)

var xinputMapping = []struct {
	bit    uint16
	button Button
}{
	{XINPUT_GAMEPAD_DPAD_UP, BUTTON_UP},
	{XINPUT_GAMEPAD_DPAD_DOWN, BUTTON_DOWN},
	{XINPUT_GAMEPAD_DPAD_LEFT, BUTTON_LEFT},
	{XINPUT_GAMEPAD_DPAD_RIGHT, BUTTON_RIGHT},
	{XINPUT_GAMEPAD_START, BUTTON_START},
	{XINPUT_GAMEPAD_BACK, BUTTON_BACK},
	{XINPUT_GAMEPAD_A, BUTTON_A},
	{XINPUT_GAMEPAD_B, BUTTON_B},
	{XINPUT_GAMEPAD_X, BUTTON_X},
	{XINPUT_GAMEPAD_Y, BUTTON_Y},
}

// FromXInput converts an XINPUT_GAMEPAD wButtons field.
func FromXInput(wButtons uint16) Button {
	var b Button
	for _, m := range xinputMapping {
		if wButtons&m.bit != 0 {
			b |= m.button
		}
	}
	return b
}

type State struct {
	Buttons Button
}

func (s State) Pressed(b Button) bool {
	return s.Buttons&b != 0
}

func (s *State) Set(b Button, down bool) {
	if down {
		s.Buttons |= b
	} else {
		s.Buttons &^= b
	}
}

// Joypad remembers the previous state so callers can react to transitions
// only.
type Joypad struct {
	prev, cur State
}

func NewJoypad() *Joypad {
	return &Joypad{}
}

func (j *Joypad) Update(s State) {
	j.prev = j.cur
	j.cur = s
}

func (j *Joypad) Pressed(b Button) bool {
	return j.cur.Pressed(b)
}

func (j *Joypad) JustPressed(b Button) bool {
	return j.cur.Pressed(b) && !j.prev.Pressed(b)
}

func (j *Joypad) JustReleased(b Button) bool {
	return !j.cur.Pressed(b) && j.prev.Pressed(b)
}
