package window

import (
	"testing"

	"github.com/ushitora-anqou/handmade/joypad"
)

func TestKeyTransition(t *testing.T) {
	tests := []struct {
		lParam          uintptr
		wasDown, isDown bool
	}{
		{0x00000001, false, true},
		{0x40000001, true, true},
		{0xC0000001, true, false},
		{0x80000001, false, false},
	}
	for _, tc := range tests {
		wasDown, isDown := KeyTransition(tc.lParam)
		if wasDown != tc.wasDown || isDown != tc.isDown {
			t.Fatalf("KeyTransition(%#x) = %v, %v; want %v, %v",
				tc.lParam, wasDown, isDown, tc.wasDown, tc.isDown)
		}
	}
}

func TestKeymapApply(t *testing.T) {
	m := keymap[rune]{'w': joypad.BUTTON_UP, 'a': joypad.BUTTON_LEFT}
	var pad joypad.State

	if !m.apply(&pad, 'w', true) || !pad.Pressed(joypad.BUTTON_UP) {
		t.Fatalf("w down: %+v", pad)
	}
	m.apply(&pad, 'a', true)
	m.apply(&pad, 'w', false)
	if pad.Buttons != joypad.BUTTON_LEFT {
		t.Fatalf("buttons = %#x, want LEFT", pad.Buttons)
	}
	if m.apply(&pad, 'q', true) {
		t.Fatal("unbound key reported as bound")
	}
	if pad.Buttons != joypad.BUTTON_LEFT {
		t.Fatalf("unbound key changed the pad: %#x", pad.Buttons)
	}
}
