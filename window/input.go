package window

import "github.com/ushitora-anqou/handmade/joypad"

// keymap binds backend key codes to pad buttons.
type keymap[K comparable] map[K]joypad.Button

// apply updates pad for a key transition and reports whether the key is
// bound.
func (m keymap[K]) apply(pad *joypad.State, key K, down bool) bool {
	b, ok := m[key]
	if ok {
		pad.Set(b, down)
	}
	return ok
}

// KeyTransition decodes the lParam of a Windows keyboard message: bit 30 is
// the previous key state and bit 31 is set on release.
func KeyTransition(lParam uintptr) (wasDown, isDown bool) {
	wasDown = lParam&(1<<30) != 0
	isDown = lParam&(1<<31) == 0
	return
}
