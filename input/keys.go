package input

import "unicode"

// keyID identifies a held key. Character keys are folded to lower case so
// that chord checks are unaffected by a shift held mid-gesture.
type keyID struct {
	code Code
	r    rune
}

func idOf(ev KeyEvent) keyID {
	id := keyID{code: ev.Code}
	if ev.Code == CodeChar {
		id.r = unicode.ToLower(ev.Rune)
	}
	return id
}

// heldKeys is the set of currently pressed keys. Contract: insert on every
// press, remove on every release, clear on focus loss so stale modifiers
// cannot leak across focus changes.
type heldKeys map[keyID]struct{}

func newHeldKeys() heldKeys {
	return make(heldKeys)
}

func (h heldKeys) press(ev KeyEvent) {
	h[idOf(ev)] = struct{}{}
}

func (h heldKeys) release(ev KeyEvent) {
	delete(h, idOf(ev))
}

// holdsChar reports whether the given character key is held.
func (h heldKeys) holdsChar(r rune) bool {
	_, ok := h[keyID{code: CodeChar, r: unicode.ToLower(r)}]
	return ok
}

// holdsCode reports whether a non-character key with the given code is held.
func (h heldKeys) holdsCode(c Code) bool {
	_, ok := h[keyID{code: c}]
	return ok
}

func (h heldKeys) clear() {
	for k := range h {
		delete(h, k)
	}
}
