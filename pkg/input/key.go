package input

import (
	"fmt"
	"strings"
)

// KeyCode identifies a key. Printable input uses KeyCharacter together with
// Key.Char.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyCharacter
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyNames = map[KeyCode]string{
	KeyUnknown:    "Unknown",
	KeyCharacter:  "Character",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeyEscape:     "Escape",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// ParseKeyCode returns the code whose String form equals name,
// ignoring case.
func ParseKeyCode(name string) (KeyCode, bool) {
	for code, n := range keyNames {
		if strings.EqualFold(n, name) {
			return code, true
		}
	}
	return KeyUnknown, false
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModCommand
)

// Has reports whether all bits in m are set.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

func (mods Modifiers) String() string {
	var parts []string
	if mods.Has(ModControl) {
		parts = append(parts, "Control")
	}
	if mods.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if mods.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if mods.Has(ModCommand) {
		parts = append(parts, "Command")
	}
	return strings.Join(parts, "+")
}

// Key is the payload of a key press.
type Key struct {
	Code KeyCode
	// Char is the produced character when Code is KeyCharacter.
	Char rune
	Mods Modifiers
}

// Char returns a Key for a printable character.
func Char(r rune) Key {
	return Key{Code: KeyCharacter, Char: r}
}

// String formats the key as a chord, e.g. "Control+a" or "Enter".
func (k Key) String() string {
	name := k.Code.String()
	if k.Code == KeyCharacter {
		name = string(k.Char)
	}
	if k.Mods == 0 {
		return name
	}
	return k.Mods.String() + "+" + name
}

// ParseKey parses a chord in the form produced by Key.String. A single
// character names a KeyCharacter key.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "+")
	last := parts[len(parts)-1]
	if last == "" && len(parts) > 1 {
		// "Control++" names the plus key.
		parts = parts[:len(parts)-1]
		last = "+"
	}

	var k Key
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "shift":
			k.Mods |= ModShift
		case "control", "ctrl":
			k.Mods |= ModControl
		case "alt":
			k.Mods |= ModAlt
		case "command", "cmd":
			k.Mods |= ModCommand
		default:
			return Key{}, fmt.Errorf("unknown modifier %q in %q", p, s)
		}
	}

	if r := []rune(last); len(r) == 1 {
		k.Code = KeyCharacter
		k.Char = r[0]
		return k, nil
	}
	code, ok := ParseKeyCode(last)
	if !ok || code == KeyCharacter {
		return Key{}, fmt.Errorf("unknown key %q in %q", last, s)
	}
	k.Code = code
	return k, nil
}
