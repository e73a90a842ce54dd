// Package keycodes regenerates the KEY_* macro tables of a C header.
//
// The header holds one table per backend, each delimited by marker lines:
//
//	// KEY definitions for <section>
//	...generated #define lines...
//	// end of KEY definitions
//
// Everything between the markers is owned by the generator and replaced on
// every run. Everything outside them is copied through untouched.
package keycodes

import "fmt"

const (
	// StartMarker opens a generated section; the rest of the line names it.
	StartMarker = "// KEY definitions for "

	// EndMarker closes a generated section.
	EndMarker = "// end of KEY definitions"

	// DefaultSDLSection is the section whose values refer to SDL key symbols.
	DefaultSDLSection = "SDL and SDL2"

	// DefaultSDLFlag selects the SDL keypad symbols in the SDL section.
	DefaultSDLFlag = "USE_SDL"
)

// canonicalKeys is the fixed head of every table. Order determines ordinals.
var canonicalKeys = [...]string{
	"UNKNOWN",
	"ESCAPE", "RETURN", "BACKSPACE", "TAB",
	"UP", "DOWN", "LEFT", "RIGHT",
	"LEFTBRACKET", "RIGHTBRACKET",
	"INSERT", "DELETE", "COMMA", "BACKQUOTE",
	"PAGEUP", "PAGEDOWN", "HOME", "END",
	"KP_PLUS", "KP_MINUS", "KP_MULTIPLY", "KP_ENTER",
	"KP_DIVIDE", "KP_PERIOD", "KP_EQUALS",
	"EQUALS", "MINUS", "PERIOD",
	"CAPSLOCK", "CLEAR", "SPACE", "PAUSE",
	"LSHIFT", "RSHIFT", "LCTRL", "RCTRL",
	"LALT", "RALT",
}

// CanonicalKeys returns a copy of the named keys that start every table.
func CanonicalKeys() []string {
	keys := make([]string, len(canonicalKeys))
	copy(keys, canonicalKeys[:])
	return keys
}

// DigitKeys returns "0" through "9".
func DigitKeys() []string {
	keys := make([]string, 0, 10)
	for c := '0'; c <= '9'; c++ {
		keys = append(keys, string(c))
	}
	return keys
}

// LetterKeys returns "a" through "z".
func LetterKeys() []string {
	keys := make([]string, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		keys = append(keys, string(c))
	}
	return keys
}

// KeypadKeys returns "KP0" through "KP9".
func KeypadKeys() []string {
	keys := make([]string, 0, 10)
	for d := 0; d < 10; d++ {
		keys = append(keys, fmt.Sprintf("KP%d", d))
	}
	return keys
}

// FunctionKeys returns "F1" through "F12".
func FunctionKeys() []string {
	keys := make([]string, 0, 12)
	for n := 1; n <= 12; n++ {
		keys = append(keys, fmt.Sprintf("F%d", n))
	}
	return keys
}

// KeyOrder returns every key of an ordinal table in emission order, so that
// a key's index in the result is its ordinal.
func KeyOrder(named []string) []string {
	var keys []string
	keys = append(keys, named...)
	keys = append(keys, DigitKeys()...)
	keys = append(keys, LetterKeys()...)
	keys = append(keys, KeypadKeys()...)
	keys = append(keys, "SCROLLOCK")
	keys = append(keys, FunctionKeys()...)
	return keys
}
