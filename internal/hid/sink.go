// Package hid defines the output side of the macro pad: HID usage codes,
// character translation tables, and the Sink every macro sequence is played
// against.
package hid

import "strings"

// Mouse button bitmasks (bit layout matches the boot mouse report).
const (
	MouseLeft    = 0x01
	MouseRight   = 0x02
	MouseMiddle  = 0x04
	MouseBack    = 0x08
	MouseForward = 0x10
)

var mouseButtonNames = map[string]int{
	"LEFT":    MouseLeft,
	"RIGHT":   MouseRight,
	"MIDDLE":  MouseMiddle,
	"BACK":    MouseBack,
	"FORWARD": MouseForward,
}

// MouseButtonByName resolves a mouse button name to its bitmask.
func MouseButtonByName(name string) (int, bool) {
	mask, ok := mouseButtonNames[strings.ToUpper(strings.TrimSpace(name))]
	return mask, ok
}

// Sink is the output collaborator: it accepts discrete press/release/move
// calls and performs whatever protocol I/O is needed. Implementations must
// tolerate redundant releases (releasing a key that is not pressed is a
// no-op), since sequence unwinding never assumes a full press ran.
type Sink interface {
	// KeyPress asserts a key by HID usage code.
	KeyPress(code uint8)
	// KeyRelease deasserts a key by HID usage code.
	KeyRelease(code uint8)
	// TypeText emits a press+release burst per character using the active
	// keyboard layout.
	TypeText(s string)

	// MediaPress asserts a consumer-control code. At most one code is
	// asserted at a time; callers release the prior code first.
	MediaPress(code uint16)
	// MediaRelease deasserts whatever consumer-control code is asserted.
	MediaRelease()

	// MousePress asserts mouse buttons by bitmask.
	MousePress(mask int)
	// MouseRelease deasserts mouse buttons by bitmask.
	MouseRelease(mask int)
	// MouseMove applies relative motion and wheel movement.
	MouseMove(dx, dy, wheel int)

	// ToneStart starts a tone at the given frequency in Hz.
	ToneStart(freq int)
	// ToneStop stops any active tone.
	ToneStop()
	// PlayFile plays an audio file from the given path.
	PlayFile(path string)

	// ReleaseAll deasserts everything: keys, consumer codes, mouse buttons
	// and tone. Only a profile switch may use this; per-key unwinding goes
	// through the individual release calls to keep rollover combinations
	// intact.
	ReleaseAll()
}
