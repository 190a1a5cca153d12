// Package profile holds application profiles: named sets of key bindings
// loaded once at startup, plus the activation handshake with the LED and
// display subsystems.
package profile

import (
	"macropad/internal/action"
	"macropad/internal/display"
	"macropad/internal/hid"
	"macropad/internal/led"
)

// MaxKeys is the binding capacity of a profile: 12 physical keys plus the
// encoder button at index 12.
const MaxKeys = 13

// EncoderKey is the virtual key index of the encoder button.
const EncoderKey = 12

// KeyBinding maps one key to a colored label and a macro sequence.
// Immutable once the profile is loaded.
type KeyBinding struct {
	Color    led.Color
	Label    string
	Sequence action.Sequence
}

// Profile is a named, ordered set of up to MaxKeys bindings plus an icon
// reference. Profiles are identified by their position in the loaded list.
type Profile struct {
	Name string
	Icon string
	Keys []KeyBinding
}

// Binding returns the binding at index, if the profile defines one.
func (p *Profile) Binding(index int) (KeyBinding, bool) {
	if index < 0 || index >= len(p.Keys) {
		return KeyBinding{}, false
	}
	return p.Keys[index], true
}

// HasEncoderBinding reports whether the encoder button is bound.
func (p *Profile) HasEncoderBinding() bool {
	return len(p.Keys) > EncoderKey
}

// Hardware bundles the collaborators a profile needs to activate.
type Hardware struct {
	Sink    hid.Sink
	Pixels  led.Pixels
	Surface display.Surface
	Icons   display.Presenter
}

// Activate makes this profile the live one. It releases all output state
// (the one place an unconditional global release is allowed, since a switch
// invalidates every prior per-key assertion), recolors the key LEDs, and
// presents the profile icon. Icon presentation is interruptible: if the
// encoder moves mid-animation, Activate aborts before touching the menu and
// returns false, and the caller must re-poll and retry. On completion the
// key labels and profile name are rendered and Activate returns true.
func (p *Profile) Activate(hw Hardware) bool {
	hw.Sink.ReleaseAll()

	for i := 0; i < led.NumKeys; i++ {
		if b, ok := p.Binding(i); ok {
			hw.Pixels.Set(i, b.Color)
		} else {
			hw.Pixels.Set(i, led.Off)
		}
	}
	hw.Pixels.Show()

	if !hw.Icons.Present(p.Icon) {
		return false
	}

	for i := 0; i < led.NumKeys; i++ {
		if b, ok := p.Binding(i); ok {
			hw.Surface.SetLabel(i, b.Label)
		} else {
			hw.Surface.SetLabel(i, "")
		}
	}
	hw.Surface.SetTitle(p.Name)
	hw.Surface.ShowMenu()
	return true
}
