// Package action defines the primitives a macro sequence is made of and the
// interpreter that plays them against a hid.Sink.
//
// Step is a closed set: every variant carries an unexported marker method so
// type switches over steps are exhaustive and no runtime type inspection of
// loose values is needed.
package action

import "time"

// Step is one primitive of a macro sequence.
type Step interface{ step() }

// Sequence is an ordered list of steps, applied in fixed order.
type Sequence []Step

// KeyDown asserts a key by HID usage code.
type KeyDown struct{ Code uint8 }

// KeyUp deasserts a key by HID usage code.
type KeyUp struct{ Code uint8 }

// Delay pauses playback. Delays block the whole controller; they are meant
// for short, human-scale intervals.
type Delay struct{ Duration time.Duration }

// Text types a literal string as a press+release burst per character.
type Text struct{ S string }

// Media emits one or more consumer-control codes, each preceded by a release
// of the prior code, with optional pauses interleaved.
type Media struct{ Items []MediaStep }

// MediaStep is either a consumer-control code or a pause. IsPause selects
// which, so a zero-length pause stays a pause and code 0 stays a code.
type MediaStep struct {
	Code    uint16
	Pause   time.Duration
	IsPause bool
}

// Mouse carries button, motion, wheel, tone and audio-file output in one
// step. A negative button mask means release of the absolute value; a tone
// frequency <= 0 stops the active tone. Play is only honored when no tone is
// given.
type Mouse struct {
	Buttons    int
	HasButtons bool
	DX         int
	DY         int
	Wheel      int
	Tone       int
	HasTone    bool
	Play       string
}

func (KeyDown) step() {}
func (KeyUp) step()   {}
func (Delay) step()   {}
func (Text) step()    {}
func (Media) step()   {}
func (Mouse) step()   {}
