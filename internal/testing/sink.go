// Package testing provides shared test doubles for the output sink.
package testing

import "fmt"

// RecordingSink implements hid.Sink. It records every call in order and
// tracks the asserted end state, so tests can check both call sequences and
// leak-freedom after unwinding.
type RecordingSink struct {
	Calls []string

	Keys    map[uint8]bool
	Buttons int
	Media   uint16
	MediaOn bool
	ToneOn  bool
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{Keys: make(map[uint8]bool)}
}

func (s *RecordingSink) record(format string, args ...any) {
	s.Calls = append(s.Calls, fmt.Sprintf(format, args...))
}

func (s *RecordingSink) KeyPress(code uint8) {
	s.record("press(%d)", code)
	s.Keys[code] = true
}

func (s *RecordingSink) KeyRelease(code uint8) {
	s.record("release(%d)", code)
	delete(s.Keys, code)
}

func (s *RecordingSink) TypeText(text string) {
	s.record("write(%q)", text)
}

func (s *RecordingSink) MediaPress(code uint16) {
	s.record("media-press(%d)", code)
	s.Media = code
	s.MediaOn = true
}

func (s *RecordingSink) MediaRelease() {
	s.record("media-release()")
	s.Media = 0
	s.MediaOn = false
}

func (s *RecordingSink) MousePress(mask int) {
	s.record("mouse-press(%d)", mask)
	s.Buttons |= mask
}

func (s *RecordingSink) MouseRelease(mask int) {
	s.record("mouse-release(%d)", mask)
	s.Buttons &^= mask
}

func (s *RecordingSink) MouseMove(dx, dy, wheel int) {
	s.record("mouse-move(%d,%d,%d)", dx, dy, wheel)
}

func (s *RecordingSink) ToneStart(freq int) {
	s.record("tone-start(%d)", freq)
	s.ToneOn = true
}

func (s *RecordingSink) ToneStop() {
	s.record("tone-stop()")
	s.ToneOn = false
}

func (s *RecordingSink) PlayFile(path string) {
	s.record("play-file(%s)", path)
}

func (s *RecordingSink) ReleaseAll() {
	s.record("release-all()")
	s.Keys = make(map[uint8]bool)
	s.Buttons = 0
	s.Media = 0
	s.MediaOn = false
	s.ToneOn = false
}

// Clean reports whether nothing is left asserted.
func (s *RecordingSink) Clean() bool {
	return len(s.Keys) == 0 && s.Buttons == 0 && !s.MediaOn && !s.ToneOn
}

// Reset clears the call log but keeps state.
func (s *RecordingSink) Reset() {
	s.Calls = nil
}
