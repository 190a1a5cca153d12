package hid

import (
	"fmt"
	"log/slog"

	"github.com/bendahl/uinput"
)

// UinputSink emits macro output through virtual uinput keyboard and mouse
// devices. It tracks what it has asserted so ReleaseAll and MediaRelease can
// unwind exactly that and nothing more.
type UinputSink struct {
	kb     uinput.Keyboard
	mouse  uinput.Mouse
	logger *slog.Logger

	pressed map[int]bool // linux keycodes currently down
	media   int          // linux keycode of the asserted consumer code, 0 if none
	buttons int          // asserted mouse button mask
}

// NewUinputSink creates the virtual devices under /dev/uinput.
func NewUinputSink(logger *slog.Logger) (*UinputSink, error) {
	kb, err := uinput.CreateKeyboard("/dev/uinput", []byte("macropad-keyboard"))
	if err != nil {
		return nil, fmt.Errorf("create virtual keyboard: %w", err)
	}
	mouse, err := uinput.CreateMouse("/dev/uinput", []byte("macropad-mouse"))
	if err != nil {
		_ = kb.Close()
		return nil, fmt.Errorf("create virtual mouse: %w", err)
	}
	return &UinputSink{
		kb:      kb,
		mouse:   mouse,
		logger:  logger,
		pressed: make(map[int]bool),
	}, nil
}

// Close releases everything and destroys the virtual devices.
func (s *UinputSink) Close() error {
	s.ReleaseAll()
	err := s.kb.Close()
	if merr := s.mouse.Close(); err == nil {
		err = merr
	}
	return err
}

func (s *UinputSink) KeyPress(code uint8) {
	lc, ok := hidToLinux[code]
	if !ok {
		s.logger.Debug("no linux keycode for usage", "code", code)
		return
	}
	if err := s.kb.KeyDown(lc); err != nil {
		s.logger.Warn("key down failed", "code", lc, "error", err)
		return
	}
	s.pressed[lc] = true
}

func (s *UinputSink) KeyRelease(code uint8) {
	lc, ok := hidToLinux[code]
	if !ok {
		return
	}
	if err := s.kb.KeyUp(lc); err != nil {
		s.logger.Warn("key up failed", "code", lc, "error", err)
		return
	}
	delete(s.pressed, lc)
}

func (s *UinputSink) TypeText(text string) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		code := CharToHID(c)
		if code == 0 {
			s.logger.Debug("unsupported character in text", "char", string(c))
			continue
		}
		if NeedsShift(c) {
			s.KeyPress(KeyLeftShift)
		}
		s.KeyPress(code)
		s.KeyRelease(code)
		if NeedsShift(c) {
			s.KeyRelease(KeyLeftShift)
		}
	}
}

func (s *UinputSink) MediaPress(code uint16) {
	lc, ok := consumerToLinux[code]
	if !ok {
		s.logger.Debug("no linux keycode for consumer usage", "code", code)
		return
	}
	if err := s.kb.KeyDown(lc); err != nil {
		s.logger.Warn("media key down failed", "code", lc, "error", err)
		return
	}
	s.media = lc
}

func (s *UinputSink) MediaRelease() {
	if s.media == 0 {
		return
	}
	if err := s.kb.KeyUp(s.media); err != nil {
		s.logger.Warn("media key up failed", "code", s.media, "error", err)
	}
	s.media = 0
}

func (s *UinputSink) MousePress(mask int) {
	if mask&MouseLeft != 0 {
		_ = s.mouse.LeftPress()
	}
	if mask&MouseRight != 0 {
		_ = s.mouse.RightPress()
	}
	if mask&MouseMiddle != 0 {
		_ = s.mouse.MiddlePress()
	}
	s.buttons |= mask
}

func (s *UinputSink) MouseRelease(mask int) {
	if mask&MouseLeft != 0 {
		_ = s.mouse.LeftRelease()
	}
	if mask&MouseRight != 0 {
		_ = s.mouse.RightRelease()
	}
	if mask&MouseMiddle != 0 {
		_ = s.mouse.MiddleRelease()
	}
	s.buttons &^= mask
}

func (s *UinputSink) MouseMove(dx, dy, wheel int) {
	if dx != 0 || dy != 0 {
		if err := s.mouse.Move(int32(dx), int32(dy)); err != nil {
			s.logger.Warn("mouse move failed", "error", err)
		}
	}
	if wheel != 0 {
		if err := s.mouse.Wheel(false, int32(wheel)); err != nil {
			s.logger.Warn("mouse wheel failed", "error", err)
		}
	}
}

// ToneStart is a no-op on the host side: there is no speaker behind a uinput
// sink. The call is logged so profiles using tones still show activity.
func (s *UinputSink) ToneStart(freq int) {
	s.logger.Debug("tone start ignored by uinput sink", "freq", freq)
}

func (s *UinputSink) ToneStop() {}

func (s *UinputSink) PlayFile(path string) {
	s.logger.Debug("play file ignored by uinput sink", "path", path)
}

func (s *UinputSink) ReleaseAll() {
	for lc := range s.pressed {
		if err := s.kb.KeyUp(lc); err != nil {
			s.logger.Warn("key up failed", "code", lc, "error", err)
		}
		delete(s.pressed, lc)
	}
	s.MediaRelease()
	if s.buttons != 0 {
		s.MouseRelease(s.buttons)
	}
}
