package action

import (
	"log/slog"
	"time"

	"macropad/internal/hid"
)

// Interpreter plays and unwinds macro sequences against a sink.
//
// Play runs a sequence to completion; Delay steps block. Release runs the
// release-only projection of the same sequence and must be safe to call even
// if Play was cut short by a profile switch, so it never assumes any press
// actually happened.
type Interpreter struct {
	sink   hid.Sink
	logger *slog.Logger

	// Sleep is called for Delay steps and media pauses. Tests replace it.
	Sleep func(time.Duration)
}

func NewInterpreter(sink hid.Sink, logger *slog.Logger) *Interpreter {
	return &Interpreter{sink: sink, logger: logger, Sleep: time.Sleep}
}

// Play executes the sequence in order. A malformed step is skipped; it never
// aborts the rest of the sequence.
func (in *Interpreter) Play(seq Sequence) {
	for _, step := range seq {
		switch s := step.(type) {
		case KeyDown:
			in.sink.KeyPress(s.Code)
		case KeyUp:
			in.sink.KeyRelease(s.Code)
		case Delay:
			in.Sleep(s.Duration)
		case Text:
			in.sink.TypeText(s.S)
		case Media:
			for _, item := range s.Items {
				if item.IsPause {
					in.Sleep(item.Pause)
					continue
				}
				in.sink.MediaRelease()
				in.sink.MediaPress(item.Code)
			}
		case Mouse:
			if s.HasButtons {
				if s.Buttons >= 0 {
					in.sink.MousePress(s.Buttons)
				} else {
					in.sink.MouseRelease(-s.Buttons)
				}
			}
			in.sink.MouseMove(s.DX, s.DY, s.Wheel)
			switch {
			case s.HasTone && s.Tone > 0:
				in.sink.ToneStop()
				in.sink.ToneStart(s.Tone)
			case s.HasTone:
				in.sink.ToneStop()
			case s.Play != "":
				in.sink.PlayFile(s.Play)
			}
		default:
			in.logger.Debug("skipping unknown sequence step", "step", step)
		}
	}
}

// Release unwinds whatever the sequence may have asserted. Keys and mouse
// buttons are released individually rather than via ReleaseAll, so a
// modifier or button held by a different, still-active macro stays down
// (rollover combinations). Consumer-control state is released
// unconditionally at the end; tone is stopped only for mouse steps that
// carry no button mask, matching how press handles them. Release is
// idempotent.
func (in *Interpreter) Release(seq Sequence) {
	for _, step := range seq {
		switch s := step.(type) {
		case KeyDown:
			in.sink.KeyRelease(s.Code)
		case Mouse:
			if s.HasButtons {
				if s.Buttons >= 0 {
					in.sink.MouseRelease(s.Buttons)
				}
			} else if s.HasTone {
				in.sink.ToneStop()
			}
		}
	}
	in.sink.MediaRelease()
}
