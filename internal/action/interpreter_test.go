package action_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macropad/internal/action"
	"macropad/internal/hid"
	padtest "macropad/internal/testing"
)

func newTestInterpreter(sink hid.Sink, slept *[]time.Duration) *action.Interpreter {
	in := action.NewInterpreter(sink, slog.New(slog.NewTextHandler(io.Discard, nil)))
	in.Sleep = func(d time.Duration) {
		if slept != nil {
			*slept = append(*slept, d)
		}
	}
	return in
}

func TestPlayKeySequenceOrder(t *testing.T) {
	// Ctrl+C: press ctrl, press c, release c, release ctrl.
	seq := action.Sequence{
		action.KeyDown{Code: hid.KeyLeftControl},
		action.KeyDown{Code: hid.KeyC},
		action.KeyUp{Code: hid.KeyC},
		action.KeyUp{Code: hid.KeyLeftControl},
	}
	sink := padtest.NewRecordingSink()
	newTestInterpreter(sink, nil).Play(seq)

	assert.Equal(t, []string{
		"press(224)",
		"press(6)",
		"release(6)",
		"release(224)",
	}, sink.Calls)
	assert.True(t, sink.Clean())
}

func TestPlayMediaInterleavesReleases(t *testing.T) {
	seq := action.Sequence{
		action.Media{Items: []action.MediaStep{
			{Code: hid.ConsumerScanNextTrack},
			{Pause: 100 * time.Millisecond, IsPause: true},
			{Code: hid.ConsumerScanPrevTrack},
		}},
	}
	sink := padtest.NewRecordingSink()
	var slept []time.Duration
	newTestInterpreter(sink, &slept).Play(seq)

	assert.Equal(t, []string{
		"media-release()",
		"media-press(181)",
		"media-release()",
		"media-press(182)",
	}, sink.Calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, slept)
}

func TestPlayMediaZeroPauseIsNotACode(t *testing.T) {
	seq := action.Sequence{
		action.Media{Items: []action.MediaStep{
			{Code: hid.ConsumerPlayPause},
			{IsPause: true},
			{Code: hid.ConsumerStop},
		}},
	}
	sink := padtest.NewRecordingSink()
	var slept []time.Duration
	newTestInterpreter(sink, &slept).Play(seq)

	assert.Equal(t, []string{
		"media-release()",
		"media-press(205)",
		"media-release()",
		"media-press(183)",
	}, sink.Calls)
	assert.Equal(t, []time.Duration{0}, slept)
}

func TestPlayMouse(t *testing.T) {
	tests := []struct {
		name     string
		step     action.Mouse
		expected []string
	}{
		{
			name:     "press buttons and move",
			step:     action.Mouse{Buttons: hid.MouseLeft, HasButtons: true, DX: 5, DY: -3},
			expected: []string{"mouse-press(1)", "mouse-move(5,-3,0)"},
		},
		{
			name:     "negative mask releases",
			step:     action.Mouse{Buttons: -hid.MouseRight, HasButtons: true},
			expected: []string{"mouse-release(2)", "mouse-move(0,0,0)"},
		},
		{
			name:     "tone start stops prior tone first",
			step:     action.Mouse{Tone: 440, HasTone: true},
			expected: []string{"mouse-move(0,0,0)", "tone-stop()", "tone-start(440)"},
		},
		{
			name:     "non-positive tone stops",
			step:     action.Mouse{Tone: 0, HasTone: true},
			expected: []string{"mouse-move(0,0,0)", "tone-stop()"},
		},
		{
			name:     "play file",
			step:     action.Mouse{Play: "ding.wav"},
			expected: []string{"mouse-move(0,0,0)", "play-file(ding.wav)"},
		},
		{
			name:     "tone wins over play",
			step:     action.Mouse{Tone: 880, HasTone: true, Play: "ding.wav"},
			expected: []string{"mouse-move(0,0,0)", "tone-stop()", "tone-start(880)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := padtest.NewRecordingSink()
			newTestInterpreter(sink, nil).Play(action.Sequence{tt.step})
			assert.Equal(t, tt.expected, sink.Calls)
		})
	}
}

func TestPlayDelayAndText(t *testing.T) {
	sink := padtest.NewRecordingSink()
	var slept []time.Duration
	newTestInterpreter(sink, &slept).Play(action.Sequence{
		action.Delay{Duration: 250 * time.Millisecond},
		action.Text{S: "Foo"},
	})
	assert.Equal(t, []string{`write("Foo")`}, sink.Calls)
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, slept)
}

func TestPlayUnknownStepIsSkipped(t *testing.T) {
	sink := padtest.NewRecordingSink()
	newTestInterpreter(sink, nil).Play(action.Sequence{
		nil, // malformed entry
		action.KeyDown{Code: hid.KeyA},
	})
	assert.Equal(t, []string{"press(4)"}, sink.Calls)
}

// releaseTestSequence holds every kind of assertion a sequence can make.
func releaseTestSequence() action.Sequence {
	return action.Sequence{
		action.KeyDown{Code: hid.KeyLeftControl},
		action.KeyDown{Code: hid.KeyC},
		action.KeyUp{Code: hid.KeyC},
		action.Media{Items: []action.MediaStep{{Code: hid.ConsumerPlayPause}}},
		action.Mouse{Buttons: hid.MouseLeft, HasButtons: true, DX: 1},
		action.Mouse{Tone: 440, HasTone: true},
		action.Text{S: "x"},
	}
}

func TestReleaseUnwindsEveryPrefix(t *testing.T) {
	// Whatever prefix of the sequence ran, Release must leave nothing
	// asserted: keys, buttons, media and tone all cleared.
	seq := releaseTestSequence()
	for prefix := 0; prefix <= len(seq); prefix++ {
		sink := padtest.NewRecordingSink()
		in := newTestInterpreter(sink, nil)
		in.Play(seq[:prefix])
		in.Release(seq)
		assert.True(t, sink.Clean(), "prefix of length %d left state asserted", prefix)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	seq := releaseTestSequence()
	sink := padtest.NewRecordingSink()
	in := newTestInterpreter(sink, nil)
	in.Play(seq)

	in.Release(seq)
	require.True(t, sink.Clean())
	firstState := *sink

	in.Release(seq)
	assert.True(t, sink.Clean())
	assert.Equal(t, firstState.Keys, sink.Keys)
	assert.Equal(t, firstState.Buttons, sink.Buttons)
	assert.Equal(t, firstState.MediaOn, sink.MediaOn)
	assert.Equal(t, firstState.ToneOn, sink.ToneOn)
}

func TestReleaseKeepsNegativePolarityAndOtherMacros(t *testing.T) {
	// A KeyUp entry (negative polarity) must not be re-released, and keys
	// held by a different macro stay down.
	sink := padtest.NewRecordingSink()
	in := newTestInterpreter(sink, nil)

	holdMeta := action.Sequence{action.KeyDown{Code: hid.KeyLeftGUI}}
	tapA := action.Sequence{
		action.KeyDown{Code: hid.KeyA},
		action.KeyUp{Code: hid.KeyA},
	}
	in.Play(holdMeta)
	in.Play(tapA)
	in.Release(tapA)

	assert.True(t, sink.Keys[hid.KeyLeftGUI], "meta held by another macro must stay down")
	assert.False(t, sink.Keys[hid.KeyA])
	// KeyUp entries produce no release call during unwinding.
	assert.Equal(t, []string{
		"press(227)",
		"press(4)",
		"release(4)",
		"release(4)",
		"media-release()",
	}, sink.Calls)
}

func TestReleaseStopsToneOnlyWithoutButtons(t *testing.T) {
	// A mouse step carrying both buttons and tone releases the buttons but
	// leaves the tone to the next tone-carrying step, mirroring playback.
	seq := action.Sequence{
		action.Mouse{Buttons: hid.MouseLeft, HasButtons: true, Tone: 440, HasTone: true},
	}
	sink := padtest.NewRecordingSink()
	in := newTestInterpreter(sink, nil)
	in.Release(seq)
	assert.Equal(t, []string{"mouse-release(1)", "media-release()"}, sink.Calls)
}
