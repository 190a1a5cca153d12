package controller_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macropad/internal/action"
	"macropad/internal/controller"
	"macropad/internal/hid"
	"macropad/internal/input"
	"macropad/internal/led"
	"macropad/internal/profile"
	padtest "macropad/internal/testing"
)

type scriptedSource struct {
	pos   int
	btn   bool
	queue []input.KeyEvent
}

func (s *scriptedSource) EncoderPosition() int { return s.pos }
func (s *scriptedSource) EncoderPressed() bool { return s.btn }
func (s *scriptedSource) PollKey() (input.KeyEvent, bool) {
	if len(s.queue) == 0 {
		return input.KeyEvent{}, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

type fakePixels struct {
	colors [led.NumKeys]led.Color
	log    []led.Color
}

func (f *fakePixels) Set(i int, c led.Color) {
	if i >= 0 && i < led.NumKeys {
		f.colors[i] = c
		f.log = append(f.log, c)
	}
}
func (f *fakePixels) Show() {}

type fakeSurface struct {
	title   string
	message string
	menus   int
}

func (f *fakeSurface) SetLabel(int, string)    {}
func (f *fakeSurface) SetTitle(text string)    { f.title = text }
func (f *fakeSurface) ShowMenu()               { f.menus++ }
func (f *fakeSurface) ShowMessage(text string) { f.message = text }

// switchablePresenter can be told to fail the next presentation, simulating
// an encoder turn mid-animation.
type switchablePresenter struct {
	results []bool
	calls   int
}

func (p *switchablePresenter) Present(string) bool {
	p.calls++
	if len(p.results) == 0 {
		return true
	}
	r := p.results[0]
	p.results = p.results[1:]
	return r
}

type harness struct {
	ctrl      *controller.Controller
	sink      *padtest.RecordingSink
	pixels    *fakePixels
	surface   *fakeSurface
	presenter *switchablePresenter
	source    *scriptedSource
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHarness(profiles []*profile.Profile) *harness {
	h := &harness{
		sink:      padtest.NewRecordingSink(),
		pixels:    &fakePixels{},
		surface:   &fakeSurface{},
		presenter: &switchablePresenter{},
		source:    &scriptedSource{},
	}
	logger := discardLogger()
	interp := action.NewInterpreter(h.sink, logger)
	interp.Sleep = func(time.Duration) {}
	h.ctrl = controller.New(
		profiles,
		profile.Hardware{Sink: h.sink, Pixels: h.pixels, Surface: h.surface, Icons: h.presenter},
		h.source,
		interp,
		logger,
	)
	return h
}

func twoProfiles() []*profile.Profile {
	copySeq := action.Sequence{
		action.KeyDown{Code: hid.KeyLeftControl},
		action.KeyDown{Code: hid.KeyC},
		action.KeyUp{Code: hid.KeyC},
		action.KeyUp{Code: hid.KeyLeftControl},
	}
	holdSeq := action.Sequence{
		action.KeyDown{Code: hid.KeyLeftControl},
	}
	p0 := &profile.Profile{
		Name: "First",
		Keys: []profile.KeyBinding{
			{Color: led.Color{R: 255}, Label: "Copy", Sequence: copySeq},
			{Color: led.Color{G: 255}, Label: "Hold", Sequence: holdSeq},
		},
	}
	p1 := &profile.Profile{Name: "Second"}
	return []*profile.Profile{p0, p1}
}

// start runs the initial activation the same way Run does.
func start(h *harness) {
	h.ctrl.TickOnce()
}

func TestEncoderWrapsByModulo(t *testing.T) {
	tests := []struct {
		name     string
		position int
		expected int
	}{
		{"zero", 0, 0},
		{"wraps forward", 3, 1},
		{"exact multiple", 4, 0},
		{"negative wraps", -1, 1},
		{"large negative", -7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(twoProfiles())
			h.source.pos = tt.position
			h.ctrl.TickOnce()
			assert.Equal(t, tt.expected, h.ctrl.Active())
		})
	}
}

func TestKeyPressPlaysSequenceAndHighlights(t *testing.T) {
	h := newHarness(twoProfiles())
	start(h)
	h.sink.Reset()

	h.source.queue = []input.KeyEvent{{Key: 0, Pressed: true}}
	h.ctrl.TickOnce()

	assert.Equal(t, []string{
		"press(224)", "press(6)", "release(6)", "release(224)",
	}, h.sink.Calls)
	assert.Equal(t, led.Highlight, h.pixels.colors[0])

	h.sink.Reset()
	h.source.queue = []input.KeyEvent{{Key: 0, Pressed: false}}
	h.ctrl.TickOnce()

	// Release unwinds every press step, then lingering media state is
	// dropped, then the LED returns to the bound color.
	assert.Equal(t, []string{
		"release(224)", "release(6)", "media-release()",
	}, h.sink.Calls)
	assert.Equal(t, led.Color{R: 255}, h.pixels.colors[0])
	assert.True(t, h.sink.Clean())
}

func TestUnboundKeyEventIsDropped(t *testing.T) {
	h := newHarness(twoProfiles())
	start(h)
	h.sink.Reset()
	before := h.pixels.colors

	h.source.queue = []input.KeyEvent{{Key: 7, Pressed: true}}
	h.ctrl.TickOnce()

	assert.Empty(t, h.sink.Calls, "unbound key must produce zero sink calls")
	assert.Equal(t, before, h.pixels.colors)
}

func TestEncoderButtonNeedsThirteenthBinding(t *testing.T) {
	profiles := twoProfiles()
	h := newHarness(profiles)
	start(h)
	h.sink.Reset()

	// No 13th binding: the edge is silently dropped.
	h.source.btn = true
	h.ctrl.TickOnce()
	assert.Empty(t, h.sink.Calls)

	// Bind the encoder button and try again.
	seq := action.Sequence{action.KeyDown{Code: hid.KeyS}, action.KeyUp{Code: hid.KeyS}}
	profiles[0].Keys = append(profiles[0].Keys, make([]profile.KeyBinding, profile.EncoderKey-len(profiles[0].Keys))...)
	profiles[0].Keys = append(profiles[0].Keys, profile.KeyBinding{Label: "Save", Sequence: seq})

	before := h.pixels.colors
	h.source.btn = false
	h.ctrl.TickOnce() // release edge of the dropped press, now bound
	h.sink.Reset()

	h.source.btn = true
	h.ctrl.TickOnce()
	assert.Equal(t, []string{"press(22)", "release(22)"}, h.sink.Calls)
	assert.Equal(t, before, h.pixels.colors, "virtual key has no LED to highlight")
}

func TestInterruptedSwitchDiscardsPendingKey(t *testing.T) {
	h := newHarness(twoProfiles())
	start(h)
	h.sink.Reset()

	// Encoder moves and the activation is interrupted; the queued key edge
	// is not dispatched this tick.
	h.presenter.results = []bool{false, true}
	h.source.pos = 1
	h.source.queue = []input.KeyEvent{{Key: 0, Pressed: true}}
	h.ctrl.TickOnce()

	assert.Equal(t, 1, h.ctrl.Active())
	assert.Equal(t, []string{"release-all()"}, h.sink.Calls)
	assert.Len(t, h.source.queue, 1, "edge stays queued while activation is pending")
	assert.Equal(t, 1, h.surface.menus, "menu untouched by the interrupted activation")

	// Next tick retries activation even though the encoder settled. The
	// stale edge is then polled against the new profile, which has no
	// binding for it, so it is dropped.
	h.sink.Reset()
	h.ctrl.TickOnce()
	assert.Equal(t, []string{"release-all()"}, h.sink.Calls)
	assert.Equal(t, 2, h.surface.menus)
	assert.Empty(t, h.source.queue)
}

func TestQueuedKeyPlaysAfterSuccessfulRetry(t *testing.T) {
	h := newHarness(twoProfiles())
	start(h)

	h.presenter.results = []bool{false}
	h.source.pos = 2 // back to profile 0, which has bindings
	h.ctrl.TickOnce()
	h.sink.Reset()

	// The retry succeeds this tick, so the queued press is dispatched
	// against the freshly activated profile.
	h.source.queue = []input.KeyEvent{{Key: 0, Pressed: true}}
	h.ctrl.TickOnce()
	assert.Equal(t, []string{
		"release-all()", "press(224)", "press(6)", "release(6)", "release(224)",
	}, h.sink.Calls)
	assert.Equal(t, led.Highlight, h.pixels.colors[0])
}

func TestReleaseWithoutPressIsIgnored(t *testing.T) {
	h := newHarness(twoProfiles())
	start(h)
	h.sink.Reset()

	// Hold the modifier through key 1, then deliver a release for key 0
	// whose press was never dispatched. The stale edge must not run key
	// 0's release projection, which would let go of the modifier.
	h.source.queue = []input.KeyEvent{{Key: 1, Pressed: true}}
	h.ctrl.TickOnce()
	require.False(t, h.sink.Clean())
	h.sink.Reset()

	h.source.queue = []input.KeyEvent{{Key: 0, Pressed: false}}
	h.ctrl.TickOnce()
	assert.Empty(t, h.sink.Calls)
	assert.False(t, h.sink.Clean(), "modifier still held")
}

func TestSwitchClearsHeldState(t *testing.T) {
	h := newHarness(twoProfiles())
	start(h)

	h.source.queue = []input.KeyEvent{{Key: 1, Pressed: true}}
	h.ctrl.TickOnce()
	require.False(t, h.sink.Clean(), "macro holds the modifier")

	h.source.pos = 1
	h.ctrl.TickOnce()
	assert.True(t, h.sink.Clean(), "profile switch releases everything")
}

func TestRunHaltsWithoutProfiles(t *testing.T) {
	h := newHarness(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.ctrl.Run(ctx) }()

	// The halt message appears and no input is ever processed.
	require.Eventually(t, func() bool {
		return h.surface.message == controller.NoProfilesMessage
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, controller.ErrNoProfiles)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Empty(t, h.sink.Calls)
}

func TestRunReleasesAllOnShutdown(t *testing.T) {
	h := newHarness(twoProfiles())
	h.ctrl.Tick = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.ctrl.Run(ctx) }()

	require.Eventually(t, func() bool { return h.surface.menus > 0 }, time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, "release-all()", h.sink.Calls[len(h.sink.Calls)-1])
}
