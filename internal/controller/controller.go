// Package controller runs the main event loop: it owns the active profile,
// watches the encoder and keypad, and drives macro playback.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"macropad/internal/action"
	"macropad/internal/input"
	"macropad/internal/led"
	"macropad/internal/profile"
)

// ErrNoProfiles is returned by Run when nothing loaded; the controller has
// no input mapping to serve and deliberately halts instead of looping.
var ErrNoProfiles = errors.New("no profiles loaded")

// NoProfilesMessage is shown on the display when startup finds no usable
// profile files.
const NoProfilesMessage = "NO MACRO FILES FOUND"

// DefaultTick is the polling interval of the event loop.
const DefaultTick = 10 * time.Millisecond

// Controller is single-threaded by design: one tick polls the encoder, then
// the encoder button, then the keypad queue, in that precedence. Macro
// playback blocks the loop; the only interruptible stretch is icon
// presentation during a profile switch.
type Controller struct {
	profiles []*profile.Profile
	hw       profile.Hardware
	source   input.Source
	interp   *action.Interpreter
	logger   *slog.Logger

	// Tick is the poll interval used by Run.
	Tick time.Duration

	active  int
	lastPos int
	lastBtn bool
	held    [profile.MaxKeys]bool
	ready   bool
}

func New(profiles []*profile.Profile, hw profile.Hardware, source input.Source, interp *action.Interpreter, logger *slog.Logger) *Controller {
	return &Controller{
		profiles: profiles,
		hw:       hw,
		source:   source,
		interp:   interp,
		logger:   logger,
		Tick:     DefaultTick,
	}
}

// Active returns the index of the active profile.
func (c *Controller) Active() int { return c.active }

// Run activates the first profile and polls until ctx is done. With zero
// profiles it reports the condition on the display and halts (blocks until
// cancellation), returning ErrNoProfiles.
func (c *Controller) Run(ctx context.Context) error {
	if len(c.profiles) == 0 {
		c.logger.Error("no profiles loaded, halting")
		c.hw.Surface.ShowMessage(NoProfilesMessage)
		<-ctx.Done()
		return ErrNoProfiles
	}

	c.lastBtn = c.source.EncoderPressed()
	c.switchTo(c.source.EncoderPosition())

	ticker := time.NewTicker(c.Tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.hw.Sink.ReleaseAll()
			return nil
		case <-ticker.C:
			c.TickOnce()
		}
	}
}

// TickOnce performs one poll iteration.
func (c *Controller) TickOnce() {
	// Encoder turn switches profiles. An interrupted activation leaves the
	// controller not ready: it retries next tick and, either way, any
	// key/button edge from this tick is discarded.
	pos := c.source.EncoderPosition()
	if pos != c.lastPos || !c.ready {
		if !c.switchTo(pos) {
			return
		}
	}

	key, pressed, ok := c.nextEdge()
	if !ok {
		return
	}

	binding, bound := c.profiles[c.active].Binding(key)
	if !bound {
		// Expected steady state for unused keys.
		return
	}

	if pressed {
		c.held[key] = true
		if key < led.NumKeys {
			c.hw.Pixels.Set(key, led.Highlight)
			c.hw.Pixels.Show()
		}
		c.interp.Play(binding.Sequence)
	} else {
		// A release whose press was never dispatched (a stale edge from
		// before a profile switch) has nothing to unwind; running the
		// release projection anyway could let go of keys another macro is
		// holding.
		if !c.held[key] {
			return
		}
		c.held[key] = false
		c.interp.Release(binding.Sequence)
		if key < led.NumKeys {
			c.hw.Pixels.Set(key, binding.Color)
			c.hw.Pixels.Show()
		}
	}
}

// nextEdge picks the one input edge this tick acts on: the encoder button
// (as a virtual 13th key, only when bound) takes precedence over the keypad
// queue.
func (c *Controller) nextEdge() (key int, pressed bool, ok bool) {
	btn := c.source.EncoderPressed()
	if btn != c.lastBtn {
		c.lastBtn = btn
		if !c.profiles[c.active].HasEncoderBinding() {
			return 0, false, false
		}
		return profile.EncoderKey, btn, true
	}
	ev, ok := c.source.PollKey()
	if !ok {
		return 0, false, false
	}
	return ev.Key, ev.Pressed, true
}

// switchTo activates the profile selected by the encoder position and
// reports whether activation completed. Held state is cleared before the
// switch; Activate's global release clears the host side.
func (c *Controller) switchTo(pos int) bool {
	c.active = mod(pos, len(c.profiles))
	c.lastPos = pos
	c.held = [profile.MaxKeys]bool{}
	c.ready = c.profiles[c.active].Activate(c.hw)
	if !c.ready {
		c.logger.Debug("profile activation interrupted", "profile", c.active)
	} else {
		c.logger.Info("profile active", "profile", c.active, "name", c.profiles[c.active].Name)
	}
	return c.ready
}

// mod is the floored modulo: total for every integer position as long as
// n >= 1.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
