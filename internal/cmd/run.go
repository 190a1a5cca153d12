package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"macropad/internal/action"
	"macropad/internal/controller"
	"macropad/internal/display"
	"macropad/internal/hid"
	"macropad/internal/input"
	"macropad/internal/led"
	"macropad/internal/profile"
)

// Run starts the controller against real hardware (uinput output, evdev
// input) or, with --console, against the terminal simulator.
type Run struct {
	Profiles string `help:"Directory containing profile YAML files" default:"profiles" env:"MACROPAD_PROFILES"`
	Images   string `help:"Directory containing profile icons" default:"images" env:"MACROPAD_IMAGES"`
	Device   string `help:"evdev input device node of the pad" env:"MACROPAD_DEVICE"`
	Console  bool   `help:"Use the terminal simulator instead of real hardware"`

	TickInterval  time.Duration `help:"Event loop poll interval" default:"10ms"`
	IconDuration  time.Duration `help:"How long to show a profile icon" default:"1s"`
	FrameInterval time.Duration `help:"Icon animation frame interval" default:"50ms"`
}

// hardware is what a backend must provide to the controller.
type hardware struct {
	sink    hid.Sink
	pixels  led.Pixels
	surface display.Surface
	blitter display.Blitter
	source  input.Source
	done    <-chan struct{} // optional: closed when the backend wants to quit
	closers []io.Closer
}

func (r *Run) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader := &profile.Loader{Logger: logger}
	profiles, err := loader.LoadDir(r.Profiles)
	if err != nil {
		return err
	}

	hw, err := r.openHardware(logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range hw.closers {
			_ = c.Close()
		}
	}()

	if hw.done != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go func() {
			select {
			case <-hw.done:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	// The trace wrapper is level-gated by the handler, so it is free unless
	// --log.level=trace is set.
	sink := hid.Sink(hid.TraceSink{Next: hw.sink, Logger: logger})

	presenter := display.NewIconPresenter(
		r.Images, hw.blitter, hw.source, r.FrameInterval, r.IconDuration, logger)

	ctrl := controller.New(
		profiles,
		profile.Hardware{Sink: sink, Pixels: hw.pixels, Surface: hw.surface, Icons: presenter},
		hw.source,
		action.NewInterpreter(sink, logger),
		logger,
	)
	ctrl.Tick = r.TickInterval

	logger.Info("macropad running", "profiles", len(profiles), "console", r.Console)
	if err := ctrl.Run(ctx); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}
