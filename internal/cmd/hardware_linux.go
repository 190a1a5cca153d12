package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"macropad/internal/console"
	"macropad/internal/hid"
	"macropad/internal/input"
)

func (r *Run) openHardware(logger *slog.Logger) (*hardware, error) {
	if r.Console || r.Device == "" {
		if r.Device == "" && !r.Console {
			logger.Info("no input device given, starting terminal simulator")
		}
		return openConsole()
	}

	sink, err := hid.NewUinputSink(logger)
	if err != nil {
		return nil, fmt.Errorf("open output sink: %w", err)
	}
	source, err := input.NewEvdevSource(input.DefaultEvdevConfig(r.Device), logger)
	if err != nil {
		_ = sink.Close()
		return nil, fmt.Errorf("open input source: %w", err)
	}

	// The pad's LEDs and OLED speak over their own transport; without one
	// attached, the terminal simulator doubles as the render surface.
	con, err := console.New()
	if err != nil {
		_ = sink.Close()
		_ = source.Close()
		return nil, fmt.Errorf("open render surface: %w", err)
	}

	// Quit when either the render surface or the input device goes away.
	done := make(chan struct{})
	go func() {
		select {
		case <-con.Done():
		case <-source.Done():
			logger.Error("input device disconnected, shutting down")
		}
		close(done)
	}()

	return &hardware{
		sink:    sink,
		pixels:  con,
		surface: con,
		blitter: con,
		source:  source,
		done:    done,
		closers: []io.Closer{source, sink, closerFunc(con.Close)},
	}, nil
}
