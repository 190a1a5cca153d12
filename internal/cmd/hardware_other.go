//go:build !linux

package cmd

import (
	"errors"
	"log/slog"
)

func (r *Run) openHardware(logger *slog.Logger) (*hardware, error) {
	if r.Device != "" {
		return nil, errors.New("evdev input devices are only supported on linux; use --console")
	}
	return openConsole()
}
