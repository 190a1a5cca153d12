package cmd

import (
	"fmt"
	"log/slog"

	"macropad/internal/profile"
)

// Check loads the profile directory the same way run does and reports what
// it finds, so broken definitions surface without plugging in hardware.
type Check struct {
	Profiles string `help:"Directory containing profile YAML files" default:"profiles" env:"MACROPAD_PROFILES" arg:"" optional:""`
}

func (c *Check) Run(logger *slog.Logger) error {
	loader := &profile.Loader{Logger: logger}
	profiles, err := loader.LoadDir(c.Profiles)
	if err != nil {
		return err
	}
	for i, p := range profiles {
		encoder := ""
		if p.HasEncoderBinding() {
			encoder = " +encoder"
		}
		fmt.Printf("%2d  %-20s %2d keys%s  icon=%s\n", i, p.Name, len(p.Keys), encoder, p.Icon)
	}
	if len(profiles) == 0 {
		return fmt.Errorf("no usable profiles in %s", c.Profiles)
	}
	return nil
}
