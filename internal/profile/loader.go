package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"macropad/internal/action"
	"macropad/internal/hid"
	"macropad/internal/led"
)

// Loader reads profile definitions from YAML files. A malformed file is
// logged and skipped; it never aborts the rest of the directory.
type Loader struct {
	Logger *slog.Logger
}

// profileFile is the on-disk schema of one profile.
type profileFile struct {
	Name string    `yaml:"name"`
	Icon string    `yaml:"icon"`
	Keys []keyFile `yaml:"keys"`
}

type keyFile struct {
	Color    yaml.Node  `yaml:"color"`
	Label    string     `yaml:"label"`
	Sequence []stepFile `yaml:"sequence"`
}

// stepFile is one sequence step: a mapping with exactly one of these fields.
// Polymorphic scalars decode into value yaml.Node fields (a zero Kind means
// the field was absent).
type stepFile struct {
	Press   yaml.Node   `yaml:"press"`
	Release yaml.Node   `yaml:"release"`
	Delay   *float64    `yaml:"delay"`
	Text    *string     `yaml:"text"`
	Media   []yaml.Node `yaml:"media"`
	Mouse   *mouseFile  `yaml:"mouse"`
}

type mouseFile struct {
	Buttons yaml.Node `yaml:"buttons"`
	X       int       `yaml:"x"`
	Y       int       `yaml:"y"`
	Wheel   int       `yaml:"wheel"`
	Tone    *int      `yaml:"tone"`
	Play    string    `yaml:"play"`
}

// LoadDir enumerates *.yaml/*.yml files in dir sorted by name and loads each
// one. The returned slice holds only the profiles that parsed cleanly; the
// error is non-nil only when the directory itself cannot be read.
func (l *Loader) LoadDir(dir string) ([]*Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var profiles []*Profile
	for _, name := range names {
		path := filepath.Join(dir, name)
		p, err := l.LoadFile(path, len(profiles))
		if err != nil {
			l.Logger.Error("skipping profile", "file", name, "error", err)
			continue
		}
		profiles = append(profiles, p)
		l.Logger.Info("loaded profile", "file", name, "name", p.Name, "keys", len(p.Keys))
	}
	return profiles, nil
}

// LoadFile parses and validates a single profile definition. index is the
// profile's position in the loaded list, used for the default icon name.
func (l *Loader) LoadFile(path string, index int) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var pf profileFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if pf.Name == "" {
		return nil, fmt.Errorf("missing profile name")
	}
	if len(pf.Keys) > MaxKeys {
		return nil, fmt.Errorf("too many key bindings: %d (max %d)", len(pf.Keys), MaxKeys)
	}

	p := &Profile{
		Name: pf.Name,
		Icon: pf.Icon,
	}
	if p.Icon == "" {
		p.Icon = fmt.Sprintf("%d.bmp", index)
	}

	for i, kf := range pf.Keys {
		binding, err := buildBinding(kf)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		p.Keys = append(p.Keys, binding)
	}
	return p, nil
}

func buildBinding(kf keyFile) (KeyBinding, error) {
	color, err := parseColor(&kf.Color)
	if err != nil {
		return KeyBinding{}, err
	}
	var seq action.Sequence
	for i, sf := range kf.Sequence {
		step, err := buildStep(sf)
		if err != nil {
			return KeyBinding{}, fmt.Errorf("step %d: %w", i, err)
		}
		seq = append(seq, step)
	}
	return KeyBinding{Color: color, Label: kf.Label, Sequence: seq}, nil
}

func buildStep(sf stepFile) (action.Step, error) {
	set := 0
	for _, present := range []bool{
		sf.Press.Kind != 0, sf.Release.Kind != 0, sf.Delay != nil,
		sf.Text != nil, sf.Media != nil, sf.Mouse != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("a step needs exactly one of press/release/delay/text/media/mouse")
	}

	switch {
	case sf.Press.Kind != 0:
		code, err := parseKeycode(&sf.Press)
		if err != nil {
			return nil, err
		}
		return action.KeyDown{Code: code}, nil
	case sf.Release.Kind != 0:
		code, err := parseKeycode(&sf.Release)
		if err != nil {
			return nil, err
		}
		return action.KeyUp{Code: code}, nil
	case sf.Delay != nil:
		if *sf.Delay < 0 {
			return nil, fmt.Errorf("negative delay")
		}
		return action.Delay{Duration: time.Duration(*sf.Delay * float64(time.Second))}, nil
	case sf.Text != nil:
		return action.Text{S: *sf.Text}, nil
	case sf.Media != nil:
		media := action.Media{}
		for _, n := range sf.Media {
			item, err := parseMediaItem(n)
			if err != nil {
				return nil, err
			}
			media.Items = append(media.Items, item)
		}
		return media, nil
	default:
		return buildMouse(sf.Mouse)
	}
}

func buildMouse(mf *mouseFile) (action.Step, error) {
	m := action.Mouse{DX: mf.X, DY: mf.Y, Wheel: mf.Wheel, Play: mf.Play}
	if mf.Buttons.Kind != 0 {
		mask, err := parseButtons(&mf.Buttons)
		if err != nil {
			return nil, err
		}
		m.Buttons = mask
		m.HasButtons = true
	}
	if mf.Tone != nil {
		m.Tone = *mf.Tone
		m.HasTone = true
	}
	return m, nil
}

func parseColor(n *yaml.Node) (led.Color, error) {
	if n.Kind == 0 {
		return led.Color{}, nil // color omitted, LED stays off
	}
	var rgb uint32
	if err := n.Decode(&rgb); err == nil {
		return led.FromRGB(rgb), nil
	}
	var s string
	if err := n.Decode(&s); err != nil {
		return led.Color{}, fmt.Errorf("color must be an integer or hex string")
	}
	return led.ParseHex(s)
}

func parseKeycode(n *yaml.Node) (uint8, error) {
	var code uint8
	if err := n.Decode(&code); err == nil {
		return code, nil
	}
	var name string
	if err := n.Decode(&name); err != nil {
		return 0, fmt.Errorf("keycode must be an integer or key name")
	}
	code, ok := hid.KeycodeByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown key name %q", name)
	}
	return code, nil
}

// parseMediaItem accepts a consumer-code name, an integer code, or a float
// pause in seconds. Floats are always pauses, including 0.0, so the YAML tag
// decides rather than the value.
func parseMediaItem(n yaml.Node) (action.MediaStep, error) {
	if n.ShortTag() == "!!float" {
		var pause float64
		if err := n.Decode(&pause); err != nil {
			return action.MediaStep{}, fmt.Errorf("bad media pause: %w", err)
		}
		if pause < 0 {
			return action.MediaStep{}, fmt.Errorf("negative media pause")
		}
		return action.MediaStep{Pause: time.Duration(pause * float64(time.Second)), IsPause: true}, nil
	}
	var code uint16
	if err := n.Decode(&code); err == nil {
		return action.MediaStep{Code: code}, nil
	}
	var name string
	if err := n.Decode(&name); err != nil {
		return action.MediaStep{}, fmt.Errorf("media item must be a code, name or pause")
	}
	code, ok := hid.ConsumerByName(name)
	if !ok {
		return action.MediaStep{}, fmt.Errorf("unknown consumer code %q", name)
	}
	return action.MediaStep{Code: code}, nil
}

// parseButtons accepts a signed integer mask or a button name, optionally
// prefixed with '-' to mean release.
func parseButtons(n *yaml.Node) (int, error) {
	var mask int
	if err := n.Decode(&mask); err == nil {
		return mask, nil
	}
	var s string
	if err := n.Decode(&s); err != nil {
		return 0, fmt.Errorf("buttons must be an integer mask or button name")
	}
	neg := strings.HasPrefix(s, "-")
	name := strings.TrimPrefix(s, "-")
	mask, ok := hid.MouseButtonByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
	if neg {
		mask = -mask
	}
	return mask, nil
}
