package display

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// EncoderSampler reports the current rotary encoder position. The presenter
// polls it between frames so a turn can cut a presentation short.
type EncoderSampler interface {
	EncoderPosition() int
}

// DefaultIcon is the fallback image shown when a profile's icon file is
// missing.
const DefaultIcon = "default_animation.bmp"

// FrameHeight is the fixed frame height of icon sprite sheets.
const FrameHeight = 64

// IconPresenter animates profile icons from an image directory. The bitmap
// handle is acquired and released around each presentation; nothing is
// cached between calls.
type IconPresenter struct {
	Dir           string
	Blitter       Blitter
	Encoder       EncoderSampler
	FrameInterval time.Duration
	Duration      time.Duration
	Logger        *slog.Logger

	// Now and Sleep are replaceable in tests.
	Now   func() time.Time
	Sleep func(time.Duration)
}

func NewIconPresenter(dir string, b Blitter, enc EncoderSampler, frameInterval, duration time.Duration, logger *slog.Logger) *IconPresenter {
	return &IconPresenter{
		Dir:           dir,
		Blitter:       b,
		Encoder:       enc,
		FrameInterval: frameInterval,
		Duration:      duration,
		Logger:        logger,
		Now:           time.Now,
		Sleep:         time.Sleep,
	}
}

// Present shows the named icon for the configured duration, looping its
// frames at the frame interval. It returns false as soon as the encoder
// moves. A missing icon falls back to DefaultIcon; an unopenable image is
// logged and treated as a completed (blank) presentation so activation can
// proceed.
func (p *IconPresenter) Present(icon string) bool {
	path := filepath.Join(p.Dir, icon)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(p.Dir, DefaultIcon)
	}

	bm, err := p.Blitter.OpenBitmap(path)
	if err != nil {
		p.Logger.Warn("cannot open icon", "path", path, "error", err)
		return true
	}
	defer func() { _ = bm.Close() }()

	frames := bm.FrameCount(FrameHeight)
	if frames < 1 {
		frames = 1
	}

	startPos := p.Encoder.EncoderPosition()
	deadline := p.Now().Add(p.Duration)
	for p.Now().Before(deadline) {
		for frame := 0; frame < frames; frame++ {
			bm.Blit(frame)
			if p.Encoder.EncoderPosition() != startPos {
				return false
			}
			p.Sleep(p.FrameInterval)
		}
	}
	return true
}
