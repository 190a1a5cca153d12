package console

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"macropad/internal/display"
)

// OpenBitmap reads just enough of a BMP header to know the sprite-sheet
// geometry; the simulator draws the icon name and frame counter instead of
// pixels.
func (c *Console) OpenBitmap(path string) (display.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	header := make([]byte, 26)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, fmt.Errorf("read bmp header: %w", err)
	}
	if header[0] != 'B' || header[1] != 'M' {
		return nil, fmt.Errorf("%s: not a BMP file", path)
	}
	height := int(int32(binary.LittleEndian.Uint32(header[22:26])))
	if height < 0 { // top-down BMP
		height = -height
	}

	return &consoleBitmap{
		console: c,
		name:    filepath.Base(path),
		height:  height,
	}, nil
}

type consoleBitmap struct {
	console *Console
	name    string
	height  int
}

func (b *consoleBitmap) FrameCount(frameHeight int) int {
	if frameHeight <= 0 || b.height <= frameHeight {
		return 1
	}
	return b.height / frameHeight
}

func (b *consoleBitmap) Blit(frame int) {
	c := b.console
	c.mu.Lock()
	c.icon = b.name
	c.frame = frame
	c.frames = b.FrameCount(display.FrameHeight)
	c.mu.Unlock()
	c.draw()
}

func (b *consoleBitmap) Close() error { return nil }
