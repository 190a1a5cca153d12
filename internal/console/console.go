// Package console is a tcell-based simulator of the pad's surfaces: the
// 4x3 key grid with its LED colors, the label menu, icon presentation and
// encoder/keypad input, so the controller can run end-to-end in a terminal.
//
// Bindings: 1-9, 0, - and = press keys 0-11 (press+release per keystroke),
// Left/Right arrows turn the encoder, Enter toggles the encoder button, and
// q or Ctrl-C quits.
package console

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"macropad/internal/input"
	"macropad/internal/led"
)

const (
	gridCols = 3
	gridRows = 4
)

var keyRunes = map[rune]int{
	'1': 0, '2': 1, '3': 2,
	'4': 3, '5': 4, '6': 5,
	'7': 6, '8': 7, '9': 8,
	'0': 9, '-': 10, '=': 11,
}

// Console implements led.Pixels, display.Surface, display.Blitter and
// input.Source on one terminal screen.
type Console struct {
	screen tcell.Screen

	mu      sync.Mutex
	labels  [led.NumKeys]string
	colors  [led.NumKeys]led.Color
	title   string
	message string
	icon    string
	frame   int
	frames  int

	pos  atomic.Int64
	btn  atomic.Bool
	keys chan input.KeyEvent

	done      chan struct{}
	closeOnce sync.Once
}

func New() (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	c := &Console{
		screen: screen,
		keys:   make(chan input.KeyEvent, 32),
		done:   make(chan struct{}),
	}
	go c.eventLoop()
	return c, nil
}

// Done is closed when the user quits the simulator.
func (c *Console) Done() <-chan struct{} { return c.done }

func (c *Console) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	c.screen.Fini()
}

func (c *Console) eventLoop() {
	for {
		ev := c.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			c.screen.Sync()
			c.draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyLeft:
				c.pos.Add(-1)
			case ev.Key() == tcell.KeyRight:
				c.pos.Add(1)
			case ev.Key() == tcell.KeyEnter:
				c.btn.Store(!c.btn.Load())
			case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
				c.closeOnce.Do(func() { close(c.done) })
				return
			default:
				if idx, ok := keyRunes[ev.Rune()]; ok {
					// Terminals deliver no key-up, so a keystroke is a
					// press immediately followed by a release.
					c.pushKey(input.KeyEvent{Key: idx, Pressed: true})
					c.pushKey(input.KeyEvent{Key: idx, Pressed: false})
				}
			}
		case nil:
			return
		}
	}
}

func (c *Console) pushKey(ev input.KeyEvent) {
	select {
	case c.keys <- ev:
	default:
	}
}

// --- input.Source ---

func (c *Console) EncoderPosition() int { return int(c.pos.Load()) }
func (c *Console) EncoderPressed() bool { return c.btn.Load() }

func (c *Console) PollKey() (input.KeyEvent, bool) {
	select {
	case ev := <-c.keys:
		return ev, true
	default:
		return input.KeyEvent{}, false
	}
}

// --- led.Pixels ---

func (c *Console) Set(index int, color led.Color) {
	if index < 0 || index >= led.NumKeys {
		return
	}
	c.mu.Lock()
	c.colors[index] = color
	c.mu.Unlock()
}

func (c *Console) Show() { c.draw() }

// --- display.Surface ---

func (c *Console) SetLabel(index int, text string) {
	if index < 0 || index >= led.NumKeys {
		return
	}
	c.mu.Lock()
	c.labels[index] = text
	c.mu.Unlock()
}

func (c *Console) SetTitle(text string) {
	c.mu.Lock()
	c.title = text
	c.mu.Unlock()
}

func (c *Console) ShowMenu() {
	c.mu.Lock()
	c.message = ""
	c.icon = ""
	c.mu.Unlock()
	c.draw()
}

func (c *Console) ShowMessage(text string) {
	c.mu.Lock()
	c.message = text
	c.icon = ""
	c.mu.Unlock()
	c.draw()
}

// --- drawing ---

func (c *Console) draw() {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.screen
	s.Clear()
	w, h := s.Size()

	titleStyle := tcell.StyleDefault.
		Background(tcell.ColorWhite).
		Foreground(tcell.ColorBlack)
	drawCentered(s, 0, w, c.title, titleStyle)

	switch {
	case c.message != "":
		drawCentered(s, h/2, w, c.message, tcell.StyleDefault)
	case c.icon != "":
		drawCentered(s, h/2, w, c.icon, tcell.StyleDefault)
		if c.frames > 1 {
			drawCentered(s, h/2+1, w, fmt.Sprintf("frame %d/%d", c.frame+1, c.frames), tcell.StyleDefault)
		}
	default:
		c.drawGrid(w, h)
	}
	s.Show()
}

func (c *Console) drawGrid(w, h int) {
	cellW := w / gridCols
	cellH := (h - 1) / gridRows
	if cellW < 1 || cellH < 1 {
		return
	}
	for i := 0; i < led.NumKeys; i++ {
		col := i % gridCols
		row := i / gridCols
		x0 := col * cellW
		y0 := 1 + row*cellH

		color := c.colors[i]
		style := tcell.StyleDefault.
			Background(tcell.NewRGBColor(int32(color.R), int32(color.G), int32(color.B)))
		if luma(color) > 140 {
			style = style.Foreground(tcell.ColorBlack)
		} else {
			style = style.Foreground(tcell.ColorWhite)
		}

		for y := y0; y < y0+cellH; y++ {
			for x := x0; x < x0+cellW-1; x++ {
				c.screen.SetContent(x, y, ' ', nil, style)
			}
		}
		label := c.labels[i]
		if len(label) > cellW-2 {
			label = label[:cellW-2]
		}
		mid := y0 + cellH/2
		for j, r := range label {
			c.screen.SetContent(x0+1+j, mid, r, nil, style)
		}
	}
}

func luma(c led.Color) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

func drawCentered(s tcell.Screen, y, w int, text string, style tcell.Style) {
	x := (w - len(text)) / 2
	if x < 0 {
		x = 0
	}
	for i := 0; i < w; i++ {
		s.SetContent(i, y, ' ', nil, style)
	}
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
