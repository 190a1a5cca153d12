package input

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"syscall"
	"time"

	evdev "github.com/gvalkov/golang-evdev"
)

// EvdevConfig describes how the pad's evdev node maps onto the controller's
// view of the hardware.
type EvdevConfig struct {
	// Device is the /dev/input/eventN node of the pad.
	Device string
	// KeyCodes maps physical key indices 0-11 to Linux keycodes.
	KeyCodes [12]uint16
	// EncoderButton is the Linux keycode of the encoder push switch.
	EncoderButton uint16
	// EncoderAxis is the EV_REL code carrying encoder detents.
	EncoderAxis uint16
	// Debounce is the encoder button debounce interval.
	Debounce time.Duration
}

// DefaultEvdevConfig maps keys 0-11 to the number row, the encoder button to
// Enter and the encoder to the dial axis.
func DefaultEvdevConfig(device string) EvdevConfig {
	cfg := EvdevConfig{
		Device:        device,
		EncoderButton: 28,   // KEY_ENTER
		EncoderAxis:   0x07, // REL_DIAL
		Debounce:      20 * time.Millisecond,
	}
	for i := range cfg.KeyCodes {
		cfg.KeyCodes[i] = uint16(2 + i) // KEY_1 .. KEY_EQUAL
	}
	return cfg
}

// EvdevSource reads pad input from a grabbed evdev device. A reader
// goroutine accumulates encoder motion and queues key edges; the controller
// polls from its own tick loop.
type EvdevSource struct {
	dev      *evdev.InputDevice
	read     func() (*evdev.InputEvent, error)
	cfg      EvdevConfig
	keyIndex map[uint16]int
	logger   *slog.Logger

	pos    atomic.Int64
	btnRaw atomic.Bool
	deb    Debouncer

	keys chan KeyEvent
	done chan struct{}
	dead chan struct{}
}

// NewEvdevSource opens and grabs the device and starts the reader.
func NewEvdevSource(cfg EvdevConfig, logger *slog.Logger) (*EvdevSource, error) {
	dev, err := evdev.Open(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", cfg.Device, err)
	}
	if err := dev.Grab(); err != nil {
		_ = dev.File.Close()
		return nil, fmt.Errorf("grab input device %s: %w", cfg.Device, err)
	}

	s := &EvdevSource{
		dev:      dev,
		read:     dev.ReadOne,
		cfg:      cfg,
		keyIndex: make(map[uint16]int, len(cfg.KeyCodes)),
		logger:   logger,
		deb:      Debouncer{Interval: cfg.Debounce},
		keys:     make(chan KeyEvent, 32),
		done:     make(chan struct{}),
		dead:     make(chan struct{}),
	}
	for i, code := range cfg.KeyCodes {
		s.keyIndex[code] = i
	}
	go s.readLoop()
	return s, nil
}

// Close ungrabs and closes the device, stopping the reader.
func (s *EvdevSource) Close() error {
	close(s.done)
	_ = s.dev.Release()
	return s.dev.File.Close()
}

// Done is closed when the device is lost (unplugged or a persistent read
// failure), so the caller can shut down instead of polling a dead source.
func (s *EvdevSource) Done() <-chan struct{} { return s.dead }

func (s *EvdevSource) readLoop() {
	for {
		ev, err := s.read()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			if errors.Is(err, syscall.EINTR) || errors.Is(err, syscall.EAGAIN) {
				continue
			}
			s.logger.Error("input device lost", "error", err)
			close(s.dead)
			return
		}
		switch ev.Type {
		case evdev.EV_REL:
			if ev.Code == s.cfg.EncoderAxis {
				s.pos.Add(int64(ev.Value))
			}
		case evdev.EV_KEY:
			if ev.Value == 2 { // autorepeat
				continue
			}
			if ev.Code == s.cfg.EncoderButton {
				s.btnRaw.Store(ev.Value != 0)
				continue
			}
			if idx, ok := s.keyIndex[ev.Code]; ok {
				select {
				case s.keys <- KeyEvent{Key: idx, Pressed: ev.Value != 0}:
				default:
					s.logger.Warn("key event queue full, dropping", "key", idx)
				}
			}
		}
	}
}

func (s *EvdevSource) EncoderPosition() int {
	return int(s.pos.Load())
}

func (s *EvdevSource) EncoderPressed() bool {
	return s.deb.Update(s.btnRaw.Load(), time.Now())
}

func (s *EvdevSource) PollKey() (KeyEvent, bool) {
	select {
	case ev := <-s.keys:
		return ev, true
	default:
		return KeyEvent{}, false
	}
}
