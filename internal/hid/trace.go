package hid

import (
	"context"
	"log/slog"

	"macropad/internal/log"
)

// TraceSink wraps a Sink and logs every call at trace level before
// forwarding it. Useful with --log.level=trace to see exactly what a macro
// emits.
type TraceSink struct {
	Next   Sink
	Logger *slog.Logger
}

func (t TraceSink) trace(msg string, args ...any) {
	t.Logger.Log(context.Background(), log.LevelTrace, msg, args...)
}

func (t TraceSink) KeyPress(code uint8) {
	t.trace("key press", "code", code)
	t.Next.KeyPress(code)
}

func (t TraceSink) KeyRelease(code uint8) {
	t.trace("key release", "code", code)
	t.Next.KeyRelease(code)
}

func (t TraceSink) TypeText(s string) {
	t.trace("type text", "len", len(s))
	t.Next.TypeText(s)
}

func (t TraceSink) MediaPress(code uint16) {
	t.trace("media press", "code", code)
	t.Next.MediaPress(code)
}

func (t TraceSink) MediaRelease() {
	t.trace("media release")
	t.Next.MediaRelease()
}

func (t TraceSink) MousePress(mask int) {
	t.trace("mouse press", "mask", mask)
	t.Next.MousePress(mask)
}

func (t TraceSink) MouseRelease(mask int) {
	t.trace("mouse release", "mask", mask)
	t.Next.MouseRelease(mask)
}

func (t TraceSink) MouseMove(dx, dy, wheel int) {
	t.trace("mouse move", "dx", dx, "dy", dy, "wheel", wheel)
	t.Next.MouseMove(dx, dy, wheel)
}

func (t TraceSink) ToneStart(freq int) {
	t.trace("tone start", "freq", freq)
	t.Next.ToneStart(freq)
}

func (t TraceSink) ToneStop() {
	t.trace("tone stop")
	t.Next.ToneStop()
}

func (t TraceSink) PlayFile(path string) {
	t.trace("play file", "path", path)
	t.Next.PlayFile(path)
}

func (t TraceSink) ReleaseAll() {
	t.trace("release all")
	t.Next.ReleaseAll()
}
