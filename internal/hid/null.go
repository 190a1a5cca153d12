package hid

// NullSink discards all output. The simulator uses it so macro playback does
// not inject events into the machine running the simulation; pair it with
// TraceSink to see the calls.
type NullSink struct{}

func (NullSink) KeyPress(uint8) {}
func (NullSink) KeyRelease(uint8) {}
func (NullSink) TypeText(string) {}
func (NullSink) MediaPress(uint16) {}
func (NullSink) MediaRelease() {}
func (NullSink) MousePress(int) {}
func (NullSink) MouseRelease(int) {}
func (NullSink) MouseMove(int, int, int) {}
func (NullSink) ToneStart(int) {}
func (NullSink) ToneStop() {}
func (NullSink) PlayFile(string) {}
func (NullSink) ReleaseAll() {}
