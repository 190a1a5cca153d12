package hid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"macropad/internal/hid"
)

func TestCharToHID(t *testing.T) {
	tests := []struct {
		char    byte
		code    uint8
		shifted bool
	}{
		{'a', hid.KeyA, false},
		{'A', hid.KeyA, true},
		{'1', hid.Key1, false},
		{'!', hid.Key1, true},
		{'-', hid.KeyMinus, false},
		{'_', hid.KeyMinus, true},
		{' ', hid.KeySpace, false},
		{'\n', hid.KeyEnter, false},
		{'\t', hid.KeyTab, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, hid.CharToHID(tt.char), "char %q", tt.char)
		assert.Equal(t, tt.shifted, hid.NeedsShift(tt.char), "char %q", tt.char)
	}
}

func TestCharToHIDUnsupported(t *testing.T) {
	assert.EqualValues(t, 0, hid.CharToHID(0x07))
	assert.False(t, hid.NeedsShift(0x07))
}

func TestKeycodeByName(t *testing.T) {
	tests := []struct {
		name string
		code uint8
	}{
		{"A", hid.KeyA},
		{"a", hid.KeyA},
		{"ENTER", hid.KeyEnter},
		{"RETURN", hid.KeyEnter},
		{"CONTROL", hid.KeyLeftControl},
		{"ctrl", hid.KeyLeftControl},
		{"COMMAND", hid.KeyLeftGUI},
		{" shift ", hid.KeyLeftShift},
		{"RIGHT_ALT", hid.KeyRightAlt},
	}
	for _, tt := range tests {
		code, ok := hid.KeycodeByName(tt.name)
		assert.True(t, ok, "name %q", tt.name)
		assert.Equal(t, tt.code, code, "name %q", tt.name)
	}

	_, ok := hid.KeycodeByName("HYPER")
	assert.False(t, ok)
}

func TestConsumerByName(t *testing.T) {
	tests := []struct {
		name string
		code uint16
	}{
		{"PLAY_PAUSE", hid.ConsumerPlayPause},
		{"play_pause", hid.ConsumerPlayPause},
		{"NEXT_TRACK", hid.ConsumerScanNextTrack},
		{"SCAN_NEXT_TRACK", hid.ConsumerScanNextTrack},
		{"VOLUME_UP", hid.ConsumerVolumeUp},
		{"VOLUME_DECREMENT", hid.ConsumerVolumeDown},
		{"MUTE", hid.ConsumerMute},
	}
	for _, tt := range tests {
		code, ok := hid.ConsumerByName(tt.name)
		assert.True(t, ok, "name %q", tt.name)
		assert.Equal(t, tt.code, code, "name %q", tt.name)
	}

	_, ok := hid.ConsumerByName("BASS_BOOST")
	assert.False(t, ok)
}

func TestMouseButtonByName(t *testing.T) {
	mask, ok := hid.MouseButtonByName("left")
	assert.True(t, ok)
	assert.Equal(t, hid.MouseLeft, mask)

	mask, ok = hid.MouseButtonByName("MIDDLE")
	assert.True(t, ok)
	assert.Equal(t, hid.MouseMiddle, mask)

	_, ok = hid.MouseButtonByName("FOURTH")
	assert.False(t, ok)
}
