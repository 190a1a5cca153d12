package hid

import "strings"

// Consumer Control usage codes (USB HID Consumer usage page).
const (
	ConsumerRecord         = 0xB2
	ConsumerFastForward    = 0xB3
	ConsumerRewind         = 0xB4
	ConsumerScanNextTrack  = 0xB5
	ConsumerScanPrevTrack  = 0xB6
	ConsumerStop           = 0xB7
	ConsumerEject          = 0xB8
	ConsumerPlayPause      = 0xCD
	ConsumerMute           = 0xE2
	ConsumerVolumeUp       = 0xE9
	ConsumerVolumeDown     = 0xEA
	ConsumerBrightnessUp   = 0x6F
	ConsumerBrightnessDown = 0x70
)

var consumerNames = map[string]uint16{
	"RECORD":              ConsumerRecord,
	"FAST_FORWARD":        ConsumerFastForward,
	"REWIND":              ConsumerRewind,
	"SCAN_NEXT_TRACK":     ConsumerScanNextTrack,
	"SCAN_PREVIOUS_TRACK": ConsumerScanPrevTrack,
	"STOP":                ConsumerStop,
	"EJECT":               ConsumerEject,
	"PLAY_PAUSE":          ConsumerPlayPause,
	"MUTE":                ConsumerMute,
	"VOLUME_INCREMENT":    ConsumerVolumeUp,
	"VOLUME_DECREMENT":    ConsumerVolumeDown,
	"BRIGHTNESS_UP":       ConsumerBrightnessUp,
	"BRIGHTNESS_DOWN":     ConsumerBrightnessDown,
}

var consumerAliases = map[string]string{
	"NEXT_TRACK":     "SCAN_NEXT_TRACK",
	"PREVIOUS_TRACK": "SCAN_PREVIOUS_TRACK",
	"PREV_TRACK":     "SCAN_PREVIOUS_TRACK",
	"VOLUME_UP":      "VOLUME_INCREMENT",
	"VOLUME_DOWN":    "VOLUME_DECREMENT",
}

// ConsumerByName resolves a consumer-control code name (case-insensitive,
// aliases allowed) to its usage code.
func ConsumerByName(name string) (uint16, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if canonical, ok := consumerAliases[n]; ok {
		n = canonical
	}
	code, ok := consumerNames[n]
	return code, ok
}
