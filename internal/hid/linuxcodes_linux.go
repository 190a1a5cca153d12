package hid

// hidToLinux translates HID usage codes (keyboard page) to Linux input
// keycodes for the uinput virtual keyboard.
var hidToLinux = map[uint8]int{
	KeyA: 30, KeyB: 48, KeyC: 46, KeyD: 32, KeyE: 18, KeyF: 33, KeyG: 34,
	KeyH: 35, KeyI: 23, KeyJ: 36, KeyK: 37, KeyL: 38, KeyM: 50, KeyN: 49,
	KeyO: 24, KeyP: 25, KeyQ: 16, KeyR: 19, KeyS: 31, KeyT: 20, KeyU: 22,
	KeyV: 47, KeyW: 17, KeyX: 45, KeyY: 21, KeyZ: 44,

	Key1: 2, Key2: 3, Key3: 4, Key4: 5, Key5: 6,
	Key6: 7, Key7: 8, Key8: 9, Key9: 10, Key0: 11,

	KeyEnter: 28, KeyEscape: 1, KeyBackspace: 14, KeyTab: 15, KeySpace: 57,
	KeyMinus: 12, KeyEqual: 13, KeyLeftBrace: 26, KeyRightBrace: 27,
	KeyBackslash: 43, KeySemicolon: 39, KeyApostrophe: 40, KeyGrave: 41,
	KeyComma: 51, KeyPeriod: 52, KeySlash: 53, KeyCapsLock: 58,

	KeyF1: 59, KeyF2: 60, KeyF3: 61, KeyF4: 62, KeyF5: 63, KeyF6: 64,
	KeyF7: 65, KeyF8: 66, KeyF9: 67, KeyF10: 68, KeyF11: 87, KeyF12: 88,

	KeyPrintScreen: 99, KeyScrollLock: 70, KeyPause: 119, KeyInsert: 110,
	KeyHome: 102, KeyPageUp: 104, KeyDelete: 111, KeyEnd: 107, KeyPageDown: 109,

	KeyRight: 106, KeyLeft: 105, KeyDown: 108, KeyUp: 103,

	KeyNumLock: 69, KeyKpSlash: 98, KeyKpAsterisk: 55, KeyKpMinus: 74,
	KeyKpPlus: 78, KeyKpEnter: 96,
	KeyKp1: 79, KeyKp2: 80, KeyKp3: 81, KeyKp4: 75, KeyKp5: 76,
	KeyKp6: 77, KeyKp7: 71, KeyKp8: 72, KeyKp9: 73, KeyKp0: 82,
	KeyKpDot: 83,

	KeyApplication: 127,

	KeyLeftControl: 29, KeyLeftShift: 42, KeyLeftAlt: 56, KeyLeftGUI: 125,
	KeyRightControl: 97, KeyRightShift: 54, KeyRightAlt: 100, KeyRightGUI: 126,
}

// consumerToLinux translates consumer-control usage codes to Linux input
// keycodes. Consumer usages ride on the same virtual keyboard device.
var consumerToLinux = map[uint16]int{
	ConsumerRecord:         167, // KEY_RECORD
	ConsumerFastForward:    208, // KEY_FASTFORWARD
	ConsumerRewind:         168, // KEY_REWIND
	ConsumerScanNextTrack:  163, // KEY_NEXTSONG
	ConsumerScanPrevTrack:  165, // KEY_PREVIOUSSONG
	ConsumerStop:           166, // KEY_STOPCD
	ConsumerEject:          161, // KEY_EJECTCD
	ConsumerPlayPause:      164, // KEY_PLAYPAUSE
	ConsumerMute:           113, // KEY_MUTE
	ConsumerVolumeUp:       115, // KEY_VOLUMEUP
	ConsumerVolumeDown:     114, // KEY_VOLUMEDOWN
	ConsumerBrightnessUp:   225, // KEY_BRIGHTNESSUP
	ConsumerBrightnessDown: 224, // KEY_BRIGHTNESSDOWN
}
