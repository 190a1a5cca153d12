package hid

import "strings"

// HID Usage codes for keyboard keys (USB HID Keyboard/Keypad usage page).
const (
	// Letters A-Z
	KeyA = 0x04
	KeyB = 0x05
	KeyC = 0x06
	KeyD = 0x07
	KeyE = 0x08
	KeyF = 0x09
	KeyG = 0x0A
	KeyH = 0x0B
	KeyI = 0x0C
	KeyJ = 0x0D
	KeyK = 0x0E
	KeyL = 0x0F
	KeyM = 0x10
	KeyN = 0x11
	KeyO = 0x12
	KeyP = 0x13
	KeyQ = 0x14
	KeyR = 0x15
	KeyS = 0x16
	KeyT = 0x17
	KeyU = 0x18
	KeyV = 0x19
	KeyW = 0x1A
	KeyX = 0x1B
	KeyY = 0x1C
	KeyZ = 0x1D

	// Numbers 1-0 (top row)
	Key1 = 0x1E
	Key2 = 0x1F
	Key3 = 0x20
	Key4 = 0x21
	Key5 = 0x22
	Key6 = 0x23
	Key7 = 0x24
	Key8 = 0x25
	Key9 = 0x26
	Key0 = 0x27

	// Special keys
	KeyEnter      = 0x28
	KeyEscape     = 0x29
	KeyBackspace  = 0x2A
	KeyTab        = 0x2B
	KeySpace      = 0x2C
	KeyMinus      = 0x2D // - and _
	KeyEqual      = 0x2E // = and +
	KeyLeftBrace  = 0x2F // [ and {
	KeyRightBrace = 0x30 // ] and }
	KeyBackslash  = 0x31 // \ and |
	KeySemicolon  = 0x33 // ; and :
	KeyApostrophe = 0x34 // ' and "
	KeyGrave      = 0x35 // ` and ~
	KeyComma      = 0x36 // , and <
	KeyPeriod     = 0x37 // . and >
	KeySlash      = 0x38 // / and ?
	KeyCapsLock   = 0x39

	// Function keys
	KeyF1  = 0x3A
	KeyF2  = 0x3B
	KeyF3  = 0x3C
	KeyF4  = 0x3D
	KeyF5  = 0x3E
	KeyF6  = 0x3F
	KeyF7  = 0x40
	KeyF8  = 0x41
	KeyF9  = 0x42
	KeyF10 = 0x43
	KeyF11 = 0x44
	KeyF12 = 0x45

	// Control keys
	KeyPrintScreen = 0x46
	KeyScrollLock  = 0x47
	KeyPause       = 0x48
	KeyInsert      = 0x49
	KeyHome        = 0x4A
	KeyPageUp      = 0x4B
	KeyDelete      = 0x4C
	KeyEnd         = 0x4D
	KeyPageDown    = 0x4E

	// Arrow keys
	KeyRight = 0x4F
	KeyLeft  = 0x50
	KeyDown  = 0x51
	KeyUp    = 0x52

	// Numpad
	KeyNumLock    = 0x53
	KeyKpSlash    = 0x54
	KeyKpAsterisk = 0x55
	KeyKpMinus    = 0x56
	KeyKpPlus     = 0x57
	KeyKpEnter    = 0x58
	KeyKp1        = 0x59
	KeyKp2        = 0x5A
	KeyKp3        = 0x5B
	KeyKp4        = 0x5C
	KeyKp5        = 0x5D
	KeyKp6        = 0x5E
	KeyKp7        = 0x5F
	KeyKp8        = 0x60
	KeyKp9        = 0x61
	KeyKp0        = 0x62
	KeyKpDot      = 0x63

	KeyApplication = 0x65

	// Modifiers (usage codes, not the report bitmask)
	KeyLeftControl  = 0xE0
	KeyLeftShift    = 0xE1
	KeyLeftAlt      = 0xE2
	KeyLeftGUI      = 0xE3
	KeyRightControl = 0xE4
	KeyRightShift   = 0xE5
	KeyRightAlt     = 0xE6
	KeyRightGUI     = 0xE7
)

// keycodeNames maps canonical key names (as used in profile files) to HID
// usage codes. Lookups go through KeycodeByName, which also handles aliases.
var keycodeNames = map[string]uint8{
	"A": KeyA, "B": KeyB, "C": KeyC, "D": KeyD, "E": KeyE, "F": KeyF,
	"G": KeyG, "H": KeyH, "I": KeyI, "J": KeyJ, "K": KeyK, "L": KeyL,
	"M": KeyM, "N": KeyN, "O": KeyO, "P": KeyP, "Q": KeyQ, "R": KeyR,
	"S": KeyS, "T": KeyT, "U": KeyU, "V": KeyV, "W": KeyW, "X": KeyX,
	"Y": KeyY, "Z": KeyZ,

	"1": Key1, "2": Key2, "3": Key3, "4": Key4, "5": Key5,
	"6": Key6, "7": Key7, "8": Key8, "9": Key9, "0": Key0,

	"ENTER":       KeyEnter,
	"ESCAPE":      KeyEscape,
	"BACKSPACE":   KeyBackspace,
	"TAB":         KeyTab,
	"SPACE":       KeySpace,
	"MINUS":       KeyMinus,
	"EQUAL":       KeyEqual,
	"LEFT_BRACE":  KeyLeftBrace,
	"RIGHT_BRACE": KeyRightBrace,
	"BACKSLASH":   KeyBackslash,
	"SEMICOLON":   KeySemicolon,
	"APOSTROPHE":  KeyApostrophe,
	"GRAVE":       KeyGrave,
	"COMMA":       KeyComma,
	"PERIOD":      KeyPeriod,
	"SLASH":       KeySlash,
	"CAPS_LOCK":   KeyCapsLock,

	"F1": KeyF1, "F2": KeyF2, "F3": KeyF3, "F4": KeyF4,
	"F5": KeyF5, "F6": KeyF6, "F7": KeyF7, "F8": KeyF8,
	"F9": KeyF9, "F10": KeyF10, "F11": KeyF11, "F12": KeyF12,

	"PRINT_SCREEN": KeyPrintScreen,
	"SCROLL_LOCK":  KeyScrollLock,
	"PAUSE":        KeyPause,
	"INSERT":       KeyInsert,
	"HOME":         KeyHome,
	"PAGE_UP":      KeyPageUp,
	"DELETE":       KeyDelete,
	"END":          KeyEnd,
	"PAGE_DOWN":    KeyPageDown,

	"RIGHT_ARROW": KeyRight,
	"LEFT_ARROW":  KeyLeft,
	"DOWN_ARROW":  KeyDown,
	"UP_ARROW":    KeyUp,

	"NUM_LOCK":        KeyNumLock,
	"KEYPAD_SLASH":    KeyKpSlash,
	"KEYPAD_ASTERISK": KeyKpAsterisk,
	"KEYPAD_MINUS":    KeyKpMinus,
	"KEYPAD_PLUS":     KeyKpPlus,
	"KEYPAD_ENTER":    KeyKpEnter,
	"KEYPAD_1":        KeyKp1,
	"KEYPAD_2":        KeyKp2,
	"KEYPAD_3":        KeyKp3,
	"KEYPAD_4":        KeyKp4,
	"KEYPAD_5":        KeyKp5,
	"KEYPAD_6":        KeyKp6,
	"KEYPAD_7":        KeyKp7,
	"KEYPAD_8":        KeyKp8,
	"KEYPAD_9":        KeyKp9,
	"KEYPAD_0":        KeyKp0,
	"KEYPAD_PERIOD":   KeyKpDot,

	"APPLICATION": KeyApplication,

	"LEFT_CONTROL":  KeyLeftControl,
	"LEFT_SHIFT":    KeyLeftShift,
	"LEFT_ALT":      KeyLeftAlt,
	"LEFT_GUI":      KeyLeftGUI,
	"RIGHT_CONTROL": KeyRightControl,
	"RIGHT_SHIFT":   KeyRightShift,
	"RIGHT_ALT":     KeyRightAlt,
	"RIGHT_GUI":     KeyRightGUI,
}

// keycodeAliases maps convenience names onto canonical entries.
var keycodeAliases = map[string]string{
	"CONTROL":   "LEFT_CONTROL",
	"CTRL":      "LEFT_CONTROL",
	"SHIFT":     "LEFT_SHIFT",
	"ALT":       "LEFT_ALT",
	"OPTION":    "LEFT_ALT",
	"GUI":       "LEFT_GUI",
	"WINDOWS":   "LEFT_GUI",
	"COMMAND":   "LEFT_GUI",
	"RETURN":    "ENTER",
	"ESC":       "ESCAPE",
	"SPACEBAR":  "SPACE",
	"RIGHT":     "RIGHT_ARROW",
	"LEFT":      "LEFT_ARROW",
	"DOWN":      "DOWN_ARROW",
	"UP":        "UP_ARROW",
	"DEL":       "DELETE",
	"LEFTCTRL":  "LEFT_CONTROL",
	"LEFTSHIFT": "LEFT_SHIFT",
	"LEFTALT":   "LEFT_ALT",
}

// KeycodeByName resolves a key name (case-insensitive, aliases allowed) to a
// HID usage code.
func KeycodeByName(name string) (uint8, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if canonical, ok := keycodeAliases[n]; ok {
		n = canonical
	}
	code, ok := keycodeNames[n]
	return code, ok
}
