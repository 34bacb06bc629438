package entity

import (
	"strconv"
	"strings"
)

// KeyCode is the integer input code bound to an action.
type KeyCode int

// KeyUnbound is the sentinel meaning "no key assigned".
const KeyUnbound KeyCode = 0

// Largest code the key space can express.
const maxKeyCode KeyCode = 0xff

// Key codes for non-printable keys. Printable keys use their lower-case
// ASCII value.
const (
	KeyTab        KeyCode = 9
	KeyEnter      KeyCode = 13
	KeyEscape     KeyCode = 27
	KeySpace      KeyCode = ' '
	KeyMinus      KeyCode = '-'
	KeyEquals     KeyCode = '='
	KeyBackspace  KeyCode = 0x7f
	KeyLeftArrow  KeyCode = 0xac
	KeyUpArrow    KeyCode = 0xad
	KeyRightArrow KeyCode = 0xae
	KeyDownArrow  KeyCode = 0xaf
	KeyRCtrl      KeyCode = 0x80 + 0x1d
	KeyRShift     KeyCode = 0x80 + 0x36
	KeyRAlt       KeyCode = 0x80 + 0x38
	KeyCapsLock   KeyCode = 0x80 + 0x3a
	KeyF1         KeyCode = 0x80 + 0x3b
	KeyF2         KeyCode = 0x80 + 0x3c
	KeyF3         KeyCode = 0x80 + 0x3d
	KeyF4         KeyCode = 0x80 + 0x3e
	KeyF5         KeyCode = 0x80 + 0x3f
	KeyF6         KeyCode = 0x80 + 0x40
	KeyF7         KeyCode = 0x80 + 0x41
	KeyF8         KeyCode = 0x80 + 0x42
	KeyF9         KeyCode = 0x80 + 0x43
	KeyF10        KeyCode = 0x80 + 0x44
	KeyNumLock    KeyCode = 0x80 + 0x45
	KeyScrollLock KeyCode = 0x80 + 0x46
	KeyHome       KeyCode = 0x80 + 0x47
	KeyPgUp       KeyCode = 0x80 + 0x49
	KeyEnd        KeyCode = 0x80 + 0x4f
	KeyPgDn       KeyCode = 0x80 + 0x51
	KeyIns        KeyCode = 0x80 + 0x52
	KeyDel        KeyCode = 0x80 + 0x53
	KeyF11        KeyCode = 0x80 + 0x57
	KeyF12        KeyCode = 0x80 + 0x58
	KeyPrtScr     KeyCode = 0x80 + 0x59
	KeyPause      KeyCode = 0xff
)

var keyNames = map[KeyCode]string{
	KeyTab:        "TAB",
	KeyEnter:      "ENTER",
	KeyEscape:     "ESC",
	KeySpace:      "SPACE",
	KeyBackspace:  "BKSP",
	KeyLeftArrow:  "LEFT",
	KeyUpArrow:    "UP",
	KeyRightArrow: "RIGHT",
	KeyDownArrow:  "DOWN",
	KeyRCtrl:      "RCTRL",
	KeyRShift:     "RSHIFT",
	KeyRAlt:       "RALT",
	KeyCapsLock:   "CAPS",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyNumLock:    "NUMLOCK",
	KeyScrollLock: "SCRLCK",
	KeyHome:       "HOME",
	KeyEnd:        "END",
	KeyPgUp:       "PGUP",
	KeyPgDn:       "PGDN",
	KeyIns:        "INS",
	KeyDel:        "DEL",
	KeyPrtScr:     "PRTSC",
	KeyPause:      "PAUSE",
}

var keysByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, len(keyNames))
	for code, name := range keyNames {
		m[name] = code
	}
	return m
}()

// KeyName returns a short printable description of a key code.
// Unbound keys yield an empty string.
func KeyName(code KeyCode) string {
	if code == KeyUnbound {
		return ""
	}
	if name, ok := keyNames[code]; ok {
		return name
	}
	if code > ' ' && code < 0x7f {
		return strings.ToUpper(string(rune(code)))
	}
	return "#" + strconv.Itoa(int(code))
}

// ParseKey converts a key name, a single printable character or a decimal
// code into a KeyCode. Single digits are characters, so raw codes below 10
// need a "#" prefix ("#0"). Upper-case letter codes fold to lower case.
// "NONE" yields KeyUnbound.
func ParseKey(s string) (KeyCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyUnbound, &UnknownError{Kind: ErrInvalidKey, Value: s}
	}

	upper := strings.ToUpper(s)
	if upper == "NONE" {
		return KeyUnbound, nil
	}
	if code, ok := keysByName[upper]; ok {
		return code, nil
	}
	if len(s) == 1 && s[0] > ' ' && s[0] < 0x7f {
		return KeyCode(strings.ToLower(s)[0]), nil
	}
	if strings.HasPrefix(s, "#") {
		s = s[1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || KeyCode(n) > maxKeyCode {
		return KeyUnbound, &UnknownError{Kind: ErrInvalidKey, Value: s}
	}
	if n >= 'A' && n <= 'Z' {
		n += 'a' - 'A'
	}
	return KeyCode(n), nil
}
