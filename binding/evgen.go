package binding

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCode is returned when a generator's short code has no entry in
// its translation table.
var ErrUnknownCode = fmt.Errorf("binding: unknown code")

// Evgen is one event-generator instance: the VDF-ready "major" verb plus
// its ordered detail words, grounded on original_source/src/scconfig.py's
// EvgenBase hierarchy.
type Evgen interface {
	// Major is the leading VDF word (e.g. "key_press", "controller_action").
	Major() string
	// Details are the words following Major, already in wire form.
	Details() []string
}

func join(major string, details ...string) string {
	words := append([]string{major}, details...)
	return strings.Join(words, " ")
}

// String renders an Evgen the way EvgenBase.__str__ does: major word
// followed by its details, space-joined.
func String(e Evgen) string {
	if e == nil || e.Major() == "" {
		return ""
	}
	return join(e.Major(), e.Details()...)
}

// EvgenEmpty is the "do nothing" binding, alias for a controller_action
// empty_binding directive.
type EvgenEmpty struct{}

func (EvgenEmpty) Major() string     { return vscControllerAction }
func (EvgenEmpty) Details() []string { return []string{vscEmptyBinding} }

// EvgenInvalid preserves an unrecognized binding verbatim across edits
// rather than discarding it, matching Evgen_Invalid's role as a
// pass-through placeholder.
type EvgenInvalid struct {
	Words []string
}

func (e EvgenInvalid) Major() string {
	if len(e.Words) == 0 {
		return ""
	}
	return e.Words[0]
}
func (e EvgenInvalid) Details() []string {
	if len(e.Words) == 0 {
		return nil
	}
	return e.Words[1:]
}

// EvgenKeystroke synthesizes a keyboard scancode.
type EvgenKeystroke struct{ Code string }

func (EvgenKeystroke) Major() string        { return vscKeypress }
func (e EvgenKeystroke) Details() []string { return []string{e.Code} }

// NewKeystroke accepts any synthesized key-scan code; the VDF format
// does not restrict it to a known table.
func NewKeystroke(code string) (EvgenKeystroke, error) {
	if code == "" {
		return EvgenKeystroke{}, fmt.Errorf("%w: empty keystroke code", ErrUnknownCode)
	}
	return EvgenKeystroke{Code: code}, nil
}

// EvgenMouseSwitch synthesizes a mouse button click or wheel tick.
type EvgenMouseSwitch struct {
	major   string
	literal string
}

func (e EvgenMouseSwitch) Major() string     { return e.major }
func (e EvgenMouseSwitch) Details() []string { return []string{e.literal} }

// NewMouseSwitch resolves evcode against the button and wheel tables in
// that order, matching Evgen_MouseSwitch's constructor.
func NewMouseSwitch(evcode string) (EvgenMouseSwitch, error) {
	if lit, ok := mouseButtonTable[evcode]; ok {
		return EvgenMouseSwitch{major: vscMouseButton, literal: lit}, nil
	}
	if lit, ok := mouseWheelTable[evcode]; ok {
		return EvgenMouseSwitch{major: vscMouseWheel, literal: lit}, nil
	}
	return EvgenMouseSwitch{}, fmt.Errorf("%w: mouse evcode %q", ErrUnknownCode, evcode)
}

// EvgenGamepad synthesizes a gamepad/xinput button press.
type EvgenGamepad struct{ literal string }

func (EvgenGamepad) Major() string          { return vscGamepadButton }
func (e EvgenGamepad) Details() []string    { return []string{e.literal} }

func NewGamepad(evcode string) (EvgenGamepad, error) {
	lit, ok := gamepadTable[evcode]
	if !ok {
		return EvgenGamepad{}, fmt.Errorf("%w: xpad evcode %q", ErrUnknownCode, evcode)
	}
	return EvgenGamepad{literal: lit}, nil
}

// EvgenHost issues a host-level (Steam client) action.
type EvgenHost struct{ literal string }

func (EvgenHost) Major() string       { return vscControllerAction }
func (e EvgenHost) Details() []string { return []string{e.literal} }

func NewHost(code string) (EvgenHost, error) {
	lit, ok := hostTable[code]
	if !ok {
		return EvgenHost{}, fmt.Errorf("%w: host action %q", ErrUnknownCode, code)
	}
	return EvgenHost{literal: lit}, nil
}

// EvgenLight sets the controller LED. R, G, B, L range 0..255; Mode
// selects between user prefs (0), explicit RGB+brightness (1), or
// XInput-ID-assigned color (2).
type EvgenLight struct {
	R, G, B, X, L, Mode int
}

func (EvgenLight) Major() string { return vscControllerAction }
func (e EvgenLight) Details() []string {
	return []string{
		vscSetLED,
		strconv.Itoa(e.R), strconv.Itoa(e.G), strconv.Itoa(e.B),
		strconv.Itoa(e.X), strconv.Itoa(e.L), strconv.Itoa(e.Mode),
	}
}

func NewLight(r, g, b, x, l, mode int) (EvgenLight, error) {
	for _, v := range []int{r, g, b, l} {
		if v < 0 || v > 255 {
			return EvgenLight{}, fmt.Errorf("binding: LED component out of range 0..255: %d", v)
		}
	}
	if mode < 0 || mode > 2 {
		return EvgenLight{}, fmt.Errorf("binding: LED mode out of range 0..2: %d", mode)
	}
	return EvgenLight{R: r, G: g, B: b, X: x, L: l, Mode: mode}, nil
}

// EvgenOverlay applies, peels, holds, or changes an action layer/set.
type EvgenOverlay struct {
	Action           string
	TargetID, Frob0, Frob1 int
}

func (EvgenOverlay) Major() string { return vscControllerAction }
func (e EvgenOverlay) Details() []string {
	return []string{e.Action, strconv.Itoa(e.TargetID), strconv.Itoa(e.Frob0), strconv.Itoa(e.Frob1)}
}

func NewOverlay(actionspec string, targetID, frob0, frob1 int) (EvgenOverlay, error) {
	lit, ok := overlayActionTable[actionspec]
	if !ok {
		return EvgenOverlay{}, fmt.Errorf("%w: overlay action %q", ErrUnknownCode, actionspec)
	}
	return EvgenOverlay{Action: lit, TargetID: targetID, Frob0: frob0, Frob1: frob1}, nil
}

// EvgenModeshift dispatches a different input group while a cluster's
// mode-shift source is held/engaged.
type EvgenModeshift struct {
	Source  string
	GroupID int
}

func (EvgenModeshift) Major() string { return vscModeShift }
func (e EvgenModeshift) Details() []string {
	return []string{e.Source, strconv.Itoa(e.GroupID)}
}

func NewModeshift(source string, groupID int) (EvgenModeshift, error) {
	if !modeshiftSources[source] {
		return EvgenModeshift{}, fmt.Errorf("%w: mode-shift source %q", ErrUnknownCode, source)
	}
	return EvgenModeshift{Source: source, GroupID: groupID}, nil
}

// NewEmpty constructs the canonical empty binding.
func NewEmpty() EvgenEmpty { return EvgenEmpty{} }

// ParseEvgen dispatches a raw "major detail..." string to the matching
// constructor, trying each generator kind in turn and falling back to
// EvgenInvalid, matching EvgenFactory.make's ATTEMPTS loop. Best-effort:
// never returns an error, since an unrecognized binding must still survive
// round-tripping (see spec's error-handling policy for best-effort modes).
func ParseEvgen(raw string) Evgen {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return EvgenInvalid{}
	}
	major, rest := words[0], words[1:]

	switch major {
	case vscKeypress:
		if len(rest) >= 1 {
			if g, err := NewKeystroke(rest[0]); err == nil {
				return g
			}
		}
	case vscMouseButton, vscMouseWheel:
		if len(rest) >= 1 {
			if g, err := NewMouseSwitch(codeForLiteral(major, rest[0])); err == nil {
				return g
			}
		}
	case vscGamepadButton:
		if len(rest) >= 1 {
			if g, err := NewGamepad(codeForGamepadLiteral(rest[0])); err == nil {
				return g
			}
		}
	case vscModeShift:
		if len(rest) >= 2 {
			id, err := strconv.Atoi(rest[1])
			if err == nil {
				if g, err := NewModeshift(rest[0], id); err == nil {
					return g
				}
			}
		}
	case vscControllerAction:
		if len(rest) == 1 && rest[0] == vscEmptyBinding {
			return NewEmpty()
		}
		if len(rest) >= 1 && rest[0] == vscSetLED && len(rest) == 7 {
			ints := make([]int, 6)
			ok := true
			for i, w := range rest[1:] {
				n, err := strconv.Atoi(w)
				if err != nil {
					ok = false
					break
				}
				ints[i] = n
			}
			if ok {
				if g, err := NewLight(ints[0], ints[1], ints[2], ints[3], ints[4], ints[5]); err == nil {
					return g
				}
			}
		}
		if len(rest) == 4 {
			if id, err1 := strconv.Atoi(rest[1]); err1 == nil {
				if f0, err2 := strconv.Atoi(rest[2]); err2 == nil {
					if f1, err3 := strconv.Atoi(rest[3]); err3 == nil {
						if g, err := NewOverlay(overlayCodeForLiteral(rest[0]), id, f0, f1); err == nil {
							return g
						}
					}
				}
			}
		}
		if len(rest) >= 1 {
			if g, err := NewHost(hostCodeForLiteral(rest[0])); err == nil {
				return g
			}
		}
	}
	return EvgenInvalid{Words: words}
}

// The *CodeFor* helpers invert the translation tables so re-parsing an
// already-canonical wire literal still succeeds (the common case of
// reformatting an existing VDF rather than compiling fresh source text).
func codeForLiteral(major, literal string) string {
	table := mouseButtonTable
	if major == vscMouseWheel {
		table = mouseWheelTable
	}
	for k, v := range table {
		if v == literal {
			return k
		}
	}
	return literal
}

func codeForGamepadLiteral(literal string) string {
	for k, v := range gamepadTable {
		if v == literal {
			return k
		}
	}
	return literal
}

func hostCodeForLiteral(literal string) string {
	for k, v := range hostTable {
		if v == literal {
			return k
		}
	}
	return literal
}

func overlayCodeForLiteral(literal string) string {
	for k, v := range overlayActionTable {
		if v == literal {
			return k
		}
	}
	return literal
}
