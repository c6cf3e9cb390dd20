package binding

import (
	"fmt"

	"github.com/PhaethonH/scbind/constraint"
)

// Signal names, grounded on original_source/src/scconfig.py's
// ActivatorBase subclasses (`signal` class attribute).
const (
	SignalFullPress   = "Full_Press"
	SignalDoublePress = "Double_Press"
	SignalLongPress   = "Long_Press"
	SignalStartPress  = "Start_Press"
	SignalRelease     = "release"
	SignalChord       = "chord"
)

// Settings keys shared across activator variants.
const (
	KeyToggle          = "toggle"
	KeyInterruptible   = "interruptable" // sic, matches the VDF wire key
	KeyDelayStart      = "delay_start"
	KeyDelayEnd        = "delay_end"
	KeyHapticIntensity = "haptic_intensity"
	KeyCycle           = "cycle"
	KeyHoldRepeats     = "hold_repeats"
	KeyRepeatRate      = "repeat_rate"
	KeyDoubleTapTime   = "double_tap_time"
	KeyLongPressTime   = "long_press_time"
	KeyChordButton     = "chord_button"
)

var hapticIntensityEnum = constraint.Enum(map[string]int{
	"OFF": 0, "LOW": 1, "MEDIUM": 2, "HIGH": 3,
})

var chordButtonEnum = constraint.Enum(map[string]int{
	"NONE": 0, "LEFT_BUMPER": 1, "RIGHT_BUMPER": 2, "LEFT_GRIP": 3, "RIGHT_GRIP": 4,
	"LEFT_TRIGGER_FULL": 5, "RIGHT_TRIGGER_FULL": 6, "LEFT_TRIGGER_SOFT": 7,
	"RIGHT_TRIGGER_SOFT": 8, "JOYSTICK_CLICK": 9, "BUTTON_A": 10, "BUTTON_B": 11,
	"BUTTON_X": 12, "BUTTON_Y": 13, "SELECT": 14, "START": 15,
	"LEFT_PAD_TOUCH": 16, "RIGHT_PAD_TOUCH": 17, "LEFT_PAD_CLICK": 18, "RIGHT_PAD_CLICK": 19,
})

var activatorConstraints = map[string]*constraint.Table{
	SignalFullPress: constraint.NewTable(
		KeyToggle, constraint.Bool(),
		KeyInterruptible, constraint.Bool(),
		KeyDelayStart, constraint.Int(),
		KeyDelayEnd, constraint.Int(),
		KeyHapticIntensity, hapticIntensityEnum,
		KeyCycle, constraint.Bool(),
		KeyHoldRepeats, constraint.Bool(),
		KeyRepeatRate, constraint.IntRange(1, 9999),
	),
	SignalDoublePress: constraint.NewTable(
		KeyDoubleTapTime, constraint.Int(),
		KeyToggle, constraint.Bool(),
		KeyInterruptible, constraint.Bool(),
		KeyDelayStart, constraint.Int(),
		KeyDelayEnd, constraint.Int(),
		KeyHapticIntensity, hapticIntensityEnum,
		KeyCycle, constraint.Bool(),
		KeyHoldRepeats, constraint.Bool(),
		KeyRepeatRate, constraint.IntRange(1, 9999),
	),
	SignalLongPress: constraint.NewTable(
		KeyLongPressTime, constraint.Int(),
		KeyToggle, constraint.Bool(),
		KeyInterruptible, constraint.Bool(),
		KeyDelayStart, constraint.Int(),
		KeyDelayEnd, constraint.Int(),
		KeyHapticIntensity, hapticIntensityEnum,
		KeyCycle, constraint.Bool(),
		KeyHoldRepeats, constraint.Bool(),
		KeyRepeatRate, constraint.IntRange(1, 9999),
	),
	SignalStartPress: constraint.NewTable(
		KeyToggle, constraint.Bool(),
		KeyDelayStart, constraint.Int(),
		KeyDelayEnd, constraint.Int(),
		KeyHapticIntensity, hapticIntensityEnum,
		KeyCycle, constraint.Bool(),
	),
	SignalRelease: constraint.NewTable(
		KeyToggle, constraint.Bool(),
		KeyInterruptible, constraint.Bool(),
		KeyDelayStart, constraint.Int(),
		KeyDelayEnd, constraint.Int(),
		KeyHapticIntensity, hapticIntensityEnum,
	),
	SignalChord: constraint.NewTable(
		KeyChordButton, chordButtonEnum,
		KeyToggle, constraint.Bool(),
		KeyInterruptible, constraint.Bool(),
		KeyDelayStart, constraint.Int(),
		KeyDelayEnd, constraint.Int(),
		KeyHapticIntensity, hapticIntensityEnum,
		KeyHoldRepeats, constraint.Bool(),
		KeyRepeatRate, constraint.IntRange(1, 9999),
	),
}

// ErrUnknownSignal is returned for an activator signal with no matching
// variant, mirroring ActivatorFactory.make returning None for an
// unrecognized signal_name.
var ErrUnknownSignal = fmt.Errorf("binding: unknown activator signal")

// Activator is one activation-signal instance: a list of bindings plus
// constrained settings, grounded on ActivatorBase.
type Activator struct {
	Signal   string
	Bindings []Binding
	Settings *constraint.Settings
}

// NewActivator constructs an Activator for signal, validating it against
// the six known variants (ActivatorFactory.DELEGATES).
func NewActivator(signal string) (*Activator, error) {
	table, ok := activatorConstraints[signal]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSignal, signal)
	}
	return &Activator{Signal: signal, Settings: constraint.NewSettings(table)}, nil
}

// AddBinding appends one binding to this activator's list.
func (a *Activator) AddBinding(b Binding) {
	a.Bindings = append(a.Bindings, b)
}

// SetSetting validates and stores one settings key/value pair.
func (a *Activator) SetSetting(key string, value interface{}) error {
	return a.Settings.Set(key, value)
}
