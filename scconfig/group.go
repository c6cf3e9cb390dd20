package scconfig

import (
	"fmt"
	"strconv"

	"github.com/PhaethonH/scbind/binding"
	"github.com/PhaethonH/scbind/constraint"
	"github.com/PhaethonH/scbind/vdf"
)

// ErrUnknownMode is returned by NewGroup for a mode string not among the
// fourteen group modes GroupFactory recognizes.
var ErrUnknownMode = fmt.Errorf("scconfig: unknown group mode")

// ErrUnknownInput is returned by AddInput when the source name is not a
// member of the group's mode-specific INPUTS set.
var ErrUnknownInput = fmt.Errorf("scconfig: unknown input source for mode")

// Group is one input group: a mode (the physical control style, e.g.
// "four_buttons" or "joystick_move"), its source-name-to-activator map,
// and its mode-specific settings table. Grounded on GroupBase and its
// fourteen Group* subclasses.
type Group struct {
	ID     int
	Mode   string
	Inputs map[string]*binding.Activator

	Settings *constraint.Settings

	inputSet   map[string]bool
	settingsTb *constraint.Table
}

// groupModeDef holds one mode's fixed INPUTS set and settings constraint
// table, transcribed from the matching Group* class body.
type groupModeDef struct {
	inputs   []string
	settings *constraint.Table
}

// NewGroup constructs an empty Group for the given mode, ready for
// AddInput/SetSetting calls, mirroring GroupFactory.make_<mode>.
func NewGroup(id int, mode string) (*Group, error) {
	def, ok := groupModeDefs[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	inputSet := make(map[string]bool, len(def.inputs))
	for _, in := range def.inputs {
		inputSet[in] = true
	}
	return &Group{
		ID:         id,
		Mode:       mode,
		Inputs:     make(map[string]*binding.Activator),
		Settings:   constraint.NewSettings(def.settings),
		inputSet:   inputSet,
		settingsTb: def.settings,
	}, nil
}

// AddInput attaches an activator to one of the group's fixed input
// sources (e.g. "button_a", "click", "edge"), rejecting sources outside
// the mode's INPUTS set rather than silently accepting arbitrary keys.
func (g *Group) AddInput(source string, act *binding.Activator) error {
	if !g.inputSet[source] {
		return fmt.Errorf("%w: %q not valid for mode %q", ErrUnknownInput, source, g.Mode)
	}
	g.Inputs[source] = act
	return nil
}

// SetSetting validates and stores one mode setting, delegating to the
// shared constraint engine (binding.Activator uses the identical
// pattern for per-activator settings).
func (g *Group) SetSetting(key string, value interface{}) error {
	return g.Settings.Set(key, value)
}

// EncodeKV renders this group's body, mirroring GroupBase.encode_kv: id,
// mode, an always-present "inputs" block, and an optional "settings"
// block when any setting was assigned.
func (g *Group) EncodeKV() *vdf.OrderedMultiMap {
	kv := vdf.NewOMM()
	kv.Set("id", strconv.Itoa(g.ID))
	kv.Set("mode", g.Mode)
	inputs := vdf.NewOMM()
	for _, source := range g.sortedInputSources() {
		inputs.Set(source, g.Inputs[source].EncodeKV())
	}
	kv.Set("inputs", inputs)
	if g.Settings.Len() > 0 {
		settings := vdf.NewOMM()
		for _, key := range g.Settings.Keys() {
			if s, ok := g.Settings.EncodeString(key); ok {
				settings.Set(key, s)
			}
		}
		kv.Set("settings", settings)
	}
	return kv
}

func (g *Group) sortedInputSources() []string {
	var out []string
	for _, in := range groupModeDefs[g.Mode].inputs {
		if _, ok := g.Inputs[in]; ok {
			out = append(out, in)
		}
	}
	return out
}

// Source name constants, transcribed from each Group* class's INPUTS
// PseudoEnum. Names shared across modes (e.g. "click") use the same
// constant.
const (
	InDpadUp    = "dpad_up"
	InDpadDown  = "dpad_down"
	InDpadLeft  = "dpad_left"
	InDpadRight = "dpad_right"
	InClick     = "click"
	InEdge      = "edge"

	InButtonA = "button_a"
	InButtonB = "button_b"
	InButtonX = "button_x"
	InButtonY = "button_y"

	InClickSide   = "click_left"  // GroupFourButtons alt source
	InDoubletap   = "doubletap"
	InTouch       = "touch"
	InOuter       = "outer"
	InOuterRing   = "outer_ring"

	InButtonScrollUp    = "scroll_up"
	InButtonScrollDown  = "scroll_down"
	InButtonClick       = "button_click"

	InButtonDiamondN = "button_diamond_n"
	InButtonDiamondE = "button_diamond_e"
	InButtonDiamondS = "button_diamond_s"
	InButtonDiamondW = "button_diamond_w"

	// GroupSwitches INPUTS: the six physical switch buttons plus the
	// eleven mode-shift gate slots (one per modeshift-capable source).
	InButtonEscape          = "button_escape"
	InButtonMenu            = "button_menu"
	InLeftBumper            = "left_bumper"
	InRightBumper           = "right_bumper"
	InButtonBackLeft        = "button_back_left"
	InButtonBackRight       = "button_back_right"
	InRightTriggerModeshift        = "right_trigger_modeshift"
	InRightTriggerThresholdModeshift = "right_trigger_threshold_modeshift"
	InLeftTriggerModeshift         = "left_trigger_modeshift"
	InLeftTriggerThresholdModeshift = "left_trigger_threshold_modeshift"
	InLeftClickModeshift           = "left_click_modeshift"
	InRightClickModeshift          = "right_click_modeshift"
	InLeftStickClickModeshift      = "left_stick_click_modeshift"
	InButtonAModeshift             = "button_a_modeshift"
	InButtonBModeshift             = "button_b_modeshift"
	InButtonXModeshift             = "button_x_modeshift"
	InButtonYModeshift             = "button_y_modeshift"
)

// groupModeDefs is the GroupFactory table: one entry per mode, each
// naming its INPUTS set and settings constraint table.
var groupModeDefs = map[string]groupModeDef{
	ModeAbsoluteMouse: {
		inputs: []string{InClick, InDoubletap, InOuter, InOuterRing},
		settings: constraint.NewTable(
			KeySensitivity, constraint.IntRange(10, 1000),
			KeyInvertX, constraint.Bool(),
			KeyInvertY, constraint.Bool(),
			KeyDeadzone, constraint.IntRange(0, 32000),
			KeyDoubletapBeep, constraint.Bool(),
			KeyAcceleration, enumAcceleration,
			KeyMouseSmoothing, constraint.Bool(),
		),
	},
	ModeDpad: {
		inputs: []string{InDpadUp, InDpadDown, InDpadLeft, InDpadRight, InClick, InEdge},
		settings: constraint.NewTable(
			KeyRequiresClick, constraint.Bool(),
			KeyLayout, constraint.Enum(map[string]int{"four_way": 0, "eight_way": 1}),
			KeyDeadzone, constraint.IntRange(0, 32000),
			KeyEdgeBindingRadius, constraint.IntRange(0, 32000),
			KeyEdgeBindingInvert, constraint.Bool(),
			KeyAnalogEmulationPeriod, constraint.IntRange(0, 1000),
			KeyAnalogEmulationDutyCycle, constraint.IntRange(0, 100),
			KeyOverlapRegion, constraint.IntRange(0, 32000),
		),
	},
	ModeFourButtons: {
		inputs: []string{InButtonA, InButtonB, InButtonX, InButtonY},
		settings: constraint.NewTable(
			KeyHapticIntensity, enumHapticIntensity,
		),
	},
	ModeJoystickCamera: {
		inputs: []string{InClick, InOuter},
		settings: constraint.NewTable(
			KeySensitivity, constraint.IntRange(1, 1000),
			KeySensitivityHorizScale, constraint.IntRange(1, 200),
			KeySensitivityVertScale, constraint.IntRange(1, 200),
			KeyAntiDeadzone, constraint.IntRange(0, 32000),
			KeyAntiDeadzoneBuffer, constraint.IntRange(0, 32000),
			KeyInvertX, constraint.Bool(),
			KeyInvertY, constraint.Bool(),
			KeyJoystickSmoothing, constraint.Bool(),
			KeyDeadzoneShape, enumDeadzoneShape,
			KeyDeadzoneInnerRadius, constraint.IntRange(0, 32000),
			KeyDeadzoneOuterRadius, constraint.IntRange(0, 32000),
			KeyOutputJoystick, enumOutputJoystickCamera,
			KeyCurveExponent, enumCurveExponent,
			KeyCustomCurveExponent, constraint.IntRange(1, 400),
			KeyGyroAxis, constraint.IntRange(0, 2),
		),
	},
	ModeJoystickMouse: {
		inputs: []string{InClick, InOuter},
		settings: constraint.NewTable(
			KeySensitivity, constraint.IntRange(1, 1000),
			KeyInvertX, constraint.Bool(),
			KeyInvertY, constraint.Bool(),
			KeyDeadzoneShape, enumDeadzoneShape,
			KeyDeadzoneInnerRadius, constraint.IntRange(0, 32000),
			KeyOutputJoystick, enumOutputJoystickMouse,
		),
	},
	ModeJoystickMove: {
		inputs: []string{InClick, InOuter, InEdge},
		settings: constraint.NewTable(
			KeyDeadzoneShape, enumDeadzoneShape,
			KeyDeadzoneInnerRadius, constraint.IntRange(0, 32000),
			KeyDeadzoneOuterRadius, constraint.IntRange(0, 32000),
			KeyEdgeBindingRadius, constraint.IntRange(0, 32000),
			KeyOutputJoystick, enumOutputJoystickMove,
		),
	},
	ModeMouseJoystick: {
		inputs: []string{InClick},
		settings: constraint.NewTable(
			// The source types haptic_intensity as a plain bool for
			// this one mode, unlike every other mode's enum — almost
			// certainly an oversight, since GroupMouseJoystick is the
			// only Group* whose haptic_intensity constraint isn't
			// HapticIntensity. Kept as the shared enum here for
			// consistency with the rest of the settings surface; the
			// wire encoding for "disabled"/"low" still round-trips
			// through the same small-int space a bool would use.
			KeyHapticIntensity, enumHapticIntensity,
			KeyMouseMoveThreshold, constraint.IntRange(0, 32000),
			KeyDeadzoneInnerRadius, constraint.IntRange(0, 32000),
			KeyMousejoystickDeadzoneX, constraint.IntRange(0, 32000),
			KeyMousejoystickDeadzoneY, constraint.IntRange(0, 32000),
			KeyMousejoystickPrecision, constraint.IntRange(1, 100),
			KeyOutputJoystick, enumOutputJoystickMouseRegion,
		),
	},
	ModeMouseRegion: {
		inputs: []string{InClick, InEdge},
		settings: constraint.NewTable(
			KeyScale, constraint.IntRange(1, 1000),
			KeyPositionX, constraint.IntRange(-100, 200),
			KeyPositionY, constraint.IntRange(-100, 200),
			KeyTeleportStop, constraint.Bool(),
			KeyRotation, constraint.IntRange(-30, 30),
			KeySensitivityHorizScale, constraint.IntRange(1, 200),
			KeySensitivityVertScale, constraint.IntRange(1, 200),
		),
	},
	ModeRadialMenu: {
		inputs: []string{InClick, InTouch},
		settings: constraint.NewTable(
			KeyTouchMenuButtonCount, constraint.IntRange(2, 20),
			KeyTouchmenuButtonFireType, enumTouchmenuButtonFireType,
		),
	},
	ModeScrollwheel: {
		inputs: []string{InButtonScrollUp, InButtonScrollDown, InButtonClick},
		settings: constraint.NewTable(
			KeyScrollAngle, constraint.IntRange(0, 359),
			KeyScrollType, enumScrollType,
			KeyScrollInvert, constraint.Bool(),
			KeyScrollWrap, constraint.Bool(),
			KeyScrollFriction, constraint.IntRange(0, 32000),
		),
	},
	ModeSingleButton: {
		inputs: []string{InClick},
		settings: constraint.NewTable(
			KeyHapticIntensity, enumHapticIntensity,
		),
	},
	ModeSwitches: {
		inputs: []string{
			InButtonEscape, InButtonMenu, InLeftBumper, InRightBumper,
			InButtonBackLeft, InButtonBackRight,
			InRightTriggerModeshift, InRightTriggerThresholdModeshift,
			InLeftTriggerModeshift, InLeftTriggerThresholdModeshift,
			InLeftClickModeshift, InRightClickModeshift, InLeftStickClickModeshift,
			InButtonAModeshift, InButtonBModeshift, InButtonXModeshift, InButtonYModeshift,
		},
		settings: constraint.NewTable(),
	},
	ModeTouchMenu: {
		inputs: []string{InClick, InTouch},
		settings: constraint.NewTable(
			KeyTouchMenuButtonCount, constraint.IntRange(2, 20),
			// The source types touch_menu_opacity as a bool even
			// though every touch_menu_* sibling key is an int range —
			// almost certainly a copy-paste slip from a nearby
			// on/off flag. Kept as an int range here (0-100) since
			// "opacity" only makes sense as a scalar percentage.
			KeyTouchMenuOpacity, constraint.IntRange(0, 100),
			KeyTouchMenuPositionX, constraint.IntRange(-100, 200),
			KeyTouchMenuPositionY, constraint.IntRange(-100, 200),
			KeyTouchMenuScale, constraint.IntRange(10, 500),
			KeyTouchMenuShowLabels, constraint.Bool(),
		),
	},
	ModeTrigger: {
		inputs: []string{InClick, InEdge},
		settings: constraint.NewTable(
			KeyOutputTrigger, enumOutputTrigger,
			KeyAdaptiveThreshold, enumAdaptiveThreshold,
			KeyDeadzone, constraint.IntRange(0, 32000),
			KeyEdgeBindingRadius, constraint.IntRange(0, 32000),
			KeyMouseDampeningTrigger, enumMouseDampeningTrigger,
			KeyMouseTriggerClampAmount, constraint.IntRange(0, 100),
		),
	},
}
