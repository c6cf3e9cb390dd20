package scconfig

import "github.com/PhaethonH/scbind/constraint"

// Shared enum value tables, grounded on the PseudoEnum classes declared
// alongside GroupBase in original_source/src/scconfig.py (Rotation,
// Acceleration, HapticIntensity, DeadzoneShape, OutputAxis, ScrollType,
// GyroButton, and so on). Each member maps a lowercase symbolic name to
// the integer that is written to VDF.

var enumAcceleration = constraint.Enum(map[string]int{
	"low":    0,
	"medium": 1,
	"high":   2,
	"none":   3,
})

var enumCurveExponent = constraint.Enum(map[string]int{
	"linear": 0,
	"mild":   1,
	"aggressive": 2,
})

var enumDeadzoneShape = constraint.Enum(map[string]int{
	"cross":   0,
	"circle":  1,
	"square":  2,
})

var enumOutputAxis = constraint.Enum(map[string]int{
	"none": 0,
	"x":    1,
	"y":    2,
})

var enumOutputTrigger = constraint.Enum(map[string]int{
	"none":    0,
	"left":    1,
	"right":   2,
})

var enumOutputJoystickCamera = constraint.Enum(map[string]int{
	"none":        0,
	"left_joystick":  1,
	"right_joystick": 2,
	"mouse":       3,
})

var enumOutputJoystickMouse = constraint.Enum(map[string]int{
	"mouse": 0,
})

var enumOutputJoystickMove = constraint.Enum(map[string]int{
	"none":           0,
	"left_joystick":  1,
	"right_joystick": 2,
})

var enumOutputJoystickMouseRegion = constraint.Enum(map[string]int{
	"mouse": 0,
})

var enumScrollType = constraint.Enum(map[string]int{
	"vertical":   0,
	"horizontal": 1,
	"both":       2,
})

// GyroButton: "always" means "no button gate". No group mode's settings
// table lists gyro_button, and the group encoder has no special case for
// this value.
var enumGyroButton = constraint.Enum(map[string]int{
	"always":       -1,
	"right_pad":    0,
	"left_pad":     1,
	"right_trigger": 2,
	"left_trigger": 3,
	"right_bumper": 4,
	"left_bumper":  5,
	"a":            10,
	"b":            11,
	"x":            12,
	"y":            13,
})

const gyroButtonAlwaysWire = "always"

var enumHapticIntensity = constraint.Enum(map[string]int{
	"disabled": 0,
	"low":      1,
	"medium":   2,
	"high":     3,
})

var enumTouchmenuButtonFireType = constraint.Enum(map[string]int{
	"release": 0,
	"click":   1,
	"start_press": 2,
})

var enumAdaptiveThreshold = constraint.Enum(map[string]int{
	"average": 0,
	"peak":    1,
})

var enumMouseDampeningTrigger = constraint.Enum(map[string]int{
	"none":   0,
	"left":   1,
	"right":  2,
})
