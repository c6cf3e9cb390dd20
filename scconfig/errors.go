package scconfig

import "fmt"

// ErrDuplicateName is returned when two sibling Overlay/ActionSet/Preset
// entries collide on the same generated or explicit name.
var ErrDuplicateName = fmt.Errorf("scconfig: duplicate name")

// ErrUnknownGroup is returned when a GroupSourceBinding references a
// group ID that has not been registered on the Mapping.
var ErrUnknownGroup = fmt.Errorf("scconfig: unknown group id")
