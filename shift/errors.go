package shift

import "fmt"

// ErrUnknownShiftStyle is returned for a shifter style outside the
// recognized set, including the two reserved-but-unimplemented styles
// (latch, eager — see the doc comment on Style).
var ErrUnknownShiftStyle = fmt.Errorf("shift: unknown or unimplemented shift style")

// ErrDuplicateShifterBit is returned when two shifters declare
// overlapping bitmasks, which would make level arithmetic ambiguous.
var ErrDuplicateShifterBit = fmt.Errorf("shift: shifter bitmasks overlap")

// ErrUnknownClusterShape names an involved cluster shape that is not one
// of the six recognized pole shapes. Compile does not return it: the
// advancer pass skips such a cluster.
var ErrUnknownClusterShape = fmt.Errorf("shift: unknown cluster shape")
