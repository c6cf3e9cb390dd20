package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnresolvedKey is returned when a source key does not match any
// known cluster short-hand, pole alias, or canonical cluster/pole form.
var ErrUnresolvedKey = fmt.Errorf("normalize: unresolved key")

// Cluster short-hand symbols, grounded on spec.md §4.5's key list.
const (
	ClusterLeftJoystick  = "LJ"
	ClusterDpad          = "DP"
	ClusterButtonDiamond = "BQ"
	ClusterLeftTrigger   = "LT"
	ClusterRightTrigger  = "RT"
	ClusterLeftPad       = "LP"
	ClusterRightPad      = "RP"
	ClusterSwitches      = "SW"
)

var knownClusters = map[string]bool{
	ClusterLeftJoystick: true, ClusterDpad: true, ClusterButtonDiamond: true,
	ClusterLeftTrigger: true, ClusterRightTrigger: true, ClusterLeftPad: true,
	ClusterRightPad: true, ClusterSwitches: true,
}

// poleAlias is a unique inline key that resolves directly to a
// (cluster, pole) pair without the dotted cluster.pole form — e.g. "LS"
// for the left joystick's click pole.
var poleAliases = map[string][2]string{
	"LS": {ClusterLeftJoystick, "c"},
	"RS": {"RJ", "c"},
	"LB": {ClusterSwitches, "LB"}, // left bumper: switches-cluster pole, matches shift's ShapeSwitches
	"RB": {ClusterSwitches, "RB"}, // right bumper
	"LG": {ClusterSwitches, "LG"}, // left grip
	"RG": {ClusterSwitches, "RG"}, // right grip
	"BK": {ClusterSwitches, "BK"},
	"ST": {ClusterSwitches, "ST"},
}

// ResolveKey resolves a source key into a (cluster-sym, pole-sym) pair:
// a bare cluster short-hand (e.g. "LJ"), a dotted cluster.pole form
// (e.g. "DP.u"), or an inline pole alias (e.g. "LS"), per spec.md §4.5.
func ResolveKey(key string) (cluster, pole string, err error) {
	if pair, ok := poleAliases[key]; ok {
		return pair[0], pair[1], nil
	}
	if dot := strings.IndexByte(key, '.'); dot >= 0 {
		c, p := key[:dot], key[dot+1:]
		if !knownClusters[c] {
			return "", "", fmt.Errorf("%w: %q", ErrUnresolvedKey, key)
		}
		return c, p, nil
	}
	if knownClusters[key] {
		return key, "", nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnresolvedKey, key)
}

// AutoStyle infers a cluster's group mode from its observed pole set,
// per spec.md §4.5's auto_style rule.
func AutoStyle(poles []string) string {
	set := make(map[string]bool, len(poles))
	for _, p := range poles {
		set[strings.ToLower(p)] = true
	}
	switch {
	case set["u"] || set["d"] || set["l"] || set["r"]:
		return "dpad"
	case set["a"] || set["b"] || set["x"] || set["y"] || set["s"] || set["e"] || set["w"] || set["n"]:
		return "four_buttons"
	case set["bk"] || set["st"] || set["lb"] || set["rb"] || set["lg"] || set["rg"] || set["inf"]:
		return "switches"
	}
	if nums, ok := numericPoles(poles); ok {
		return menuStyle(nums)
	}
	return ""
}

func numericPoles(poles []string) ([]int, bool) {
	var nums []int
	for _, p := range poles {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, len(nums) > 0
}

// menuStyle disambiguates touch_menu vs radial_menu from a numeric pole
// set at strictness=0, per spec.md §4.5's exact rule.
func menuStyle(poles []int) string {
	has0 := false
	maxN := 0
	for _, n := range poles {
		if n == 0 {
			has0 = true
		}
		if n > maxN {
			maxN = n
		}
	}
	isMenuCount := func(n int) bool {
		switch n {
		case 2, 4, 7, 9, 12, 13, 16:
			return true
		}
		return false
	}
	for _, n := range poles {
		if isMenuCount(n) && !has0 {
			return "touch_menu"
		}
	}
	if has0 {
		return "radial_menu"
	}
	if maxN > 16 {
		return "radial_menu"
	}
	return ""
}

// TranslateSetting lowers a settings short-hand key/value pair into its
// canonical numeric (key, value) form. Unrecognized keys pass through
// unchanged — most settings are already numeric in the source tree.
func TranslateSetting(key, value string) (string, string) {
	switch key {
	case "layout":
		switch value {
		case "analog":
			return "layout", "0"
		case "digital":
			return "layout", "1"
		}
	}
	return key, value
}

// MouseRegionRect parses the mouse_region "rect" short-hand
// ("WxH+X+Y") into four values keyed scale (W), scale_h (H),
// position_x (X) and position_y (Y). The values are returned as the
// source strings; no sensitivity setting is derived.
func MouseRegionRect(rect string) (map[string]string, error) {
	// WxH+X+Y
	xIdx := strings.IndexByte(rect, 'x')
	if xIdx < 0 {
		return nil, fmt.Errorf("normalize: malformed rect %q", rect)
	}
	w := rect[:xIdx]
	rest := rect[xIdx+1:]
	plus1 := strings.IndexByte(rest, '+')
	if plus1 < 0 {
		return nil, fmt.Errorf("normalize: malformed rect %q", rect)
	}
	h := rest[:plus1]
	rest = rest[plus1+1:]
	plus2 := strings.IndexByte(rest, '+')
	if plus2 < 0 {
		return nil, fmt.Errorf("normalize: malformed rect %q", rect)
	}
	x := rest[:plus2]
	y := rest[plus2+1:]
	return map[string]string{
		"scale":      w,
		"position_x": x,
		"position_y": y,
		"scale_h":    h,
	}, nil
}

// sortedKeys returns a Node map's keys in sorted order, for walking it
// deterministically regardless of source order. Nothing in the exporter
// calls it; the exporter walks maps in source order.
func sortedKeys(n *Node) []string {
	if n == nil {
		return nil
	}
	out := append([]string(nil), n.Keys...)
	sort.Strings(out)
	return out
}
