package binding

import "strings"

// IconInfo is the third, optional portion of a binding command, used by
// radial-menu items: an icon path plus foreground/background color hints.
// Grounded on original_source/src/scconfig.py's IconInfo.
type IconInfo struct {
	Path, BG, FG string
}

func (i IconInfo) String() string {
	return strings.Join([]string{i.Path, i.BG, i.FG}, " ")
}

// ParseIconInfo splits a "path bg fg" triple the way IconInfo.__init__
// does for its space-joined constructor argument.
func ParseIconInfo(s string) IconInfo {
	words := strings.Fields(s)
	var out IconInfo
	if len(words) > 0 {
		out.Path = words[0]
	}
	if len(words) > 1 {
		out.BG = words[1]
	}
	if len(words) > 2 {
		out.FG = words[2]
	}
	return out
}

// mangleVDFLiteral sanitizes a raw string for safe embedding in a
// diagnostic placeholder binding: quotes become apostrophes, double
// slashes become a single slash (so they can't start a VDF comment), and
// commas become semicolons (so they can't be mistaken for a Binding field
// separator). Grounded on original_source/src/scconfig.py's
// mangle_vdfliteral.
func mangleVDFLiteral(s string) string {
	s = strings.ReplaceAll(s, `"`, `'`)
	s = strings.ReplaceAll(s, `//`, `/`)
	s = strings.ReplaceAll(s, `,`, `;`)
	return s
}
