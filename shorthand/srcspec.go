// Package shorthand implements the CfgMaker-lineage alternate front
// end: a terser cluster/pole addressing grammar than the canonical
// scconfig tree, lowering through the same binding expression language
// as the primary normalize front end. Unlike normalize, it also runs an
// action's shiftmap through the shift compiler. Grounded on
// original_source/src/cfgmaker.py's Srcspec/CfgAction/CfgLayer.
package shorthand

import (
	"fmt"
	"strings"
)

// ErrMalformedSrcspec is returned when a source specifier does not
// match the cluster/pole addressing grammar.
var ErrMalformedSrcspec = fmt.Errorf("shorthand: malformed source specifier")

// clusterSyms lists the recognized two-letter (or two-name) cluster
// codes, transcribed from Srcspec.REGEX's alternation
// "[LR][TBGPSJ]|GY|BQ|BK|ST".
var clusterSyms = map[string]bool{
	"LT": true, "RT": true, "LB": true, "RB": true, "LG": true, "RG": true,
	"LP": true, "RP": true, "LS": true, "RS": true, "LJ": true, "RJ": true,
	"GY": true, "BQ": true, "BK": true, "ST": true,
}

var sigBytes = map[byte]bool{'/': true, '+': true, '-': true, '_': true, '=': true, ':': true, '&': true}

// Srcspec is one parsed source specifier: an optional actuation
// signature character, a cluster symbol, and an optional pole or
// two-digit numeric subpart.
type Srcspec struct {
	ActSig  byte // 0 if absent
	Cluster string
	Pole    string // may be empty (whole-cluster reference)
}

// ParseSrcspec hand-scans the grammar
// `sig? cluster ('.' pole)?` where cluster is one of the fixed
// two-letter codes (or "GY") and pole is a single letter from
// "neswabxyudlrcet" or a two-digit number, matching
// Srcspec.REGEX without using regexp.
func ParseSrcspec(s string) (Srcspec, error) {
	i := 0
	var spec Srcspec
	if i < len(s) && sigBytes[s[i]] {
		spec.ActSig = s[i]
		i++
	}
	if i+2 > len(s) {
		return Srcspec{}, fmt.Errorf("%w: %q", ErrMalformedSrcspec, s)
	}
	cluster := s[i : i+2]
	if !clusterSyms[cluster] {
		return Srcspec{}, fmt.Errorf("%w: %q", ErrMalformedSrcspec, s)
	}
	spec.Cluster = cluster
	i += 2
	if i == len(s) {
		return spec, nil
	}
	if s[i] != '.' {
		return Srcspec{}, fmt.Errorf("%w: %q", ErrMalformedSrcspec, s)
	}
	i++
	rest := s[i:]
	if rest == "" {
		return Srcspec{}, fmt.Errorf("%w: %q", ErrMalformedSrcspec, s)
	}
	if len(rest) == 2 && isDigit(rest[0]) && isDigit(rest[1]) {
		spec.Pole = rest
		return spec, nil
	}
	if len(rest) == 1 && strings.IndexByte("neswabxyudlrcet", rest[0]) >= 0 {
		spec.Pole = rest
		return spec, nil
	}
	return Srcspec{}, fmt.Errorf("%w: %q", ErrMalformedSrcspec, s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
