package binding

import "strings"

// Binding connects an event generator, an optional label, and optional
// icon info, grounded on original_source/src/scconfig.py's Binding class.
type Binding struct {
	Gen   Evgen
	Label string
	Icon  *IconInfo
}

// String renders the canonical VDF "binding" leaf text: the generator's
// words, then ", label", then ", icon bg fg" if present — each clause
// only emitted up through the last non-empty one, matching Binding.__str__.
func (b Binding) String() string {
	phrases := []string{String(b.Gen)}
	if b.Label != "" {
		phrases = append(phrases, b.Label)
	} else if b.Icon != nil {
		phrases = append(phrases, "")
	}
	if b.Icon != nil {
		phrases = append(phrases, b.Icon.String())
	}
	return strings.Join(phrases, ", ")
}

// ParseBinding splits a raw "binding" leaf value on ", " into generator,
// label, and icon-info clauses, matching Binding._parse.
func ParseBinding(s string) Binding {
	phrases := strings.Split(s, ", ")
	var b Binding
	b.Gen = ParseEvgen(phrases[0])
	if len(phrases) > 1 {
		b.Label = phrases[1]
	}
	if len(phrases) > 2 {
		icon := ParseIconInfo(phrases[2])
		b.Icon = &icon
	}
	return b
}

// Invalid reports whether this binding's generator could not be resolved
// to a known verb (an EvgenInvalid placeholder).
func (b Binding) Invalid() bool {
	_, ok := b.Gen.(EvgenInvalid)
	return ok
}
