// Package shift implements the shift-state compiler: turning a declared
// set of shifter keys, per-level overlay assignments, and a handful of
// advanced behaviors (bounce/lazy "hermit" fallback emission, a sanity
// key) into a fixed lattice of synthesized layers and the binds that
// move between them. Grounded on spec.md §4.4 and
// original_source/src/cfgmaker.py's CfgShifters.
package shift

import (
	"fmt"
	"sort"
)

// Shifter is one input that manipulates the shift level.
type Shifter struct {
	Sym     string
	Style   Style
	Bitmask int
}

// Spec is the full declaration a Compile call consumes: the shifter
// table, per-level overlay layer lists, per-level hermit emissions, an
// optional sanity key, and the involved-cluster membership of every
// overlay layer (needed to build Preshift advancer binds).
type Spec struct {
	Shifters []Shifter
	Overlays map[int][]string // level -> ordered layer names applied at that level
	Hermits  map[int]string   // bit value -> hermit emission expression
	SanitySym string

	// LayerClusters maps a declared overlay layer name to the clusters
	// it writes binds to, and ClusterShape maps a cluster name to its
	// physical shape (one of the Shape* constants). Both are supplied by
	// the front end (shorthand's Shiftmap), which already knows the
	// source tree's cluster layout.
	LayerClusters map[string][]string
	ClusterShape  map[string]string

	// AssignedPoles lists, per cluster, the poles already bound to a
	// shifter or the sanity key (and therefore skipped by the advancer
	// pass), keyed "cluster/pole".
	AssignedPoles map[string]bool
}

// Op is one overlay-stack operation: apply or peel a synthesized or
// user-declared layer by name.
type Op struct {
	Apply bool
	Layer string
}

// Bind is one activator's worth of ops, attached to a source symbol
// within a specific layer. ActSig mirrors spec.md §4.4's "'+' for
// press-triggered transitions and '-' for release-triggered ones";
// StartPress advancer binds also use '+'.
type Bind struct {
	Layer  string
	Sym    string
	ActSig byte // '+' or '-'
	Ops    []Op
	Extra  string // hermit emission, attached to a release Bind, empty otherwise
}

// Compiled is the output of Compile: every synthesized layer name (in
// spec-mandated order) plus the full set of binds to merge into those
// layers and the base layer.
type Compiled struct {
	Layers []string
	Binds  []Bind
	MaxShift int
}

// Compile runs the shift-state algorithm in full against spec,
// following spec.md §4.4's four stages: validate declarations, compute
// maxshift, synthesize Preshift/Shift layer pairs and their content,
// then attach sanity and hermit binds.
func Compile(spec Spec) (*Compiled, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}
	maxShift := 0
	for _, s := range spec.Shifters {
		maxShift |= s.Bitmask
	}

	c := &Compiled{MaxShift: maxShift}
	for level := 1; level <= maxShift; level++ {
		c.Layers = append(c.Layers, preshiftName(level), shiftName(level))
	}

	// Base layer (level 0): scenario 5 names this explicitly ("pressing
	// LB in the base layer must apply Shift_1"). Layer "" denotes the
	// bare action set itself, which is never peeled by a tailPeel (level
	// 0 has nothing to peel) but still needs the press/release
	// transition bind for every shifter, since level 0 is where every
	// shift sequence starts.
	for _, s := range spec.Shifters {
		if s.Style == StyleSanity {
			continue
		}
		pressOps := transitionOps(spec, 0, s, true)
		releaseOps := transitionOps(spec, 0, s, false)
		c.Binds = append(c.Binds,
			Bind{Layer: "", Sym: s.Sym, ActSig: '+', Ops: pressOps},
			Bind{Layer: "", Sym: s.Sym, ActSig: '-', Ops: releaseOps},
		)
	}

	for level := 1; level <= maxShift; level++ {
		for _, s := range spec.Shifters {
			if s.Style == StyleSanity {
				continue
			}
			pressOps := transitionOps(spec, level, s, true)
			releaseOps := transitionOps(spec, level, s, false)
			c.Binds = append(c.Binds,
				Bind{Layer: shiftName(level), Sym: s.Sym, ActSig: '+', Ops: pressOps},
				Bind{Layer: shiftName(level), Sym: s.Sym, ActSig: '-', Ops: releaseOps},
			)
			if s.Style.usesPreshift() {
				preBind := Bind{Layer: preshiftName(level), Sym: s.Sym, ActSig: '+', Ops: pressOps}
				preRelease := Bind{Layer: preshiftName(level), Sym: s.Sym, ActSig: '-', Ops: releaseOps}
				if s.Bitmask == level {
					if hermit, ok := spec.Hermits[s.Bitmask]; ok {
						preRelease.Extra = hermit
					}
				}
				c.Binds = append(c.Binds, preBind, preRelease)
			}
		}
		c.Binds = append(c.Binds, advancerBinds(spec, level)...)
	}

	if spec.SanitySym != "" {
		c.Binds = append(c.Binds, Bind{
			Layer:  "",
			Sym:    spec.SanitySym,
			ActSig: '+',
			Ops:    peelAll(c.Layers, spec.Overlays),
		})
	}

	return c, nil
}

func validate(spec Spec) error {
	seen := 0
	for _, s := range spec.Shifters {
		if !implementedStyles[s.Style] {
			return fmt.Errorf("%w: %q", ErrUnknownShiftStyle, s.Style)
		}
		if s.Style == StyleSanity || s.Style == StyleHermit {
			continue
		}
		if seen&s.Bitmask != 0 {
			return fmt.Errorf("%w: shifter %q", ErrDuplicateShifterBit, s.Sym)
		}
		seen |= s.Bitmask
	}
	return nil
}

func preshiftName(level int) string { return fmt.Sprintf("Preshift_%d", level) }
func shiftName(level int) string    { return fmt.Sprintf("Shift_%d", level) }

// transitionOps implements spec.md §4.4's "Transition generator": a
// tail peel out of `level`, followed by the apply sequence into the new
// level reached by pressing or releasing shifter s from `level`.
func transitionOps(spec Spec, level int, s Shifter, press bool) []Op {
	var lPrime int
	if press {
		lPrime = level | s.Bitmask
	} else {
		lPrime = level &^ s.Bitmask
	}

	ops := tailPeel(level, spec.Overlays)

	if press && s.Style.usesPreshift() {
		ops = append(ops, Op{Apply: true, Layer: preshiftName(lPrime)})
	} else if lPrime != 0 {
		ops = append(ops, Op{Apply: true, Layer: shiftName(lPrime)})
	}
	for _, layer := range spec.Overlays[lPrime] {
		ops = append(ops, Op{Apply: true, Layer: layer})
	}
	return ops
}

// tailPeel peels the overlays declared for `level` (reverse order), then
// Preshift_level if it exists, then Shift_level — spec.md §4.4's "Tail
// (both edges)" rule. Level 0 has nothing to peel.
func tailPeel(level int, overlays map[int][]string) []Op {
	if level == 0 {
		return nil
	}
	var ops []Op
	layers := overlays[level]
	for i := len(layers) - 1; i >= 0; i-- {
		ops = append(ops, Op{Apply: false, Layer: layers[i]})
	}
	ops = append(ops, Op{Apply: false, Layer: preshiftName(level)})
	ops = append(ops, Op{Apply: false, Layer: shiftName(level)})
	return ops
}

// advancerBinds implements Preshift construction step 2: for every
// cluster written by an overlay at `level`, a defaulted Start_Press bind
// on every legal pole not already claimed by a shifter or the sanity
// key, applying Shift_level and then every overlay of level.
func advancerBinds(spec Spec, level int) []Bind {
	involved := involvedClusters(spec, level)
	var out []Bind
	for _, cluster := range involved {
		shape, ok := spec.ClusterShape[cluster]
		if !ok {
			continue
		}
		poles, ok := PolesForShape(shape)
		if !ok {
			continue
		}
		for _, pole := range poles {
			key := cluster + "/" + pole
			if spec.AssignedPoles[key] {
				continue
			}
			ops := []Op{{Apply: true, Layer: shiftName(level)}}
			for _, layer := range spec.Overlays[level] {
				ops = append(ops, Op{Apply: true, Layer: layer})
			}
			out = append(out, Bind{
				Layer:  preshiftName(level),
				Sym:    key,
				ActSig: '+',
				Ops:    ops,
			})
		}
	}
	return out
}

func involvedClusters(spec Spec, level int) []string {
	seen := map[string]bool{}
	var out []string
	for _, layer := range spec.Overlays[level] {
		for _, cluster := range spec.LayerClusters[layer] {
			if !seen[cluster] {
				seen[cluster] = true
				out = append(out, cluster)
			}
		}
	}
	sort.Strings(out)
	return out
}

// peelAll builds the sanity key's bind: peel every layer that has been
// involved (every overlay layer plus every synthesized Preshift_*/
// Shift_* layer), per spec.md §4.4's "Sanity" rule.
func peelAll(synthesized []string, overlays map[int][]string) []Op {
	seen := map[string]bool{}
	var ops []Op
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			ops = append(ops, Op{Apply: false, Layer: name})
		}
	}
	levels := make([]int, 0, len(overlays))
	for level := range overlays {
		levels = append(levels, level)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))
	for _, level := range levels {
		layers := overlays[level]
		for i := len(layers) - 1; i >= 0; i-- {
			add(layers[i])
		}
	}
	for i := len(synthesized) - 1; i >= 0; i-- {
		add(synthesized[i])
	}
	return ops
}
