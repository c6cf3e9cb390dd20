package shorthand

import "github.com/PhaethonH/scbind/shift"

// ShifterDecl declares one shift-state key: its symbol, activation
// style, and the physical (cluster, pole) srcspec it sits at — the
// shift package's own Shifter only carries the opaque Sym, so the
// front end that knows the source tree's addressing keeps the
// cluster/pole side table the compiled Binds are realized against.
// Grounded on original_source/src/cfgmaker.py's CfgShifters declaration
// arguments.
type ShifterDecl struct {
	Sym     string
	Style   string
	Bitmask int
	Cluster string
	Pole    string
}

// Shiftmap is one action's shift-state declaration, grounded on
// spec.md §4.4's Inputs list: the shifter table, the per-level overlay
// layer assignment, bounce/lazy hermit emissions, and an optional
// sanity key, plus the involved-cluster bookkeeping the Preshift
// advancer pass needs.
type Shiftmap struct {
	Shifters  []ShifterDecl
	Overlays  map[int][]string
	Hermits   map[int]string
	SanitySym string

	// LayerClusters maps a declared overlay layer name to the clusters
	// it writes binds to; ClusterShape maps a cluster short-hand symbol
	// to its shift.Shape* constant.
	LayerClusters map[string][]string
	ClusterShape  map[string]string
}

// compile lowers this declaration into a shift.Spec and runs the
// shift-state compiler, computing the AssignedPoles set from the
// declared shifters themselves.
func (sm *Shiftmap) compile() (*shift.Compiled, map[string][2]string, error) {
	symPhysical := make(map[string][2]string, len(sm.Shifters))
	assigned := map[string]bool{}
	shifters := make([]shift.Shifter, 0, len(sm.Shifters))
	for _, sd := range sm.Shifters {
		style, err := shift.ParseStyle(sd.Style)
		if err != nil {
			return nil, nil, err
		}
		shifters = append(shifters, shift.Shifter{Sym: sd.Sym, Style: style, Bitmask: sd.Bitmask})
		symPhysical[sd.Sym] = [2]string{sd.Cluster, sd.Pole}
		if sd.Cluster != "" {
			assigned[sd.Cluster+"/"+sd.Pole] = true
		}
	}
	spec := shift.Spec{
		Shifters:      shifters,
		Overlays:      sm.Overlays,
		Hermits:       sm.Hermits,
		SanitySym:     sm.SanitySym,
		LayerClusters: sm.LayerClusters,
		ClusterShape:  sm.ClusterShape,
		AssignedPoles: assigned,
	}
	compiled, err := shift.Compile(spec)
	if err != nil {
		return nil, nil, err
	}
	return compiled, symPhysical, nil
}
