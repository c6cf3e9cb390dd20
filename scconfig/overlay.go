package scconfig

import (
	"strconv"

	"github.com/PhaethonH/scbind/vdf"
)

// Tier distinguishes an ActionSet (tier 0, the foundation action set a
// controller config boots into) from an ActionLayer (tier 1, stacked on
// top of whichever set or layer is currently active). Grounded on
// Overlay's own tier/set_layer commentary.
type Tier int

const (
	TierActionSet Tier = iota
	TierActionLayer
)

// Overlay is the shared shape behind ActionSet and ActionLayer: a title,
// a legacy-emulation flag, and (for layers) the name of the parent set
// or layer it stacks onto.
type Overlay struct {
	Name           string
	Title          string
	Tier           Tier
	Legacy         bool
	ParentSetName  string
}

// NewActionSet constructs a tier-0 overlay (an Action Set).
func NewActionSet(name, title string) *Overlay {
	return &Overlay{Name: name, Title: title, Tier: TierActionSet, Legacy: true}
}

// NewActionLayer constructs a tier-1 overlay (an Action Layer) stacked
// onto parentSetName.
func NewActionLayer(name, title, parentSetName string) *Overlay {
	return &Overlay{Name: name, Title: title, Tier: TierActionLayer, Legacy: true, ParentSetName: parentSetName}
}

// EncodeKV renders the overlay body (not including its name key, which
// the owning Mapping attaches), mirroring Overlay.encode_kv.
func (o *Overlay) EncodeKV() *vdf.OrderedMultiMap {
	kv := vdf.NewOMM()
	kv.Set("title", o.Title)
	legacy := 0
	if o.Legacy {
		legacy = 1
	}
	kv.Set("legacy_set", strconv.Itoa(legacy))
	if o.Tier == TierActionLayer {
		kv.Set("set_layer", "1")
	}
	if o.ParentSetName != "" {
		kv.Set("parent_set_name", o.ParentSetName)
	}
	return kv
}
