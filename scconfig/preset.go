package scconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PhaethonH/scbind/vdf"
)

const (
	vscActive    = "active"
	vscInactive  = "inactive"
	vscModeshift = "modeshift" // no underscore, matches the preset{} wire spelling
)

// ValidGroupSources lists the group-source cluster names a binding may
// attach a group to within a preset, transcribed from
// GroupSourceBindingValue.ValidSources.
var ValidGroupSources = map[string]bool{
	"switch":          true,
	"dpad":            true,
	"button_diamond":  true,
	"left_trackpad":   true,
	"right_trackpad":  true,
	"left_trigger":    true,
	"right_trigger":   true,
	"joystick":        true,
	"right_joystick":  true,
}

// ErrBadGroupSource is returned when a group-source-binding names a
// cluster outside ValidGroupSources.
var ErrBadGroupSource = fmt.Errorf("scconfig: invalid group source")

// GroupSourceBinding attaches one Group (by ID) to a physical input
// cluster within a Preset, with active/modeshift flags.
type GroupSourceBinding struct {
	Source    string
	Active    bool
	Modeshift bool
}

// NewGroupSourceBinding validates source against ValidGroupSources.
func NewGroupSourceBinding(source string, active, modeshift bool) (GroupSourceBinding, error) {
	if !ValidGroupSources[source] {
		return GroupSourceBinding{}, fmt.Errorf("%w: %q", ErrBadGroupSource, source)
	}
	return GroupSourceBinding{Source: source, Active: active, Modeshift: modeshift}, nil
}

// EncodeString renders "source active|inactive [modeshift]", matching
// GroupSourceBindingValue.encode_kv.
func (g GroupSourceBinding) EncodeString() string {
	words := []string{g.Source}
	if g.Active {
		words = append(words, vscActive)
	} else {
		words = append(words, vscInactive)
	}
	if g.Modeshift {
		words = append(words, vscModeshift)
	}
	return strings.Join(words, " ")
}

// Preset names one curated binding layout: a set of Groups selectively
// attached to controller clusters. Grounded on the Preset class.
type Preset struct {
	ID   int
	Name string
	GSB  map[int]GroupSourceBinding // group id -> binding
}

// PresetName computes a Preset's canonical VDF name: index 0 is always
// "Default"; every other index becomes "Preset_<1000000+index>",
// matching the Steam client's own internal numbering scheme as
// reverse-engineered in the Mapping.encode_kv commentary (overlay/preset
// names are treated as a large-base counter so lexicographic sort
// matches creation order).
func PresetName(id int) string {
	if id == 0 {
		return "Default"
	}
	return fmt.Sprintf("Preset_%07d", 1000000+id)
}

// NewPreset constructs an empty Preset.
func NewPreset(id int, name string) *Preset {
	if name == "" {
		name = PresetName(id)
	}
	return &Preset{ID: id, Name: name, GSB: make(map[int]GroupSourceBinding)}
}

// AddGroupSourceBinding attaches groupID to this preset via source.
func (p *Preset) AddGroupSourceBinding(groupID int, source string, active, modeshift bool) error {
	gsb, err := NewGroupSourceBinding(source, active, modeshift)
	if err != nil {
		return err
	}
	p.GSB[groupID] = gsb
	return nil
}

// EncodeKV renders this preset's body, mirroring Preset.encode_kv.
func (p *Preset) EncodeKV() *vdf.OrderedMultiMap {
	kv := vdf.NewOMM()
	kv.Set("id", strconv.Itoa(p.ID))
	kv.Set("name", p.Name)
	gsb := vdf.NewOMM()
	for groupID, binding := range p.GSB {
		gsb.Set(strconv.Itoa(groupID), binding.EncodeString())
	}
	kv.Set("group_source_bindings", gsb)
	return kv
}
