package scconfig

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/PhaethonH/scbind/constraint"
	"github.com/PhaethonH/scbind/vdf"
)

// Mapping settings keys, grounded on Mapping.Settings._VSC_KEYS.
const (
	KeyLeftTrackpadMode           = "left_trackpad_mode"
	KeyRightTrackpadMode          = "right_trackpad_mode"
	KeyActionSetTriggerCursorShow = "action_set_trigger_cursor_show"
	KeyActionSetTriggerCursorHide = "action_set_trigger_cursor_hide"
)

var mappingSettingsTable = constraint.NewTable(
	KeyLeftTrackpadMode, constraint.Int(),
	KeyRightTrackpadMode, constraint.Int(),
	KeyActionSetTriggerCursorShow, constraint.Int(),
	KeyActionSetTriggerCursorHide, constraint.Int(),
)

// Mapping is the toplevel controller_mappings object: metadata, the
// overlay pool (actions + action_layers), groups, presets, and
// miscellaneous trackpad-mode settings. Grounded on the Mapping class.
type Mapping struct {
	Version        int
	Revision       int
	Title          string
	Description    string
	Creator        string
	ControllerType string
	Timestamp      int64

	Actions []*Overlay // tier 0
	Layers  []*Overlay // tier 1
	Groups  []*Group
	Presets []*Preset

	Settings *constraint.Settings
}

// NewMapping returns a Mapping with the teacher's documented defaults
// (version 3, revision 1, "Unnamed"/"Unnamed configuration"/"Anonymous",
// controller_steamcontroller_gordon).
func NewMapping(title string) *Mapping {
	m := &Mapping{
		Version:        3,
		Revision:       1,
		Title:          title,
		Description:    "Unnamed configuration",
		Creator:        "Anonymous",
		ControllerType: "controller_steamcontroller_gordon",
		Settings:       constraint.NewSettings(mappingSettingsTable),
	}
	if title == "" {
		m.Title = "Unnamed"
	}
	return m
}

// AddActionSet appends a tier-0 overlay.
func (m *Mapping) AddActionSet(o *Overlay) { m.Actions = append(m.Actions, o) }

// AddActionLayer appends a tier-1 overlay.
func (m *Mapping) AddActionLayer(o *Overlay) { m.Layers = append(m.Layers, o) }

// AddGroup appends a Group.
func (m *Mapping) AddGroup(g *Group) { m.Groups = append(m.Groups, g) }

// AddPreset appends a Preset, validating every group ID it references
// against m.Groups.
func (m *Mapping) AddPreset(p *Preset) error {
	for groupID := range p.GSB {
		if m.findGroup(groupID) == nil {
			return fmt.Errorf("%w: %d", ErrUnknownGroup, groupID)
		}
	}
	m.Presets = append(m.Presets, p)
	return nil
}

func (m *Mapping) findGroup(id int) *Group {
	for _, g := range m.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// EncodeKV renders the full controller_mappings body. Matches
// Mapping.encode_kv: overlays are serialized as one block keyed by their
// pool-unique name, while groups and presets repeat the "group"/"preset"
// key once per instance (OrderedMultiMap's multi-valued Set models this
// directly, unlike a plain Go map).
func (m *Mapping) EncodeKV() *vdf.OrderedMultiMap {
	kv := vdf.NewOMM()
	kv.Set("version", strconv.Itoa(m.Version))
	kv.Set("revision", strconv.Itoa(m.Revision))
	kv.Set("title", m.Title)
	kv.Set("description", m.Description)
	kv.Set("creator", m.Creator)
	kv.Set("controller_type", m.ControllerType)
	kv.Set("Timestamp", strconv.FormatInt(m.Timestamp, 10))

	if len(m.Actions) > 0 {
		kv.Set("actions", m.encodeOverlayPool(m.Actions))
	}
	if len(m.Layers) > 0 {
		kv.Set("action_layers", m.encodeOverlayPool(m.Layers))
	}

	groups := append([]*Group(nil), m.Groups...)
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	for _, g := range groups {
		kv.Set("group", g.EncodeKV())
	}

	presets := append([]*Preset(nil), m.Presets...)
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	for _, p := range presets {
		kv.Set("preset", p.EncodeKV())
	}

	settings := vdf.NewOMM()
	for _, key := range m.Settings.Keys() {
		if s, ok := m.Settings.EncodeString(key); ok {
			settings.Set(key, s)
		}
	}
	kv.Set("settings", settings)
	return kv
}

func (m *Mapping) encodeOverlayPool(pool []*Overlay) *vdf.OrderedMultiMap {
	kv := vdf.NewOMM()
	for _, o := range pool {
		kv.Set(o.Name, o.EncodeKV())
	}
	return kv
}
