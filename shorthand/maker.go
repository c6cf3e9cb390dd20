package shorthand

import (
	"fmt"
	"strings"

	"github.com/PhaethonH/scbind/binding"
	"github.com/PhaethonH/scbind/normalize"
	"github.com/PhaethonH/scbind/scconfig"
	"github.com/PhaethonH/scbind/shift"
)

// CfgLayer is one named layer's srcspec-to-expression table, grounded
// on CfgLayer.
type CfgLayer struct {
	Name    string
	Parent  string // empty for a tier-0 action set
	Entries map[string]string // srcspec text -> binding expression text
}

// CfgAction groups one named action's layers, grounded on CfgAction.
// Shiftmap, when set, declares the action's shift-state lattice
// (spec.md §4.4/§4.4.1); Build compiles it through the shift package
// and realizes the result as additional ActionLayers/Groups/Presets.
type CfgAction struct {
	Name     string
	Layers   []CfgLayer
	Shiftmap *Shiftmap
}

// NewCfgAction returns an empty action named name.
func NewCfgAction(name string) *CfgAction {
	return &CfgAction{Name: name}
}

// AddLayer appends a layer to the action. parent is empty for the
// action's base (tier-0) layer.
func (a *CfgAction) AddLayer(name, parent string) *CfgLayer {
	a.Layers = append(a.Layers, CfgLayer{Name: name, Parent: parent, Entries: map[string]string{}})
	return &a.Layers[len(a.Layers)-1]
}

// Bind records one srcspec -> binding-expression assignment.
func (l *CfgLayer) Bind(srcspec, expr string) {
	l.Entries[srcspec] = expr
}

// Maker accumulates CfgActions and lowers them into a scconfig.Mapping,
// resolving each srcspec through ResolveKey-compatible cluster/pole
// addressing and each expression through the binding package's
// expression language — grounded on CfgMaker's own two-stage lowering
// (parse source tree, then emit scconfig objects).
type Maker struct {
	Title   string
	Actions []*CfgAction
	Aliases map[string]string
}

// NewMaker returns an empty Maker.
func NewMaker(title string) *Maker {
	return &Maker{Title: title, Aliases: map[string]string{}}
}

// AddAction appends an action under construction.
func (m *Maker) AddAction(a *CfgAction) {
	m.Actions = append(m.Actions, a)
}

// Build lowers every recorded action/layer/srcspec/expression into a
// scconfig.Mapping: one ActionSet per tier-0 layer, one ActionLayer per
// tier-1+ layer, and one Group per distinct cluster encountered,
// expanding aliases and parsing binding expressions along the way. An
// action carrying a Shiftmap additionally runs it through shift.Compile
// and realizes every synthesized layer/bind the compiler produces.
func (m *Maker) Build() (*scconfig.Mapping, error) {
	mapping := scconfig.NewMapping(m.Title)
	groupID := 0
	groupByCluster := map[string]int{}
	overlayIndex := map[string]int{}
	nextOverlayIndex := 0
	registerOverlay := func(name string) {
		overlayIndex[name] = nextOverlayIndex
		nextOverlayIndex++
	}
	presetID := 0
	presets := map[string]*scconfig.Preset{}
	getPreset := func(overlayName string) *scconfig.Preset {
		if p, ok := presets[overlayName]; ok {
			return p
		}
		p := scconfig.NewPreset(presetID, overlayName)
		presetID++
		presets[overlayName] = p
		return p
	}

	for _, action := range m.Actions {
		baseOverlayName := ""
		for _, layer := range action.Layers {
			overlayName := action.Name + "/" + layer.Name
			if layer.Parent == "" {
				mapping.AddActionSet(scconfig.NewActionSet(overlayName, layer.Name))
				baseOverlayName = overlayName
			} else {
				mapping.AddActionLayer(scconfig.NewActionLayer(overlayName, layer.Name, action.Name+"/"+layer.Parent))
			}
			registerOverlay(overlayName)

			for srcspecText, exprText := range layer.Entries {
				spec, err := ParseSrcspec(srcspecText)
				if err != nil {
					return nil, err
				}
				expr := exprText
				if expanded, err := binding.ExpandAliases(expr, m.Aliases); err == nil {
					expr = expanded
				}
				parsed, err := binding.ParseExpr(expr)
				if err != nil {
					return nil, fmt.Errorf("shorthand: %s: %w", srcspecText, err)
				}
				act, err := binding.BuildActivator(parsed)
				if err != nil {
					return nil, err
				}

				id, ok := groupByCluster[spec.Cluster]
				if !ok {
					id = groupID
					groupID++
					groupByCluster[spec.Cluster] = id
				}
				shape := normalize.AutoStyle([]string{spec.Pole})
				mode := groupModeForCluster(spec.Cluster, shape)
				group := findOrCreateGroup(mapping, id, mode)
				source := inputSourceFor(mode, spec.Cluster, spec.Pole)
				if err := group.AddInput(source, act); err != nil {
					return nil, fmt.Errorf("shorthand: %s: %w", srcspecText, err)
				}
			}
		}

		if action.Shiftmap != nil {
			if err := buildShiftmap(mapping, action, baseOverlayName, &groupID, overlayIndex, registerOverlay, getPreset); err != nil {
				return nil, fmt.Errorf("shorthand: action %q: %w", action.Name, err)
			}
		}
	}

	for _, p := range presets {
		if err := mapping.AddPreset(p); err != nil {
			return nil, err
		}
	}
	return mapping, nil
}

// buildShiftmap compiles one action's Shiftmap and realizes the result:
// every Compiled.Layers entry becomes a tier-1 ActionLayer parented on
// the action's own base action set, and every Compiled.Binds entry is
// lowered into a Group input whose Activator carries one EvgenOverlay
// per shift.Op, with the gated cluster or Preshift advancer pole
// resolved through the Shiftmap's own cluster/pole side table.
//
// Groups are keyed per (layer, cluster) here rather than by cluster
// alone: the same physical cluster legitimately needs a distinct Group
// per synthesized layer, since each layer's binds are independent.
func buildShiftmap(mapping *scconfig.Mapping, action *CfgAction, baseOverlayName string, groupID *int, overlayIndex map[string]int, registerOverlay func(string), getPreset func(string) *scconfig.Preset) error {
	sm := action.Shiftmap
	compiled, symPhysical, err := sm.compile()
	if err != nil {
		return err
	}

	qualified := func(layer string) string {
		if layer == "" {
			return baseOverlayName
		}
		return action.Name + "/" + layer
	}
	for _, layer := range compiled.Layers {
		name := qualified(layer)
		mapping.AddActionLayer(scconfig.NewActionLayer(name, layer, baseOverlayName))
		registerOverlay(name)
	}

	groupByLayerCluster := map[string]*scconfig.Group{}
	type pending struct {
		group  *scconfig.Group
		source string
	}
	activators := map[string]*binding.Activator{}
	order := map[string]pending{}

	for _, bind := range compiled.Binds {
		phys, ok := symPhysical[bind.Sym]
		if !ok {
			cluster, pole, found := strings.Cut(bind.Sym, "/")
			if !found {
				continue // unresolvable bind symbol: no physical address known
			}
			phys = [2]string{cluster, pole}
		}
		cluster, pole := phys[0], phys[1]
		if cluster == "" {
			continue
		}
		layerName := qualified(bind.Layer)
		groupKey := layerName + "\x00" + cluster

		group, ok := groupByLayerCluster[groupKey]
		if !ok {
			shape := normalize.AutoStyle([]string{pole})
			mode := groupModeForCluster(cluster, shape)
			g, err := scconfig.NewGroup(*groupID, mode)
			if err != nil {
				return err
			}
			*groupID++
			mapping.AddGroup(g)
			groupByLayerCluster[groupKey] = g
			group = g
			if source := physicalSourceForCluster(cluster); source != "" {
				preset := getPreset(layerName)
				if err := preset.AddGroupSourceBinding(g.ID, source, true, false); err != nil {
					return err
				}
			}
		}

		shape := normalize.AutoStyle([]string{pole})
		mode := groupModeForCluster(cluster, shape)
		source := inputSourceFor(mode, cluster, pole)
		actKey := groupKey + "\x00" + source

		ops := make([]shift.Op, len(bind.Ops))
		for i, op := range bind.Ops {
			ops[i] = shift.Op{Apply: op.Apply, Layer: qualified(op.Layer)}
		}
		bindings, err := overlayBindings(ops, overlayIndex)
		if err != nil {
			return err
		}
		if bind.Extra != "" {
			extraParsed, err := binding.ParseExpr(bind.Extra)
			if err == nil {
				if extraAct, err := binding.BuildActivator(extraParsed); err == nil {
					bindings = append(bindings, extraAct.Bindings...)
				}
			}
		}

		act, ok := activators[actKey]
		if !ok {
			act, err = binding.NewActivator(binding.SignalFullPress)
			if err != nil {
				return err
			}
			activators[actKey] = act
			order[actKey] = pending{group: group, source: source}
		}
		for _, b := range bindings {
			act.AddBinding(b)
		}
	}

	for key, act := range activators {
		p := order[key]
		if err := p.group.AddInput(p.source, act); err != nil {
			return err
		}
	}
	return nil
}

// overlayBindings renders a shift.Op sequence as EvgenOverlay bindings,
// resolving each Op's target layer name to its pool index via
// overlayIndex — the naming-pool-wide assignment Build accumulates as
// it registers every ActionSet/ActionLayer.
func overlayBindings(ops []shift.Op, overlayIndex map[string]int) ([]binding.Binding, error) {
	out := make([]binding.Binding, 0, len(ops))
	for _, op := range ops {
		idx, ok := overlayIndex[op.Layer]
		if !ok {
			return nil, fmt.Errorf("shift-compiled op references unregistered overlay %q", op.Layer)
		}
		word := "peel"
		if op.Apply {
			word = "apply"
		}
		gen, err := binding.NewOverlay(word, idx, 0, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, binding.Binding{Gen: gen})
	}
	return out, nil
}

// physicalSourceForCluster maps a two-letter cluster short-hand to the
// scconfig.ValidGroupSources wire name used to attach its group within
// a preset.
func physicalSourceForCluster(cluster string) string {
	switch cluster {
	case "LJ":
		return "joystick"
	case "RJ":
		return "right_joystick"
	case "DP":
		return "dpad"
	case "BQ":
		return "button_diamond"
	case "LT":
		return "left_trigger"
	case "RT":
		return "right_trigger"
	case "LP":
		return "left_trackpad"
	case "RP":
		return "right_trackpad"
	case "BK", "ST", "LB", "RB", "LG", "RG":
		return "switch"
	}
	return ""
}

func findOrCreateGroup(mapping *scconfig.Mapping, id int, mode string) *scconfig.Group {
	for _, g := range mapping.Groups {
		if g.ID == id {
			return g
		}
	}
	g, err := scconfig.NewGroup(id, mode)
	if err != nil {
		// Unreachable: groupModeForCluster only returns known modes.
		panic(err)
	}
	mapping.AddGroup(g)
	return g
}

// groupModeForCluster maps a two-letter cluster code to its natural
// scconfig group mode, consulting the inferred pole shape for clusters
// whose mode varies by pole (trackpads: absolute_mouse/mouse_joystick).
func groupModeForCluster(cluster, shape string) string {
	switch cluster {
	case "LT", "RT":
		return scconfig.ModeTrigger
	case "LJ", "RJ":
		return scconfig.ModeJoystickMove
	case "LP", "RP":
		return scconfig.ModeAbsoluteMouse
	case "BQ":
		return scconfig.ModeFourButtons
	case "BK", "ST", "LB", "RB", "LG", "RG":
		return scconfig.ModeSwitches
	default:
		if shape == "dpad" {
			return scconfig.ModeDpad
		}
		return scconfig.ModeSingleButton
	}
}

func inputSourceFor(mode, cluster, pole string) string {
	switch mode {
	case scconfig.ModeSwitches:
		switch cluster {
		case "BK":
			return scconfig.InButtonEscape
		case "ST":
			return scconfig.InButtonMenu
		case "LB":
			return scconfig.InLeftBumper
		case "RB":
			return scconfig.InRightBumper
		case "LG":
			return scconfig.InButtonBackLeft
		case "RG":
			return scconfig.InButtonBackRight
		}
		return scconfig.InButtonEscape
	case scconfig.ModeFourButtons:
		switch pole {
		case "a", "s":
			return scconfig.InButtonA
		case "b", "e":
			return scconfig.InButtonB
		case "x", "w":
			return scconfig.InButtonX
		case "y", "n":
			return scconfig.InButtonY
		}
	case scconfig.ModeDpad:
		switch pole {
		case "u":
			return scconfig.InDpadUp
		case "d":
			return scconfig.InDpadDown
		case "l":
			return scconfig.InDpadLeft
		case "r":
			return scconfig.InDpadRight
		}
	case scconfig.ModeTrigger:
		if pole == "c" {
			return scconfig.InClick
		}
		return scconfig.InEdge
	}
	return scconfig.InClick
}
