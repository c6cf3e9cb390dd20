package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PhaethonH/scbind/binding"
	"github.com/PhaethonH/scbind/scconfig"
	"github.com/PhaethonH/scbind/shift"
)

// Export walks a normalized source tree and produces a scconfig.Mapping.
// It accepts either the canonical controller_mappings-rooted schema or
// the short-hand {name, revision, ..., action[]} schema described in
// spec.md §6: the canonical schema's fields are read directly; the
// short-hand schema's per-action cluster/pole assignments are resolved
// through ResolveKey/AutoStyle before being lowered into Groups. Of the
// canonical schema only the metadata (title, description, creator,
// controller_type, revision) is read; its actions, action_layers,
// groups, presets and settings are not.
//
// In non-strict mode an entry that fails to resolve or parse is skipped
// and exporting continues; in strict mode the first such failure is
// returned as an error.
func Export(root *Node, strict bool) (*scconfig.Mapping, error) {
	if cm, ok := root.Get("controller_mappings"); ok && cm.Kind == KindMap {
		root = cm
	}
	if title, ok := root.GetString("title"); ok {
		return exportCanonical(root, title)
	}
	if name, ok := root.GetString("name"); ok {
		return exportShorthand(root, name, strict)
	}
	return nil, fmt.Errorf("normalize: source tree has neither 'title' nor 'name' at its root")
}

func exportCanonical(root *Node, title string) (*scconfig.Mapping, error) {
	m := scconfig.NewMapping(title)
	if desc, ok := root.GetString("description"); ok {
		m.Description = desc
	}
	if creator, ok := root.GetString("creator"); ok {
		m.Creator = creator
	}
	if ctype, ok := root.GetString("controller_type"); ok {
		m.ControllerType = ctype
	}
	if rev, ok := root.GetString("revision"); ok {
		if n, err := strconv.Atoi(rev); err == nil {
			m.Revision = n
		}
	}
	return m, nil
}

// clusterPhysicalSource maps a cluster short-hand symbol to the
// scconfig.ValidGroupSources wire name used to attach its group within a
// preset, per the GroupSourceBindingValue.ValidSources table.
var clusterPhysicalSource = map[string]string{
	ClusterLeftJoystick:  "joystick",
	"RJ":                 "right_joystick",
	ClusterDpad:          "dpad",
	ClusterButtonDiamond: "button_diamond",
	ClusterLeftTrigger:   "left_trigger",
	ClusterRightTrigger:  "right_trigger",
	ClusterLeftPad:       "left_trackpad",
	ClusterRightPad:      "right_trackpad",
	ClusterSwitches:      "switch",
}

// clusterDefaultMode maps a cluster short-hand symbol to the scconfig
// group mode used when the cluster is referenced whole (no dotted pole),
// as happens with the gated side of a mode-shift key.
var clusterDefaultMode = map[string]string{
	ClusterLeftJoystick:  scconfig.ModeJoystickMove,
	"RJ":                 scconfig.ModeJoystickMove,
	ClusterDpad:          scconfig.ModeDpad,
	ClusterButtonDiamond: scconfig.ModeFourButtons,
	ClusterLeftTrigger:   scconfig.ModeTrigger,
	ClusterRightTrigger:  scconfig.ModeTrigger,
	ClusterLeftPad:       scconfig.ModeAbsoluteMouse,
	ClusterRightPad:      scconfig.ModeAbsoluteMouse,
	ClusterSwitches:      scconfig.ModeSwitches,
}

// switchesPoleInput maps a switches-cluster pole name to its scconfig
// input source, per the GroupSwitches INPUTS table: the six plain switch
// buttons (spec.md §4.4's advancer pole set). The *_modeshift gate slots
// of that table have no entry here and are not written by this package;
// exportModeshiftEntry puts its mode-shift binding on the plain switch
// input listed here.
var switchesPoleInput = map[string]string{
	"BK": scconfig.InButtonEscape,
	"ST": scconfig.InButtonMenu,
	"LB": scconfig.InLeftBumper,
	"RB": scconfig.InRightBumper,
	"LG": scconfig.InButtonBackLeft,
	"RG": scconfig.InButtonBackRight,
}

func exportShorthand(root *Node, name string, strict bool) (*scconfig.Mapping, error) {
	m := scconfig.NewMapping(name)
	if desc, ok := root.GetString("description"); ok {
		m.Description = desc
	}
	if author, ok := root.GetString("author"); ok {
		m.Creator = author
	}

	aliases := map[string]string{}
	if aliasNode, ok := root.Get("aliases"); ok && aliasNode.Kind == KindMap {
		for _, k := range aliasNode.Keys {
			if v, ok := aliasNode.GetString(k); ok {
				aliases[k] = v
			}
		}
	}

	actionsNode, ok := root.Get("action")
	if !ok || actionsNode.Kind != KindSeq {
		return m, nil
	}

	groupID := 0
	groupByCluster := map[string]*scconfig.Group{}
	tokens := shift.NewTokenPool()

	addGroup := func(cluster, mode string) (*scconfig.Group, error) {
		if g, ok := groupByCluster[cluster]; ok {
			return g, nil
		}
		g, err := scconfig.NewGroup(groupID, mode)
		if err != nil {
			return nil, err
		}
		groupByCluster[cluster] = g
		m.AddGroup(g)
		groupID++
		return g, nil
	}

	// actionIndex is the overlay naming-pool counter (spec.md §3): it
	// advances once per action, independent of how many input keys any
	// action happens to contain.
	actionIndex := 0
	for _, actionNode := range actionsNode.Seq {
		actionName, _ := actionNode.GetString("name")
		set := scconfig.NewActionSet(scconfig.PresetName(actionIndex), actionName)
		m.AddActionSet(set)
		actionIndex++

		layersNode, ok := actionNode.Get("layer")
		if !ok || layersNode.Kind != KindSeq {
			continue
		}
		for _, layerNode := range layersNode.Seq {
			if layerNode.Kind != KindMap {
				continue
			}
			for _, key := range layerNode.Keys {
				exprNode := layerNode.Map[key]
				if exprNode.Kind != KindScalar {
					continue
				}

				if amp := strings.IndexByte(key, '&'); amp >= 0 {
					gatedKey, modKey := key[:amp], key[amp+1:]
					if err := exportModeshiftEntry(m, addGroup, tokens, gatedKey, modKey, exprNode.Scalar, aliases); err != nil && strict {
						return nil, fmt.Errorf("normalize: %s: %w", key, err)
					}
					continue
				}

				cluster, pole, err := ResolveKey(key)
				if err != nil {
					if strict {
						return nil, fmt.Errorf("normalize: %s: %w", key, err)
					}
					continue // best-effort: unresolved keys are skipped, not fatal
				}
				expr := exprNode.Scalar
				if expanded, err := binding.ExpandAliases(expr, aliases); err == nil {
					expr = expanded
				}
				p, err := binding.ParseExpr(expr)
				if err != nil {
					if strict {
						return nil, fmt.Errorf("normalize: %s: %w", key, err)
					}
					continue
				}
				act, err := binding.BuildActivator(p)
				if err != nil {
					if strict {
						return nil, fmt.Errorf("normalize: %s: %w", key, err)
					}
					continue
				}
				shape := AutoStyle([]string{pole})
				if shape == "" {
					shape = "single_button"
				}
				mode := groupModeForShape(shape)
				g, err := addGroup(cluster, mode)
				if err != nil {
					if strict {
						return nil, fmt.Errorf("normalize: %s: %w", key, err)
					}
					continue
				}
				source := inputSourceForPole(cluster, shape, pole)
				if err := g.AddInput(source, act); err != nil {
					if strict {
						return nil, fmt.Errorf("normalize: %s: %w", key, err)
					}
					continue
				}
			}
		}
	}
	return m, nil
}

// exportModeshiftEntry implements spec.md §4.4.1's mode-shift compiler:
// a "<ClusterSym>&<ModSym>" key gates gatedKey's cluster behind modKey's
// switches pole. It reserves a mode-shift token, creates (or reuses) the
// switches group and a group for the gated cluster, binds the expression
// into the gated group, resolves the token to the gated group's id and
// reads it back, and finally writes a {mode_shift, <source>, <group>}
// binding onto the switches group's input for that pole. The token is
// resolved before it is looked up, so shift.TokenPool's back-patch path
// is not taken here.
func exportModeshiftEntry(m *scconfig.Mapping, addGroup func(cluster, mode string) (*scconfig.Group, error), tokens *shift.TokenPool, gatedKey, modKey, exprText string, aliases map[string]string) error {
	gatedCluster, gatedPole, err := ResolveKey(gatedKey)
	if err != nil {
		return fmt.Errorf("mode-shift gated cluster: %w", err)
	}
	modCluster, modPole, err := ResolveKey(modKey)
	if err != nil {
		return fmt.Errorf("mode-shift mod symbol: %w", err)
	}
	if modCluster != ClusterSwitches {
		return fmt.Errorf("normalize: mode-shift symbol %q is not a switches pole", modKey)
	}
	source, ok := clusterPhysicalSource[gatedCluster]
	if !ok {
		return fmt.Errorf("normalize: cluster %q has no physical group source", gatedCluster)
	}
	gateSwitchInput, ok := switchesPoleInput[modPole]
	if !ok {
		return fmt.Errorf("normalize: mode-shift symbol %q is not a switches pole", modKey)
	}

	tokenID := tokens.Reserve(source)
	var resolved int

	switchesGroup, err := addGroup(ClusterSwitches, scconfig.ModeSwitches)
	if err != nil {
		return err
	}

	mode := clusterDefaultMode[gatedCluster]
	if gatedPole != "" {
		if shape := AutoStyle([]string{gatedPole}); shape != "" {
			mode = groupModeForShape(shape)
		}
	}
	gatedGroup, err := addGroup(gatedCluster, mode)
	if err != nil {
		return err
	}

	expr := exprText
	if expanded, err := binding.ExpandAliases(expr, aliases); err == nil {
		expr = expanded
	}
	p, err := binding.ParseExpr(expr)
	if err != nil {
		return err
	}
	act, err := binding.BuildActivator(p)
	if err != nil {
		return err
	}
	gatedSource := inputSourceForPole(gatedCluster, AutoStyle([]string{gatedPole}), gatedPole)
	if err := gatedGroup.AddInput(gatedSource, act); err != nil {
		return err
	}

	if err := tokens.Resolve(tokenID, gatedGroup.ID); err != nil {
		return err
	}
	if _, _, err := tokens.Lookup(tokenID, &resolved); err != nil {
		return err
	}

	modEvgen, err := binding.NewModeshift(source, resolved)
	if err != nil {
		return err
	}
	gateAct, err := binding.NewActivator(binding.SignalFullPress)
	if err != nil {
		return err
	}
	gateAct.AddBinding(binding.Binding{Gen: modEvgen})
	if err := switchesGroup.AddInput(gateSwitchInput, gateAct); err != nil {
		return err
	}
	return nil
}

// inputSourceForPole maps a resolved (cluster, pole) pair to the
// scconfig input source name legal for the inferred mode, falling back
// to "click" for single-input modes.
func inputSourceForPole(cluster, shape, pole string) string {
	if cluster == ClusterSwitches {
		if in, ok := switchesPoleInput[pole]; ok {
			return in
		}
	}
	switch shape {
	case "dpad":
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
	case "four_buttons":
		switch pole {
		case "a":
			return scconfig.InButtonA
		case "b":
			return scconfig.InButtonB
		case "x":
			return scconfig.InButtonX
		case "y":
			return scconfig.InButtonY
		}
	}
	return scconfig.InClick
}

// groupModeForShape maps an inferred cluster shape to its scconfig
// group mode name; menu shapes map to touch_menu/radial_menu, and any
// other shape falls back to single_button.
func groupModeForShape(shape string) string {
	switch shape {
	case "dpad":
		return scconfig.ModeDpad
	case "four_buttons":
		return scconfig.ModeFourButtons
	case "switches":
		return scconfig.ModeSwitches
	case "touch_menu":
		return scconfig.ModeTouchMenu
	case "radial_menu":
		return scconfig.ModeRadialMenu
	default:
		return scconfig.ModeSingleButton
	}
}
