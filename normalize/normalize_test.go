package normalize

import (
	"strings"
	"testing"

	"github.com/PhaethonH/scbind/binding"
	"github.com/PhaethonH/scbind/scconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKeyBareCluster(t *testing.T) {
	cluster, pole, err := ResolveKey("LJ")
	require.NoError(t, err)
	assert.Equal(t, "LJ", cluster)
	assert.Equal(t, "", pole)
}

func TestResolveKeyDottedPole(t *testing.T) {
	cluster, pole, err := ResolveKey("DP.u")
	require.NoError(t, err)
	assert.Equal(t, "DP", cluster)
	assert.Equal(t, "u", pole)
}

func TestResolveKeyInlineAlias(t *testing.T) {
	cluster, pole, err := ResolveKey("LS")
	require.NoError(t, err)
	assert.Equal(t, "LJ", cluster)
	assert.Equal(t, "c", pole)
}

func TestResolveKeyUnknown(t *testing.T) {
	_, _, err := ResolveKey("ZZ")
	assert.ErrorIs(t, err, ErrUnresolvedKey)
}

func TestAutoStyleDpad(t *testing.T) {
	assert.Equal(t, "dpad", AutoStyle([]string{"u", "d", "l", "r"}))
}

func TestAutoStyleFourButtons(t *testing.T) {
	assert.Equal(t, "four_buttons", AutoStyle([]string{"a", "b", "x", "y"}))
}

func TestAutoStyleSwitches(t *testing.T) {
	assert.Equal(t, "switches", AutoStyle([]string{"BK", "ST"}))
}

func TestAutoStyleTouchMenuVsRadial(t *testing.T) {
	// poles 2 and 4 are menu counts, no zero pole -> touch_menu
	assert.Equal(t, "touch_menu", AutoStyle([]string{"1", "2", "3", "4"}))
	// zero pole present -> radial_menu
	assert.Equal(t, "radial_menu", AutoStyle([]string{"0", "1", "2", "3"}))
	// max > 16 -> radial_menu
	assert.Equal(t, "radial_menu", AutoStyle([]string{"1", "20"}))
}

func TestMouseRegionRectParses(t *testing.T) {
	got, err := MouseRegionRect("100x50+10+20")
	require.NoError(t, err)
	assert.Equal(t, "100", got["scale"])
	assert.Equal(t, "50", got["scale_h"])
	assert.Equal(t, "10", got["position_x"])
	assert.Equal(t, "20", got["position_y"])
}

func TestLoadYAMLPreservesKeyOrder(t *testing.T) {
	doc := `
title: Example
description: A config
revision: "2"
`
	n, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	title, ok := n.GetString("title")
	require.True(t, ok)
	assert.Equal(t, "Example", title)
	assert.Equal(t, []string{"title", "description", "revision"}, n.Keys)
}

func TestExportCanonicalReadsMetadata(t *testing.T) {
	doc := `
title: My Layout
description: test layout
creator: someone
controller_type: controller_steamcontroller_gordon
revision: "4"
`
	n, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	m, err := Export(n, false)
	require.NoError(t, err)
	assert.Equal(t, "My Layout", m.Title)
	assert.Equal(t, "test layout", m.Description)
	assert.Equal(t, 4, m.Revision)
}

func TestExportShorthandBuildsGroups(t *testing.T) {
	doc := `
name: shorthand config
description: a shorthand test
action:
  - name: Default
    layer:
      - LS: "(A)"
`
	n, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	m, err := Export(n, false)
	require.NoError(t, err)
	assert.Equal(t, "shorthand config", m.Title)
	require.Len(t, m.Groups, 1)
	assert.Equal(t, "single_button", m.Groups[0].Mode)
}

func TestExportShorthandGroupsDpadPolesTogether(t *testing.T) {
	doc := `
name: dpad config
action:
  - name: Default
    layer:
      - DP.u: "(DUP)"
        DP.d: "(DDN)"
        DP.l: "(DLT)"
        DP.r: "(DRT)"
`
	n, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	m, err := Export(n, true)
	require.NoError(t, err)
	require.Len(t, m.Groups, 1)
	g := m.Groups[0]
	assert.Equal(t, "dpad", g.Mode)
	assert.Len(t, g.Inputs, 4)
}

func TestExportShorthandSecondActionNamesFromOwnIndex(t *testing.T) {
	doc := `
name: two actions
action:
  - name: First
    layer:
      - DP.u: "(A)"
        DP.d: "(B)"
        DP.l: "(C)"
        DP.r: "(D)"
  - name: Second
    layer:
      - LS: "(E)"
`
	n, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	m, err := Export(n, true)
	require.NoError(t, err)
	require.Len(t, m.Actions, 2)
	assert.Equal(t, "Default", m.Actions[0].Name)
	assert.Equal(t, "Preset_1000001", m.Actions[1].Name)
}

func TestExportShorthandModeshiftGatesClusterBehindSwitchPole(t *testing.T) {
	doc := `
name: modeshift config
action:
  - name: Default
    layer:
      - BQ: "(A)"
        BQ&LB: "(B)"
`
	n, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	m, err := Export(n, true)
	require.NoError(t, err)
	require.Len(t, m.Groups, 2)

	var switches, diamond *scconfig.Group
	for _, g := range m.Groups {
		switch g.Mode {
		case "switches":
			switches = g
		case "four_buttons":
			diamond = g
		}
	}
	require.NotNil(t, switches)
	require.NotNil(t, diamond)
	act, ok := switches.Inputs["left_bumper"]
	require.True(t, ok)
	require.Len(t, act.Bindings, 1)
	gen, ok := act.Bindings[0].Gen.(binding.EvgenModeshift)
	require.True(t, ok)
	assert.Equal(t, "button_diamond", gen.Source)
	assert.Equal(t, diamond.ID, gen.GroupID)
}

func TestExportShorthandStrictFailsOnUnresolvedKey(t *testing.T) {
	doc := `
name: broken config
action:
  - name: Default
    layer:
      - ZZ: "(A)"
`
	n, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	_, err = Export(n, true)
	assert.Error(t, err)
}
