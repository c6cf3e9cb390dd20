package shorthand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSrcspecBareCluster(t *testing.T) {
	s, err := ParseSrcspec("LT")
	require.NoError(t, err)
	assert.Equal(t, byte(0), s.ActSig)
	assert.Equal(t, "LT", s.Cluster)
	assert.Equal(t, "", s.Pole)
}

func TestParseSrcspecWithSigAndPole(t *testing.T) {
	s, err := ParseSrcspec("_BQ.n")
	require.NoError(t, err)
	assert.Equal(t, byte('_'), s.ActSig)
	assert.Equal(t, "BQ", s.Cluster)
	assert.Equal(t, "n", s.Pole)
}

func TestParseSrcspecNumericSubpart(t *testing.T) {
	s, err := ParseSrcspec("RP.07")
	require.NoError(t, err)
	assert.Equal(t, "RP", s.Cluster)
	assert.Equal(t, "07", s.Pole)
}

func TestParseSrcspecRejectsUnknownCluster(t *testing.T) {
	_, err := ParseSrcspec("ZZ")
	assert.ErrorIs(t, err, ErrMalformedSrcspec)
}

func TestParseSrcspecRejectsBadPole(t *testing.T) {
	_, err := ParseSrcspec("LT.zz")
	assert.ErrorIs(t, err, ErrMalformedSrcspec)
}

func TestMakerBuildsGroupsFromSrcspecs(t *testing.T) {
	m := NewMaker("shorthand mapping")
	action := NewCfgAction("Default")
	layer := action.AddLayer("base", "")
	layer.Bind("BQ.n", "(A)")
	layer.Bind("BQ.s", "(B)")
	m.AddAction(action)

	mapping, err := m.Build()
	require.NoError(t, err)
	assert.Equal(t, "shorthand mapping", mapping.Title)
	require.Len(t, mapping.Groups, 1)
	assert.Equal(t, mapping.Groups[0].Mode, "four_buttons")
}

func TestMakerPropagatesExprParseError(t *testing.T) {
	m := NewMaker("broken")
	action := NewCfgAction("Default")
	layer := action.AddLayer("base", "")
	layer.Bind("LT", "")
	m.AddAction(action)

	_, err := m.Build()
	assert.Error(t, err)
}

func TestMakerBuildRealizesShiftmapLayersAndBinds(t *testing.T) {
	m := NewMaker("shift mapping")
	action := NewCfgAction("Default")
	action.AddLayer("base", "")
	action.Shiftmap = &Shiftmap{
		Shifters: []ShifterDecl{
			{Sym: "LB", Style: "hold", Bitmask: 1, Cluster: "LB", Pole: "LB"},
		},
		Overlays: map[int][]string{},
		Hermits:  map[int]string{},
		LayerClusters: map[string][]string{},
		ClusterShape:  map[string]string{},
	}
	m.AddAction(action)

	mapping, err := m.Build()
	require.NoError(t, err)

	require.Len(t, mapping.Actions, 1)
	require.Len(t, mapping.Layers, 2, "Preshift_1 and Shift_1 must both be realized as ActionLayers")

	var sawSwitchesGroup bool
	for _, g := range mapping.Groups {
		if g.Mode == "switches" {
			sawSwitchesGroup = true
			_, ok := g.Inputs["left_bumper"]
			assert.True(t, ok, "the LB shifter's base-layer bind must land on left_bumper")
		}
	}
	assert.True(t, sawSwitchesGroup)
}
