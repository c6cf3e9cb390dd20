package scconfig

import (
	"testing"

	"github.com/PhaethonH/scbind/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupUnknownMode(t *testing.T) {
	_, err := NewGroup(1, "not_a_mode")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestGroupAddInputRejectsUnknownSource(t *testing.T) {
	g, err := NewGroup(1, ModeFourButtons)
	require.NoError(t, err)
	act, err := binding.NewActivator(binding.SignalFullPress)
	require.NoError(t, err)
	err = g.AddInput("not_a_source", act)
	assert.ErrorIs(t, err, ErrUnknownInput)
}

func TestGroupAddInputAndEncode(t *testing.T) {
	g, err := NewGroup(3, ModeFourButtons)
	require.NoError(t, err)
	gen, err := binding.NewKeystroke("A")
	require.NoError(t, err)
	act, err := binding.NewActivator(binding.SignalFullPress)
	require.NoError(t, err)
	act.AddBinding(binding.Binding{Gen: gen})
	require.NoError(t, g.AddInput(InButtonA, act))

	kv := g.EncodeKV()
	id, ok := kv.GetString("id")
	require.True(t, ok)
	assert.Equal(t, "3", id)
	mode, _ := kv.GetString("mode")
	assert.Equal(t, ModeFourButtons, mode)
	inputs, ok := kv.GetBlock("inputs")
	require.True(t, ok)
	_, ok = inputs.GetBlock(InButtonA)
	assert.True(t, ok)
}

func TestGroupSettingsConstraint(t *testing.T) {
	g, err := NewGroup(1, ModeFourButtons)
	require.NoError(t, err)
	err = g.SetSetting(KeyHapticIntensity, "MEDIUM")
	assert.Error(t, err, "haptic_intensity enum uses lowercase symbolic names")
	err = g.SetSetting(KeyHapticIntensity, "medium")
	assert.NoError(t, err)
}

func TestPresetNaming(t *testing.T) {
	assert.Equal(t, "Default", PresetName(0))
	assert.Equal(t, "Preset_1000001", PresetName(1))
	assert.Equal(t, "Preset_1000042", PresetName(42))
}

func TestPresetGroupSourceBindingRejectsBadSource(t *testing.T) {
	p := NewPreset(1, "")
	err := p.AddGroupSourceBinding(3, "not_a_cluster", true, false)
	assert.ErrorIs(t, err, ErrBadGroupSource)
}

func TestPresetGroupSourceBindingEncode(t *testing.T) {
	p := NewPreset(1, "")
	require.NoError(t, p.AddGroupSourceBinding(3, "dpad", true, true))
	kv := p.EncodeKV()
	gsb, ok := kv.GetBlock("group_source_bindings")
	require.True(t, ok)
	s, ok := gsb.GetString("3")
	require.True(t, ok)
	assert.Equal(t, "dpad active modeshift", s)
}

func TestMappingAddPresetValidatesGroupReferences(t *testing.T) {
	m := NewMapping("")
	p := NewPreset(0, "")
	require.NoError(t, p.AddGroupSourceBinding(7, "joystick", true, false))
	err := m.AddPreset(p)
	assert.ErrorIs(t, err, ErrUnknownGroup)

	g, err := NewGroup(7, ModeJoystickMove)
	require.NoError(t, err)
	m.AddGroup(g)
	assert.NoError(t, m.AddPreset(p))
}

func TestMappingEncodeKVDefaults(t *testing.T) {
	m := NewMapping("")
	kv := m.EncodeKV()
	title, _ := kv.GetString("title")
	assert.Equal(t, "Unnamed", title)
	ctype, _ := kv.GetString("controller_type")
	assert.Equal(t, "controller_steamcontroller_gordon", ctype)
}

func TestMappingEncodesOverlayPoolByName(t *testing.T) {
	m := NewMapping("My Config")
	m.AddActionSet(NewActionSet("Preset_1000000", "Default Set"))
	m.AddActionLayer(NewActionLayer("Preset_1000001", "Aiming", "Preset_1000000"))
	kv := m.EncodeKV()
	actions, ok := kv.GetBlock("actions")
	require.True(t, ok)
	set, ok := actions.GetBlock("Preset_1000000")
	require.True(t, ok)
	title, _ := set.GetString("title")
	assert.Equal(t, "Default Set", title)

	layers, ok := kv.GetBlock("action_layers")
	require.True(t, ok)
	layer, ok := layers.GetBlock("Preset_1000001")
	require.True(t, ok)
	parent, _ := layer.GetString("parent_set_name")
	assert.Equal(t, "Preset_1000000", parent)
	setLayer, _ := layer.GetString("set_layer")
	assert.Equal(t, "1", setLayer)
}

func TestControllerConfigRepeatsControllerMappingsKey(t *testing.T) {
	c := NewControllerConfig()
	c.AddMapping(NewMapping("one"))
	c.AddMapping(NewMapping("two"))
	kv := c.EncodeKV()
	all := kv.All("controller_mappings")
	assert.Len(t, all, 2)
}
