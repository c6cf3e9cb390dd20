package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExprLongPressTwoKeys(t *testing.T) {
	// scenario 2: _<LeftControl><C>:180%^|~1@10,50/250
	p, err := ParseExpr("_<LeftControl><C>:180%^|~1@10,50/250")
	require.NoError(t, err)
	assert.Equal(t, SignalLongPress, p.Signal)
	require.Len(t, p.Bindings, 2)
	assert.Equal(t, vscKeypress, p.Bindings[0].Gen.Major())
	assert.Equal(t, []string{"LeftControl"}, p.Bindings[0].Gen.Details())
	assert.Equal(t, []string{"C"}, p.Bindings[1].Gen.Details())

	assert.Equal(t, true, p.Settings[KeyToggle])
	assert.Equal(t, true, p.Settings[KeyInterruptible])
	assert.Equal(t, true, p.Settings[KeyCycle])
	assert.Equal(t, 1, p.Settings[KeyHapticIntensity])
	assert.Equal(t, 10, p.Settings[KeyDelayStart])
	assert.Equal(t, 50, p.Settings[KeyDelayEnd])
	assert.Equal(t, true, p.Settings[KeyHoldRepeats])
	assert.Equal(t, 250, p.Settings[KeyRepeatRate])
	assert.Equal(t, 180, p.Settings[KeyLongPressTime])

	act, err := BuildActivator(p)
	require.NoError(t, err)
	assert.Equal(t, SignalLongPress, act.Signal)
	assert.Len(t, act.Bindings, 2)
}

func TestParseExprDefaultSignalIsFullPress(t *testing.T) {
	p, err := ParseExpr("(A)")
	require.NoError(t, err)
	assert.Equal(t, SignalFullPress, p.Signal)
}

func TestParseExprSignalMapping(t *testing.T) {
	cases := map[string]string{
		"+(A)": SignalStartPress,
		"-(A)": SignalRelease,
		"_(A)": SignalLongPress,
		":(A)": SignalDoublePress,
		"=(A)": SignalDoublePress,
		"&(A)": SignalChord,
	}
	for in, want := range cases {
		p, err := ParseExpr(in)
		require.NoError(t, err)
		assert.Equal(t, want, p.Signal, in)
	}
}

func TestParseExprLabel(t *testing.T) {
	p, err := ParseExpr("(A)#hello#world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", p.Label)
}

func TestParseExprHostBrace(t *testing.T) {
	p, err := ParseExpr("{keyboard}")
	require.NoError(t, err)
	require.Len(t, p.Bindings, 1)
	assert.Equal(t, vscControllerAction, p.Bindings[0].Gen.Major())
	assert.Equal(t, []string{"show_keyboard"}, p.Bindings[0].Gen.Details())
}

func TestParseExprOverlayBrace(t *testing.T) {
	p, err := ParseExpr("{overlay,apply,2}")
	require.NoError(t, err)
	require.Len(t, p.Bindings, 1)
	ov, ok := p.Bindings[0].Gen.(EvgenOverlay)
	require.True(t, ok)
	assert.Equal(t, "add_layer", ov.Action)
	assert.Equal(t, 2, ov.TargetID)
}

func TestBindingStringRoundTrip(t *testing.T) {
	g, err := NewKeystroke("A")
	require.NoError(t, err)
	b := Binding{Gen: g, Label: "jump"}
	s := b.String()
	got := ParseBinding(s)
	assert.Equal(t, "jump", got.Label)
	assert.Equal(t, g, got.Gen)
}

func TestMouseSwitchUnknownCode(t *testing.T) {
	_, err := NewMouseSwitch("9")
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestExpandAliasesAutoLabel(t *testing.T) {
	aliases := map[string]string{"jump": "(A)"}
	out, err := ExpandAliases("$jump", aliases)
	require.NoError(t, err)
	assert.Equal(t, "(A)#jump", out)
}

func TestExpandAliasesBracedNoAutoLabel(t *testing.T) {
	aliases := map[string]string{"jump": "(A)"}
	out, err := ExpandAliases("${jump}", aliases)
	require.NoError(t, err)
	assert.Equal(t, "(A)", out)
}

func TestExpandAliasesUnresolved(t *testing.T) {
	_, err := ExpandAliases("$nope", map[string]string{})
	assert.ErrorIs(t, err, ErrUnresolvedAlias)
}

func TestActivatorSettingConstraintViolation(t *testing.T) {
	act, err := NewActivator(SignalFullPress)
	require.NoError(t, err)
	err = act.SetSetting(KeyRepeatRate, 0)
	assert.Error(t, err)
	_, ok := act.Settings.Get(KeyRepeatRate)
	assert.False(t, ok, "rejected write must not change stored value")
}
