package vdf

import (
	"crypto/md5"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimple(t *testing.T) {
	m, err := ParseString(`"a" "1" "b" "2"`)
	require.NoError(t, err)
	v, ok := m.GetString("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	v, ok = m.GetString("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestParseNested(t *testing.T) {
	m, err := ParseString(`"outer" { "inner" "x" }`)
	require.NoError(t, err)
	block, ok := m.GetBlock("outer")
	require.True(t, ok)
	v, ok := block.GetString("inner")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestRepeatedKeyOrdering(t *testing.T) {
	m, err := ParseString(`"group" "a" "group" "b" "group" "c"`)
	require.NoError(t, err)
	all := m.All("group")
	require.Len(t, all, 3)
	assert.Equal(t, []interface{}{"a", "b", "c"}, all)
	last, _ := m.GetString("group")
	assert.Equal(t, "c", last)
}

func TestUnpairedKeyError(t *testing.T) {
	_, err := ParseString(`"a"`)
	assert.ErrorIs(t, err, ErrUnpaired)
}

func TestStrayCloseBrace(t *testing.T) {
	_, err := ParseString(`}`)
	assert.ErrorIs(t, err, ErrStrayBrace)
}

func TestUnclosedBlock(t *testing.T) {
	_, err := ParseString(`"a" { "b" "c"`)
	assert.ErrorIs(t, err, ErrNestingUnderflow)
}

func TestCommentsSkipped(t *testing.T) {
	m, err := ParseString("// a leading comment\n\"a\" \"1\" // trailing\n")
	require.NoError(t, err)
	v, _ := m.GetString("a")
	assert.Equal(t, "1", v)
}

func TestEscapedQuote(t *testing.T) {
	m, err := ParseString(`"a" "has \"quote\""`)
	require.NoError(t, err)
	v, _ := m.GetString("a")
	assert.Equal(t, `has "quote"`, v)
}

func TestRoundTripSerializeParse(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.vdf")
	require.NoError(t, err)
	m, err := ParseString(string(data))
	require.NoError(t, err)

	out := Dumps(m)
	m2, err := ParseString(out)
	require.NoError(t, err)

	out2 := Dumps(m2)
	assert.Equal(t, out, out2, "serialize(parse(x)) must be a fixed point")

	sum1 := md5.Sum([]byte(out))
	sum2 := md5.Sum([]byte(out2))
	assert.Equal(t, sum1, sum2)
}

func TestDeleteRemovesAllAssignments(t *testing.T) {
	m, err := ParseString(`"group" "a" "group" "b"`)
	require.NoError(t, err)
	removed := m.Delete("group")
	assert.True(t, removed)
	_, ok := m.Get("group")
	assert.False(t, ok)
}
