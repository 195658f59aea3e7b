package structdict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chibee/rt-cloud/ndarray"
	"github.com/Chibee/rt-cloud/structdict"
)

// fixtureDict builds the canonical two-level record used across the suite:
// top-level str1/a1 plus a designated "sub" record holding a2/b2/str2.
func fixtureDict(t *testing.T) *structdict.StructDict {
	t.Helper()

	sub := structdict.New("")
	a2, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5}, 5)
	require.NoError(t, err)
	require.NoError(t, sub.SetArray("a2", a2))
	require.NoError(t, sub.SetScalar("b2", 7.0))
	require.NoError(t, sub.SetString("str2", "world"))

	d := structdict.New("sub")
	require.NoError(t, d.SetString("str1", "hello"))
	require.NoError(t, d.SetScalar("a1", 6.0))
	require.NoError(t, d.SetDict("sub", sub))

	return d
}

// TestGet_TopLevelFirst verifies top-level fields resolve directly.
func TestGet_TopLevelFirst(t *testing.T) {
	d := fixtureDict(t)

	v, err := d.Get("str1")
	require.NoError(t, err)
	assert.Equal(t, structdict.KindString, v.Kind())
	assert.Equal(t, structdict.StringValue("hello"), v)
}

// TestGet_SubRecordFallback verifies lookup falls back into the designated
// sub-record when the top level misses.
func TestGet_SubRecordFallback(t *testing.T) {
	d := fixtureDict(t)

	arr, err := d.GetArray("a2")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, arr.Shape())

	b2, err := d.GetArray("b2")
	require.NoError(t, err)
	v, err := b2.At()
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "scalar sub-record leaf resolves by name")
}

// TestGet_FieldNotFound verifies a miss at both levels errors.
func TestGet_FieldNotFound(t *testing.T) {
	d := fixtureDict(t)

	_, err := d.Get("nope")
	assert.ErrorIs(t, err, structdict.ErrFieldNotFound)
}

// TestGetArray_KindMismatch verifies a string leaf cannot be read as an array.
func TestGetArray_KindMismatch(t *testing.T) {
	d := fixtureDict(t)

	_, err := d.GetArray("str1")
	assert.ErrorIs(t, err, structdict.ErrBadValue)
}

// TestSet_Invalid covers the Set validation guards.
func TestSet_Invalid(t *testing.T) {
	d := structdict.New("")

	assert.ErrorIs(t, d.Set("", structdict.StringValue("x")), structdict.ErrBadValue)
	assert.ErrorIs(t, d.Set("x", nil), structdict.ErrBadValue)
	assert.ErrorIs(t, d.SetArray("x", nil), structdict.ErrBadValue)
	assert.ErrorIs(t, d.SetDict("x", nil), structdict.ErrBadValue)
}

// TestLeafFields_Flattening verifies the union of top-level and designated
// sub-record leaves, sorted, with the container field itself excluded.
func TestLeafFields_Flattening(t *testing.T) {
	d := fixtureDict(t)

	fields, err := d.LeafFields()
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "b2", "str1", "str2"}, fields)
}

// TestLeafFields_Ambiguity verifies a name living at both levels is refused
// rather than silently resolved.
func TestLeafFields_Ambiguity(t *testing.T) {
	d := fixtureDict(t)
	require.NoError(t, d.SetScalar("a2", 1.0)) // clashes with sub.a2

	_, err := d.LeafFields()
	assert.ErrorIs(t, err, structdict.ErrAmbiguousField)
}

// TestLeafFields_NoSubRecord verifies flattening is a no-op without a
// designated sub-record, even when nested dicts are present.
func TestLeafFields_NoSubRecord(t *testing.T) {
	d := structdict.New("")
	require.NoError(t, d.SetScalar("x", 1))
	require.NoError(t, d.SetDict("other", structdict.New("")))

	fields, err := d.LeafFields()
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, fields)
}
