package validation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chibee/rt-cloud/ndarray"
	"github.com/Chibee/rt-cloud/structdict"
	"github.com/Chibee/rt-cloud/validation"
)

// recordPair builds the canonical two-level fixture record and a copy whose
// numeric leaves are perturbed by a relative delta under maxDeviation:
//
//	A: str1="hello", a1=6.0, sub{a2=[1..5], b2=7.0, str2="world"}
func recordPair(t *testing.T) (actual, expected *structdict.StructDict) {
	t.Helper()
	rng := rand.New(rand.NewSource(99))
	delta := func(v float64) float64 { return v + v*rng.Float64()*maxDeviation }

	subA := structdict.New("")
	a2, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5}, 5)
	require.NoError(t, err)
	require.NoError(t, subA.SetArray("a2", a2))
	require.NoError(t, subA.SetScalar("b2", 7.0))
	require.NoError(t, subA.SetString("str2", "world"))

	expected = structdict.New("sub")
	require.NoError(t, expected.SetString("str1", "hello"))
	require.NoError(t, expected.SetScalar("a1", 6.0))
	require.NoError(t, expected.SetDict("sub", subA))

	subB := structdict.New("")
	a2b := a2.Clone()
	for i, v := range a2b.Data() {
		require.NoError(t, a2b.Set(delta(v), i))
	}
	require.NoError(t, subB.SetArray("a2", a2b))
	require.NoError(t, subB.SetScalar("b2", delta(7.0)))
	require.NoError(t, subB.SetString("str2", "world"))

	actual = structdict.New("sub")
	require.NoError(t, actual.SetString("str1", "hello"))
	require.NoError(t, actual.SetScalar("a1", delta(6.0)))
	require.NoError(t, actual.SetDict("sub", subB))

	return actual, expected
}

// TestCompareStructs_AllFields compares every leaf: one report per numeric
// leaf (strings are checked exact and skipped), each within tolerance.
func TestCompareStructs_AllFields(t *testing.T) {
	actual, expected := recordPair(t)

	result, err := validation.CompareStructs(actual, expected, nil)
	require.NoError(t, err)

	assert.Len(t, result, 3, "a1, a2, b2 are the numeric leaves")
	for name, rep := range result {
		assert.Less(t, rep.Mean, maxDeviation, "field %s", name)
		assert.GreaterOrEqual(t, rep.Mean, 0.0, "field %s", name)
	}
}

// TestCompareStructs_FieldSubset compares exactly the requested fields,
// resolving across the flattening level.
func TestCompareStructs_FieldSubset(t *testing.T) {
	actual, expected := recordPair(t)

	result, err := validation.CompareStructs(actual, expected, []string{"a2", "a1"})
	require.NoError(t, err)

	assert.Len(t, result, 2)
	assert.Contains(t, result, "a2")
	assert.Contains(t, result, "a1")
	for name, rep := range result {
		assert.Less(t, rep.Mean, maxDeviation, "field %s", name)
	}
}

// TestCompareStructs_MissingField verifies a requested absent field is a
// lookup failure, not a silent skip.
func TestCompareStructs_MissingField(t *testing.T) {
	actual, expected := recordPair(t)

	_, err := validation.CompareStructs(actual, expected, []string{"a2", "ghost"})
	assert.ErrorIs(t, err, structdict.ErrFieldNotFound)
}

// TestCompareStructs_StringLeaves verifies equal strings are skipped and
// unequal strings abort the comparison.
func TestCompareStructs_StringLeaves(t *testing.T) {
	actual, expected := recordPair(t)

	result, err := validation.CompareStructs(actual, expected, []string{"str1", "str2"})
	require.NoError(t, err)
	assert.Empty(t, result, "equal strings produce no numeric reports")

	require.NoError(t, actual.SetString("str1", "goodbye"))
	_, err = validation.CompareStructs(actual, expected, []string{"str1"})
	assert.ErrorIs(t, err, validation.ErrStringMismatch)
}

// TestCompareStructs_KindMismatch verifies a string-vs-array field pair is
// rejected.
func TestCompareStructs_KindMismatch(t *testing.T) {
	actual, expected := recordPair(t)
	require.NoError(t, actual.SetScalar("str1", 1.0)) // shadow the string leaf

	_, err := validation.CompareStructs(actual, expected, []string{"str1"})
	assert.ErrorIs(t, err, validation.ErrFieldKind)
}

// TestCompareStructs_AmbiguousFlattening verifies a name at both levels of
// the expected record aborts the nil-fields comparison.
func TestCompareStructs_AmbiguousFlattening(t *testing.T) {
	actual, expected := recordPair(t)
	require.NoError(t, expected.SetScalar("a2", 1.0)) // clashes with sub.a2

	_, err := validation.CompareStructs(actual, expected, nil)
	assert.ErrorIs(t, err, structdict.ErrAmbiguousField)
}

// TestCompareStructs_NilRecord verifies nil inputs are rejected outright.
func TestCompareStructs_NilRecord(t *testing.T) {
	actual, _ := recordPair(t)

	_, err := validation.CompareStructs(actual, nil, nil)
	assert.ErrorIs(t, err, validation.ErrNilStruct)
	_, err = validation.CompareStructs(nil, actual, nil)
	assert.ErrorIs(t, err, validation.ErrNilStruct)
}

// TestIsMeanWithinThreshold pins the canonical threshold semantics:
// {val1: .1, val2: .05} passes at 0.11 and fails at 0.09.
func TestIsMeanWithinThreshold(t *testing.T) {
	result := validation.ComparisonResult{
		"val1": {Mean: 0.1, Max: 0.2},
		"val2": {Mean: 0.05, Max: 0.075},
	}

	assert.True(t, validation.IsMeanWithinThreshold(result, 0.11))
	assert.False(t, validation.IsMeanWithinThreshold(result, 0.09))
	assert.True(t, validation.IsMeanWithinThreshold(validation.ComparisonResult{}, 0),
		"an empty result passes trivially")
}
