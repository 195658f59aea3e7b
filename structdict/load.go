package structdict

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Chibee/rt-cloud/ndarray"
)

// Options configures struct (de)serialization.
//
// Fields:
//   - SubField — name of the designated sub-record whose fields flatten
//     into the top-level namespace. Empty disables flattening.
type Options struct {
	SubField string
}

// DefaultOptions returns Options with no designated sub-record.
func DefaultOptions() Options {
	return Options{SubField: ""}
}

// loadErrorf builds an ErrLoad failure carrying human-readable context.
// errors.Is(err, ErrLoad) holds for every load-path failure.
func loadErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLoad, fmt.Sprintf(format, args...))
}

// Load decodes a YAML struct document into a StructDict.
//
// Decoding rules (the closed field-value set, applied per mapping entry):
//   - string scalar            → string leaf
//   - number scalar (incl .nan) → rank-0 numeric leaf
//   - sequence of numbers       → rank-1 numeric leaf
//   - nested rectangular number sequences → rank-N numeric leaf
//   - mapping                   → sub-record (one level only)
//
// Anything else — deeper nesting, ragged sequences, booleans, nulls, a
// non-mapping document — fails with ErrLoad.
func Load(data []byte, opts Options) (*StructDict, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if raw == nil {
		return nil, loadErrorf("document is not a mapping")
	}

	return fromRawMap(raw, opts.SubField, 0)
}

// LoadFile reads path and decodes it via Load.
// A missing or unreadable file fails with ErrLoad, wrapping the os error.
func LoadFile(path string, opts Options) (*StructDict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	d, err := Load(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// fromRawMap converts one decoded mapping level; depth guards the
// one-sub-record-level invariant.
func fromRawMap(raw map[string]any, subField string, depth int) (*StructDict, error) {
	d := New(subField)
	for name, v := range raw {
		switch payload := v.(type) {
		case string:
			d.fields[name] = StringValue(payload)
		case map[string]any:
			if depth > 0 {
				return nil, loadErrorf("field %q: nesting deeper than one sub-record level", name)
			}
			// Nested records never flatten further; no sub-field inside.
			nested, err := fromRawMap(payload, "", depth+1)
			if err != nil {
				return nil, err
			}
			d.fields[name] = nested
		default:
			arr, err := toArray(name, v)
			if err != nil {
				return nil, err
			}
			d.fields[name] = ArrayValue{Arr: arr}
		}
	}

	return d, nil
}

// toArray converts a decoded scalar or (nested) sequence into an Array.
func toArray(name string, v any) (*ndarray.Array, error) {
	if f, ok := toFloat(v); ok {
		return ndarray.Scalar(f), nil
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, loadErrorf("field %q: value %T is not numeric, string, or sub-record", name, v)
	}
	shape, data, err := flattenSeq(name, seq)
	if err != nil {
		return nil, err
	}
	arr, err := ndarray.FromSlice(data, shape...)
	if err != nil {
		return nil, loadErrorf("field %q: %v", name, err)
	}

	return arr, nil
}

// flattenSeq walks a nested sequence, enforcing rectangular all-numeric
// content, and returns the implied shape plus row-major data.
func flattenSeq(name string, seq []any) ([]int, []float64, error) {
	if len(seq) == 0 {
		return nil, nil, loadErrorf("field %q: empty sequence", name)
	}

	// Nested case: every element must itself be a sequence of equal shape.
	if _, isNested := seq[0].([]any); isNested {
		var subShape []int
		var data []float64
		for i, elem := range seq {
			inner, ok := elem.([]any)
			if !ok {
				return nil, nil, loadErrorf("field %q: mixed sequence nesting at index %d", name, i)
			}
			s, d, err := flattenSeq(name, inner)
			if err != nil {
				return nil, nil, err
			}
			if subShape == nil {
				subShape = s
			} else if !equalShape(subShape, s) {
				return nil, nil, loadErrorf("field %q: ragged sequence at index %d", name, i)
			}
			data = append(data, d...)
		}

		return append([]int{len(seq)}, subShape...), data, nil
	}

	// Flat case: every element must be a number.
	data := make([]float64, len(seq))
	for i, elem := range seq {
		f, ok := toFloat(elem)
		if !ok {
			return nil, nil, loadErrorf("field %q: non-numeric element %T at index %d", name, elem, i)
		}
		data[i] = f
	}

	return []int{len(seq)}, data, nil
}

// toFloat accepts the numeric scalar types yaml.v3 produces.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Marshal encodes a StructDict back into its YAML document form.
// Rank-0 leaves emit scalars, rank-1 leaves emit sequences, higher ranks
// emit nested sequences; sub-records emit one mapping level.
func Marshal(d *StructDict) ([]byte, error) {
	raw, err := toRawMap(d, 0)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("structdict: marshal: %w", err)
	}

	return out, nil
}

// SaveFile writes the YAML form of d to path (fixture round-trips).
func SaveFile(path string, d *StructDict) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("structdict: save %q: %w", path, err)
	}

	return nil
}

// toRawMap is the inverse of fromRawMap.
func toRawMap(d *StructDict, depth int) (map[string]any, error) {
	raw := make(map[string]any, len(d.fields))
	for name, v := range d.fields {
		switch payload := v.(type) {
		case StringValue:
			raw[name] = string(payload)
		case ArrayValue:
			raw[name] = arrayToRaw(payload.Arr)
		case *StructDict:
			if depth > 0 {
				return nil, fmt.Errorf("structdict: marshal field %q: nesting deeper than one sub-record level: %w", name, ErrBadValue)
			}
			nested, err := toRawMap(payload, depth+1)
			if err != nil {
				return nil, err
			}
			raw[name] = nested
		default:
			return nil, fmt.Errorf("structdict: marshal field %q: %w", name, ErrBadValue)
		}
	}

	return raw, nil
}

// arrayToRaw renders an array as a scalar or nested sequences per its rank.
func arrayToRaw(a *ndarray.Array) any {
	return sliceToRaw(a.Shape(), a.Data())
}

// sliceToRaw recursively splits a row-major buffer along the leading dim.
func sliceToRaw(shape []int, data []float64) any {
	if len(shape) == 0 {
		return data[0]
	}
	if len(shape) == 1 {
		out := make([]float64, len(data))
		copy(out, data)

		return out
	}
	stride := len(data) / shape[0]
	out := make([]any, shape[0])
	for i := 0; i < shape[0]; i++ {
		out[i] = sliceToRaw(shape[1:], data[i*stride:(i+1)*stride])
	}

	return out
}
