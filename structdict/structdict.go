package structdict

import (
	"fmt"
	"sort"

	"github.com/Chibee/rt-cloud/ndarray"
)

// Kind discriminates the closed set of field value types.
type Kind int

const (
	// KindArray marks a numeric leaf (*ndarray.Array via ArrayValue).
	KindArray Kind = iota

	// KindString marks a string leaf (StringValue).
	KindString

	// KindDict marks a nested sub-record (*StructDict).
	KindDict
)

// Value is the closed interface over field payloads. Only ArrayValue,
// StringValue and *StructDict implement it.
type Value interface {
	// Kind reports which member of the closed set this value is.
	Kind() Kind
}

// ArrayValue is a numeric leaf field.
type ArrayValue struct {
	Arr *ndarray.Array
}

// Kind reports KindArray.
func (ArrayValue) Kind() Kind { return KindArray }

// StringValue is a string leaf field.
type StringValue string

// Kind reports KindString.
func (StringValue) Kind() Kind { return KindString }

// Kind reports KindDict; a StructDict nested in another record is a value.
func (d *StructDict) Kind() Kind { return KindDict }

// StructDict is an explicit two-level record: a top-level field mapping plus
// the name of one designated sub-record whose fields flatten into the
// top-level namespace. Lookup never uses reflection.
type StructDict struct {
	subField string
	fields   map[string]Value
}

// New returns an empty StructDict whose designated sub-record field is
// subField. An empty subField means no flattening level.
func New(subField string) *StructDict {
	return &StructDict{subField: subField, fields: make(map[string]Value)}
}

// SubField returns the name of the designated sub-record field.
func (d *StructDict) SubField() string { return d.subField }

// Len returns the number of top-level fields.
func (d *StructDict) Len() int { return len(d.fields) }

// Set stores v under name at the top level.
// Fails with ErrBadValue for an empty name, a nil value, or an ArrayValue
// carrying a nil array.
func (d *StructDict) Set(name string, v Value) error {
	if name == "" || v == nil {
		return fmt.Errorf("Set %q: %w", name, ErrBadValue)
	}
	if av, ok := v.(ArrayValue); ok && av.Arr == nil {
		return fmt.Errorf("Set %q: nil array: %w", name, ErrBadValue)
	}
	d.fields[name] = v

	return nil
}

// SetArray stores a numeric leaf under name.
func (d *StructDict) SetArray(name string, a *ndarray.Array) error {
	return d.Set(name, ArrayValue{Arr: a})
}

// SetScalar stores a rank-0 numeric leaf under name.
func (d *StructDict) SetScalar(name string, v float64) error {
	return d.Set(name, ArrayValue{Arr: ndarray.Scalar(v)})
}

// SetString stores a string leaf under name.
func (d *StructDict) SetString(name, s string) error {
	return d.Set(name, StringValue(s))
}

// SetDict stores a nested sub-record under name.
func (d *StructDict) SetDict(name string, sub *StructDict) error {
	if sub == nil {
		return fmt.Errorf("SetDict %q: %w", name, ErrBadValue)
	}

	return d.Set(name, sub)
}

// Field performs a raw top-level lookup with no sub-record fallback.
func (d *StructDict) Field(name string) (Value, bool) {
	v, ok := d.fields[name]

	return v, ok
}

// sub returns the designated sub-record when present and well-typed.
func (d *StructDict) sub() *StructDict {
	if d.subField == "" {
		return nil
	}
	v, ok := d.fields[d.subField]
	if !ok {
		return nil
	}
	nested, ok := v.(*StructDict)
	if !ok {
		return nil
	}

	return nested
}

// Get resolves name against the flattened namespace: the top-level mapping
// is checked first, then the designated sub-record. Absent from both fails
// with ErrFieldNotFound.
func (d *StructDict) Get(name string) (Value, error) {
	if v, ok := d.fields[name]; ok {
		return v, nil
	}
	if nested := d.sub(); nested != nil {
		if v, ok := nested.fields[name]; ok {
			return v, nil
		}
	}

	return nil, fmt.Errorf("Get %q: %w", name, ErrFieldNotFound)
}

// GetArray resolves name and requires a numeric leaf.
// A field of any other kind fails with ErrBadValue.
func (d *StructDict) GetArray(name string) (*ndarray.Array, error) {
	v, err := d.Get(name)
	if err != nil {
		return nil, err
	}
	av, ok := v.(ArrayValue)
	if !ok {
		return nil, fmt.Errorf("GetArray %q: not a numeric leaf: %w", name, ErrBadValue)
	}

	return av.Arr, nil
}

// LeafFields returns the sorted union of top-level leaf names and the
// designated sub-record's leaf names (one flattening level). Nested
// sub-records themselves are containers, not leaves, and are excluded.
// A name present at both levels fails with ErrAmbiguousField: flattening
// precedence is deliberately never guessed.
func (d *StructDict) LeafFields() ([]string, error) {
	names := make([]string, 0, len(d.fields))
	for name, v := range d.fields {
		if v.Kind() == KindDict {
			continue
		}
		names = append(names, name)
	}
	if nested := d.sub(); nested != nil {
		for name, v := range nested.fields {
			if v.Kind() == KindDict {
				continue
			}
			if _, clash := d.fields[name]; clash {
				return nil, fmt.Errorf("LeafFields %q: %w", name, ErrAmbiguousField)
			}
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names, nil
}
