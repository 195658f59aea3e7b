// Package structdict models a structured record: named fields holding
// numeric arrays, strings, or one level of nested sub-records.
//
// 🚀 What is a StructDict?
//
//	The analytic pipelines exchange "struct" blobs: a flat set of named
//	values plus one designated sub-record whose fields are treated as if
//	they lived at the top level. StructDict reproduces that shape as an
//	explicit two-level mapping:
//	  • Get(name) checks the top level first, then the designated
//	    sub-record — no reflection, no dynamic dispatch
//	  • LeafFields() flattens the designated sub-record's leaves into
//	    the top-level namespace, refusing ambiguous (duplicated) names
//
// ✨ Field values are a closed set:
//   - *ndarray.Array (numeric leaf — scalar, vector or volume)
//   - string leaf
//   - nested *StructDict (one level deep)
//
// ⚙️ On-disk form:
//
//	Records serialize as YAML mappings; numbers and (nested) number
//	sequences become arrays, strings stay strings, one mapping level
//	becomes a sub-record. Load failures of any kind surface ErrLoad.
//
//	d, err := structdict.LoadFile("run.yaml", structdict.Options{SubField: "sub"})
//	v, err := d.Get("a2") // found in the designated sub-record
package structdict
