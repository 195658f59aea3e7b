package structdict_test

import (
	"fmt"

	"github.com/Chibee/rt-cloud/structdict"
)

// ExampleStructDict_Get demonstrates the two-level lookup: top level first,
// then the designated sub-record.
func ExampleStructDict_Get() {
	sub := structdict.New("")
	_ = sub.SetScalar("b2", 7)
	_ = sub.SetString("str2", "world")

	d := structdict.New("sub")
	_ = d.SetString("str1", "hello")
	_ = d.SetDict("sub", sub)

	v, _ := d.Get("str1") // top level
	fmt.Println(v)
	v, _ = d.Get("str2") // resolved through the sub-record
	fmt.Println(v)
	_, err := d.Get("missing")
	fmt.Println(err)
	// Output:
	// hello
	// world
	// Get "missing": structdict: field not found
}

// ExampleLoad decodes a YAML struct document and flattens its leaf names.
func ExampleLoad() {
	doc := []byte(`
a1: 6.0
sub:
  a2: [1, 2, 3]
`)
	d, _ := structdict.Load(doc, structdict.Options{SubField: "sub"})
	fields, _ := d.LeafFields()
	fmt.Println(fields)

	arr, _ := d.GetArray("a2")
	fmt.Println(arr.Shape(), arr.Data())
	// Output:
	// [a1 a2]
	// [3] [1 2 3]
}
