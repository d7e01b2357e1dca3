package flint

import (
	"fmt"
	"reflect"

	"github.com/go-flint/flint/errors"
)

// A Range is a lazy integer sequence accepted by Parallelize. It is
// materialized into a concrete sequence before encoding.
type Range struct {
	Start int
	End   int // exclusive
	Step  int // defaults to 1
}

// Materialize produces the concrete, order-preserving sequence described by
// this Range
func (r Range) Materialize() []interface{} {
	step := r.Step
	if step == 0 {
		step = 1
	}
	var values []interface{}
	if step > 0 {
		for i := r.Start; i < r.End; i += step {
			values = append(values, i)
		}
	} else {
		for i := r.Start; i > r.End; i += step {
			values = append(values, i)
		}
	}
	return values
}

// materialize normalizes a collection into a concrete sequence. Slices and
// arrays are accepted as-is; Ranges are expanded. Anything else cannot be
// staged.
func materialize(collection interface{}) ([]interface{}, error) {
	switch c := collection.(type) {
	case nil:
		return nil, errors.InvalidCollectionError{Type: "nil"}
	case []interface{}:
		return c, nil
	case Range:
		return c.Materialize(), nil
	}
	v := reflect.ValueOf(collection)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, errors.InvalidCollectionError{Type: fmt.Sprintf("%T", collection)}
	}
	values := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		values[i] = v.Index(i).Interface()
	}
	return values, nil
}
