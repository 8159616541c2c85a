package graph

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Vertex is the constraint for vertex identifiers. Ordering is only used to
// make iteration deterministic; it carries no meaning for the algorithms.
type Vertex interface {
	constraints.Ordered
}

// Weight is the constraint for edge weights.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is a single weighted, directed edge.
type Edge[V Vertex, W Weight] struct {
	From   V
	To     V
	Weight W
}

// Infinity returns +Inf for floating point weights and the largest
// representable value for integer weights.
func Infinity[W Weight]() W {
	var w W
	v := reflect.ValueOf(&w).Elem()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(math.MaxInt64 >> (64 - v.Type().Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(math.MaxUint64 >> (64 - v.Type().Bits()))
	}
	return w
}

// lowest returns -Inf for floating point weights and the smallest
// representable value for integer weights.
func lowest[W Weight]() W {
	var w W
	v := reflect.ValueOf(&w).Elem()
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(-1))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(math.MinInt64 >> (64 - v.Type().Bits()))
	}
	return w
}

// Sum adds the weight w to the distance d. inf must be Infinity[W]().
//
// The sum saturates instead of wrapping around: anything at or above inf
// is inf and ok is false, which callers treat as "no path". A sum below the
// smallest representable value is clamped to it.
func Sum[W Weight](d, w, inf W) (result W, ok bool) {
	if d == inf || w == inf {
		return inf, false
	}

	x := d + w
	switch {
	case w >= 0 && (x < d || x >= inf):
		return inf, false
	case w < 0 && x > d:
		return lowest[W](), true
	}

	return x, true
}
