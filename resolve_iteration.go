package generator

import (
	"github.com/justtrackio/avro/v2"
)

// resolveIterator builds (or returns the cached) iterator for a node
// carrying an iteration directive, dispatching on the node's schema type
// per spec section 4.3: int/long get an intIterator, float/double get a
// decimalIterator, boolean gets a boolIterator, string gets a
// stringIterator built over a long-width intIterator.
func (c *caches) resolveIterator(n node, d *directives, offset uint64) (any, error) {
	if cached, ok := c.getIterator(n); ok {
		return cached, nil
	}

	it, err := buildIterator(n, d.iteration, offset)
	if err != nil {
		return nil, err
	}

	c.putIterator(n, it)
	return it, nil
}

func buildIterator(n node, raw map[string]any, offset uint64) (any, error) {
	switch n.schema.Type() {
	case avro.Int:
		start, restart, step, initial, err := resolveIntIteration(n, raw, int32Bounds)
		if err != nil {
			return nil, err
		}
		return newIntIterator(start, restart, step, initial, offset), nil
	case avro.Long:
		start, restart, step, initial, err := resolveIntIteration(n, raw, int64Bounds)
		if err != nil {
			return nil, err
		}
		return newIntIterator(start, restart, step, initial, offset), nil
	case avro.Float, avro.Double:
		start, restart, step, initial, err := resolveDecimalIteration(n, raw)
		if err != nil {
			return nil, err
		}
		return newDecimalIterator(start, restart, step, initial, offset), nil
	case avro.Boolean:
		start, err := resolveBoolIteration(n, raw)
		if err != nil {
			return nil, err
		}
		return newBoolIterator(start, offset), nil
	case avro.String:
		start, restart, step, initial, err := resolveIntIteration(n, raw, int64Bounds)
		if err != nil {
			return nil, err
		}
		return newStringIterator(start, restart, step, initial, offset), nil
	default:
		return nil, newTypeSupportErr(n, "iteration")
	}
}

// nextIterated draws the next value from an iterator previously resolved
// by resolveIterator, returning it already shaped as the Go value the
// generator emits for this node (int64, int32, float64, float32, bool or
// string).
func nextIterated(n node, it any) (any, error) {
	switch v := it.(type) {
	case *intIterator:
		value := v.next()
		if n.schema.Type() == avro.Int {
			return int32(value), nil
		}
		return value, nil
	case *decimalIterator:
		r := v.next()
		f, _ := r.Float64()
		if n.schema.Type() == avro.Float {
			return float32(f), nil
		}
		return f, nil
	case *boolIterator:
		return v.next(), nil
	case *stringIterator:
		return v.next(), nil
	default:
		return nil, newTypeSupportErr(n, "iteration")
	}
}
