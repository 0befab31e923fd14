package generator

import (
	"context"
	"errors"

	"github.com/justtrackio/avro/v2"
)

var errEmptyOptions = errors.New("keys.options resolved to an empty candidate list")

// generateArray implements spec section 4.2's array strategy: sample a
// length from the node's length bounds, then generate that many children
// from the element schema, each its own (bare, non-field) node so
// caches/iterators key off the element schema's identity, shared across
// every element position — matching the teacher's generateArray, which
// also recurses on one shared item schema.
func (g *Generator) generateArray(ctx context.Context, n node, d *directives, as *avro.ArraySchema) ([]any, error) {
	bounds, err := lengthBoundsFor(n, d)
	if err != nil {
		return nil, err
	}
	l := bounds.sample(g.rand)

	out := make([]any, l)
	elem := node{schema: as.Items()}
	for i := 0; i < l; i++ {
		v, err := g.generateNode(ctx, elem)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// generateMap implements spec section 4.2's map strategy: sample a
// length, then generate that many (key, value) pairs. Keys follow the
// keys sub-directive when present (its own options/length/regex rules
// over an implicit string schema); absent a keys sub-directive, keys are
// random 1-character ASCII strings via the teacher's faker.
func (g *Generator) generateMap(ctx context.Context, n node, d *directives, ms *avro.MapSchema) (map[string]any, error) {
	bounds, err := lengthBoundsFor(n, d)
	if err != nil {
		return nil, err
	}
	l := bounds.sample(g.rand)

	out := make(map[string]any, l)
	valNode := node{schema: ms.Values()}
	for i := 0; i < l; i++ {
		key, err := g.generateMapKey(n, d)
		if err != nil {
			return nil, err
		}
		v, err := g.generateNode(ctx, valNode)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func (g *Generator) generateMapKey(n node, d *directives) (string, error) {
	if d == nil || !d.hasKeys {
		return g.faker.LetterN(1), nil // LetterN takes uint; untyped 1 converts implicitly
	}
	keyNode := node{schema: avro.NewPrimitiveSchema(avro.String, nil)} // implicit string schema for key sub-rules
	keyDirectives := &directives{}
	if v, ok := d.keys["length"]; ok {
		keyDirectives.hasLength = true
		keyDirectives.length = v
	}
	if v, ok := d.keys["regex"]; ok {
		s, err := toString(v)
		if err != nil {
			return "", newShapeErr(n, "keys.regex", "keys.regex must be a string: %v", err)
		}
		keyDirectives.hasRegex = true
		keyDirectives.regex = s
	}
	if v, ok := d.keys["options"]; ok {
		keyDirectives.hasOptions = true
		keyDirectives.options = v
	}
	if keyDirectives.hasOptions {
		list, err := coerceOptionsListAsStrings(n, keyDirectives.options)
		if err != nil {
			return "", err
		}
		if len(list) == 0 {
			return "", newResourceErr(n, "keys.options", errEmptyOptions)
		}
		return list[g.rand.Intn(len(list))], nil
	}
	return g.scalarString(keyNode, keyDirectives)
}

func coerceOptionsListAsStrings(n node, raw any) ([]string, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, newShapeErr(n, "keys.options", "keys.options must be a list, got %T", raw)
	}
	out := make([]string, len(list))
	for i, v := range list {
		s, err := toString(v)
		if err != nil {
			return nil, newCoercionErr(n, "keys.options", err)
		}
		out[i] = s
	}
	return out, nil
}

// generateRecord implements spec section 4.2's record strategy: generate
// each field in declared order from its own field node (directives live
// on the *avro.Field, distinct per field even when two fields share a
// record type), assembling a map keyed by field name.
func (g *Generator) generateRecord(ctx context.Context, rs *avro.RecordSchema) (map[string]any, error) {
	fields := rs.Fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		v, err := g.generateNode(ctx, fieldNode(f))
		if err != nil {
			return nil, err
		}
		out[f.Name()] = v
	}
	return out, nil
}

// generateUnion implements spec section 4.2's union strategy: pick
// uniformly by index among the ordered member schemas, then recurse into
// the chosen branch.
func (g *Generator) generateUnion(ctx context.Context, us *avro.UnionSchema) (UnionValue, error) {
	types := us.Types()
	idx := g.rand.Intn(len(types))
	branch := node{schema: types[idx]}
	v, err := g.generateNode(ctx, branch)
	if err != nil {
		return UnionValue{}, err
	}
	return UnionValue{Schema: us, Index: idx, Value: v}, nil
}
