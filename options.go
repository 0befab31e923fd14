package generator

import (
	"context"
	"fmt"

	"github.com/justtrackio/avro/v2"
)

// resolveOptions returns the (cached) candidate list for a node's options
// directive, per spec section 4.4: an inline list is coerced once and
// validated against the node's schema type; a file-backed options object
// ({file, encoding}) is resolved once via the configured
// OptionsDecoder. Either form rejects an empty candidate list as a
// resource-category error, since a directive promising choices that yield
// none is a misconfiguration, not a valid "no options" state.
func (g *Generator) resolveOptions(ctx context.Context, n node, d *directives) ([]any, error) {
	if cached, ok := g.caches.getOptions(n); ok {
		return cached, nil
	}

	var (
		list []any
		err  error
	)
	switch v := d.options.(type) {
	case []any:
		list, err = coerceOptionsList(n, v)
	case map[string]any:
		list, err = g.resolveFileOptions(ctx, n, v)
	default:
		return nil, newShapeErr(n, "options", "options must be a list or a {file, encoding} object, got %T", d.options)
	}
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		return nil, newResourceErr(n, "options", fmt.Errorf("options resolved to an empty candidate list"))
	}

	g.caches.putOptions(n, list)
	g.logCachePopulated("options", n)
	return list, nil
}

func (g *Generator) resolveFileOptions(ctx context.Context, n node, v map[string]any) ([]any, error) {
	resource, ok := v["file"].(string)
	if !ok || resource == "" {
		return nil, newShapeErr(n, "options", "options.file must be a non-empty string")
	}
	encoding, _ := v["encoding"].(string)
	if encoding != "binary" && encoding != "json" {
		return nil, newShapeErr(n, "options", "options.encoding must be \"binary\" or \"json\", got %q", encoding)
	}

	raw, err := g.decoder.Decode(ctx, resource, encoding, n.schema)
	if err != nil {
		return nil, newResourceErr(n, "options", err)
	}
	list, err := coerceOptionsList(n, raw)
	if err != nil {
		return nil, err
	}
	g.logOptionsResolved(n, resource, len(list))
	return list, nil
}

// coerceOptionsList coerces every candidate in an inline options list to
// the Go value the generator would otherwise produce natively for this
// node's schema type (spec section 4.4's per-type coercion table).
func coerceOptionsList(n node, raw []any) ([]any, error) {
	out := make([]any, len(raw))
	for i, v := range raw {
		cv, err := coerceOption(n, v)
		if err != nil {
			return nil, newCoercionErr(n, "options", fmt.Errorf("element %d: %w", i, err))
		}
		out[i] = cv
	}
	return out, nil
}

func coerceOption(n node, v any) (any, error) {
	switch n.schema.Type() {
	case avro.Boolean:
		return toBool(v)
	case avro.Int:
		i, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		return int32(i), nil
	case avro.Long:
		return toInt64(v)
	case avro.Float:
		f, err := toFloat64(v)
		if err != nil {
			return nil, err
		}
		return float32(f), nil
	case avro.Double:
		return toFloat64(v)
	case avro.String:
		return toString(v)
	case avro.Bytes:
		return coerceBytesOption(v)
	case avro.Fixed:
		fs := n.schema.(*avro.FixedSchema)
		b, err := coerceBytesOption(v)
		if err != nil {
			return nil, err
		}
		if len(b) != fs.Size() {
			return nil, fmt.Errorf("fixed option has %d bytes, schema requires %d", len(b), fs.Size())
		}
		return b, nil
	case avro.Enum:
		s, err := toString(v)
		if err != nil {
			return nil, err
		}
		es := n.schema.(*avro.EnumSchema)
		for _, sym := range es.Symbols() {
			if sym == s {
				return EnumValue{Schema: es, Symbol: s}, nil
			}
		}
		return nil, fmt.Errorf("%q is not a symbol of enum %s", s, es.Name())
	case avro.Array:
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("expected a list, got %T", v)
		}
		as := n.schema.(*avro.ArraySchema)
		elemNode := node{schema: as.Items()}
		out := make([]any, len(list))
		for i, e := range list {
			cv, err := coerceOption(elemNode, e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = cv
		}
		return out, nil
	case avro.Map:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected an object, got %T", v)
		}
		ms := n.schema.(*avro.MapSchema)
		valNode := node{schema: ms.Values()}
		out := make(map[string]any, len(m))
		for k, e := range m {
			cv, err := coerceOption(valNode, e)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			out[k] = cv
		}
		return out, nil
	case avro.Record:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected an object, got %T", v)
		}
		rs := n.schema.(*avro.RecordSchema)
		out := make(map[string]any, len(rs.Fields()))
		for _, f := range rs.Fields() {
			fv, ok := m[f.Name()]
			if !ok {
				if f.HasDefault() {
					out[f.Name()] = f.Default()
					continue
				}
				return nil, fmt.Errorf("record option missing field %q", f.Name())
			}
			cv, err := coerceOption(fieldNode(f), fv)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name(), err)
			}
			out[f.Name()] = cv
		}
		return out, nil
	case avro.Union:
		return coerceUnionOption(n, v)
	case avro.Null:
		if v != nil {
			return nil, fmt.Errorf("expected null, got %T", v)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported schema type %q for options", n.schema.Type())
	}
}

func coerceUnionOption(n node, v any) (any, error) {
	us := n.schema.(*avro.UnionSchema)
	if v == nil {
		for i, t := range us.Types() {
			if t.Type() == avro.Null {
				return UnionValue{Schema: us, Index: i, Value: nil}, nil
			}
		}
		return nil, fmt.Errorf("union has no null branch")
	}
	for i, t := range us.Types() {
		if t.Type() == avro.Null {
			continue
		}
		branchNode := node{schema: t}
		if cv, err := coerceOption(branchNode, v); err == nil {
			return UnionValue{Schema: us, Index: i, Value: cv}, nil
		}
	}
	return nil, fmt.Errorf("value does not match any non-null branch of union")
}

func coerceBytesOption(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return nil, fmt.Errorf("expected bytes or a string, got %T", v)
	}
}
