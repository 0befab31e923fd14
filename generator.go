package generator

import (
	"context"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/justtrackio/avro/v2"
	"go.uber.org/zap"
)

// Generator is bound to one parsed schema, one PRNG, and one generation
// offset, per spec section 3's "Generator state". It is single-threaded
// by contract (spec section 5): concurrent calls to Generate on one
// instance are undefined. Build one Generator per worker for concurrent
// generation.
type Generator struct {
	schema  avro.Schema
	rand    *rand.Rand
	offset  uint64
	decoder OptionsDecoder
	logger  *zap.Logger
	faker   *gofakeit.Faker
	caches  *caches
}

// Generate walks the bound schema tree and produces one value tree,
// resolving directives and caches as it goes (spec section 4.2). The
// context only matters on nodes with a file-backed options directive,
// where it is threaded through to the configured OptionsDecoder.
func (g *Generator) Generate(ctx context.Context) (any, error) {
	return g.generateNode(ctx, rootNode(g.schema))
}

func (g *Generator) generateNode(ctx context.Context, n node) (any, error) {
	d, err := resolveDirectives(n)
	if err != nil {
		return nil, err
	}

	if d != nil && d.hasOptions {
		list, err := g.resolveOptions(ctx, n, d)
		if err != nil {
			return nil, err
		}
		return list[g.rand.Intn(len(list))], nil
	}

	if d != nil && d.hasIteration {
		return g.generateIterated(n, d)
	}

	return g.generateTypeDefault(ctx, n, d)
}

// generateIterated implements spec section 4.3's iteration dispatch,
// applying prefix/suffix wrapping to string iteration (spec section 4.3,
// testable scenario 4) the same way the random-string strategy does.
func (g *Generator) generateIterated(n node, d *directives) (any, error) {
	_, cached := g.caches.getIterator(n)
	it, err := g.caches.resolveIterator(n, d, g.offset)
	if err != nil {
		return nil, err
	}
	if !cached {
		g.logCachePopulated("iterator", n)
	}
	v, err := nextIterated(n, it)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		return wrapPrefixSuffix(d, s), nil
	}
	return v, nil
}

func (g *Generator) generateTypeDefault(ctx context.Context, n node, d *directives) (any, error) {
	switch n.schema.Type() {
	case avro.Null:
		return nil, nil
	case avro.Boolean:
		return g.scalarBool(n, d)
	case avro.Int:
		return g.scalarInt32(n, d)
	case avro.Long:
		return g.scalarInt64(n, d)
	case avro.Float:
		return g.scalarFloat32(n, d)
	case avro.Double:
		return g.scalarFloat64(n, d)
	case avro.Bytes:
		if cfg, ok := decimalConfigOf(n.schema); ok {
			return g.generateDecimal(n, d, cfg)
		}
		return g.scalarBytes(n, d)
	case avro.String:
		return g.scalarString(n, d)
	case avro.Fixed:
		fs := n.schema.(*avro.FixedSchema)
		if cfg, ok := decimalConfigOf(n.schema); ok {
			cfg.fixedSize = fs.Size()
			return g.generateDecimal(n, d, cfg)
		}
		return g.scalarFixedBytes(fs), nil
	case avro.Enum:
		return g.scalarEnum(n.schema.(*avro.EnumSchema)), nil
	case avro.Array:
		return g.generateArray(ctx, n, d, n.schema.(*avro.ArraySchema))
	case avro.Map:
		return g.generateMap(ctx, n, d, n.schema.(*avro.MapSchema))
	case avro.Record:
		return g.generateRecord(ctx, n.schema.(*avro.RecordSchema))
	case avro.Union:
		return g.generateUnion(ctx, n.schema.(*avro.UnionSchema))
	default:
		return nil, newTypeSupportErr(n, "")
	}
}

// decimalConfigOf reads the precision/scale off a bytes or fixed schema's
// decimal logical type, if any.
func decimalConfigOf(s avro.Schema) (decimalConfig, bool) {
	lh, ok := s.(avro.LogicalTypeSchema)
	if !ok {
		return decimalConfig{}, false
	}
	logical := lh.Logical()
	if logical == nil || logical.Type() != avro.Decimal {
		return decimalConfig{}, false
	}
	dec, ok := logical.(*avro.DecimalLogicalSchema)
	if !ok {
		return decimalConfig{}, false
	}
	return decimalConfig{precision: dec.Precision(), scale: dec.Scale()}, true
}

// generateDecimal implements spec section 4.6's two decimal modes: range
// mode when a range directive is present, precision mode otherwise.
func (g *Generator) generateDecimal(n node, d *directives, cfg decimalConfig) ([]byte, error) {
	var encoded []byte
	if d != nil && d.hasRange {
		defLo, defHi := decimalDefaultRange(cfg)
		lo, hi, err := g.scalarRange(n, d, defLo, defHi)
		if err != nil {
			return nil, err
		}
		encoded = generateDecimalRange(g.rand, cfg, lo, hi)
	} else {
		encoded = generateDecimalPrecision(g.rand, cfg)
	}

	if cfg.fixedSize > 0 {
		if err := validateFixedDecimalSize(n, encoded, cfg.fixedSize); err != nil {
			return nil, err
		}
	}
	return encoded, nil
}
