package generator

import (
	"math"
	"math/rand"

	"github.com/justtrackio/avro/v2"
)

// scalarBool implements spec section 4.5's boolean strategy: an odds
// directive biases the draw; absent odds draws a uniform boolean via the
// teacher's faker, since an unweighted boolean has no shape invariant for
// math/rand to police more precisely than gofakeit already does.
func (g *Generator) scalarBool(n node, d *directives) (bool, error) {
	if d != nil && d.hasOdds {
		p, err := toFloat64(d.odds)
		if err != nil {
			return false, newShapeErr(n, "odds", "odds must be a number: %v", err)
		}
		if p < 0 || p > 1 {
			return false, newRangeErr(n, "odds", "odds must lie in [0,1], got %v", p)
		}
		return g.rand.Float64() < p, nil
	}
	return g.faker.Bool(), nil
}

// scalarRange resolves a node's range directive into (lo, hi), defaulting
// to the representable extremes of the target numeric type (spec section
// 3, 4.5).
func (g *Generator) scalarRange(n node, d *directives, defaultLo, defaultHi float64) (float64, float64, error) {
	if d == nil || !d.hasRange {
		return defaultLo, defaultHi, nil
	}

	var shape struct {
		Min *float64 `mapstructure:"min"`
		Max *float64 `mapstructure:"max"`
	}
	if err := decodeWeak(d.rng, &shape); err != nil {
		return 0, 0, newShapeErr(n, "range", "range object must set numeric min/max: %v", err)
	}

	lo, hi := defaultLo, defaultHi
	if shape.Min != nil {
		lo = *shape.Min
	}
	if shape.Max != nil {
		hi = *shape.Max
	}
	if !(lo < hi) {
		return 0, 0, newRangeErr(n, "range", "range.min (%v) must be strictly less than range.max (%v)", lo, hi)
	}
	return lo, hi, nil
}

// scalarInt32 implements spec section 4.5's int strategy: uniform over
// the full 32-bit range absent a range directive, otherwise
// lo + floor(random()*(hi-lo)).
func (g *Generator) scalarInt32(n node, d *directives) (int32, error) {
	if d == nil || !d.hasRange {
		return int32(g.rand.Uint32()), nil
	}
	lo, hi, err := g.scalarRange(n, d, math.MinInt32, math.MaxInt32)
	if err != nil {
		return 0, err
	}
	return int32(lo + math.Trunc(g.rand.Float64()*(hi-lo))), nil
}

func (g *Generator) scalarInt64(n node, d *directives) (int64, error) {
	if d == nil || !d.hasRange {
		return int64(g.rand.Uint64()), nil
	}
	lo, hi, err := g.scalarRange(n, d, math.MinInt64, math.MaxInt64)
	if err != nil {
		return 0, err
	}
	return int64(lo + math.Trunc(g.rand.Float64()*(hi-lo))), nil
}

// scalarFloat32/64 implement spec section 4.5's float/double strategy:
// uniform in [0,1) absent a range directive, otherwise lo + unit*(hi-lo).
func (g *Generator) scalarFloat32(n node, d *directives) (float32, error) {
	if d == nil || !d.hasRange {
		return g.rand.Float32(), nil
	}
	lo, hi, err := g.scalarRange(n, d, -math.MaxFloat32, math.MaxFloat32)
	if err != nil {
		return 0, err
	}
	return float32(lo + g.rand.Float64()*(hi-lo)), nil
}

func (g *Generator) scalarFloat64(n node, d *directives) (float64, error) {
	if d == nil || !d.hasRange {
		return g.rand.Float64(), nil
	}
	lo, hi, err := g.scalarRange(n, d, -math.MaxFloat64, math.MaxFloat64)
	if err != nil {
		return 0, err
	}
	return lo + g.rand.Float64()*(hi-lo), nil
}

// scalarBytes implements spec section 4.5's random-bytes strategy for a
// non-decimal bytes node.
func (g *Generator) scalarBytes(n node, d *directives) ([]byte, error) {
	bounds, err := lengthBoundsFor(n, d)
	if err != nil {
		return nil, err
	}
	l := bounds.sample(g.rand)
	buf := make([]byte, l)
	g.rand.Read(buf)
	return buf, nil
}

func lengthBoundsFor(n node, d *directives) (lengthBounds, error) {
	if d == nil || !d.hasLength {
		return defaultLengthBounds(), nil
	}
	return parseLengthDirective(n, d.length)
}

// scalarString implements spec section 4.5's string strategy: regex if
// present, else N random ASCII bytes in [0,128); prefix/suffix wrap
// either form.
func (g *Generator) scalarString(n node, d *directives) (string, error) {
	bounds, err := lengthBoundsFor(n, d)
	if err != nil {
		return "", err
	}

	var body string
	if d != nil && d.hasRegex {
		src, ok := g.caches.getRegex(n)
		if !ok {
			src, err = compileRegexSource(n, d.regex)
			if err != nil {
				return "", err
			}
			g.caches.putRegex(n, src)
			g.logCachePopulated("regex", n)
		}
		body = src.generate(g.rand, bounds)
	} else {
		body = randomASCII(g.rand, bounds.sample(g.rand))
	}

	return wrapPrefixSuffix(d, body), nil
}

func randomASCII(r *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(r.Intn(128))
	}
	return string(buf)
}

func wrapPrefixSuffix(d *directives, body string) string {
	if d == nil {
		return body
	}
	return d.prefix + body + d.suffix
}

// scalarFixedBytes implements spec section 4.2's fixed strategy for a
// non-decimal fixed node: exactly N.Size() random bytes.
func (g *Generator) scalarFixedBytes(fs *avro.FixedSchema) []byte {
	buf := make([]byte, fs.Size())
	g.rand.Read(buf)
	return buf
}

// scalarEnum implements spec section 4.2's enum strategy: pick uniformly
// by index from the ordered symbol list.
func (g *Generator) scalarEnum(es *avro.EnumSchema) EnumValue {
	symbols := es.Symbols()
	idx := g.rand.Intn(len(symbols))
	return EnumValue{Schema: es, Symbol: symbols[idx]}
}
