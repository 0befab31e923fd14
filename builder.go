package generator

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/justtrackio/avro/v2"
	"go.uber.org/zap"
)

// Builder constructs a Generator, in the teacher's own
// NewGenerator().SetSeed(...).SetMaxDepth(...) chaining idiom, adapted to
// this domain's required inputs: a parsed schema, a PRNG seed, and a
// non-negative generation offset (spec section 6).
type Builder struct {
	schema  avro.Schema
	seed    int64
	offset  uint64
	decoder OptionsDecoder
	logger  *zap.Logger
}

// NewBuilder creates a Builder for the given parsed schema, seeded from
// the current time so a caller that never calls WithSeed still gets a
// usable, if non-reproducible, generator.
func NewBuilder(schema avro.Schema) *Builder {
	return &Builder{
		schema:  schema,
		seed:    time.Now().UnixNano(),
		decoder: NopOptionsDecoder{},
		logger:  zap.NewNop(),
	}
}

// WithSeed sets the PRNG seed. Two builders with the same schema, seed,
// and offset produce generators whose sequences are bit-identical (spec
// section 3, 8).
func (b *Builder) WithSeed(seed int64) *Builder {
	b.seed = seed
	return b
}

// WithOffset sets the non-negative generation offset that logically
// fast-forwards every iterative node by that many steps (spec section 6,
// glossary).
func (b *Builder) WithOffset(offset uint64) *Builder {
	b.offset = offset
	return b
}

// WithOptionsDecoder supplies the collaborator that resolves file-backed
// options directives (spec section 4.8). Without one, the Generator uses
// NopOptionsDecoder, which fails the first time such a directive is
// actually used.
func (b *Builder) WithOptionsDecoder(d OptionsDecoder) *Builder {
	b.decoder = d
	return b
}

// WithLogger supplies a zap logger for diagnostics. Defaults to a no-op
// logger so the core stays silent unless a caller opts in.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// Build produces a Generator bound to the builder's schema, seed, and
// offset. Construction is cheap (spec section 5); caches start empty and
// populate lazily on first visit to each node.
func (b *Builder) Build() *Generator {
	return &Generator{
		schema:  b.schema,
		rand:    rand.New(rand.NewSource(b.seed)),
		offset:  b.offset,
		decoder: b.decoder,
		logger:  b.logger,
		faker:   gofakeit.New(uint64(b.seed)),
		caches:  newCaches(),
	}
}
