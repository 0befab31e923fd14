package generator

import (
	"context"

	"github.com/justtrackio/avro/v2"
)

// EnumValue is the value-tree representation of a generated enum value
// (spec section 6): the symbol chosen plus the schema it was chosen from,
// so an encoder downstream can validate or resolve it without re-walking
// the schema tree.
type EnumValue struct {
	Schema *avro.EnumSchema
	Symbol string
}

// UnionValue is the value-tree representation of a generated union value
// (spec section 6): the branch index selected plus the generated value for
// that branch.
type UnionValue struct {
	Schema *avro.UnionSchema
	Index  int
	Value  any
}

// OptionsDecoder is the seam spec section 4.8 leaves for an external
// collaborator that resolves a file-backed options directive (resource +
// encoding) into a concrete list of candidate values. The generator core
// never opens a file itself.
type OptionsDecoder interface {
	Decode(ctx context.Context, resource, encoding string, schema avro.Schema) ([]any, error)
}

// NopOptionsDecoder always fails: it is the default used when a Builder is
// not given a real decoder, so a file-backed options directive fails fast
// with a clear error instead of silently falling through to type-default
// generation.
type NopOptionsDecoder struct{}

func (NopOptionsDecoder) Decode(_ context.Context, resource, _ string, _ avro.Schema) ([]any, error) {
	return nil, &GenerationError{
		Category: CategoryResource,
		Message:  "no OptionsDecoder configured; cannot resolve file-backed options for resource " + resource,
	}
}

// OptionsDecoderFunc adapts a plain function to OptionsDecoder.
type OptionsDecoderFunc func(ctx context.Context, resource, encoding string, schema avro.Schema) ([]any, error)

func (f OptionsDecoderFunc) Decode(ctx context.Context, resource, encoding string, schema avro.Schema) ([]any, error) {
	return f(ctx, resource, encoding, schema)
}
