package generator

import (
	"math/rand"

	"github.com/lucasjones/reggen"
)

// regexSource wraps a compiled reggen generator for one node's regex
// directive, cached by node identity (spec section 4.7) so repeated draws
// against the same node reuse the compiled pattern rather than
// recompiling it every call.
type regexSource struct {
	gen *reggen.Generator
}

func compileRegexSource(n node, pattern string) (*regexSource, error) {
	gen, err := reggen.NewGenerator(pattern)
	if err != nil {
		return nil, newShapeErr(n, "regex", "invalid regex pattern %q: %v", pattern, err)
	}
	return &regexSource{gen: gen}, nil
}

// generate draws a string matching the pattern. reggen's Generate(limit)
// bounds unbounded repetition operators at limit reps, not at a target
// string length; a length directive alongside regex is therefore read as
// that repetition bound rather than as a post-hoc length filter (spec
// section 4.5, 9: bounds are inclusive on both ends; sampling lengthBounds
// already draws from [min, max-1], i.e. the exclusive upper bound reduced
// by one).
func (s *regexSource) generate(r *rand.Rand, bounds lengthBounds) string {
	limit := bounds.sample(r)
	if limit < 0 {
		limit = 0
	}
	return s.gen.Generate(limit)
}
