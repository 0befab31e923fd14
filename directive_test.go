package generator

import "testing"

func TestResolveDirectivesNoAnnotation(t *testing.T) {
	n := rootNode(testLongSchema())
	d, err := resolveDirectives(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil directives, got %+v", d)
	}
}

func TestResolveDirectivesMutualExclusion(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "options+length", raw: map[string]any{"options": []any{1, 2}, "length": 5}},
		{name: "options+regex", raw: map[string]any{"options": []any{1, 2}, "regex": "a+"}},
		{name: "options+iteration", raw: map[string]any{"options": []any{1, 2}, "iteration": map[string]any{"start": 1}}},
		{name: "options+range", raw: map[string]any{"options": []any{1, 2}, "range": map[string]any{"min": 0, "max": 1}}},
		{name: "iteration+length", raw: map[string]any{"iteration": map[string]any{"start": 1}, "length": 5}},
		{name: "iteration+regex", raw: map[string]any{"iteration": map[string]any{"start": 1}, "regex": "a+"}},
		{name: "iteration+range", raw: map[string]any{"iteration": map[string]any{"start": 1}, "range": map[string]any{"min": 0, "max": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fieldWithDirective(t, "f", testLongSchema(), tt.raw)
			_, err := resolveDirectives(fieldNode(f))
			if err == nil {
				t.Fatalf("expected mutual-exclusion error")
			}
			ge, ok := err.(*GenerationError)
			if !ok {
				t.Fatalf("expected *GenerationError, got %T", err)
			}
			if ge.Category != CategoryMutualExclusion {
				t.Fatalf("category = %v, want %v", ge.Category, CategoryMutualExclusion)
			}
		})
	}
}

func TestResolveDirectivesIterationMustBeObject(t *testing.T) {
	f := fieldWithDirective(t, "f", testLongSchema(), map[string]any{"iteration": "not-an-object"})
	_, err := resolveDirectives(fieldNode(f))
	if err == nil {
		t.Fatalf("expected shape error")
	}
}
