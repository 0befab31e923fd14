package generator

import "testing"

// TestCacheIdentityNotStructural reproduces spec section 4.7's identity
// requirement: two distinct *avro.Field pointers of textually identical
// type and directive still get independent cache entries.
func TestCacheIdentityNotStructural(t *testing.T) {
	dir := map[string]any{"start": 0, "restart": 10, "step": 1}
	f1 := fieldWithDirective(t, "a", testLongSchema(), dir)
	f2 := fieldWithDirective(t, "a", testLongSchema(), dir)

	c := newCaches()
	c.putIterator(fieldNode(f1), "one")
	c.putIterator(fieldNode(f2), "two")

	v1, ok := c.getIterator(fieldNode(f1))
	if !ok || v1 != "one" {
		t.Fatalf("f1 cache = %v, %v, want \"one\", true", v1, ok)
	}
	v2, ok := c.getIterator(fieldNode(f2))
	if !ok || v2 != "two" {
		t.Fatalf("f2 cache = %v, %v, want \"two\", true", v2, ok)
	}
}

func TestCacheMissReturnsFalse(t *testing.T) {
	c := newCaches()
	f := fieldWithDirective(t, "a", testLongSchema(), map[string]any{"start": 0})
	if _, ok := c.getIterator(fieldNode(f)); ok {
		t.Fatalf("expected cache miss on empty cache")
	}
}
