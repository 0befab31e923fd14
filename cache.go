package generator

// caches holds the generator's three identity-keyed caches (spec section
// 4.7): once a node's options list, compiled regex, or iterator is
// resolved, every subsequent visit to that exact node (by key(), i.e.
// pointer identity, never structural equality) reuses it rather than
// re-resolving or re-compiling.
type caches struct {
	options  map[any][]any
	regex    map[any]*regexSource
	iterator map[any]any // boolIterator | intIterator | decimalIterator | stringIterator
}

func newCaches() *caches {
	return &caches{
		options:  make(map[any][]any),
		regex:    make(map[any]*regexSource),
		iterator: make(map[any]any),
	}
}

func (c *caches) getOptions(n node) ([]any, bool) {
	v, ok := c.options[n.key()]
	return v, ok
}

func (c *caches) putOptions(n node, v []any) {
	c.options[n.key()] = v
}

func (c *caches) getRegex(n node) (*regexSource, bool) {
	v, ok := c.regex[n.key()]
	return v, ok
}

func (c *caches) putRegex(n node, v *regexSource) {
	c.regex[n.key()] = v
}

func (c *caches) getIterator(n node) (any, bool) {
	v, ok := c.iterator[n.key()]
	return v, ok
}

func (c *caches) putIterator(n node, v any) {
	c.iterator[n.key()] = v
}
