package generator

// directives holds the raw, per-node arg.properties payload plus the
// presence flags needed to enforce the mutual-exclusion groups in spec
// section 3. Individual strategies (options, iteration, length, decimal,
// scalar) parse their own sub-value out of the raw fields; the resolver's
// job is presence/exclusion validation and handing typed sub-maps down,
// not fully decoding every directive up front (several of them, like
// iteration, decode differently depending on the node's schema type).
type directives struct {
	hasOptions   bool
	hasIteration bool
	hasLength    bool
	hasRegex     bool
	hasRange     bool
	hasOdds      bool
	hasKeys      bool

	options   any
	iteration map[string]any
	length    any
	regex     string
	prefix    string
	suffix    string
	rng       map[string]any
	odds      any
	keys      map[string]any
}

// resolveDirectives parses and validates the arg.properties object on n,
// returning a nil *directives (and nil error) when the node carries none.
func resolveDirectives(n node) (*directives, error) {
	raw := n.rawDirectives()
	if raw == nil {
		return nil, nil
	}

	d := &directives{}

	if v, ok := raw["options"]; ok {
		d.hasOptions = true
		d.options = v
	}
	if v, ok := raw["iteration"]; ok {
		d.hasIteration = true
		m, ok := v.(map[string]any)
		if !ok {
			return nil, newShapeErr(n, "iteration", "iteration must be an object, got %T", v)
		}
		d.iteration = m
	}
	if v, ok := raw["length"]; ok {
		d.hasLength = true
		d.length = v
	}
	if v, ok := raw["regex"]; ok {
		d.hasRegex = true
		s, err := toString(v)
		if err != nil {
			return nil, newShapeErr(n, "regex", "regex must be a string: %v", err)
		}
		d.regex = s
	}
	if v, ok := raw["prefix"]; ok {
		s, err := toString(v)
		if err != nil {
			return nil, newShapeErr(n, "prefix", "prefix must be a string: %v", err)
		}
		d.prefix = s
	}
	if v, ok := raw["suffix"]; ok {
		s, err := toString(v)
		if err != nil {
			return nil, newShapeErr(n, "suffix", "suffix must be a string: %v", err)
		}
		d.suffix = s
	}
	if v, ok := raw["range"]; ok {
		d.hasRange = true
		m, ok := v.(map[string]any)
		if !ok {
			return nil, newShapeErr(n, "range", "range must be an object, got %T", v)
		}
		d.rng = m
	}
	if v, ok := raw["odds"]; ok {
		d.hasOdds = true
		d.odds = v
	}
	if v, ok := raw["keys"]; ok {
		d.hasKeys = true
		m, ok := v.(map[string]any)
		if !ok {
			return nil, newShapeErr(n, "keys", "keys must be an object, got %T", v)
		}
		d.keys = m
	}

	if err := d.validateExclusions(n); err != nil {
		return nil, err
	}

	return d, nil
}

// validateExclusions enforces spec section 3's mutual-exclusion groups:
// options excludes length/regex/iteration/range; iteration excludes
// length/regex/options/range.
func (d *directives) validateExclusions(n node) error {
	if d.hasOptions {
		if d.hasLength {
			return newMutexErr(n, "options", "length")
		}
		if d.hasRegex {
			return newMutexErr(n, "options", "regex")
		}
		if d.hasIteration {
			return newMutexErr(n, "options", "iteration")
		}
		if d.hasRange {
			return newMutexErr(n, "options", "range")
		}
	}
	if d.hasIteration {
		if d.hasLength {
			return newMutexErr(n, "iteration", "length")
		}
		if d.hasRegex {
			return newMutexErr(n, "iteration", "regex")
		}
		if d.hasRange {
			return newMutexErr(n, "iteration", "range")
		}
	}
	return nil
}
