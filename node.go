package generator

import (
	"github.com/justtrackio/avro/v2"
)

// argPropertiesKey is the reserved user-property key that carries a
// directive object, per spec section 6.
const argPropertiesKey = "arg.properties"

// node identifies one position in a schema tree: a bare schema (array
// element, map value, union member, or the tree root) or a record field.
// Two structurally identical schemas reached through different fields (or
// different positions) are distinct nodes, because key() returns pointer
// identity, never a structural hash — this is what lets two fields that
// share a record type iterate independently (spec section 4.7/9).
type node struct {
	schema avro.Schema
	field  *avro.Field // non-nil when this node is a record field
}

func rootNode(s avro.Schema) node {
	return node{schema: s}
}

func fieldNode(f *avro.Field) node {
	return node{schema: f.Type(), field: f}
}

// key returns the stable identity used by the generator's caches. Fields
// key on the *avro.Field pointer (directives live on the field, not its
// type); everything else keys on the avro.Schema interface value itself,
// which is backed by a pointer to a concrete schema struct and therefore
// compares by reference, not by structural equality.
func (n node) key() any {
	if n.field != nil {
		return n.field
	}
	return n.schema
}

// propSource returns whichever of (field, schema) actually carries user
// properties for this node.
func (n node) propSource() avro.PropertySchema {
	if n.field != nil {
		return n.field
	}
	if ps, ok := n.schema.(avro.PropertySchema); ok {
		return ps
	}
	return nil
}

// rawDirectives returns the decoded arg.properties map for this node, or
// nil if the node carries no directive annotation at all.
func (n node) rawDirectives() map[string]any {
	src := n.propSource()
	if src == nil {
		return nil
	}
	v := src.Prop(argPropertiesKey)
	if v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// path returns a single diagnostic path segment for this node, used in
// GenerationError. It is best-effort: named schemas use their name, record
// fields use their field name, everything else falls back to the schema's
// avro type.
func (n node) path() string {
	if n.field != nil {
		return n.field.Name()
	}
	if named, ok := n.schema.(avro.NamedSchema); ok {
		return named.Name()
	}
	return string(n.schema.Type())
}
