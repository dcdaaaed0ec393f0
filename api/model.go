package api

import "math"

// AttributeKind distinguishes positional arguments from named attributes.
type AttributeKind int

const (
	// KindAttribute is a named field bound by name at instantiation time.
	KindAttribute AttributeKind = iota
	// KindArgument is a positional field; declaration order is binding order.
	KindArgument
)

func (k AttributeKind) String() string {
	if k == KindArgument {
		return "argument"
	}
	return "attribute"
}

// CategoryMask is a bitwise OR of usage-rule flags for one attribute.
// The flags combine freely; none is exclusive of another.
type CategoryMask uint32

const (
	MaskMandatory CategoryMask = 1 << iota
	MaskImmutable
	MaskDeprecated
	MaskAutomatic
	MaskUnique
)

// Has reports whether every flag in m2 is set in m.
func (m CategoryMask) Has(m2 CategoryMask) bool {
	return m&m2 == m2
}

const (
	// MinValue and MaxValue are the default constraint bounds until a
	// min/max constraint narrows them.
	MinValue = math.MinInt64
	MaxValue = math.MaxInt64

	// ValueUnresolved marks a ValueRef whose tuple value has not been
	// supplied yet. Only a matching tuple_values entry ever replaces it.
	ValueUnresolved = math.MinInt64
)

// ValueRef is one symbolic-to-integer mapping entry within a constraint's
// enumerated value set. String keeps the human-readable literal even after
// the value resolves.
type ValueRef struct {
	ID     string `json:"id"`
	String string `json:"string"`
	Value  int64  `json:"value"`
}

// Resolved reports whether a tuple value has been supplied for this entry.
func (r *ValueRef) Resolved() bool {
	return r.Value != ValueUnresolved
}

// Constraint holds the validity rules attached to one attribute: a numeric
// range, category flags, and the enumerated valid values in declaration order.
type Constraint struct {
	Min       int64        `json:"min"`
	Max       int64        `json:"max"`
	Mask      CategoryMask `json:"mask"`
	ValueRefs []*ValueRef  `json:"value_refs,omitempty"`
}

// DefaultConstraint returns a constraint with the full signed range, no
// category flags, and no value references.
func DefaultConstraint() Constraint {
	return Constraint{Min: MinValue, Max: MaxValue}
}

// ValueRef returns the first value reference with the given id, or nil.
func (c *Constraint) ValueRef(id string) *ValueRef {
	for _, ref := range c.ValueRefs {
		if ref.ID == id {
			return ref
		}
	}
	return nil
}

// Attribute is a named field of a class. TokenRef names the vendor token
// section and type ("section.type") used by the instantiation stage to build
// tuple values; it is stored verbatim and never validated here.
type Attribute struct {
	Name       string        `json:"name"`
	Kind       AttributeKind `json:"kind"`
	TokenRef   string        `json:"token_ref,omitempty"`
	Constraint Constraint    `json:"constraint"`
}

// Class is a named, reusable template describing a set of arguments and
// attributes with their constraints. Attributes holds arguments and
// attributes interleaved in declaration order; NumArgs counts the entries of
// kind KindArgument.
type Class struct {
	Name       string       `json:"name"`
	Attributes []*Attribute `json:"attributes,omitempty"`
	NumArgs    int          `json:"num_args"`
}

// Attribute returns the first attribute declared with the given name, or nil.
// Names are not guaranteed unique within a class; the first declaration wins.
func (c *Class) Attribute(name string) *Attribute {
	for _, attr := range c.Attributes {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}
