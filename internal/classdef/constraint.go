package classdef

import (
	"fmt"
	"strconv"

	"github.com/agentic-research/topoc/api"
	"github.com/agentic-research/topoc/internal/conftree"
)

// parseConstraints fills the attribute's constraint from its constraints
// section: min/max bounds, the enumerated valid values, and the tuple values
// that translate them to integers. Unknown keys are ignored.
func parseConstraints(cfg *conftree.Node, attr *api.Attribute) error {
	for _, n := range cfg.Children() {
		id, ok := n.ID()
		if !ok {
			continue
		}

		switch id {
		case "min":
			v, err := n.IntValue()
			if err != nil {
				return fmt.Errorf("min constraint for attribute %q: %w", attr.Name, ErrInvalidInteger)
			}
			attr.Constraint.Min = v
		case "max":
			v, err := n.IntValue()
			if err != nil {
				return fmt.Errorf("max constraint for attribute %q: %w", attr.Name, ErrInvalidInteger)
			}
			attr.Constraint.Max = v
		case "valid_values":
			if err := parseValidValues(n, attr); err != nil {
				return err
			}
		case "tuple_values":
			if err := parseTupleValues(n, attr); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseValidValues appends one ValueRef per entry, in declaration order.
// Values stay unresolved until a matching tuple_values entry supplies an
// integer. A string value is kept as the human-readable literal; an integer
// value is kept as its decimal rendering.
func parseValidValues(cfg *conftree.Node, attr *api.Attribute) error {
	for _, n := range cfg.Children() {
		id, ok := n.ID()
		if !ok {
			return fmt.Errorf("valid value for attribute %q: %w", attr.Name, ErrMissingIdentifier)
		}

		ref := &api.ValueRef{ID: id, Value: api.ValueUnresolved}
		if s, err := n.StringValue(); err == nil {
			ref.String = s
		} else if v, err := n.IntValue(); err == nil {
			ref.String = strconv.FormatInt(v, 10)
		} else {
			return fmt.Errorf("valid value %q for attribute %q: %w", id, attr.Name, ErrInvalidReference)
		}

		attr.Constraint.ValueRefs = append(attr.Constraint.ValueRefs, ref)
	}
	return nil
}

// parseTupleValues resolves valid values to integers. A string scalar is
// accepted only when it starts with an ASCII decimal digit and is read the
// way atoi reads it: the leading digit run, base 10. A leading sign fails,
// so negative tuple values must be native integers. An entry whose id
// matches no valid value is dropped without error.
func parseTupleValues(cfg *conftree.Node, attr *api.Attribute) error {
	for _, n := range cfg.Children() {
		id, ok := n.ID()
		if !ok {
			return fmt.Errorf("tuple value for attribute %q: %w", attr.Name, ErrMissingIdentifier)
		}

		var value int64
		if s, err := n.StringValue(); err == nil {
			if len(s) == 0 || s[0] < '0' || s[0] > '9' {
				return fmt.Errorf("tuple value %q for attribute %q: %w", id, attr.Name, ErrInvalidReference)
			}
			value, err = strconv.ParseInt(leadingDigits(s), 10, 64)
			if err != nil {
				return fmt.Errorf("tuple value %q for attribute %q: %w", id, attr.Name, ErrInvalidReference)
			}
		} else if v, err := n.IntValue(); err == nil {
			value = v
		} else {
			return fmt.Errorf("tuple value %q for attribute %q: %w", id, attr.Name, ErrInvalidReference)
		}

		if ref := attr.Constraint.ValueRef(id); ref != nil {
			ref.Value = value
		}
	}
	return nil
}

// leadingDigits returns the run of ASCII digits at the start of s.
func leadingDigits(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s[:i]
		}
	}
	return s
}
