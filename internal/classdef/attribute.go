package classdef

import (
	"fmt"

	"github.com/agentic-research/topoc/api"
	"github.com/agentic-research/topoc/internal/conftree"
)

// parseAttributes builds one attribute per child of cfg and appends them to
// the class in declaration order. Order matters: arguments bind positionally
// at instantiation time. Children without an identifier are skipped.
func parseAttributes(cfg *conftree.Node, class *api.Class, kind api.AttributeKind) error {
	for _, n := range cfg.Children() {
		name, ok := n.ID()
		if !ok {
			continue
		}

		attr := &api.Attribute{
			Name:       name,
			Kind:       kind,
			Constraint: api.DefaultConstraint(),
		}
		if kind == api.KindArgument {
			class.NumArgs++
		}

		if err := parseAttribute(n, attr); err != nil {
			return err
		}

		class.Attributes = append(class.Attributes, attr)
	}
	return nil
}

// parseAttribute fills one attribute from its declaration section.
func parseAttribute(cfg *conftree.Node, attr *api.Attribute) error {
	for _, n := range cfg.Children() {
		id, ok := n.ID()
		if !ok {
			continue
		}

		switch id {
		case "constraints":
			if err := parseConstraints(n, attr); err != nil {
				return err
			}
		case "token_ref":
			// Stored verbatim; the "section.type" shape is resolved
			// against the vendor token tables by the instantiation
			// stage, not validated here.
			s, err := n.StringValue()
			if err != nil {
				return fmt.Errorf("token_ref for attribute %q: %w", attr.Name, ErrInvalidReference)
			}
			attr.TokenRef = s
		}
	}
	return nil
}
