package classdef

import (
	"fmt"

	"github.com/agentic-research/topoc/api"
	"github.com/agentic-research/topoc/internal/conftree"
)

// applyCategories walks a class's attributes section and ORs category flags
// onto named attributes. The walk is a small state machine: a category
// keyword makes that category active for its own name list and for every
// following non-keyword list, until another keyword replaces it. A unique
// entry names a single attribute directly and leaves the active category
// untouched. Name lists seen before any keyword are skipped. Attribute names
// that match nothing are skipped, never errors; the section may reference
// attributes a config variant leaves out.
func applyCategories(cfg *conftree.Node, class *api.Class) error {
	var active api.CategoryMask

	for _, n := range cfg.Children() {
		id, ok := n.ID()
		if !ok {
			return fmt.Errorf("category entry for class %q: %w", class.Name, ErrMissingIdentifier)
		}

		switch id {
		case "mandatory":
			active = api.MaskMandatory
		case "immutable":
			active = api.MaskImmutable
		case "deprecated":
			active = api.MaskDeprecated
		case "automatic":
			active = api.MaskAutomatic
		case "unique":
			s, err := n.StringValue()
			if err != nil {
				return fmt.Errorf("unique attribute for class %q: %w", class.Name, ErrInvalidReference)
			}
			if attr := class.Attribute(s); attr != nil {
				attr.Constraint.Mask |= api.MaskUnique
			}
			continue
		default:
			if active == 0 {
				continue
			}
		}

		if err := applyCategory(n, class, active); err != nil {
			return err
		}
	}
	return nil
}

// applyCategory ORs one category flag onto every attribute named in the list.
func applyCategory(cfg *conftree.Node, class *api.Class, category api.CategoryMask) error {
	for _, n := range cfg.Children() {
		name, err := n.StringValue()
		if err != nil {
			return fmt.Errorf("category name list for class %q: %w", class.Name, ErrInvalidReference)
		}
		if attr := class.Attribute(name); attr != nil {
			attr.Constraint.Mask |= category
		}
	}
	return nil
}
