package classdef

import (
	"fmt"

	"github.com/agentic-research/topoc/api"
	"github.com/agentic-research/topoc/internal/conftree"
)

// defineClass parses one class definition section. Redefinition of an
// existing name is a no-op: the first definition wins and the new body is not
// parsed at all. The class is registered before its body is walked, so a
// failure partway through leaves the name registered with the attributes
// parsed up to that point.
func (r *Registry) defineClass(cfg *conftree.Node, typ ClassType) error {
	_ = typ // single base type today

	name, ok := cfg.ID()
	if !ok {
		return ErrMissingIdentifier
	}

	if r.Lookup(name) != nil {
		return nil
	}

	class := &api.Class{Name: name}
	r.classes = append(r.classes, class)

	for _, n := range cfg.Children() {
		id, ok := n.ID()
		if !ok {
			continue
		}

		switch id {
		case "DefineArgument":
			if err := parseAttributes(n, class, api.KindArgument); err != nil {
				return fmt.Errorf("arguments: %w", err)
			}
		case "DefineAttribute":
			if err := parseAttributes(n, class, api.KindAttribute); err != nil {
				return fmt.Errorf("attributes: %w", err)
			}
		case "attributes":
			if err := applyCategories(n, class); err != nil {
				return fmt.Errorf("attribute categories: %w", err)
			}
		}
		// Other sections belong to later stages and are ignored here.
	}

	return nil
}
