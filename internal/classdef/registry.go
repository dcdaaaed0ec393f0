// Package classdef implements the class-definition pass of the topology
// compiler: it walks an already-parsed configuration tree and populates a
// Registry with classes, their arguments and attributes, and the constraints
// attached to them. The instantiation stage consumes the populated registry.
package classdef

import (
	"fmt"

	"github.com/agentic-research/topoc/api"
	"github.com/agentic-research/topoc/internal/conftree"
)

// ClassType tags the section a class was defined under. Only the base type
// exists today; the tag is carried so dispatch can branch on it later.
type ClassType int

// ClassTypeBase is the ordinary widget/component class type.
const ClassTypeBase ClassType = iota

// Registry is the session-scoped store of defined classes. It is built by a
// single-threaded definition pass and must be published to readers only after
// the pass completes; there is no internal synchronization.
type Registry struct {
	classes []*api.Class
}

// NewRegistry returns an empty registry for one preprocessing session.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lookup returns the class registered under name, or nil.
func (r *Registry) Lookup(name string) *api.Class {
	for _, class := range r.classes {
		if class.Name == name {
			return class
		}
	}
	return nil
}

// Classes returns all registered classes in definition order.
func (r *Registry) Classes() []*api.Class {
	return r.classes
}

// DefineClasses defines every child of cfg as a base-type class. A child
// without an identifier is a hard error. The first failing child aborts the
// pass; classes registered before the failure stay registered.
func (r *Registry) DefineClasses(cfg *conftree.Node) error {
	for _, n := range cfg.Children() {
		id, ok := n.ID()
		if !ok {
			return fmt.Errorf("class name: %w", ErrMissingIdentifier)
		}
		if err := r.defineClass(n, ClassTypeBase); err != nil {
			return fmt.Errorf("class %q: %w", id, err)
		}
	}
	return nil
}
