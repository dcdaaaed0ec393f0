// Package session drives one preprocessing run: it loads a topology
// configuration document, hands every Class section to the definition pass,
// and owns the registry for the session's lifetime. One session is one run;
// independent runs get independent sessions and never share state.
package session

import (
	"fmt"
	"io"

	"github.com/agentic-research/topoc/internal/classdef"
	"github.com/agentic-research/topoc/internal/conftree"
)

// Session owns the class registry and the diagnostics sink for one
// preprocessing run. A nil sink discards debug output.
type Session struct {
	registry *classdef.Registry
	debug    io.Writer
}

// New returns a session writing debug diagnostics to debug.
func New(debug io.Writer) *Session {
	return &Session{
		registry: classdef.NewRegistry(),
		debug:    debug,
	}
}

// Registry returns the session's class registry. Readers should consume it
// only after Run returns; the definition pass mutates it without locking.
func (s *Session) Registry() *classdef.Registry {
	return s.registry
}

// Debugf writes one formatted diagnostic line to the session's sink.
func (s *Session) Debugf(format string, args ...any) {
	if s.debug == nil {
		return
	}
	fmt.Fprintf(s.debug, format+"\n", args...)
}

// Run parses doc and defines every class it declares. Top-level sections
// other than Class belong to later compiler stages and are skipped. The
// first structural error aborts the run; classes fully defined before the
// failure remain in the registry.
func (s *Session) Run(doc []byte) error {
	root, err := conftree.Load(doc)
	if err != nil {
		return err
	}

	for _, n := range root.Children() {
		id, ok := n.ID()
		if !ok || id != "Class" {
			continue
		}
		if n.Kind() != conftree.Section {
			return fmt.Errorf("top-level Class section: %w", conftree.ErrNotSection)
		}

		// Class groups definitions by class type (Base today); each
		// group's children are the class definitions themselves.
		for _, group := range n.Children() {
			if err := s.registry.DefineClasses(group); err != nil {
				return err
			}
		}
	}

	for _, class := range s.registry.Classes() {
		s.Debugf("created class: %q (%d args, %d attributes)",
			class.Name, class.NumArgs, len(class.Attributes))
	}
	return nil
}
