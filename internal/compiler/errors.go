// Package compiler expands template files into final artifact text. It
// parses each template into a tree of literal, conditional and include
// nodes, evaluates IF/UNLESS blocks against the effective configuration,
// and inlines referenced fragments depth-first.
package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for compilation failures.
var (
	// ErrMalformedTemplate indicates mismatched or unclosed block markers.
	ErrMalformedTemplate = errors.New("compiler: malformed template")

	// ErrCyclicInclude indicates a fragment that transitively includes itself.
	ErrCyclicInclude = errors.New("compiler: cyclic include")
)

// MalformedTemplateError reports mismatched nesting in one template,
// identifying the file and the unmatched marker.
type MalformedTemplateError struct {
	File   string
	Marker string
	Reason string
}

// Error implements the error interface.
func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("compiler: malformed template %q: %s: marker %q", e.File, e.Reason, e.Marker)
}

// Unwrap returns ErrMalformedTemplate for errors.Is support.
func (e *MalformedTemplateError) Unwrap() error {
	return ErrMalformedTemplate
}

// CyclicIncludeError reports an include cycle, naming the entry path and
// the chain of resolved paths that closes the loop.
type CyclicIncludeError struct {
	Entry string
	Chain []string
}

// Error implements the error interface.
func (e *CyclicIncludeError) Error() string {
	return fmt.Sprintf("compiler: cyclic include entering at %q: %s",
		e.Entry, strings.Join(e.Chain, " -> "))
}

// Unwrap returns ErrCyclicInclude for errors.Is support.
func (e *CyclicIncludeError) Unwrap() error {
	return ErrCyclicInclude
}
