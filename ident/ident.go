// Package ident generates the stable unique identifiers widgets use for
// accessibility cross-references. The generator is an injected collaborator
// so tests can supply deterministic tokens.
package ident

import (
	"fmt"
	"sync/atomic"
)

// Generator produces globally unique stable tokens. Callers memoize the
// tokens they draw for the lifetime of the widget that owns them.
type Generator interface {
	Next(kind string) string
}

type sequence struct {
	n atomic.Uint64
}

func (s *sequence) Next(kind string) string {
	return fmt.Sprintf("%s-%d", kind, s.n.Add(1))
}

// NewSequence returns a counter-backed generator.
func NewSequence() Generator {
	return &sequence{}
}

var global = NewSequence()

// Default returns the process-wide generator.
func Default() Generator {
	return global
}
