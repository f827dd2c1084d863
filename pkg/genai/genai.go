// Package genai defines the boundary to the external generative
// collaborator that synthesizes whole diagrams from natural-language
// descriptions or raw event-log text.
//
// The core treats generation as "replace the current diagram with the
// result, or no-op on failure": prompt assembly and response parsing live
// entirely behind the [Generator] interface.
package genai

import (
	"context"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/errors"
)

// Notation selects which diagram family to synthesize.
type Notation string

const (
	NotationFlow        Notation = "flow"
	NotationValueStream Notation = "value-stream"
	NotationCase        Notation = "case"
)

// ValidNotation reports whether n names a synthesizable notation.
func ValidNotation(n Notation) bool {
	switch n {
	case NotationFlow, NotationValueStream, NotationCase:
		return true
	default:
		return false
	}
}

// Request describes one generation call. Description and EventLog are
// alternatives; when both are set the collaborator may use either.
type Request struct {
	Description string
	EventLog    string
	Notation    Notation
}

// Generator synthesizes a diagram. A nil diagram with a nil error is a
// valid "could not produce anything" outcome; the caller keeps its prior
// diagram either way.
type Generator interface {
	Generate(ctx context.Context, req Request) (*diagram.Diagram, error)
}

// Unavailable is the Generator used when no collaborator is configured.
// Every call fails with a GENERATION_FAILED error, which callers treat as
// a no-op on the current diagram.
type Unavailable struct{}

// Generate always fails.
func (Unavailable) Generate(ctx context.Context, req Request) (*diagram.Diagram, error) {
	return nil, errors.New(errors.ErrCodeGenerationFailed, "no generator configured")
}

// Ensure Unavailable implements Generator.
var _ Generator = Unavailable{}
