package genai

import (
	"context"
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/errors"
)

func TestValidNotation(t *testing.T) {
	tests := []struct {
		notation Notation
		want     bool
	}{
		{NotationFlow, true},
		{NotationValueStream, true},
		{NotationCase, true},
		{Notation("gantt"), false},
		{Notation(""), false},
	}

	for _, tt := range tests {
		if got := ValidNotation(tt.notation); got != tt.want {
			t.Errorf("ValidNotation(%q) = %v, want %v", tt.notation, got, tt.want)
		}
	}
}

func TestUnavailableAlwaysFails(t *testing.T) {
	d, err := Unavailable{}.Generate(context.Background(), Request{
		Description: "a packing line",
		Notation:    NotationFlow,
	})
	if d != nil {
		t.Error("Unavailable should never return a diagram")
	}
	if !errors.Is(err, errors.ErrCodeGenerationFailed) {
		t.Errorf("err = %v, want GENERATION_FAILED", err)
	}
}
