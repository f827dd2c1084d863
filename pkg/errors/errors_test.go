package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidNotation, "unknown notation: %s", "vsm2"),
			want: "INVALID_NOTATION: unknown notation: vsm2",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeStore, fmt.Errorf("connection refused"), "saving snapshot"),
			want: "STORE_ERROR: saving snapshot: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeParseFailed, "bad wire document")

	if !Is(err, ErrCodeParseFailed) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeStore) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeParseFailed) {
		t.Error("Is should be false for non-structured errors")
	}
	if got := GetCode(err); got != ErrCodeParseFailed {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeParseFailed)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUnwrapChain(t *testing.T) {
	base := fmt.Errorf("io failure")
	wrapped := Wrap(ErrCodeStore, base, "loading snapshot")

	if !stderrors.Is(wrapped, base) {
		t.Error("errors.Is should find the cause through Unwrap")
	}

	// Wrapping a structured error preserves the innermost code lookup.
	outer := fmt.Errorf("request failed: %w", wrapped)
	if GetCode(outer) != ErrCodeStore {
		t.Error("GetCode should unwrap through plain wrappers")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeNotFound, "no such diagram")); got != "no such diagram" {
		t.Errorf("UserMessage = %q, want message without code", got)
	}
	if got := UserMessage(fmt.Errorf("boom")); got != "boom" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
