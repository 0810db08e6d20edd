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
			name: "without cause",
			err:  New(ErrCodeInvalidInput, "node count must be positive, got %d", -1),
			want: "INVALID_INPUT: node count must be positive, got -1",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeIOFailure, stderrors.New("permission denied"), "write %s", "/tmp/out.html"),
			want: "IO_FAILURE: write /tmp/out.html: permission denied",
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

func TestIs(t *testing.T) {
	base := New(ErrCodeInvalidInput, "bad matrix")
	wrapped := fmt.Errorf("load manifest: %w", base)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct match", base, ErrCodeInvalidInput, true},
		{"wrapped match", wrapped, ErrCodeInvalidInput, true},
		{"code mismatch", base, ErrCodeIOFailure, false},
		{"plain error", stderrors.New("boom"), ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeIOFailure, cause, "write document")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if got := GetCode(err); got != ErrCodeIOFailure {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeIOFailure)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"structured", New(ErrCodeInvalidInput, "matrix is not square"), "matrix is not square"},
		{"plain", stderrors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
