package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeStore, cause, "failed to load profile")

	if err.Code != ErrCodeStore {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeStore)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidPosition, "test"),
			code:     ErrCodeInvalidPosition,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidPosition, "test"),
			code:     ErrCodeProfileNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeStore, New(ErrCodeInvalidPosition, "inner"), "outer"),
			code:     ErrCodeStore,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidPosition,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidIndex, "test")); got != ErrCodeInvalidIndex {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidIndex)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "bad value")); got != "bad value" {
		t.Errorf("UserMessage() = %q, want %q", got, "bad value")
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain error")
	}
}
