package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared/failure"
)

var errCause = errors.New("room is taken")

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		wrap    func(error) error
		code    int
		input   error
		wantNil bool
	}{
		{name: "bad request", wrap: failure.BadRequest, code: http.StatusBadRequest, input: errCause},
		{name: "not found", wrap: failure.NotFound, code: http.StatusNotFound, input: errCause},
		{name: "conflict", wrap: failure.Conflict, code: http.StatusConflict, input: errCause},
		{name: "internal", wrap: failure.InternalError, code: http.StatusInternalServerError, input: errCause},
		{name: "nil error", wrap: failure.BadRequest, input: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.wrap(tt.input)

			if tt.wantNil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}

			if f.Message != errCause.Error() {
				t.Errorf("expected message %q, got %q", errCause.Error(), f.Message)
			}

			if !errors.Is(result, errCause) {
				t.Error("expected wrapped failure to match its cause")
			}
		})
	}
}

func TestBadRequestFromString(t *testing.T) {
	result := failure.BadRequestFromString("custom bad request")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Unwrap() != nil {
		t.Errorf("expected no cause, got %v", f.Unwrap())
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "failure wrapped by fmt",
			input:    fmt.Errorf("outer: %w", failure.Conflict(errCause)),
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
