package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	cause := fmt.Errorf("underlying cause")

	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "With cause",
			err:  InvalidInput("op", cause, "bad input"),
			want: "bad input: underlying cause",
		},
		{
			name: "Without cause",
			err:  Internal("op", nil, "broken"),
			want: "broken",
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

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("cause")
	err := Internal("op", cause, "wrapped")

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestConstructorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"InvalidInput", InvalidInput("op", nil, "m"), http.StatusBadRequest},
		{"Internal", Internal("op", nil, "m"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.want {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.want)
			}
		})
	}
}

func TestFrom(t *testing.T) {
	t.Run("Passes AppError through", func(t *testing.T) {
		orig := InvalidInput("op", nil, "bad input")
		got := From("outer", orig)
		if got != orig {
			t.Errorf("expected the original *AppError, got %+v", got)
		}
	})

	t.Run("Finds wrapped AppError", func(t *testing.T) {
		orig := InvalidInput("op", nil, "bad input")
		got := From("outer", fmt.Errorf("context: %w", orig))
		if got != orig {
			t.Errorf("expected the wrapped *AppError, got %+v", got)
		}
	})

	t.Run("Wraps unknown errors as Internal", func(t *testing.T) {
		cause := fmt.Errorf("boom")
		got := From("outer", cause)
		if got.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", got.Code)
		}
		if got.Message != "Internal server error" {
			t.Errorf("unexpected message %q", got.Message)
		}
		if !stderrors.Is(got, cause) {
			t.Error("expected the cause to be preserved")
		}
	})
}
