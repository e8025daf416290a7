package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-transform-demo/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-transform-demo/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrNotFound maps to 404",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "ErrValidation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"size": "must be an integer"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrTimeout maps to 504",
			err:        domain.ErrTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantTitle:  "Gateway Timeout",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
		{
			name:       "wrapped validation error preserves mapping",
			err:        fmt.Errorf("benchmark: %w", &domain.ValidationError{Fields: map[string]string{"size": "x"}}),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/benchmark?size=x", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/compose?input=a", nil)
	err := domain.ErrNotFound

	got := dto.NewErrorResponse(r, err)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/api/v1/compose?input=a" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/api/v1/compose?input=a")
	}
	if got.Detail != err.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, err.Error())
	}
}

func TestNewErrorResponse_InternalErrorHidesDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/benchmark", nil)
	got := dto.NewErrorResponse(r, errors.New("summing with pipeline: secret internals"))

	if got.Detail != "" {
		t.Errorf("Detail = %q, want empty for 500", got.Detail)
	}
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"size":      "must be an integer",
		"min_price": "must be a finite, non-negative number",
		"input":     "is required",
	}}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	got := dto.NewErrorResponse(r, verr)

	if len(got.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(got.Errors))
	}

	for i := 1; i < len(got.Errors); i++ {
		if got.Errors[i-1].Location >= got.Errors[i].Location {
			t.Errorf("Errors not sorted: %q >= %q", got.Errors[i-1].Location, got.Errors[i].Location)
		}
	}

	for _, detail := range got.Errors {
		if !strings.HasPrefix(detail.Location, "query.") {
			t.Errorf("Location %q does not start with %q", detail.Location, "query.")
		}
	}
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/compose", nil)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{
		"input": domain.MsgRequired,
	}})

	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Location != "query.input" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "query.input")
	}
	if resp.Errors[0].Message != "is required" {
		t.Errorf("Errors[0].Message = %q, want %q", resp.Errors[0].Message, "is required")
	}
}
