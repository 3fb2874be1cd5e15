package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/simp-lee/shopadmin/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testInput is used to generate real validator.ValidationErrors.
type testInput struct {
	Name string `json:"name" validate:"required"`
	Kind string `json:"kind" validate:"required,oneof=page api"`
}

func newResponseTestContext(method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return v
}

func TestSuccess(t *testing.T) {
	c, w := newResponseTestContext(http.MethodGet, "/", "")

	Success(c, gin.H{"name": "Products"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decode[Response](t, w)
	if resp.Message != "success" {
		t.Errorf("expected message success, got %q", resp.Message)
	}
	data, ok := resp.Data.(map[string]any)
	if !ok || data["name"] != "Products" {
		t.Errorf("unexpected data %#v", resp.Data)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", domain.NewAppError(domain.CodeNotFound, "route not found", nil), http.StatusNotFound, "route not found"},
		{"validation", domain.NewAppError(domain.CodeValidation, "validation error", nil), http.StatusBadRequest, "validation error"},
		{"upstream", domain.NewAppError(domain.CodeUpstream, "fetch products failed", errors.New("eof")), http.StatusBadGateway, "fetch products failed"},
		{"generic error hides details", errors.New("dial tcp 10.0.0.1:443"), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newResponseTestContext(http.MethodGet, "/", "")

			Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := decode[Response](t, w)
			if resp.Code != tt.wantStatus || resp.Message != tt.wantMsg {
				t.Errorf("got %d %q, want %d %q", resp.Code, resp.Message, tt.wantStatus, tt.wantMsg)
			}
			if resp.Data != nil {
				t.Errorf("expected nil data, got %v", resp.Data)
			}
		})
	}
}

func TestValidationError_WithValidatorErrors(t *testing.T) {
	c, w := newResponseTestContext(http.MethodGet, "/", "")

	err := validator.New().Struct(testInput{Kind: "other"})
	validationErrorWithType(c, err, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	resp := decode[ValidationErrorResponse](t, w)
	if resp.Message != "validation error" {
		t.Errorf("expected message %q, got %q", "validation error", resp.Message)
	}
	// Without obj, field names fall back to the lowercased struct field.
	if got := resp.Errors["name"]; got != "This field is required" {
		t.Errorf("name error = %q", got)
	}
	if got := resp.Errors["kind"]; got != "Must be one of: page api" {
		t.Errorf("kind error = %q", got)
	}
}

func TestValidationErrorWithType_NonValidationError(t *testing.T) {
	c, w := newResponseTestContext(http.MethodGet, "/", "")

	validationErrorWithType(c, errors.New("bad json"), nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if resp := decode[Response](t, w); resp.Message != "bad request" {
		t.Errorf("expected message %q, got %q", "bad request", resp.Message)
	}
}

type resolveQuery struct {
	RouteName string `form:"name" binding:"required,max=64"`
}

func TestBindAndValidate_Query(t *testing.T) {
	t.Run("missing field uses form tag name", func(t *testing.T) {
		c, w := newResponseTestContext(http.MethodGet, "/resolve", "")

		var q resolveQuery
		if BindAndValidate(c, &q) {
			t.Fatal("expected BindAndValidate to fail")
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		resp := decode[ValidationErrorResponse](t, w)
		if got := resp.Errors["name"]; got != "This field is required" {
			t.Errorf("errors = %v", resp.Errors)
		}
	})

	t.Run("too long", func(t *testing.T) {
		c, w := newResponseTestContext(http.MethodGet, "/resolve?name="+strings.Repeat("x", 65), "")

		var q resolveQuery
		if BindAndValidate(c, &q) {
			t.Fatal("expected BindAndValidate to fail")
		}
		resp := decode[ValidationErrorResponse](t, w)
		if got := resp.Errors["name"]; got != "Must be at most 64 characters" {
			t.Errorf("errors = %v", resp.Errors)
		}
	})

	t.Run("valid", func(t *testing.T) {
		c, w := newResponseTestContext(http.MethodGet, "/resolve?name=Products", "")

		var q resolveQuery
		if !BindAndValidate(c, &q) {
			t.Fatalf("expected BindAndValidate to succeed, body: %s", w.Body.String())
		}
		if q.RouteName != "Products" {
			t.Errorf("RouteName = %q", q.RouteName)
		}
	})
}

func TestBindAndValidate_InvalidJSON(t *testing.T) {
	c, w := newResponseTestContext(http.MethodPost, "/", `{"invalid json`)

	type bindInput struct {
		Name string `json:"name" binding:"required"`
	}
	var input bindInput
	if BindAndValidate(c, &input) {
		t.Fatal("expected BindAndValidate to return false for invalid JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if resp := decode[Response](t, w); resp.Message != "bad request" {
		t.Errorf("expected message %q, got %q", "bad request", resp.Message)
	}
}
