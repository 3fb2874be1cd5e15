package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/shopadmin/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAPI(f domain.ProductFetcher) *gin.Engine {
	r := gin.New()
	NewModule(NewHandler(f)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestHandler_List_PassThrough(t *testing.T) {
	body := `[{"id":1,"name":"A"}]`
	r := setupAPI(&fakeFetcher{body: json.RawMessage(body)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != body {
		t.Errorf("body = %s, want %s", got, body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHandler_List_UpstreamFailure(t *testing.T) {
	r := setupAPI(&fakeFetcher{err: domain.NewAppError(domain.CodeUpstream, "fetch products failed", errors.New("boom"))})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["message"] != "fetch products failed" {
		t.Errorf("message = %v", resp["message"])
	}
	if resp["code"] != float64(http.StatusBadGateway) {
		t.Errorf("code = %v", resp["code"])
	}
}

func TestNewModule_NilHandlerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewModule(nil)
}
