package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsHTMX(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"TRUE", true},
		{"false", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/products", nil)
			if tt.value != "" {
				c.Request.Header.Set(HeaderHXRequest, tt.value)
			}
			if got := IsHTMX(c); got != tt.want {
				t.Errorf("IsHTMX(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestWantsFragment(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   bool
	}{
		{"full load", nil, false},
		{"htmx navigation", map[string]string{HeaderHXRequest: "true"}, true},
		{"history restore", map[string]string{HeaderHXRequest: "true", HeaderHXHistoryRestore: "true"}, false},
		{"restore header alone", map[string]string{HeaderHXHistoryRestore: "true"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/carts", nil)
			for k, v := range tt.header {
				c.Request.Header.Set(k, v)
			}
			if got := WantsFragment(c); got != tt.want {
				t.Errorf("WantsFragment = %v, want %v", got, tt.want)
			}
			if got := IsHistoryRestore(c); got != (tt.header[HeaderHXHistoryRestore] == "true") {
				t.Errorf("IsHistoryRestore = %v", got)
			}
		})
	}
}
