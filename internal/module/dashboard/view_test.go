package dashboard

import (
	"context"
	"testing"
)

func TestNewView(t *testing.T) {
	v := NewView()
	if got := v.Template(); got != "dashboard/index.html" {
		t.Errorf("Template() = %q, want dashboard/index.html", got)
	}

	data, err := v.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Load() = %v, want empty", data)
	}
}
