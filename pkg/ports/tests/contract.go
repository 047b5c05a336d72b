package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/espalier-ui/espalier/pkg/ports"
)

// TransformCacheContractTest is a reusable test suite that verifies an
// adapter complies with ports.TransformCache.
func TransformCacheContractTest(t *testing.T, cache ports.TransformCache) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, "absent-key")
		if !errors.Is(err, ports.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss for absent key, got %v", err)
		}
	})

	t.Run("Set_Then_Get", func(t *testing.T) {
		if err := cache.Set(ctx, "doc-1", "<span>out</span>"); err != nil {
			t.Fatalf("unexpected error setting entry: %v", err)
		}
		out, err := cache.Get(ctx, "doc-1")
		if err != nil {
			t.Fatalf("unexpected error getting entry: %v", err)
		}
		if out != "<span>out</span>" {
			t.Errorf("output mismatch. got %q, want %q", out, "<span>out</span>")
		}
	})

	t.Run("Set_Overwrites", func(t *testing.T) {
		if err := cache.Set(ctx, "doc-2", "first"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Set(ctx, "doc-2", "second"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := cache.Get(ctx, "doc-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "second" {
			t.Errorf("expected overwrite, got %q", out)
		}
	})
}
