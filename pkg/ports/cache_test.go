package ports

import "testing"

func TestCacheKey(t *testing.T) {
	a := CacheKey(`<popover content="Hi"></popover>`)
	b := CacheKey(`<popover content="Hi"></popover>`)
	c := CacheKey(`<popover content="Bye"></popover>`)

	if a != b {
		t.Errorf("expected equal inputs to share a key, got %q and %q", a, b)
	}
	if a == c {
		t.Error("expected different inputs to produce different keys")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
