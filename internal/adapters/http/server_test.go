package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	htmladapter "github.com/espalier-ui/espalier/internal/adapters/html"
	httpadapter "github.com/espalier-ui/espalier/internal/adapters/http"
	"github.com/espalier-ui/espalier/pkg/ports"
	"github.com/espalier-ui/espalier/pkg/transform"
)

type memCache struct {
	entries map[string]string
	gets    int
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.gets++
	if out, ok := c.entries[key]; ok {
		return out, nil
	}
	return "", ports.ErrCacheMiss
}

func (c *memCache) Set(_ context.Context, key, output string) error {
	c.entries[key] = output
	return nil
}

func newTestServer(t *testing.T, opts ...httpadapter.Option) *httptest.Server {
	t.Helper()
	codec := htmladapter.NewCodec()
	srv := httpadapter.NewServer(codec, codec, transform.DefaultConfig(), opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestTransform_Popover(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/transform", `{"markup":"<popover content=\"Hi\">anchor</popover>"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body httpadapter.TransformResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Contains(t, body.Markup, `<span `)
	assert.Contains(t, body.Markup, `v-b-popover.hover.top.html="mbComponentContent"`)
	assert.Contains(t, body.Markup, `data-mb-component-type="popover"`)
	assert.Equal(t, 1, body.Counts["popover"])
	assert.Empty(t, body.Warnings)
}

func TestTransform_ModalDeprecationWarnings(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/transform", `{"markup":"<modal title=\"Hello\"></modal>"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body httpadapter.TransformResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Warnings, 1)
	assert.Equal(t, "title", body.Warnings[0].Old)
	assert.Equal(t, "header", body.Warnings[0].New)
	assert.Contains(t, body.Markup, `<b-modal `)
}

func TestLint_ReportsWithoutMarkup(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/lint", `{"markup":"<modal title=\"Hello\"></modal>"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body httpadapter.LintResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Warnings, 1)
	assert.Equal(t, 1, body.Counts["modal"])
}

func TestTransform_BadRequest(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/transform", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/transform", `{"markup":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransform_CacheRoundTrip(t *testing.T) {
	cache := &memCache{entries: make(map[string]string)}
	ts := newTestServer(t, httpadapter.WithCache(cache))

	req := `{"markup":"<tooltip content=\"tip\">word</tooltip>"}`

	first := postJSON(t, ts.URL+"/transform", req)
	require.Equal(t, http.StatusOK, first.StatusCode)
	var a httpadapter.TransformResponse
	require.NoError(t, json.NewDecoder(first.Body).Decode(&a))

	second := postJSON(t, ts.URL+"/transform", req)
	require.Equal(t, http.StatusOK, second.StatusCode)
	var b httpadapter.TransformResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&b))

	assert.Equal(t, a.Markup, b.Markup)
	assert.Len(t, cache.entries, 1)
	assert.Equal(t, 2, cache.gets)
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	postJSON(t, ts.URL+"/transform", `{"markup":"<popover content=\"Hi\"></popover>"}`)

	metrics, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	assert.Equal(t, http.StatusOK, metrics.StatusCode)
}
