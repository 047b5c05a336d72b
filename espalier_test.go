package espalier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espalier-ui/espalier"
	"github.com/espalier-ui/espalier/pkg/transform"
)

func TestTransform_Popover(t *testing.T) {
	eng := espalier.New()

	out, warnings, err := eng.Transform(`<popover content="Hi">anchor</popover>`)
	require.NoError(t, err)

	assert.Empty(t, warnings)
	assert.Contains(t, out, `<span `)
	assert.Contains(t, out, `data-mb-content="Hi"`)
	assert.Contains(t, out, `v-b-popover.hover.top.html="mbComponentContent"`)
	assert.Contains(t, out, `data-mb-component-type="popover"`)
	assert.Contains(t, out, `class="trigger"`)
	assert.Contains(t, out, `>anchor</span>`)
}

func TestTransform_ModalWarnsOnDeprecatedTitle(t *testing.T) {
	eng := espalier.New()

	out, warnings, err := eng.Transform(`<modal id="m1" title="Hello"></modal>`)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, "title", warnings[0].Old)
	assert.Equal(t, "header", warnings[0].New)

	assert.Contains(t, out, `<b-modal `)
	assert.Contains(t, out, `modal-title="Hello"`)
	assert.Contains(t, out, `ref="m1"`)
	assert.Contains(t, out, `hide-footer=""`)
}

func TestTransform_Idempotent(t *testing.T) {
	eng := espalier.New()

	once, _, err := eng.Transform(`<tooltip content="tip">word</tooltip>`)
	require.NoError(t, err)

	twice, warnings, err := eng.Transform(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Empty(t, warnings)
}

func TestTransform_CustomConfig(t *testing.T) {
	cfg := transform.DefaultConfig()
	cfg.InlineTag = "em"
	cfg.DefaultTrigger = "click"
	eng := espalier.New(espalier.WithConfig(cfg))

	out, _, err := eng.Transform(`<popover content="Hi"></popover>`)
	require.NoError(t, err)

	assert.Contains(t, out, `<em `)
	assert.Contains(t, out, `v-b-popover.click.top.html=`)
	assert.Contains(t, out, `class="trigger-click"`)
}

func TestLint_DoesNotReturnMarkup(t *testing.T) {
	eng := espalier.New()

	warnings, err := eng.Lint(`<modal title="Hello"></modal>`)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.True(t, strings.Contains(warnings[0].String(), "title"))
}
