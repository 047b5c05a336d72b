package transform_test

import (
	"testing"

	"github.com/espalier-ui/espalier/pkg/markup"
	"github.com/espalier-ui/espalier/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		tag  string
		want transform.Kind
	}{
		{"popover", transform.KindPopover},
		{"Tooltip", transform.KindTooltip},
		{"MODAL", transform.KindModal},
		{"trigger", transform.KindTrigger},
		{"div", transform.KindPlain},
		{"b-modal", transform.KindPlain},
		{"span", transform.KindPlain},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, transform.KindOf(markup.New(tt.tag)), "tag %q", tt.tag)
	}

	assert.Equal(t, transform.KindPlain, transform.KindOf(markup.NewText("modal")),
		"text nodes never classify")
}

func TestApply_PlainNodesUntouched(t *testing.T) {
	n := markup.New("div")
	n.SetAttr("class", "x")
	n.SetAttr("title", "t")

	eng := transform.New(transform.DefaultConfig(), nil)
	assert.Equal(t, transform.KindPlain, eng.Apply(n))

	assert.Equal(t, "div", n.Tag)
	assert.Equal(t, 2, n.AttrLen())
}

func TestApply_AlreadyNormalizedIsSkipped(t *testing.T) {
	// A partially migrated document can carry author tags that already have
	// the component-type marker. Re-deriving on them is unsupported, so the
	// engine must skip instead.
	n := markup.New("modal")
	n.SetAttr(transform.AttrComponentType, "modal")
	n.SetAttr("size", "lg")

	eng := transform.New(transform.DefaultConfig(), nil)
	assert.Equal(t, transform.KindPlain, eng.Apply(n))

	assert.Equal(t, "modal", n.Tag, "tag must not be rewritten twice")
	size, _ := n.Attr("size")
	assert.Equal(t, "lg", size)
}

func TestWalk(t *testing.T) {
	root := markup.New("div")

	pop := markup.New("popover")
	pop.SetAttr("content", "Hi")

	section := markup.New("section")
	modal := markup.New("modal")
	modal.SetAttr("id", "m1")
	section.AppendChild(modal)
	section.AppendChild(markup.NewText("filler"))

	root.AppendChild(pop)
	root.AppendChild(section)

	eng := transform.New(transform.DefaultConfig(), nil)
	counts := eng.Walk(root)

	assert.Equal(t, 1, counts[transform.KindPopover])
	assert.Equal(t, 1, counts[transform.KindModal])
	assert.Equal(t, "span", pop.Tag)
	assert.Equal(t, "b-modal", modal.Tag)
	assert.Equal(t, "section", section.Tag, "plain ancestors untouched")
}

func TestWalk_IsRepeatSafe(t *testing.T) {
	root := markup.New("div")
	pop := markup.New("popover")
	pop.SetAttr("content", "Hi")
	root.AppendChild(pop)

	eng := transform.New(transform.DefaultConfig(), nil)
	eng.Walk(root)

	before := pop.Attrs()
	tag := pop.Tag

	counts := eng.Walk(root)
	assert.Empty(t, counts, "second walk must transform nothing")
	assert.Equal(t, tag, pop.Tag)
	assert.Equal(t, before, pop.Attrs())
}

func TestRelabelSlot(t *testing.T) {
	parent := markup.New("modal")
	match := markup.New("template")
	markup.SetSlotShorthand(match, "footer")
	other := markup.New("template")
	markup.SetSlotShorthand(other, "header")
	noSlot := markup.New("div")
	parent.AppendChild(match)
	parent.AppendChild(other)
	parent.AppendChild(noSlot)

	transform.RelabelSlot(parent, "footer", "modal-footer")

	slot, ok := markup.SlotShorthand(match)
	require.True(t, ok)
	assert.Equal(t, "modal-footer", slot)

	slot, _ = markup.SlotShorthand(other)
	assert.Equal(t, "header", slot, "non-matching children untouched")
	assert.Equal(t, 0, noSlot.AttrLen())

	// No match at all is a no-op.
	transform.RelabelSlot(parent, "missing", "elsewhere")
}

func TestNormalizeSlotted(t *testing.T) {
	parent := markup.New("popover")
	slotted := markup.New("template")
	markup.SetSlotShorthand(slotted, "header")
	nested := markup.New("template")
	markup.SetSlotShorthand(nested, "deep")
	slotted.AppendChild(nested)
	parent.AppendChild(slotted)

	transform.NormalizeSlotted(parent, "span")

	assert.Equal(t, "span", slotted.Tag)
	v, _ := slotted.Attr(transform.AttrSlotName)
	assert.Equal(t, "header", v)
	assert.False(t, slotted.HasAttr("#header"))

	// Only direct children are rewritten.
	assert.Equal(t, "template", nested.Tag)
	assert.True(t, nested.HasAttr("#deep"))
}
