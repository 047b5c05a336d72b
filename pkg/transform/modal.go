package transform

import (
	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/markup"
)

var (
	modalDeprecatedAttrs = map[string]string{
		"title": "header",
	}
	modalDeprecatedSlots = map[string]string{
		"modal-header": "header",
		"modal-footer": "footer",
	}
)

// modal normalizes modal dialogs. The rules run in a fixed order because
// later rules read attributes set or cleared by earlier ones (the size rule
// must consume `large`/`small` before anything else reads them stale).
type modal struct {
	cfg  Config
	sink diag.Sink
}

func newModalTransformer(cfg Config, sink diag.Sink) *modal {
	return &modal{cfg: cfg, sink: sink}
}

// Transform mutates n in place into the canonical modal shape.
func (t *modal) Transform(n *markup.Node) {
	// 1. Advisory deprecations, attribute and slot names.
	markup.WarnDeprecatedAttrs(t.sink, n, modalDeprecatedAttrs)
	markup.WarnDeprecatedSlots(t.sink, n, modalDeprecatedSlots)

	// 2. Both legacy spellings feed modal-title; an author-set modal-title
	// wins either way.
	markup.MigrateAttr(n, "header", false, "modal-title") //nolint:errcheck // not required
	markup.MigrateAttr(n, "title", false, "modal-title")  //nolint:errcheck // not required

	// 3. Shorthand slots move to the downstream slot names.
	RelabelSlot(n, "header", "modal-header")
	RelabelSlot(n, "footer", "modal-footer")

	// 4.
	n.Tag = t.cfg.ModalTag

	// 5. Direct renames, last write wins.
	markup.RenameAttr(n, "ok-text", "ok-title")
	markup.RenameAttr(n, "center", "centered")

	// 6. Footer/OK visibility. With neither a custom OK label nor a footer
	// slot the footer is hidden (the downstream default would show it);
	// with only an OK label customized the cancel button is suppressed.
	// Never both.
	hasOkTitle := n.HasAttr("ok-title")
	hasFooter := false
	for _, c := range n.Children {
		if slot, ok := markup.SlotShorthand(c); ok && slot == "modal-footer" {
			hasFooter = true
			break
		}
	}
	switch {
	case !hasOkTitle && !hasFooter:
		n.SetAttr("hide-footer", "")
	case hasOkTitle:
		n.SetAttr("ok-only", "")
	}

	// 7. Backdrop: the literal string "false" disables close-on-backdrop;
	// the original attribute is consumed regardless of its value.
	if v, ok := n.Attr("backdrop"); ok {
		if v == "false" {
			n.SetAttr("no-close-on-backdrop", "")
		}
		n.DelAttr("backdrop")
	}

	// 8. Size is total: exactly one of "lg", "sm", or "" always lands.
	// `large` wins when both are present.
	switch {
	case n.HasAttr("large"):
		n.SetAttr("size", "lg")
		n.DelAttr("large")
	case n.HasAttr("small"):
		n.SetAttr("size", "sm")
		n.DelAttr("small")
	default:
		n.SetAttr("size", "")
	}

	// 9. Effect: "fade" adopts the downstream default animation (empty
	// modal-class); everything else gets the house animation class.
	if n.AttrOr("effect", "") == "fade" {
		n.SetAttr("modal-class", "")
	} else {
		n.SetAttr("modal-class", t.cfg.ModalAnimationClass)
	}

	// 10. Mirror id into ref so the runtime can address the dialog. Both
	// stay present; an author-set ref is left alone.
	if id, ok := n.Attr("id"); ok && !n.HasAttr("ref") {
		n.SetAttr("ref", id)
	}
}
