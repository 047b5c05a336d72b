package markup

import (
	"github.com/espalier-ui/espalier/pkg/diag"
)

// MigrateAttr moves the src attribute to dst with copy-without-override
// semantics: when src is present, dst receives its value only if dst was not
// already set by the author, and src is removed afterwards. An author-set
// destination always wins; the source is still consumed.
//
// dst may be empty, in which case it defaults to src and a present source is
// simply left in place (the value is already where it belongs).
//
// When src is absent the call is a no-op; with required set it additionally
// returns ErrAttrNotFound so callers can surface the gap.
func MigrateAttr(n *Node, src string, required bool, dst string) error {
	val, ok := n.Attr(src)
	if !ok {
		if required {
			return ErrAttrNotFound
		}
		return nil
	}

	if dst == "" || dst == src {
		return nil
	}

	if !n.HasAttr(dst) {
		n.SetAttr(dst, val)
	}
	n.DelAttr(src)
	return nil
}

// RenameAttr renames old to new when old is present. Unlike MigrateAttr this
// is a direct rename: an existing new attribute is overwritten, last write
// wins.
func RenameAttr(n *Node, old, new string) {
	val, ok := n.Attr(old)
	if !ok {
		return
	}
	n.SetAttr(new, val)
	n.DelAttr(old)
}

// WarnDeprecatedAttrs emits a warning for every attribute on n whose name
// appears in renames (deprecated name → replacement). The node is not
// mutated; attributes are checked in insertion order so output is stable.
func WarnDeprecatedAttrs(sink diag.Sink, n *Node, renames map[string]string) {
	for _, a := range n.attrs {
		if repl, ok := renames[a.Name]; ok {
			sink.Deprecated(diag.Warning{Context: n.Tag, Old: a.Name, New: repl})
		}
	}
}

// WarnDeprecatedSlots emits a warning for every direct child of n whose
// shorthand slot name appears in renames. The tree is not mutated.
func WarnDeprecatedSlots(sink diag.Sink, n *Node, renames map[string]string) {
	for _, c := range n.Children {
		slot, ok := SlotShorthand(c)
		if !ok {
			continue
		}
		if repl, ok := renames[slot]; ok {
			sink.Deprecated(diag.Warning{Context: n.Tag, Old: slot, New: repl, Slot: true})
		}
	}
}
