package transform

import (
	"github.com/espalier-ui/espalier/pkg/markup"
)

// RelabelSlot renames the shorthand slot oldName to newName on every direct
// child of parent that carries it. Children without a match are untouched;
// with no match at all the call is a no-op.
func RelabelSlot(parent *markup.Node, oldName, newName string) {
	for _, c := range parent.Children {
		slot, ok := markup.SlotShorthand(c)
		if !ok || slot != oldName {
			continue
		}
		markup.SetSlotShorthand(c, newName)
		markup.DelSlotShorthand(c, oldName)
	}
}

// NormalizeSlotted rewrites every direct child of parent that uses shorthand
// slot syntax into a plain inline element carrying the slot-name marker, so
// the downstream templating layer does not interpret it as a slot
// declaration. The child's content survives as a hidden content source the
// runtime reads by marker. Does not recurse past direct children.
func NormalizeSlotted(parent *markup.Node, inlineTag string) {
	for _, c := range parent.Children {
		slot, ok := markup.SlotShorthand(c)
		if !ok {
			continue
		}
		c.SetAttr(AttrSlotName, slot)
		markup.DelSlotShorthand(c, slot)
		c.Tag = inlineTag
	}
}
