package markup

import "strings"

// SlotShorthandPrefix marks an attribute as a shorthand slot designation,
// e.g. `<template #footer>` fills the "footer" slot.
const SlotShorthandPrefix = "#"

// SlotShorthand returns the shorthand slot name carried by the node, if any.
//
// Upstream attribute-map uniqueness does not stop distinct "#x" and "#y"
// attributes from coexisting on one node; when that happens the first one in
// insertion order wins and the rest are ignored.
func SlotShorthand(n *Node) (string, bool) {
	for _, a := range n.attrs {
		if name, ok := strings.CutPrefix(a.Name, SlotShorthandPrefix); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// SetSlotShorthand adds a shorthand slot attribute for the given slot name.
// Shorthand attributes carry no value.
func SetSlotShorthand(n *Node, slot string) {
	n.SetAttr(SlotShorthandPrefix+slot, "")
}

// DelSlotShorthand removes the shorthand attribute for the given slot name,
// reporting whether it was present.
func DelSlotShorthand(n *Node, slot string) bool {
	return n.DelAttr(SlotShorthandPrefix + slot)
}
