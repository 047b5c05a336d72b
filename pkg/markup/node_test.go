package markup

import (
	"reflect"
	"testing"
)

func TestAttrOrdering(t *testing.T) {
	n := New("modal")
	n.SetAttr("id", "m1")
	n.SetAttr("title", "Hello")
	n.SetAttr("backdrop", "false")

	// Updating an existing attribute must keep its position.
	n.SetAttr("title", "Changed")

	want := []Attr{
		{Name: "id", Value: "m1"},
		{Name: "title", Value: "Changed"},
		{Name: "backdrop", Value: "false"},
	}
	if got := n.Attrs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attrs() = %v, want %v", got, want)
	}
}

func TestAttrUniqueness(t *testing.T) {
	n := New("popover")
	n.SetAttr("class", "a")
	n.SetAttr("class", "b")

	if n.AttrLen() != 1 {
		t.Fatalf("AttrLen() = %d, want 1", n.AttrLen())
	}
	if v, _ := n.Attr("class"); v != "b" {
		t.Errorf("Attr(class) = %q, want %q", v, "b")
	}
}

func TestDelAttr(t *testing.T) {
	n := New("modal")
	n.SetAttr("large", "")
	n.SetAttr("id", "m1")

	if !n.DelAttr("large") {
		t.Error("DelAttr(large) = false, want true")
	}
	if n.DelAttr("large") {
		t.Error("DelAttr(large) second call = true, want false")
	}
	if !n.HasAttr("id") {
		t.Error("unrelated attribute was removed")
	}
}

func TestAttrOr(t *testing.T) {
	n := New("popover")
	n.SetAttr("trigger", "click")

	if got := n.AttrOr("trigger", "hover"); got != "click" {
		t.Errorf("AttrOr(trigger) = %q, want %q", got, "click")
	}
	if got := n.AttrOr("placement", "top"); got != "top" {
		t.Errorf("AttrOr(placement) = %q, want %q", got, "top")
	}
}

func TestTextNodes(t *testing.T) {
	n := NewText("hello")
	if !n.IsText() {
		t.Error("IsText() = false, want true")
	}
	if n.Tag != TextTag {
		t.Errorf("Tag = %q, want %q", n.Tag, TextTag)
	}
	if New("span").IsText() {
		t.Error("element node reported as text")
	}
}

func TestAppendChild(t *testing.T) {
	parent := New("modal")
	a := New("template")
	b := NewText("x")
	parent.AppendChild(a)
	parent.AppendChild(b)

	if len(parent.Children) != 2 || parent.Children[0] != a || parent.Children[1] != b {
		t.Errorf("Children = %v, want [a b] in order", parent.Children)
	}
}
