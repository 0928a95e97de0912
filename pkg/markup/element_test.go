package markup

import "testing"

func TestAttrCaseInsensitiveFirstWins(t *testing.T) {
	el := NewElement("Button", []Attr{
		{Name: "OnClick", Value: "first"},
		{Name: "onclick", Value: "second"},
	}, "")
	if el.Tag() != "button" {
		t.Errorf("Tag() = %q, want button", el.Tag())
	}
	if v, _ := el.Attr("ONCLICK"); v != "first" {
		t.Errorf("Attr = %q, want first", v)
	}
	if el.AttrOr("missing", "dflt") != "dflt" {
		t.Error("AttrOr should return the fallback for absent attributes")
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		if !Truthy(v) {
			t.Errorf("Truthy(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"", "0", "false", "no", "off", "y"} {
		if Truthy(v) {
			t.Errorf("Truthy(%q) = true, want false", v)
		}
	}
}

func TestInt(t *testing.T) {
	el := NewElement("box", []Attr{{"spacing", " 12 "}, {"margin", "wide"}}, "")
	if n, ok := el.Int("spacing"); !ok || n != 12 {
		t.Errorf("Int(spacing) = %d, %v; want 12, true", n, ok)
	}
	if _, ok := el.Int("margin"); ok {
		t.Error("Int(margin) should fail for a non-numeric value")
	}
	if _, ok := el.Int("absent"); ok {
		t.Error("Int(absent) should fail")
	}
}

func TestMerge(t *testing.T) {
	got := Merge(
		[]Attr{{"class", "suggested"}, {"margin", "6"}},
		[]Attr{{"Margin", "2"}, {"id", "b"}},
	)
	want := []Attr{{"Margin", "2"}, {"id", "b"}, {"class", "suggested"}}
	if len(got) != len(want) {
		t.Fatalf("Merge = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Merge[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWalkDocumentOrder(t *testing.T) {
	tree := NewElement("a", nil, "",
		NewElement("b", nil, "", NewElement("c", nil, "")),
		NewElement("d", nil, ""),
	)
	var order []string
	tree.Walk(func(el *Element) bool {
		order = append(order, el.Tag())
		return el.Tag() != "b"
	})
	want := []string{"a", "b", "d"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestChildrenByTag(t *testing.T) {
	nb := NewElement("notebook", nil, "",
		NewElement("tab", nil, ""),
		NewElement("label", nil, ""),
		NewElement("TAB", nil, ""),
	)
	if got := len(nb.ChildrenByTag("tab")); got != 2 {
		t.Errorf("ChildrenByTag(tab) = %d, want 2", got)
	}
	if nb.FirstChild("label") == nil {
		t.Error("FirstChild(label) = nil")
	}
	if nb.FirstChild("window") != nil {
		t.Error("FirstChild(window) should be nil")
	}
}
