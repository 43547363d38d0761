package normalizer

import (
	"strings"
	"testing"

	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		name    string
		id      string
		classes []string
		wantErr bool
	}{
		{tag: "div", name: "div"},
		{tag: "div#id", name: "div", id: "id"},
		{tag: "div.a.b", name: "div", classes: []string{"a", "b"}},
		{tag: "div#id.a.b", name: "div", id: "id", classes: []string{"a", "b"}},
		{tag: "span.x#y", name: "span", id: "y", classes: []string{"x"}},
		{tag: "#id", name: "div", id: "id"},
		{tag: ".cls", name: "div", classes: []string{"cls"}},
		{tag: "", wantErr: true},
		{tag: "div#", wantErr: true},
		{tag: "div#a#b", wantErr: true},
		{tag: "div..x", wantErr: true},
	}
	for _, tt := range tests {
		name, id, classes, err := ParseTag(tt.tag)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTag(%q): expected error", tt.tag)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTag(%q): %v", tt.tag, err)
			continue
		}
		if name != tt.name || id != tt.id || strings.Join(classes, " ") != strings.Join(tt.classes, " ") {
			t.Errorf("ParseTag(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.tag, name, id, classes, tt.name, tt.id, tt.classes)
		}
	}
}

func TestTagAttrs(t *testing.T) {
	m := TagAttrs("app", []string{"a", "b"})
	if got := m.String(); got != `{:id "app", :class "a b"}` {
		t.Errorf("TagAttrs = %s", got)
	}
	if m = TagAttrs("", nil); len(m) != 0 {
		t.Errorf("empty shorthand should derive no attributes, got %s", m)
	}
}

func TestMergeWithClass(t *testing.T) {
	read := func(entries ...syntax.MapEntry) syntax.Map { return entries }
	kw := func(s string) syntax.Value { return syntax.Keyword(s) }
	str := func(s string) syntax.Value { return syntax.String(s) }

	a := read(syntax.MapEntry{Key: kw("id"), Val: str("x")}, syntax.MapEntry{Key: kw("class"), Val: str("a")})
	b := read(syntax.MapEntry{Key: kw("class"), Val: str("b")}, syntax.MapEntry{Key: kw("id"), Val: str("y")})
	got := MergeWithClass(a, b)

	if v, _ := got.Get(kw("class")); !syntax.Equal(v, str("a b")) {
		t.Errorf("class union = %s, want \"a b\"", v)
	}
	if v, _ := got.Get(kw("id")); !syntax.Equal(v, str("y")) {
		t.Errorf("id = %s, want right-biased \"y\"", v)
	}
}

func TestMergeWithClassDynamicSide(t *testing.T) {
	kw := syntax.Keyword("class")
	a := syntax.Map{{Key: kw, Val: syntax.String("a")}}
	b := syntax.Map{{Key: kw, Val: syntax.Symbol("cls")}}
	got := MergeWithClass(a, b)
	v, _ := got.Get(kw)
	// a dynamic side keeps both values for a runtime join
	if _, ok := v.(syntax.Vector); !ok {
		t.Errorf("dynamic class merge should keep both sides, got %s", v)
	}
}

func TestClassTokens(t *testing.T) {
	tests := []struct {
		val  syntax.Value
		want string
		ok   bool
	}{
		{val: syntax.String("a b"), want: "a b", ok: true},
		{val: syntax.Keyword("warn"), want: "warn", ok: true},
		{val: syntax.Nil{}, want: "", ok: true},
		{val: syntax.Vector{syntax.String("a"), syntax.Keyword("b")}, want: "a b", ok: true},
		{val: syntax.Vector{syntax.String("a"), syntax.Symbol("x")}, ok: false},
		{val: syntax.Symbol("cls"), ok: false},
	}
	for _, tt := range tests {
		tokens, ok := ClassTokens(tt.val)
		if ok != tt.ok {
			t.Errorf("ClassTokens(%v) ok = %v, want %v", tt.val, ok, tt.ok)
			continue
		}
		if ok && strings.Join(tokens, " ") != tt.want {
			t.Errorf("ClassTokens(%v) = %v, want %q", tt.val, tokens, tt.want)
		}
	}
}

func TestTranslateName(t *testing.T) {
	tests := map[string]string{
		"class":     "class",
		"className": "class",
		"htmlFor":   "for",
		"charSet":   "charset",
		"tabIndex":  "tabindex",
		"data-id":   "data-id",
		"aria-label": "aria-label",
		"href":      "href",
	}
	for in, want := range tests {
		if got := TranslateName(in); got != want {
			t.Errorf("TranslateName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelCaseKey(t *testing.T) {
	tests := map[string]string{
		"margin-top":       "marginTop",
		"background-color": "backgroundColor",
		"color":            "color",
		"--main-color":     "--main-color",
		"-webkit-box":      "WebkitBox",
	}
	for in, want := range tests {
		if got := CamelCaseKey(in); got != want {
			t.Errorf("CamelCaseKey(%q) = %q, want %q", in, got, want)
		}
	}
}
