package reader

import (
	"testing"

	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

func TestReadRoundTrip(t *testing.T) {
	// printing a parsed form must read back to the same value
	tests := []string{
		`nil`,
		`true`,
		`42`,
		`-7`,
		`2.5`,
		`"hi there"`,
		`:div`,
		`:div#id.a.b`,
		`items`,
		`[:span {:class "a"} "hi"]`,
		`(if test [:span "yes"] [:span "no"])`,
		`{:outer [1 {:inner "v"} true]}`,
		`(for [i items] [:li i])`,
	}
	for _, src := range tests {
		v, err := ReadOne(src)
		if err != nil {
			t.Fatalf("read %q: %v", src, err)
		}
		again, err := ReadOne(v.String())
		if err != nil {
			t.Fatalf("re-read %q: %v", v.String(), err)
		}
		if !syntax.Equal(v, again) {
			t.Errorf("round trip of %q: %s != %s", src, v, again)
		}
	}
}

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		src  string
		want syntax.Value
	}{
		{`nil`, syntax.Nil{}},
		{`true`, syntax.Bool(true)},
		{`false`, syntax.Bool(false)},
		{`3`, syntax.Int(3)},
		{`-3`, syntax.Int(-3)},
		{`1.25`, syntax.Float(1.25)},
		{`"a\nb"`, syntax.String("a\nb")},
		{`:margin-top`, syntax.Keyword("margin-top")},
		{`my-fn!`, syntax.Symbol("my-fn!")},
		{`hsx.runtime/create-element`, syntax.Symbol("hsx.runtime/create-element")},
	}
	for _, tt := range tests {
		v, err := ReadOne(tt.src)
		if err != nil {
			t.Fatalf("read %q: %v", tt.src, err)
		}
		if !syntax.Equal(v, tt.want) {
			t.Errorf("read %q = %s, want %s", tt.src, v, tt.want)
		}
	}
}

func TestReadHints(t *testing.T) {
	v, err := ReadOne(`^:attrs props`)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := v.(syntax.Annotated)
	if !ok || !a.Hints.Attrs {
		t.Fatalf("expected attrs-hinted symbol, got %s", v)
	}

	v, err = ReadOne(`^:inline (f x)`)
	if err != nil {
		t.Fatal(err)
	}
	if a, ok = v.(syntax.Annotated); !ok || !a.Hints.Inline {
		t.Fatalf("expected inline-hinted form, got %s", v)
	}

	v, err = ReadOne(`^js/React.Element el`)
	if err != nil {
		t.Fatal(err)
	}
	if a, ok = v.(syntax.Annotated); !ok || a.Hints.Type != "js/React.Element" {
		t.Fatalf("expected type-hinted symbol, got %s", v)
	}

	// stacked hints fold into one hint set
	v, err = ReadOne(`^:attrs ^map props`)
	if err != nil {
		t.Fatal(err)
	}
	a, ok = v.(syntax.Annotated)
	if !ok || !a.Hints.Attrs || a.Hints.Type != "map" {
		t.Fatalf("expected stacked hints, got %s", v)
	}
}

func TestReadCommentsAndCommas(t *testing.T) {
	v, err := ReadOne("[:ul ; items\n [:li \"a\"], [:li \"b\"]]")
	if err != nil {
		t.Fatal(err)
	}
	vec, ok := v.(syntax.Vector)
	if !ok || len(vec) != 3 {
		t.Fatalf("expected 3-element vector, got %s", v)
	}
}

func TestReadMany(t *testing.T) {
	forms, err := ReadString("test.hsx", "[:p \"a\"]\n[:p \"b\"]\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(forms) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(forms))
	}
}

func TestReadErrors(t *testing.T) {
	for _, src := range []string{
		`{:a}`,       // odd map
		`[:div`,      // unclosed vector
		`^:weird x`,  // unknown hint keyword
		`[:a] [:b]`,  // ReadOne wants exactly one form
	} {
		if _, err := ReadOne(src); err == nil {
			t.Errorf("read %q: expected error", src)
		}
	}
}
