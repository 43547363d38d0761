package syntax

import "testing"

func TestIsLiteral(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Nil{}, true},
		{Bool(true), true},
		{Int(1), true},
		{Float(1.5), true},
		{String("x"), true},
		{Keyword("div"), true},
		{Symbol("x"), false},
		{List{Symbol("f")}, false},
		{Vector{String("a"), Int(1)}, true},
		{Vector{String("a"), Symbol("x")}, false},
		{Map{{Key: Keyword("a"), Val: Int(1)}}, true},
		{Map{{Key: Keyword("a"), Val: Symbol("x")}}, false},
		{Map{{Key: Symbol("k"), Val: Int(1)}}, false},
		{Annotated{Form: String("x"), Hints: Hints{Inline: true}}, false},
		{Vector{}, true},
	}
	for _, tt := range tests {
		if got := IsLiteral(tt.v); got != tt.want {
			t.Errorf("IsLiteral(%s) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestMapOps(t *testing.T) {
	m := Map{
		{Key: Keyword("a"), Val: Int(1)},
		{Key: Keyword("b"), Val: Int(2)},
	}

	if v, ok := m.Get(Keyword("a")); !ok || !Equal(v, Int(1)) {
		t.Errorf("Get(:a) = %v, %v", v, ok)
	}
	if _, ok := m.Get(Keyword("zzz")); ok {
		t.Error("Get of a missing key should report false")
	}

	m2 := m.Assoc(Keyword("a"), Int(9))
	if v, _ := m2.Get(Keyword("a")); !Equal(v, Int(9)) {
		t.Errorf("Assoc replace failed: %s", m2)
	}
	if v, _ := m.Get(Keyword("a")); !Equal(v, Int(1)) {
		t.Errorf("Assoc must not mutate the receiver: %s", m)
	}

	m3 := m.Assoc(Keyword("c"), Int(3))
	if len(m3) != 3 {
		t.Errorf("Assoc append failed: %s", m3)
	}

	m4 := m.Without(Keyword("a"))
	if _, ok := m4.Get(Keyword("a")); ok || len(m4) != 1 {
		t.Errorf("Without failed: %s", m4)
	}
}

func TestHintHelpers(t *testing.T) {
	inner := Symbol("props")
	wrapped := Annotated{Form: inner, Hints: Hints{Attrs: true}}

	if !Hint(wrapped).Attrs {
		t.Error("Hint should expose the attrs flag")
	}
	if Hint(inner) != (Hints{}) {
		t.Error("Hint of a bare value should be empty")
	}
	if !Equal(Unwrap(wrapped), inner) {
		t.Error("Unwrap should strip one annotation layer")
	}

	if name, ok := Name(Keyword("div#id")); !ok || name != "div#id" {
		t.Errorf("Name(:div#id) = %q, %v", name, ok)
	}
	if _, ok := Name(Symbol("x")); ok {
		t.Error("Name of a symbol should report false")
	}
}

func TestPrinting(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Nil{}, "nil"},
		{Bool(false), "false"},
		{Int(-3), "-3"},
		{Float(2.5), "2.5"},
		{String(`a "b"`), `"a \"b\""`},
		{Keyword("div#id.cls"), ":div#id.cls"},
		{Symbol("my-fn!"), "my-fn!"},
		{Vector{Keyword("p"), String("x")}, `[:p "x"]`},
		{List{Symbol("inc"), Int(1)}, "(inc 1)"},
		{Map{{Key: Keyword("a"), Val: Int(1)}, {Key: Keyword("b"), Val: Int(2)}}, "{:a 1, :b 2}"},
		{Annotated{Form: Symbol("x"), Hints: Hints{Attrs: true, Type: "map"}}, "^:attrs ^map x"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
