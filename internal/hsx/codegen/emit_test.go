package codegen

import (
	"testing"

	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{name: "nil literal", expr: Lit{V: syntax.Nil{}}, want: `nil`},
		{name: "string literal", expr: Lit{V: syntax.String("a")}, want: `"a"`},
		{name: "symbol", expr: Sym("react/Fragment"), want: `react/Fragment`},
		{
			name: "call",
			expr: NewCall("f", Lit{V: syntax.Int(1)}, Sym("x")),
			want: `(f 1 x)`,
		},
		{
			name: "nested call",
			expr: NewCall("f", NewCall("g", Sym("x"))),
			want: `(f (g x))`,
		},
		{
			name: "conditional with nil else",
			expr: If{Test: Sym("ok"), Then: Lit{V: syntax.String("y")}},
			want: `(if ok "y" nil)`,
		},
		{
			name: "binding block",
			expr: Let{
				Bindings: []Binding{{Name: "a", Init: Sym("x")}, {Name: "b", Init: Lit{V: syntax.Int(2)}}},
				Body:     NewCall("f", Sym("a"), Sym("b")),
			},
			want: `(let [a x b 2] (f a b))`,
		},
		{
			name: "array literal",
			expr: ArrayLit{Elems: []Expr{Lit{V: syntax.String("a")}, Sym("b")}},
			want: `(cljs.core/array "a" b)`,
		},
		{
			name: "vector literal",
			expr: VecLit{Elems: []Expr{Sym("x"), Lit{V: syntax.Keyword("k")}}},
			want: `[x :k]`,
		},
		{
			name: "object literal",
			expr: ObjectLit{Entries: []ObjectEntry{{Key: "class", Val: Lit{V: syntax.String("a")}}, {Key: "id", Val: Sym("n")}}},
			want: `(js-obj "class" "a" "id" n)`,
		},
		{
			name: "verbatim form",
			expr: Verbatim{V: syntax.List{syntax.Symbol("inc"), syntax.Symbol("n")}},
			want: `(inc n)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Emit(tt.expr); got != tt.want {
				t.Errorf("Emit = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEmitDeterministic(t *testing.T) {
	e := NewCall("f", ObjectLit{Entries: []ObjectEntry{{Key: "a", Val: Sym("x")}}}, ArrayLit{Elems: []Expr{Sym("y")}})
	first := Emit(e)
	for i := 0; i < 3; i++ {
		if got := Emit(e); got != first {
			t.Fatalf("Emit not deterministic: %s then %s", first, got)
		}
	}
}
