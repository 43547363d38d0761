package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

// Emit renders an expression tree to concrete syntax. It is deterministic:
// equal trees produce equal text.
func Emit(e Expr) string {
	var b strings.Builder
	emit(&b, e)
	return b.String()
}

func emit(b *strings.Builder, e Expr) {
	switch t := e.(type) {
	case nil:
		b.WriteString("nil")
	case Lit:
		if t.V == nil {
			b.WriteString("nil")
			return
		}
		b.WriteString(t.V.String())
	case Sym:
		b.WriteString(string(t))
	case Verbatim:
		b.WriteString(t.V.String())
	case Call:
		b.WriteByte('(')
		emit(b, t.Target)
		for _, a := range t.Args {
			b.WriteByte(' ')
			emit(b, a)
		}
		b.WriteByte(')')
	case If:
		b.WriteString("(if ")
		emit(b, t.Test)
		b.WriteByte(' ')
		emit(b, t.Then)
		b.WriteByte(' ')
		emit(b, t.Else)
		b.WriteByte(')')
	case Let:
		b.WriteString("(let [")
		for i, bd := range t.Bindings {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(bd.Name))
			b.WriteByte(' ')
			emit(b, bd.Init)
		}
		b.WriteString("] ")
		emit(b, t.Body)
		b.WriteByte(')')
	case ArrayLit:
		b.WriteString("(cljs.core/array")
		for _, el := range t.Elems {
			b.WriteByte(' ')
			emit(b, el)
		}
		b.WriteByte(')')
	case VecLit:
		b.WriteByte('[')
		for i, el := range t.Elems {
			if i > 0 {
				b.WriteByte(' ')
			}
			emit(b, el)
		}
		b.WriteByte(']')
	case ObjectLit:
		b.WriteString("(js-obj")
		for _, en := range t.Entries {
			b.WriteByte(' ')
			b.WriteString(strconv.Quote(en.Key))
			b.WriteByte(' ')
			emit(b, en.Val)
		}
		b.WriteByte(')')
	default:
		panic(fmt.Sprintf("codegen: unknown expression %T", e))
	}
}
