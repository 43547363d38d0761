package syntax

import (
	"strconv"
	"strings"
)

// String renders values back to source text. The emitter relies on this for
// verbatim positions, so printing must round-trip through the reader.

func (Nil) String() string { return "nil" }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (s String) String() string { return strconv.Quote(string(s)) }

func (k Keyword) String() string { return ":" + string(k) }

func (s Symbol) String() string { return string(s) }

func (v Vector) String() string { return joinForms(v, "[", "]") }

func (l List) String() string { return joinForms(l, "(", ")") }

func (m Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Key.String())
		b.WriteByte(' ')
		b.WriteString(e.Val.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (a Annotated) String() string {
	var b strings.Builder
	if a.Hints.Attrs {
		b.WriteString("^:attrs ")
	}
	if a.Hints.Inline {
		b.WriteString("^:inline ")
	}
	if a.Hints.Type != "" {
		b.WriteString("^" + a.Hints.Type + " ")
	}
	b.WriteString(a.Form.String())
	return b.String()
}

func joinForms(vs []Value, open, close string) string {
	var b strings.Builder
	b.WriteString(open)
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteString(close)
	return b.String()
}
