// Package syntax defines the value model for hiccup trees: the unevaluated
// forms the compiler classifies and lowers. Values are immutable once built.
package syntax

// Value is one node of an unevaluated hiccup tree.
type Value interface {
	value()
	String() string
}

type Nil struct{}

type Bool bool

type Int int64

type Float float64

type String string

// Keyword holds the name without the leading colon, e.g. Keyword("div") for :div.
type Keyword string

// Symbol is an identifier naming a runtime value; always dynamic.
type Symbol string

// Vector is an ordered sequence; a non-empty vector is a hyperscript node
// candidate.
type Vector []Value

// List is an identifier-headed form such as (if test then else).
type List []Value

// MapEntry preserves source order; maps are never backed by Go maps so that
// attribute compilation and emitted object literals stay deterministic.
type MapEntry struct {
	Key Value
	Val Value
}

type Map []MapEntry

// Hints are caller-supplied annotations read from ^:attrs, ^:inline and
// ^Type metadata. They are trusted as-is; a wrong hint is the caller's fault
// and surfaces, if at all, at runtime.
type Hints struct {
	Attrs  bool
	Inline bool
	Type   string
}

func (h Hints) Empty() bool { return !h.Attrs && !h.Inline && h.Type == "" }

// Annotated wraps a form together with its hints.
type Annotated struct {
	Form  Value
	Hints Hints
}

func (Nil) value()       {}
func (Bool) value()      {}
func (Int) value()       {}
func (Float) value()     {}
func (String) value()    {}
func (Keyword) value()   {}
func (Symbol) value()    {}
func (Vector) value()    {}
func (List) value()      {}
func (Map) value()       {}
func (Annotated) value() {}

// Get returns the value for key, comparing by printed form.
func (m Map) Get(key Value) (Value, bool) {
	for _, e := range m {
		if Equal(e.Key, key) {
			return e.Val, true
		}
	}
	return nil, false
}

// Without returns a copy of m with key removed.
func (m Map) Without(key Value) Map {
	out := make(Map, 0, len(m))
	for _, e := range m {
		if !Equal(e.Key, key) {
			out = append(out, e)
		}
	}
	return out
}

// Assoc sets key to val, replacing in place when the key exists.
func (m Map) Assoc(key, val Value) Map {
	out := make(Map, 0, len(m)+1)
	replaced := false
	for _, e := range m {
		if Equal(e.Key, key) {
			out = append(out, MapEntry{Key: key, Val: val})
			replaced = true
			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, MapEntry{Key: key, Val: val})
	}
	return out
}

// Equal compares two values structurally.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

// IsLiteral reports whether v is fully known at compile time: atoms are
// literal, vectors and maps are literal when every element is, and symbols,
// forms and annotated expressions are not.
func IsLiteral(v Value) bool {
	switch t := v.(type) {
	case Nil, Bool, Int, Float, String, Keyword:
		return true
	case Vector:
		for _, e := range t {
			if !IsLiteral(e) {
				return false
			}
		}
		return true
	case Map:
		for _, e := range t {
			if !IsLiteral(e.Key) || !IsLiteral(e.Val) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hint returns the hints attached to v, if any.
func Hint(v Value) Hints {
	if a, ok := v.(Annotated); ok {
		return a.Hints
	}
	return Hints{}
}

// Unwrap strips one Annotated layer.
func Unwrap(v Value) Value {
	if a, ok := v.(Annotated); ok {
		return a.Form
	}
	return v
}

// Name returns the textual name of a keyword or string tag.
func Name(v Value) (string, bool) {
	switch t := Unwrap(v).(type) {
	case Keyword:
		return string(t), true
	case String:
		return string(t), true
	default:
		return "", false
	}
}
