package compiler

import "github.com/hsxlang/hsx/internal/hsx/syntax"

// Type is a statically inferable runtime type.
type Type string

const (
	TypeNil      Type = "nil"
	TypeBool     Type = "boolean"
	TypeNumber   Type = "number"
	TypeString   Type = "string"
	TypeElement  Type = "element"
	TypeMap      Type = "map"
	TypeSeq      Type = "seq"
	TypeFunc     Type = "function"
	TypeMarkup   Type = "markup"
	TypeFragment Type = "fragment"
)

// TypeNamed resolves a hint string to a Type. Hints use a few spellings.
func TypeNamed(name string) (Type, bool) {
	switch name {
	case "nil":
		return TypeNil, true
	case "boolean", "bool", "js/Boolean":
		return TypeBool, true
	case "number", "js/Number", "int", "double":
		return TypeNumber, true
	case "string", "js/String":
		return TypeString, true
	case "element", "js/React.Element", "react/element":
		return TypeElement, true
	case "map", "attrs", "cljs.core/IMap":
		return TypeMap, true
	case "seq", "vector", "js/Array", "cljs.core/IVector":
		return TypeSeq, true
	case "fn", "function", "js/Function":
		return TypeFunc, true
	case "markup", "hiccup":
		return TypeMarkup, true
	case "fragment":
		return TypeFragment, true
	default:
		return "", false
	}
}

// renderable is the whitelist of types the renderer accepts directly,
// without an interpretation wrapper.
var renderable = map[Type]bool{
	TypeNil:      true,
	TypeBool:     true,
	TypeNumber:   true,
	TypeString:   true,
	TypeElement:  true,
	TypeSeq:      true,
	TypeFunc:     true,
	TypeMarkup:   true,
	TypeFragment: true,
}

// IsPrimitiveRenderable reports whether types is a non-empty set of types
// the renderer accepts without interpretation. An empty set means unknown
// and is never renderable.
func IsPrimitiveRenderable(types []Type) bool {
	if len(types) == 0 {
		return false
	}
	for _, t := range types {
		if !renderable[t] {
			return false
		}
	}
	return true
}

// Scope is a lexical chain of symbol types, extended as the compiler
// descends through binding forms. Read-only after construction, so safe to
// share across concurrent compilations.
type Scope struct {
	parent *Scope
	types  map[syntax.Symbol]Type
}

func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent}
}

// Bind returns a scope where name has type t, shadowing outer bindings.
func (s *Scope) Bind(name syntax.Symbol, t Type) *Scope {
	child := &Scope{parent: s, types: map[syntax.Symbol]Type{name: t}}
	return child
}

// Shadow marks name as bound with unknown type.
func (s *Scope) Shadow(name syntax.Symbol) *Scope {
	return s.Bind(name, "")
}

func (s *Scope) Lookup(name syntax.Symbol) (Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.types[name]; ok {
			return t, t != ""
		}
	}
	return "", false
}

// TypeOracle is the read-only query against an external static analyzer.
// Implementations must be safe for concurrent use. An empty result means
// "unknown".
type TypeOracle interface {
	Infer(expr syntax.Value, sc *Scope) []Type
}

// ScopeOracle infers from the lexical scope and trivially typed literals;
// it is the oracle the compiler falls back to when no analyzer is wired in.
type ScopeOracle struct{}

func (ScopeOracle) Infer(expr syntax.Value, sc *Scope) []Type {
	switch t := expr.(type) {
	case syntax.Nil:
		return []Type{TypeNil}
	case syntax.Bool:
		return []Type{TypeBool}
	case syntax.Int, syntax.Float:
		return []Type{TypeNumber}
	case syntax.String:
		return []Type{TypeString}
	case syntax.Map:
		return []Type{TypeMap}
	case syntax.Symbol:
		if sc != nil {
			if typ, ok := sc.Lookup(t); ok {
				return []Type{typ}
			}
		}
		return nil
	default:
		return nil
	}
}
