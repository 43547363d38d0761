// Package codegen is the compiler's output language: a small expression tree
// plus a trivial emitter that renders it to ClojureScript-style source. The
// compiler builds these values; it never inspects them again once built.
package codegen

import "github.com/hsxlang/hsx/internal/hsx/syntax"

type Expr interface {
	expr()
}

// Lit is an atomic literal: nil, booleans, numbers, strings, keywords.
type Lit struct {
	V syntax.Value
}

// Sym references a target-language symbol, e.g. "hsx.runtime/create-element".
type Sym string

type Call struct {
	Target Expr
	Args   []Expr
}

// If is a runtime branch; Else may be nil, which emits nil.
type If struct {
	Test Expr
	Then Expr
	Else Expr
}

type Binding struct {
	Name Sym
	Init Expr
}

// Let evaluates its bindings once and yields Body.
type Let struct {
	Bindings []Binding
	Body     Expr
}

// ArrayLit is a host-level (JavaScript) array literal.
type ArrayLit struct {
	Elems []Expr
}

// VecLit is a source-level vector literal, used when the emitted code hands a
// hiccup node to the runtime interpreter.
type VecLit struct {
	Elems []Expr
}

// ObjectLit is a host-level object literal with statically known string keys.
type ObjectLit struct {
	Entries []ObjectEntry
}

type ObjectEntry struct {
	Key string
	Val Expr
}

// Verbatim splices an untouched source form into the output.
type Verbatim struct {
	V syntax.Value
}

func (Lit) expr()       {}
func (Sym) expr()       {}
func (Call) expr()      {}
func (If) expr()        {}
func (Let) expr()       {}
func (ArrayLit) expr()  {}
func (VecLit) expr()    {}
func (ObjectLit) expr() {}
func (Verbatim) expr()  {}

// NewCall builds a call to a named target.
func NewCall(target string, args ...Expr) Call {
	return Call{Target: Sym(target), Args: args}
}
