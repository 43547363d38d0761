// Package compiler statically lowers hiccup trees into element-constructor
// calls, deferring to the runtime interpreter only where a node's shape
// cannot be proven at compile time.
package compiler

import (
	"fmt"
	"sort"

	"github.com/hsxlang/hsx/internal/hsx/codegen"
	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

// Config names the runtime symbols emitted code calls into, plus the initial
// type environment for the oracle. The zero value compiles against the hsx
// runtime namespaces.
type Config struct {
	CreateElement   string            `yaml:"createElement"`
	Fragment        string            `yaml:"fragment"`
	Interpret       string            `yaml:"interpret"`
	BuildAttributes string            `yaml:"buildAttributes"`
	JoinClasses     string            `yaml:"joinClasses"`
	MergeWithClass  string            `yaml:"mergeWithClass"`
	MapCheck        string            `yaml:"mapCheck"`
	Types           map[string]string `yaml:"types"`

	Oracle TypeOracle `yaml:"-"`
}

func (c Config) withDefaults() Config {
	def := func(s *string, v string) {
		if *s == "" {
			*s = v
		}
	}
	def(&c.CreateElement, "hsx.runtime/create-element")
	def(&c.Fragment, "hsx.runtime/Fragment")
	def(&c.Interpret, "hsx.interpreter/interpret")
	def(&c.BuildAttributes, "hsx.interpreter/attributes")
	def(&c.JoinClasses, "hsx.runtime/join-classes")
	def(&c.MergeWithClass, "hsx.runtime/merge-with-class")
	def(&c.MapCheck, "map?")
	if c.Oracle == nil {
		c.Oracle = ScopeOracle{}
	}
	return c
}

// Error is a compile-time shape fault. It aborts the whole top-level
// compilation; there is no partial output.
type Error struct {
	Node syntax.Value
	Msg  string
}

func (e *Error) Error() string {
	if e.Node == nil {
		return "hsx: " + e.Msg
	}
	return fmt.Sprintf("hsx: %s: %s", e.Msg, e.Node)
}

func faultf(node syntax.Value, format string, args ...any) error {
	return &Error{Node: node, Msg: fmt.Sprintf(format, args...)}
}

type compiler struct {
	cfg Config
	n   int // gensym counter
}

// Compile lowers one top-level markup expression. It is pure and reentrant;
// concurrent calls only share the (read-only) oracle.
func Compile(v syntax.Value, cfg Config) (codegen.Expr, error) {
	c := &compiler{cfg: cfg.withDefaults()}
	sc := NewScope(nil)
	names := make([]string, 0, len(c.cfg.Types))
	for name := range c.cfg.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if t, ok := TypeNamed(c.cfg.Types[name]); ok {
			sc = sc.Bind(syntax.Symbol(name), t)
		}
	}
	return c.compile(v, sc)
}

// compile is the single entry point for every position: hyperscript nodes go
// through classification, literals pass through, provably renderable hinted
// expressions pass through, and everything else descends as a control form.
func (c *compiler) compile(v syntax.Value, sc *Scope) (codegen.Expr, error) {
	if v == nil {
		return codegen.Lit{V: syntax.Nil{}}, nil
	}
	if vec, ok := v.(syntax.Vector); ok {
		if len(vec) == 0 {
			return nil, faultf(v, "empty vector is not a valid element")
		}
		return c.compileElement(vec, sc)
	}
	if syntax.IsLiteral(v) {
		return codegen.Lit{V: v}, nil
	}
	if h := syntax.Hint(v); h.Type != "" {
		if t, ok := TypeNamed(h.Type); ok && IsPrimitiveRenderable([]Type{t}) {
			return codegen.Verbatim{V: syntax.Unwrap(v)}, nil
		}
	}
	return c.compileForm(v, sc)
}

func (c *compiler) gensym(prefix string) codegen.Sym {
	c.n++
	return codegen.Sym(fmt.Sprintf("%s__%d", prefix, c.n))
}

// inferTypes consults hints first, then the oracle. An empty result means
// unknown, never "no type".
func (c *compiler) inferTypes(v syntax.Value, sc *Scope) []Type {
	if h := syntax.Hint(v); h.Type != "" {
		if t, ok := TypeNamed(h.Type); ok {
			return []Type{t}
		}
	}
	return c.cfg.Oracle.Infer(syntax.Unwrap(v), sc)
}
