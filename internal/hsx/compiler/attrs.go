package compiler

import (
	"strings"

	"github.com/hsxlang/hsx/internal/hsx/codegen"
	"github.com/hsxlang/hsx/internal/hsx/normalizer"
	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

// compileAttributes lowers an attribute map into a single object literal,
// with per-name handling for class and style. A nil result means the
// attribute slot can be elided.
func (c *compiler) compileAttributes(attrs syntax.Map) (codegen.Expr, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	for _, e := range attrs {
		if _, ok := syntax.Name(e.Key); !ok {
			// a dynamic key means the shape of the whole object is unknown
			return codegen.NewCall(c.cfg.BuildAttributes, codegen.Verbatim{V: attrs}), nil
		}
	}
	entries := make([]codegen.ObjectEntry, 0, len(attrs))
	for _, e := range attrs {
		name, _ := syntax.Name(e.Key)
		var val codegen.Expr
		var err error
		switch name {
		case "class":
			val, err = c.compileClass(e.Val)
		case "style":
			val, err = c.compileStyle(e.Val)
		default:
			val = c.toLiteralCode(e.Val)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, codegen.ObjectEntry{Key: normalizer.TranslateName(name), Val: val})
	}
	return codegen.ObjectLit{Entries: entries}, nil
}

// compileClass joins a static class collection at compile time and defers
// dynamic values to the runtime class join.
func (c *compiler) compileClass(v syntax.Value) (codegen.Expr, error) {
	switch t := syntax.Unwrap(v).(type) {
	case syntax.Nil:
		return codegen.Lit{V: t}, nil
	case syntax.Keyword:
		return codegen.Lit{V: syntax.String(t)}, nil
	case syntax.String:
		return codegen.Lit{V: t}, nil
	default:
		if tokens, ok := normalizer.ClassTokens(v); ok {
			return codegen.Lit{V: syntax.String(strings.Join(tokens, " "))}, nil
		}
		return codegen.NewCall(c.cfg.JoinClasses, c.toLiteralCode(v)), nil
	}
}

// compileStyle normalizes style-property keys to the host casing convention
// at compile time; anything but a literal map defers to the runtime.
func (c *compiler) compileStyle(v syntax.Value) (codegen.Expr, error) {
	m, ok := syntax.Unwrap(v).(syntax.Map)
	if !ok {
		return codegen.NewCall(c.cfg.BuildAttributes, codegen.Verbatim{V: syntax.Unwrap(v)}), nil
	}
	out := make(syntax.Map, 0, len(m))
	for _, e := range m {
		name, ok := syntax.Name(e.Key)
		if !ok {
			return codegen.NewCall(c.cfg.BuildAttributes, codegen.Verbatim{V: m}), nil
		}
		out = append(out, syntax.MapEntry{
			Key: syntax.String(normalizer.CamelCaseKey(name)),
			Val: e.Val,
		})
	}
	return c.toLiteralCode(out), nil
}

// mergeAttributes combines shorthand-derived attributes with the explicitly
// supplied attribute source. Both statically known maps merge at compile
// time with class-union semantics; any dynamic side defers to the runtime
// merge, which applies the very same rule.
func (c *compiler) mergeAttributes(a syntax.Map, b syntax.Value) (codegen.Expr, error) {
	bm, bIsMap := syntax.Unwrap(b).(syntax.Map)
	bAbsent := b == nil || syntax.Equal(syntax.Unwrap(b), syntax.Nil{}) || (bIsMap && len(bm) == 0)

	switch {
	case len(a) == 0 && bAbsent:
		return nil, nil
	case bIsMap:
		return c.compileAttributes(normalizer.MergeWithClass(a, bm))
	case bAbsent:
		return codegen.NewCall(c.cfg.BuildAttributes, codegen.Verbatim{V: a}), nil
	case len(a) == 0:
		return codegen.NewCall(c.cfg.BuildAttributes, codegen.Verbatim{V: syntax.Unwrap(b)}), nil
	default:
		merged := codegen.NewCall(c.cfg.MergeWithClass,
			codegen.Verbatim{V: a},
			codegen.Verbatim{V: syntax.Unwrap(b)},
		)
		return codegen.NewCall(c.cfg.BuildAttributes, merged), nil
	}
}

// toLiteralCode converts a value into constructor-level literal code: atoms
// become literals, vectors become array literals, maps with statically known
// keys become object literals, and anything dynamic passes through for the
// runtime to resolve.
func (c *compiler) toLiteralCode(v syntax.Value) codegen.Expr {
	switch t := syntax.Unwrap(v).(type) {
	case syntax.Nil, syntax.Bool, syntax.Int, syntax.Float, syntax.String, syntax.Keyword:
		return codegen.Lit{V: t}
	case syntax.Vector:
		elems := make([]codegen.Expr, len(t))
		for i, e := range t {
			elems[i] = c.toLiteralCode(e)
		}
		return codegen.ArrayLit{Elems: elems}
	case syntax.Map:
		entries := make([]codegen.ObjectEntry, 0, len(t))
		for _, e := range t {
			name, ok := syntax.Name(e.Key)
			if !ok {
				return codegen.NewCall(c.cfg.BuildAttributes, codegen.Verbatim{V: t})
			}
			entries = append(entries, codegen.ObjectEntry{Key: name, Val: c.toLiteralCode(e.Val)})
		}
		return codegen.ObjectLit{Entries: entries}
	default:
		return codegen.Verbatim{V: t}
	}
}
