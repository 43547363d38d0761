package compiler

import (
	"github.com/hsxlang/hsx/internal/hsx/codegen"
	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

// formRule rewrites one recognized control form, recompiling only the tail
// positions whose value becomes the form's value.
type formRule func(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error)

// formTable is populated in init: the rules recurse through compile back
// into compileForm, so a declaration-time initializer would be a cycle.
var formTable map[syntax.Symbol]formRule

func init() {
	formTable = map[syntax.Symbol]formRule{
		"if":        compileBranching,
		"if-not":    compileBranching,
		"if-some":   compileBindingBranching,
		"when":      compileBranching,
		"when-not":  compileBranching,
		"cond":      compileCond,
		"condp":     compileCondp,
		"case":      compileCase,
		"do":        compileTailOnly,
		"let":       compileBindingForm,
		"let*":      compileBindingForm,
		"letfn*":    compileBindingForm,
		"when-some": compileBindingForm,
		"for":       compileFor,
	}
}

// compileForm descends into a fixed set of standard control forms so that
// lowering reaches their result positions. Anything unrecognized defers to
// the runtime interpreter unless the caller marked it inline or the oracle
// proves it directly renderable.
func (c *compiler) compileForm(v syntax.Value, sc *Scope) (codegen.Expr, error) {
	if form, ok := syntax.Unwrap(v).(syntax.List); ok && len(form) > 0 {
		if head, ok := form[0].(syntax.Symbol); ok {
			if rule, ok := formTable[head]; ok {
				return rule(c, form, sc)
			}
		}
	}
	if syntax.Hint(v).Inline {
		return codegen.Verbatim{V: syntax.Unwrap(v)}, nil
	}
	if IsPrimitiveRenderable(c.inferTypes(v, sc)) {
		return codegen.Verbatim{V: syntax.Unwrap(v)}, nil
	}
	return codegen.NewCall(c.cfg.Interpret, codegen.Verbatim{V: syntax.Unwrap(v)}), nil
}

// rebuild re-emits the form with the items at recompiled positions lowered
// and everything else verbatim.
func (c *compiler) rebuild(form syntax.List, sc *Scope, recompile func(i int) bool) (codegen.Expr, error) {
	head := form[0].(syntax.Symbol)
	args := make([]codegen.Expr, 0, len(form)-1)
	for i, item := range form[1:] {
		pos := i + 1
		if recompile(pos) {
			ex, err := c.compile(item, sc)
			if err != nil {
				return nil, err
			}
			args = append(args, ex)
			continue
		}
		args = append(args, codegen.Verbatim{V: item})
	}
	return codegen.NewCall(string(head), args...), nil
}

// compileBranching recompiles every body branch after the test (or, for
// if-some, the binding vector); the test itself is never touched.
func compileBranching(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error) {
	return c.rebuild(form, sc, func(i int) bool { return i >= 2 })
}

// compileBindingBranching is compileBranching for forms whose first argument
// is a binding vector rather than a bare test.
func compileBindingBranching(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error) {
	if len(form) > 1 {
		sc = scopeWithBinders(sc, form[1])
	}
	return c.rebuild(form, sc, func(i int) bool { return i >= 2 })
}

// compileCond recompiles every result expression, leaving tests alone. A
// dangling unpaired test passes through untouched.
func compileCond(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error) {
	last := len(form) - 1
	return c.rebuild(form, sc, func(i int) bool {
		if i%2 == 1 && i == last {
			return false
		}
		return i%2 == 0
	})
}

// compileCondp recompiles clause results; a trailing single-argument clause
// is the default result and is recompiled as well.
func compileCondp(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error) {
	last := len(form) - 1
	return c.rebuild(form, sc, func(i int) bool {
		if i < 3 {
			return false
		}
		if i == last && (len(form)-3)%2 == 1 {
			return true
		}
		return (i-3)%2 == 1
	})
}

// compileCase recompiles every clause result and the fallback when present;
// the dispatched-on value and the clause tests are never recompiled.
func compileCase(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error) {
	last := len(form) - 1
	return c.rebuild(form, sc, func(i int) bool {
		if i < 2 {
			return false
		}
		if i == last && (len(form)-2)%2 == 1 {
			return true
		}
		return (i-2)%2 == 1
	})
}

// compileTailOnly recompiles only the final expression; preceding body
// expressions are evaluated for effect and their values discarded.
func compileTailOnly(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error) {
	last := len(form) - 1
	return c.rebuild(form, sc, func(i int) bool { return i == last && i >= 1 })
}

// compileBindingForm is compileTailOnly with the binding vector's hinted
// symbols added to the lexical scope first.
func compileBindingForm(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error) {
	if len(form) > 1 {
		sc = scopeWithBinders(sc, form[1])
	}
	last := len(form) - 1
	return c.rebuild(form, sc, func(i int) bool { return i == last && i >= 2 })
}

// compileFor recompiles the single body expression, then wraps the whole
// sequence in an eager vec so content receives a finite, materialized
// collection instead of a lazy one.
func compileFor(c *compiler, form syntax.List, sc *Scope) (codegen.Expr, error) {
	if len(form) > 1 {
		sc = scopeWithBinders(sc, form[1])
	}
	last := len(form) - 1
	inner, err := c.rebuild(form, sc, func(i int) bool { return i == last && i >= 2 })
	if err != nil {
		return nil, err
	}
	return codegen.NewCall("vec", inner), nil
}

// scopeWithBinders extends sc with every binder symbol of a binding vector,
// using ^Type hints where present and shadowing with unknown otherwise.
func scopeWithBinders(sc *Scope, bindings syntax.Value) *Scope {
	vec, ok := syntax.Unwrap(bindings).(syntax.Vector)
	if !ok {
		return sc
	}
	for i := 0; i+1 < len(vec); i += 2 {
		binder := vec[i]
		name, ok := syntax.Unwrap(binder).(syntax.Symbol)
		if !ok {
			continue
		}
		if h := syntax.Hint(binder); h.Type != "" {
			if t, ok := TypeNamed(h.Type); ok {
				sc = sc.Bind(name, t)
				continue
			}
		}
		sc = sc.Shadow(name)
	}
	return sc
}
