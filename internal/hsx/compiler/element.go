package compiler

import (
	"github.com/hsxlang/hsx/internal/hsx/codegen"
	"github.com/hsxlang/hsx/internal/hsx/normalizer"
	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

// compileElement lowers one hyperscript node according to its class.
func (c *compiler) compileElement(node syntax.Vector, sc *Scope) (codegen.Expr, error) {
	switch c.classify(node, sc) {
	case ClassAllLiteral:
		return c.compileLiteralElement(node, sc)
	case ClassLiteralTagAndAttributes:
		return c.compileWithAttrs(node, sc)
	case ClassLiteralTagNoAttributes, ClassLiteralTagInlineContent:
		// re-dispatch with an explicit empty attribute map; the former
		// attribute position becomes the first content item
		redone := make(syntax.Vector, 0, len(node)+1)
		redone = append(redone, node[0], syntax.Map{})
		redone = append(redone, node[1:]...)
		return c.compileElement(redone, sc)
	case ClassLiteralTagHintedAttributes:
		return c.compileHintedAttrs(node, sc)
	case ClassLiteralTag:
		return c.compileAmbiguous(node, sc)
	default:
		return c.compileDeferred(node, sc)
	}
}

// compileLiteralElement handles fully literal nodes. Evaluating a literal
// node at compile time is the identity on this value model, so the concrete
// tag/attrs/content triple is read off the node and lowered directly.
func (c *compiler) compileLiteralElement(node syntax.Vector, sc *Scope) (codegen.Expr, error) {
	tagExpr, tagAttrs, err := c.compileTag(node[0])
	if err != nil {
		return nil, err
	}
	var attrs syntax.Map
	content := node[1:]
	if len(node) > 1 {
		if m, ok := node[1].(syntax.Map); ok {
			attrs = m
			content = node[2:]
		}
	}
	if isFragment(node[0]) && len(attrs) > 0 {
		return nil, faultf(node, "fragment cannot carry attributes")
	}
	attrsExpr, err := c.compileAttributes(normalizer.MergeWithClass(tagAttrs, attrs))
	if err != nil {
		return nil, err
	}
	return c.emitElement(tagExpr, attrsExpr, content, sc)
}

func (c *compiler) compileWithAttrs(node syntax.Vector, sc *Scope) (codegen.Expr, error) {
	tagExpr, tagAttrs, err := c.compileTag(node[0])
	if err != nil {
		return nil, err
	}
	attrs := syntax.Unwrap(node[1]).(syntax.Map)
	if isFragment(node[0]) && len(attrs) > 0 {
		return nil, faultf(node, "fragment cannot carry attributes")
	}
	attrsExpr, err := c.compileAttributes(normalizer.MergeWithClass(tagAttrs, attrs))
	if err != nil {
		return nil, err
	}
	return c.emitElement(tagExpr, attrsExpr, node[2:], sc)
}

// compileHintedAttrs lowers a node whose attribute position is a dynamic
// expression asserted (or inferred) to be an attribute map. The expression
// is bound once so a side-effecting expression is not re-evaluated.
func (c *compiler) compileHintedAttrs(node syntax.Vector, sc *Scope) (codegen.Expr, error) {
	if isFragment(node[0]) {
		// the hint asserts the second position is an attribute map
		return nil, faultf(node, "fragment cannot carry attributes")
	}
	tagExpr, tagAttrs, err := c.compileTag(node[0])
	if err != nil {
		return nil, err
	}
	sym := c.gensym("attrs")
	merged, err := c.mergeAttributes(tagAttrs, syntax.Symbol(string(sym)))
	if err != nil {
		return nil, err
	}
	body, err := c.emitElement(tagExpr, merged, node[2:], sc)
	if err != nil {
		return nil, err
	}
	return codegen.Let{
		Bindings: []codegen.Binding{{Name: sym, Init: codegen.Verbatim{V: syntax.Unwrap(node[1])}}},
		Body:     body,
	}, nil
}

// compileAmbiguous lowers the literal-tag class: whether the second position
// is an attribute map or the first content item is only known at runtime, so
// the emitted code branches on a runtime map test. Content splicing in the
// non-map branch is unconditional, independent of whether the shorthand
// derived any attributes.
func (c *compiler) compileAmbiguous(node syntax.Vector, sc *Scope) (codegen.Expr, error) {
	tagExpr, tagAttrs, err := c.compileTag(node[0])
	if err != nil {
		return nil, err
	}
	sym := c.gensym("attrs")
	rest, err := c.compileContent(node[2:], sc)
	if err != nil {
		return nil, err
	}

	merged, err := c.mergeAttributes(tagAttrs, syntax.Symbol(string(sym)))
	if err != nil {
		return nil, err
	}
	whenMap, err := c.emitCompiled(tagExpr, merged, rest)
	if err != nil {
		return nil, err
	}

	plain, err := c.compileAttributes(tagAttrs)
	if err != nil {
		return nil, err
	}
	whenContent, err := c.emitCompiled(tagExpr, plain, append([]codegen.Expr{codegen.Sym(sym)}, rest...))
	if err != nil {
		return nil, err
	}

	return codegen.Let{
		Bindings: []codegen.Binding{{Name: sym, Init: codegen.Verbatim{V: syntax.Unwrap(node[1])}}},
		Body: codegen.If{
			Test: codegen.NewCall(c.cfg.MapCheck, codegen.Sym(sym)),
			Then: whenMap,
			Else: whenContent,
		},
	}, nil
}

// compileDeferred handles the default class: the tag itself is dynamic, so
// the whole node is handed to the runtime interpreter. Content positions
// that are themselves literal-tagged vectors are compiled first; everything
// else passes through unchanged.
func (c *compiler) compileDeferred(node syntax.Vector, sc *Scope) (codegen.Expr, error) {
	elems := make([]codegen.Expr, 0, len(node))
	elems = append(elems, codegen.Verbatim{V: node[0]})
	for _, item := range node[1:] {
		if vec, ok := item.(syntax.Vector); ok && len(vec) > 0 && syntax.IsLiteral(vec[0]) {
			ex, err := c.compileElement(vec, sc)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ex)
			continue
		}
		elems = append(elems, codegen.Verbatim{V: item})
	}
	return codegen.NewCall(c.cfg.Interpret, codegen.VecLit{Elems: elems}), nil
}

func isFragment(tag syntax.Value) bool {
	name, ok := syntax.Name(tag)
	return ok && (name == "*" || name == "<>")
}

// compileTag resolves the tag position. The fragment markers * and <> become
// the renderer's fragment constant; any other tag is split from its
// id/class shorthand.
func (c *compiler) compileTag(tag syntax.Value) (codegen.Expr, syntax.Map, error) {
	name, ok := syntax.Name(tag)
	if !ok {
		return nil, nil, faultf(tag, "tag must be a keyword or string")
	}
	if name == "*" || name == "<>" {
		return codegen.Sym(c.cfg.Fragment), nil, nil
	}
	base, id, classes, err := normalizer.ParseTag(name)
	if err != nil {
		return nil, nil, faultf(tag, "%v", err)
	}
	return codegen.Lit{V: syntax.String(base)}, normalizer.TagAttrs(id, classes), nil
}

// emitElement compiles content then emits the constructor call.
func (c *compiler) emitElement(tag codegen.Expr, attrs codegen.Expr, content syntax.Vector, sc *Scope) (codegen.Expr, error) {
	kids, err := c.compileContent(content, sc)
	if err != nil {
		return nil, err
	}
	return c.emitCompiled(tag, attrs, kids)
}

// emitCompiled builds createElement(tag, attrs, children). A nil attrs slot
// is emitted explicitly so child positions stay stable; an empty content
// array is omitted.
func (c *compiler) emitCompiled(tag codegen.Expr, attrs codegen.Expr, kids []codegen.Expr) (codegen.Expr, error) {
	if attrs == nil {
		attrs = codegen.Lit{V: syntax.Nil{}}
	}
	args := []codegen.Expr{tag, attrs}
	if len(kids) > 0 {
		args = append(args, codegen.ArrayLit{Elems: kids})
	}
	return codegen.NewCall(c.cfg.CreateElement, args...), nil
}

func (c *compiler) compileContent(content syntax.Vector, sc *Scope) ([]codegen.Expr, error) {
	if len(content) == 0 {
		return nil, nil
	}
	out := make([]codegen.Expr, 0, len(content))
	for _, item := range content {
		ex, err := c.compile(item, sc)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, nil
}
