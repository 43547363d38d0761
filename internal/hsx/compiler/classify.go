package compiler

import "github.com/hsxlang/hsx/internal/hsx/syntax"

// Class names the lowering strategy for one hyperscript node.
type Class int

const (
	// ClassAllLiteral: every element is literal; the node evaluates at
	// compile time.
	ClassAllLiteral Class = iota
	// ClassLiteralTagAndAttributes: literal tag, literal map in the
	// attribute position.
	ClassLiteralTagAndAttributes
	// ClassLiteralTagNoAttributes: literal tag, attribute position provably
	// not an attribute map.
	ClassLiteralTagNoAttributes
	// ClassLiteralTagHintedAttributes: literal tag, attribute position
	// asserted or inferred to be an attribute map.
	ClassLiteralTagHintedAttributes
	// ClassLiteralTagInlineContent: literal tag, attribute position carries
	// the inline hint.
	ClassLiteralTagInlineContent
	// ClassLiteralTag: literal tag, attribute position undecidable until
	// runtime.
	ClassLiteralTag
	// ClassDefault: dynamic tag; the whole node defers to the interpreter.
	ClassDefault
)

func (c Class) String() string {
	switch c {
	case ClassAllLiteral:
		return "all-literal"
	case ClassLiteralTagAndAttributes:
		return "literal-tag-and-attributes"
	case ClassLiteralTagNoAttributes:
		return "literal-tag-and-no-attributes"
	case ClassLiteralTagHintedAttributes:
		return "literal-tag-and-hinted-attributes"
	case ClassLiteralTagInlineContent:
		return "literal-tag-and-inline-content"
	case ClassLiteralTag:
		return "literal-tag"
	default:
		return "default"
	}
}

// classify picks the lowering strategy for node. Pure; first match wins, and
// the order encodes priority, not just partition.
func (c *compiler) classify(node syntax.Vector, sc *Scope) Class {
	if syntax.IsLiteral(node) {
		return ClassAllLiteral
	}
	if len(node) == 0 || !syntax.IsLiteral(node[0]) {
		return ClassDefault
	}
	// not all-literal with a literal tag implies at least one more element
	attrs := node[1]
	if _, ok := syntax.Unwrap(attrs).(syntax.Map); ok {
		return ClassLiteralTagAndAttributes
	}
	if provablyNotAttrs(attrs) {
		return ClassLiteralTagNoAttributes
	}
	if syntax.Hint(attrs).Attrs {
		return ClassLiteralTagHintedAttributes
	}
	if ts := c.inferTypes(attrs, sc); len(ts) == 1 && ts[0] == TypeMap {
		return ClassLiteralTagHintedAttributes
	}
	if syntax.Hint(attrs).Inline {
		return ClassLiteralTagInlineContent
	}
	return ClassLiteralTag
}

// provablyNotAttrs reports whether the attribute-position value cannot be an
// attribute map: it is a for form, an already-evaluated non-map literal, or
// it carries a type hint incompatible with a map.
func provablyNotAttrs(v syntax.Value) bool {
	inner := syntax.Unwrap(v)
	if form, ok := inner.(syntax.List); ok && len(form) > 0 {
		if head, ok := form[0].(syntax.Symbol); ok && head == "for" {
			return true
		}
	}
	if syntax.IsLiteral(inner) {
		// literal maps were matched one step earlier
		return true
	}
	if h := syntax.Hint(v); h.Type != "" {
		if t, ok := TypeNamed(h.Type); ok && t != TypeMap {
			return true
		}
	}
	return false
}
