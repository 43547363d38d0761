// Package interp is the runtime collaborator: it walks values the compiler
// could not fully classify and constructs elements dynamically. Construction
// goes through gomponents, which is also the renderer the compiled output
// targets in Go-hosted builds.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/hsxlang/hsx/internal/hsx/normalizer"
	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

// IsElement reports whether v is an already-constructed element, which
// passes through interpretation untouched.
func IsElement(v any) bool {
	_, ok := v.(g.Node)
	return ok
}

// Interpret renders any value the compiler might have deferred: raw hiccup
// vectors, syntax atoms, Go primitives, sequences, and already-constructed
// nodes.
func Interpret(v any) (g.Node, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case g.Node:
		return t, nil
	case string:
		return g.Text(t), nil
	case int:
		return g.Text(strconv.Itoa(t)), nil
	case int64:
		return g.Text(strconv.FormatInt(t, 10)), nil
	case float64:
		return g.Text(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case bool:
		// booleans render as nothing, so `and`-style guards compose
		return nil, nil
	case []any:
		return interpretSeq(t)
	case syntax.Annotated:
		return Interpret(t.Form)
	case syntax.Nil:
		return nil, nil
	case syntax.Bool:
		return nil, nil
	case syntax.String:
		return g.Text(string(t)), nil
	case syntax.Keyword:
		return g.Text(string(t)), nil
	case syntax.Int:
		return g.Text(strconv.FormatInt(int64(t), 10)), nil
	case syntax.Float:
		return g.Text(strconv.FormatFloat(float64(t), 'g', -1, 64)), nil
	case syntax.Vector:
		return interpretElement(t)
	case syntax.List:
		// a bare sequence of children renders as a fragment
		nodes := make([]any, len(t))
		for i, e := range t {
			nodes[i] = e
		}
		return interpretSeq(nodes)
	default:
		return nil, fmt.Errorf("interpret: cannot render %T (%v)", v, v)
	}
}

func interpretSeq(items []any) (g.Node, error) {
	var group g.Group
	for _, item := range items {
		n, err := Interpret(item)
		if err != nil {
			return nil, err
		}
		if n != nil {
			group = append(group, n)
		}
	}
	return group, nil
}

func interpretElement(node syntax.Vector) (g.Node, error) {
	if len(node) == 0 {
		return nil, fmt.Errorf("interpret: empty vector is not a valid element")
	}
	name, ok := syntax.Name(node[0])
	if !ok {
		return nil, fmt.Errorf("interpret: tag must be a keyword or string, got %s", node[0])
	}

	var attrs syntax.Map
	content := node[1:]
	if len(node) > 1 {
		if m, ok := syntax.Unwrap(node[1]).(syntax.Map); ok {
			attrs = m
			content = node[2:]
		}
	}

	kids := make([]g.Node, 0, len(content))
	for _, item := range content {
		n, err := Interpret(item)
		if err != nil {
			return nil, err
		}
		if n != nil {
			kids = append(kids, n)
		}
	}

	if name == "*" || name == "<>" {
		if len(attrs) > 0 {
			return nil, fmt.Errorf("interpret: fragment cannot carry attributes")
		}
		return g.Group(kids), nil
	}

	tag, id, classes, err := normalizer.ParseTag(name)
	if err != nil {
		return nil, fmt.Errorf("interpret: %w", err)
	}
	merged := normalizer.MergeWithClass(normalizer.TagAttrs(id, classes), attrs)
	attrNodes, err := BuildAttributes(merged)
	if err != nil {
		return nil, err
	}
	return g.El(tag, append(attrNodes, kids...)...), nil
}

// BuildAttributes coerces a value into attribute nodes, applying the same
// name translation and class joining the compiler applies statically.
func BuildAttributes(v any) ([]g.Node, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case syntax.Nil:
		return nil, nil
	case syntax.Map:
		return buildAttrMap(t)
	default:
		return nil, fmt.Errorf("interpret: attributes must be a map, got %T", v)
	}
}

func buildAttrMap(m syntax.Map) ([]g.Node, error) {
	out := make([]g.Node, 0, len(m))
	for _, e := range m {
		name, ok := syntax.Name(e.Key)
		if !ok {
			return nil, fmt.Errorf("interpret: attribute name must be a keyword or string, got %s", e.Key)
		}
		name = normalizer.TranslateName(name)
		switch name {
		case "class":
			tokens, ok := normalizer.ClassTokens(e.Val)
			if !ok {
				return nil, fmt.Errorf("interpret: cannot join class value %s", e.Val)
			}
			if len(tokens) > 0 {
				out = append(out, g.Attr("class", strings.Join(tokens, " ")))
			}
		case "style":
			style, err := styleString(e.Val)
			if err != nil {
				return nil, err
			}
			if style != "" {
				out = append(out, g.Attr("style", style))
			}
		default:
			n, err := buildAttr(name, e.Val)
			if err != nil {
				return nil, err
			}
			if n != nil {
				out = append(out, n)
			}
		}
	}
	return out, nil
}

func buildAttr(name string, v syntax.Value) (g.Node, error) {
	switch t := syntax.Unwrap(v).(type) {
	case syntax.Nil:
		return nil, nil
	case syntax.Bool:
		if t {
			return g.Attr(name), nil
		}
		return nil, nil
	case syntax.String:
		return g.Attr(name, string(t)), nil
	case syntax.Keyword:
		return g.Attr(name, string(t)), nil
	case syntax.Int:
		return g.Attr(name, strconv.FormatInt(int64(t), 10)), nil
	case syntax.Float:
		return g.Attr(name, strconv.FormatFloat(float64(t), 'g', -1, 64)), nil
	default:
		return nil, fmt.Errorf("interpret: cannot render attribute %s with value %s", name, v)
	}
}

// styleString renders a style map to inline CSS text, properties in source
// order.
func styleString(v syntax.Value) (string, error) {
	m, ok := syntax.Unwrap(v).(syntax.Map)
	if !ok {
		return "", fmt.Errorf("interpret: style must be a map, got %s", v)
	}
	var b strings.Builder
	for _, e := range m {
		name, ok := syntax.Name(e.Key)
		if !ok {
			return "", fmt.Errorf("interpret: style property must be a keyword or string, got %s", e.Key)
		}
		val, err := styleValue(e.Val)
		if err != nil {
			return "", err
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(val)
		b.WriteString("; ")
	}
	return strings.TrimSuffix(b.String(), " "), nil
}

func styleValue(v syntax.Value) (string, error) {
	switch t := syntax.Unwrap(v).(type) {
	case syntax.String:
		return string(t), nil
	case syntax.Keyword:
		return string(t), nil
	case syntax.Int:
		return strconv.FormatInt(int64(t), 10), nil
	case syntax.Float:
		return strconv.FormatFloat(float64(t), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("interpret: cannot render style value %s", v)
	}
}

// Render interprets v and renders the resulting element tree to HTML.
func Render(v any) (string, error) {
	n, err := Interpret(v)
	if err != nil {
		return "", err
	}
	if n == nil {
		return "", nil
	}
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return b.String(), nil
}
