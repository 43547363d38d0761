// Package normalizer turns tag shorthand and markup attribute names into the
// shapes the element constructor expects. The compile-time and runtime merge
// paths both go through MergeWithClass so the two can never drift apart.
package normalizer

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

var keyClass = syntax.Keyword("class")

// ParseTag splits "div#id.a.b" shorthand into its tag name, id and class
// tokens. The tag part may be empty shorthand like "#id" or ".cls", which
// defaults to div.
func ParseTag(tag string) (name, id string, classes []string, err error) {
	if tag == "" {
		return "", "", nil, fmt.Errorf("empty tag")
	}
	rest := tag
	cut := strings.IndexAny(rest, "#.")
	if cut == -1 {
		return rest, "", nil, nil
	}
	name = rest[:cut]
	if name == "" {
		name = "div"
	}
	rest = rest[cut:]
	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, "#.")
		if end == -1 {
			end = len(rest)
		}
		token := rest[:end]
		rest = rest[end:]
		if token == "" {
			return "", "", nil, fmt.Errorf("malformed tag shorthand %q", tag)
		}
		switch marker {
		case '#':
			if id != "" {
				return "", "", nil, fmt.Errorf("tag %q has more than one id", tag)
			}
			id = token
		case '.':
			classes = append(classes, token)
		}
	}
	return name, id, classes, nil
}

// TagAttrs builds the attribute map derived from shorthand id/class tokens.
func TagAttrs(id string, classes []string) syntax.Map {
	var m syntax.Map
	if id != "" {
		m = append(m, syntax.MapEntry{Key: syntax.Keyword("id"), Val: syntax.String(id)})
	}
	if len(classes) > 0 {
		m = append(m, syntax.MapEntry{Key: keyClass, Val: syntax.String(strings.Join(classes, " "))})
	}
	return m
}

// MergeWithClass merges b over a. All keys are right-biased except class,
// whose value becomes the join of a's tokens followed by b's.
func MergeWithClass(a, b syntax.Map) syntax.Map {
	out := make(syntax.Map, 0, len(a)+len(b))
	out = append(out, a...)
	for _, e := range b {
		if syntax.Equal(e.Key, keyClass) {
			if prev, ok := out.Get(keyClass); ok {
				out = out.Assoc(keyClass, joinClassValues(prev, e.Val))
				continue
			}
		}
		out = out.Assoc(e.Key, e.Val)
	}
	return out
}

func joinClassValues(a, b syntax.Value) syntax.Value {
	at, aok := ClassTokens(a)
	bt, bok := ClassTokens(b)
	if aok && bok {
		return syntax.String(strings.Join(append(at, bt...), " "))
	}
	// one side dynamic: keep both, callers join at runtime
	return syntax.Vector{a, b}
}

// ClassTokens flattens a static class value into its tokens. It reports
// false when any part is dynamic.
func ClassTokens(v syntax.Value) ([]string, bool) {
	switch t := syntax.Unwrap(v).(type) {
	case nil, syntax.Nil:
		return nil, true
	case syntax.String:
		return strings.Fields(string(t)), true
	case syntax.Keyword:
		return []string{string(t)}, true
	case syntax.Vector:
		var out []string
		for _, e := range t {
			ts, ok := ClassTokens(e)
			if !ok {
				return nil, false
			}
			out = append(out, ts...)
		}
		return out, true
	default:
		return nil, false
	}
}

// TranslateName maps a markup attribute name to the DOM name the constructor
// expects. React-style aliases normalize to their real attribute names;
// data-* and aria-* pass through untouched.
func TranslateName(name string) string {
	switch name {
	case "className":
		return "class"
	case "htmlFor":
		return "for"
	case "charSet":
		return "charset"
	case "tabIndex":
		return "tabindex"
	case "readOnly":
		return "readonly"
	case "colSpan":
		return "colspan"
	case "rowSpan":
		return "rowspan"
	case "maxLength":
		return "maxlength"
	case "autoComplete":
		return "autocomplete"
	case "autoFocus":
		return "autofocus"
	case "encType":
		return "enctype"
	case "formAction":
		return "formaction"
	case "crossOrigin":
		return "crossorigin"
	case "noValidate":
		return "novalidate"
	case "spellCheck":
		return "spellcheck"
	case "srcSet":
		return "srcset"
	case "useMap":
		return "usemap"
	case "accessKey":
		return "accesskey"
	case "contentEditable":
		return "contenteditable"
	default:
		return name
	}
}

var segmentCaser = cases.Title(language.English)

// CamelCaseKey normalizes a style-property name to the camelCase convention
// of the host's style objects: "background-color" becomes "backgroundColor".
// Custom properties ("--main-color") are left alone.
func CamelCaseKey(name string) string {
	if strings.HasPrefix(name, "--") || !strings.Contains(name, "-") {
		return name
	}
	parts := strings.Split(name, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(segmentCaser.String(p))
	}
	return b.String()
}
