// Package reader parses the EDN-like hiccup surface syntax into syntax
// values. It covers the subset templates need: vectors, maps, lists, atoms,
// and ^:attrs / ^:inline / ^Type metadata.
package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/hsxlang/hsx/internal/hsx/syntax"
)

var def = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},
	{Name: "Keyword", Pattern: `:[^\s,;()\[\]{}^"]+`},
	{Name: "Symbol", Pattern: `[^\s,;()\[\]{}^":0-9][^\s,;()\[\]{}^"]*`},
	{Name: "Punct", Pattern: `[\[\]{}()^]`},
	{Name: "Whitespace", Pattern: `[\s,]+`},
})

type document struct {
	Forms []*form `parser:"@@*"`
}

type form struct {
	Hints []*hint  `parser:"('^' @@)*"`
	Vec   *vecLit  `parser:"( @@"`
	Map   *mapLit  `parser:"| @@"`
	List  *listLit `parser:"| @@"`
	Str   *string  `parser:"| @String"`
	Num   *string  `parser:"| @Number"`
	Kw    *string  `parser:"| @Keyword"`
	Sym   *string  `parser:"| @Symbol )"`
}

type hint struct {
	Kw  *string `parser:"@Keyword"`
	Typ *string `parser:"| @Symbol"`
}

type vecLit struct {
	Items []*form `parser:"'[' @@* ']'"`
}

type mapLit struct {
	Items []*form `parser:"'{' @@* '}'"`
}

type listLit struct {
	Items []*form `parser:"'(' @@* ')'"`
}

var parser = participle.MustBuild[document](
	participle.Lexer(def),
	participle.Elide("Whitespace", "Comment"),
)

// ReadString parses every top-level form in src. The name is used in error
// positions, typically a file path.
func ReadString(name, src string) ([]syntax.Value, error) {
	doc, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	out := make([]syntax.Value, 0, len(doc.Forms))
	for _, f := range doc.Forms {
		v, err := convert(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadOne parses exactly one form.
func ReadOne(src string) (syntax.Value, error) {
	forms, err := ReadString("", src)
	if err != nil {
		return nil, err
	}
	if len(forms) != 1 {
		return nil, fmt.Errorf("read: expected one form, got %d", len(forms))
	}
	return forms[0], nil
}

func convert(f *form) (syntax.Value, error) {
	v, err := convertBase(f)
	if err != nil {
		return nil, err
	}
	if len(f.Hints) == 0 {
		return v, nil
	}
	var h syntax.Hints
	for _, ht := range f.Hints {
		switch {
		case ht.Kw != nil:
			switch kw := strings.TrimPrefix(*ht.Kw, ":"); kw {
			case "attrs":
				h.Attrs = true
			case "inline":
				h.Inline = true
			default:
				return nil, fmt.Errorf("read: unknown hint :%s", kw)
			}
		case ht.Typ != nil:
			h.Type = *ht.Typ
		}
	}
	return syntax.Annotated{Form: v, Hints: h}, nil
}

func convertBase(f *form) (syntax.Value, error) {
	switch {
	case f.Vec != nil:
		items, err := convertAll(f.Vec.Items)
		if err != nil {
			return nil, err
		}
		return syntax.Vector(items), nil
	case f.Map != nil:
		items, err := convertAll(f.Map.Items)
		if err != nil {
			return nil, err
		}
		if len(items)%2 != 0 {
			return nil, fmt.Errorf("read: map literal with odd number of forms")
		}
		m := make(syntax.Map, 0, len(items)/2)
		for i := 0; i < len(items); i += 2 {
			m = append(m, syntax.MapEntry{Key: items[i], Val: items[i+1]})
		}
		return m, nil
	case f.List != nil:
		items, err := convertAll(f.List.Items)
		if err != nil {
			return nil, err
		}
		return syntax.List(items), nil
	case f.Str != nil:
		s, err := strconv.Unquote(*f.Str)
		if err != nil {
			return nil, fmt.Errorf("read: bad string %s: %w", *f.Str, err)
		}
		return syntax.String(s), nil
	case f.Num != nil:
		if strings.ContainsAny(*f.Num, ".") {
			n, err := strconv.ParseFloat(*f.Num, 64)
			if err != nil {
				return nil, fmt.Errorf("read: bad number %s: %w", *f.Num, err)
			}
			return syntax.Float(n), nil
		}
		n, err := strconv.ParseInt(*f.Num, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("read: bad number %s: %w", *f.Num, err)
		}
		return syntax.Int(n), nil
	case f.Kw != nil:
		return syntax.Keyword(strings.TrimPrefix(*f.Kw, ":")), nil
	case f.Sym != nil:
		switch *f.Sym {
		case "nil":
			return syntax.Nil{}, nil
		case "true":
			return syntax.Bool(true), nil
		case "false":
			return syntax.Bool(false), nil
		default:
			return syntax.Symbol(*f.Sym), nil
		}
	default:
		return nil, fmt.Errorf("read: empty form")
	}
}

func convertAll(fs []*form) ([]syntax.Value, error) {
	out := make([]syntax.Value, 0, len(fs))
	for _, f := range fs {
		v, err := convert(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
