package hsx

import (
	"fmt"
	"strings"

	"github.com/hsxlang/hsx/internal/hsx/codegen"
	"github.com/hsxlang/hsx/internal/hsx/compiler"
	"github.com/hsxlang/hsx/internal/hsx/interp"
	"github.com/hsxlang/hsx/internal/hsx/reader"
)

// Config re-exports the compiler options so callers configure the target
// runtime symbols without importing internal packages.
type Config = compiler.Config

// CompileString compiles a single hiccup form to expanded source.
func CompileString(src string, cfg Config) (string, error) {
	form, err := reader.ReadOne(src)
	if err != nil {
		return "", err
	}
	ex, err := compiler.Compile(form, cfg)
	if err != nil {
		return "", err
	}
	return codegen.Emit(ex), nil
}

// CompileFile compiles every top-level form in a .hsx source. The result is
// suitable for writing to "<path>.cljs" and checking in.
func CompileFile(path string, src []byte, cfg Config) ([]byte, error) {
	forms, err := reader.ReadString(path, string(src))
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, form := range forms {
		ex, err := compiler.Compile(form, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		b.WriteString(codegen.Emit(ex))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// Render interprets a fully static hiccup source straight to HTML. Dynamic
// positions are an error here; use CompileString for those.
func Render(src string) (string, error) {
	form, err := reader.ReadOne(src)
	if err != nil {
		return "", err
	}
	return interp.Render(form)
}
