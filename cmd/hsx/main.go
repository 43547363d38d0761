package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hsxlang/hsx/internal/hsx/interp"
	"github.com/hsxlang/hsx/internal/hsx/outfile"
	"github.com/hsxlang/hsx/internal/hsx/reader"
	"github.com/hsxlang/hsx/pkg/hsx"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: hsx [flags] [paths...]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Generates one *.hsx.cljs file next to each *.hsx source.")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Paths behave like Go patterns:")
		_, _ = fmt.Fprintln(os.Stderr, "  - ./...        recurse from cwd")
		_, _ = fmt.Fprintln(os.Stderr, "  - ./dir        only that directory (non-recursive)")
		_, _ = fmt.Fprintln(os.Stderr, "  - ./dir/...    recurse from that directory")
		_, _ = fmt.Fprintln(os.Stderr, "  - ./file.hsx   only that file")
		flag.PrintDefaults()
	}
	rootFlag := flag.String("root", "", "module root (defaults to auto-detected go.mod parent from cwd)")
	dirFlag := flag.String("dir", "", "if set, only generate for this directory (non-recursive). Useful with go:generate.")
	configFlag := flag.String("config", "", "YAML file with compiler options (target symbols, known types)")
	renderFlag := flag.Bool("render", false, "interpret fully static templates to *.hsx.html instead of compiling")
	verboseFlag := flag.Bool("v", false, "log each generated file")
	flag.Parse()

	logLevel := slog.LevelWarn
	if *verboseFlag {
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fatal(err)
	}
	root := *rootFlag
	if root == "" {
		root, err = findModuleRoot(cwd)
		if err != nil {
			fatal(err)
		}
	}
	root, err = filepath.Abs(root)
	if err != nil {
		fatal(err)
	}

	gen := &generator{cfg: cfg, render: *renderFlag, log: log}

	if strings.TrimSpace(*dirFlag) != "" && flag.NArg() != 0 {
		fatal(fmt.Errorf("hsx: cannot use -dir with positional paths"))
	}

	if strings.TrimSpace(*dirFlag) != "" {
		dir := *dirFlag
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cwd, dir)
		}
		dir, err = filepath.Abs(dir)
		if err != nil {
			fatal(err)
		}
		if err := gen.generateDir(dir); err != nil {
			fatal(err)
		}
		return
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		// no paths: generate for the whole module
		patterns = []string{filepath.Join(root, "...")}
	}

	paths, err := collectHSXPaths(cwd, patterns)
	if err != nil {
		fatal(err)
	}
	if len(paths) == 0 {
		return
	}

	sort.Strings(paths)
	var allErr error
	for _, pth := range paths {
		if err := gen.generateFile(pth); err != nil {
			allErr = errors.Join(allErr, err)
		}
	}
	if allErr != nil {
		fatal(allErr)
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func loadConfig(path string) (hsx.Config, error) {
	var cfg hsx.Config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func findModuleRoot(start string) (string, error) {
	d := start
	for {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", fmt.Errorf("could not find go.mod above %s", start)
		}
		d = parent
	}
}

type generator struct {
	cfg    hsx.Config
	render bool
	log    *slog.Logger
}

func (gn *generator) generateDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".hsx") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil
	}
	sort.Strings(paths)

	for _, pth := range paths {
		if err := gn.generateFile(pth); err != nil {
			return err
		}
	}
	return nil
}

func (gn *generator) generateFile(pth string) error {
	b, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	if gn.render {
		return gn.renderFile(pth, b)
	}
	src, err := hsx.CompileFile(pth, b, gn.cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", pth, err)
	}
	outPath := pth + ".cljs"
	if err := outfile.WriteGeneratedFile(outPath, src); err != nil {
		return err
	}
	gn.log.Info("generated", "out", outPath)
	return nil
}

func (gn *generator) renderFile(pth string, src []byte) error {
	forms, err := reader.ReadString(pth, string(src))
	if err != nil {
		return err
	}
	var out strings.Builder
	for _, form := range forms {
		html, err := interp.Render(form)
		if err != nil {
			return fmt.Errorf("%s: %w", pth, err)
		}
		out.WriteString(html)
		out.WriteString("\n")
	}
	outPath := pth + ".html"
	if err := os.WriteFile(outPath, []byte(out.String()), 0o644); err != nil {
		return err
	}
	gn.log.Info("rendered", "out", outPath)
	return nil
}

func collectHSXPaths(cwd string, patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string

	add := func(p string) error {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(cwd, abs)
		}
		abs, err := filepath.Abs(abs)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			out = append(out, abs)
		}
		return nil
	}

	for _, raw := range patterns {
		pat := strings.TrimSpace(raw)
		if pat == "" {
			continue
		}

		// Recursive pattern: <dir>/...
		if strings.HasSuffix(pat, "/...") || pat == "./..." || pat == "..." {
			base := strings.TrimSuffix(pat, "...")
			base = strings.TrimSuffix(base, "/")
			if base == "" {
				base = "."
			}
			dir := base
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(cwd, dir)
			}
			dir, err := filepath.Abs(dir)
			if err != nil {
				return nil, err
			}
			if err := walkHSX(dir, func(p string) error { return add(p) }); err != nil {
				return nil, err
			}
			continue
		}

		// Non-recursive: file.hsx or directory.
		target := pat
		if !filepath.IsAbs(target) {
			target = filepath.Join(cwd, target)
		}
		target, err := filepath.Abs(target)
		if err != nil {
			return nil, err
		}
		st, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if st.IsDir() {
			entries, err := os.ReadDir(target)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if strings.HasSuffix(e.Name(), ".hsx") {
					if err := add(filepath.Join(target, e.Name())); err != nil {
						return nil, err
					}
				}
			}
			continue
		}
		if !strings.HasSuffix(target, ".hsx") {
			return nil, fmt.Errorf("hsx: not a .hsx file: %s", target)
		}
		if err := add(target); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func walkHSX(root string, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			name := de.Name()
			if name == "vendor" || name == "node_modules" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(de.Name(), ".hsx") {
			return add(path)
		}
		return nil
	})
}
