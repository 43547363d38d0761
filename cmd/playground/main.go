package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: playground [flags]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Watches ./playground/*.hsx and re-runs the hsx generator on changes.")
	}
	interval := flag.Duration("interval", 300*time.Millisecond, "watch polling interval")
	render := flag.Bool("render", false, "render to HTML instead of compiling")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := watchAndGenerate(*interval, *render); err != nil {
		fatal(err)
	}
}

func watchAndGenerate(interval time.Duration, render bool) error {
	root, err := findModuleRoot(".")
	if err != nil {
		return err
	}
	dir := filepath.Join(root, "playground")

	var lastHash [32]byte
	var have bool

	for {
		h, err := hashTemplates(dir)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "playground: read error: %v\n", err)
			time.Sleep(interval)
			continue
		}
		if !have || h != lastHash {
			lastHash = h
			have = true

			args := []string{"run", "./cmd/hsx"}
			if render {
				args = append(args, "-render")
			}
			args = append(args, "./playground")
			cmd := exec.Command("go", args...)
			cmd.Dir = root
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "playground: hsx generate failed: %v\n", err)
			}
		}

		time.Sleep(interval)
	}
}

// hashTemplates digests every .hsx source in dir, names included, so both
// edits and adds/removes trigger a regenerate.
func hashTemplates(dir string) ([32]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return [32]byte{}, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".hsx") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return [32]byte{}, err
		}
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write(src)
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

func findModuleRoot(start string) (string, error) {
	d, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
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

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
