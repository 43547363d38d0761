package hsx

import (
	"strings"
	"testing"
)

func TestCompileString(t *testing.T) {
	got, err := CompileString(`[:div#app.shell [:h1 "title"]]`, Config{})
	if err != nil {
		t.Fatal(err)
	}
	want := `(hsx.runtime/create-element "div" (js-obj "id" "app" "class" "shell") (cljs.core/array (hsx.runtime/create-element "h1" nil (cljs.core/array "title"))))`
	if got != want {
		t.Errorf("CompileString:\n got  %s\n want %s", got, want)
	}
}

func TestCompileStringCustomConfig(t *testing.T) {
	got, err := CompileString(`[:br]`, Config{CreateElement: "h"})
	if err != nil {
		t.Fatal(err)
	}
	if want := `(h "br" nil)`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCompileFile(t *testing.T) {
	src := []byte("[:p \"a\"]\n[:p \"b\"]\n")
	out, err := CompileFile("page.hsx", src, Config{})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 compiled forms, got %d: %q", len(lines), out)
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, `(hsx.runtime/create-element "p"`) {
			t.Errorf("unexpected form %s", l)
		}
	}
}

func TestCompileFileReportsPath(t *testing.T) {
	_, err := CompileFile("bad.hsx", []byte("[]"), Config{})
	if err == nil || !strings.Contains(err.Error(), "bad.hsx") {
		t.Errorf("expected error naming the file, got %v", err)
	}
}

func TestRender(t *testing.T) {
	got, err := Render(`[:ul.menu [:li "a"] [:li "b"]]`)
	if err != nil {
		t.Fatal(err)
	}
	if want := `<ul class="menu"><li>a</li><li>b</li></ul>`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
