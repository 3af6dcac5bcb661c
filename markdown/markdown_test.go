package markdown

import (
	"strings"
	"testing"
)

func render(t *testing.T, src string, opts Options) string {
	t.Helper()
	out, err := Render([]byte(src), opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(out)
}

func TestRenderBasics(t *testing.T) {
	out := render(t, "# Title\n\nsome *emphasis* here\n", Options{})
	if !strings.Contains(out, `<h1 id="title">Title</h1>`) {
		t.Errorf("missing heading with auto id in %q", out)
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Errorf("missing emphasis in %q", out)
	}
}

func TestRenderGFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	out := render(t, src, Options{})
	if !strings.Contains(out, "<table>") {
		t.Errorf("gfm table not rendered in %q", out)
	}
}

func TestRenderStrikethrough(t *testing.T) {
	out := render(t, "~~gone~~\n", Options{})
	if !strings.Contains(out, "<del>gone</del>") {
		t.Errorf("strikethrough not rendered in %q", out)
	}
}

func TestRenderHardWraps(t *testing.T) {
	src := "line one\nline two\n"
	soft := render(t, src, Options{})
	if strings.Contains(soft, "<br") {
		t.Errorf("soft wrap rendered a <br> in %q", soft)
	}
	hard := render(t, src, Options{HardWraps: true})
	if !strings.Contains(hard, "<br") {
		t.Errorf("hard wrap missing <br> in %q", hard)
	}
}

func TestRenderRawHTML(t *testing.T) {
	src := "<div>raw</div>\n"
	safe := render(t, src, Options{})
	if strings.Contains(safe, "<div>raw</div>") {
		t.Errorf("raw html leaked through safe mode: %q", safe)
	}
	unsafe := render(t, src, Options{Unsafe: true})
	if !strings.Contains(unsafe, "<div>raw</div>") {
		t.Errorf("raw html missing in unsafe mode: %q", unsafe)
	}
}
