package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"flint/internal/diag"
	"flint/internal/source"
)

func renderInto(bag *diag.Bag, f *source.File, ds ...diag.Diag) {
	r := &diag.Renderer{Src: f.Content}
	rep := &diag.BagReporter{R: r, Bag: bag}
	for _, d := range ds {
		rep.Report(d)
	}
}

func TestPrettyHeadingAndUnderline(t *testing.T) {
	content := []byte("let x = \"unterminated\nlet y = 2;\n")
	f := source.NewFile("test.js", content)

	bag := diag.NewBag(10)
	renderInto(bag, f, diag.UnclosedStringLiteral{
		StringLiteral: source.Span{Start: 8, End: 21},
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, f, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "test.js:1:9: error E040: unclosed string literal") {
		t.Errorf("Expected heading in output, got:\n%s", output)
	}
	if !strings.Contains(output, "  let x = \"unterminated\n") {
		t.Errorf("Expected source snippet in output, got:\n%s", output)
	}
	// indent (2) plus the width of `let x = ` (8), then one caret per byte
	// of `"unterminated` (13)
	if !strings.Contains(output, "\n          ^~~~~~~~~~~~~\n") {
		t.Errorf("Expected caret underline in output, got:\n%s", output)
	}
}

func TestPrettyNotes(t *testing.T) {
	content := []byte("let abc = 1;\nlet abc = 2;\n")
	f := source.NewFile("test.js", content)

	bag := diag.NewBag(10)
	renderInto(bag, f, diag.RedeclarationOfVariable{
		Redeclaration:       source.Ident{Start: 17, End: 20},
		OriginalDeclaration: source.Ident{Start: 4, End: 7},
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, f, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "test.js:2:5: error E034: redeclaration of variable: abc") {
		t.Errorf("Expected primary heading, got:\n%s", output)
	}
	if !strings.Contains(output, "test.js:1:5: note E034: variable already declared here") {
		t.Errorf("Expected note heading, got:\n%s", output)
	}

	buf.Reset()
	if err := Pretty(&buf, bag, f, PrettyOpts{ShowNotes: false}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	if strings.Contains(buf.String(), "note E034") {
		t.Errorf("Expected notes to be hidden, got:\n%s", buf.String())
	}
}

func TestPrettyContextLines(t *testing.T) {
	content := []byte("let abc = 1;\nlet abc = 2;\nlet ok = 3;\n")
	f := source.NewFile("test.js", content)

	bag := diag.NewBag(10)
	renderInto(bag, f, diag.RedeclarationOfVariable{
		Redeclaration:       source.Ident{Start: 17, End: 20},
		OriginalDeclaration: source.Ident{Start: 4, End: 7},
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, f, PrettyOpts{Context: 1}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "  let abc = 1;\n  let abc = 2;\n") {
		t.Errorf("Expected the line before the mark, got:\n%s", output)
	}
	if !strings.Contains(output, "  let ok = 3;\n") {
		t.Errorf("Expected the line after the mark, got:\n%s", output)
	}
}

func TestPrettyColor(t *testing.T) {
	content := []byte("let x = \"oops\n")
	f := source.NewFile("test.js", content)

	bag := diag.NewBag(10)
	renderInto(bag, f, diag.UnclosedStringLiteral{
		StringLiteral: source.Span{Start: 8, End: 13},
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, f, PrettyOpts{Color: true}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[31;1m") {
		t.Errorf("Expected red bold escape for errors, got:\n%q", buf.String())
	}

	buf.Reset()
	if err := Pretty(&buf, bag, f, PrettyOpts{Color: false}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Expected no escapes without color, got:\n%q", buf.String())
	}
}

func TestPrettyWidth(t *testing.T) {
	content := []byte("let aaaaaaaaaaaaaaaaaaaaaaaa = \"x\n")
	f := source.NewFile("test.js", content)

	// mark starts past the truncation point
	bag := diag.NewBag(10)
	renderInto(bag, f, diag.UnclosedStringLiteral{
		StringLiteral: source.Span{Start: 31, End: 33},
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, f, PrettyOpts{Width: 20}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "...\n") {
		t.Errorf("Expected truncated snippet line, got:\n%s", output)
	}
	if strings.Contains(output, "^") {
		t.Errorf("Expected no underline past the truncation point, got:\n%s", output)
	}
}

func TestPrettyWidthClampsUnderline(t *testing.T) {
	content := []byte("let aaaaaaaaaaaaaaaaaaaaaaaa = 1;\n")
	f := source.NewFile("test.js", content)

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     "E054",
		Message:  "unexpected token",
		Primary:  source.Span{Start: 4, End: 28},
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, f, PrettyOpts{Width: 12}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	// indent (2) plus pad (4), then carets cut at the width limit
	if !strings.Contains(buf.String(), "\n      ^~~~~~~~\n") {
		t.Errorf("Expected clamped underline, got:\n%s", buf.String())
	}
}

func TestPrettyMultilineSpanMarksFirstLine(t *testing.T) {
	content := []byte("let o = {\nx: 1\n};\n")
	f := source.NewFile("test.js", content)

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     "E054",
		Message:  "unexpected token",
		Primary:  source.Span{Start: 8, End: 15},
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, f, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n          ^\n") {
		t.Errorf("Expected mark clamped to the first line, got:\n%s", buf.String())
	}
}

func TestPrettyEmptyFile(t *testing.T) {
	f := source.NewFile("empty.js", nil)

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     "E041",
		Message:  "unclosed template",
		Primary:  source.Span{},
	})

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, f, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty() error: %v", err)
	}
	want := "empty.js:1:1: error E041: unclosed template\n"
	if buf.String() != want {
		t.Errorf("Pretty() = %q, want %q", buf.String(), want)
	}
}
