package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFile_Resolve(t *testing.T) {
	content := []byte("let x;\nlet y = x;\n\nx();")
	f := NewFile("test.js", content)

	tests := []struct {
		name     string
		off      uint32
		expected LineCol
	}{
		{
			name:     "start of buffer",
			off:      0,
			expected: LineCol{Line: 1, Col: 1},
		},
		{
			name:     "middle of first line",
			off:      4,
			expected: LineCol{Line: 1, Col: 5},
		},
		{
			name:     "newline belongs to its line",
			off:      6,
			expected: LineCol{Line: 1, Col: 7},
		},
		{
			name:     "start of second line",
			off:      7,
			expected: LineCol{Line: 2, Col: 1},
		},
		{
			name:     "empty line",
			off:      18,
			expected: LineCol{Line: 3, Col: 1},
		},
		{
			name:     "last line",
			off:      19,
			expected: LineCol{Line: 4, Col: 1},
		},
		{
			name:     "end of buffer",
			off:      23,
			expected: LineCol{Line: 4, Col: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Resolve(tt.off); got != tt.expected {
				t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, got, tt.expected)
			}
		})
	}
}

func TestFile_ResolveEmptyBuffer(t *testing.T) {
	f := NewFile("empty.js", nil)
	if got := f.Resolve(0); got != (LineCol{Line: 1, Col: 1}) {
		t.Errorf("Resolve(0) = %+v, want line 1 col 1", got)
	}
	if n := f.NumLines(); n != 1 {
		t.Errorf("NumLines() = %d, want 1", n)
	}
}

func TestFile_LineSpan(t *testing.T) {
	f := NewFile("test.js", []byte("ab\ncdef\r\n\nlast"))

	tests := []struct {
		name     string
		line     uint32
		expected Span
		wantText string
	}{
		{
			name:     "first line",
			line:     1,
			expected: Span{Start: 0, End: 2},
			wantText: "ab",
		},
		{
			name:     "crlf line keeps cr out",
			line:     2,
			expected: Span{Start: 3, End: 7},
			wantText: "cdef",
		},
		{
			name:     "empty line",
			line:     3,
			expected: Span{Start: 9, End: 9},
			wantText: "",
		},
		{
			name:     "last line without newline",
			line:     4,
			expected: Span{Start: 10, End: 14},
			wantText: "last",
		},
		{
			name:     "line zero",
			line:     0,
			expected: Span{},
			wantText: "",
		},
		{
			name:     "line out of range",
			line:     9,
			expected: Span{},
			wantText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.LineSpan(tt.line)
			if got != tt.expected {
				t.Errorf("LineSpan(%d) = %+v, want %+v", tt.line, got, tt.expected)
			}
			if text := string(f.Text(got)); text != tt.wantText {
				t.Errorf("Text(LineSpan(%d)) = %q, want %q", tt.line, text, tt.wantText)
			}
		})
	}
}

func TestFile_TextClamps(t *testing.T) {
	f := NewFile("test.js", []byte("hello"))

	tests := []struct {
		name     string
		span     Span
		expected string
	}{
		{
			name:     "in range",
			span:     Span{Start: 1, End: 4},
			expected: "ell",
		},
		{
			name:     "end past buffer",
			span:     Span{Start: 3, End: 99},
			expected: "lo",
		},
		{
			name:     "fully past buffer",
			span:     Span{Start: 50, End: 60},
			expected: "",
		},
		{
			name:     "inverted span",
			span:     Span{Start: 4, End: 2},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(f.Text(tt.span)); got != tt.expected {
				t.Errorf("Text(%+v) = %q, want %q", tt.span, got, tt.expected)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.js")
	if err := os.WriteFile(path, []byte("var a;\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if string(f.Content) != "var a;\n" {
		t.Errorf("Content = %q, want %q", f.Content, "var a;\n")
	}
	if f.NumLines() != 2 {
		t.Errorf("NumLines() = %d, want 2", f.NumLines())
	}

	if _, err := Load(filepath.Join(dir, "missing.js")); err == nil {
		t.Error("Load of missing file returned nil error")
	}
}
