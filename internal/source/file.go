package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

// File holds one analyzed buffer together with its line index.
type File struct {
	Path    string
	Content []byte
	lines   []uint32 // byte offset of each line start; lines[0] == 0
}

// LineCol is a human-readable position: 1-based line and 1-based byte column.
type LineCol struct {
	Line uint32
	Col  uint32
}

// NewFile wraps an in-memory buffer. The content is stored as given, never
// copied or normalized, so spans index the exact bytes the producer saw.
func NewFile(path string, content []byte) *File {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("file too large: %w", err))
	}
	return &File{
		Path:    normalizePath(path),
		Content: content,
		lines:   buildLineIndex(content),
	}
}

// Load reads a file from disk.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFile(path, content), nil
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 1, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)+1)
		}
	}
	return out
}

// NumLines reports how many lines the buffer has. A trailing line break
// starts a final empty line, like editors count.
func (f *File) NumLines() int {
	return len(f.lines)
}

// Resolve converts a byte offset into a line/column position. Offsets past
// the end of the buffer resolve onto the last line.
func (f *File) Resolve(off uint32) LineCol {
	line := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > off })
	return LineCol{Line: uint32(line), Col: off - f.lines[line-1] + 1}
}

// ResolveSpan resolves both ends of a span.
func (f *File) ResolveSpan(sp Span) (start, end LineCol) {
	return f.Resolve(sp.Start), f.Resolve(sp.End)
}

// LineSpan returns the span of the given 1-based line without its trailing
// line break. Out-of-range lines yield the empty span.
func (f *File) LineSpan(line uint32) Span {
	if line == 0 || int(line) > len(f.lines) {
		return Span{}
	}
	start := f.lines[line-1]
	var end uint32
	if int(line) < len(f.lines) {
		end = f.lines[line] - 1
		if end > start && f.Content[end-1] == '\r' {
			end--
		}
	} else {
		end = uint32(len(f.Content))
	}
	return Span{Start: start, End: end}
}

// Text returns the bytes a span covers, clamped to the buffer.
func (f *File) Text(sp Span) []byte {
	n := uint32(len(f.Content))
	if sp.Start > n {
		sp.Start = n
	}
	if sp.End > n {
		sp.End = n
	}
	if sp.End < sp.Start {
		sp.End = sp.Start
	}
	return f.Content[sp.Start:sp.End]
}

func normalizePath(p string) string {
	// one canonical form in cross-platform output
	return filepath.ToSlash(filepath.Clean(p))
}
