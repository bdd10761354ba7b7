package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into a single source buffer.
// Offsets count bytes, not runes.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// To derives the range reaching from the begin of s to the end of other.
// Callers guarantee that s starts no later than other ends.
func (s Span) To(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// Ident is a span covering a single name token. Only the location is stored;
// the name's text is recovered from the buffer when a message is rendered.
type Ident Span

// Span returns the covered range.
func (id Ident) Span() Span {
	return Span(id)
}
