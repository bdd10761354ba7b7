package diag

import (
	"flint/internal/source"
)

// MessagePart is one formatted unit of a diagnostic: the opening error or
// warning, or a follow-up note. Args hold the evidence values the template's
// placeholders index; the first argument carries the part's location.
type MessagePart struct {
	Severity Severity
	Template string
	Args     []any
}

// MessageBuilder collects the parts a variant's Message method describes.
// The first call must be Error or Warning; Note appends secondary parts.
// The zero value is ready to use.
type MessageBuilder struct {
	parts []MessagePart
}

func (b *MessageBuilder) Error(template string, args ...any) *MessageBuilder {
	return b.add(SevError, template, args)
}

func (b *MessageBuilder) Warning(template string, args ...any) *MessageBuilder {
	return b.add(SevWarning, template, args)
}

func (b *MessageBuilder) Note(template string, args ...any) *MessageBuilder {
	return b.add(SevNote, template, args)
}

func (b *MessageBuilder) add(sev Severity, template string, args []any) *MessageBuilder {
	b.parts = append(b.parts, MessagePart{Severity: sev, Template: template, Args: args})
	return b
}

// Parts returns the collected parts in declaration order.
func (b *MessageBuilder) Parts() []MessagePart {
	return b.parts
}

// partSpan extracts a part's location: the span of its first span-typed
// argument. Catalog convention puts it at Args[0]; scanning keeps rendering
// total either way.
func partSpan(p MessagePart) (source.Span, bool) {
	for _, a := range p.Args {
		switch v := a.(type) {
		case source.Span:
			return v, true
		case source.Ident:
			return v.Span(), true
		}
	}
	return source.Span{}, false
}
