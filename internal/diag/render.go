package diag

import (
	"strconv"
	"strings"

	"flint/internal/source"
)

// Translator maps a built-in message template to its localized form.
// Implementations return the input unchanged when they have no translation;
// a missing translation is never an error.
type Translator interface {
	Translate(template string) string
}

// Renderer expands catalog variants into Diagnostics against one buffer.
// A nil Tr leaves messages in the built-in text.
type Renderer struct {
	Src []byte
	Tr  Translator
}

// Render expands every message part of d. Rendering is deterministic and
// total: unknown placeholders stay literal, out-of-buffer spans render as
// empty text. The variant value is never mutated.
func (r *Renderer) Render(d Diag) Diagnostic {
	var b MessageBuilder
	d.Message(&b)

	out := Diagnostic{Code: d.Code()}
	for i, p := range b.Parts() {
		msg := r.expand(p)
		sp, _ := partSpan(p)
		if i == 0 {
			out.Severity = p.Severity
			out.Message = msg
			out.Primary = sp
		} else {
			out.Notes = append(out.Notes, Note{Span: sp, Msg: msg})
		}
	}
	return out
}

// RenderAll renders a batch in order.
func (r *Renderer) RenderAll(ds []Diag) []Diagnostic {
	if len(ds) == 0 {
		return nil
	}
	out := make([]Diagnostic, 0, len(ds))
	for _, d := range ds {
		out = append(out, r.Render(d))
	}
	return out
}

// expand runs the placeholder scanner over one part's template.
//
// Grammar: "{{" is a literal "{"; "{N}" substitutes argument N; "{N:dir}"
// applies a directive (headlinese, singular) to a kind argument. Everything
// else, including a lone "}", is copied verbatim.
func (r *Renderer) expand(p MessagePart) string {
	template := p.Template
	if r.Tr != nil {
		template = r.Tr.Translate(template)
	}

	var out strings.Builder
	out.Grow(len(template) + 16)
	for i := 0; i < len(template); {
		c := template[i]
		if c != '{' {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(template) && template[i+1] == '{' {
			out.WriteByte('{')
			i += 2
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			out.WriteByte(c)
			i++
			continue
		}
		if s, ok := r.expandRef(template[i+1:i+end], p.Args); ok {
			out.WriteString(s)
		} else {
			out.WriteString(template[i : i+end+1])
		}
		i += end + 1
	}
	return out.String()
}

func (r *Renderer) expandRef(ref string, args []any) (string, bool) {
	idxText, directive, _ := strings.Cut(ref, ":")
	idx, err := strconv.Atoi(idxText)
	if err != nil || idx < 0 || idx >= len(args) {
		return "", false
	}
	switch v := args[idx].(type) {
	case source.Span:
		return r.spanText(v), true
	case source.Ident:
		return r.spanText(v.Span()), true
	case StatementKind:
		if directive == "singular" {
			return v.Singular(), true
		}
		return v.Headlinese(), true
	case byte:
		return string(v), true
	}
	return "", false
}

func (r *Renderer) spanText(sp source.Span) string {
	n := uint32(len(r.Src))
	if sp.Start > n {
		sp.Start = n
	}
	if sp.End > n {
		sp.End = n
	}
	if sp.End < sp.Start {
		sp.End = sp.Start
	}
	return string(r.Src[sp.Start:sp.End])
}
