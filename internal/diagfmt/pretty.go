package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	runewidth "github.com/mattn/go-runewidth"

	"flint/internal/diag"
	"flint/internal/source"
)

const snippetIndent = "  "

// Pretty renders diagnostics for humans, one block per item:
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//	  <source line>
//	          ^~~~~
//
// Items print in bag order; callers sort the bag first. Notes follow their
// diagnostic when ShowNotes is set, each with its own heading and snippet.
func Pretty(w io.Writer, bag *diag.Bag, f *source.File, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, f, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, f *source.File, opts PrettyOpts) error {
	if err := heading(w, f, d.Primary, d.Severity, d.Code, d.Message, opts); err != nil {
		return err
	}
	if err := snippet(w, f, d.Primary, d.Severity, opts); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, note := range d.Notes {
		if err := heading(w, f, note.Span, diag.SevNote, d.Code, note.Msg, opts); err != nil {
			return err
		}
		if err := snippet(w, f, note.Span, diag.SevNote, opts); err != nil {
			return err
		}
	}
	return nil
}

func heading(w io.Writer, f *source.File, sp source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) error {
	loc := f.Resolve(sp.Start)
	label := severityColor(sev, opts.Color).Sprintf("%s %s", sev, code)
	_, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", f.Path, loc.Line, loc.Col, label, msg)
	return err
}

// snippet prints the marked source line, an underline beneath it, and up to
// opts.Context lines of surrounding code.
func snippet(w io.Writer, f *source.File, sp source.Span, sev diag.Severity, opts PrettyOpts) error {
	if len(f.Content) == 0 {
		return nil
	}
	line := f.Resolve(sp.Start).Line

	var context uint32
	if opts.Context > 0 {
		context = uint32(opts.Context)
	}
	from := uint32(1)
	if line > context {
		from = line - context
	}
	to := line + context
	if last := uint32(f.NumLines()); to > last {
		to = last
	}

	for n := from; n <= to; n++ {
		if err := snippetLine(w, string(f.Text(f.LineSpan(n))), opts); err != nil {
			return err
		}
		if n == line {
			if err := underline(w, f, sp, line, sev, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func snippetLine(w io.Writer, text string, opts PrettyOpts) error {
	if opts.Width > 0 {
		text = runewidth.Truncate(text, int(opts.Width), "...")
	}
	_, err := fmt.Fprintf(w, "%s%s\n", snippetIndent, text)
	return err
}

// underline draws the caret marker under the span's bytes on its first line.
// Multi-line spans mark up to the end of that line only.
func underline(w io.Writer, f *source.File, sp source.Span, line uint32, sev diag.Severity, opts PrettyOpts) error {
	lineSpan := f.LineSpan(line)
	prefix := string(f.Text(source.Span{Start: lineSpan.Start, End: sp.Start}))

	markEnd := sp.End
	if markEnd > lineSpan.End {
		markEnd = lineSpan.End
	}
	if markEnd < sp.Start {
		markEnd = sp.Start
	}
	marked := string(f.Text(source.Span{Start: sp.Start, End: markEnd}))

	pad := runewidth.StringWidth(prefix)
	if opts.Width > 0 && pad >= int(opts.Width) {
		// The marked range fell past the truncation point.
		return nil
	}
	carets := "^"
	if width := runewidth.StringWidth(marked); width > 1 {
		carets += strings.Repeat("~", width-1)
	}
	if opts.Width > 0 && pad+len(carets) > int(opts.Width) {
		carets = carets[:int(opts.Width)-pad]
	}
	mark := severityColor(sev, opts.Color).Sprint(carets)
	_, err := fmt.Fprintf(w, "%s%s%s\n", snippetIndent, strings.Repeat(" ", pad), mark)
	return err
}

func severityColor(sev diag.Severity, enabled bool) *color.Color {
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan, color.Bold)
	}
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
