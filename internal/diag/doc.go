// Package diag defines the diagnostic catalog and the machinery that
// turns typed findings into displayable messages.
//
// # Purpose
//
//   - Define one Go type per diagnostic the analyzer can produce, each
//     carrying the source evidence (spans, identifiers, statement kinds,
//     characters) needed to explain the finding.
//   - Assign every type a stable public code (E001..E201) and keep the
//     catalog closed: codes are never reused or renumbered, only retired.
//   - Offer Reporter implementations that decouple emission from storage,
//     and a Renderer that expands message templates into final text.
//
// # Scope
//
// Package diag performs no IO and no terminal formatting. Pretty and
// JSON output live in internal/diagfmt; localized message tables live in
// internal/translate.
//
// # Data model
//
// Diag is the interface every catalog entry implements. A value of a
// concrete diagnostic type is the diagnostic: constructing it is the
// emission site's whole job, and everything else (severity, code,
// message wording) derives from the type.
//
// Messages are built from templates with positional {0}..{9} references
// into the diagnostic's evidence fields. Spans and identifiers
// interpolate as the source text they cover, statement kinds as prose
// ({1:headlinese} and {1:singular} select the form), and characters
// verbatim. "{{" escapes a literal brace. The severity of the first
// message part is the diagnostic's severity; every further part is a
// note.
//
// Diagnostic is the rendered record: Severity, Code, final Message
// text, the Primary span and zero or more Notes. It is plain data and
// serializes deterministically.
//
// # Emitting diagnostics
//
// Producers hand typed values to a Reporter:
//
//	r.Report(diag.UnclosedStringLiteral{StringLiteral: span})
//
// Nop drops everything, MultiReporter fans out, BufferingReporter
// queues for speculative parses, DedupReporter suppresses repeats and
// BagReporter renders into a Bag for sorted, capped collection.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics into pretty terminal output
//     or JSON.
//   - internal/translate: supplies Translator implementations that map
//     message templates to localized text before expansion.
//   - cmd/flint: lists the catalog and demonstrates rendering.
//
// Keep the catalog deterministic: a given diagnostic value must render
// to the same Diagnostic regardless of process, platform or iteration
// order.
package diag
