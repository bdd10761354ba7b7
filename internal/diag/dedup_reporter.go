package diag

type dedupKey struct {
	code  Code
	start uint32
	end   uint32
}

// DedupReporter wraps another Reporter and suppresses diagnostics that
// repeat an already-seen code at the same primary range. Severity is
// fixed per code, so the key carries only the code and the range.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that forwards each unique
// diagnostic to next exactly once.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(d Diag) {
	if r == nil {
		return
	}
	key := dedupKey{code: d.Code()}
	var b MessageBuilder
	d.Message(&b)
	if parts := b.Parts(); len(parts) > 0 {
		if sp, ok := partSpan(parts[0]); ok {
			key.start, key.end = sp.Start, sp.End
		}
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}
