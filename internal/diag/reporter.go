package diag

// Reporter receives diagnostics from analysis passes as they are
// emitted. Implementations decide what happens to each one: render it,
// buffer it, forward it or drop it. Reporters are not safe for
// concurrent use unless documented otherwise.
type Reporter interface {
	Report(d Diag)
}

type nopReporter struct{}

func (nopReporter) Report(Diag) {}

// Nop is the shared reporter that drops every diagnostic. It keeps no
// state, so a single value serves the whole process.
var Nop Reporter = nopReporter{}

// MultiReporter fans each diagnostic out to every wrapped reporter in
// registration order.
type MultiReporter struct {
	reporters []Reporter
}

// NewMultiReporter builds a fan-out over rs. Nil entries are skipped at
// report time.
func NewMultiReporter(rs ...Reporter) *MultiReporter {
	return &MultiReporter{reporters: rs}
}

func (m *MultiReporter) Report(d Diag) {
	if m == nil {
		return
	}
	for _, r := range m.reporters {
		if r != nil {
			r.Report(d)
		}
	}
}

// BufferingReporter queues diagnostics instead of handling them,
// preserving arrival order. Speculative parse attempts report into a
// buffer first, then either flush it into the real reporter or drop it.
type BufferingReporter struct {
	buffered []Diag
}

func (b *BufferingReporter) Report(d Diag) {
	b.buffered = append(b.buffered, d)
}

// Empty reports whether nothing has been buffered.
func (b *BufferingReporter) Empty() bool {
	return len(b.buffered) == 0
}

// Flush replays every buffered diagnostic into r in arrival order and
// clears the buffer.
func (b *BufferingReporter) Flush(r Reporter) {
	for _, d := range b.buffered {
		r.Report(d)
	}
	b.buffered = nil
}

// Drop discards the buffer without reporting anything.
func (b *BufferingReporter) Drop() {
	b.buffered = nil
}

// BagReporter renders each diagnostic with R and collects the result in
// Bag. A nil Bag makes it behave like Nop.
type BagReporter struct {
	R   *Renderer
	Bag *Bag
}

func (r BagReporter) Report(d Diag) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(r.R.Render(d))
}
