package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int8  // extra source lines shown around the marked line
	Width     uint8 // maximum printed line width, 0 = unlimited
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col to every location
	Max              int  // cap on emitted diagnostics, 0 = all
	IncludeNotes     bool
}
