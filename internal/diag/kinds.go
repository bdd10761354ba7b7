package diag

// StatementKind classifies the statement a diagnostic talks about. Kind
// evidence renders through the headlinese and singular template directives
// instead of source text.
type StatementKind uint8

const (
	StmtDoWhileLoop StatementKind = iota
	StmtForLoop
	StmtIfStatement
	StmtWhileLoop
	StmtWithStatement
	StmtLabelledStatement
)

// Headlinese returns the terse, article-free label.
func (k StatementKind) Headlinese() string {
	switch k {
	case StmtDoWhileLoop:
		return "do-while loop"
	case StmtForLoop:
		return "for loop"
	case StmtIfStatement:
		return "if statement"
	case StmtWhileLoop:
		return "while loop"
	case StmtWithStatement:
		return "with statement"
	case StmtLabelledStatement:
		return "labelled statement"
	}
	return "statement"
}

// Singular returns the article-bearing form used mid-sentence.
func (k StatementKind) Singular() string {
	switch k {
	case StmtDoWhileLoop:
		return "a do-while loop"
	case StmtForLoop:
		return "a for loop"
	case StmtIfStatement:
		return "an if statement"
	case StmtWhileLoop:
		return "a while loop"
	case StmtWithStatement:
		return "a with statement"
	case StmtLabelledStatement:
		return "a labelled statement"
	}
	return "a statement"
}
