package diag

import "testing"

func TestStatementKind_Forms(t *testing.T) {
	tests := []struct {
		name       string
		kind       StatementKind
		headlinese string
		singular   string
	}{
		{"do-while", StmtDoWhileLoop, "do-while loop", "a do-while loop"},
		{"for", StmtForLoop, "for loop", "a for loop"},
		{"if", StmtIfStatement, "if statement", "an if statement"},
		{"while", StmtWhileLoop, "while loop", "a while loop"},
		{"with", StmtWithStatement, "with statement", "a with statement"},
		{"labelled", StmtLabelledStatement, "labelled statement", "a labelled statement"},
		{"unknown", StatementKind(99), "statement", "a statement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Headlinese(); got != tt.headlinese {
				t.Errorf("Headlinese() = %q, want %q", got, tt.headlinese)
			}
			if got := tt.kind.Singular(); got != tt.singular {
				t.Errorf("Singular() = %q, want %q", got, tt.singular)
			}
		})
	}
}
