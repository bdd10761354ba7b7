package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is the stable public identifier of a diagnostic variant, like "E034".
// Codes are unique across the catalog, never renumbered and never reused,
// even when the Go type carrying them is renamed. Retired variants leave
// gaps.
type Code string

// Num returns the numeric part of the code.
func (c Code) Num() (int, error) {
	s, ok := strings.CutPrefix(string(c), "E")
	if !ok {
		return 0, fmt.Errorf("malformed diagnostic code %q", string(c))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("malformed diagnostic code %q: %w", string(c), err)
	}
	return n, nil
}

func (c Code) String() string {
	return string(c)
}
