// Package counter counts term occurrences in a dataset file.
package counter

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyTerm is returned when asked to count the empty string.
var ErrEmptyTerm = errors.New("search term is empty")

// CountOccurrences returns how many times term appears in the file at path.
// Matching is case-insensitive and counts non-overlapping substrings, so
// "dev" also hits inside "developer".
func CountOccurrences(path, term string) (int, error) {
	if term == "" {
		return 0, ErrEmptyTerm
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Count(strings.ToLower(string(data)), strings.ToLower(term)), nil
}
