package dawg

import "fmt"

// validateWord checks that w is a non-empty sequence of A-Z characters.
func validateWord(w string) error {
	if w == "" {
		return newError(InvalidInput, "word list contains an empty word")
	}
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'A' || c > 'Z' {
			return newError(InvalidInput, fmt.Sprintf("word %q has non A-Z character %q at position %d", w, c, i))
		}
	}
	return nil
}

// ValidateWords checks that words is strictly sorted, duplicate-free, and
// every word is a non-empty A-Z sequence. It performs the same eager check
// the Trie Builder's Insert would do incrementally, useful for a caller
// (e.g. the CLI) that wants to fail fast before spending any work.
func ValidateWords(words []string) error {
	prev := ""
	for i, w := range words {
		if err := validateWord(w); err != nil {
			return err
		}
		if i > 0 && w <= prev {
			if w == prev {
				return newError(InvalidInput, fmt.Sprintf("duplicate word %q", w))
			}
			return newError(InvalidInput, fmt.Sprintf("word list not sorted: %q follows %q", w, prev))
		}
		prev = w
	}
	return nil
}
