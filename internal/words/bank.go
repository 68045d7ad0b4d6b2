// Package words provides the fixed word bank that hangman rounds draw from.
package words

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrEmptyBank is returned when a bank would contain no words.
	ErrEmptyBank = errors.New("words: empty bank")

	// ErrInvalidWord is returned for entries that are not purely A-Z after upper-casing.
	ErrInvalidWord = errors.New("words: invalid word")
)

// Source is the random source used to pick words. A math/rand/v2 *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

var defaultWords = []string{
	"PYTHON", "TKINTER", "HANGMAN", "PROGRAMMING", "COMPUTER",
	"ASTROLOGY", "PYRAMID", "VORTEX", "ZENITH", "JAZZ",
	"KALEIDOSCOPE", "EQUINOX", "QUIXOTIC", "FANTASY", "VANGUARD",
	"SYMPHONY", "EXPLORATION", "MIRAGE", "HORIZON", "MYSTIQUE",
	"CHIMERA", "ODYSSEY", "TRIANGLE", "FUSION",
	"GIRAFFE", "LABYRINTH", "VIRUS", "ALCHEMY", "ECLIPSE",
	"OASIS", "FANTASIA", "NEBULA", "GARGANTUAN", "COSMOS",
}

// Bank is an immutable, ordered list of uppercase words.
type Bank struct {
	words []string
}

// Default returns the built-in word bank.
func Default() *Bank {
	return &Bank{words: slices.Clone(defaultWords)}
}

// New builds a bank from the given words. Entries are upper-cased and must
// consist only of the letters A-Z. Duplicates are kept.
func New(words []string) (*Bank, error) {
	if len(words) == 0 {
		return nil, ErrEmptyBank
	}

	normalized := make([]string, 0, len(words))
	for i, w := range words {
		upper := strings.ToUpper(w)
		if !IsWord(upper) {
			return nil, fmt.Errorf("%w at index %d: %q", ErrInvalidWord, i, w)
		}
		normalized = append(normalized, upper)
	}

	return &Bank{words: normalized}, nil
}

// IsWord reports whether s is a non-empty string of uppercase A-Z letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// Pick returns a word chosen uniformly at random using src.
func (b *Bank) Pick(src Source) string {
	return b.words[src.IntN(len(b.words))]
}

// Len returns the number of entries, duplicates included.
func (b *Bank) Len() int {
	return len(b.words)
}

// Words returns a copy of the bank's entries in order.
func (b *Bank) Words() []string {
	return slices.Clone(b.words)
}

// Contains reports whether w is in the bank. Matching is case-insensitive.
func (b *Bank) Contains(w string) bool {
	return slices.Contains(b.words, strings.ToUpper(w))
}
