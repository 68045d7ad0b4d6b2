package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/hangman/internal/words"
)

// MaxAttempts is the number of wrong guesses that ends a round.
const MaxAttempts = 6

// Placeholder is shown in the masked word for letters not yet guessed.
const Placeholder = '_'

// GuessResult describes the round after an accepted guess.
type GuessResult struct {
	Letter    rune
	Correct   bool
	State     State
	Masked    string
	Remaining int
}

// Game holds the state of a single hangman round.
type Game struct {
	secret       string
	guessed      map[rune]bool
	attemptsUsed int
	state        State
}

// New starts a round with the given secret word. The word is upper-cased.
func New(secret string) *Game {
	g := &Game{}
	g.start(strings.ToUpper(secret))
	return g
}

// NewFromBank starts a round with a word picked from bank using src.
func NewFromBank(bank *words.Bank, src words.Source) *Game {
	return New(bank.Pick(src))
}

// Reset discards the current round and starts a new one with a freshly picked word.
func (g *Game) Reset(bank *words.Bank, src words.Source) {
	g.start(bank.Pick(src))
}

func (g *Game) start(secret string) {
	g.secret = secret
	g.guessed = make(map[rune]bool)
	g.attemptsUsed = 0
	g.state = InProgress
}

// SubmitGuess evaluates a single-letter guess. On error the round is unchanged.
func (g *Game) SubmitGuess(input string) (GuessResult, error) {
	if g.state.IsTerminal() {
		return GuessResult{}, fmt.Errorf("%w: %s", ErrGameOver, g.state)
	}

	letter, ok := parseLetter(input)
	if !ok {
		return GuessResult{}, fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}

	if g.guessed[letter] {
		return GuessResult{}, fmt.Errorf("%w: %c", ErrDuplicateGuess, letter)
	}

	g.guessed[letter] = true

	correct := strings.ContainsRune(g.secret, letter)
	if correct {
		if len(g.MissingLetters()) == 0 {
			g.state = Won
		}
	} else {
		g.attemptsUsed++
		if g.attemptsUsed == MaxAttempts {
			g.state = Lost
		}
	}

	return GuessResult{
		Letter:    letter,
		Correct:   correct,
		State:     g.state,
		Masked:    g.Masked(),
		Remaining: g.Remaining(),
	}, nil
}

// parseLetter accepts exactly one ASCII letter, normalized to uppercase.
func parseLetter(input string) (rune, bool) {
	if len(input) != 1 {
		return 0, false
	}
	c := input[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return rune(c), true
	case c >= 'a' && c <= 'z':
		return rune(c - 'a' + 'A'), true
	default:
		return 0, false
	}
}

// MissingLetters returns the distinct letters of the secret not yet guessed, sorted.
func (g *Game) MissingLetters() []rune {
	var missing []rune
	for _, r := range g.secret {
		if !g.guessed[r] && !slices.Contains(missing, r) {
			missing = append(missing, r)
		}
	}
	slices.Sort(missing)
	return missing
}

// Masked renders the secret with unguessed letters replaced by the placeholder,
// separated by single spaces.
func (g *Game) Masked() string {
	var b strings.Builder
	for i, r := range g.secret {
		if i > 0 {
			b.WriteByte(' ')
		}
		if g.guessed[r] {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// Guessed returns the guessed letters in alphabetical order.
func (g *Game) Guessed() []rune {
	letters := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

func (g *Game) State() State      { return g.state }
func (g *Game) Secret() string    { return g.secret }
func (g *Game) AttemptsUsed() int { return g.attemptsUsed }
func (g *Game) IsOver() bool      { return g.state.IsTerminal() }

// Remaining returns how many wrong guesses are left before the round is lost.
func (g *Game) Remaining() int {
	return MaxAttempts - g.attemptsUsed
}
