package game

import "errors"

var (
	// ErrInvalidInput indicates the guess was not exactly one letter A-Z.
	ErrInvalidInput = errors.New("game: invalid input")

	// ErrDuplicateGuess indicates the letter was already guessed this round.
	ErrDuplicateGuess = errors.New("game: letter already guessed")

	// ErrGameOver indicates a guess was submitted after the round ended.
	ErrGameOver = errors.New("game: round is over")
)
