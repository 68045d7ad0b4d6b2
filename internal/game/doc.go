// Package game implements the hangman round state machine.
//
// The main type is Game, which holds the secret word, the letters guessed so
// far and the number of wrong attempts used. A round starts InProgress and
// ends Won or Lost; once over it rejects guesses until Reset is called.
//
// # Basic Usage
//
//	g := game.New("CAT")
//	res, err := g.SubmitGuess("c")
//	if err != nil {
//	    // errors.Is(err, game.ErrInvalidInput), game.ErrDuplicateGuess, game.ErrGameOver
//	}
//	fmt.Println(res.Masked) // "C _ _"
//
// # Deterministic Testing
//
// Word selection takes an explicit random source, so rounds can be replayed
// with a fixed seed:
//
//	rng := randutil.New(42)
//	g := game.NewFromBank(words.Default(), rng)
//	g.Reset(words.Default(), rng)
package game
