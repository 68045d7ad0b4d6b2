// Package session owns the live hangman round for one player and keeps
// in-memory tallies across rounds. Nothing here is persisted.
package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/words"
)

// StickerColors are the colours a celebration sticker can take.
var StickerColors = []string{"#FFDDC1", "#FFABAB", "#FFC3A0"}

// Stats holds tallies for finished rounds in this session.
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Streak     int
	BestStreak int
}

// Session is exclusively owned by a single UI and is not safe for concurrent use.
type Session struct {
	bank   *words.Bank
	src    words.Source
	clock  quartz.Clock
	logger *log.Logger

	game       *game.Game
	round      int
	startedAt  time.Time
	finishedAt time.Time
	stats      Stats
}

// New creates a session and starts its first round.
func New(bank *words.Bank, src words.Source, clock quartz.Clock, logger *log.Logger) *Session {
	s := &Session{
		bank:   bank,
		src:    src,
		clock:  clock,
		logger: logger.WithPrefix("session"),
		game:   game.NewFromBank(bank, src),
	}
	s.beginRound()
	return s
}

func (s *Session) beginRound() {
	s.round++
	s.startedAt = s.clock.Now()
	s.finishedAt = time.Time{}
	s.logger.Debug("Round started", "round", s.round, "length", len(s.game.Secret()))
}

// Guess forwards input to the current round and records the outcome when it ends.
func (s *Session) Guess(input string) (game.GuessResult, error) {
	res, err := s.game.SubmitGuess(input)
	if err != nil {
		s.logger.Debug("Guess rejected", "round", s.round, "input", input, "error", err)
		return res, err
	}

	s.logger.Debug("Guess accepted",
		"round", s.round,
		"letter", string(res.Letter),
		"correct", res.Correct,
		"remaining", res.Remaining)

	if res.State.IsTerminal() {
		s.finish(res.State)
	}
	return res, nil
}

func (s *Session) finish(state game.State) {
	s.finishedAt = s.clock.Now()
	s.stats.Rounds++

	switch state {
	case game.Won:
		s.stats.Wins++
		s.stats.Streak++
		if s.stats.Streak > s.stats.BestStreak {
			s.stats.BestStreak = s.stats.Streak
		}
	case game.Lost:
		s.stats.Losses++
		s.stats.Streak = 0
	}

	s.logger.Info("Round finished",
		"round", s.round,
		"outcome", state,
		"word", s.game.Secret(),
		"elapsed", s.RoundElapsed().Round(time.Second))
}

// Reset abandons the current round, if any, and starts a new one.
// An unfinished round is not counted.
func (s *Session) Reset() {
	if !s.game.IsOver() {
		s.logger.Debug("Round abandoned", "round", s.round)
	}
	s.game.Reset(s.bank, s.src)
	s.beginRound()
}

// Missing returns the letters of the secret word not yet guessed.
func (s *Session) Missing() []rune {
	return s.game.MissingLetters()
}

// Game returns the current round for read access.
func (s *Session) Game() *game.Game {
	return s.game
}

// Round returns the 1-based number of the current round.
func (s *Session) Round() int {
	return s.round
}

// Stats returns a snapshot of the session tallies.
func (s *Session) Stats() Stats {
	return s.stats
}

// RoundElapsed returns the time since the round started, frozen at the moment
// the round ended.
func (s *Session) RoundElapsed() time.Duration {
	if !s.finishedAt.IsZero() {
		return s.finishedAt.Sub(s.startedAt)
	}
	return s.clock.Now().Sub(s.startedAt)
}

// Sticker picks a celebration colour using the session's random source.
func (s *Session) Sticker() string {
	return StickerColors[s.src.IntN(len(StickerColors))]
}
