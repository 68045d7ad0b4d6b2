package session

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/words"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestSession(t *testing.T, word string) (*Session, *quartz.Mock) {
	t.Helper()

	bank, err := words.New([]string{word})
	require.NoError(t, err)

	clock := quartz.NewMock(t)
	return New(bank, randutil.New(1), clock, quietLogger()), clock
}

func win(t *testing.T, s *Session) {
	t.Helper()
	for _, r := range s.Missing() {
		_, err := s.Guess(string(r))
		require.NoError(t, err)
	}
	require.Equal(t, game.Won, s.Game().State())
}

func lose(t *testing.T, s *Session) {
	t.Helper()
	for _, l := range "QXZJVKWY" {
		if s.Game().IsOver() {
			break
		}
		_, err := s.Guess(string(l))
		require.NoError(t, err)
	}
	require.Equal(t, game.Lost, s.Game().State())
}

func TestNewSessionStartsRound(t *testing.T) {
	s, _ := newTestSession(t, "CAT")

	assert.Equal(t, 1, s.Round())
	assert.Equal(t, "CAT", s.Game().Secret())
	assert.Equal(t, game.InProgress, s.Game().State())
	assert.Equal(t, Stats{}, s.Stats())
}

func TestStatsRecordOutcomes(t *testing.T) {
	s, _ := newTestSession(t, "CAT")

	win(t, s)
	s.Reset()
	win(t, s)
	s.Reset()
	lose(t, s)
	s.Reset()
	win(t, s)

	assert.Equal(t, Stats{Rounds: 4, Wins: 3, Losses: 1, Streak: 1, BestStreak: 2}, s.Stats())
	assert.Equal(t, 4, s.Round())
}

func TestRejectedGuessAfterEndDoesNotRecount(t *testing.T) {
	s, _ := newTestSession(t, "CAT")
	win(t, s)

	_, err := s.Guess("Z")
	assert.ErrorIs(t, err, game.ErrGameOver)
	assert.Equal(t, 1, s.Stats().Rounds)
}

func TestResetAbandonedRoundNotCounted(t *testing.T) {
	s, _ := newTestSession(t, "CAT")

	_, err := s.Guess("Q")
	require.NoError(t, err)
	s.Reset()

	assert.Equal(t, Stats{}, s.Stats())
	assert.Empty(t, s.Game().Guessed())
	assert.Equal(t, 0, s.Game().AttemptsUsed())
	assert.Equal(t, 2, s.Round())
}

func TestRoundElapsed(t *testing.T) {
	s, clock := newTestSession(t, "CAT")

	clock.Advance(30 * time.Second)
	assert.Equal(t, 30*time.Second, s.RoundElapsed())

	win(t, s)
	clock.Advance(time.Minute)
	assert.Equal(t, 30*time.Second, s.RoundElapsed(), "elapsed freezes when the round ends")

	s.Reset()
	assert.Equal(t, time.Duration(0), s.RoundElapsed())
	clock.Advance(5 * time.Second)
	assert.Equal(t, 5*time.Second, s.RoundElapsed())
}

func TestSticker(t *testing.T) {
	s, _ := newTestSession(t, "CAT")

	for i := 0; i < 20; i++ {
		assert.Contains(t, StickerColors, s.Sticker())
	}
}
