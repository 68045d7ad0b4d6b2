// Package tui is the Bubble Tea front end for hangman. It translates key
// events into session calls and renders whatever the session reports.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/session"
)

const footerText = "© Biswajit Das Coding"

// Model represents the Bubble Tea model for a hangman session
type Model struct {
	session *session.Session
	logger  *log.Logger
	styles  Styles
	banner  string

	// UI components
	input textinput.Model
	help  help.Model
	keys  keyMap

	// State
	notice   *Notice
	sticker  string
	quitting bool

	// Dimensions
	width  int
	height int
}

// New creates a model driving the given session
func New(s *session.Session, styles Styles, banner string, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a letter"
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 16
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	return &Model{
		session: s,
		logger:  logger.WithPrefix("tui"),
		styles:  styles,
		banner:  banner,
		input:   ti,
		help:    help.New(),
		keys:    defaultKeyMap(),
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}

		if m.notice != nil {
			if key.Matches(msg, m.keys.Dismiss) {
				m.dismissNotice()
			}
			// Everything else is swallowed while a notice is open
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Guess):
			input := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			m.submitGuess(input)
			return m, nil
		case key.Matches(msg, m.keys.Missing):
			m.notice = missingNotice(m.session.Missing())
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.startNewRound()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Info("Quitting", "rounds", m.session.Stats().Rounds)
	return m, tea.Quit
}

func (m *Model) submitGuess(input string) {
	res, err := m.session.Guess(input)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrInvalidInput):
			m.notice = invalidInputNotice()
		case errors.Is(err, game.ErrDuplicateGuess):
			m.notice = duplicateGuessNotice()
		case errors.Is(err, game.ErrGameOver):
			m.notice = gameOverNotice()
		default:
			m.logger.Error("Unexpected guess error", "error", err)
			m.notice = &Notice{Kind: NoticeError, Title: "Error", Body: err.Error()}
		}
		return
	}

	switch res.State {
	case game.Won:
		m.notice = wonNotice(m.session.RoundElapsed())
	case game.Lost:
		m.notice = lostNotice(m.session.Game().Secret(), m.session.RoundElapsed())
	default:
		if res.Correct {
			m.sticker = m.session.Sticker()
		}
	}
}

func (m *Model) dismissNotice() {
	endsRound := m.notice.EndsRound
	m.notice = nil
	if endsRound {
		m.startNewRound()
	}
}

func (m *Model) startNewRound() {
	m.session.Reset()
	m.sticker = ""
	m.input.SetValue("")
	m.logger.Debug("New round", "round", m.session.Round())
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.notice != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.notice.render(m.styles.Notice))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.styles.Frame.Render(m.renderPanel()))
}

func (m *Model) renderPanel() string {
	g := m.session.Game()
	var sections []string

	sections = append(sections, m.styles.Title.Render("Hangman Game"))
	if m.banner != "" {
		sections = append(sections, m.styles.Banner.Render(m.banner))
	}
	sections = append(sections,
		m.styles.Word.Render(g.Masked()),
		m.renderSticker(),
		m.styles.Label.Render("Guessed Letters: "+joinLetters(g.Guessed())),
		m.input.View(),
		m.styles.Label.Render(fmt.Sprintf("Attempts left: %d", g.Remaining())),
		InfoStyle.Render(m.renderStats()),
		m.help.View(m.keys),
		m.styles.Footer.Render(footerText),
	)

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m *Model) renderSticker() string {
	if m.sticker == "" {
		return ""
	}
	style := m.styles.Sticker.Foreground(lipgloss.Color(m.sticker))
	return style.Render(fmt.Sprintf("🎉 %s 🎉", m.sticker))
}

func (m *Model) renderStats() string {
	st := m.session.Stats()
	return fmt.Sprintf("Round %d • Wins %d • Losses %d • Streak %d (best %d)",
		m.session.Round(), st.Wins, st.Losses, st.Streak, st.BestStreak)
}
