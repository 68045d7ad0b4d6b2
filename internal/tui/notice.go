package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// NoticeKind selects how a notice is styled
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
	NoticeSuccess
)

// Notice is a modal message that must be dismissed before play continues.
// When EndsRound is set, dismissing it starts a new round.
type Notice struct {
	Kind      NoticeKind
	Title     string
	Body      string
	EndsRound bool
}

func invalidInputNotice() *Notice {
	return &Notice{Kind: NoticeWarning, Title: "Invalid input", Body: "Please enter a single letter."}
}

func duplicateGuessNotice() *Notice {
	return &Notice{Kind: NoticeInfo, Title: "Already Guessed", Body: "You already guessed that letter."}
}

func gameOverNotice() *Notice {
	return &Notice{
		Kind:      NoticeInfo,
		Title:     "Round Over",
		Body:      "This round has finished. A new word is on its way.",
		EndsRound: true,
	}
}

func wonNotice(elapsed time.Duration) *Notice {
	return &Notice{
		Kind:      NoticeSuccess,
		Title:     "Congratulations!",
		Body:      fmt.Sprintf("You guessed the word!\nTime: %s", elapsed.Round(time.Second)),
		EndsRound: true,
	}
}

func lostNotice(secret string, elapsed time.Duration) *Notice {
	return &Notice{
		Kind:      NoticeError,
		Title:     "Game Over",
		Body:      fmt.Sprintf("You lost! The word was: %s\nTime: %s", secret, elapsed.Round(time.Second)),
		EndsRound: true,
	}
}

func missingNotice(missing []rune) *Notice {
	if len(missing) == 0 {
		return &Notice{Kind: NoticeInfo, Title: "All Letters Guessed", Body: "You have guessed all the letters!"}
	}
	return &Notice{
		Kind:  NoticeInfo,
		Title: "Missing Letters",
		Body:  fmt.Sprintf("Missing Letters: %s\nCount: %d", joinLetters(missing), len(missing)),
	}
}

func (n *Notice) titleStyle() lipgloss.Style {
	switch n.Kind {
	case NoticeWarning:
		return WarningStyle
	case NoticeError:
		return ErrorStyle
	case NoticeSuccess:
		return SuccessStyle
	default:
		return lipgloss.NewStyle().Bold(true)
	}
}

func (n *Notice) render(box lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(n.titleStyle().Render(n.Title))
	b.WriteString("\n\n")
	b.WriteString(n.Body)
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("Press enter to continue"))
	return box.Render(b.String())
}

func joinLetters(letters []rune) string {
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
