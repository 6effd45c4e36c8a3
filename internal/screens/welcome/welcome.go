package welcome

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/histquiz/internal/router"
	"github.com/abhisek/histquiz/internal/screen"
	"github.com/abhisek/histquiz/internal/ui/components"
	"github.com/abhisek/histquiz/internal/ui/keys"
	"github.com/abhisek/histquiz/internal/ui/layout"
	"github.com/abhisek/histquiz/internal/ui/theme"
)

// WelcomeScreen introduces the quiz and starts a fresh run on Enter.
type WelcomeScreen struct {
	title         string
	questionCount int
	quizFactory   func() (screen.Screen, error)
	errMsg        string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. quizFactory builds a new quiz screen each
// time the user starts, so returning here and starting again begins a new
// session.
func New(title string, questionCount int, quizFactory func() (screen.Screen, error)) *WelcomeScreen {
	return &WelcomeScreen{
		title:         title,
		questionCount: questionCount,
		quizFactory:   quizFactory,
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Start, keys.Default.Quit)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !key.Matches(kmsg, keys.Default.Start) {
		return w, nil
	}

	s, err := w.quizFactory()
	if err != nil {
		w.errMsg = err.Error()
		return w, nil
	}
	w.errMsg = ""
	return w, func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center.Inherit(theme.Title).Render(w.title))
	b.WriteString("\n\n")

	noun := "questions"
	if w.questionCount == 1 {
		noun = "question"
	}
	b.WriteString(center.Inherit(theme.Subtitle).Render(
		fmt.Sprintf("%d multiple-choice %s. One answer each.", w.questionCount, noun)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewButton("Start Quiz", true).View()))

	if w.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.Error).Render("Error: " + w.errMsg))
	}
	return b.String()
}
