package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/histquiz/internal/bank"
	"github.com/abhisek/histquiz/internal/router"
	"github.com/abhisek/histquiz/internal/screen"
	"github.com/abhisek/histquiz/internal/screens/quiz"
	"github.com/abhisek/histquiz/internal/screens/welcome"
	"github.com/abhisek/histquiz/internal/store"
	"github.com/abhisek/histquiz/internal/ui/keys"
	"github.com/abhisek/histquiz/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Bank      *bank.Bank
	EventRepo store.EventRepo // nil disables recording

	// SkipWelcome opens the quiz directly instead of the welcome screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	title  string
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome or quiz screen.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Bank == nil {
		opts.Bank = bank.Default()
	}

	newQuiz := func() (screen.Screen, error) {
		return quiz.New(opts.Bank, opts.EventRepo)
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		s, err := newQuiz()
		if err != nil {
			return AppModel{}, err
		}
		initial = s
	} else {
		initial = welcome.New(opts.Bank.Title, len(opts.Bank.Questions), newQuiz)
	}

	return AppModel{
		router: router.New(initial),
		title:  opts.Bank.Title,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Default.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the header, active screen, and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	score := -1
	if sp, ok := active.(screen.ScoreProvider); ok {
		score = sp.Score()
	}
	header := layout.RenderHeader(m.title, score, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else {
		footerHints = keys.Hints(keys.Default.Back, keys.Default.Quit)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
