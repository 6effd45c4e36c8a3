package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/histquiz/internal/bank"
	"github.com/abhisek/histquiz/internal/router"
	"github.com/abhisek/histquiz/internal/screens/quiz"
	"github.com/abhisek/histquiz/internal/screens/welcome"
)

// drive feeds msg to the model and then runs any router command it returns.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			switch out.(type) {
			case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
				next, _ = m.Update(out)
				m = next.(AppModel)
			}
		}
	}
	return m
}

func TestNewAppModel_DefaultsToWelcome(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)
	assert.Equal(t, "American History Quiz", m.title)
}

func TestNewAppModel_SkipWelcome(t *testing.T) {
	m, err := newAppModel(Options{Bank: bank.Default(), SkipWelcome: true})
	require.NoError(t, err)

	_, ok := m.router.Active().(*quiz.QuizScreen)
	assert.True(t, ok)
}

func TestNewAppModel_InvalidBank(t *testing.T) {
	_, err := newAppModel(Options{Bank: &bank.Bank{Title: "empty"}, SkipWelcome: true})
	assert.Error(t, err)
}

func TestStartAndBack(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	_, ok := m.router.Active().(*quiz.QuizScreen)
	require.True(t, ok)

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView_ShowsScore(t *testing.T) {
	m, err := newAppModel(Options{SkipWelcome: true})
	require.NoError(t, err)

	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = drive(t, m, tea.KeyPressMsg{Code: '3', Text: "3"})

	content := m.render()
	assert.True(t, strings.Contains(content, "Score: 1"), "header should show the running score")
	assert.True(t, strings.Contains(content, "Correct!"))
}

func TestView_TooSmall(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)

	m = drive(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small!")
}
