package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/histquiz/internal/quiz"
)

func inProgress(t *testing.T, answer string) quiz.InProgress {
	t.Helper()
	e, err := quiz.NewEngine([]quiz.Question{{
		Question:      "Who was the first President of the United States?",
		Options:       []string{"John Adams", "Thomas Jefferson", "Benjamin Franklin", "George Washington"},
		CorrectAnswer: "George Washington",
	}})
	require.NoError(t, err)
	if answer != "" {
		e.SubmitAnswer(answer)
	}
	return e.ViewModel().(quiz.InProgress)
}

func TestOptionList_CursorBounds(t *testing.T) {
	var o OptionList

	o.MoveUp()
	assert.Equal(t, 0, o.Cursor)

	for i := 0; i < 10; i++ {
		o.MoveDown(4)
	}
	assert.Equal(t, 3, o.Cursor)

	o.Reset()
	assert.Equal(t, 0, o.Cursor)
}

func TestOptionList_Selected(t *testing.T) {
	vm := inProgress(t, "")
	o := OptionList{Cursor: 3}
	assert.Equal(t, "George Washington", o.Selected(vm))

	o.Cursor = 7
	assert.Equal(t, "", o.Selected(vm))
}

func TestOptionList_ViewBeforeAnswer(t *testing.T) {
	view := OptionList{Cursor: 1}.View(inProgress(t, ""), 60)

	assert.Contains(t, view, "▸ 2)  Thomas Jefferson")
	assert.NotContains(t, view, "✓")
	assert.NotContains(t, view, "✗")
	assert.Equal(t, 4, strings.Count(view, "\n"))
}

func TestOptionList_ViewAfterWrongAnswer(t *testing.T) {
	view := OptionList{}.View(inProgress(t, "John Adams"), 60)

	assert.Contains(t, view, "John Adams ✗")
	assert.Contains(t, view, "George Washington ✓")
	assert.NotContains(t, view, "▸")
}

func TestOptionList_ViewAfterCorrectAnswer(t *testing.T) {
	view := OptionList{}.View(inProgress(t, "George Washington"), 60)

	assert.Contains(t, view, "George Washington ✓")
	assert.NotContains(t, view, "✗")
}

func TestButton_View(t *testing.T) {
	assert.Contains(t, NewButton("Next Question", true).View(), "Next Question")
	assert.Contains(t, NewButton("Restart Quiz", false).View(), "Restart Quiz")
}
