package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/histquiz/internal/quiz"
	"github.com/abhisek/histquiz/internal/ui/theme"
)

// OptionList renders the options of a question and tracks the cursor.
// It holds no answer state; correctness styling comes from the view model.
type OptionList struct {
	Cursor int
}

// MoveUp moves the cursor up one option.
func (o *OptionList) MoveUp() {
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// MoveDown moves the cursor down one option, bounded by n options.
func (o *OptionList) MoveDown(n int) {
	if o.Cursor < n-1 {
		o.Cursor++
	}
}

// Reset puts the cursor back on the first option.
func (o *OptionList) Reset() {
	o.Cursor = 0
}

// Selected returns the option under the cursor, or "" if out of range.
func (o OptionList) Selected(vm quiz.InProgress) string {
	if o.Cursor < 0 || o.Cursor >= len(vm.Options) {
		return ""
	}
	return vm.Options[o.Cursor]
}

// View renders one line per option.
func (o OptionList) View(vm quiz.InProgress, width int) string {
	var b strings.Builder
	for i, opt := range vm.Options {
		prefix := "  "
		if i == o.Cursor && !vm.FeedbackVisible {
			prefix = "▸ "
		}

		marker := "  "
		switch {
		case vm.IsCorrectOption(opt):
			marker = " ✓"
		case vm.IsSelectedWrongOption(opt):
			marker = " ✗"
		}

		line := fmt.Sprintf("%s%d)  %s%s", prefix, i+1, opt, marker)
		b.WriteString(optionStyle(vm, opt, i == o.Cursor).Width(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func optionStyle(vm quiz.InProgress, opt string, underCursor bool) lipgloss.Style {
	if !vm.FeedbackVisible {
		if underCursor {
			return theme.OptionCursor
		}
		return theme.OptionNeutral
	}
	switch {
	case vm.IsCorrectOption(opt):
		return theme.OptionCorrect
	case vm.IsSelectedWrongOption(opt):
		return theme.OptionWrong
	default:
		return theme.OptionDisabled
	}
}
