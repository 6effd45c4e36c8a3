package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/histquiz/internal/quiz"
	"github.com/abhisek/histquiz/internal/ui/components"
	"github.com/abhisek/histquiz/internal/ui/layout"
	"github.com/abhisek/histquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	cardWidth := layout.ContentWidth(width)
	innerWidth := cardWidth - theme.Card.GetHorizontalFrameSize()
	if innerWidth < 0 {
		innerWidth = 0
	}

	var body string
	switch vm := s.engine.ViewModel().(type) {
	case qz.Complete:
		body = renderComplete(vm, innerWidth)
	case qz.InProgress:
		body = s.renderQuestion(vm, innerWidth)
	}

	card := theme.Card.Width(cardWidth).Render(body)
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderQuestion renders the active question, its options, and feedback.
func (s *QuizScreen) renderQuestion(vm qz.InProgress, width int) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", vm.Number(), vm.Total)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Width(width).Render(vm.Question))
	b.WriteString("\n\n")
	b.WriteString(s.options.View(vm, width))

	if !vm.FeedbackVisible {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(vm.Options))))
		return b.String()
	}

	b.WriteString("\n")
	if vm.AnsweredCorrectly() {
		b.WriteString(theme.Correct.Render("✅ Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("❌ Incorrect!"))
	}
	b.WriteString("\n")

	if vm.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Explanation.Width(width).Render(vm.Explanation))
		b.WriteString("\n")
	}

	label := "Next Question"
	if vm.Number() == vm.Total {
		label = "See Results"
	}
	b.WriteString("\n")
	b.WriteString(components.NewButton(label, true).View())

	return b.String()
}

// renderComplete renders the final score and the restart button.
func renderComplete(vm qz.Complete, width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(center.Inherit(theme.Title).Render("Quiz Complete!"))
	b.WriteString("\n\n")
	b.WriteString(center.Inherit(theme.Body).Render(
		fmt.Sprintf("Your final score: %d out of %d", vm.Score, vm.Total)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewButton("Restart Quiz", true).View()))
	return b.String()
}
