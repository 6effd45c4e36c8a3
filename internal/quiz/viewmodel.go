package quiz

// ViewModel is either InProgress or Complete.
type ViewModel interface {
	viewModel()
}

// Complete is shown once the last question has been advanced past.
type Complete struct {
	Score int
	Total int
}

func (Complete) viewModel() {}

// InProgress describes the active question.
type InProgress struct {
	Index           int // zero-based
	Total           int
	Question        string
	Options         []string
	Explanation     string
	Score           int
	SelectedAnswer  string
	FeedbackVisible bool

	correctAnswer string
}

func (InProgress) viewModel() {}

// AnsweredCorrectly reports whether the submitted answer was correct.
// Always false before an answer is submitted.
func (v InProgress) AnsweredCorrectly() bool {
	return v.FeedbackVisible && v.SelectedAnswer == v.correctAnswer
}

// IsCorrectOption reports whether opt should be highlighted as the correct
// answer. Options stay neutral until feedback is visible.
func (v InProgress) IsCorrectOption(opt string) bool {
	return v.FeedbackVisible && opt == v.correctAnswer
}

// IsSelectedWrongOption reports whether opt is the user's incorrect pick.
func (v InProgress) IsSelectedWrongOption(opt string) bool {
	return v.FeedbackVisible && opt == v.SelectedAnswer && opt != v.correctAnswer
}

// Number returns the one-based position of the question, for display.
func (v InProgress) Number() int {
	return v.Index + 1
}
