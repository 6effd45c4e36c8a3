package quiz

// Session is the mutable progress of one user through the question bank.
type Session struct {
	CurrentQuestionIndex int
	Score                int
	SelectedAnswer       string
	FeedbackVisible      bool
}

// Engine holds a fixed question bank and a single Session. It is not safe
// for concurrent use; each quiz instance owns its own Engine.
type Engine struct {
	questions []Question
	session   Session
}

// NewEngine validates the bank and returns an engine at the first question.
func NewEngine(questions []Question) (*Engine, error) {
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return &Engine{questions: cloneQuestions(questions)}, nil
}

// Total returns the number of questions in the bank.
func (e *Engine) Total() int {
	return len(e.questions)
}

// Session returns a copy of the current session state.
func (e *Engine) Session() Session {
	return e.session
}

// Complete reports whether every question has been answered and advanced past.
func (e *Engine) Complete() bool {
	return e.session.CurrentQuestionIndex >= len(e.questions)
}

// Current returns the active question. ok is false once the quiz is complete.
func (e *Engine) Current() (q Question, ok bool) {
	if e.Complete() {
		return Question{}, false
	}
	return e.questions[e.session.CurrentQuestionIndex], true
}

// SubmitAnswer records the answer for the current question and shows
// feedback. It is a no-op returning false when the quiz is complete, when
// feedback is already showing, or when answer is empty.
func (e *Engine) SubmitAnswer(answer string) bool {
	q, ok := e.Current()
	if !ok || e.session.FeedbackVisible || answer == "" {
		return false
	}

	e.session.SelectedAnswer = answer
	e.session.FeedbackVisible = true
	if q.IsCorrect(answer) {
		e.session.Score++
	}
	return true
}

// Advance moves past an answered question. It is a no-op returning false
// unless feedback is showing.
func (e *Engine) Advance() bool {
	if !e.session.FeedbackVisible || e.Complete() {
		return false
	}

	e.session.CurrentQuestionIndex++
	e.session.SelectedAnswer = ""
	e.session.FeedbackVisible = false
	return true
}

// Restart resets the session to the first question with a zero score.
func (e *Engine) Restart() {
	e.session = Session{}
}

// ViewModel derives a read-only snapshot for rendering.
func (e *Engine) ViewModel() ViewModel {
	q, ok := e.Current()
	if !ok {
		return Complete{Score: e.session.Score, Total: len(e.questions)}
	}

	return InProgress{
		Index:           e.session.CurrentQuestionIndex,
		Total:           len(e.questions),
		Question:        q.Question,
		Options:         append([]string(nil), q.Options...),
		Explanation:     q.Explanation,
		Score:           e.session.Score,
		SelectedAnswer:  e.session.SelectedAnswer,
		FeedbackVisible: e.session.FeedbackVisible,
		correctAnswer:   q.CorrectAnswer,
	}
}
