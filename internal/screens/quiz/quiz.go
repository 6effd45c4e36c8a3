package quiz

import (
	"context"
	"log"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/histquiz/internal/bank"
	qz "github.com/abhisek/histquiz/internal/quiz"
	"github.com/abhisek/histquiz/internal/screen"
	"github.com/abhisek/histquiz/internal/store"
	"github.com/abhisek/histquiz/internal/ui/components"
	"github.com/abhisek/histquiz/internal/ui/keys"
	"github.com/abhisek/histquiz/internal/ui/layout"
)

// QuizScreen renders a quiz engine's view model and translates key presses
// into engine transitions.
type QuizScreen struct {
	engine    *qz.Engine
	title     string
	options   components.OptionList
	keys      keys.KeyMap
	eventRepo store.EventRepo // nil when recording is disabled
	sessionID string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ScoreProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the bank. eventRepo may be nil.
func New(b *bank.Bank, eventRepo store.EventRepo) (*QuizScreen, error) {
	engine, err := qz.NewEngine(b.Questions)
	if err != nil {
		return nil, err
	}
	return &QuizScreen{
		engine:    engine,
		title:     b.Title,
		keys:      keys.Default,
		eventRepo: eventRepo,
		sessionID: uuid.New().String(),
	}, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	s.recordSession(store.ActionStart)
	return nil
}

func (s *QuizScreen) Title() string {
	return s.title
}

// Score returns the running score for the header.
func (s *QuizScreen) Score() int {
	return s.engine.Session().Score
}

// ViewModel exposes the engine's current view model.
func (s *QuizScreen) ViewModel() qz.ViewModel {
	return s.engine.ViewModel()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch vm := s.engine.ViewModel().(type) {
	case qz.Complete:
		return keys.Hints(s.keys.Restart, s.keys.Back, s.keys.Quit)
	case qz.InProgress:
		if vm.FeedbackVisible {
			return keys.Hints(s.keys.Next, s.keys.Back, s.keys.Quit)
		}
	}
	return keys.Hints(s.keys.Up, s.keys.Down, s.keys.Pick, s.keys.Submit, s.keys.Quit)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch vm := s.engine.ViewModel().(type) {
	case qz.Complete:
		if key.Matches(kmsg, s.keys.Restart) {
			s.restart()
		}

	case qz.InProgress:
		if vm.FeedbackVisible {
			// Options are disabled while feedback shows.
			if key.Matches(kmsg, s.keys.Next) {
				s.advance()
			}
			return s, nil
		}

		switch {
		case key.Matches(kmsg, s.keys.Up):
			s.options.MoveUp()
		case key.Matches(kmsg, s.keys.Down):
			s.options.MoveDown(len(vm.Options))
		case key.Matches(kmsg, s.keys.Pick):
			idx := keys.PickIndex(kmsg.String())
			if idx >= 0 && idx < len(vm.Options) {
				s.options.Cursor = idx
				s.submit(vm)
			}
		case key.Matches(kmsg, s.keys.Submit):
			s.submit(vm)
		}
	}

	return s, nil
}

func (s *QuizScreen) submit(vm qz.InProgress) {
	answer := s.options.Selected(vm)
	if !s.engine.SubmitAnswer(answer) {
		return
	}

	q, _ := s.engine.Current()
	s.record(func(ctx context.Context) error {
		return s.eventRepo.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:      s.sessionID,
			BankTitle:      s.title,
			QuestionIndex:  vm.Index,
			QuestionText:   q.Question,
			SelectedAnswer: answer,
			CorrectAnswer:  q.CorrectAnswer,
			Correct:        q.IsCorrect(answer),
		})
	})
}

func (s *QuizScreen) advance() {
	if !s.engine.Advance() {
		return
	}
	s.options.Reset()
	if s.engine.Complete() {
		s.recordSession(store.ActionComplete)
	}
}

func (s *QuizScreen) restart() {
	s.engine.Restart()
	s.options.Reset()
	s.recordSession(store.ActionRestart)
}

func (s *QuizScreen) recordSession(action string) {
	sess := s.engine.Session()
	s.record(func(ctx context.Context) error {
		return s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.sessionID,
			BankTitle: s.title,
			Action:    action,
			Score:     sess.Score,
			Total:     s.engine.Total(),
		})
	})
}

// record runs fn against the event repo when recording is enabled.
// Failures are logged and never interrupt the quiz.
func (s *QuizScreen) record(fn func(ctx context.Context) error) {
	if s.eventRepo == nil {
		return
	}
	if err := fn(context.Background()); err != nil {
		log.Printf("record quiz event: %v", err)
	}
}
