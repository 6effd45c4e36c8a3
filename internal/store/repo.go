package store

import (
	"context"
	"time"
)

// Session actions recorded in the session_events table.
const (
	ActionStart    = "start"
	ActionRestart  = "restart"
	ActionComplete = "complete"
)

// SessionEventData captures a quiz session lifecycle event.
type SessionEventData struct {
	SessionID string
	BankTitle string
	Action    string // one of the Action* constants
	Score     int
	Total     int
}

// AnswerEventData captures a single submitted answer.
type AnswerEventData struct {
	SessionID      string
	BankTitle      string
	QuestionIndex  int
	QuestionText   string
	SelectedAnswer string
	CorrectAnswer  string
	Correct        bool
}

// CompletedRun is one finished pass through a question bank.
type CompletedRun struct {
	SessionID   string
	BankTitle   string
	Score       int
	Total       int
	CompletedAt time.Time
}

// QuestionStat aggregates every recorded answer to one question.
type QuestionStat struct {
	BankTitle     string
	QuestionIndex int
	QuestionText  string
	Attempts      int
	Correct       int
}

// Accuracy returns the fraction of correct attempts, or 0 with no attempts.
func (s QuestionStat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// EventRepo provides append and query access to quiz events.
type EventRepo interface {
	// AppendSessionEvent records a session start, restart, or completion.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentRuns returns up to limit completed runs, newest first.
	RecentRuns(ctx context.Context, limit int) ([]CompletedRun, error)

	// QuestionAccuracy returns per-question answer statistics ordered by
	// bank title and question position.
	QuestionAccuracy(ctx context.Context) ([]QuestionStat, error)
}
