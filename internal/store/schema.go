package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
)

const (
	sessionEventsTable = "session_events"
	answerEventsTable  = "answer_events"
)

// Every event table carries the shared sequence and a UTC timestamp in
// unix milliseconds.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS session_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		bank_title TEXT NOT NULL,
		action TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		total INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS session_events_session_id ON session_events (session_id)`,
	`CREATE INDEX IF NOT EXISTS session_events_action ON session_events (action)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		bank_title TEXT NOT NULL,
		question_index INTEGER NOT NULL,
		question_text TEXT NOT NULL,
		selected_answer TEXT NOT NULL,
		correct_answer TEXT NOT NULL,
		correct BOOLEAN NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_question ON answer_events (bank_title, question_index)`,
}

// migrate creates the event tables if they do not exist yet.
func migrate(ctx context.Context, drv dialect.ExecQuerier) error {
	for _, stmt := range ddl {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
