package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with ent's SQL builders.
type eventRepo struct {
	drv     dialect.ExecQuerier
	builder *entsql.DialectBuilder
	seq     *sequenceCounter
	now     func() time.Time
}

func newEventRepo(drv dialect.ExecQuerier, seq *sequenceCounter) *eventRepo {
	return &eventRepo{
		drv:     drv,
		builder: entsql.Dialect(dialect.SQLite),
		seq:     seq,
		now:     time.Now,
	}
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	switch data.Action {
	case ActionStart, ActionRestart, ActionComplete:
	default:
		return fmt.Errorf("unknown session action %q", data.Action)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.builder.Insert(sessionEventsTable).
		Columns("sequence", "timestamp", "session_id", "bank_title", "action", "score", "total").
		Values(seqNum, r.now().UTC().UnixMilli(), data.SessionID, data.BankTitle, data.Action, data.Score, data.Total).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.builder.Insert(answerEventsTable).
		Columns("sequence", "timestamp", "session_id", "bank_title", "question_index",
			"question_text", "selected_answer", "correct_answer", "correct").
		Values(seqNum, r.now().UTC().UnixMilli(), data.SessionID, data.BankTitle, data.QuestionIndex,
			data.QuestionText, data.SelectedAnswer, data.CorrectAnswer, data.Correct).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentRuns(ctx context.Context, limit int) ([]CompletedRun, error) {
	sel := r.builder.Select("session_id", "bank_title", "score", "total", "timestamp").
		From(entsql.Table(sessionEventsTable)).
		Where(entsql.EQ("action", ActionComplete)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	defer rows.Close()

	var runs []CompletedRun
	for rows.Next() {
		var (
			run  CompletedRun
			tsMs int64
		)
		if err := rows.Scan(&run.SessionID, &run.BankTitle, &run.Score, &run.Total, &tsMs); err != nil {
			return nil, fmt.Errorf("scan recent run: %w", err)
		}
		run.CompletedAt = time.UnixMilli(tsMs).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent runs: %w", err)
	}
	return runs, nil
}

func (r *eventRepo) QuestionAccuracy(ctx context.Context) ([]QuestionStat, error) {
	query, args := r.builder.Select(
		"bank_title", "question_index", "question_text",
		entsql.Count("*"), entsql.Sum("correct"),
	).
		From(entsql.Table(answerEventsTable)).
		GroupBy("bank_title", "question_index", "question_text").
		OrderBy("bank_title", "question_index").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query question accuracy: %w", err)
	}
	defer rows.Close()

	var stats []QuestionStat
	for rows.Next() {
		var st QuestionStat
		if err := rows.Scan(&st.BankTitle, &st.QuestionIndex, &st.QuestionText, &st.Attempts, &st.Correct); err != nil {
			return nil, fmt.Errorf("scan question stat: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate question stats: %w", err)
	}
	return stats, nil
}
