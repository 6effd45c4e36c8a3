package quiz

import (
	"fmt"
	"strings"
)

// Question is a single multiple-choice item in a question bank.
type Question struct {
	Question      string
	Options       []string
	CorrectAnswer string
	Explanation   string
}

// HasOption reports whether opt is one of the question's options.
func (q Question) HasOption(opt string) bool {
	for _, o := range q.Options {
		if o == opt {
			return true
		}
	}
	return false
}

// IsCorrect reports whether answer matches the correct answer exactly.
func (q Question) IsCorrect(answer string) bool {
	return answer != "" && answer == q.CorrectAnswer
}

// BankError describes every problem found in a question bank.
type BankError struct {
	Problems []string
}

func (e *BankError) Error() string {
	return fmt.Sprintf("invalid question bank:\n  %s", strings.Join(e.Problems, "\n  "))
}

// ValidateQuestions checks that the bank is non-empty and that every
// question has at least two unique, non-empty options including its
// correct answer. Returns a *BankError listing all problems, or nil.
func ValidateQuestions(questions []Question) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "question bank is empty")
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			errs = append(errs, fmt.Sprintf("question %d: text is empty", i+1))
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %d: needs at least 2 options, has %d", i+1, len(q.Options)))
		}

		seen := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt == "" {
				errs = append(errs, fmt.Sprintf("question %d: option is empty", i+1))
				continue
			}
			if seen[opt] {
				errs = append(errs, fmt.Sprintf("question %d: duplicate option %q", i+1, opt))
			}
			seen[opt] = true
		}

		if q.CorrectAnswer == "" {
			errs = append(errs, fmt.Sprintf("question %d: correct answer is empty", i+1))
		} else if !seen[q.CorrectAnswer] {
			errs = append(errs, fmt.Sprintf("question %d: correct answer %q is not one of the options", i+1, q.CorrectAnswer))
		}
	}

	if len(errs) > 0 {
		return &BankError{Problems: errs}
	}
	return nil
}

// cloneQuestions deep-copies the bank so callers cannot mutate it later.
func cloneQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
