package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/histquiz/internal/quiz"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	b := Default()

	assert.Equal(t, "American History Quiz", b.Title)
	require.Len(t, b.Questions, 3)
	assert.Equal(t, "1776", b.Questions[0].CorrectAnswer)
	assert.Equal(t, "George Washington", b.Questions[1].CorrectAnswer)
	assert.Equal(t, "Civil War", b.Questions[2].CorrectAnswer)
	assert.Contains(t, b.Questions[0].Explanation, "July 4, 1776")

	_, err := quiz.NewEngine(b.Questions)
	assert.NoError(t, err)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "bank.yaml", `
title: "  Capitals  "
questions:
  - question: " Capital of France? "
    options: [" Paris ", Lyon]
    correct_answer: Paris
`)

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Capitals", b.Title)
	require.Len(t, b.Questions, 1)
	assert.Equal(t, quiz.Question{
		Question:      "Capital of France?",
		Options:       []string{"Paris", "Lyon"},
		CorrectAnswer: "Paris",
	}, b.Questions[0])
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "bank.json", `{
  "questions": [
    {"question": "2+2?", "options": ["3", "4"], "correct_answer": "4", "explanation": "Arithmetic."}
  ]
}`)

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, b.Title)
	assert.Equal(t, "Arithmetic.", b.Questions[0].Explanation)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"no questions", FormatYAML, "title: x\nquestions: []\n"},
		{"unknown top-level field", FormatJSON, `{"questions": [{"question": "q", "options": ["a","b"], "correct_answer": "a"}], "shuffle": true}`},
		{"single option", FormatYAML, "questions:\n  - question: q\n    options: [a]\n    correct_answer: a\n"},
		{"duplicate options", FormatYAML, "questions:\n  - question: q\n    options: [a, a]\n    correct_answer: a\n"},
		{"numeric option", FormatYAML, "questions:\n  - question: q\n    options: [1, 2]\n    correct_answer: \"1\"\n"},
		{"missing correct answer", FormatJSON, `{"questions": [{"question": "q", "options": ["a","b"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
		})
	}
}

func TestParse_SchemaErrorType(t *testing.T) {
	_, err := Parse([]byte("questions: []\n"), FormatYAML)
	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestParse_CorrectAnswerNotAnOption(t *testing.T) {
	_, err := Parse([]byte("questions:\n  - question: q\n    options: [a, b]\n    correct_answer: c\n"), FormatYAML)

	var bankErr *quiz.BankError
	require.True(t, errors.As(err, &bankErr))
	assert.Equal(t, []string{`question 1: correct answer "c" is not one of the options`}, bankErr.Problems)
}

func TestParse_DuplicateAfterTrim(t *testing.T) {
	_, err := Parse([]byte("questions:\n  - question: q\n    options: [\"a\", \"a \"]\n    correct_answer: a\n"), FormatYAML)

	var bankErr *quiz.BankError
	assert.True(t, errors.As(err, &bankErr))
}

func TestParse_MultipleDocuments(t *testing.T) {
	data := "questions:\n  - question: q\n    options: [a, b]\n    correct_answer: a\n---\ntitle: again\n"
	_, err := Parse([]byte(data), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple documents")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil, FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("bank.JSON"))
	assert.Equal(t, FormatYAML, FormatFor("bank.yml"))
	assert.Equal(t, FormatYAML, FormatFor("bank"))
}
