package bank

import "github.com/abhisek/histquiz/internal/quiz"

// Bank is a titled, validated question bank.
type Bank struct {
	Title     string
	Questions []quiz.Question
}

// file is the on-disk layout of a bank file.
type file struct {
	Title     string         `json:"title" yaml:"title"`
	Questions []fileQuestion `json:"questions" yaml:"questions"`
}

type fileQuestion struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer"`
	Explanation   string   `json:"explanation" yaml:"explanation"`
}

// Format selects the bank file decoder.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)
