package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/histquiz/internal/quiz"
)

//go:embed default.yaml
var defaultBank []byte

// DefaultTitle is used when a bank file has no title.
const DefaultTitle = "Quiz"

// Default returns the built-in American History bank.
func Default() *Bank {
	b, err := Parse(defaultBank, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in bank is invalid: %v", err))
	}
	return b
}

// Load reads, parses, and validates a bank file. Files ending in .json are
// decoded as JSON; anything else as YAML.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	b, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// FormatFor picks a format from the file extension.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes, schema-checks, normalizes, and validates bank data.
func Parse(data []byte, format Format) (*Bank, error) {
	var (
		doc any
		f   file
		err error
	)
	switch format {
	case FormatJSON:
		if err = decodeJSON(data, &doc, false); err == nil {
			err = decodeJSON(data, &f, true)
		}
	case FormatYAML:
		if err = decodeYAML(data, &doc, false); err == nil {
			err = decodeYAML(data, &f, true)
		}
	default:
		return nil, fmt.Errorf("unsupported bank format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	b := normalize(f)
	if err := quiz.ValidateQuestions(b.Questions); err != nil {
		return nil, err
	}
	return b, nil
}

func decodeJSON(data []byte, v any, strict bool) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return errors.New("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, v any, strict bool) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(strict)
	if err := decoder.Decode(v); err != nil {
		if err == io.EOF {
			return errors.New("parse yaml: document is empty")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return errors.New("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// normalize trims surrounding whitespace from every string in the bank.
func normalize(f file) *Bank {
	b := &Bank{
		Title:     strings.TrimSpace(f.Title),
		Questions: make([]quiz.Question, 0, len(f.Questions)),
	}
	if b.Title == "" {
		b.Title = DefaultTitle
	}

	for _, fq := range f.Questions {
		opts := make([]string, len(fq.Options))
		for i, o := range fq.Options {
			opts[i] = strings.TrimSpace(o)
		}
		b.Questions = append(b.Questions, quiz.Question{
			Question:      strings.TrimSpace(fq.Question),
			Options:       opts,
			CorrectAnswer: strings.TrimSpace(fq.CorrectAnswer),
			Explanation:   strings.TrimSpace(fq.Explanation),
		})
	}
	return b
}
