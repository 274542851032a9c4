// Package quizfile loads question decks from YAML or JSON files.
package quizfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cryptoquiz/internal/quiz"
)

type fileQuestion struct {
	Text    string   `yaml:"text" json:"text"`
	Options []string `yaml:"options" json:"options"`
	Answer  string   `yaml:"answer" json:"answer"`
}

// Load reads a deck file, dispatching on extension (.yaml/.yml/.json), and
// validates it through quiz.NewQuiz. A malformed deck is a configuration
// error and fails before any session starts.
func Load(path string) (quiz.Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}

	var raw []fileQuestion
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported deck file extension %q", filepath.Ext(path))
	}

	questions := make([]quiz.Question, 0, len(raw))
	for _, item := range raw {
		questions = append(questions, quiz.Question{
			Text:    item.Text,
			Options: item.Options,
			Answer:  item.Answer,
		})
	}

	deck, err := quiz.NewQuiz(questions)
	if err != nil {
		return nil, fmt.Errorf("deck file %s: %w", filepath.Base(path), err)
	}
	return deck, nil
}
