package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrNoQuestions     = errors.New("quiz has no questions")
	ErrNoQuestionText  = errors.New("question text is empty")
	ErrTooFewOptions   = errors.New("question needs at least two options")
	ErrDuplicateOption = errors.New("question options must be distinct")
	ErrAnswerNotOption = errors.New("correct answer is not among the options")
)

// Question is a single multiple-choice question. Once built through
// NewQuestion it is never mutated; Options keeps the author's ordering.
type Question struct {
	Text    string
	Options []string
	Answer  string
}

func NewQuestion(text string, options []string, answer string) (Question, error) {
	if text == "" {
		return Question{}, ErrNoQuestionText
	}
	if len(options) < 2 {
		return Question{}, ErrTooFewOptions
	}

	seen := make(map[string]struct{}, len(options))
	answerFound := false
	copied := make([]string, len(options))
	for idx, option := range options {
		if _, dup := seen[option]; dup {
			return Question{}, fmt.Errorf("%w: %q", ErrDuplicateOption, option)
		}
		seen[option] = struct{}{}
		copied[idx] = option
		if option == answer {
			answerFound = true
		}
	}
	if !answerFound {
		return Question{}, fmt.Errorf("%w: %q", ErrAnswerNotOption, answer)
	}

	return Question{
		Text:    text,
		Options: copied,
		Answer:  answer,
	}, nil
}

// Quiz is an ordered, fixed list of validated questions.
type Quiz []Question

// NewQuiz validates every question up front so a malformed deck fails at
// construction time, before any session starts.
func NewQuiz(questions []Question) (Quiz, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	deck := make(Quiz, 0, len(questions))
	for idx, question := range questions {
		validated, err := NewQuestion(question.Text, question.Options, question.Answer)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", idx+1, err)
		}
		deck = append(deck, validated)
	}
	return deck, nil
}
