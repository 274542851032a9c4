package quiz

import (
	"errors"
	"testing"
)

func TestNewQuestionValidation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		options []string
		answer  string
		wantErr error
	}{
		{
			name:    "valid",
			text:    "What is a whale?",
			options: []string{"A newbie trader", "A large holder"},
			answer:  "A large holder",
		},
		{
			name:    "empty text",
			text:    "",
			options: []string{"A", "B"},
			answer:  "A",
			wantErr: ErrNoQuestionText,
		},
		{
			name:    "single option",
			text:    "Q?",
			options: []string{"A"},
			answer:  "A",
			wantErr: ErrTooFewOptions,
		},
		{
			name:    "duplicate options",
			text:    "Q?",
			options: []string{"A", "A", "B"},
			answer:  "A",
			wantErr: ErrDuplicateOption,
		},
		{
			name:    "answer missing from options",
			text:    "Q?",
			options: []string{"A", "B"},
			answer:  "C",
			wantErr: ErrAnswerNotOption,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			question, err := NewQuestion(tc.text, tc.options, tc.answer)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("NewQuestion error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewQuestion failed: %v", err)
			}
			if question.Answer != tc.answer {
				t.Fatalf("answer = %q, want %q", question.Answer, tc.answer)
			}
		})
	}
}

func TestNewQuestionCopiesOptions(t *testing.T) {
	options := []string{"A", "B"}
	question, err := NewQuestion("Q?", options, "A")
	if err != nil {
		t.Fatalf("NewQuestion failed: %v", err)
	}

	options[0] = "mutated"
	if question.Options[0] != "A" {
		t.Fatalf("question options aliased caller slice: %v", question.Options)
	}
}

func TestNewQuizRejectsEmptyAndBrokenDecks(t *testing.T) {
	if _, err := NewQuiz(nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("empty deck error = %v, want ErrNoQuestions", err)
	}

	_, err := NewQuiz([]Question{
		{Text: "Fine?", Options: []string{"A", "B"}, Answer: "A"},
		{Text: "Broken?", Options: []string{"A", "B"}, Answer: "Z"},
	})
	if !errors.Is(err, ErrAnswerNotOption) {
		t.Fatalf("broken deck error = %v, want ErrAnswerNotOption", err)
	}
}

func TestDefaultDeckIsValid(t *testing.T) {
	deck := DefaultDeck()
	if len(deck) == 0 {
		t.Fatalf("default deck is empty")
	}
	if _, err := NewQuiz(deck); err != nil {
		t.Fatalf("default deck failed validation: %v", err)
	}
}
