package quiz

import (
	"errors"
	"testing"
)

type fakePresenter struct {
	renderCalls      int
	lastQuestion     string
	lastOptions      []string
	noSelectionCalls int
	resultCalls      int
	lastScore        int
	lastTotal        int
}

func (f *fakePresenter) RenderQuestion(text string, options []string) {
	f.renderCalls++
	f.lastQuestion = text
	f.lastOptions = options
}

func (f *fakePresenter) NotifyNoSelection() {
	f.noSelectionCalls++
}

func (f *fakePresenter) NotifyResult(score, total int) {
	f.resultCalls++
	f.lastScore = score
	f.lastTotal = total
}

func threeQuestionDeck(t *testing.T) Quiz {
	t.Helper()
	deck, err := NewQuiz([]Question{
		{Text: "First?", Options: []string{"A", "B", "C", "D"}, Answer: "A"},
		{Text: "Second?", Options: []string{"A", "B", "C", "D"}, Answer: "B"},
		{Text: "Third?", Options: []string{"A", "B", "C", "D"}, Answer: "C"},
	})
	if err != nil {
		t.Fatalf("NewQuiz failed: %v", err)
	}
	return deck
}

func TestNewSessionRejectsEmptyQuizAndNilPresenter(t *testing.T) {
	if _, err := NewSession(nil, &fakePresenter{}); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("empty quiz error = %v, want ErrNoQuestions", err)
	}
	if _, err := NewSession(threeQuestionDeck(t), nil); !errors.Is(err, ErrNilPresenter) {
		t.Fatalf("nil presenter error = %v, want ErrNilPresenter", err)
	}
}

func TestStartRendersFirstQuestionUnselected(t *testing.T) {
	presenter := &fakePresenter{}
	session, err := NewSession(threeQuestionDeck(t), presenter)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	session.Start()

	if presenter.renderCalls != 1 {
		t.Fatalf("render calls = %d, want 1", presenter.renderCalls)
	}
	if presenter.lastQuestion != "First?" {
		t.Fatalf("rendered question = %q", presenter.lastQuestion)
	}
	if len(presenter.lastOptions) != 4 {
		t.Fatalf("rendered %d options, want 4", len(presenter.lastOptions))
	}
	if session.Index() != 0 || session.Score() != 0 || session.Finished() {
		t.Fatalf("unexpected initial state: index=%d score=%d finished=%v", session.Index(), session.Score(), session.Finished())
	}
}

func TestSubmitWithoutSelectionChangesNothing(t *testing.T) {
	presenter := &fakePresenter{}
	session, _ := NewSession(threeQuestionDeck(t), presenter)
	session.Start()

	for attempt := 0; attempt < 3; attempt++ {
		if err := session.Submit(); !errors.Is(err, ErrNoSelection) {
			t.Fatalf("submit error = %v, want ErrNoSelection", err)
		}
	}

	if presenter.noSelectionCalls != 3 {
		t.Fatalf("no-selection notifications = %d, want 3", presenter.noSelectionCalls)
	}
	if session.Index() != 0 || session.Score() != 0 {
		t.Fatalf("state changed by empty submit: index=%d score=%d", session.Index(), session.Score())
	}
	if presenter.renderCalls != 1 {
		t.Fatalf("empty submit re-rendered the question: render calls = %d", presenter.renderCalls)
	}
}

func TestLastSelectionBeforeSubmitWins(t *testing.T) {
	presenter := &fakePresenter{}
	session, _ := NewSession(threeQuestionDeck(t), presenter)
	session.Start()

	if err := session.Select("B"); err != nil {
		t.Fatalf("first select failed: %v", err)
	}
	if err := session.Select("A"); err != nil {
		t.Fatalf("second select failed: %v", err)
	}
	if err := session.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if session.Score() != 1 {
		t.Fatalf("score = %d, want 1 (last selection should be graded)", session.Score())
	}
	if session.Index() != 1 {
		t.Fatalf("index = %d, want 1", session.Index())
	}
}

func TestFullRunScoresExactMatchesOnly(t *testing.T) {
	presenter := &fakePresenter{}
	session, _ := NewSession(threeQuestionDeck(t), presenter)
	session.Start()

	// Correct answers are A, B, C; the user answers A, X, C.
	for _, answer := range []string{"A", "X", "C"} {
		if err := session.Select(answer); err != nil {
			t.Fatalf("select %q failed: %v", answer, err)
		}
		if err := session.Submit(); err != nil {
			t.Fatalf("submit %q failed: %v", answer, err)
		}
		if session.Score() > session.Index() {
			t.Fatalf("score %d exceeds index %d", session.Score(), session.Index())
		}
	}

	if !session.Finished() {
		t.Fatalf("session not finished after last submit")
	}
	result, ok := session.Result()
	if !ok {
		t.Fatalf("finished session has no result")
	}
	if result.Score != 2 || result.Total != 3 {
		t.Fatalf("result = %+v, want {Score:2 Total:3}", result)
	}
	if presenter.resultCalls != 1 || presenter.lastScore != 2 || presenter.lastTotal != 3 {
		t.Fatalf("result notification = (calls=%d score=%d total=%d)", presenter.resultCalls, presenter.lastScore, presenter.lastTotal)
	}
	if presenter.renderCalls != 3 {
		t.Fatalf("render calls = %d, want 3", presenter.renderCalls)
	}
}

func TestScoreNeverDecreasesAndNeverExceedsIndex(t *testing.T) {
	presenter := &fakePresenter{}
	session, _ := NewSession(threeQuestionDeck(t), presenter)
	session.Start()

	previousScore := 0
	for _, answer := range []string{"D", "B", "D"} {
		_ = session.Select(answer)
		if err := session.Submit(); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if session.Score() < previousScore {
			t.Fatalf("score decreased from %d to %d", previousScore, session.Score())
		}
		if session.Score() > session.Index() {
			t.Fatalf("score %d exceeds index %d", session.Score(), session.Index())
		}
		previousScore = session.Score()
	}
}

func TestSubmitBeforeSelectOnSingleQuestionDeck(t *testing.T) {
	deck, err := NewQuiz([]Question{
		{Text: "Only?", Options: []string{"Yes", "No"}, Answer: "Yes"},
	})
	if err != nil {
		t.Fatalf("NewQuiz failed: %v", err)
	}

	presenter := &fakePresenter{}
	session, _ := NewSession(deck, presenter)
	session.Start()

	if err := session.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("submit error = %v, want ErrNoSelection", err)
	}
	if session.Index() != 0 {
		t.Fatalf("index = %d, want 0", session.Index())
	}
}

func TestOperationsAfterCompletionFail(t *testing.T) {
	deck, err := NewQuiz([]Question{
		{Text: "Only?", Options: []string{"Yes", "No"}, Answer: "Yes"},
	})
	if err != nil {
		t.Fatalf("NewQuiz failed: %v", err)
	}

	presenter := &fakePresenter{}
	session, _ := NewSession(deck, presenter)
	session.Start()

	_ = session.Select("Yes")
	if err := session.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	result, ok := session.Result()
	if !ok || result.Score != 1 || result.Total != 1 {
		t.Fatalf("result = (%+v, %v), want ({1 1}, true)", result, ok)
	}

	if err := session.Submit(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("submit after completion = %v, want ErrSessionClosed", err)
	}
	if err := session.Select("No"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("select after completion = %v, want ErrSessionClosed", err)
	}
	if presenter.resultCalls != 1 {
		t.Fatalf("result notified %d times, want once", presenter.resultCalls)
	}
}

func TestSelectionClearedBetweenQuestions(t *testing.T) {
	presenter := &fakePresenter{}
	session, _ := NewSession(threeQuestionDeck(t), presenter)
	session.Start()

	_ = session.Select("A")
	if err := session.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// The previous selection must not carry over to the next question.
	if err := session.Submit(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("submit on fresh question = %v, want ErrNoSelection", err)
	}
	if session.Index() != 1 {
		t.Fatalf("index = %d, want 1", session.Index())
	}
}
