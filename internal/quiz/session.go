package quiz

import "errors"

var (
	ErrNoSelection   = errors.New("no option selected")
	ErrSessionClosed = errors.New("session already completed")
	ErrNilPresenter  = errors.New("presenter is required")
)

// Result is the immutable outcome of a completed session.
type Result struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Session runs one pass through a quiz: present each question in order,
// record a single selection per question, tally exact matches against the
// correct answer. The session owns all mutable state; the presenter only
// mirrors it. One logical thread of control drives a session, so no
// locking happens here.
type Session struct {
	quiz      Quiz
	presenter Presenter

	index     int
	score     int
	selection string
	selected  bool
	finished  bool
	result    Result
}

func NewSession(deck Quiz, presenter Presenter) (*Session, error) {
	if len(deck) == 0 {
		return nil, ErrNoQuestions
	}
	if presenter == nil {
		return nil, ErrNilPresenter
	}
	return &Session{
		quiz:      deck,
		presenter: presenter,
	}, nil
}

// Start presents the first question. Calling Start on a finished session
// does nothing; the result has already been reported.
func (s *Session) Start() {
	if s.finished {
		return
	}
	s.loadCurrentQuestion()
}

// Select records the user's current choice. It is a pure UI-state update:
// the option is not checked against the question, and repeated calls
// before Submit overwrite each other.
func (s *Session) Select(option string) error {
	if s.finished {
		return ErrSessionClosed
	}
	s.selection = option
	s.selected = true
	return nil
}

// Submit grades the current selection and advances to the next question,
// or finalizes the session when the last question was just answered. With
// nothing selected it notifies the presenter, returns ErrNoSelection and
// leaves index and score untouched.
func (s *Session) Submit() error {
	if s.finished {
		return ErrSessionClosed
	}
	if !s.selected {
		s.presenter.NotifyNoSelection()
		return ErrNoSelection
	}

	if s.selection == s.quiz[s.index].Answer {
		s.score++
	}
	s.index++
	s.clearSelection()
	s.loadCurrentQuestion()
	return nil
}

// Result returns the final tally once the session has completed.
func (s *Session) Result() (Result, bool) {
	if !s.finished {
		return Result{}, false
	}
	return s.result, true
}

func (s *Session) Index() int { return s.index }

func (s *Session) Score() int { return s.score }

func (s *Session) Finished() bool { return s.finished }

func (s *Session) loadCurrentQuestion() {
	if s.index < len(s.quiz) {
		s.clearSelection()
		question := s.quiz[s.index]
		s.presenter.RenderQuestion(question.Text, question.Options)
		return
	}
	s.finalize()
}

func (s *Session) finalize() {
	s.result = Result{Score: s.score, Total: len(s.quiz)}
	s.finished = true
	s.presenter.NotifyResult(s.result.Score, s.result.Total)
}

func (s *Session) clearSelection() {
	s.selection = ""
	s.selected = false
}
