package httpapi

import (
	"sync"

	"github.com/google/uuid"

	"cryptoquiz/internal/quiz"
)

// sessionView is the presenter for one HTTP-driven session. It records the
// last rendered state so GET handlers can serve it; the no-selection case
// is surfaced through the Submit error instead of a callback side effect.
type sessionView struct {
	number   int
	question string
	options  []string
	result   *quiz.Result
}

func (v *sessionView) RenderQuestion(text string, options []string) {
	v.number++
	v.question = text
	v.options = options
}

func (v *sessionView) NotifyNoSelection() {}

func (v *sessionView) NotifyResult(score, total int) {
	v.result = &quiz.Result{Score: score, Total: total}
}

// liveSession pairs a session with its view. The controller itself is
// single-threaded; the mutex only serializes concurrent HTTP requests for
// the same session onto that one logical thread of control.
type liveSession struct {
	mu      sync.Mutex
	id      string
	session *quiz.Session
	view    *sessionView
}

type sessionStore struct {
	mu   sync.Mutex
	byID map[string]*liveSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{byID: make(map[string]*liveSession)}
}

func (s *sessionStore) create(deck quiz.Quiz) (*liveSession, error) {
	view := &sessionView{}
	session, err := quiz.NewSession(deck, view)
	if err != nil {
		return nil, err
	}

	live := &liveSession{
		id:      uuid.NewString(),
		session: session,
		view:    view,
	}
	session.Start()

	s.mu.Lock()
	s.byID[live.id] = live
	s.mu.Unlock()

	return live, nil
}

func (s *sessionStore) get(id string) (*liveSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	live, ok := s.byID[id]
	return live, ok
}
