package httpapi

import (
	"github.com/sirupsen/logrus"

	"cryptoquiz/internal/quiz"
)

type API struct {
	deck     quiz.Quiz
	sessions *sessionStore
	log      *logrus.Logger
}

func NewAPI(deck quiz.Quiz, log *logrus.Logger) *API {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &API{
		deck:     deck,
		sessions: newSessionStore(),
		log:      log,
	}
}
