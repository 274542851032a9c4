package quiz

import (
	"context"
	"errors"
	"time"
)

var ErrDeckNotFound = errors.New("deck not found")

// DeckInfo describes a stored deck without loading its questions.
type DeckInfo struct {
	Name          string
	QuestionCount int
	CreatedAt     time.Time
}

// DeckStore persists named question decks. Scores are never stored; a
// session's result lives only as long as the run that produced it.
type DeckStore interface {
	SaveDeck(ctx context.Context, name string, deck Quiz) error
	LoadDeck(ctx context.Context, name string) (Quiz, error)
	DeckExists(ctx context.Context, name string) (bool, error)
	ListDecks(ctx context.Context, limit int) ([]DeckInfo, error)
}
