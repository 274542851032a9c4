// Package deck resolves the question list the front-ends play: a deck
// file when configured, otherwise a stored deck, otherwise the built-in
// crypto deck.
package deck

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cryptoquiz/internal/config"
	"cryptoquiz/internal/quiz"
	"cryptoquiz/internal/quiz/sqlite"
	"cryptoquiz/internal/quizfile"
)

func Resolve(ctx context.Context, cfg *config.Config, log *logrus.Logger) (quiz.Quiz, error) {
	if cfg.QuestionsFile != "" {
		loaded, err := quizfile.Load(cfg.QuestionsFile)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"file": cfg.QuestionsFile, "questions": len(loaded)}).Info("loaded deck from file")
		return loaded, nil
	}

	if cfg.DBPath != "" {
		return loadStoredDeck(ctx, cfg, log)
	}

	log.Info("using built-in crypto deck")
	return quiz.DefaultDeck(), nil
}

func loadStoredDeck(ctx context.Context, cfg *config.Config, log *logrus.Logger) (quiz.Quiz, error) {
	store, err := sqlite.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open deck store: %w", err)
	}
	defer store.Close()

	loaded, err := store.LoadDeck(ctx, cfg.DeckName)
	if err == nil {
		log.WithFields(logrus.Fields{"deck": cfg.DeckName, "questions": len(loaded)}).Info("loaded deck from store")
		return loaded, nil
	}
	if !errors.Is(err, quiz.ErrDeckNotFound) {
		return nil, fmt.Errorf("load deck %q: %w", cfg.DeckName, err)
	}

	// First run against an empty store: seed it with the built-in deck so
	// the questions can be edited in place afterwards.
	seeded := quiz.DefaultDeck()
	if err := store.SaveDeck(ctx, cfg.DeckName, seeded); err != nil {
		return nil, fmt.Errorf("seed deck %q: %w", cfg.DeckName, err)
	}
	log.WithField("deck", cfg.DeckName).Info("seeded deck store with built-in deck")
	return seeded, nil
}
