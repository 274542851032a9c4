package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"cryptoquiz/internal/quiz"
)

// SaveDeck replaces the named deck and its questions in one transaction so
// a concurrent reader never observes a half-written deck.
func (s *SQLiteStore) SaveDeck(ctx context.Context, name string, deck quiz.Quiz) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("deck name is required")
	}
	if len(deck) == 0 {
		return quiz.ErrNoQuestions
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM deck_questions WHERE deck_name = ?`, name); err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO decks (name, question_count, created_at_unix) VALUES (?, ?, ?)`,
		name,
		len(deck),
		time.Now().UTC().UnixNano(),
	)
	if err != nil {
		return err
	}

	for position, question := range deck {
		optionsJSON, err := json.Marshal(question.Options)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO deck_questions (deck_name, position, prompt, options_json, answer) VALUES (?, ?, ?, ?, ?)`,
			name,
			position,
			question.Text,
			string(optionsJSON),
			question.Answer,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadDeck reads the named deck back in stored order. Rows are re-validated
// through quiz.NewQuiz so a hand-edited database fails loudly at load time
// instead of mid-session.
func (s *SQLiteStore) LoadDeck(ctx context.Context, name string) (quiz.Quiz, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT prompt, options_json, answer
		 FROM deck_questions
		 WHERE deck_name = ?
		 ORDER BY position ASC`,
		name,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		var (
			prompt      string
			optionsJSON string
			answer      string
		)
		if err := rows.Scan(&prompt, &optionsJSON, &answer); err != nil {
			return nil, err
		}

		var options []string
		if err := json.Unmarshal([]byte(optionsJSON), &options); err != nil {
			return nil, err
		}

		questions = append(questions, quiz.Question{
			Text:    prompt,
			Options: options,
			Answer:  answer,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		exists, err := s.DeckExists(ctx, name)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, quiz.ErrDeckNotFound
		}
	}

	return quiz.NewQuiz(questions)
}

func (s *SQLiteStore) DeckExists(ctx context.Context, name string) (bool, error) {
	var found int
	err := s.db.QueryRowContext(
		ctx,
		`SELECT 1 FROM decks WHERE name = ? LIMIT 1`,
		name,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SQLiteStore) ListDecks(ctx context.Context, limit int) ([]quiz.DeckInfo, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT name, question_count, created_at_unix
		 FROM decks
		 ORDER BY created_at_unix DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decks := make([]quiz.DeckInfo, 0)
	for rows.Next() {
		var (
			info          quiz.DeckInfo
			createdAtUnix int64
		)
		if err := rows.Scan(&info.Name, &info.QuestionCount, &createdAtUnix); err != nil {
			return nil, err
		}
		info.CreatedAt = time.Unix(0, createdAtUnix).UTC()
		decks = append(decks, info)
	}

	return decks, rows.Err()
}
