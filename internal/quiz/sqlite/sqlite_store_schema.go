package sqlite

import (
	"context"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	// No FK constraints so deck overwrite stays a plain two-table replace
	// fully controlled by application transactions.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			name TEXT PRIMARY KEY,
			question_count INTEGER NOT NULL,
			created_at_unix INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS deck_questions (
			deck_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			prompt TEXT NOT NULL,
			options_json TEXT NOT NULL,
			answer TEXT NOT NULL,
			PRIMARY KEY (deck_name, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_decks_created_at ON decks(created_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
