package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/models"
)

const (
	DefaultArchiveListLimit = 50
	MaxArchiveListLimit     = 500
)

// The same statements run on postgres and sqlite; placeholders are written as
// '?' and rebound for the connected driver.
const (
	createArchiveTable = `
		CREATE TABLE IF NOT EXISTS archived_games (
			id             TEXT PRIMARY KEY,
			start_position TEXT NOT NULL,
			final_position TEXT NOT NULL,
			moves          TEXT NOT NULL,
			black_score    INTEGER NOT NULL,
			white_score    INTEGER NOT NULL,
			finished_at    BIGINT NOT NULL
		)
	`

	insertArchivedGame = `
		INSERT INTO archived_games (id, start_position, final_position, moves, black_score, white_score, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`

	selectArchivedGame = `
		SELECT id, start_position, final_position, moves, black_score, white_score, finished_at
		FROM archived_games
		WHERE id = ?
	`

	listArchivedGames = `
		SELECT id, start_position, final_position, moves, black_score, white_score, finished_at
		FROM archived_games
		ORDER BY finished_at DESC, id
		LIMIT ?
	`
)

// ArchiveRepository handles database operations for finished games.
type ArchiveRepository struct {
	db *sqlx.DB
}

// NewArchiveRepository creates a new ArchiveRepository.
func NewArchiveRepository(db *sqlx.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// Migrate creates the archive table if it does not exist.
func (repo *ArchiveRepository) Migrate(ctx context.Context) error {
	if _, err := repo.db.ExecContext(ctx, createArchiveTable); err != nil {
		return fmt.Errorf("error creating archive table: %w", err)
	}
	return nil
}

// Archive stores a finished game. Archiving the same game twice is a no-op.
func (repo *ArchiveRepository) Archive(ctx context.Context, game models.ArchivedGame) error {
	_, err := repo.db.ExecContext(ctx, repo.db.Rebind(insertArchivedGame),
		game.ID,
		game.StartPosition,
		game.FinalPosition,
		game.Moves,
		game.BlackScore,
		game.WhiteScore,
		game.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("error archiving game: %w", err)
	}

	return nil
}

// Get looks up an archived game.
func (repo *ArchiveRepository) Get(ctx context.Context, id string) (models.ArchivedGame, error) {
	var game models.ArchivedGame

	err := repo.db.GetContext(ctx, &game, repo.db.Rebind(selectArchivedGame), id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ArchivedGame{}, ErrGameNotFound
	}

	if err != nil {
		return models.ArchivedGame{}, fmt.Errorf("error looking up archived game: %w", err)
	}

	return game, nil
}

// List returns the most recently finished games, newest first.
func (repo *ArchiveRepository) List(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	if limit <= 0 {
		limit = DefaultArchiveListLimit
	}
	limit = min(limit, MaxArchiveListLimit)

	games := make([]models.ArchivedGame, 0)

	if err := repo.db.SelectContext(ctx, &games, repo.db.Rebind(listArchivedGames), limit); err != nil {
		return nil, fmt.Errorf("error listing archived games: %w", err)
	}

	return games, nil
}
