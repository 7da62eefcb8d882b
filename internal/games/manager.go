package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
)

var ErrIllegalMove = errors.New("illegal move")

// Manager owns the live games. Moves on one game are serialized through the
// locker, different games proceed independently.
type Manager struct {
	store   repository.GameStore
	locker  repository.Locker
	archive *repository.ArchiveRepository
	now     func() time.Time
}

// NewManager creates a Manager.
func NewManager(
	store repository.GameStore,
	locker repository.Locker,
	archive *repository.ArchiveRepository,
) *Manager {
	return &Manager{
		store:   store,
		locker:  locker,
		archive: archive,
		now:     time.Now,
	}
}

// NewManagerFromServices picks Redis backed storage when Redis is configured
// and in-memory storage otherwise.
func NewManagerFromServices(s *services.Services, gameTTL time.Duration) *Manager {
	archive := repository.NewArchiveRepository(s.Archive)

	if s.Redis == nil {
		return NewManager(repository.NewMemoryGameStore(), repository.NewMemoryLocker(), archive)
	}

	return NewManager(
		repository.NewRedisGameStore(s.Redis, gameTTL),
		repository.NewRedisLocker(s.Redis),
		archive,
	)
}

// Game is a live or archived game together with its replayed board.
type Game struct {
	Record *models.GameRecord
	Board  *othello.Board
}

// Response returns the API representation of the game.
func (g *Game) Response() models.GameResponse {
	return models.NewGameResponse(g.Record, g.Board)
}

// Create starts a new game. An empty start means the standard start position,
// otherwise start must be a valid encoded position.
func (m *Manager) Create(ctx context.Context, start string) (*Game, error) {
	board := othello.NewBoard()

	if start != "" {
		var err error
		if board, err = othello.NewBoardFromEncoded(start); err != nil {
			return nil, err
		}
	}

	now := m.now()
	record := &models.GameRecord{
		ID:        uuid.New().String(),
		Start:     board.Encoded(),
		Moves:     make([]othello.Move, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	slog.Debug("created game", "id", record.ID, "start", record.Start)

	return &Game{Record: record, Board: board}, nil
}

// Get loads a game. Finished games are looked up in the archive.
func (m *Manager) Get(ctx context.Context, id string) (*Game, error) {
	game, err := m.load(ctx, id)
	if !errors.Is(err, repository.ErrGameNotFound) {
		return game, err
	}

	archived, err := m.archive.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	record := &models.GameRecord{
		ID:    archived.ID,
		Start: archived.StartPosition,
		Moves: archived.Moves,
	}

	board, err := record.Board()
	if err != nil {
		return nil, err
	}

	return &Game{Record: record, Board: board}, nil
}

func (m *Manager) load(ctx context.Context, id string) (*Game, error) {
	record, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	board, err := record.Board()
	if err != nil {
		return nil, err
	}

	return &Game{Record: record, Board: board}, nil
}

// Play commits a move for side on field. Unparsable fields and illegal moves
// return ErrIllegalMove. A move that ends the game moves it to the archive.
func (m *Manager) Play(ctx context.Context, id string, side othello.Side, field string) (*Game, error) {
	unlock, err := m.locker.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	game, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !game.Board.CommitField(field, side) {
		return nil, fmt.Errorf("%w: %s cannot play %q", ErrIllegalMove, side, field)
	}

	game.Record.Moves = game.Board.Moves()
	game.Record.UpdatedAt = m.now()

	if game.Board.State() == othello.Terminal {
		if err = m.finish(ctx, game); err != nil {
			return nil, err
		}
		return game, nil
	}

	if err = m.store.Save(ctx, game.Record); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}

// finish archives a terminal game and removes it from the live store.
func (m *Manager) finish(ctx context.Context, game *Game) error {
	archived := models.NewArchivedGame(game.Record, game.Board, game.Record.UpdatedAt)

	if err := m.archive.Archive(ctx, archived); err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}

	if err := m.store.Delete(ctx, game.Record.ID); err != nil {
		return fmt.Errorf("failed to remove finished game: %w", err)
	}

	slog.Info(
		"game finished",
		"id", game.Record.ID,
		"black", archived.BlackScore,
		"white", archived.WhiteScore,
		"moves", len(archived.Moves),
	)

	return nil
}

// LegalMoves returns the legal moves of side in a game.
func (m *Manager) LegalMoves(ctx context.Context, id string, side othello.Side) ([]othello.Coordinate, error) {
	game, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return game.Board.LegalMoves(side), nil
}

// Archived returns the most recently finished games.
func (m *Manager) Archived(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	return m.archive.List(ctx, limit)
}

// ArchivedGame looks up a finished game.
func (m *Manager) ArchivedGame(ctx context.Context, id string) (models.ArchivedGame, error) {
	return m.archive.Get(ctx, id)
}
