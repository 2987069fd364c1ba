// Package storage provides SQLite-based persistence for scores and saved
// games. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/dus-study/game-2048-model/internal/model"
)

// ErrNoSavedGame is returned by LoadGame when the slot is empty.
var ErrNoSavedGame = errors.New("storage: no saved game in slot")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single finished-game record.
type ScoreEntry struct {
	ID        int64
	Score     int
	MaxTile   int
	CreatedAt time.Time
}

// SavedGame is a board mid-game, persisted under a named slot.
type SavedGame struct {
	Slot      string
	Board     *model.Board
	Score     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS saved_games (
			slot TEXT PRIMARY KEY,
			board_size INTEGER NOT NULL,
			board TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveScore(score, maxTile int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (score, max_tile) VALUES (?, ?)",
		score, maxTile,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		"SELECT id, score, max_tile, created_at FROM scores ORDER BY score DESC, created_at ASC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		if err := rows.Scan(&e.ID, &e.Score, &e.MaxTile, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: score iteration failed: %w", err)
	}
	return entries, nil
}

// HighScore returns the best recorded score, 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var high sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !high.Valid {
		return 0, nil
	}
	return int(high.Int64), nil
}

// SaveGame persists a mid-game board under the given slot, replacing any
// previous save in that slot.
func (s *Store) SaveGame(slot string, board *model.Board, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO saved_games (slot, board_size, board, score, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
			board_size = excluded.board_size,
			board = excluded.board,
			score = excluded.score,
			updated_at = excluded.updated_at`,
		slot, board.Size(), encodeBoard(board), score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame restores the saved game in the given slot.
func (s *Store) LoadGame(slot string) (SavedGame, error) {
	var (
		size    int
		encoded string
		saved   SavedGame
	)
	err := s.db.QueryRow(
		"SELECT board_size, board, score, updated_at FROM saved_games WHERE slot = ?",
		slot,
	).Scan(&size, &encoded, &saved.Score, &saved.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedGame{}, ErrNoSavedGame
	}
	if err != nil {
		return SavedGame{}, fmt.Errorf("storage: cannot load game: %w", err)
	}

	board, err := decodeBoard(size, encoded)
	if err != nil {
		return SavedGame{}, err
	}
	saved.Slot = slot
	saved.Board = board
	return saved, nil
}

// DeleteGame removes the saved game in the given slot, if any.
func (s *Store) DeleteGame(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saved_games WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete saved game: %w", err)
	}
	return nil
}

// encodeBoard serializes a board as comma-joined flat ranks.
func encodeBoard(board *model.Board) string {
	flat := board.Flat()
	parts := make([]string, len(flat))
	for i, r := range flat {
		parts[i] = strconv.Itoa(int(r))
	}
	return strings.Join(parts, ",")
}

// decodeBoard parses the comma-joined rank form back into a board.
func decodeBoard(size int, encoded string) (*model.Board, error) {
	parts := strings.Split(encoded, ",")
	cells := make([]model.Rank, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > 255 {
			return nil, fmt.Errorf("storage: corrupt saved board cell %q", p)
		}
		cells[i] = model.Rank(v)
	}

	board, err := model.FromFlat(size, cells)
	if err != nil {
		return nil, fmt.Errorf("storage: corrupt saved board: %w", err)
	}
	return board, nil
}
