package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/nvarma/quizfeed/ent"
	"github.com/nvarma/quizfeed/ent/questionstate"
	"github.com/nvarma/quizfeed/ent/topicweight"
	"github.com/nvarma/quizfeed/ent/weightchangeevent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// QuestionRepo returns a QuestionRepo backed by this store.
func (s *Store) QuestionRepo() QuestionRepo {
	return &questionRepo{client: s.client}
}

// StateRepo returns a StateRepo backed by this store.
func (s *Store) StateRepo() StateRepo {
	return &stateRepo{client: s.client}
}

// WeightRepo returns a WeightRepo backed by this store.
func (s *Store) WeightRepo() WeightRepo {
	return &weightRepo{client: s.client}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client}
}

// ResetUser deletes all per-user rows: answer states, weights, and
// weight-change events. The question pool is shared and untouched.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	if _, err := s.client.QuestionState.Delete().
		Where(questionstate.UserIDEQ(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete question states: %w", err)
	}
	if _, err := s.client.TopicWeight.Delete().
		Where(topicweight.UserIDEQ(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete topic weights: %w", err)
	}
	if _, err := s.client.WeightChangeEvent.Delete().
		Where(weightchangeevent.UserIDEQ(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete weight events: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-writer performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. QUIZFEED_DB environment variable
// 2. $XDG_DATA_HOME/quizfeed/quizfeed.db
// 3. ~/.local/share/quizfeed/quizfeed.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZFEED_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizfeed", "quizfeed.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
