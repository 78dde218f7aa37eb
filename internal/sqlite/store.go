package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"route-descriptor/internal/database"

	_ "modernc.org/sqlite"
)

const (
	schemaVersion = 1

	// maxQueryParams keeps IN (...) lists well under SQLite's bound parameter limit
	maxQueryParams = 500
)

// Store is a SQLite-based graph metadata store implementing database.GraphStore
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
	log    *zap.Logger

	nameRepo database.NameRepository
	nodeRepo database.NodeRepository
}

// New creates a new SQLite store at the specified path
func New(dbPath string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	logger.Info("opening sqlite database", zap.String("path", dbPath))

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -64000", // 64MB cache
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	store := &Store{
		db:     db,
		dbPath: dbPath,
		log:    logger,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	store.nameRepo = &nameRepository{store: store}
	store.nodeRepo = &nodeRepository{store: store}

	return store, nil
}

// GetDBPath returns the current database file path
func (s *Store) GetDBPath() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist, create everything
		return s.createSchema()
	}

	if version < schemaVersion {
		return s.runMigrations(version)
	}

	return nil
}

func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT INTO schema_version (version) VALUES (1);

	-- Street names keyed by the routing graph's name id
	CREATE TABLE IF NOT EXISTS street_names (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);

	-- Node locations in fixed point (degrees * 1e5)
	CREATE TABLE IF NOT EXISTS nodes (
		id INTEGER PRIMARY KEY,
		lat INTEGER NOT NULL,
		lon INTEGER NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.log.Info("sqlite schema initialized", zap.Int("version", schemaVersion))
	return nil
}

func (s *Store) runMigrations(fromVersion int) error {
	s.log.Info("migrating sqlite schema", zap.Int("from", fromVersion), zap.Int("to", schemaVersion))

	_, err := s.db.Exec("UPDATE schema_version SET version = ?", schemaVersion)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		// Checkpoint WAL before closing
		s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
		return s.db.Close()
	}
	return nil
}

// HealthCheck verifies the database connection
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Repository accessors
func (s *Store) Names() database.NameRepository { return s.nameRepo }
func (s *Store) Nodes() database.NodeRepository { return s.nodeRepo }

// chunkIDs splits ids into batches of at most maxQueryParams
func chunkIDs(ids []uint32) [][]uint32 {
	var chunks [][]uint32
	for len(ids) > maxQueryParams {
		chunks = append(chunks, ids[:maxQueryParams])
		ids = ids[maxQueryParams:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}

func inClause(ids []uint32) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = int64(id)
	}
	return strings.Join(placeholders, ","), args
}
