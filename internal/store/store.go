package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/kpeck/corechess/internal/board"
	"github.com/kpeck/corechess/internal/search"
	"github.com/seekerror/logw"
)

const (
	keyConfig      = "config"
	keyBookHistory = "book_history"
)

// Config is the engine-level configuration the core's External Interfaces
// section names: search depth and root worker count. It also records which
// color the engine plays, since a resumed local session needs to know
// whose turn it is driving.
type Config struct {
	Depth       int         `json:"depth"`
	Workers     int         `json:"workers"`
	EngineColor board.Color `json:"engine_color"`
}

// DefaultConfig mirrors the search package's reference defaults.
func DefaultConfig() Config {
	return Config{
		Depth:       search.DefaultDepth,
		Workers:     search.DefaultWorkers,
		EngineColor: board.Black,
	}
}

// Store wraps an embedded key-value database for configuration and
// opening-book-cursor persistence, the way the teacher wraps BadgerDB for
// user preferences.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the on-disk store under the
// platform's standard application-data directory.
func Open(ctx context.Context) (*Store, error) {
	dir, err := databaseDir()
	if err != nil {
		return nil, fmt.Errorf("store: resolve database dir: %w", err)
	}
	return openAt(ctx, dir)
}

// OpenAt opens the store at an explicit directory, bypassing the
// platform-specific data-dir resolution. Used by callers (such as
// cmd/chesscore's -store flag) that want to override the real data-dir
// lookup, the way the teacher's storage tests build a Storage around a
// temp directory.
func OpenAt(ctx context.Context, dir string) (*Store, error) {
	return openAt(ctx, dir)
}

func openAt(ctx context.Context, dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open database at %s: %w", dir, err)
	}

	logw.Infof(ctx, "[store] opened database at %s", dir)
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveConfig persists the engine configuration.
func (s *Store) SaveConfig(cfg Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("store: marshal config: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyConfig), data)
	})
}

// LoadConfig loads the engine configuration, returning the defaults if none
// has been saved yet.
func (s *Store) LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyConfig))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cfg)
		})
	})
	if err != nil {
		return Config{}, fmt.Errorf("store: load config: %w", err)
	}
	return cfg, nil
}

// SaveBookHistory persists the sequence of moves played so far in the
// current game, in order, so a resumed process can replay them through a
// fresh book.Book to restore its cursor rather than serializing the book
// tree's internal node pointers directly.
func (s *Store) SaveBookHistory(moves []board.Move) error {
	data, err := json.Marshal(moves)
	if err != nil {
		return fmt.Errorf("store: marshal book history: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyBookHistory), data)
	})
}

// LoadBookHistory loads the move sequence saved by SaveBookHistory, or nil
// if none has been saved yet (a fresh game).
func (s *Store) LoadBookHistory() ([]board.Move, error) {
	var moves []board.Move
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyBookHistory))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &moves)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store: load book history: %w", err)
	}
	return moves, nil
}
