package repositories

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// Store owns the badger database and hands out the entity repositories
// backed by it.
type Store struct {
	db       *badger.DB
	dbPath   string
	isTestDB bool

	Blogs    *BadgerBlogRepository
	Comments *BadgerCommentRepository
	Users    *BadgerUserRepository
}

// Options configures Open.
type Options struct {
	Path     string
	InMemory bool
}

// Open opens (or creates) the badger database described by opts. An empty
// path without InMemory creates an isolated temporary database that is
// removed on Close.
func Open(opts Options) (*Store, error) {
	path := opts.Path
	isTest := false
	if path == "" && !opts.InMemory {
		tempPath, err := os.MkdirTemp("", "bloglist_test_db_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %v", err)
		}
		path = tempPath
		isTest = true
	}

	badgerOpts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").
			WithInMemory(true).
			WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}
	return NewStore(db, path, isTest), nil
}

// NewStore wraps an already opened database.
func NewStore(db *badger.DB, path string, isTestDB bool) *Store {
	return &Store{
		db:       db,
		dbPath:   path,
		isTestDB: isTestDB,
		Blogs:    NewBadgerBlogRepository(db),
		Comments: NewBadgerCommentRepository(db),
		Users:    NewBadgerUserRepository(db),
	}
}

func (s *Store) Close() error {
	err := s.db.Close()
	if err != nil {
		return err
	}

	// Clean up test database
	if s.isTestDB {
		err = os.RemoveAll(s.dbPath)
		if err != nil {
			return fmt.Errorf("failed to cleanup test database: %v", err)
		}
	}
	return nil
}

// Backup writes a full backup of the database to w.
func (s *Store) Backup(w io.Writer) error {
	if _, err := s.db.Backup(w, 0); err != nil {
		return fmt.Errorf("failed to backup database: %w", err)
	}
	return nil
}

// Restore loads a backup produced by Backup.
func (s *Store) Restore(r io.Reader) error {
	if err := s.db.Load(r, 16); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

// Clear drops every key.
func (s *Store) Clear() error {
	return s.db.DropAll()
}

var (
	_ BlogRepository    = (*BadgerBlogRepository)(nil)
	_ CommentRepository = (*BadgerCommentRepository)(nil)
	_ UserRepository    = (*BadgerUserRepository)(nil)
)
