// Package session persists the client's local state: the current session
// (token, user record, authenticated flag) and the set of completed tests.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/dyslexiaid/dyslexiaid-go/internal/catalog"
	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
)

var ErrNoSession = errors.New("no session stored")

var (
	bucketSession    = []byte("session")
	bucketCompletion = []byte("completion")

	sessionKey    = []byte("current")
	completionKey = []byte("tests")
)

// Session is the locally cached login state.
type Session struct {
	Token         string             `json:"token"`
	User          model.UserResponse `json:"user"`
	Authenticated bool               `json:"authenticated"`
	SavedAt       time.Time          `json:"saved_at"`
}

// Store is the bbolt-backed local state store.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the state database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating state directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initBuckets(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketSession, bucketCompletion} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

// SaveSession stores the login state.
func (s *Store) SaveSession(sess *Session) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(sess)
		if err != nil {
			return fmt.Errorf("marshaling session: %w", err)
		}
		return tx.Bucket(bucketSession).Put(sessionKey, data)
	})
}

// GetSession retrieves the stored login state, or ErrNoSession.
func (s *Store) GetSession() (*Session, error) {
	var sess *Session

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSession).Get(sessionKey)
		if data == nil {
			return ErrNoSession
		}
		sess = &Session{}
		if err := json.Unmarshal(data, sess); err != nil {
			return fmt.Errorf("unmarshaling session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// DeleteSession removes the stored login state (logout). The completion
// set is kept; it belongs to the local profile, not the login.
func (s *Store) DeleteSession() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(sessionKey)
	})
}

// IsAuthenticated reports whether an unexpired session exists.
func (s *Store) IsAuthenticated() bool {
	sess, err := s.GetSession()
	if err != nil {
		return false
	}
	return sess.Authenticated && sess.Token != ""
}

// Completed returns the locally stored completion set.
func (s *Store) Completed() (catalog.CompletionSet, error) {
	set := catalog.CompletionSet{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketCompletion).Get(completionKey)
		if data == nil {
			return nil
		}
		var numbers []int
		if err := json.Unmarshal(data, &numbers); err != nil {
			return fmt.Errorf("unmarshaling completion set: %w", err)
		}
		for _, n := range numbers {
			set.Merge(n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return set, nil
}

// MarkCompleted merges a test number into the stored completion set.
// Marking an already completed test is a no-op.
func (s *Store) MarkCompleted(number int) error {
	set, err := s.Completed()
	if err != nil {
		return err
	}
	set.Merge(number)

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(set.Numbers())
		if err != nil {
			return fmt.Errorf("marshaling completion set: %w", err)
		}
		return tx.Bucket(bucketCompletion).Put(completionKey, data)
	})
}
