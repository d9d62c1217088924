package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"notepad/internal/types"
)

var bucketDrafts = []byte("drafts")

// DraftStore keeps one unsaved edit buffer per notes service.
type DraftStore interface {
	Load(ctx context.Context, service string) (*types.Draft, bool, error)
	Save(ctx context.Context, service string, draft *types.Draft) error
	Clear(ctx context.Context, service string) error
	Close() error
}

type bboltDraftStore struct {
	db  *bolt.DB
	mu  sync.Mutex
	now func() time.Time
}

func NewBboltDraftStore(path string) (DraftStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("draft db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDrafts)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &bboltDraftStore{db: db, now: time.Now}, nil
}

func (s *bboltDraftStore) Load(ctx context.Context, service string) (*types.Draft, bool, error) {
	var (
		draft *types.Draft
		ok    bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDrafts)
		if b == nil {
			return nil
		}
		raw := b.Get(draftKey(service))
		if len(raw) == 0 {
			return nil
		}
		var item types.Draft
		if err := json.Unmarshal(raw, &item); err != nil {
			return err
		}
		draft = &item
		ok = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return draft, ok, nil
}

func (s *bboltDraftStore) Save(ctx context.Context, service string, draft *types.Draft) error {
	if draft == nil {
		return errors.New("draft is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	item := *draft
	if item.SavedAt.IsZero() {
		item.SavedAt = s.now().UTC()
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDrafts)
		if b == nil {
			return errors.New("drafts bucket missing")
		}
		return b.Put(draftKey(service), raw)
	})
}

func (s *bboltDraftStore) Clear(ctx context.Context, service string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDrafts)
		if b == nil {
			return nil
		}
		return b.Delete(draftKey(service))
	})
}

func (s *bboltDraftStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func draftKey(service string) []byte {
	service = strings.TrimRight(strings.TrimSpace(service), "/")
	if service == "" {
		service = "default"
	}
	return []byte(service)
}
