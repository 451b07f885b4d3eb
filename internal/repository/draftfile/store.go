// Package draftfile persists draft applications in a single human-readable
// JSON file. The on-disk format is a flat array of draft records, directly
// inspectable and compatible with hand-edited fixtures.
package draftfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go-apply-portal/internal/domain"

	"github.com/google/uuid"
)

// Store is a file-backed draft repository. Saves upsert by job ID and are
// serialized by a mutex; the file is replaced atomically so readers never
// observe a partial write.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save upserts the draft for its job ID. An existing record for the same
// job is overwritten in place; saving never appends duplicates.
func (s *Store) Save(ctx context.Context, draft *domain.DraftApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}

	draft.SavedAt = time.Now().UTC()

	idx := -1
	for i, rec := range records {
		if rec.JobID == draft.JobID {
			// Overwrite in place, keeping the record identity stable
			if rec.ID != "" {
				draft.ID = rec.ID
			}
			idx = i
			break
		}
	}
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	if idx >= 0 {
		records[idx] = *draft
	} else {
		records = append(records, *draft)
	}

	return s.writeAll(records)
}

// Load returns the first record whose job ID matches. An absent or empty
// backing file is an empty collection, not an error.
func (s *Store) Load(ctx context.Context, jobID int64) (*domain.DraftApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.JobID == jobID {
			found := rec
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) readAll() ([]domain.DraftApplication, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		// Unreadable is a distinct condition from absent
		return nil, fmt.Errorf("draft store unreadable: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []domain.DraftApplication
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("draft store corrupt: %w", err)
	}
	return records, nil
}

func (s *Store) writeAll(records []domain.DraftApplication) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("draft store directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode drafts: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write drafts: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace drafts: %w", err)
	}
	return nil
}
