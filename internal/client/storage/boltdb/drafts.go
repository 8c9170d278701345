package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/bluestar1997/Http-json-mock/internal/client/storage"
)

// SaveDraft stores or updates a draft
func (s *Storage) SaveDraft(ctx context.Context, draft *storage.Draft) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		// Сериализуем черновик в JSON
		data, err := json.Marshal(draft)
		if err != nil {
			return fmt.Errorf("failed to marshal draft: %w", err)
		}

		// Сохраняем по ключу сущности
		if err := bucket.Put([]byte(draft.EntityKey), data); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		return nil
	})
}

// GetDraft retrieves a draft by entity key
func (s *Storage) GetDraft(ctx context.Context, entityKey string) (*storage.Draft, error) {
	var draft *storage.Draft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		data := bucket.Get([]byte(entityKey))
		if data == nil {
			return storage.ErrDraftNotFound
		}

		draft = &storage.Draft{}
		if err := json.Unmarshal(data, draft); err != nil {
			return fmt.Errorf("failed to unmarshal draft: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return draft, nil
}

// DeleteDraft removes a draft; deleting a missing draft is not an error
func (s *Storage) DeleteDraft(ctx context.Context, entityKey string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		if err := bucket.Delete([]byte(entityKey)); err != nil {
			return fmt.Errorf("failed to delete draft: %w", err)
		}

		return nil
	})
}

// ListDrafts returns all stored drafts
func (s *Storage) ListDrafts(ctx context.Context) ([]*storage.Draft, error) {
	var drafts []*storage.Draft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			draft := &storage.Draft{}
			if err := json.Unmarshal(v, draft); err != nil {
				return fmt.Errorf("failed to unmarshal draft %q: %w", string(k), err)
			}
			drafts = append(drafts, draft)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return drafts, nil
}
