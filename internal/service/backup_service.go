package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitmarket/personal-app/internal/kv"
	"fitmarket/personal-app/internal/repository/kvstore"
	"fitmarket/personal-app/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrBackupDisabled = errors.New("backup storage is not configured")

// BackupService exports the raw collection blobs to object storage so
// the local store can be restored or inspected off-device.
type BackupService interface {
	Export(ctx context.Context) (objectKey string, err error)
	DownloadURL(ctx context.Context, objectKey string) (string, error)
	Delete(ctx context.Context, objectKey string) error
}

// backupSnapshot is the exported document: one raw JSON array per
// collection key, exactly as stored.
type backupSnapshot struct {
	CreatedAt   time.Time                  `json:"created_at"`
	Collections map[string]json.RawMessage `json:"collections"`
}

type backupService struct {
	store   kv.Store
	objects storage.ObjectStorage
	logger  *zap.Logger
}

// NewBackupService wires the blob store to object storage. A nil
// ObjectStorage disables the feature (no bucket configured).
func NewBackupService(store kv.Store, objects storage.ObjectStorage, logger *zap.Logger) BackupService {
	return &backupService{store: store, objects: objects, logger: logger}
}

func (s *backupService) Export(ctx context.Context) (string, error) {
	if s.objects == nil {
		return "", ErrBackupDisabled
	}

	snap := backupSnapshot{
		CreatedAt:   time.Now().UTC(),
		Collections: make(map[string]json.RawMessage, 4),
	}
	for _, key := range []string{
		kvstore.KeyPersonais, kvstore.KeyAlunos, kvstore.KeyServicos, kvstore.KeyContratos,
	} {
		raw, err := s.store.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("read collection %s: %w", key, err)
		}
		if raw == nil {
			raw = []byte("[]")
		}
		snap.Collections[key] = raw
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("backups/%s-%s.json",
		snap.CreatedAt.Format("20060102T150405"), uuid.NewString())
	if err := s.objects.Put(ctx, objectKey, "application/json", data); err != nil {
		return "", err
	}

	s.logger.Info("backup exported", zap.String("object_key", objectKey), zap.Int("bytes", len(data)))
	return objectKey, nil
}

func (s *backupService) DownloadURL(ctx context.Context, objectKey string) (string, error) {
	if s.objects == nil {
		return "", ErrBackupDisabled
	}
	return s.objects.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}

// Delete removes an exported backup from object storage.
func (s *backupService) Delete(ctx context.Context, objectKey string) error {
	if s.objects == nil {
		return ErrBackupDisabled
	}
	if err := s.objects.DeleteObject(ctx, objectKey); err != nil {
		return err
	}
	s.logger.Info("backup deleted", zap.String("object_key", objectKey))
	return nil
}
