package services

//go:generate mockgen -source=purge.go -destination=mock_purge.go -package=services

import (
	"context"

	"github.com/sbilibin2017/survey-collector/internal/logger"
)

// TableCleaner deletes every row of every table.
type TableCleaner interface {
	DeleteAll(ctx context.Context) error
}

// PhotoPurger deletes every stored photo file.
type PhotoPurger interface {
	Purge() (int, error)
}

// PurgeService wipes all persisted data and photo files.
type PurgeService struct {
	tx     TxRunner
	tables TableCleaner
	files  PhotoPurger
}

// NewPurgeService creates a new PurgeService.
func NewPurgeService(tx TxRunner, tables TableCleaner, files PhotoPurger) *PurgeService {
	return &PurgeService{tx: tx, tables: tables, files: files}
}

// Purge empties all tables in one transaction, then deletes the photo files.
// File deletion problems are logged only.
func (s *PurgeService) Purge(ctx context.Context) error {
	if err := s.tx.Do(ctx, s.tables.DeleteAll); err != nil {
		logger.Log.Errorw("failed to purge tables", "error", err)
		return err
	}

	removed, err := s.files.Purge()
	if err != nil {
		logger.Log.Warnw("photo directory not readable, nothing deleted", "error", err)
		return nil
	}

	logger.Log.Infow("purge completed", "photos_removed", removed)
	return nil
}
