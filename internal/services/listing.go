package services

//go:generate mockgen -source=listing.go -destination=mock_listing.go -package=services

import (
	"context"

	"github.com/sbilibin2017/survey-collector/internal/logger"
	"github.com/sbilibin2017/survey-collector/internal/models"
)

// ListingReader reads the dashboard listing.
type ListingReader interface {
	List(ctx context.Context) ([]models.ListingRow, error)
}

// ListingService serves the dashboard listing.
type ListingService struct {
	reader ListingReader
}

// NewListingService creates a new ListingService.
func NewListingService(reader ListingReader) *ListingService {
	return &ListingService{reader: reader}
}

// List returns every (user, section) row. The result is never nil.
func (s *ListingService) List(ctx context.Context) ([]models.ListingRow, error) {
	rows, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list submissions", "error", err)
		return nil, err
	}
	if rows == nil {
		rows = []models.ListingRow{}
	}
	return rows, nil
}
