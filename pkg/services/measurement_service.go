package services

import (
	"context"
	"fmt"

	"github.com/metrics-lab/staticpress/ent"
	"github.com/metrics-lab/staticpress/ent/measurementcomparison"
)

// MeasurementService provides read access to measurement comparisons
type MeasurementService struct {
	client *ent.Client
}

// NewMeasurementService creates a new MeasurementService
func NewMeasurementService(client *ent.Client) *MeasurementService {
	return &MeasurementService{client: client}
}

// ListMeasurements returns a site's measurement comparisons, newest first
func (s *MeasurementService) ListMeasurements(ctx context.Context, siteID string, limit int) ([]*ent.MeasurementComparison, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.client.MeasurementComparison.Query().
		Where(measurementcomparison.SiteIDEQ(siteID)).
		Order(ent.Desc(measurementcomparison.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements for site %s: %w", siteID, err)
	}
	return rows, nil
}

// LatestMeasurement returns the most recent comparison for a site
func (s *MeasurementService) LatestMeasurement(ctx context.Context, siteID string) (*ent.MeasurementComparison, error) {
	row, err := s.client.MeasurementComparison.Query().
		Where(measurementcomparison.SiteIDEQ(siteID)).
		Order(ent.Desc(measurementcomparison.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest measurement for site %s: %w", siteID, err)
	}
	return row, nil
}
