package ports

import (
	"context"
	"errors"

	actions "wms-performance-service/internal/actions/core/domain"
)

var ErrDatasetNotFound = errors.New("dataset not found")

type DatasetReaderPort interface {
	// ReadDataset returns the dataset's events, narrowed to dates when given.
	//   err wraps ErrDatasetNotFound -> unknown id
	ReadDataset(ctx context.Context, datasetID string, dates []string) (*actions.Dataset, error)
}
