package datasets

import (
	"context"
	"errors"
	"fmt"

	actions "wms-performance-service/internal/actions/core/domain"
	actionsUsecase "wms-performance-service/internal/actions/core/usecase"
	"wms-performance-service/internal/performance/core/ports"
)

type LoadActionsUseCase interface {
	Execute(ctx context.Context, in actionsUsecase.LoadActionsInput) (*actions.Dataset, error)
}

// Reader serves performance use cases from the actions module's cache.
type Reader struct {
	uc LoadActionsUseCase
}

func NewReader(uc LoadActionsUseCase) *Reader {
	return &Reader{uc: uc}
}

var _ ports.DatasetReaderPort = (*Reader)(nil)

func (r *Reader) ReadDataset(ctx context.Context, datasetID string, dates []string) (*actions.Dataset, error) {
	ds, err := r.uc.Execute(ctx, actionsUsecase.LoadActionsInput{SourceID: datasetID, Dates: dates})
	if errors.Is(err, actionsUsecase.ErrDatasetNotFound) {
		return nil, fmt.Errorf("%w: %s", ports.ErrDatasetNotFound, datasetID)
	}
	return ds, err
}
