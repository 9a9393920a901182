package fiber

import (
	"context"
	"errors"
	"io"
	"net/http"

	"wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/actions/core/ports"
	"wms-performance-service/internal/actions/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type LoadActionsUseCase interface {
	ImportWorkbook(ctx context.Context, in usecase.ImportWorkbookInput) (*domain.Dataset, error)
	List(ctx context.Context) []*domain.Dataset
}

type DatasetHandler struct {
	uc LoadActionsUseCase
}

func NewDatasetHandler(uc LoadActionsUseCase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// UploadDataset godoc
// @Summary Upload a WMS action report
// @Description Parses an .xlsx/.xls action export and caches it as a dataset
// @Tags Datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "WMS report workbook"
// @Param label formData string false "Property label"
// @Success 201 {object} DatasetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /datasets [post]
func (h *DatasetHandler) UploadDataset(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_upload",
			Message: "multipart field 'file' is required",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_upload",
			Message: err.Error(),
		})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_upload",
			Message: err.Error(),
		})
	}

	ds, err := h.uc.ImportWorkbook(c.UserContext(), usecase.ImportWorkbookInput{
		Label:    c.FormValue("label"),
		Filename: fh.Filename,
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidUpload),
			errors.Is(err, ports.ErrUnsupportedFile),
			errors.Is(err, ports.ErrEmptyWorkbook):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_upload",
				Message: err.Error(),
			})
		default:
			// parser errors carry the offending row; surface them as bad input
			return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
				Error:   "unreadable_workbook",
				Message: err.Error(),
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(toResponse(ds))
}

// ListDatasets godoc
// @Summary List cached datasets
// @Tags Datasets
// @Produce json
// @Success 200 {object} ListDatasetsResponse
// @Router /datasets [get]
func (h *DatasetHandler) ListDatasets(c *fiber.Ctx) error {
	list := h.uc.List(c.UserContext())

	resp := ListDatasetsResponse{Datasets: make([]DatasetResponse, 0, len(list))}
	for _, ds := range list {
		resp.Datasets = append(resp.Datasets, toResponse(ds))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func toResponse(ds *domain.Dataset) DatasetResponse {
	dates := ds.Dates
	if dates == nil {
		dates = []string{}
	}
	return DatasetResponse{
		ID:       ds.ID,
		Label:    ds.Label,
		Source:   ds.Source,
		Rows:     len(ds.Events),
		Dates:    dates,
		LoadedAt: ds.LoadedAt,
	}
}
