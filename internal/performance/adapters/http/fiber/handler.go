package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"wms-performance-service/internal/performance/core/domain"
	"wms-performance-service/internal/performance/core/ports"
	"wms-performance-service/internal/performance/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type GetReportUseCase interface {
	Execute(ctx context.Context, in usecase.GetReportInput) (*domain.Report, error)
}

type CompareUseCase interface {
	Execute(ctx context.Context, in usecase.CompareInput) (*usecase.CompareResult, error)
}

type PerformanceHandler struct {
	reportUC  GetReportUseCase
	compareUC CompareUseCase
}

func NewPerformanceHandler(reportUC GetReportUseCase, compareUC CompareUseCase) *PerformanceHandler {
	return &PerformanceHandler{reportUC: reportUC, compareUC: compareUC}
}

// GetReport godoc
// @Summary Warehouse performance report
// @Description Aggregates a dataset per worker, department or property
// @Tags Reports
// @Produce json
// @Param dataset query string true "Dataset id"
// @Param group_by query string false "Group by: worker | department | property"
// @Param mode query string false "Mode: single_day | total | average"
// @Param dates query string false "Comma separated days (YYYY-MM-DD)"
// @Param actors query string false "Comma separated worker names"
// @Param cost_centers query string false "Comma separated cost centers"
// @Param sort query string false "Sort column"
// @Param order query string false "asc | desc"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports [get]
func (h *PerformanceHandler) GetReport(c *fiber.Ctx) error {
	// query values alias the request buffer; ids outlive the handler in the dataset cache
	datasetID := utils.CopyString(c.Query("dataset", ""))
	if datasetID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "dataset is required",
		})
	}

	ascending, ok := parseOrder(c.Query("order", "desc"))
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "order must be asc or desc",
		})
	}

	in := usecase.GetReportInput{
		DatasetID:     datasetID,
		Dates:         splitList(c.Query("dates", "")),
		Actors:        splitList(c.Query("actors", "")),
		CostCenters:   splitList(c.Query("cost_centers", "")),
		GroupBy:       c.Query("group_by", ""),
		Mode:          c.Query("mode", ""),
		SortColumn:    c.Query("sort", ""),
		SortAscending: ascending,
	}

	res, err := h.reportUC.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toReportResponse(res))
}

// Compare godoc
// @Summary Compare properties
// @Description Two datasets compare pairwise, more produce a sortable list
// @Tags Reports
// @Produce json
// @Param datasets query string true "Comma separated dataset ids (2 or more)"
// @Param mode query string false "Mode: single_day | total | average"
// @Param dates query string false "Comma separated days (YYYY-MM-DD)"
// @Param sort query string false "Sort column (3+ datasets)"
// @Param order query string false "asc | desc"
// @Success 200 {object} ComparisonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /comparisons [get]
func (h *PerformanceHandler) Compare(c *fiber.Ctx) error {
	ids := splitList(utils.CopyString(c.Query("datasets", "")))
	if len(ids) < 2 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "at least two datasets are required",
		})
	}

	ascending, ok := parseOrder(c.Query("order", "desc"))
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "order must be asc or desc",
		})
	}

	res, err := h.compareUC.Execute(c.UserContext(), usecase.CompareInput{
		DatasetIDs:    ids,
		Dates:         splitList(c.Query("dates", "")),
		Mode:          c.Query("mode", ""),
		SortColumn:    c.Query("sort", ""),
		SortAscending: ascending,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := ComparisonResponse{
		Flow: "all",
		Rows: make([]ComparisonRowResponse, 0, len(res.Rows)),
	}
	if res.Pairwise {
		resp.Flow = "pairwise"
	}
	for _, r := range res.Rows {
		percent := make(map[string]float64, len(r.Percent))
		for k, v := range r.Percent {
			percent[string(k)] = v
		}
		resp.Rows = append(resp.Rows, ComparisonRowResponse{
			DatasetID: r.ID,
			Label:     r.Label,
			Days:      nonNil(r.Days),
			Summary:   toRowResponse(r.Summary),
			Percent:   percent,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportQuery),
		errors.Is(err, usecase.ErrInvalidCompareQuery),
		errors.Is(err, usecase.ErrInvalidGroupBy),
		errors.Is(err, usecase.ErrInvalidMode),
		errors.Is(err, usecase.ErrInvalidSortColumn),
		errors.Is(err, usecase.ErrInvalidDate):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrDatasetNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "dataset_not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrNoCommonDates):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "no_common_dates",
			Message: "the selected datasets share no dates",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toReportResponse(r *domain.Report) ReportResponse {
	resp := ReportResponse{
		Property:     r.Property,
		GroupBy:      string(r.GroupBy),
		Mode:         string(r.Mode),
		Days:         nonNil(r.Days),
		AveragedOver: r.AveragedOver,
		TotalElapsed: toDuration(r.TotalElapsed),
		Totals:       toRowResponse(r.Totals),
		Rows:         make([]AggregateRowResponse, 0, len(r.Rows)),
	}
	for _, row := range r.Rows {
		resp.Rows = append(resp.Rows, toRowResponse(row))
	}
	return resp
}

func toRowResponse(r domain.AggregateRow) AggregateRowResponse {
	return AggregateRowResponse{
		Key:                  r.Key,
		Requests:             r.Requests,
		Orders:               r.Orders,
		Actions:              r.Actions,
		WeightKg:             r.WeightKg,
		VolumeL:              r.VolumeL,
		TotalWeight:          r.TotalWeight,
		PickingTime:          toDuration(r.PickingTime),
		ElapsedTime:          toDuration(r.ElapsedTime),
		RequestsPerMinute:    r.RequestsPerMinute,
		WeightPerMinute:      r.WeightPerMinute,
		VolumePerMinute:      r.VolumePerMinute,
		TotalWeightPerMinute: r.TotalWeightPerMinute,
	}
}

func toDuration(d time.Duration) DurationResponse {
	return DurationResponse{
		Seconds:   d.Seconds(),
		Formatted: domain.FormatDuration(d),
	}
}

func parseOrder(v string) (ascending bool, ok bool) {
	switch strings.ToLower(v) {
	case "asc":
		return true, true
	case "desc", "":
		return false, true
	}
	return false, false
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
