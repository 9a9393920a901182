package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/actions/core/ports"
	"wms-performance-service/internal/actions/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type fakeLoadActionsUseCase struct {
	ImportFn   func(ctx context.Context, in usecase.ImportWorkbookInput) (*domain.Dataset, error)
	ListFn     func(ctx context.Context) []*domain.Dataset
	LastImport usecase.ImportWorkbookInput
}

func (f *fakeLoadActionsUseCase) ImportWorkbook(ctx context.Context, in usecase.ImportWorkbookInput) (*domain.Dataset, error) {
	f.LastImport = in
	if f.ImportFn != nil {
		return f.ImportFn(ctx, in)
	}
	return nil, nil
}

func (f *fakeLoadActionsUseCase) List(ctx context.Context) []*domain.Dataset {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil
}

// helper: create fiber app and routes
func setupTestApp(uc LoadActionsUseCase) *fiber.App {
	app := fiber.New()
	h := NewDatasetHandler(uc)

	app.Post("/datasets", h.UploadDataset)
	app.Get("/datasets", h.ListDatasets)

	return app
}

// helper: multipart upload request
func uploadRequest(t *testing.T, filename string, content []byte, label string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if label != "" {
		if err := w.WriteField("label", label); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/datasets", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()
	return b
}

func TestUploadDataset_Created(t *testing.T) {
	loaded := time.Date(2025, 3, 6, 12, 0, 0, 0, time.UTC)
	fakeUC := &fakeLoadActionsUseCase{
		ImportFn: func(ctx context.Context, in usecase.ImportWorkbookInput) (*domain.Dataset, error) {
			return &domain.Dataset{
				ID:       "ds-1",
				Label:    in.Label,
				Source:   usecase.SourceUpload,
				Events:   make([]domain.Event, 3),
				Dates:    []string{"2025-03-04"},
				LoadedAt: loaded,
			}, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, err := app.Test(uploadRequest(t, "north.xlsx", []byte("PK..."), "North"), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}
	if fakeUC.LastImport.Filename != "north.xlsx" || string(fakeUC.LastImport.Data) != "PK..." {
		t.Fatalf("unexpected import input: %+v", fakeUC.LastImport)
	}

	var got DatasetResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if got.ID != "ds-1" || got.Label != "North" || got.Rows != 3 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestUploadDataset_MissingFile(t *testing.T) {
	fakeUC := &fakeLoadActionsUseCase{
		ImportFn: func(ctx context.Context, in usecase.ImportWorkbookInput) (*domain.Dataset, error) {
			t.Fatalf("usecase should not be called without a file")
			return nil, nil
		},
	}

	app := setupTestApp(fakeUC)

	resp, err := app.Test(uploadRequest(t, "", nil, "North"), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestUploadDataset_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unsupported", ports.ErrUnsupportedFile, http.StatusBadRequest},
		{"empty", ports.ErrEmptyWorkbook, http.StatusBadRequest},
		{"invalid", usecase.ErrInvalidUpload, http.StatusBadRequest},
		{"bad_row", errors.New("row 7: action start: unrecognized timestamp"), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeUC := &fakeLoadActionsUseCase{
				ImportFn: func(ctx context.Context, in usecase.ImportWorkbookInput) (*domain.Dataset, error) {
					return nil, tt.err
				},
			}

			app := setupTestApp(fakeUC)

			resp, err := app.Test(uploadRequest(t, "r.xlsx", []byte("x"), ""), -1)
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestListDatasets(t *testing.T) {
	fakeUC := &fakeLoadActionsUseCase{
		ListFn: func(ctx context.Context) []*domain.Dataset {
			return []*domain.Dataset{
				{ID: "a", Label: "North"},
				{ID: "b", Label: "South", Dates: []string{"2025-03-04"}},
			}
		},
	}

	app := setupTestApp(fakeUC)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/datasets", nil), -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var got ListDatasetsResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(got.Datasets) != 2 || got.Datasets[1].Label != "South" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Datasets[0].Dates == nil {
		t.Fatalf("dates should encode as an empty list, not null")
	}
}
