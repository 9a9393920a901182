package fiber

import "time"

// DatasetResponse summarizes a cached action dataset
// @Description Dataset summary DTO
type DatasetResponse struct {
	ID       string    `json:"id" example:"6f1c2d9e-8a61-4f0e-9a55-0b0f3c1d2e4a"`
	Label    string    `json:"label" example:"north-site"`
	Source   string    `json:"source" example:"upload"`
	Rows     int       `json:"rows"`
	Dates    []string  `json:"dates"`
	LoadedAt time.Time `json:"loaded_at"`
}

type ListDatasetsResponse struct {
	Datasets []DatasetResponse `json:"datasets"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_upload"`
	Message string `json:"message" example:"workbook has no action rows"`
}
