package fiber

type DurationResponse struct {
	Seconds   float64 `json:"seconds" example:"1200"`
	Formatted string  `json:"formatted" example:"0:20:00"`
}

type AggregateRowResponse struct {
	Key                  string           `json:"key"`
	Requests             float64          `json:"requests"`
	Orders               float64          `json:"orders"`
	Actions              float64          `json:"actions"`
	WeightKg             float64          `json:"weight_kg"`
	VolumeL              float64          `json:"volume_l"`
	TotalWeight          float64          `json:"total_weight"`
	PickingTime          DurationResponse `json:"picking_time"`
	ElapsedTime          DurationResponse `json:"elapsed_time"`
	RequestsPerMinute    float64          `json:"requests_per_minute"`
	WeightPerMinute      float64          `json:"weight_per_minute"`
	VolumePerMinute      float64          `json:"volume_per_minute"`
	TotalWeightPerMinute float64          `json:"total_weight_per_minute"`
}

type ReportResponse struct {
	Property     string                 `json:"property"`
	GroupBy      string                 `json:"group_by"`
	Mode         string                 `json:"mode"`
	Days         []string               `json:"days"`
	AveragedOver int                    `json:"averaged_over"`
	TotalElapsed DurationResponse       `json:"total_elapsed"`
	Totals       AggregateRowResponse   `json:"totals"`
	Rows         []AggregateRowResponse `json:"rows"`
}

type ComparisonRowResponse struct {
	DatasetID string               `json:"dataset_id"`
	Label     string               `json:"label"`
	Days      []string             `json:"days"`
	Summary   AggregateRowResponse `json:"summary"`
	Percent   map[string]float64   `json:"percent"`
}

type ComparisonResponse struct {
	Flow string                  `json:"flow" example:"pairwise"`
	Rows []ComparisonRowResponse `json:"rows"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid group_by value"`
}
