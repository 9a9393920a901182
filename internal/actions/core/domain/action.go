package domain

import "time"

// DateLayout is the calendar-day key used across datasets and reports.
const DateLayout = "2006-01-02"

// Event is one raw row of a WMS action log.
type Event struct {
	Actor         string
	CostCenter    string
	ActionCode    string
	Document      string
	Item          string
	Quantity      float64
	Unit          string
	ReportingUnit string // optional
	Relationship  float64
	Start         time.Time
	Completion    time.Time
}

// Date is the calendar day of the action start.
func (e Event) Date() string {
	return e.Start.Format(DateLayout)
}

type Dataset struct {
	ID       string
	Label    string
	Source   string // "upload" / "sql"
	Events   []Event
	Dates    []string
	LoadedAt time.Time
}
