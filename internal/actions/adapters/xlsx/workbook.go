package xlsx

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"wms-performance-service/internal/actions/core/domain"
	"wms-performance-service/internal/actions/core/ports"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// DataSheet is the sheet the WMS export writes action rows to.
const DataSheet = "Sheet2"

const maxRows = 1_000_000

type column int

const (
	colActor column = iota
	colCostCenter
	colActionCode
	colDocument
	colItem
	colQuantity
	colUnit
	colReportingUnit
	colRelationship
	colStart
	colCompletion
)

var headerAliases = map[string]column{
	"user":             colActor,
	"username":         colActor,
	"actor":            colActor,
	"worker":           colActor,
	"employee":         colActor,
	"costcenter":       colCostCenter,
	"department":       colCostCenter,
	"dept":             colCostCenter,
	"actioncode":       colActionCode,
	"action":           colActionCode,
	"actionid":         colActionCode,
	"document":         colDocument,
	"documentno":       colDocument,
	"documentnumber":   colDocument,
	"order":            colDocument,
	"orderno":          colDocument,
	"ordernumber":      colDocument,
	"item":             colItem,
	"itemcode":         colItem,
	"sku":              colItem,
	"quantity":         colQuantity,
	"qty":              colQuantity,
	"unit":             colUnit,
	"uom":              colUnit,
	"reportingunit":    colReportingUnit,
	"reportinguom":     colReportingUnit,
	"relationship":     colRelationship,
	"unitrelationship": colRelationship,
	"conversionfactor": colRelationship,
	"actionstart":      colStart,
	"starttime":        colStart,
	"start":            colStart,
	"actioncompletion": colCompletion,
	"completiontime":   colCompletion,
	"completion":       colCompletion,
	"endtime":          colCompletion,
	"end":              colCompletion,
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"01/02/2006 15:04:05",
	"1/2/06 15:04",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
}

// Parser reads WMS action exports (.xlsx, .xlsm, .xls).
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var _ ports.WorkbookParserPort = (*Parser)(nil)

func (p *Parser) Parse(filename string, data []byte) ([]domain.Event, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(data)
	case ".xls":
		rows, err = readXLS(data)
	default:
		return nil, fmt.Errorf("%w: %s", ports.ErrUnsupportedFile, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	return parseRows(rows)
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, ports.ErrEmptyWorkbook
	}

	sheet := sheets[0]
	for _, name := range sheets {
		if strings.EqualFold(name, DataSheet) {
			sheet = name
			break
		}
	}

	// raw values keep date cells as serials instead of locale-formatted text
	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func readXLS(data []byte) (rows [][]string, err error) {
	// extrame/xls panics on some malformed BIFF records
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("open xls: malformed workbook: %v", r)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if workbook == nil {
		return nil, fmt.Errorf("open xls: no Workbook stream")
	}
	if workbook.NumSheets() == 0 {
		return nil, ports.ErrEmptyWorkbook
	}

	sheet := workbook.GetSheet(0)
	for i := 0; i < workbook.NumSheets(); i++ {
		if s := workbook.GetSheet(i); s != nil && strings.EqualFold(s.Name, DataSheet) {
			sheet = s
			break
		}
	}
	if sheet == nil {
		return nil, ports.ErrEmptyWorkbook
	}

	for i := 0; i <= int(sheet.MaxRow) && i < maxRows; i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func parseRows(rows [][]string) ([]domain.Event, error) {
	headerIdx := -1
	for i, row := range rows {
		if !blank(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ports.ErrEmptyWorkbook
	}

	index, err := mapHeader(rows[headerIdx])
	if err != nil {
		return nil, err
	}

	var events []domain.Event
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		get := func(c column) string {
			idx, ok := index[c]
			if !ok {
				return ""
			}
			return cellValue(row, idx)
		}

		if get(colActor) == "" && get(colActionCode) == "" {
			continue
		}

		// spreadsheet rows are 1-based
		line := i + 1

		start, err := parseTime(get(colStart))
		if err != nil {
			return nil, fmt.Errorf("row %d: action start: %w", line, err)
		}
		completion := start
		if raw := get(colCompletion); raw != "" {
			completion, err = parseTime(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: action completion: %w", line, err)
			}
		}

		quantity, err := parseNumber(get(colQuantity))
		if err != nil {
			return nil, fmt.Errorf("row %d: quantity: %w", line, err)
		}
		// a missing factor counts as zero downstream
		relationship, err := parseNumber(get(colRelationship))
		if err != nil {
			return nil, fmt.Errorf("row %d: relationship: %w", line, err)
		}

		events = append(events, domain.Event{
			Actor:         get(colActor),
			CostCenter:    get(colCostCenter),
			ActionCode:    get(colActionCode),
			Document:      get(colDocument),
			Item:          get(colItem),
			Quantity:      quantity,
			Unit:          get(colUnit),
			ReportingUnit: get(colReportingUnit),
			Relationship:  relationship,
			Start:         start,
			Completion:    completion,
		})
	}

	if len(events) == 0 {
		return nil, ports.ErrEmptyWorkbook
	}
	return events, nil
}

func mapHeader(header []string) (map[column]int, error) {
	index := make(map[column]int)
	for i, h := range header {
		c, ok := headerAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, taken := index[c]; !taken {
			index[c] = i
		}
	}

	if _, ok := index[colActionCode]; !ok {
		return nil, fmt.Errorf("missing column: action code")
	}
	if _, ok := index[colStart]; !ok {
		return nil, fmt.Errorf("missing column: action start")
	}
	return index, nil
}

func normalizeHeader(header string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "", ".", "")
	return r.Replace(strings.ToLower(strings.TrimSpace(header)))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// thousandsGrouped matches US-style grouping such as 1,234.5.
var thousandsGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)

// parseNumber accepts plain numbers and comma thousands separators. A comma
// in any other position (e.g. the decimal comma in "1,5") is rejected.
func parseNumber(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	if strings.Contains(v, ",") {
		if !thousandsGrouped.MatchString(v) {
			return 0, fmt.Errorf("ambiguous number %q: comma is not a thousands separator", v)
		}
		v = strings.ReplaceAll(v, ",", "")
	}
	return strconv.ParseFloat(v, 64)
}

func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	// Excel serial date (raw cell value)
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", v)
}
