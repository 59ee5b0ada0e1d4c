package importer

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrAmbiguousDateFormat is returned when no candidate format parses every
// timestamp in the uploaded file. Rows are still returned so callers can
// surface per-row diagnostics.
var ErrAmbiguousDateFormat = errors.New("could not determine a consistent timestamp format")

// Row is one punch row lifted out of an uploaded spreadsheet.
// Timestamp is zero when the file's date format could not be resolved.
type Row struct {
	ExternalID int64
	Timestamp  time.Time
}

// Sheet is the parsed content of one uploaded workbook.
type Sheet struct {
	Rows         []Row
	AllDates     []string // distinct "YYYY-MM-DD" values seen, sorted
	TotalRecords int
}

// Candidate timestamp layouts, most specific first. The first layout that
// parses every row wins; per-row best effort is deliberately not done.
var autoLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006 15:04:05",
	"01/02/2006 15:04:05",
	"02-01-2006 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04",
	"01/02/2006 15:04",
	"2/1/2006 15:04",
}

// layoutsFor maps the screen-facing date format tokens onto Go layouts.
// Unknown values fall back to auto detection.
func layoutsFor(dateFormat string) []string {
	switch strings.ToUpper(strings.TrimSpace(dateFormat)) {
	case "YYYY-MM-DD":
		return []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04"}
	case "DD/MM/YYYY":
		return []string{"02/01/2006 15:04:05", "02/01/2006 15:04", "2/1/2006 15:04:05", "2/1/2006 15:04"}
	case "MM/DD/YYYY":
		return []string{"01/02/2006 15:04:05", "01/02/2006 15:04", "1/2/2006 15:04:05", "1/2/2006 15:04"}
	default:
		return autoLayouts
	}
}

var idHeaders = []string{"ac-no.", "ac-no", "id", "no", "pak", "employee id", "emp id", "user id"}
var timeHeaders = []string{"time", "date/time", "datetime", "date time", "timestamp", "punch time"}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ParseWorkbook reads the first worksheet of an uploaded biometric export
// and lifts out (external id, timestamp) punch rows.
func ParseWorkbook(r io.Reader, dateFormat string) (Sheet, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return Sheet{}, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to read worksheet: %w", err)
	}
	if len(rows) == 0 {
		return Sheet{}, fmt.Errorf("worksheet is empty")
	}

	idCol, timeCol, dataStart := locateColumns(rows)

	type rawRow struct {
		externalID int64
		timestamp  string
	}
	var raws []rawRow
	for _, row := range rows[dataStart:] {
		idStr := cellValue(row, idCol)
		tsStr := cellValue(row, timeCol)
		if idStr == "" || tsStr == "" {
			continue
		}
		externalID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			continue // junk row in the export
		}
		raws = append(raws, rawRow{externalID: externalID, timestamp: tsStr})
	}

	sheet := Sheet{TotalRecords: len(raws)}
	if len(raws) == 0 {
		return sheet, nil
	}

	values := make([]string, len(raws))
	for i, raw := range raws {
		values[i] = raw.timestamp
	}

	parse, ok := resolveTimestampFormat(values, dateFormat)
	if !ok {
		for _, raw := range raws {
			sheet.Rows = append(sheet.Rows, Row{ExternalID: raw.externalID})
		}
		return sheet, ErrAmbiguousDateFormat
	}

	dates := make(map[string]struct{})
	for _, raw := range raws {
		ts, err := parse(raw.timestamp)
		if err != nil {
			// resolveTimestampFormat guarantees a full parse; treat a
			// stray failure as ambiguity rather than guessing.
			ambiguous := make([]Row, 0, len(raws))
			for _, rr := range raws {
				ambiguous = append(ambiguous, Row{ExternalID: rr.externalID})
			}
			return Sheet{Rows: ambiguous, TotalRecords: len(raws)}, ErrAmbiguousDateFormat
		}
		sheet.Rows = append(sheet.Rows, Row{ExternalID: raw.externalID, Timestamp: ts})
		dates[ts.Format("2006-01-02")] = struct{}{}
	}

	for date := range dates {
		sheet.AllDates = append(sheet.AllDates, date)
	}
	sort.Strings(sheet.AllDates)

	return sheet, nil
}

// locateColumns finds the id/timestamp columns from a header row within the
// first few rows. Headerless exports default to the first two columns.
func locateColumns(rows [][]string) (idCol, timeCol, dataStart int) {
	limit := len(rows)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		id, ts := -1, -1
		for col, cell := range rows[i] {
			header := normalizeHeader(cell)
			if id == -1 && contains(idHeaders, header) {
				id = col
			}
			if ts == -1 && contains(timeHeaders, header) {
				ts = col
			}
		}
		if id != -1 && ts != -1 {
			return id, ts, i + 1
		}
	}
	return 0, 1, 0
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

type timestampParser func(string) (time.Time, error)

// resolveTimestampFormat picks the parser whose format parses 100% of the
// values. Excel serial numbers are recognized when every value is numeric.
func resolveTimestampFormat(values []string, dateFormat string) (timestampParser, bool) {
	if allNumeric(values) {
		return parseExcelSerial, true
	}

	for _, layout := range layoutsFor(dateFormat) {
		if parsesAll(values, layout) {
			l := layout
			return func(s string) (time.Time, error) {
				return time.Parse(l, strings.TrimSpace(s))
			}, true
		}
	}

	return nil, false
}

func parsesAll(values []string, layout string) bool {
	for _, v := range values {
		if _, err := time.Parse(layout, strings.TrimSpace(v)); err != nil {
			return false
		}
	}
	return true
}

func allNumeric(values []string) bool {
	for _, v := range values {
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return false
		}
	}
	return len(values) > 0
}

func parseExcelSerial(s string) (time.Time, error) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return time.Time{}, err
	}
	return excelize.ExcelDateToTime(serial, false)
}
