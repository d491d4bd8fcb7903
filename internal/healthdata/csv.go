package healthdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"healthai/internal/domain"
)

// Column names the upload must carry.
const (
	ColumnDate          = "date"
	ColumnHeartRate     = "heart_rate"
	ColumnBloodPressure = "blood_pressure"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ErrMissingColumn is returned when the header lacks one of the required columns.
var ErrMissingColumn = errors.New("missing required column")

// ReadCSV reads a delimited table with a header row into records, in file order.
// Columns are found by name; extra columns are ignored.
func ReadCSV(r io.Reader) ([]domain.HealthRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("could not read header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, col := range []string{ColumnDate, ColumnHeartRate, ColumnBloodPressure} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var records []domain.HealthRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		date, err := parseDate(row[idx[ColumnDate]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hr, err := parseNumber(row[idx[ColumnHeartRate]])
		if err != nil {
			return nil, fmt.Errorf("line %d: heart_rate: %w", line, err)
		}
		bp, err := parseNumber(row[idx[ColumnBloodPressure]])
		if err != nil {
			return nil, fmt.Errorf("line %d: blood_pressure: %w", line, err)
		}

		records = append(records, domain.HealthRecord{
			Date:          date,
			HeartRate:     hr,
			BloodPressure: bp,
		})
	}
	return records, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
