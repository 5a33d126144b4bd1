package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"vacstat/internal"
	"vacstat/internal/currency"
)

var (
	ErrEmptyFile          = errors.New("empty input file")
	ErrInvalidSalaryValue = errors.New("invalid salary value")
)

// Column names of the vacancy CSV export.
const (
	colName     = "name"
	colFrom     = "salary_from"
	colTo       = "salary_to"
	colCurrency = "salary_currency"
	colGross    = "salary_gross"
	colCity     = "area_name"
	colDate     = "published_at"
)

// ReadFile loads and types all valid vacancy rows from path. The second
// return value is the number of rows dropped by the arity filter.
func ReadFile(path string) ([]internal.VacancyRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV content from r. The header row names the columns; every
// data row that survives the arity filter becomes one VacancyRecord.
func Read(r io.Reader) ([]internal.VacancyRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, ErrEmptyFile
	}
	if err != nil {
		return nil, 0, err
	}
	header = normalizeHeader(header)
	if len(header) == 0 {
		return nil, 0, ErrEmptyFile
	}

	records := make([]internal.VacancyRecord, 0)
	dropped := 0
	rows := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		rows++
		fields, ok := rowFields(header, row)
		if !ok {
			dropped++
			continue
		}
		rec, err := newRecord(fields)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if rows == 0 {
		return nil, 0, ErrEmptyFile
	}
	return records, dropped, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, 0, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// A row is kept iff its non-empty field count matches the header count
// exactly; header columns then pair with the surviving fields in order.
// This matches the acceptance rule of the source export, including its
// quirk that a row with stray empty fields can still pass with shifted
// values (see DESIGN.md).
func rowFields(header, row []string) (map[string]string, bool) {
	nonEmpty := make([]string, 0, len(row))
	for _, field := range row {
		if field != "" {
			nonEmpty = append(nonEmpty, field)
		}
	}
	if len(nonEmpty) != len(header) {
		return nil, false
	}
	fields := make(map[string]string, len(header))
	for i, name := range header {
		fields[name] = CleanField(nonEmpty[i])
	}
	return fields, true
}

func newRecord(fields map[string]string) (internal.VacancyRecord, error) {
	date := fields[colDate]
	if len(date) < 4 {
		return internal.VacancyRecord{}, fmt.Errorf("published date too short: %q", date)
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return internal.VacancyRecord{}, fmt.Errorf("published date has no year prefix: %q", date)
	}

	salary, err := newSalary(fields[colFrom], fields[colTo], fields[colCurrency], fields[colGross])
	if err != nil {
		return internal.VacancyRecord{}, err
	}

	return internal.VacancyRecord{
		Name:        fields[colName],
		Salary:      salary,
		City:        fields[colCity],
		PublishedAt: date,
		Year:        year,
	}, nil
}

func newSalary(from, to, code, gross string) (internal.Salary, error) {
	lo, err := parseBound(from)
	if err != nil {
		return internal.Salary{}, err
	}
	hi, err := parseBound(to)
	if err != nil {
		return internal.Salary{}, err
	}

	loRef, err := currency.Convert(code, lo)
	if err != nil {
		return internal.Salary{}, err
	}
	hiRef, err := currency.Convert(code, hi)
	if err != nil {
		return internal.Salary{}, err
	}

	salary := internal.Salary{
		From:     lo,
		To:       hi,
		Currency: code,
		Average:  (loRef + hiRef) / 2,
	}
	if gross != "" {
		v := strings.EqualFold(gross, "true") || strings.EqualFold(gross, "да")
		salary.Gross = &v
	}
	return salary, nil
}

func parseBound(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSalaryValue, raw)
	}
	return v, nil
}
