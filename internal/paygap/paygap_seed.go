package paygap

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	paygaperrors "go-paygap/internal/paygap/errors"
	"go-paygap/internal/shared/apperror"

	"github.com/google/uuid"
)

// ParseCSV reads a pay gap export. Headers may use either the raw
// (jobtitle) or the display (JobTitle) spelling, in any case and order.
// Every column except id is required; rows without an id get a fresh uuid
// and empty numeric cells are stored as NULL.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperror.WithCause(paygaperrors.ErrInvalidCSV, errors.New("empty file"))
		}
		return nil, apperror.WithCause(paygaperrors.ErrInvalidCSV, err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, apperror.WithCause(paygaperrors.ErrInvalidCSV, err)
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperror.WithCause(paygaperrors.ErrInvalidCSV, err)
		}

		rec, err := parseRow(row, index)
		if err != nil {
			return nil, apperror.WithCause(paygaperrors.ErrInvalidCSV, fmt.Errorf("line %d: %w", line, err))
		}
		records = append(records, rec)
	}

	return records, nil
}

func headerIndex(header []string) (map[string]int, error) {
	byLower := make(map[string]string, len(renames))
	for _, rn := range renames {
		byLower[strings.ToLower(rn.Raw)] = rn.Raw
		byLower[strings.ToLower(rn.Display)] = rn.Raw
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		raw, ok := byLower[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		index[raw] = i
	}

	for _, rn := range renames {
		if rn.Raw == "id" {
			continue
		}
		if _, ok := index[rn.Raw]; !ok {
			return nil, fmt.Errorf("missing column %q", rn.Display)
		}
	}
	return index, nil
}

func parseRow(row []string, index map[string]int) (Record, error) {
	get := func(raw string) string {
		i, ok := index[raw]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var (
		rec Record
		err error
	)

	rec.ID = get("id")
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.JobTitle = get("jobtitle")
	rec.Gender = get("gender")
	rec.Education = get("education")
	rec.Dept = get("dept")

	if rec.Age, err = parseInt(get("age")); err != nil {
		return Record{}, fmt.Errorf("age: %w", err)
	}
	if rec.PerfEval, err = parseInt(get("perfeval")); err != nil {
		return Record{}, fmt.Errorf("perfeval: %w", err)
	}
	if rec.Seniority, err = parseInt(get("seniority")); err != nil {
		return Record{}, fmt.Errorf("seniority: %w", err)
	}
	if rec.BasePay, err = parseFloat(get("basepay")); err != nil {
		return Record{}, fmt.Errorf("basepay: %w", err)
	}
	if rec.Bonus, err = parseFloat(get("bonus")); err != nil {
		return Record{}, fmt.Errorf("bonus: %w", err)
	}

	return rec, nil
}

// An empty cell is stored as NULL.
func parseInt(raw string) (sql.NullInt64, error) {
	if raw == "" {
		return sql.NullInt64{}, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: int64(v), Valid: true}, nil
}

func parseFloat(raw string) (sql.NullFloat64, error) {
	if raw == "" {
		return sql.NullFloat64{}, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return sql.NullFloat64{}, err
	}
	return sql.NullFloat64{Float64: v, Valid: true}, nil
}
