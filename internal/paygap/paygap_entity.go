package paygap

import (
	"database/sql"
	"slices"
)

// Record is one row of the pay_gap table, under its raw column names.
// Numeric columns are nullable; a NULL reads as an invalid sql.Null value.
type Record struct {
	ID        string          `gorm:"column:id;type:text;primaryKey"`
	JobTitle  string          `gorm:"column:jobtitle"`
	Gender    string          `gorm:"column:gender"`
	Age       sql.NullInt64   `gorm:"column:age"`
	PerfEval  sql.NullInt64   `gorm:"column:perfeval"`
	Education string          `gorm:"column:education"`
	Dept      string          `gorm:"column:dept"`
	Seniority sql.NullInt64   `gorm:"column:seniority"`
	BasePay   sql.NullFloat64 `gorm:"column:basepay"`
	Bonus     sql.NullFloat64 `gorm:"column:bonus"`
}

func (Record) TableName() string {
	return "pay_gap"
}

// CompensationRecord is a loaded row under its display names, with the
// derived age bucket attached. It is never written back.
type CompensationRecord struct {
	ID          string
	JobTitle    string
	Gender      string
	Age         int
	AgeCategory AgeCategory
	PerfEval    int
	Education   string
	Dept        string
	Seniority   int
	BasePay     float64
	Bonus       float64

	// Missing names the display columns that were NULL in the source row.
	Missing []string
}

func fromRecord(r Record) CompensationRecord {
	rec := CompensationRecord{
		ID:        r.ID,
		JobTitle:  r.JobTitle,
		Gender:    r.Gender,
		Age:       int(r.Age.Int64),
		PerfEval:  int(r.PerfEval.Int64),
		Education: r.Education,
		Dept:      r.Dept,
		Seniority: int(r.Seniority.Int64),
		BasePay:   r.BasePay.Float64,
		Bonus:     r.Bonus.Float64,
	}
	if r.Age.Valid {
		rec.AgeCategory = CategorizeAge(rec.Age)
	} else {
		rec.Missing = append(rec.Missing, ColumnAge, ColumnAgeCategory)
	}
	if !r.PerfEval.Valid {
		rec.Missing = append(rec.Missing, ColumnPerfEval)
	}
	if !r.Seniority.Valid {
		rec.Missing = append(rec.Missing, ColumnSeniority)
	}
	if !r.BasePay.Valid {
		rec.Missing = append(rec.Missing, ColumnBasePay)
	}
	if !r.Bonus.Valid {
		rec.Missing = append(rec.Missing, ColumnBonus)
	}
	return rec
}

// Field returns the value stored under a display column name. A column
// listed in Missing is known but yields nil.
func (r CompensationRecord) Field(column string) (any, bool) {
	if slices.Contains(r.Missing, column) {
		return nil, true
	}
	switch column {
	case ColumnID:
		return r.ID, true
	case ColumnJobTitle:
		return r.JobTitle, true
	case ColumnGender:
		return r.Gender, true
	case ColumnAge:
		return r.Age, true
	case ColumnAgeCategory:
		return string(r.AgeCategory), true
	case ColumnPerfEval:
		return r.PerfEval, true
	case ColumnEducation:
		return r.Education, true
	case ColumnDept:
		return r.Dept, true
	case ColumnSeniority:
		return r.Seniority, true
	case ColumnBasePay:
		return r.BasePay, true
	case ColumnBonus:
		return r.Bonus, true
	}
	return nil, false
}
