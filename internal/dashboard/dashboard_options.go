package dashboard

import (
	dashboarderrors "go-paygap/internal/dashboard/errors"
	"go-paygap/internal/pivot"
)

// HeatmapColumn is a field the heatmap may spread across its columns.
type HeatmapColumn string

const (
	ColumnJobTitle    HeatmapColumn = HeatmapColumn(pivot.JobTitle)
	ColumnAgeCategory HeatmapColumn = HeatmapColumn(pivot.AgeCategory)
	ColumnSeniority   HeatmapColumn = HeatmapColumn(pivot.Seniority)
	ColumnPerfEval    HeatmapColumn = HeatmapColumn(pivot.PerfEval)
)

var heatmapColumns = []HeatmapColumn{ColumnJobTitle, ColumnAgeCategory, ColumnSeniority, ColumnPerfEval}

func HeatmapColumns() []HeatmapColumn {
	return append([]HeatmapColumn(nil), heatmapColumns...)
}

func ParseHeatmapColumn(s string) (HeatmapColumn, error) {
	for _, c := range heatmapColumns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", dashboarderrors.ErrInvalidColumn
}

func (c HeatmapColumn) field() pivot.Field {
	return pivot.Field(c)
}

// ViewOption picks the grouping of the dumbbell plot.
type ViewOption int

const (
	ViewDepartment ViewOption = iota + 1
	ViewJobTitle
)

func ParseViewOption(s string) (ViewOption, error) {
	switch s {
	case "department":
		return ViewDepartment, nil
	case "job_title":
		return ViewJobTitle, nil
	}
	return 0, dashboarderrors.ErrInvalidViewOption
}

func (v ViewOption) String() string {
	switch v {
	case ViewDepartment:
		return "department"
	case ViewJobTitle:
		return "job_title"
	}
	return "unknown"
}

func ViewOptions() []ViewOption {
	return []ViewOption{ViewDepartment, ViewJobTitle}
}
