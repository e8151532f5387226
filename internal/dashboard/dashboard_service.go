package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-paygap/internal/chart"
	dashboarderrors "go-paygap/internal/dashboard/errors"
	"go-paygap/internal/export"
	"go-paygap/internal/metrics"
	"go-paygap/internal/paygap"
	"go-paygap/internal/pivot"
	"go-paygap/internal/shared/apperror"
	"go-paygap/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	chartHeatmap  = "heatmap"
	chartDumbbell = "dumbbell"
	chartBar      = "bar"
	chartExport   = "export"

	dumbbellAxis = "Base Pay (in thousands)"
)

var heatmapIndex = []pivot.Field{pivot.Education, pivot.Gender}

type Service interface {
	Home(ctx context.Context) (HomeResponse, error)
	Heatmap(ctx context.Context, column HeatmapColumn) ([]byte, error)
	Dumbbell(ctx context.Context, view ViewOption) ([]byte, error)
	BarChart(ctx context.Context, jobTitle string) ([]byte, error)
	Export(ctx context.Context) ([]byte, error)
}

type service struct {
	loader paygap.Service
}

// NewService builds the dashboard on top of the loader. Every call reloads
// the table, so charts always reflect the current rows.
func NewService(loader paygap.Service) Service {
	return &service{loader: loader}
}

func (s *service) Home(ctx context.Context) (HomeResponse, error) {
	records, err := s.loader.Load(ctx)
	if err != nil {
		return HomeResponse{}, err
	}

	columns := make([]string, 0, len(heatmapColumns))
	for _, c := range heatmapColumns {
		columns = append(columns, string(c))
	}
	views := make([]string, 0, 2)
	for _, v := range ViewOptions() {
		views = append(views, v.String())
	}

	return HomeResponse{
		JobTitles:   paygap.JobTitles(records),
		Columns:     columns,
		ViewOptions: views,
	}, nil
}

func (s *service) Heatmap(ctx context.Context, column HeatmapColumn) ([]byte, error) {
	if _, err := ParseHeatmapColumn(string(column)); err != nil {
		return nil, err
	}
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return s.render(ctx, chartHeatmap, func() ([]byte, error) {
		tbl, err := pivot.MeanTable(records, heatmapIndex, column.field(), pivot.BasePay)
		if err != nil {
			return nil, err
		}
		return chart.Heatmap(tbl.Round(1), fmt.Sprintf("Heatmap of BasePay by %s", column))
	})
}

func (s *service) Dumbbell(ctx context.Context, view ViewOption) ([]byte, error) {
	var (
		group pivot.Field
		title string
	)
	switch view {
	case ViewDepartment:
		group, title = pivot.Dept, "Gender Pay Gap by Department"
	case ViewJobTitle:
		group, title = pivot.JobTitle, "Gender Pay Gap by Job Title"
	default:
		return nil, dashboarderrors.ErrInvalidViewOption
	}

	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return s.render(ctx, chartDumbbell, func() ([]byte, error) {
		rows, err := genderGap(records, group)
		if err != nil {
			return nil, err
		}
		return chart.Dumbbell(rows, title, dumbbellAxis)
	})
}

func (s *service) BarChart(ctx context.Context, jobTitle string) ([]byte, error) {
	records, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := paygap.FilterByJobTitle(records, jobTitle)
	if len(filtered) == 0 {
		contextutil.GetLogger(ctx, zap.L()).Named("dashboard.service").
			Info("bar chart for unknown job title", zap.String("job_title", jobTitle))
		return nil, dashboarderrors.ErrNoData
	}

	return s.render(ctx, chartBar, func() ([]byte, error) {
		groups, err := pivot.GroupMeans(filtered, pivot.Gender, pivot.BasePay, pivot.Bonus)
		if err != nil {
			return nil, err
		}
		return chart.StackedBar(groups, fmt.Sprintf("Average Base Pay and Bonus by Gender for %s", jobTitle))
	})
}

func (s *service) Export(ctx context.Context) ([]byte, error) {
	records, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return s.render(ctx, chartExport, func() ([]byte, error) {
		tbl, err := pivot.MeanTable(records, heatmapIndex, pivot.JobTitle, pivot.BasePay)
		if err != nil {
			return nil, err
		}
		return export.Workbook(records, tbl.Round(1))
	})
}

// load is Load with an empty table reported as ErrNoData.
func (s *service) load(ctx context.Context) ([]paygap.CompensationRecord, error) {
	records, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, dashboarderrors.ErrNoData
	}
	return records, nil
}

func (s *service) render(ctx context.Context, name string, draw func() ([]byte, error)) ([]byte, error) {
	logger := contextutil.GetLogger(ctx, zap.L()).Named("dashboard.service")

	start := time.Now()
	out, err := draw()
	metrics.ChartRenderDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.ChartRendersTotal.WithLabelValues(name, "ok").Inc()
		logger.Debug("chart rendered",
			zap.String("chart", name),
			zap.Int("bytes", len(out)),
			zap.Duration("elapsed", time.Since(start)),
		)
		return out, nil
	case errors.Is(err, chart.ErrEmptyTable):
		metrics.ChartRendersTotal.WithLabelValues(name, "empty").Inc()
		return nil, dashboarderrors.ErrNoData
	default:
		metrics.ChartRendersTotal.WithLabelValues(name, "error").Inc()
		logger.Error("chart render failed", zap.String("chart", name), zap.Error(err))
		return nil, apperror.WithCause(dashboarderrors.ErrRenderFailed, err)
	}
}

// genderGap pivots mean BasePay by group and gender into dumbbell rows.
func genderGap(records []paygap.CompensationRecord, group pivot.Field) ([]chart.DumbbellRow, error) {
	tbl, err := pivot.MeanTable(records, []pivot.Field{group}, pivot.Gender, pivot.BasePay)
	if err != nil {
		return nil, err
	}

	rows := make([]chart.DumbbellRow, 0, len(tbl.Rows))
	for i, key := range tbl.Rows {
		row := chart.DumbbellRow{Label: key[0]}
		for j, gender := range tbl.Columns {
			if !tbl.Has(i, j) {
				continue
			}
			switch gender {
			case "Male":
				row.Male, row.HasMale = tbl.Cells[i][j], true
			case "Female":
				row.Female, row.HasFemale = tbl.Cells[i][j], true
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
