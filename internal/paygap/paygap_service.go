package paygap

import (
	"context"
	"time"

	"go-paygap/internal/metrics"
	"go-paygap/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=paygap_service.go -destination=mock/paygap_service_mock.go -package=mock
type Service interface {
	// Load returns every pay_gap row, renamed and with AgeCategory attached.
	Load(ctx context.Context) ([]CompensationRecord, error)
}

type service struct {
	repo         Repository
	queryTimeout time.Duration
}

// NewService builds the loader. A zero queryTimeout leaves the deadline to
// the caller's context.
func NewService(repo Repository, queryTimeout time.Duration) Service {
	return &service{repo: repo, queryTimeout: queryTimeout}
}

func (s *service) Load(ctx context.Context) ([]CompensationRecord, error) {
	logger := contextutil.GetLogger(ctx, zap.L()).Named("paygap.loader")

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := s.repo.FindAll(ctx)
	metrics.LoaderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		mapped := mapRepositoryError(err)
		kind := errorKind(mapped)
		metrics.LoaderErrorsTotal.WithLabelValues(kind).Inc()
		logger.Error("load pay gap records failed", zap.String("kind", kind), zap.Error(err))
		return nil, mapped
	}

	records := make([]CompensationRecord, len(rows))
	for i, row := range rows {
		records[i] = fromRecord(row)
	}

	metrics.LoaderRecords.Set(float64(len(records)))
	logger.Debug("pay gap records loaded",
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return records, nil
}

// JobTitles lists the distinct job titles in first-seen order.
func JobTitles(records []CompensationRecord) []string {
	return distinct(records, func(r CompensationRecord) string { return r.JobTitle })
}

// Departments lists the distinct departments in first-seen order.
func Departments(records []CompensationRecord) []string {
	return distinct(records, func(r CompensationRecord) string { return r.Dept })
}

// FilterByJobTitle keeps the records with exactly the given title.
func FilterByJobTitle(records []CompensationRecord, title string) []CompensationRecord {
	var out []CompensationRecord
	for _, r := range records {
		if r.JobTitle == title {
			out = append(out, r)
		}
	}
	return out
}

func distinct(records []CompensationRecord, key func(CompensationRecord) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
