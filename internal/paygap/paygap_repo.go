package paygap

import (
	"context"

	"go-paygap/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=paygap_repo.go -destination=mock/paygap_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Record, error)
	CreateBatch(ctx context.Context, records []Record, batchSize int) error
	Migrate(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAll reads the whole table on a single checked-out connection, in the
// order the database returns it.
func (r *repository) FindAll(ctx context.Context) ([]Record, error) {
	var records []Record
	err := connection.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Find(&records).Error
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) CreateBatch(ctx context.Context, records []Record, batchSize int) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, batchSize).Error
}

// Migrate creates pay_gap when it does not exist. An existing table is left
// untouched, whatever its column types.
func (r *repository) Migrate(ctx context.Context) error {
	m := r.db.WithContext(ctx).Migrator()
	if m.HasTable(&Record{}) {
		return nil
	}
	return m.CreateTable(&Record{})
}
