package adspend

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/angelmondragon/adspend-backend/pkg/types"
	"gorm.io/gorm"
)

const (
	createTableSQL = `
CREATE TABLE IF NOT EXISTS ads_spend (
  date DATE,
  platform TEXT,
  account TEXT,
  campaign TEXT,
  country TEXT,
  device TEXT,
  spend DOUBLE PRECISION,
  clicks BIGINT,
  impressions BIGINT,
  conversions BIGINT,
  load_date DATE,
  source_file_name TEXT
)`

	sumWindowSQL = `
SELECT
  SUM(spend) AS spend,
  CAST(SUM(conversions) AS BIGINT) AS conversions
FROM ads_spend
WHERE date BETWEEN ? AND ?`

	maxDateSQL = `SELECT MAX(date) AS max_date FROM ads_spend`
)

// Repository reads and appends spend records. It is bound to one handle or transaction.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates ads_spend when missing. It never alters an existing table.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec(createTableSQL).Error; err != nil {
		return fmt.Errorf("ensure ads_spend schema: %w", err)
	}
	return nil
}

func (r *Repository) TableExists(ctx context.Context) bool {
	return r.db.WithContext(ctx).Migrator().HasTable(TableName)
}

// Insert appends records in batches. Duplicates are kept.
func (r *Repository) Insert(ctx context.Context, records []SpendRecord, batchSize int) error {
	if len(records) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = len(records)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(records, batchSize).Error; err != nil {
		return fmt.Errorf("insert spend records: %w", err)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Table(TableName).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count spend records: %w", err)
	}
	return total, nil
}

// SumWindow sums spend and conversions over [start, end] inclusive.
func (r *Repository) SumWindow(ctx context.Context, start, end types.Date) (PeriodTotals, error) {
	var (
		spend       sql.NullFloat64
		conversions sql.NullInt64
	)
	row := r.db.WithContext(ctx).Raw(sumWindowSQL, start, end).Row()
	if err := row.Scan(&spend, &conversions); err != nil {
		return PeriodTotals{}, fmt.Errorf("sum window %s..%s: %w", start, end, err)
	}

	var totals PeriodTotals
	if spend.Valid {
		totals.Spend = &spend.Float64
	}
	if conversions.Valid {
		totals.Conversions = &conversions.Int64
	}
	return totals, nil
}

// MaxDate returns the latest non-null date, or an invalid NullDate when there is none.
func (r *Repository) MaxDate(ctx context.Context) (types.NullDate, error) {
	var maxDate types.NullDate
	if err := r.db.WithContext(ctx).Raw(maxDateSQL).Row().Scan(&maxDate); err != nil {
		return types.NullDate{}, fmt.Errorf("max date: %w", err)
	}
	return maxDate, nil
}
