package adspend

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/adspend-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/adspend-backend/pkg/errors"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
	"github.com/angelmondragon/adspend-backend/pkg/metrics"
	"github.com/angelmondragon/adspend-backend/pkg/types"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

const defaultBatchSize = 500

// Service exposes ingestion and the spend analytics reports.
type Service interface {
	// Ingest appends every row of a CSV upload to ads_spend.
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)
	// Metrics aggregates [start, end] inclusive. A reversed range matches no rows.
	Metrics(ctx context.Context, start, end types.Date) (*Metrics, error)
	// Bounds reports the comparison windows, or an all-null payload when there is no data.
	Bounds(ctx context.Context) (*Bounds, error)
	// Compare30d compares the last 30 days of data with the 30 days before.
	Compare30d(ctx context.Context) ([]ComparisonRow, error)
}

// StoreOpener hands out scoped store handles.
type StoreOpener interface {
	Open(ctx context.Context, mode db.Mode) (*db.Client, error)
	Location() string
}

type ServiceParams struct {
	Opener    StoreOpener
	Logger    *logger.Logger
	Metrics   *metrics.IngestMetrics
	BatchSize int
	Now       func() time.Time
}

type service struct {
	opener    StoreOpener
	logg      *logger.Logger
	metrics   *metrics.IngestMetrics
	batchSize int
	now       func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Opener == nil {
		return nil, fmt.Errorf("store opener required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.BatchSize <= 0 {
		params.BatchSize = defaultBatchSize
	}
	if params.Now == nil {
		params.Now = func() time.Time { return time.Now().UTC() }
	}
	return &service{
		opener:    params.Opener,
		logg:      params.Logger,
		metrics:   params.Metrics,
		batchSize: params.BatchSize,
		now:       params.Now,
	}, nil
}

func (s *service) Ingest(ctx context.Context, req IngestRequest) (res *IngestResult, err error) {
	if req.Body == nil {
		s.metrics.ObserveFailure(metrics.ResultInvalid)
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file is required")
	}
	filename := NormalizeFilename(req.Filename)
	ctx = s.logg.WithField(ctx, "source_file_name", filename)

	records, err := ParseCSV(req.Body, filename, types.DateOf(s.now().UTC()))
	if err != nil {
		s.metrics.ObserveFailure(metrics.ResultInvalid)
		return nil, err
	}

	client, err := s.opener.Open(ctx, db.ReadWrite)
	if err != nil {
		s.metrics.ObserveFailure(metrics.ResultFailure)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open store")
	}
	defer func() {
		err = multierr.Append(err, client.Close())
		if err != nil {
			res = nil
		}
	}()

	var total int64
	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
		if err := repo.Insert(ctx, records, s.batchSize); err != nil {
			return err
		}
		var err error
		total, err = repo.Count(ctx)
		return err
	})
	if err != nil {
		s.metrics.ObserveFailure(metrics.ResultFailure)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "ingest failed")
	}

	s.metrics.ObserveSuccess(len(records))
	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"inserted_rows": len(records),
		"total_rows":    total,
	}), "ingest.completed")

	return &IngestResult{
		Status:       "ok",
		InsertedRows: len(records),
		TotalRows:    total,
		DBPath:       s.opener.Location(),
	}, nil
}

func (s *service) Metrics(ctx context.Context, start, end types.Date) (m *Metrics, err error) {
	if start.IsZero() || end.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start and end are required")
	}

	client, err := s.openForRead(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, client.Close())
		if err != nil {
			m = nil
		}
	}()

	repo := NewRepository(client.DB())
	if !repo.TableExists(ctx) {
		return nil, errTableMissing()
	}

	totals, err := repo.SumWindow(ctx, start, end)
	if err != nil {
		return nil, classifyReadError(err)
	}
	result := totals.Metrics()
	return &result, nil
}

func (s *service) Bounds(ctx context.Context) (b *Bounds, err error) {
	client, err := s.openForRead(ctx)
	if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		return &Bounds{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, client.Close())
		if err != nil {
			b = nil
		}
	}()

	repo := NewRepository(client.DB())
	if !repo.TableExists(ctx) {
		return &Bounds{}, nil
	}

	maxDate, err := repo.MaxDate(ctx)
	if err != nil {
		if db.IsMissingTable(err) {
			return &Bounds{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read bounds")
	}
	result := BoundsFor(maxDate)
	return &result, nil
}

func (s *service) Compare30d(ctx context.Context) (rows []ComparisonRow, err error) {
	client, err := s.openForRead(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, client.Close())
		if err != nil {
			rows = nil
		}
	}()

	if !NewRepository(client.DB()).TableExists(ctx) {
		return nil, errTableMissing()
	}

	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		maxDate, err := repo.MaxDate(ctx)
		if err != nil {
			return err
		}
		if !maxDate.Valid {
			rows = Compare(PeriodTotals{}, PeriodTotals{})
			return nil
		}

		w := WindowsFor(maxDate.Date)
		last, err := repo.SumWindow(ctx, w.Last.Start, w.Last.End)
		if err != nil {
			return err
		}
		prev, err := repo.SumWindow(ctx, w.Prev.Start, w.Prev.End)
		if err != nil {
			return err
		}
		rows = Compare(last, prev)
		return nil
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, classifyReadError(err)
	}
	return rows, nil
}

func (s *service) openForRead(ctx context.Context) (*db.Client, error) {
	client, err := s.opener.Open(ctx, db.ReadOnly)
	if errors.Is(err, db.ErrStoreMissing) {
		return nil, errTableMissing()
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open store")
	}
	return client, nil
}

func classifyReadError(err error) error {
	if db.IsMissingTable(err) {
		return errTableMissing()
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "query failed")
}

func errTableMissing() error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "table 'ads_spend' not found; ingest a CSV first")
}
