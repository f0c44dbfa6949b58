package adspend

import (
	"context"
	"io"

	"github.com/angelmondragon/adspend-backend/internal/adspend"
	"github.com/angelmondragon/adspend-backend/pkg/types"
)

type stubService struct {
	ingestFn  func(ctx context.Context, req adspend.IngestRequest) (*adspend.IngestResult, error)
	metricsFn func(ctx context.Context, start, end types.Date) (*adspend.Metrics, error)
	boundsFn  func(ctx context.Context) (*adspend.Bounds, error)
	compareFn func(ctx context.Context) ([]adspend.ComparisonRow, error)

	lastBody     string
	lastFilename string
}

func (s *stubService) Ingest(ctx context.Context, req adspend.IngestRequest) (*adspend.IngestResult, error) {
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		s.lastBody = string(data)
	}
	s.lastFilename = req.Filename
	if s.ingestFn != nil {
		return s.ingestFn(ctx, req)
	}
	return &adspend.IngestResult{Status: "ok"}, nil
}

func (s *stubService) Metrics(ctx context.Context, start, end types.Date) (*adspend.Metrics, error) {
	if s.metricsFn != nil {
		return s.metricsFn(ctx, start, end)
	}
	return &adspend.Metrics{}, nil
}

func (s *stubService) Bounds(ctx context.Context) (*adspend.Bounds, error) {
	if s.boundsFn != nil {
		return s.boundsFn(ctx)
	}
	return &adspend.Bounds{}, nil
}

func (s *stubService) Compare30d(ctx context.Context) ([]adspend.ComparisonRow, error) {
	if s.compareFn != nil {
		return s.compareFn(ctx)
	}
	return nil, nil
}
