package adspend

import (
	"io"

	"github.com/angelmondragon/adspend-backend/pkg/types"
)

const (
	TableName = "ads_spend"

	// DefaultFilename is recorded when an upload carries no filename.
	DefaultFilename = "upload.csv"

	// RevenuePerConversion is the fixed revenue attributed to one conversion.
	RevenuePerConversion = 100.0
)

// Metric names, in the order comparison rows are returned.
const (
	MetricSpend       = "Spend"
	MetricConversions = "Conversions"
	MetricRevenue     = "Revenue"
	MetricCAC         = "CAC"
	MetricROAS        = "ROAS"
)

// SpendRecord is one row of the ads_spend table.
type SpendRecord struct {
	Date           types.NullDate `gorm:"column:date"`
	Platform       *string        `gorm:"column:platform"`
	Account        *string        `gorm:"column:account"`
	Campaign       *string        `gorm:"column:campaign"`
	Country        *string        `gorm:"column:country"`
	Device         *string        `gorm:"column:device"`
	Spend          float64        `gorm:"column:spend"`
	Clicks         int64          `gorm:"column:clicks"`
	Impressions    int64          `gorm:"column:impressions"`
	Conversions    int64          `gorm:"column:conversions"`
	LoadDate       types.Date     `gorm:"column:load_date"`
	SourceFileName string         `gorm:"column:source_file_name"`
}

func (SpendRecord) TableName() string {
	return TableName
}

type IngestRequest struct {
	Filename string
	Body     io.Reader
}

type IngestResult struct {
	Status       string `json:"status"`
	InsertedRows int    `json:"inserted_rows"`
	TotalRows    int64  `json:"total_rows"`
	DBPath       string `json:"db_path"`
}

// Metrics is the aggregate for one date range. Nil fields encode as JSON null.
type Metrics struct {
	Spend       *float64 `json:"spend"`
	Conversions *int64   `json:"conversions"`
	Revenue     *float64 `json:"revenue"`
	CAC         *float64 `json:"CAC"`
	ROAS        *float64 `json:"ROAS"`
}

type ComparisonRow struct {
	Metric   string   `json:"metric"`
	Last30d  *float64 `json:"last_30d"`
	Prev30d  *float64 `json:"prev_30d"`
	DeltaAbs *float64 `json:"delta_abs"`
	DeltaPct *float64 `json:"delta_pct"`
}
