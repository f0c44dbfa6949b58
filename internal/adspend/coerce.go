package adspend

import (
	"strings"
	"time"

	"github.com/angelmondragon/adspend-backend/pkg/types"
	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	types.DateLayout,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// CoerceDate parses a calendar date. Anything unparseable becomes NULL.
func CoerceDate(raw string) types.NullDate {
	value := strings.TrimSpace(raw)
	if value == "" {
		return types.NullDate{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return types.NullDate{Date: types.DateOf(t), Valid: true}
		}
	}
	return types.NullDate{}
}

// CoerceFloat parses a numeric cell, yielding 0 when it is empty or malformed.
func CoerceFloat(raw string) float64 {
	d, ok := parseDecimal(raw)
	if !ok {
		return 0
	}
	return d.InexactFloat64()
}

// CoerceInt parses a numeric cell and rounds it to the nearest integer
// (half away from zero), yielding 0 when it is empty or malformed.
func CoerceInt(raw string) int64 {
	d, ok := parseDecimal(raw)
	if !ok {
		return 0
	}
	return d.Round(0).IntPart()
}

// CoerceText keeps the cell verbatim. Empty cells become NULL.
func CoerceText(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	value := raw
	return &value
}

// CoerceAccount keeps the account id as text, empty included, so ids never
// lose leading zeros or collapse to NULL.
func CoerceAccount(raw string) *string {
	value := raw
	return &value
}

func parseDecimal(raw string) (decimal.Decimal, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// NormalizeFilename returns the name stored in source_file_name.
func NormalizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFilename
	}
	return name
}
