package adspend

import (
	"encoding/csv"
	stdErrors "errors"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/angelmondragon/adspend-backend/pkg/errors"
	"github.com/angelmondragon/adspend-backend/pkg/types"
	"go.uber.org/multierr"
)

// RequiredColumns must all be present in the CSV header. Other columns are ignored.
var RequiredColumns = []string{
	"date",
	"platform",
	"account",
	"campaign",
	"country",
	"device",
	"spend",
	"clicks",
	"impressions",
	"conversions",
}

const maxReportedRowErrors = 10

// ParseCSV decodes an uploaded spend file into records stamped with loadDate
// and filename. Structural problems are returned as validation errors.
func ParseCSV(r io.Reader, filename string, loadDate types.Date) ([]SpendRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// a quote inside an unquoted field is kept literally
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if stdErrors.Is(err, io.EOF) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid CSV: file is empty")
	}
	if err != nil {
		return nil, invalidCSV(err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}
	width := len(header)

	var (
		records   []SpendRecord
		rowErrors error
		failed    int
	)
	for {
		row, err := reader.Read()
		if stdErrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, invalidCSV(err)
		}
		if len(row) > width {
			line, _ := reader.FieldPos(0)
			failed++
			if failed <= maxReportedRowErrors {
				rowErrors = multierr.Append(rowErrors, fmt.Errorf("line %d: expected %d fields, saw %d", line, width, len(row)))
			}
			continue
		}
		records = append(records, buildRecord(row, index, filename, loadDate))
	}

	if rowErrors != nil {
		messages := make([]string, 0, maxReportedRowErrors)
		for _, e := range multierr.Errors(rowErrors) {
			messages = append(messages, e.Error())
		}
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid CSV: "+messages[0]).
			WithDetails(map[string]any{"row_errors": messages, "failed_rows": failed})
	}

	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid CSV: missing required columns: "+strings.Join(missing, ", ")).
			WithDetails(map[string]any{"missing_columns": missing})
	}
	return index, nil
}

func buildRecord(row []string, index map[string]int, filename string, loadDate types.Date) SpendRecord {
	cell := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	return SpendRecord{
		Date:           CoerceDate(cell("date")),
		Platform:       CoerceText(cell("platform")),
		Account:        CoerceAccount(cell("account")),
		Campaign:       CoerceText(cell("campaign")),
		Country:        CoerceText(cell("country")),
		Device:         CoerceText(cell("device")),
		Spend:          CoerceFloat(cell("spend")),
		Clicks:         CoerceInt(cell("clicks")),
		Impressions:    CoerceInt(cell("impressions")),
		Conversions:    CoerceInt(cell("conversions")),
		LoadDate:       loadDate,
		SourceFileName: filename,
	}
}

func invalidCSV(err error) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid CSV: "+err.Error())
}
