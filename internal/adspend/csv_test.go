package adspend

import (
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/angelmondragon/adspend-backend/pkg/errors"
	"github.com/angelmondragon/adspend-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "date,platform,account,campaign,country,device,spend,clicks,impressions,conversions"

var testLoadDate = types.NewDate(2024, time.April, 2)

func TestParseCSVCoercesRows(t *testing.T) {
	body := csvHeader + ",extra\n" +
		"2024-03-30,google,00123,brand,BR,mobile,10.5,100,1000,1,ignored\n" +
		"garbage,meta,42,prospecting,US,desktop,abc,x,,2\n"

	records, err := ParseCSV(strings.NewReader(body), "spend.csv", testLoadDate)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.True(t, first.Date.Valid)
	assert.Equal(t, "2024-03-30", first.Date.Date.String())
	assert.Equal(t, "00123", *first.Account)
	assert.Equal(t, 10.5, first.Spend)
	assert.Equal(t, int64(100), first.Clicks)
	assert.Equal(t, int64(1000), first.Impressions)
	assert.Equal(t, int64(1), first.Conversions)
	assert.Equal(t, testLoadDate, first.LoadDate)
	assert.Equal(t, "spend.csv", first.SourceFileName)

	second := records[1]
	assert.False(t, second.Date.Valid)
	assert.Equal(t, 0.0, second.Spend)
	assert.Equal(t, int64(0), second.Clicks)
	assert.Equal(t, int64(0), second.Impressions)
	assert.Equal(t, int64(2), second.Conversions)
}

func TestParseCSVReorderedAndShortRows(t *testing.T) {
	body := "conversions,spend,date,platform,account,campaign,country,device,clicks,impressions\n" +
		"3,20,2024-03-31,google\n"

	records, err := ParseCSV(strings.NewReader(body), "x.csv", testLoadDate)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(3), records[0].Conversions)
	assert.Equal(t, 20.0, records[0].Spend)
	require.NotNil(t, records[0].Account)
	assert.Equal(t, "", *records[0].Account)
	assert.Nil(t, records[0].Campaign)
	assert.Equal(t, int64(0), records[0].Clicks)
}

func TestParseCSVMissingColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("date,platform\n2024-01-01,google\n"), "x.csv", testLoadDate)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Contains(t, typed.Message(), "spend")
	assert.Contains(t, typed.Message(), "conversions")
}

func TestParseCSVEmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""), "x.csv", testLoadDate)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestParseCSVHeaderOnly(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(csvHeader+"\n"), "x.csv", testLoadDate)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseCSVTooManyFields(t *testing.T) {
	body := csvHeader + "\n" +
		"2024-03-31,google,1,c,BR,mobile,1,1,1,1,overflow\n" +
		"2024-03-31,google,1,c,BR,mobile,1,1,1,1\n"

	_, err := ParseCSV(strings.NewReader(body), "x.csv", testLoadDate)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Contains(t, typed.Message(), "line 2")
	details, ok := typed.Details().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, details["failed_rows"])
}

func TestParseCSVKeepsLiteralQuotes(t *testing.T) {
	body := csvHeader + "\n" +
		"2024-03-31,google,1,Summer \"Sale\",BR,mobile,10,1,1,1\n" +
		"2024-03-31,meta,2,\"Brand, \"\"Q1\"\"\",US,desktop,5,1,1,1\n"

	records, err := ParseCSV(strings.NewReader(body), "x.csv", testLoadDate)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `Summer "Sale"`, *records[0].Campaign)
	assert.Equal(t, 10.0, records[0].Spend)
	assert.Equal(t, `Brand, "Q1"`, *records[1].Campaign)
	assert.Equal(t, "US", *records[1].Country)
}

func TestParseCSVErrorMessageNamesRowOnce(t *testing.T) {
	body := csvHeader + "\n2024-03-31,google,1,c,BR,mobile,1,1,1,1,overflow\n"
	_, err := ParseCSV(strings.NewReader(body), "x.csv", testLoadDate)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "line 2"))
}

func TestParseCSVStripsBOM(t *testing.T) {
	body := "\ufeff" + csvHeader + "\n2024-03-31,google,1,c,BR,mobile,1,1,1,1\n"
	records, err := ParseCSV(strings.NewReader(body), "x.csv", testLoadDate)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
