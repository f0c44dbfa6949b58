package adspend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDate(t *testing.T) {
	cases := map[string]string{
		"2024-03-31":          "2024-03-31",
		" 2024-03-31 ":        "2024-03-31",
		"2024/03/31":          "2024-03-31",
		"03/31/2024":          "2024-03-31",
		"2024-03-31 10:15:00": "2024-03-31",
	}
	for raw, want := range cases {
		got := CoerceDate(raw)
		assert.True(t, got.Valid, raw)
		assert.Equal(t, want, got.Date.String(), raw)
	}

	for _, raw := range []string{"", "not-a-date", "2024-13-45"} {
		assert.False(t, CoerceDate(raw).Valid, raw)
	}
}

func TestCoerceNumbers(t *testing.T) {
	assert.Equal(t, 10.5, CoerceFloat("10.5"))
	assert.Equal(t, 0.0, CoerceFloat("abc"))
	assert.Equal(t, 0.0, CoerceFloat(""))
	assert.Equal(t, 1000.0, CoerceFloat("1e3"))

	assert.Equal(t, int64(3), CoerceInt("3"))
	assert.Equal(t, int64(3), CoerceInt("2.7"))
	assert.Equal(t, int64(2), CoerceInt("2.4"))
	assert.Equal(t, int64(3), CoerceInt("2.5"))
	assert.Equal(t, int64(0), CoerceInt("x"))
	assert.Equal(t, int64(0), CoerceInt("1,000"))
}

func TestCoerceTextKeepsLeadingZeros(t *testing.T) {
	got := CoerceText("00123")
	if assert.NotNil(t, got) {
		assert.Equal(t, "00123", *got)
	}
	assert.Nil(t, CoerceText("  "))
}

func TestCoerceAccountAlwaysText(t *testing.T) {
	got := CoerceAccount("")
	require.NotNil(t, got)
	assert.Equal(t, "", *got)
	assert.Equal(t, "007", *CoerceAccount("007"))
}

func TestNormalizeFilename(t *testing.T) {
	assert.Equal(t, DefaultFilename, NormalizeFilename(""))
	assert.Equal(t, "spend.csv", NormalizeFilename(" spend.csv "))
}
