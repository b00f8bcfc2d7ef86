package caldate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_IgnoresClockTime(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	late := time.Date(2024, 6, 1, 23, 30, 0, 0, loc)

	assert.Equal(t, "2024-06-01", Of(late).String())
	assert.True(t, Of(late).Equal(New(2024, time.June, 1)))
}

func TestParse_RejectsDatetime(t *testing.T) {
	_, err := Parse("2024-01-01T10:00:00Z")
	assert.Error(t, err)

	d, err := Parse(" 2025-01-01 ")
	require.NoError(t, err)
	assert.Equal(t, 1, d.Compare(New(2024, time.December, 31)))
	assert.Equal(t, "2025-01-31", d.AddDays(30).String())
}

func TestJSON_RoundTripsAsDateString(t *testing.T) {
	b, err := json.Marshal(struct {
		D  Date  `json:"d"`
		On *Date `json:"on"`
	}{D: New(2024, time.January, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-01-01","on":null}`, string(b))

	var out Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-01"`), &out))
	assert.Equal(t, "2025-01-01", out.String())
}

func TestScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-04", d.String())

	require.NoError(t, d.Scan([]byte("2024-05-06")))
	assert.Equal(t, "2024-05-06", d.String())

	assert.Error(t, d.Scan(42))
}
