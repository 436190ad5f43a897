package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"number", `42`, 42},
		{"numeric string", `"17"`, 17},
		{"non-numeric string", `"bad"`, 0},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexInt
			require.NoError(t, json.Unmarshal([]byte(tc.in), &f))
			assert.Equal(t, tc.want, f.Int())
		})
	}
}

func TestFlexIntMarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(FlexInt(30))
	require.NoError(t, err)
	assert.Equal(t, "30", string(out))
}

func TestFlexIntScan(t *testing.T) {
	var f FlexInt

	require.NoError(t, f.Scan(int64(12)))
	assert.Equal(t, 12, f.Int())

	require.NoError(t, f.Scan(nil))
	assert.Equal(t, 0, f.Int())
}

func TestDateJSONRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-11-01"`), &d))
	assert.Equal(t, 2025, d.ToTime().Year())
	assert.Equal(t, time.November, d.ToTime().Month())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-11-01"`, string(out))
}

func TestDateAcceptsRFC3339(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-11-01T10:30:00Z"`), &d))
	assert.Equal(t, "2025-11-01", d.String())
}

func TestDateZeroMarshalsAsNull(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDateScan(t *testing.T) {
	var d Date

	when := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, d.Scan(when))
	assert.Equal(t, "2025-11-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}
