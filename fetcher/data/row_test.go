package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValue(t *testing.T) {
	row := Row{
		"NAME":    "  Lakers  ",
		"EMPTY":   "   ",
		"MISSING": nil,
		"NUMBER":  12.0,
	}

	require.NotNil(t, row.StringValue("NAME"))
	assert.Equal(t, "Lakers", *row.StringValue("NAME"))
	assert.Nil(t, row.StringValue("EMPTY"))
	assert.Nil(t, row.StringValue("MISSING"))
	assert.Nil(t, row.StringValue("NUMBER"))
	assert.Nil(t, row.StringValue("ABSENT"))
}

func TestIdValue(t *testing.T) {
	row := Row{
		"NUMERIC": 1610612747.0,
		"STRING":  " 0022300001 ",
		"EMPTY":   "",
		"BAD":     true,
	}

	require.NotNil(t, row.IdValue("NUMERIC"))
	assert.Equal(t, "1610612747", *row.IdValue("NUMERIC"))

	// Leading zeros must survive, the ids are join keys.
	require.NotNil(t, row.IdValue("STRING"))
	assert.Equal(t, "0022300001", *row.IdValue("STRING"))

	assert.Nil(t, row.IdValue("EMPTY"))
	assert.Nil(t, row.IdValue("BAD"))
	assert.Nil(t, row.IdValue("ABSENT"))
}

func TestIntValue(t *testing.T) {
	row := Row{
		"FLOAT":  108.0,
		"STRING": "42",
		"BAD":    "not a number",
	}

	require.NotNil(t, row.IntValue("FLOAT"))
	assert.Equal(t, 108, *row.IntValue("FLOAT"))
	require.NotNil(t, row.IntValue("STRING"))
	assert.Equal(t, 42, *row.IntValue("STRING"))

	// A failed parse yields nil, never zero.
	assert.Nil(t, row.IntValue("BAD"))
	assert.Nil(t, row.IntValue("ABSENT"))
}

func TestFloatValue(t *testing.T) {
	row := Row{
		"FLOAT":  0.485,
		"STRING": "0.391",
		"BAD":    "n/a",
	}

	require.NotNil(t, row.FloatValue("FLOAT"))
	assert.InDelta(t, 0.485, *row.FloatValue("FLOAT"), 1e-9)
	require.NotNil(t, row.FloatValue("STRING"))
	assert.InDelta(t, 0.391, *row.FloatValue("STRING"), 1e-9)
	assert.Nil(t, row.FloatValue("BAD"))
}

func TestBoolValue(t *testing.T) {
	row := Row{
		"FLAG":    1.0,
		"ZERO":    0.0,
		"STRING":  "Y",
		"FALSY":   "0",
		"BOOLEAN": true,
	}

	assert.True(t, *row.BoolValue("FLAG"))
	assert.False(t, *row.BoolValue("ZERO"))
	assert.True(t, *row.BoolValue("STRING"))
	assert.False(t, *row.BoolValue("FALSY"))
	assert.True(t, *row.BoolValue("BOOLEAN"))
	assert.Nil(t, row.BoolValue("ABSENT"))
}

func TestDateValue(t *testing.T) {
	row := Row{
		"DATE":      "2023-10-24",
		"TIMESTAMP": "2023-10-24T00:00:00",
		"BAD":       "JAN 01, 2023",
	}

	expected := time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC)

	require.NotNil(t, row.DateValue("DATE"))
	assert.Equal(t, expected, *row.DateValue("DATE"))
	require.NotNil(t, row.DateValue("TIMESTAMP"))
	assert.Equal(t, expected, *row.DateValue("TIMESTAMP"))
	assert.Nil(t, row.DateValue("BAD"))
	assert.Nil(t, row.DateValue("ABSENT"))
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		full      string
		wantFirst string
		wantLast  string
	}{
		{"simple", "LeBron James", "LeBron", "James"},
		{"multi part last name", "Shai Gilgeous-Alexander", "Shai", "Gilgeous-Alexander"},
		{"three tokens", "Juan Carlos Navarro", "Juan", "Carlos Navarro"},
		{"single token", "Nene", "Nene", ""},
		{"padded", "  Luka Doncic  ", "Luka", "Doncic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.full)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestParseMinutes(t *testing.T) {
	require.NotNil(t, ParseMinutes("34:27"))
	assert.Equal(t, 34*60+27, *ParseMinutes("34:27"))
	require.NotNil(t, ParseMinutes("0:45"))
	assert.Equal(t, 45, *ParseMinutes("0:45"))
	assert.Nil(t, ParseMinutes("34"))
	assert.Nil(t, ParseMinutes("DNP"))
	assert.Nil(t, ParseMinutes(""))
}
