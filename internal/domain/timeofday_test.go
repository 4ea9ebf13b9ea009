package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected string
	}{
		{"gsaf hour marker", "14h00", "14:00"},
		{"colon form", "14:00", "14:00"},
		{"four digits", "1400", "14:00"},
		{"three digits", "930", "09:30"},
		{"bare hour", "14h", "14:00"},
		{"twelve hour pm", "6:30 PM", "18:30"},
		{"twelve hour am", "6:30 am", "06:30"},
		{"noon pm boundary", "12:15 pm", "12:15"},
		{"midnight am boundary", "12 am", "00:00"},
		{"range keeps lower bound", "14h00-15h00", "14:00"},
		{"padded clock", "  09h45  ", "09:45"},
		{"dawn bucket", "Dawn", "06:00"},
		{"morning bucket", "Morning", "09:00"},
		{"noon bucket", "noon", "12:00"},
		{"afternoon bucket", "Afternoon", "15:00"},
		{"dusk bucket", "dusk", "18:00"},
		{"night bucket", "Night", "23:00"},
		{"near-miss phrase", "afternoon-ish", SentinelUnknown},
		{"free text", "Sometime after lunch", SentinelUnknown},
		{"blank", "", SentinelUnknown},
		{"gota missing", "NaN", SentinelUnknown},
		{"impossible hour", "2510", SentinelUnknown},
		{"impossible minute", "14:75", SentinelUnknown},
		{"punctuation only", "--", SentinelUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeTime(tc.cell))
		})
	}
}

func TestCleanTime_RowCountPreserved(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"time"},
		{"14h00"},
		{"afternoon-ish"},
		{""},
		{"Morning"},
	})

	cleaned, fallbacks := CleanTime(df)

	assert.Equal(t, df.Nrow(), cleaned.Nrow())
	assert.Equal(t, 2, fallbacks)
	assert.Equal(t,
		[]string{"14:00", SentinelUnknown, SentinelUnknown, "09:00"},
		cleaned.Col("time").Records(),
	)
}
