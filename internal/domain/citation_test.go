package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSource(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected string
	}{
		{"already clean", "R. Collier, GSAF", "R. Collier, GSAF"},
		{"outer whitespace", "  R. Collier, GSAF  ", "R. Collier, GSAF"},
		{"missing comma space", "R. Collier,GSAF", "R. Collier, GSAF"},
		{"space before comma", "R. Collier , GSAF", "R. Collier, GSAF"},
		{"whitespace runs", "C. Creswell,   GSAF", "C. Creswell, GSAF"},
		{"internal newline", "Sydney Morning\nHerald", "Sydney Morning Herald"},
		{"trailing separator", "A. Brenneka, Shark Attack Survivors,", "A. Brenneka, Shark Attack Survivors"},
		{"semicolon respaced", "GSAF;R. Collier", "GSAF; R. Collier"},
		{"blank", "", SentinelUnknown},
		{"gota missing", "NaN", SentinelUnknown},
		{"separators only", " , ; ", SentinelUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeSource(tc.cell))
		})
	}
}

func TestNormalizePDF(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected string
	}{
		{"already clean", "1900.08.14-Mitchell.pdf", "1900.08.14-Mitchell.pdf"},
		{"uppercase extension", "2001.01.01-Smith.PDF", "2001.01.01-Smith.pdf"},
		{"embedded spaces", " 2001.01.01 Smith.pdf ", "2001.01.01Smith.pdf"},
		{"stray characters", "1958.07.05-(Hawaii).pdf", "1958.07.05-Hawaii.pdf"},
		{"numeric reference", "1758", "1758"},
		{"blank", "", SentinelUnknown},
		{"gota missing", "NaN", SentinelUnknown},
		{"punctuation only", "???", SentinelUnknown},
		{"separators only", "._-", SentinelUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePDF(tc.cell))
		})
	}
}

func TestCleanSourceAndPDF(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"source", "pdf"},
		{"  R. Collier,GSAF ", "1900.08.14-Mitchell.PDF"},
		{"", ""},
	})

	cleaned, sourceFallbacks := CleanSource(df)
	cleaned, pdfFallbacks := CleanPDF(cleaned)

	assert.Equal(t, 2, cleaned.Nrow())
	assert.Equal(t, 1, sourceFallbacks)
	assert.Equal(t, 1, pdfFallbacks)
	assert.Equal(t, []string{"R. Collier, GSAF", SentinelUnknown}, cleaned.Col("source").Records())
	assert.Equal(t, []string{"1900.08.14-Mitchell.pdf", SentinelUnknown}, cleaned.Col("pdf").Records())
}
