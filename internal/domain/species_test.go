package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpecies(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected string
	}{
		{"exact label", "White shark", "White shark"},
		{"lowercase", "white shark", "White shark"},
		{"label with size suffix", "White shark, 3.5 m", "White shark"},
		{"label inside description", "Juvenile tiger shark seen nearby", "Tiger shark"},
		{"sand tiger beats tiger", "Sand tiger shark, 2 m", "Sand tiger shark"},
		{"grey nurse beats nurse", "Grey nurse shark", "Grey nurse shark"},
		{"not confirmed", "Shark involvement not confirmed", SentinelUnknown},
		{"size only", "2 m shark", SentinelUnknown},
		{"blank", "", SentinelUnknown},
		{"gota missing", "NaN", SentinelUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeSpecies(tc.cell))
		})
	}
}

func TestSpeciesCatalog_SpecificNamesFirst(t *testing.T) {
	index := make(map[string]int, len(speciesCatalog))
	for i, label := range speciesCatalog {
		index[label] = i
	}

	assert.Less(t, index["Sand tiger shark"], index["Tiger shark"])
	assert.Less(t, index["Grey nurse shark"], index["Nurse shark"])
}

func TestSpeciesCatalog_ReturnsCopy(t *testing.T) {
	catalog := SpeciesCatalog()
	catalog[0] = "tampered"
	assert.NotEqual(t, "tampered", SpeciesCatalog()[0])
}

func TestCleanSpecies(t *testing.T) {
	df := frameFromRecords(t, [][]string{
		{"species"},
		{"White shark, 3.5 m"},
		{"Shark involvement not confirmed"},
		{""},
	})

	cleaned, fallbacks := CleanSpecies(df)

	assert.Equal(t, df.Nrow(), cleaned.Nrow())
	assert.Equal(t, 2, fallbacks)
	assert.Equal(t,
		[]string{"White shark", SentinelUnknown, SentinelUnknown},
		cleaned.Col("species").Records(),
	)
}
