package domain

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// speciesCatalog lists recognized species labels in match order. Order
// matters twice: names that contain another catalog name sort first
// ("Sand tiger shark" before "Tiger shark", "Grey nurse shark" before
// "Nurse shark"), and a fixed order keeps resolution deterministic when a
// cell happens to mention two species.
var speciesCatalog = []string{
	"Sand tiger shark",
	"Grey nurse shark",
	"Oceanic whitetip shark",
	"Whitetip reef shark",
	"Caribbean reef shark",
	"Grey reef shark",
	"White shark",
	"Tiger shark",
	"Bull shark",
	"Zambezi shark",
	"Nurse shark",
	"Blacktip shark",
	"Bronze whaler shark",
	"Copper shark",
	"Blue shark",
	"Mako shark",
	"Hammerhead shark",
	"Lemon shark",
	"Spinner shark",
	"Dusky shark",
	"Silky shark",
	"Sandbar shark",
	"Sevengill shark",
	"Goblin shark",
	"Porbeagle shark",
	"Raggedtooth shark",
	"Wobbegong shark",
	"Galapagos shark",
	"Leopard shark",
	"Thresher shark",
	"Whale shark",
	"Basking shark",
}

// SpeciesCatalog returns the recognized species labels in match order.
func SpeciesCatalog() []string {
	out := make([]string, len(speciesCatalog))
	copy(out, speciesCatalog)
	return out
}

// NormalizeSpecies resolves one free-text species cell to a catalog label.
// Matching is case-insensitive containment, so "White shark, 3.5 m" and
// "juvenile white shark" both resolve to "White shark". Cells that mention
// no cataloged species ("Shark involvement not confirmed", size-only
// descriptions) become "Unknown".
func NormalizeSpecies(cell string) string {
	if Missing(cell) {
		return SentinelUnknown
	}
	lower := strings.ToLower(cell)
	for _, label := range speciesCatalog {
		if strings.Contains(lower, strings.ToLower(label)) {
			return label
		}
	}
	return SentinelUnknown
}

// CleanSpecies rewrites the species column through [NormalizeSpecies],
// returning the new frame and the number of cells resolved to "Unknown".
func CleanSpecies(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	return mapColumn(df, ColSpecies, NormalizeSpecies)
}
