package domain

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// SentinelUnknown is the placeholder written into a cleaned cell when the
// source value is missing or cannot be interpreted.
const SentinelUnknown = "Unknown"

// Canonical column names used by the cleaners after [RenameColumns] has run.
const (
	ColFatal   = "fatal"
	ColTime    = "time"
	ColSpecies = "species"
	ColSource  = "source"
	ColPDF     = "pdf"
	ColAge     = "age"
)

// Missing reports whether a cell holds no usable value. gota renders absent
// cells as "" when frames are built from raw records and as "NaN" when an
// element is marked NA, so both spellings count as missing.
func Missing(cell string) bool {
	return cell == "" || cell == "NaN"
}

// HasColumn reports whether the frame contains a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// mapColumn rewrites every cell of one column through fn and returns the new
// frame together with the number of cells that came out as [SentinelUnknown].
// A frame without the column is returned untouched; a cleaner never fails
// just because an expected column is absent from this edition of the sheet.
func mapColumn(df dataframe.DataFrame, col string, fn func(string) string) (dataframe.DataFrame, int) {
	if !HasColumn(df, col) {
		return df, 0
	}

	cells := df.Col(col).Records()
	out := make([]string, len(cells))
	fallbacks := 0
	for i, cell := range cells {
		out[i] = fn(cell)
		if out[i] == SentinelUnknown {
			fallbacks++
		}
	}

	return df.Mutate(series.New(out, series.String, col)), fallbacks
}
