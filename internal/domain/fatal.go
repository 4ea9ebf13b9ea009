package domain

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// Fatality labels produced by [NormalizeFatal].
const (
	FatalYes     = "Yes"
	FatalNo      = "No"
	FatalUnknown = SentinelUnknown
)

// fatalLabels maps the uppercased, trimmed GSAF fatality flag to its label.
// "F" is recorded by some investigators for "fatal"; "Y x 2" marks a double
// fatality; "N N" is a data-entry duplication of "N". "M" and "NQ" appear a
// handful of times with no documented meaning and stay unknown.
var fatalLabels = map[string]string{
	"Y":     FatalYes,
	"F":     FatalYes,
	"Y X 2": FatalYes,
	"N":     FatalNo,
	"N N":   FatalNo,
}

// NormalizeFatal coerces one fatality cell to "Yes", "No", or "Unknown".
// The mapping is total and deterministic: every input not recognized as
// affirmative or negative, including blanks, becomes "Unknown".
func NormalizeFatal(cell string) string {
	if Missing(cell) {
		return FatalUnknown
	}
	if label, ok := fatalLabels[strings.ToUpper(strings.TrimSpace(cell))]; ok {
		return label
	}
	return FatalUnknown
}

// CleanFatal rewrites the fatal column through [NormalizeFatal], returning
// the new frame and the number of cells that fell back to "Unknown".
func CleanFatal(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	return mapColumn(df, ColFatal, NormalizeFatal)
}
