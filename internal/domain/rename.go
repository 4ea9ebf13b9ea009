package domain

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// renameTable maps known GSAF headers to canonical names. Headers absent from
// the table fall through to the generic lowercase/underscore rule, so only
// headers whose canonical form is not derivable from their spelling are
// listed.
var renameTable = map[string]string{
	"Unnamed: 11":            ColFatal,
	"Fatal (Y/N)":            ColFatal,
	"Species ":               ColSpecies,
	"Sex ":                   "sex",
	"Investigator or Source": ColSource,
	"Case Number.1":          "case_number_1",
	"Case Number.2":          "case_number_2",
}

// CanonicalName maps one original header to its canonical form: the fixed
// lookup first, then trim, lowercase, and spaces to underscores.
func CanonicalName(header string) string {
	if canonical, ok := renameTable[header]; ok {
		return canonical
	}
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "_")
}

// RenameColumns returns a copy of the frame with every header mapped through
// [CanonicalName]. Headers are renamed positionally, so a sheet missing an
// expected column simply produces a frame without that canonical column.
func RenameColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	names := df.Names()
	canonical := make([]string, len(names))
	for i, name := range names {
		canonical[i] = CanonicalName(name)
	}

	out := df.Copy()
	if err := out.SetNames(canonical...); err != nil {
		return df, fmt.Errorf("rename columns: %w", err)
	}
	return out, nil
}
