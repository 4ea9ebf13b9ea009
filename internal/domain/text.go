package domain

import (
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// textColumns are the free-text place columns normalized by [CleanText].
var textColumns = []string{"country", "area", "location"}

// textPunctuation lists the punctuation stripped from place names. The
// inverted marks show up in Spanish-language entries.
const textPunctuation = "¡¿.,!?;"

// NormalizeText tidies one place-name cell: punctuation stripped, whitespace
// collapsed, title case applied. Missing cells stay as they are; place
// columns keep "" rather than a sentinel so grouping on them stays natural.
func NormalizeText(cell string) string {
	if Missing(cell) {
		return cell
	}

	s := strings.Map(func(r rune) rune {
		if strings.ContainsRune(textPunctuation, r) {
			return -1
		}
		return r
	}, cell)
	s = strings.Join(strings.Fields(s), " ")
	// cases.Caser carries internal state, so build one per call.
	return cases.Title(language.English).String(s)
}

// NormalizeAge keeps the leading numeric token of an age cell ("18 months"
// -> "18") and blanks everything else ("teen", "20s", "middle age"). Ages
// keep "" for unknown rather than a sentinel so the column stays numeric.
func NormalizeAge(cell string) string {
	if Missing(cell) {
		return ""
	}
	fields := strings.Fields(cell)
	if len(fields) == 0 {
		return ""
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// CleanText rewrites the country, area, and location columns through
// [NormalizeText]. Columns absent from the sheet are skipped.
func CleanText(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	for _, col := range textColumns {
		df, _ = mapColumn(df, col, NormalizeText)
	}
	return df, 0
}

// CleanAge rewrites the age column through [NormalizeAge].
func CleanAge(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	return mapColumn(df, ColAge, NormalizeAge)
}
