package domain

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-gota/gota/dataframe"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// punctSpacing rewrites "a ,b" / "a;b" style citation punctuation to the
	// consistent "a, b" form.
	punctSpacing = regexp.MustCompile(`\s*([,;:])\s*`)
)

// NormalizeSource tidies one citation cell: outer whitespace trimmed,
// internal whitespace runs collapsed to a single space, separators respaced,
// and any trailing separator dropped. Missing cells become "Unknown".
func NormalizeSource(cell string) string {
	if Missing(cell) {
		return SentinelUnknown
	}

	s := strings.TrimSpace(cell)
	s = whitespaceRuns.ReplaceAllString(s, " ")
	s = punctSpacing.ReplaceAllString(s, "$1 ")
	s = strings.TrimRight(s, " ,;:")
	if s == "" {
		return SentinelUnknown
	}
	return s
}

// NormalizePDF tidies one case-file reference: every rune that is not
// alphanumeric or one of "._-" is dropped (spaces included, matching how the
// case files themselves are named), and a ".PDF"-style extension is
// lowercased. An empty or missing cell becomes "Unknown".
func NormalizePDF(cell string) string {
	if Missing(cell) {
		return SentinelUnknown
	}

	var b strings.Builder
	for _, r := range strings.TrimSpace(cell) {
		if r == '.' || r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || strings.Trim(s, "._-") == "" {
		return SentinelUnknown
	}

	if ext := path.Ext(s); strings.EqualFold(ext, ".pdf") && ext != ".pdf" {
		s = s[:len(s)-len(ext)] + ".pdf"
	}
	return s
}

// CleanSource rewrites the source column through [NormalizeSource].
func CleanSource(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	return mapColumn(df, ColSource, NormalizeSource)
}

// CleanPDF rewrites the pdf column through [NormalizePDF].
func CleanPDF(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	return mapColumn(df, ColPDF, NormalizePDF)
}
