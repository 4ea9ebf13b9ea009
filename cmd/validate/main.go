// Command validate checks a cleaned GSAF sheet against the raw download it
// came from: canonical headers, preserved row counts, and cleaned value
// domains. It is the post-run integrity gate for the cleaning pipeline.
//
// Usage:
//
//	go run ./cmd/validate -raw data/raw/gsaf.csv -clean data/clean/gsaf_clean.csv
//
// Pass -allow-fewer-rows when the run had row filters enabled.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/couchcryptid/shark-data-etl/internal/domain"
)

var clockRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// phase tracks pass/fail for one validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	rawPath := flag.String("raw", "", "path to the raw downloaded CSV")
	cleanPath := flag.String("clean", "", "path to the cleaned CSV")
	allowFewerRows := flag.Bool("allow-fewer-rows", false, "permit the cleaned sheet to have fewer rows (row filters were enabled)")
	flag.Parse()

	if *rawPath == "" || *cleanPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*rawPath, *cleanPath, *allowFewerRows); code != 0 {
		os.Exit(code)
	}
}

func run(rawPath, cleanPath string, allowFewerRows bool) int {
	rawHeader, rawRows, err := readCSV(rawPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read raw: %v\n", err)
		return 1
	}
	cleanHeader, cleanRows, err := readCSV(cleanPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read clean: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkHeaders(rawHeader, cleanHeader),
		checkRowCount(len(rawRows), len(cleanRows), allowFewerRows),
		checkValues(cleanHeader, cleanRows),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	if failed > 0 {
		fmt.Printf("%d of %d phases failed\n", failed, len(phases))
		return 1
	}
	fmt.Printf("all %d phases passed\n", len(phases))
	return 0
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: no header row", path)
	}
	return records[0], records[1:], nil
}

// checkHeaders verifies every cleaned header is canonical and that each raw
// header maps to some cleaned header (minus the dropped junk columns).
func checkHeaders(rawHeader, cleanHeader []string) *phase {
	p := &phase{name: "canonical headers"}

	present := make(map[string]bool, len(cleanHeader))
	for _, h := range cleanHeader {
		present[h] = true
		if h != domain.CanonicalName(h) {
			p.errorf("header %q is not canonical (want %q)", h, domain.CanonicalName(h))
		}
		if strings.Contains(h, " ") {
			p.errorf("header %q contains a space", h)
		}
	}

	for _, col := range []string{domain.ColFatal, domain.ColTime, domain.ColSpecies, domain.ColSource, domain.ColPDF} {
		if canonicalIn(rawHeader, col) && !present[col] {
			p.errorf("cleaned sheet is missing the %q column", col)
		}
	}
	return p
}

func canonicalIn(header []string, canonical string) bool {
	for _, h := range header {
		if domain.CanonicalName(h) == canonical {
			return true
		}
	}
	return false
}

func checkRowCount(rawRows, cleanRows int, allowFewerRows bool) *phase {
	p := &phase{name: "row count"}
	switch {
	case cleanRows == rawRows:
	case cleanRows < rawRows && allowFewerRows:
	case cleanRows < rawRows:
		p.errorf("cleaned sheet has %d rows, raw has %d (use -allow-fewer-rows if filters were on)", cleanRows, rawRows)
	default:
		p.errorf("cleaned sheet has %d rows, raw has only %d", cleanRows, rawRows)
	}
	return p
}

// checkValues verifies each cleaned column only holds values its cleaner can
// produce.
func checkValues(header []string, rows [][]string) *phase {
	p := &phase{name: "value domains"}

	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}

	speciesOK := map[string]bool{domain.SentinelUnknown: true}
	for _, label := range domain.SpeciesCatalog() {
		speciesOK[label] = true
	}

	fatalIdx, timeIdx, speciesIdx := col(domain.ColFatal), col(domain.ColTime), col(domain.ColSpecies)
	for i, row := range rows {
		if fatalIdx >= 0 && fatalIdx < len(row) {
			switch row[fatalIdx] {
			case domain.FatalYes, domain.FatalNo, domain.FatalUnknown:
			default:
				p.errorf("row %d: fatal value %q out of domain", i+1, row[fatalIdx])
			}
		}
		if timeIdx >= 0 && timeIdx < len(row) {
			if v := row[timeIdx]; v != domain.SentinelUnknown && !clockRe.MatchString(v) {
				p.errorf("row %d: time value %q is neither HH:MM nor the sentinel", i+1, v)
			}
		}
		if speciesIdx >= 0 && speciesIdx < len(row) {
			if !speciesOK[row[speciesIdx]] {
				p.errorf("row %d: species %q is not in the catalog", i+1, row[speciesIdx])
			}
		}
	}
	return p
}
