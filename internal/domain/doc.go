// Package domain models Global Shark Attack File (GSAF) incident data.
//
// # Data Source
//
// Incidents come from the GSAF spreadsheet published by the Shark Research
// Institute at https://www.sharkattackfile.net/. The sheet is hand-maintained
// and its columns carry decades of inconsistent data entry, which is why every
// transform in this package falls back to a sentinel rather than fail.
//
// # GSAF Data Conventions
//
// Column headers:
//
//	Headers are inconsistent: some carry trailing spaces ("Species ", "Sex "),
//	the fatality flag lives in an unlabeled column ("Unnamed: 11"), and the
//	citation column is "Investigator or Source". [RenameColumns] maps known
//	headers through a fixed table and lowercases the rest with spaces replaced
//	by underscores.
//
// Fatality flag:
//
//	Mostly "Y"/"N", but also lowercase variants, stray whitespace, "F"
//	(fatal), "N N", "Y x 2" (double fatality), "M", "NQ", "UNKNOWN", and
//	blanks. Normalized to the three labels "Yes", "No", and "Unknown";
//	anything not recognized as affirmative or negative becomes "Unknown".
//
// Time of day:
//
//	A mix of 24-hour clock forms ("14h00", "14:00", "1400", "930"), 12-hour
//	forms ("6:30 PM"), ranges ("14h00-15h00", lower bound kept), and
//	descriptive words ("dawn", "morning", "afternoon"). Descriptive words map
//	to fixed bucket times and are matched exactly, not by substring, so
//	near-misses like "afternoon-ish" resolve to the Unknown sentinel instead
//	of a guessed bucket.
//
// Species:
//
//	Free text such as "White shark, 3.5 m" or "Shark involvement not
//	confirmed". Matched case-insensitively against an ordered catalog of
//	recognized species; the catalog orders more specific names first so
//	"Sand tiger shark" never resolves as "Tiger shark". No match means
//	"Unknown".
//
// Unknown values:
//
//	[SentinelUnknown] ("Unknown") is the single spelling for "no usable data"
//	across the cleaned fatal, time, species, source, and pdf columns. gota
//	renders missing cells as either "" or "NaN" depending on how the frame
//	was built; [Missing] treats both as absent.
package domain
