package domain

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// requiredColumns must all hold a value for a row to survive
// [DropIncomplete].
var requiredColumns = []string{"country", "name", "sex", ColAge, ColFatal}

// droppableColumns carry no analytical value and are removed by
// [DropColumns] when present: the sheet's own row counter and two trailing
// columns that are empty in every published edition.
var droppableColumns = []string{"original_order", "unnamed:_21", "unnamed:_22"}

// DropIncomplete removes rows missing any of the key analysis columns
// (country, name, sex, age, fatal). Unlike the cleaners this changes the row
// count, which is why it runs as an opt-in filter stage, not a cleaning
// stage. Required columns absent from the sheet are ignored.
func DropIncomplete(df dataframe.DataFrame) dataframe.DataFrame {
	records := df.Records()
	if len(records) == 0 {
		return df
	}

	header := records[0]
	var checked []int
	for i, name := range header {
		for _, req := range requiredColumns {
			if name == req {
				checked = append(checked, i)
			}
		}
	}
	if len(checked) == 0 {
		return df
	}

	kept := [][]string{header}
	for _, row := range records[1:] {
		complete := true
		for _, i := range checked {
			if Missing(row[i]) {
				complete = false
				break
			}
		}
		if complete {
			kept = append(kept, row)
		}
	}

	return dataframe.LoadRecords(kept,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}

// BlankRareValues blanks cell values whose column-wide occurrence count is
// below minCount, keeping the rows themselves. Missing cells never count
// toward an occurrence total and are left alone. A minCount below 2 is a
// no-op.
func BlankRareValues(df dataframe.DataFrame, minCount int) dataframe.DataFrame {
	if minCount < 2 {
		return df
	}

	for _, col := range df.Names() {
		cells := df.Col(col).Records()
		counts := make(map[string]int, len(cells))
		for _, cell := range cells {
			if !Missing(cell) {
				counts[cell]++
			}
		}

		out := make([]string, len(cells))
		for i, cell := range cells {
			if !Missing(cell) && counts[cell] < minCount {
				out[i] = ""
				continue
			}
			out[i] = cell
		}
		df = df.Mutate(series.New(out, series.String, col))
	}
	return df
}

// DropColumns removes the known junk columns from the frame. Only columns
// actually present are selected away; the row count is untouched.
func DropColumns(df dataframe.DataFrame) dataframe.DataFrame {
	var keep []string
	for _, name := range df.Names() {
		junk := false
		for _, d := range droppableColumns {
			if name == d {
				junk = true
				break
			}
		}
		if !junk {
			keep = append(keep, name)
		}
	}
	if len(keep) == len(df.Names()) {
		return df
	}
	return df.Select(keep)
}
