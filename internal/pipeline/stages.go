package pipeline

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/couchcryptid/shark-data-etl/internal/config"
	"github.com/couchcryptid/shark-data-etl/internal/domain"
)

// Stage is one table-to-table transform in the run.
type Stage struct {
	Name string

	// Column names the cleaned column for the fallback metric; empty for
	// stages that touch several columns or none.
	Column string

	// ReshapesRows marks opt-in filter stages. Every other stage must
	// preserve the row count, and the pipeline aborts if one does not.
	ReshapesRows bool

	Apply func(dataframe.DataFrame) (dataframe.DataFrame, int, error)
}

// cleaner adapts a domain cleaning function into a Stage.
func cleaner(name, column string, fn func(dataframe.DataFrame) (dataframe.DataFrame, int)) Stage {
	return Stage{
		Name:   name,
		Column: column,
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, int, error) {
			out, fallbacks := fn(df)
			return out, fallbacks, nil
		},
	}
}

// filter adapts a row-reshaping domain function into a Stage.
func filter(name string, fn func(dataframe.DataFrame) dataframe.DataFrame) Stage {
	return Stage{
		Name:         name,
		ReshapesRows: true,
		Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, int, error) {
			return fn(df), 0, nil
		},
	}
}

// CleaningStages builds the ordered stage list for a run. Renaming comes
// first so every later stage sees canonical column names; the opt-in row
// filters run before the cleaners (mirroring the original script); the junk
// column drop runs last.
func CleaningStages(cfg *config.Config) []Stage {
	stages := []Stage{
		{
			Name: "rename_columns",
			Apply: func(df dataframe.DataFrame) (dataframe.DataFrame, int, error) {
				out, err := domain.RenameColumns(df)
				return out, 0, err
			},
		},
	}

	if cfg.DropIncomplete {
		stages = append(stages, filter("drop_incomplete", domain.DropIncomplete))
	}
	if cfg.MinCategoryCount > 0 {
		threshold := cfg.MinCategoryCount
		stages = append(stages, cleaner("blank_rare_values", "", func(df dataframe.DataFrame) (dataframe.DataFrame, int) {
			return domain.BlankRareValues(df, threshold), 0
		}))
	}

	stages = append(stages,
		cleaner("clean_text", "", domain.CleanText),
		cleaner("clean_age", domain.ColAge, domain.CleanAge),
		cleaner("clean_fatal", domain.ColFatal, domain.CleanFatal),
		cleaner("clean_time", domain.ColTime, domain.CleanTime),
		cleaner("clean_species", domain.ColSpecies, domain.CleanSpecies),
		cleaner("clean_source", domain.ColSource, domain.CleanSource),
		cleaner("clean_pdf", domain.ColPDF, domain.CleanPDF),
		cleaner("drop_columns", "", func(df dataframe.DataFrame) (dataframe.DataFrame, int) {
			return domain.DropColumns(df), 0
		}),
	)

	return stages
}
