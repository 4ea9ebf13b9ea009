// Package sheet reads and writes the incident table as CSV.
package sheet

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Store loads and saves incident tables on the local filesystem.
// It implements pipeline.Loader and pipeline.Writer.
type Store struct {
	logger *slog.Logger
}

// NewStore creates a filesystem-backed sheet store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{logger: logger}
}

// Load reads a CSV file into a DataFrame. Type detection is disabled so
// every column stays a raw string; the cleaners own all interpretation.
// The header row supplies column names verbatim.
func (s *Store) Load(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load %s: %w", path, df.Err)
	}

	s.logger.Info("spreadsheet loaded", "path", path, "rows", df.Nrow(), "columns", df.Ncol())
	return df, nil
}

// Write serializes the table to a CSV file at path, header row included,
// creating parent directories as needed.
func (s *Store) Write(df dataframe.DataFrame, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := df.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	s.logger.Info("spreadsheet written", "path", path, "rows", df.Nrow(), "columns", df.Ncol())
	return nil
}
