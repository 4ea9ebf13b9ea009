// Package pipeline orchestrates the one-shot fetch → load → clean → write
// run over the incident table.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/shark-data-etl/internal/config"
	"github.com/couchcryptid/shark-data-etl/internal/observability"
)

// Fetcher downloads the source spreadsheet to a local path.
type Fetcher interface {
	Download(ctx context.Context, url, dest string) (int64, error)
}

// Loader reads a local spreadsheet into an incident table.
type Loader interface {
	Load(path string) (dataframe.DataFrame, error)
}

// Writer serializes an incident table to a local spreadsheet.
type Writer interface {
	Write(df dataframe.DataFrame, path string) error
}

// StageResult records one stage's outcome for the run report.
type StageResult struct {
	Name      string
	Rows      int
	Fallbacks int
	Duration  time.Duration
}

// Report summarizes a completed run.
type Report struct {
	StartedAt    time.Time
	CompletedAt  time.Time
	BytesFetched int64
	RowsLoaded   int
	RowsWritten  int
	Stages       []StageResult
}

// Pipeline runs the cleaning stages over a single fetched table.
type Pipeline struct {
	fetcher Fetcher
	loader  Loader
	writer  Writer
	stages  []Stage
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
	done    atomic.Bool
}

// New creates a Pipeline with the given stages and observability.
func New(f Fetcher, l Loader, w Writer, stages []Stage, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher: f,
		loader:  l,
		writer:  w,
		stages:  stages,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		clock:   clockwork.NewRealClock(),
	}
}

// SetClock swaps the time source. Pass nil to reset to real time.
func (p *Pipeline) SetClock(c clockwork.Clock) {
	if c == nil {
		p.clock = clockwork.NewRealClock()
		return
	}
	p.clock = c
}

// CheckReadiness returns nil once the run has completed successfully.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.done.Load() {
		return errors.New("cleaning run has not completed yet")
	}
	return nil
}

// Run executes one fetch-load-clean-write cycle and returns its report.
// Fetch, load, and write errors are fatal; per-cell cleaning failures are
// absorbed by the stages as sentinel substitutions and only surface in the
// report and metrics.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	p.metrics.RunActive.Set(1)
	defer p.metrics.RunActive.Set(0)

	report := Report{StartedAt: p.clock.Now()}

	if p.cfg.SkipFetch {
		p.logger.Info("fetch skipped, using existing raw file", "path", p.cfg.RawPath)
	} else {
		n, err := p.fetcher.Download(ctx, p.cfg.SourceURL, p.cfg.RawPath)
		if err != nil {
			p.metrics.RunsFailed.Inc()
			return report, fmt.Errorf("fetch: %w", err)
		}
		report.BytesFetched = n
		p.metrics.FetchedBytes.Add(float64(n))
	}

	df, err := p.loader.Load(p.cfg.RawPath)
	if err != nil {
		p.metrics.RunsFailed.Inc()
		return report, fmt.Errorf("load: %w", err)
	}
	report.RowsLoaded = df.Nrow()
	p.metrics.RowsLoaded.Add(float64(df.Nrow()))

	df, err = p.runStages(ctx, df, &report)
	if err != nil {
		p.metrics.RunsFailed.Inc()
		return report, err
	}

	if err := p.writer.Write(df, p.cfg.OutputPath); err != nil {
		p.metrics.RunsFailed.Inc()
		return report, fmt.Errorf("write: %w", err)
	}
	report.RowsWritten = df.Nrow()
	p.metrics.RowsWritten.Add(float64(df.Nrow()))
	p.metrics.RunsCompleted.Inc()

	report.CompletedAt = p.clock.Now()
	p.done.Store(true)
	p.logger.Info("run complete",
		"rows_loaded", report.RowsLoaded,
		"rows_written", report.RowsWritten,
		"stages", len(report.Stages),
		"duration", report.CompletedAt.Sub(report.StartedAt),
	)
	return report, nil
}

// runStages applies each stage in order, enforcing the row-count invariant
// for cleaning stages and recording per-stage metrics.
func (p *Pipeline) runStages(ctx context.Context, df dataframe.DataFrame, report *Report) (dataframe.DataFrame, error) {
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return df, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		start := p.clock.Now()
		rowsBefore := df.Nrow()

		out, fallbacks, err := stage.Apply(df)
		if err != nil {
			return df, fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		if !stage.ReshapesRows && out.Nrow() != rowsBefore {
			return df, fmt.Errorf("stage %s: row count changed from %d to %d", stage.Name, rowsBefore, out.Nrow())
		}

		elapsed := p.clock.Since(start)
		p.metrics.StageDuration.WithLabelValues(stage.Name).Observe(elapsed.Seconds())
		if stage.Column != "" && fallbacks > 0 {
			p.metrics.SentinelFallbacks.WithLabelValues(stage.Column).Add(float64(fallbacks))
		}

		report.Stages = append(report.Stages, StageResult{
			Name:      stage.Name,
			Rows:      out.Nrow(),
			Fallbacks: fallbacks,
			Duration:  elapsed,
		})
		p.logger.Debug("stage complete",
			"stage", stage.Name,
			"rows", out.Nrow(),
			"fallbacks", fallbacks,
		)

		df = out
	}
	return df, nil
}
