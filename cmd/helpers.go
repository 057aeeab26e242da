package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cwbudde/utilityprog/internal/fit"
	"github.com/cwbudde/utilityprog/internal/metrics"
	"github.com/cwbudde/utilityprog/internal/store"
	"github.com/cwbudde/utilityprog/internal/up"
)

// progressPrinter prints one line per round and mirrors it to the trace when enabled.
type progressPrinter struct {
	out   io.Writer
	runID string
	trace *store.TraceWriter
}

func newProgressPrinter(out io.Writer) (*progressPrinter, error) {
	p := &progressPrinter{out: out, runID: store.NewRunID()}
	if traceDir == "" {
		return p, nil
	}

	tw, err := store.NewTraceWriter(traceDir, p.runID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace: %w", err)
	}
	p.trace = tw
	slog.Info("Recording trace", "run_id", p.runID, "path", tw.Path())
	return p, nil
}

func (p *progressPrinter) print(round fit.Round, object string) {
	fmt.Fprintf(p.out, "%s, utility %v\n", object, round.Utility)
	if p.trace == nil {
		return
	}

	err := p.trace.Write(store.TraceEntry{
		RunID:     p.runID,
		Round:     round.Index,
		Object:    object,
		Utility:   round.Utility,
		Timestamp: time.Now(),
	})
	if err != nil {
		slog.Warn("Failed to write trace entry", "run_id", p.runID, "error", err)
	}
}

func (p *progressPrinter) Close() error {
	if p.trace == nil {
		return nil
	}
	tw := p.trace
	p.trace = nil
	return tw.Close()
}

// newObserver returns a metrics collector when statistics were requested.
func newObserver() (up.Observer, *metrics.Collector, error) {
	if !showStats {
		return nil, nil, nil
	}
	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return nil, nil, err
	}
	return collector, collector, nil
}

func printSummary(out io.Writer, result *fit.DriveResult, collector *metrics.Collector) {
	fmt.Fprintf(out, "Stopped after %d round(s): %s (utility %v -> %v)\n",
		result.Rounds, result.Reason, result.InitialUtility, result.FinalUtility)

	if collector == nil {
		return
	}
	s := collector.Summary()
	fmt.Fprintf(out, "Calls: %.0f, attempts: %.0f, improvements: %.0f, edits replayed: %d\n",
		s.Calls, s.Attempts, s.Improvements, result.Changes)
}
