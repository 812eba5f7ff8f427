// Package harness runs batches of classification records through a
// classifier, compares the labels with an expected table and writes the
// actual labels and a report to flat files.
package harness

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"triangle/internal/classifier"
	"triangle/internal/config"
	"triangle/pkg/logger"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure where a run reads its inputs and writes its results.
type Options struct {
	// Source, when set, is used to open InputPath and ExpectedPath instead of
	// the local filesystem.
	Source fs.FS
	// InputPath is the CSV of records to classify.
	InputPath string
	// ExpectedPath is the CSV of expected labels.
	ExpectedPath string
	// ActualPath receives the CSV of actual labels. Skipped when empty.
	ActualPath string
	// ReportPath receives the text report. Skipped when empty.
	ReportPath string
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		InputPath:    cfg.Harness.InputPath,
		ExpectedPath: cfg.Harness.ExpectedPath,
		ActualPath:   cfg.Harness.ActualPath,
		ReportPath:   cfg.Harness.ReportPath,
	}
}

func (o Options) open(name string) (io.ReadCloser, error) {
	if o.Source != nil {
		return o.Source.Open(name) //nolint: wrapcheck
	}

	return os.Open(name) //nolint: gosec, wrapcheck
}

// create opens path for writing, creating its parent directories.
func create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint: mnd
		return nil, errors.Wrap(err, "create directory")
	}

	return os.Create(path) //nolint: gosec, wrapcheck
}

// Run classifies the records at InputPath, compares them to ExpectedPath and
// writes the actual labels and the report. Mismatches are not errors, they
// are reported in the returned Summary.
func Run(ctx context.Context, c classifier.Classifier, opts Options) (Summary, error) {
	ctx = logger.WithFields(ctx, zap.String("runID", uuid.NewString()))

	in, err := opts.open(opts.InputPath)
	if err != nil {
		return Summary{}, errors.Wrap(err, "open input")
	}
	defer func() { _ = in.Close() }()

	records, err := LoadRecords(in)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "load records from %s", opts.InputPath)
	}
	logger.Info(ctx, "loaded records", zap.String("path", opts.InputPath), zap.Int("count", len(records)))

	exp, err := opts.open(opts.ExpectedPath)
	if err != nil {
		return Summary{}, errors.Wrap(err, "open expected")
	}
	defer func() { _ = exp.Close() }()

	expected, err := LoadExpected(exp)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "load expected labels from %s", opts.ExpectedPath)
	}

	outcomes := ClassifyBatch(c, records)
	summary := Compare(outcomes, expected)

	if opts.ActualPath != "" {
		if err := writeFile(opts.ActualPath, func(w io.Writer) error { return WriteActual(w, outcomes) }); err != nil {
			return summary, errors.Wrap(err, "write actual labels")
		}
		logger.Debug(ctx, "wrote actual labels", zap.String("path", opts.ActualPath))
	}

	if opts.ReportPath != "" {
		if err := writeFile(opts.ReportPath, func(w io.Writer) error { return WriteReport(w, summary) }); err != nil {
			return summary, errors.Wrap(err, "write report")
		}
		logger.Debug(ctx, "wrote report", zap.String("path", opts.ReportPath))
	}

	for _, m := range summary.Mismatches {
		logger.Warn(ctx, "label mismatch",
			zap.String("caseID", m.CaseID),
			zap.String("expected", m.Expected),
			zap.String("actual", string(m.Actual)))
	}
	logger.Info(ctx, "run finished", zap.Int("total", summary.Total), zap.Int("failures", summary.Failures))

	return summary, nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close() //nolint: wrapcheck
}
