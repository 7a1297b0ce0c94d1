// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/aup3wav"
	"github.com/ik5/aup3wav/audio"
	"github.com/ik5/aup3wav/project"
)

// LockName is the lock file a run holds in the root directory.
const LockName = ".aup3wav.lock"

// Config describes a batch run.
type Config struct {
	Root      string
	SourceExt string // matched case-insensitively; default ".aup3"
	OutputExt string // default ".wav"
	Policy    audio.Policy
	Verify    bool
	Workers   int  // files converted concurrently; values below 2 run sequentially
	Lock      bool // hold LockName in Root for the duration of the run
}

type (
	convertFunc func(ctx context.Context, src, dst string, opts aup3wav.Options) (aup3wav.Result, error)
	inspectFunc func(ctx context.Context, path string) (project.Inspection, error)
)

// Orchestrator converts every project file under a root directory.
type Orchestrator struct {
	cfg    Config
	logger *slog.Logger

	convert convertFunc
	inspect inspectFunc
}

// New returns an orchestrator for cfg. A nil logger discards all output.
func New(cfg Config, logger *slog.Logger) *Orchestrator {
	if cfg.SourceExt == "" {
		cfg.SourceExt = ".aup3"
	}
	if cfg.OutputExt == "" {
		cfg.OutputExt = ".wav"
	}
	cfg.Workers = max(cfg.Workers, 1)
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Orchestrator{
		cfg:     cfg,
		logger:  logger,
		convert: aup3wav.ConvertFile,
		inspect: project.Inspect,
	}
}

// Run processes every project file found one level below the root.
//
// Per-file failures are recorded in the report and never stop the run. The
// returned error is non-nil only when the run could not start (missing root,
// held lock) or ctx was cancelled; in the latter case the report is still
// returned, with unprocessed files marked failed.
func (o *Orchestrator) Run(ctx context.Context) (*Report, error) {
	if o.cfg.Root == "" {
		return nil, ErrNoRoot
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Root:    o.cfg.Root,
		Started: time.Now(),
	}
	logger := o.logger.With("run_id", report.RunID)

	if o.cfg.Lock {
		unlock, err := o.acquire()
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := unlock(); err != nil {
				logger.Warn("failed to release root lock", "error", err)
			}
		}()
	}

	jobs, err := discover(o.cfg.Root, o.cfg.SourceExt, o.cfg.OutputExt)
	if err != nil {
		return nil, err
	}
	report.Entries = make([]Entry, len(jobs))

	logger.Info("conversion started",
		"root", o.cfg.Root,
		"files", len(jobs),
		"workers", o.cfg.Workers,
		"malformed", o.cfg.Policy.String(),
	)

	if len(jobs) > 0 {
		report.Inspected = jobs[0].src
		o.diagnose(ctx, logger, jobs[0].src)
	}

	if o.cfg.Workers > 1 {
		o.runParallel(ctx, logger, jobs, report)
	} else {
		o.runSequential(ctx, logger, jobs, report)
	}

	report.Elapsed = time.Since(report.Started)
	o.finish(logger, report)

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("conversion interrupted: %w", err)
	}
	return report, nil
}

func (o *Orchestrator) acquire() (func() error, error) {
	lock := flock.New(filepath.Join(o.cfg.Root, LockName))

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}
	return lock.Unlock, nil
}

func (o *Orchestrator) runSequential(ctx context.Context, logger *slog.Logger, jobs []job, report *Report) {
	folder := ""
	for i, j := range jobs {
		if j.folder != folder {
			folder = j.folder
			logger.Info("processing folder", "folder", folder)
		}
		report.Entries[i] = o.process(ctx, logger, j)
	}
}

func (o *Orchestrator) runParallel(ctx context.Context, logger *slog.Logger, jobs []job, report *Report) {
	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	g.SetLimit(o.cfg.Workers)

	for i, j := range jobs {
		g.Go(func() error {
			e := o.process(ctx, logger, j)

			mu.Lock()
			report.Entries[i] = e
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()
}

// process runs one file through the pipeline. It never returns an error: every
// failure, including a panic in a pipeline stage, becomes the entry's outcome.
func (o *Orchestrator) process(ctx context.Context, logger *slog.Logger, j job) (e Entry) {
	start := time.Now()
	e = Entry{Folder: j.folder, Source: j.src, Output: j.dst}

	defer func() {
		if r := recover(); r != nil {
			e.Outcome = Failed
			e.Err = fmt.Errorf("panic: %v", r)
		}
		e.Elapsed = time.Since(start)
		logEntry(logger, e)
	}()

	if err := ctx.Err(); err != nil {
		e.Outcome = Failed
		e.Err = err
		return e
	}

	if _, err := os.Stat(j.dst); err == nil {
		e.Outcome = SkippedExists
		return e
	}

	res, err := o.convert(ctx, j.src, j.dst, aup3wav.Options{Policy: o.cfg.Policy, Verify: o.cfg.Verify})
	e.Stats = res.Stats

	switch {
	case errors.Is(err, project.ErrNoAudioData):
		e.Outcome = SkippedNoData
		e.Err = err
	case err != nil:
		e.Outcome = Failed
		e.Err = err
	default:
		e.Outcome = Converted
		e.Samples = res.Samples
		e.Duration = res.Duration
		e.Bytes = res.Bytes
	}

	return e
}

// diagnose logs the structure of one project file. Any failure is logged and
// otherwise ignored.
func (o *Orchestrator) diagnose(ctx context.Context, logger *slog.Logger, path string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("inspection failed", "file", path, "error", fmt.Sprint(r))
		}
	}()

	in, err := o.inspect(ctx, path)
	if err != nil {
		logger.Warn("inspection failed", "file", path, "error", err)
		return
	}

	logger.Info("inspection",
		"file", path,
		"tables", in.Tables,
		"block_store", in.HasBlockStore,
		"columns", in.Columns,
		"blocks", in.BlockCount,
		"first_block", in.FirstBlockID,
		"first_has_data", in.FirstHasData,
	)
}

func logEntry(logger *slog.Logger, e Entry) {
	attrs := []any{
		"file", filepath.Base(e.Source),
		"folder", e.Folder,
		"outcome", e.Outcome.String(),
		"elapsed", e.Elapsed.Round(time.Millisecond),
	}
	if m := e.Stats.Malformed(); m > 0 {
		attrs = append(attrs, "malformed_blocks", m)
	}

	switch e.Outcome {
	case Converted:
		attrs = append(attrs,
			"duration", e.Duration.Round(time.Millisecond),
			"size", humanize.IBytes(uint64(e.Bytes)),
		)
		logger.Info("file converted", attrs...)
	case SkippedExists:
		logger.Info("output exists", append(attrs, "output", filepath.Base(e.Output))...)
	case SkippedNoData:
		logger.Warn("no audio data", append(attrs, "error", e.Err)...)
	default:
		logger.Error("conversion failed", append(attrs, "error", e.Err)...)
	}
}

func (o *Orchestrator) finish(logger *slog.Logger, r *Report) {
	if r.Total() == 0 {
		logger.Warn("no project files found", "root", r.Root, "ext", o.cfg.SourceExt)
		return
	}

	logger.Info(r.Summary(),
		"encoded", r.Encoded(),
		"skipped_exists", r.Count(SkippedExists),
		"skipped_no_data", r.Count(SkippedNoData),
		"failed", r.Count(Failed),
		"elapsed", r.Elapsed.Round(time.Millisecond),
	)

	if r.NeedsRemediation() {
		logger.Warn(Remediation)
	}
}
