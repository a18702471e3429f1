package runner

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/flexar/pkg/calc"
	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/fsutil"
	"github.com/yaklabco/flexar/pkg/langdetect"
)

// Runner compiles discovered calculator sources with a pool of workers.
type Runner struct {
	logger *log.Logger
}

// New creates a Runner. A nil logger discards debug output.
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger}
}

// Run discovers files under opts.Paths and checks them concurrently. The
// result lists every file in path order, whatever order workers finish in.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.check(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// check compiles one file and, when asked, evaluates it with a fresh interpreter.
func (r *Runner) check(ctx context.Context, path string, opts Options) FileOutcome {
	start := time.Now()
	outcome := FileOutcome{Path: path}

	file, err := fsutil.ReadSource(ctx, path, opts.Form)
	if err != nil {
		outcome.Error = err
		outcome.Duration = time.Since(start)
		return outcome
	}

	prog, err := calc.Compile(file, calc.WithLogger(r.logger))
	outcome.Statements = len(prog)
	if err == nil && opts.Execute {
		_, err = calc.NewInterpreter(nil).Exec(prog)
	}

	if err != nil {
		if d, ok := diag.AsDiagnostic(err); ok {
			outcome.Diagnostic = d
			outcome.Language = langdetect.Guess(path, []byte(file.Text()))
		} else {
			outcome.Error = err
		}
	}

	outcome.Duration = time.Since(start)
	r.logger.Debug("checked",
		"path", path,
		"statements", outcome.Statements,
		"failed", outcome.Diagnostic != nil,
		"duration", outcome.Duration)

	return outcome
}
