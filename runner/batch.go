package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/triedo/blobstore"
	"github.com/hupe1980/triedo/internal/resource"
)

// Batch runs jobs stored in a blobstore.Store.
type Batch struct {
	store blobstore.Store
	opts  options
}

// NewBatch creates a batch driver over store.
func NewBatch(store blobstore.Store, optFns ...Option) *Batch {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	if o.controller == nil {
		o.controller = resource.NewController(resource.Config{})
	}
	return &Batch{store: store, opts: o}
}

// Discover returns the names of all jobs with an input blob, sorted.
func (b *Batch) Discover(ctx context.Context) ([]string, error) {
	names, err := b.store.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var jobs []string
	for _, name := range names {
		for _, c := range Compressions() {
			if job, ok := strings.CutSuffix(name, c.InputName("")); ok && job != "" {
				jobs = append(jobs, job)
				break
			}
		}
	}
	slices.Sort(jobs)
	return slices.Compact(jobs), nil
}

// Run executes jobs concurrently, bounded by the controller's job limit.
// The first failing job cancels the rest and its error is returned.
func (b *Batch) Run(ctx context.Context, jobs ...string) error {
	g, gctx := errgroup.WithContext(ctx)
	rc := b.opts.controller

	for _, job := range jobs {
		g.Go(func() error {
			if err := rc.AcquireJob(gctx); err != nil {
				return err
			}
			defer rc.ReleaseJob()

			_, err := b.RunJob(gctx, job)
			return err
		})
	}
	return g.Wait()
}

// RunJob executes a single job against a fresh list.
func (b *Batch) RunJob(ctx context.Context, job string) (Summary, error) {
	logger := b.opts.logger
	start := time.Now()

	in, comp, err := b.openInput(ctx, job)
	if err != nil {
		return Summary{}, err
	}
	defer in.Close()

	logger.Info("job started", "job", job, "input", comp.InputName(job), "bytes", in.Size())

	exec, list, err := b.opts.newExecutor()
	if err != nil {
		return Summary{}, err
	}

	raw, err := blobstore.NewReader(ctx, in)
	if err != nil {
		return Summary{}, err
	}
	defer raw.Close()

	src, err := comp.NewReader(b.opts.controller.Reader(ctx, raw))
	if err != nil {
		return Summary{}, fmt.Errorf("job %s: open %s stream: %w", job, comp, err)
	}
	defer src.Close()

	out, err := b.store.Create(ctx, comp.OutputName(job))
	if err != nil {
		return Summary{}, err
	}

	sum, err := b.process(ctx, job, exec.Run, src, out, comp)
	if err != nil {
		_ = blobstore.Abort(out)
		logger.Error("job aborted", "job", job, "error", err)
		return sum, err
	}
	if err := out.Close(); err != nil {
		return sum, fmt.Errorf("job %s: publish output: %w", job, err)
	}

	st := list.Stats()
	logger.Info("job finished",
		"job", job,
		"output", comp.OutputName(job),
		"executed", sum.Executed,
		"items", st.Items,
		"index_bytes", st.Index.Words.Bytes+st.Index.Tags.Bytes,
		"elapsed", time.Since(start),
	)
	return sum, nil
}

func (b *Batch) process(
	ctx context.Context,
	job string,
	run func(io.Writer, string) error,
	src io.Reader,
	out io.Writer,
	comp Compression,
) (Summary, error) {
	enc, err := comp.NewWriter(b.opts.controller.Writer(ctx, out))
	if err != nil {
		return Summary{}, err
	}
	bw := bufio.NewWriter(enc)

	var sum Summary
	err = eachLine(ctx, src, func(n int, line string) error {
		if err := run(bw, line); err != nil {
			if isParseError(err) {
				return &LineError{Job: job, Line: n, Text: line, Err: err}
			}
			return err
		}
		sum.Executed++
		return nil
	})
	if err != nil {
		_ = enc.Close()
		return sum, err
	}

	if err := bw.Flush(); err != nil {
		return sum, err
	}
	return sum, enc.Close()
}

func (b *Batch) openInput(ctx context.Context, job string) (blobstore.Blob, Compression, error) {
	for _, c := range Compressions() {
		blob, err := b.store.Open(ctx, c.InputName(job))
		if err == nil {
			return blob, c, nil
		}
		if !errors.Is(err, blobstore.ErrNotFound) {
			return nil, None, err
		}
	}
	return nil, None, fmt.Errorf("%w %s", ErrNoInput, job)
}
