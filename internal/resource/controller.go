package resource

import (
	"context"
	"io"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxJobs is the maximum number of concurrent jobs.
	// If 0, defaults to 1.
	MaxJobs int64

	// IOLimitBytesPerSec is the maximum IO throughput across all jobs.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages job concurrency and IO throughput.
type Controller struct {
	cfg       Config
	jobs      *semaphore.Weighted
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxJobs <= 0 {
		cfg.MaxJobs = 1
	}

	c := &Controller{
		cfg:  cfg,
		jobs: semaphore.NewWeighted(cfg.MaxJobs),
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// MaxJobs returns the configured job limit.
func (c *Controller) MaxJobs() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxJobs
}

// AcquireJob reserves a job slot, blocking while all slots are busy.
func (c *Controller) AcquireJob(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.jobs.Acquire(ctx, 1)
}

// ReleaseJob releases a job slot.
func (c *Controller) ReleaseJob() {
	if c == nil {
		return
	}
	c.jobs.Release(1)
}

// AcquireIO waits until the IO limit allows n bytes. Requests larger than
// the limiter burst are split.
func (c *Controller) AcquireIO(ctx context.Context, n int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	burst := c.ioLimiter.Burst()
	for n > 0 {
		step := min(n, burst)
		if err := c.ioLimiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}

// Reader wraps r so that reads are charged against the IO limit.
func (c *Controller) Reader(ctx context.Context, r io.Reader) io.Reader {
	if c == nil || c.ioLimiter == nil {
		return r
	}
	return &limitedReader{r: r, rc: c, ctx: ctx}
}

// Writer wraps w so that writes are charged against the IO limit.
func (c *Controller) Writer(ctx context.Context, w io.Writer) io.Writer {
	if c == nil || c.ioLimiter == nil {
		return w
	}
	return &limitedWriter{w: w, rc: c, ctx: ctx}
}

type limitedReader struct {
	r   io.Reader
	rc  *Controller
	ctx context.Context
}

// Read charges the bytes actually read, after the fact.
func (r *limitedReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		if werr := r.rc.AcquireIO(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

type limitedWriter struct {
	w   io.Writer
	rc  *Controller
	ctx context.Context
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if err := w.rc.AcquireIO(w.ctx, len(p)); err != nil {
		return 0, err
	}
	return w.w.Write(p)
}
