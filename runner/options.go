package runner

import (
	"github.com/hupe1980/triedo"
	"github.com/hupe1980/triedo/codec"
	"github.com/hupe1980/triedo/command"
	"github.com/hupe1980/triedo/internal/resource"
)

type options struct {
	listOpts   []triedo.Option
	format     command.Format
	codec      codec.Codec
	logger     *triedo.Logger
	controller *resource.Controller
}

func defaultOptions() options {
	return options{
		format: command.FormatText,
		codec:  codec.Default,
		logger: triedo.NoopLogger(),
	}
}

// Option configures a driver.
type Option func(*options)

// WithListOptions sets the options used to build each job's list.
func WithListOptions(opts ...triedo.Option) Option {
	return func(o *options) {
		o.listOpts = append(o.listOpts, opts...)
	}
}

// WithFormat selects the output format.
func WithFormat(f command.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithCodec selects the JSON codec for command.FormatJSON.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithLogger sets the driver logger. Pass nil to disable logging.
func WithLogger(l *triedo.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = triedo.NoopLogger()
		}
		o.logger = l
	}
}

// WithController bounds concurrent batch jobs and blob IO.
// Without one, Batch runs at most one job at a time with unlimited IO.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

func (o options) newExecutor() (*command.Executor, *triedo.List, error) {
	l, err := triedo.New(o.listOpts...)
	if err != nil {
		return nil, nil, err
	}
	return command.NewExecutor(l, command.WithFormat(o.format), command.WithCodec(o.codec)), l, nil
}
