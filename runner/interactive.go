package runner

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/hupe1980/triedo/command"
)

// Interactive executes commands from r against a fresh list and writes
// results to w. Malformed lines are logged and skipped. Output is flushed
// once at the end.
func Interactive(ctx context.Context, r io.Reader, w io.Writer, optFns ...Option) (Summary, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	exec, _, err := o.newExecutor()
	if err != nil {
		return Summary{}, err
	}

	bw := bufio.NewWriter(w)
	var sum Summary

	err = eachLine(ctx, r, func(n int, line string) error {
		err := exec.Run(bw, line)
		switch {
		case err == nil:
			sum.Executed++
			return nil
		case isParseError(err):
			sum.Skipped++
			o.logger.Debug("skipping line", "line", n, "error", err)
			return nil
		default:
			return err
		}
	})
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return sum, err
}

func isParseError(err error) bool {
	return errors.Is(err, command.ErrEmptyLine) ||
		errors.Is(err, command.ErrUnknownCommand) ||
		errors.Is(err, command.ErrMalformed)
}
