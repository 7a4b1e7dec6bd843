package runner

import (
	"bufio"
	"context"
	"io"
)

const maxLineSize = 1 << 20

// Summary counts what a driver did.
type Summary struct {
	Executed int
	Skipped  int
}

// eachLine calls fn for every line after the header. n is 1-based and
// counts the header.
func eachLine(ctx context.Context, r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !sc.Scan() {
		return sc.Err()
	}

	n := 1
	for sc.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(n, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
