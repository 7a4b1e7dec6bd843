package runner

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is the stream compression of a batch job's input and output.
type Compression int

const (
	// None reads "<job>.in" and writes "<job>.out".
	None Compression = iota
	// Zstd reads "<job>.in.zst" and writes "<job>.out.zst".
	Zstd
	// LZ4 reads "<job>.in.lz4" and writes "<job>.out.lz4".
	LZ4
)

// Compressions lists every supported compression in lookup order.
func Compressions() []Compression {
	return []Compression{None, Zstd, LZ4}
}

// Suffix returns the file suffix appended after ".in" / ".out".
func (c Compression) Suffix() string {
	switch c {
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// InputName returns the input blob name for job.
func (c Compression) InputName(job string) string {
	return job + ".in" + c.Suffix()
}

// OutputName returns the output blob name for job.
func (c Compression) OutputName(job string) string {
	return job + ".out" + c.Suffix()
}

// NewReader wraps r with the matching decompressor.
func (c Compression) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w with the matching compressor. Closing the returned
// writer flushes the compressed stream but does not close w.
func (c Compression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
