// Package filter applies a per-line transform to a text stream.
package filter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors distinguishing which side of the stream failed.
var (
	ErrRead  = errors.New("reading input")
	ErrWrite = errors.New("writing output")
)

// Transform maps one input line, without its line terminator, to one
// output line.
type Transform func(line string) string

// Stats summarizes a completed run.
type Stats struct {
	// Lines is the number of lines written.
	Lines int
}

// Run reads r line by line, applies fn, and writes each result to w
// followed by "\n". Output order matches input order. A final line
// without a trailing newline is still transformed. "\r\n" terminators
// are accepted and written back as "\n".
//
// Run stops at the first read or write failure; the returned error
// wraps ErrRead or ErrWrite. Lines already transformed are flushed
// before a read error is returned.
func Run(r io.Reader, w io.Writer, fn Transform) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			if err := bw.Flush(); err != nil {
				return stats, fmt.Errorf("%w: %w", ErrWrite, err)
			}
			return stats, fmt.Errorf("%w at line %d: %w", ErrRead, stats.Lines+1, readErr)
		}
		if line == "" && readErr != nil {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if _, err := bw.WriteString(fn(line)); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		stats.Lines++

		if readErr != nil {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return stats, nil
}
