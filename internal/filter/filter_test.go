package filter

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func upper(line string) string { return strings.ToUpper(line) }

func TestRun_PreservesOrder(t *testing.T) {
	var out bytes.Buffer
	stats, err := Run(strings.NewReader("one\ntwo\nthree\n"), &out, upper)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got, want := out.String(), "ONE\nTWO\nTHREE\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if stats.Lines != 3 {
		t.Errorf("Lines = %d, want 3", stats.Lines)
	}
}

func TestRun_FinalLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	if _, err := Run(strings.NewReader("a\nb"), &out, upper); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got := out.String(); got != "A\nB\n" {
		t.Errorf("output = %q, want %q", got, "A\nB\n")
	}
}

func TestRun_CRLF(t *testing.T) {
	var out bytes.Buffer
	if _, err := Run(strings.NewReader("a\r\nb\r\n"), &out, upper); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got := out.String(); got != "A\nB\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_EmptyLinesPassThrough(t *testing.T) {
	var out bytes.Buffer
	var seen []string
	_, err := Run(strings.NewReader("\nx\n\n"), &out, func(l string) string {
		seen = append(seen, l)
		return l
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.String() != "\nx\n\n" {
		t.Errorf("output = %q", out.String())
	}
	if len(seen) != 3 || seen[0] != "" || seen[1] != "x" || seen[2] != "" {
		t.Errorf("transform saw %q", seen)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	stats, err := Run(strings.NewReader(""), &out, upper)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.Len() != 0 || stats.Lines != 0 {
		t.Errorf("expected no output, got %q (%d lines)", out.String(), stats.Lines)
	}
}

type failingReader struct {
	data string
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.done {
		r.done = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("disk on fire")
}

func TestRun_ReadError(t *testing.T) {
	var out bytes.Buffer
	stats, err := Run(&failingReader{data: "ok\npartial"}, &out, upper)
	if !errors.Is(err, ErrRead) {
		t.Fatalf("expected ErrRead, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the failing line, got: %v", err)
	}
	if out.String() != "OK\n" {
		t.Errorf("completed lines should be flushed, got %q", out.String())
	}
	if stats.Lines != 1 {
		t.Errorf("Lines = %d, want 1", stats.Lines)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRun_WriteError(t *testing.T) {
	_, err := Run(strings.NewReader("a\n"), failingWriter{}, upper)
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected underlying error to be wrapped, got %v", err)
	}
}
