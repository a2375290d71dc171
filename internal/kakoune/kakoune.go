// Package kakoune embeds the Kakoune editor integration script and
// installs it into a Kakoune autoload directory.
package kakoune

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed assets/*
var assets embed.FS

// ScriptName is the file name of the main integration script.
const ScriptName = "recase.kak"

// Options configures Install.
type Options struct {
	// Dir is the autoload directory to install into.
	// Defaults to DefaultDir().
	Dir string

	// Force overwrites existing files when true.
	// When false, existing files are skipped.
	Force bool

	// Version is the recase version recorded in the marker line.
	// Defaults to "dev".
	Version string

	// Stdout receives the summary. Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what Install did.
type Result struct {
	Created     []string
	Skipped     []string
	Overwritten []string
}

// Script returns the embedded integration script, as printed by
// `recase --config`.
func Script() []byte {
	data, err := assets.ReadFile("assets/" + ScriptName)
	if err != nil {
		panic(fmt.Sprintf("embedded %s missing: %v", ScriptName, err))
	}
	return data
}

// DefaultDir returns Kakoune's per-user autoload directory.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, "kak", "autoload"), nil
}

func versionMarker(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("# installed by recase %s\n", version)
}

// Install writes every embedded script into opts.Dir, each prefixed with
// a marker line:
//
//	# installed by recase vX.Y.Z
//
// Existing files are skipped unless opts.Force is set.
func Install(opts Options) (*Result, error) {
	if opts.Dir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		opts.Dir = dir
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", opts.Dir, err)
	}

	result := &Result{}
	marker := versionMarker(opts.Version)

	err := fs.WalkDir(assets, "assets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(path, "assets/")
		out := filepath.Join(opts.Dir, rel)

		_, statErr := os.Stat(out)
		exists := statErr == nil
		if exists && !opts.Force {
			result.Skipped = append(result.Skipped, out)
			return nil
		}

		content, err := assets.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded asset %s: %w", path, err)
		}
		if err := os.WriteFile(out, append([]byte(marker), content...), 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}

		if exists {
			result.Overwritten = append(result.Overwritten, out)
		} else {
			result.Created = append(result.Created, out)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	printSummary(opts.Stdout, result)
	return result, nil
}

func printSummary(w io.Writer, r *Result) {
	fmt.Fprintln(w, "recase Kakoune integration installed:")
	for _, f := range r.Created {
		fmt.Fprintf(w, "  created: %s\n", f)
	}
	for _, f := range r.Skipped {
		fmt.Fprintf(w, "  skipped: %s (already exists)\n", f)
	}
	for _, f := range r.Overwritten {
		fmt.Fprintf(w, "  overwritten: %s\n", f)
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "%d file(s) skipped (use --force to overwrite).\n", len(r.Skipped))
	}
}
