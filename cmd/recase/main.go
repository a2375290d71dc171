package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/recase/internal/config"
	"github.com/unbound-force/recase/internal/filter"
	"github.com/unbound-force/recase/internal/kakoune"
	"github.com/unbound-force/recase/internal/mcpserver"
	"github.com/unbound-force/recase/internal/recase"
	"github.com/unbound-force/recase/internal/report"
	"github.com/unbound-force/recase/internal/style"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
	Level:           charmlog.WarnLevel,
})

// Set by build flags.
var version = "dev"

// Exit statuses.
const (
	exitFailure    = 1
	exitMissingArg = 2
	exitBadStyle   = 3
	exitIO         = 4
)

// exitError carries the process exit status for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// exitCode maps an error returned by a command to a process exit status.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	var pe *style.ParseError
	if errors.As(err, &pe) {
		return exitBadStyle
	}
	return exitFailure
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "recase:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	settings string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var (
		g           globalFlags
		printConfig bool
		positional  bool
	)

	root := &cobra.Command{
		Use:   "recase [flags] [--] REFERENCE [PRIORITY...]",
		Short: "Rewrite identifiers in the style of a reference",
		Long: `recase reads lines from standard input and writes each one back
in the identifier style of REFERENCE: its lettercase convention
(lower, camel, Caps, ALL CAPS), its word separator (none, _, - or
space) and an optional leading separator.

When REFERENCE fits several styles, each PRIORITY is tried in order.
A priority is written as [separator] letter [separator] letter, for
example a_b (snake_case), aB (camelCase), Ab (PascalCase), A-B or _ab.
Priorities from the settings file are tried after those given here.

Use -- before a REFERENCE or PRIORITY that starts with '-'.`,
		Example: `  echo my_var_name | recase camelCase
  echo 'max retries' | recase SCREAMING_SNAKE
  echo value | recase -- word aB
  recase --config > ~/.config/kak/autoload/recase.kak`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printConfig {
				_, err := cmd.OutOrStdout().Write(kakoune.Script())
				return err
			}
			if err := requireReference(cmd, args); err != nil {
				return err
			}
			return runFilter(filterParams{
				reference:  args[0],
				specs:      args[1:],
				positional: positional,
				global:     g,
				stdin:      cmd.InOrStdin(),
				stdout:     cmd.OutOrStdout(),
			})
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&g.settings, "settings", "",
		"settings file (default: $"+config.EnvPath+" or <user config dir>/recase/config.yaml)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false,
		"log debug information to stderr")
	root.Flags().BoolVar(&printConfig, "config", false,
		"print the Kakoune integration script and exit")
	root.Flags().BoolVarP(&positional, "positional", "p", false,
		"copy REFERENCE's casing character by character instead of inferring a style")

	root.AddCommand(newExplainCmd(&g))
	root.AddCommand(newInitCmd())
	root.AddCommand(newMCPCmd())
	root.AddCommand(newSchemaCmd())

	return root
}

// requireReference fails with exitMissingArg when no REFERENCE is given.
func requireReference(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &exitError{
			code: exitMissingArg,
			err:  fmt.Errorf("missing REFERENCE argument (see %s --help)", cmd.CommandPath()),
		}
	}
	return nil
}

// loadSettings reads the settings file and applies its log level.
func loadSettings(g globalFlags) (*config.Config, error) {
	cfg, err := config.Load(g.settings)
	if err != nil {
		var pe *style.ParseError
		if errors.As(err, &pe) {
			return nil, &exitError{code: exitBadStyle, err: err}
		}
		return nil, err
	}

	logger.SetLevel(cfg.Level())
	if g.verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	return cfg, nil
}

// resolvePriorities parses command-line priority specs followed by those
// from the settings file.
func resolvePriorities(specs []string, cfg *config.Config) ([]style.Style, error) {
	fromArgs, err := style.ParseAll(specs)
	if err != nil {
		return nil, &exitError{code: exitBadStyle, err: err}
	}
	fromFile, err := cfg.Styles()
	if err != nil {
		return nil, &exitError{code: exitBadStyle, err: fmt.Errorf("settings file: %w", err)}
	}
	return append(fromArgs, fromFile...), nil
}

// filterParams holds the parsed arguments for the filter command.
type filterParams struct {
	reference  string
	specs      []string
	positional bool
	global     globalFlags
	stdin      io.Reader
	stdout     io.Writer
}

// runFilter is the extracted, testable body of the root command.
func runFilter(p filterParams) error {
	cfg, err := loadSettings(p.global)
	if err != nil {
		return err
	}

	var fn filter.Transform
	if p.positional {
		logger.Debug("positional casing", "reference", p.reference)
		fn = func(line string) string {
			return recase.MatchPositional(p.reference, line)
		}
	} else {
		priorities, err := resolvePriorities(p.specs, cfg)
		if err != nil {
			return err
		}
		ex := recase.Explain(p.reference, priorities)
		logger.Debug("resolved style",
			"reference", p.reference,
			"style", ex.Style.String(),
			"example", ex.Style.Describe(),
			"source", ex.Source)
		fn = func(line string) string {
			return recase.Render(line, ex.Style)
		}
	}

	stats, err := filter.Run(p.stdin, p.stdout, fn)
	if err != nil {
		return &exitError{code: exitIO, err: err}
	}
	logger.Debug("filter complete", "lines", stats.Lines)
	return nil
}

// explainParams holds the parsed flags for the explain command.
type explainParams struct {
	reference   string
	specs       []string
	format      string
	interactive bool
	global      globalFlags
	stdout      io.Writer
}

// runExplain is the extracted, testable body of the explain command.
func runExplain(p explainParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cfg, err := loadSettings(p.global)
	if err != nil {
		return err
	}
	priorities, err := resolvePriorities(p.specs, cfg)
	if err != nil {
		return err
	}

	ex := recase.Explain(p.reference, priorities)
	logger.Debug("explained", "reference", p.reference, "admitted", ex.Possible.Count())

	if p.interactive {
		return runInteractiveExplain(ex, priorities)
	}

	switch p.format {
	case "json":
		return report.WriteJSON(p.stdout, ex, priorities, version)
	default:
		return report.WriteText(p.stdout, ex, priorities)
	}
}

func newExplainCmd(g *globalFlags) *cobra.Command {
	var (
		format      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "explain [flags] [--] REFERENCE [PRIORITY...]",
		Short: "Show how the style of REFERENCE is inferred",
		Long: `Explain lists which leading separators, case conventions and word
separators remain consistent with REFERENCE, the style chosen, and
whether a priority, the default order or the fallback decided it.`,
		Args: requireReference,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(explainParams{
				reference:   args[0],
				specs:       args[1:],
				format:      format,
				interactive: interactive,
				global:      *g,
				stdout:      cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing the explanation")

	return cmd
}

func newInitCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Install the Kakoune integration script",
		Long: `Install recase.kak into Kakoune's autoload directory. The script
defines the recase, recase-positional and recase-like-main commands.
Existing files are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := kakoune.Install(kakoune.Options{
				Dir:     dir,
				Force:   force,
				Version: version,
				Stdout:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "",
		"autoload directory (default: <user config dir>/kak/autoload)")
	cmd.Flags().BoolVar(&force, "force", false,
		"overwrite an existing script")

	return cmd
}

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve recase as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
recase and classify tools.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("starting MCP server", "version", version)
			return mcpserver.Run(cmd.Context(), version)
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for recase explain output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of recase explain --format=json output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
