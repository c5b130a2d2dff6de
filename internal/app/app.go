// Package app is the command-line host: flag parsing, file discovery, the
// worker pool and result printing.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edarioq/prop-ordering/internal/config"
	"github.com/edarioq/prop-ordering/internal/fileutil"
	"github.com/edarioq/prop-ordering/internal/processor"
	"github.com/edarioq/prop-ordering/internal/report"
)

var version = "0.1.0"

// ErrProblemsFound is returned in check mode when violations remain
var ErrProblemsFound = errors.New("files need sorting")

type options struct {
	check      bool
	write      bool
	recursive  bool
	extensions []string
	workers    int
	verbose    bool
	configPath string
	format     string
	noColor    bool
}

// Run executes the CLI with the process arguments and exits on failure
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, ErrProblemsFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

// Execute runs the root command with args
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the prop-ordering command
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "prop-ordering [flags] <path>...",
		Short:         "Check and fix the order of component props, JSX attributes and type members",
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("extensions") {
				opts.extensions = nil
			}
			return run(cmd.Context(), opts, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVar(&opts.check, "check", false, "Exit 1 if any file has ordering problems")
	flags.BoolVar(&opts.write, "write", false, "Write fixes to files (default: dry-run)")
	flags.BoolVar(&opts.recursive, "recursive", true, "Process directories recursively")
	flags.StringSliceVar(&opts.extensions, "extensions", []string{".ts", ".tsx"}, "File extensions to process (default from config)")
	flags.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = number of CPUs)")
	flags.BoolVar(&opts.verbose, "verbose", false, "Show detailed output")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: discovered in the working directory)")
	flags.StringVar(&opts.format, "format", string(report.FormatText), "Output format: text, json or msgpack")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func run(ctx context.Context, opts *options, paths []string, stdout, stderr io.Writer) error {
	setupLogging(stderr, opts.verbose)

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Load(opts.configPath, wd)
	if err != nil {
		return err
	}

	extensions := cfg.Extensions
	if opts.extensions != nil {
		extensions = opts.extensions
	}

	procCfg := processor.Config{
		Check:      opts.check,
		Write:      opts.write,
		Recursive:  opts.recursive,
		Extensions: fileutil.NormalizeExtensions(extensions),
		Paths:      paths,
		Workers:    opts.workers,
		Rules:      cfg,
	}

	files, err := collectFiles(procCfg, cfg.Exclude)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		slog.Info("no matching files found", "paths", paths)
		return nil
	}
	slog.Debug("found files", "count", len(files))

	results, err := processFilesParallel(ctx, files, procCfg)
	if err != nil {
		return err
	}

	out := report.NewOutput(toFileReports(results, procCfg.Write))
	useColor := !opts.noColor && !color.NoColor && format == report.FormatText
	if err := report.Write(stdout, format, out, report.Options{Color: useColor, Quiet: !opts.verbose}); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if opts.verbose {
		printSummary(stderr, summarize(results), procCfg)
	}

	if errs := fileErrors(results); len(errs) > 0 {
		for _, err := range errs[1:] {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return errs[0]
	}
	if opts.check && out.Count > 0 {
		return ErrProblemsFound
	}
	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// collectFiles expands every path argument into the files to process
func collectFiles(cfg processor.Config, exclude []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}

	for _, path := range cfg.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access path %s: %w", path, err)
		}

		var found []string
		if info.IsDir() {
			found, err = fileutil.FindFiles(path, cfg.Extensions, cfg.Recursive, exclude)
			if err != nil {
				return nil, fmt.Errorf("error finding files: %w", err)
			}
		} else {
			if !fileutil.HasValidExtension(path, cfg.Extensions) {
				return nil, fmt.Errorf("file %s does not have a valid extension", path)
			}
			found = []string{path}
		}

		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	return files, nil
}
