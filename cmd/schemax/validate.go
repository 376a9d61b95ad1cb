package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gauthamchettiar/schemax/pkg/cache"
	"github.com/gauthamchettiar/schemax/pkg/cli"
	"github.com/gauthamchettiar/schemax/pkg/config"
	"github.com/gauthamchettiar/schemax/pkg/summary"
	"github.com/gauthamchettiar/schemax/pkg/validation"
	"github.com/gauthamchettiar/schemax/pkg/watcher"
)

var validateFlags struct {
	out          string
	jsonOut      bool
	outputLevel  string
	verbose      bool
	silent       bool
	failMode     string
	failFast     bool
	failNever    bool
	ruleApply    []string
	ruleIgnore   []string
	noCache      bool
	noCacheRead  bool
	noCacheWrite bool
	watch        bool
}

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate dataset schema files",
	Long: `Validate dataset schema files for structural and cross-file errors.

File paths are taken from the arguments, or one per line from stdin
when none are given and stdin is a pipe.

Examples:
  # Validate explicit files
  schemax validate schemas/users.yaml schemas/orders.json

  # Pipe paths from a file finder
  find schemas -name '*.yaml' | schemax validate

  # Only run the structural rule
  schemax validate --rule-apply PSX_VAL1 schemas/*.yaml

  # JSON output, one result object per file
  schemax validate --out json schemas/*.yaml

  # Keep validating as files change
  schemax validate --watch schemas/*.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	f := validateCmd.Flags()
	f.StringVarP(&validateFlags.out, "out", "o", "", "output format: text, json")
	f.BoolVar(&validateFlags.jsonOut, "json", false, "shorthand for --out json")
	f.StringVar(&validateFlags.outputLevel, "output-level", "", "output level: silent, quiet, verbose")
	f.BoolVarP(&validateFlags.verbose, "verbose", "v", false, "shorthand for --output-level verbose")
	f.BoolVarP(&validateFlags.silent, "silent", "s", false, "shorthand for --output-level silent")
	f.StringVar(&validateFlags.failMode, "fail-mode", "", "failure mode: fail_fast, fail_never, fail_after")
	f.BoolVar(&validateFlags.failFast, "fail-fast", false, "shorthand for --fail-mode fail_fast")
	f.BoolVar(&validateFlags.failNever, "fail-never", false, "shorthand for --fail-mode fail_never")
	f.StringSliceVar(&validateFlags.ruleApply, "rule-apply", nil, "run only these rule codes")
	f.StringSliceVar(&validateFlags.ruleIgnore, "rule-ignore", nil, "skip these rule codes")
	f.BoolVar(&validateFlags.noCache, "no-cache", false, "disable the result cache entirely")
	f.BoolVar(&validateFlags.noCacheRead, "no-cache-read", false, "recompute results but still store them")
	f.BoolVar(&validateFlags.noCacheWrite, "no-cache-write", false, "use cached results but store nothing")
	f.BoolVarP(&validateFlags.watch, "watch", "w", false, "revalidate when input files change")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyValidateFlags(cmd, cfg); err != nil {
		return err
	}
	setupLogging(cfg)

	paths, err := resolvePaths(args)
	if err != nil {
		return err
	}

	sum := summary.New()

	var store *cache.Store
	if cfg.Cache.IsEnabled() && !validateFlags.noCache {
		store, err = cache.Open(&cache.Config{
			Path:         cfg.Cache.Path,
			DisableRead:  validateFlags.noCacheRead,
			DisableWrite: validateFlags.noCacheWrite,
			RunID:        sum.RunID,
		})
		if err != nil {
			// A broken cache never blocks validation.
			fmt.Fprintf(os.Stderr, "Warning: cache unavailable: %v\n", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	printer := cli.NewPrinter(
		cli.OutputFormat(cfg.Output.Format),
		cli.OutputLevel(cfg.Output.Level),
	)

	opts := validation.Options{
		Apply:       cfg.Validation.RuleApply,
		Ignore:      cfg.Validation.RuleIgnore,
		Required:    config.RequiredFromConfig(cfg),
		MaxFileSize: cfg.Validation.MaxFileSize,
	}
	if store != nil {
		opts.Cache = store
	}

	if validateFlags.watch {
		return runWatch(paths, opts, cfg, printer, store)
	}

	failed, err := runBatch(paths, opts, cfg.Validation.FailMode, printer, sum)
	if err != nil {
		return err
	}

	printer.PrintStatus(failed)
	if store != nil {
		if rerr := store.RecordRun(sum.RunID, sum.StartedAt, sum.ValidatedFileCount, sum.InvalidFileCount); rerr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record run: %v\n", rerr)
		}
	}
	slog.Debug("run complete",
		"run_id", sum.RunID,
		"validated", sum.ValidatedFileCount,
		"invalid", sum.InvalidFileCount,
		"duration", sum.Duration(),
	)

	if failed && cfg.Validation.FailMode != config.FailModeNever {
		return cli.ErrValidationFailed
	}
	return nil
}

// runBatch validates the paths in order with a fresh engine, printing
// each result as it is produced. fail_fast stops after the first
// invalid file.
func runBatch(paths []string, opts validation.Options, failMode string, printer *cli.Printer, sum *summary.Summary) (bool, error) {
	engine, err := validation.NewEngine(opts)
	if err != nil {
		return false, cli.NewConfigError("validation", err.Error())
	}

	failed := false
	for _, path := range paths {
		res := engine.ValidateFile(path)
		if perr := printer.PrintResult(res); perr != nil {
			return failed, cli.NewCommandError("validate", perr)
		}
		sum.AddRecord(res.Valid, res.FilePath)
		if !res.Valid {
			failed = true
			if failMode == config.FailModeFast {
				break
			}
		}
	}
	return failed, nil
}

// runWatch runs one full batch, then revalidates the whole set after
// every debounced change until interrupted. Cross-file rules need the
// full batch, so changes never trigger partial runs. Watch mode always
// exits zero on interrupt.
func runWatch(paths []string, opts validation.Options, cfg *config.Config, printer *cli.Printer, store *cache.Store) error {
	ctx := cli.SetupSignalHandler()

	run := func() {
		sum := summary.New()
		failed, err := runBatch(paths, opts, cfg.Validation.FailMode, printer, sum)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		printer.PrintStatus(failed)
		if store != nil {
			if rerr := store.RecordRun(sum.RunID, sum.StartedAt, sum.ValidatedFileCount, sum.InvalidFileCount); rerr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record run: %v\n", rerr)
			}
		}
	}

	run()

	w, err := watcher.New(paths, watcher.DefaultDebounceInterval)
	if err != nil {
		return cli.NewCommandError("validate --watch", err)
	}
	defer w.Close()

	return w.Watch(ctx, func(changed []string) {
		fmt.Fprintf(os.Stderr, "Change detected (%d file(s)), revalidating...\n", len(changed))
		run()
	})
}

// applyValidateFlags merges command-line flags over the loaded
// configuration. Shorthand flags win over their value forms.
func applyValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("out") {
		cfg.Output.Format = validateFlags.out
	}
	if validateFlags.jsonOut {
		cfg.Output.Format = string(cli.FormatJSON)
	}

	if flags.Changed("output-level") {
		cfg.Output.Level = validateFlags.outputLevel
	}
	if validateFlags.verbose {
		cfg.Output.Level = string(cli.LevelVerbose)
	}
	if validateFlags.silent {
		cfg.Output.Level = string(cli.LevelSilent)
	}
	if validateFlags.verbose && validateFlags.silent {
		return cli.NewConfigError("output", "--verbose and --silent are mutually exclusive")
	}

	if flags.Changed("fail-mode") {
		cfg.Validation.FailMode = validateFlags.failMode
	}
	if validateFlags.failFast {
		cfg.Validation.FailMode = config.FailModeFast
	}
	if validateFlags.failNever {
		cfg.Validation.FailMode = config.FailModeNever
	}
	if validateFlags.failFast && validateFlags.failNever {
		return cli.NewConfigError("validation", "--fail-fast and --fail-never are mutually exclusive")
	}

	if flags.Changed("rule-apply") {
		cfg.Validation.RuleApply = validateFlags.ruleApply
	}
	if flags.Changed("rule-ignore") {
		cfg.Validation.RuleIgnore = validateFlags.ruleIgnore
	}

	if err := config.Validate(cfg); err != nil {
		return cli.NewConfigError("", err.Error())
	}
	return nil
}

// resolvePaths returns the schema file paths for this invocation:
// arguments first, stdin lines when arguments are absent and stdin is
// piped.
func resolvePaths(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cli.StdinIsPipe() {
		paths, err := cli.ReadPathLines(os.Stdin)
		if err != nil {
			return nil, cli.NewCommandError("validate", err)
		}
		if len(paths) > 0 {
			return paths, nil
		}
	}
	return nil, cli.NewConfigError("", "no schema files given (pass paths as arguments or pipe them to stdin)")
}
