package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vitalvas/secretfinder/config"
	"github.com/vitalvas/secretfinder/shamir"
	"github.com/vitalvas/secretfinder/sharefile"
	"github.com/vitalvas/secretfinder/xcmd"
	"github.com/vitalvas/secretfinder/xlogger"
)

const defaultInput = "input.json"

func main() {
	ctx, stop := xcmd.SignalContext(context.Background())
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

type options struct {
	configPath string
	workers    int
	maxSubsets uint64
	timeout    time.Duration
	output     string
	files      []string
}

func parseFlags(args []string, stderr io.Writer) (*options, map[string]bool, error) {
	fs := flag.NewFlagSet("secretfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "configuration file (yaml or json)")
	fs.IntVar(&opts.workers, "workers", 1, "number of concurrent search chunks")
	fs.Uint64Var(&opts.maxSubsets, "max-subsets", 0, "refuse inputs with more k-subsets than this; 0 disables the limit")
	fs.DurationVar(&opts.timeout, "timeout", 0, "stop the search after this duration; 0 disables the limit")
	fs.StringVar(&opts.output, "output", config.OutputText, "report format: text or json")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n\n%s [flags] [file ...]\n\n", fs.Name())
		fmt.Fprintf(fs.Output(), "Reads %s when no file is given.\n\n", defaultInput)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	opts.files = fs.Args()
	if len(opts.files) == 0 {
		opts.files = []string{defaultInput}
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return opts, set, nil
}

// applyFlags overrides conf with the flags given on the command line.
func applyFlags(conf *config.Config, opts *options, set map[string]bool) error {
	if set["workers"] {
		conf.Search.Workers = opts.workers
	}
	if set["max-subsets"] {
		conf.Search.MaxSubsets = opts.maxSubsets
	}
	if set["timeout"] {
		conf.Search.Timeout = opts.timeout
	}
	if set["output"] {
		conf.Output = opts.output
	}

	conf.Output = strings.ToLower(conf.Output)

	return conf.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	conf, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	if err := applyFlags(conf, opts, set); err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %v\n", err)
		return 1
	}

	logger := xlogger.NewWithWriter(conf.Logger, stderr)

	reports := make([]fileReport, 0, len(opts.files))
	for _, path := range opts.files {
		result, err := recoverFile(ctx, logger, conf, path)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			return 1
		}

		reports = append(reports, newFileReport(path, result))
	}

	if err := writeReports(stdout, conf.Output, reports); err != nil {
		fmt.Fprintf(stderr, "failed to write report: %v\n", err)
		return 1
	}

	return 0
}

func recoverFile(ctx context.Context, logger *slog.Logger, conf *config.Config, path string) (shamir.Result, error) {
	raw, err := sharefile.Load(path)
	if err != nil {
		return shamir.Result{}, err
	}

	table, err := shamir.Decode(raw)
	if err != nil {
		return shamir.Result{}, err
	}

	present := raw.Present()

	logger.Info("shares loaded",
		"file", path,
		"n", raw.N,
		"k", raw.K,
		"decoded", table.Len(),
		"absent", raw.N-present,
		"skipped_base", present-table.Len(),
	)

	if conf.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Search.Timeout)
		defer cancel()
	}

	if total, ok := shamir.Binomial(table.Len(), raw.K); ok {
		logger.Debug("searching subsets", "file", path, "subsets", total, "workers", conf.Search.Workers)
	}

	started := time.Now()

	result, err := shamir.RecoverTable(ctx, table, raw.K, conf.SearchOptions()...)
	if err != nil {
		return shamir.Result{}, err
	}

	logger.Info("secret recovered",
		"file", path,
		"fit_count", result.FitCount,
		"total", result.Total,
		"wrong", len(result.WrongShares),
		"evaluated", result.Evaluated,
		"duration", time.Since(started),
	)

	return result, nil
}
