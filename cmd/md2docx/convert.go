package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrConversionFailed = errors.New("conversion failed")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Stats      md2docx.Stats
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Debugf))
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv, err := newConverter(cfg, env, logger)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	jobs, err := collectJobs(inputPath, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	workers := md2docx.ResolveWorkers(cfg.Workers)
	logger.Debug("starting conversion", "files", len(jobs), "workers", workers)

	results := convertFiles(ctx, conv, jobs, cfg, workers)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)

	if !flags.common.quiet && !flags.common.verbose {
		fallbacks := 0
		for _, r := range results {
			fallbacks += r.Stats.MathFallbacks
		}
		if hint := hints.ForMathFallbacks(fallbacks); hint != "" {
			fmt.Fprintln(env.Stderr, strings.TrimPrefix(hint, "\n"))
		}
	}

	switch {
	case failed == 0:
		return nil
	case len(results) == 1:
		return results[0].Err
	default:
		return fmt.Errorf("%w: %d of %d documents", ErrConversionFailed, failed, len(results))
	}
}

// loadConfig loads the config named by the flag, then by MD2DOCX_CONFIG.
// Without either, defaults apply.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		var searched []string
		if !fileutil.IsFilePath(name) {
			searched = config.SearchPaths(name)
		}
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.render.noMath {
		disabled := false
		cfg.Math.Enabled = &disabled
	}
	if flags.render.highlight {
		cfg.Code.Highlight = true
	}
	if flags.render.style != "" {
		cfg.Code.Highlight = true
		cfg.Code.Style = flags.render.style
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
}

// newConverter builds the library converter from the merged configuration.
func newConverter(cfg *config.Config, env *Environment, logger *log.Logger) (*md2docx.Converter, error) {
	opts := []md2docx.Option{
		md2docx.WithLogger(slogFor(logger)),
		md2docx.WithClock(env.Now),
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, md2docx.WithTimeout(timeout))
	}
	if !cfg.MathEnabled() {
		opts = append(opts, md2docx.WithoutMath())
	}
	if cfg.Code.Highlight {
		opts = append(opts, md2docx.WithCodeHighlighting(cfg.Code.Style))
	}

	conv, err := md2docx.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, md2docx.ErrUnknownHighlight) {
			return nil, fmt.Errorf("%w%s", err, hints.ForHighlightStyle(styles.Names()))
		}
		return nil, err
	}
	return conv, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// firstHeadingPattern matches the first # heading in markdown content.
var firstHeadingPattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// extractFirstHeading extracts the first # heading from markdown content.
func extractFirstHeading(markdown string) string {
	matches := firstHeadingPattern.FindStringSubmatch(markdown)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

// documentTitle resolves the title property: config -> H1 -> file name.
func documentTitle(cfg *config.Config, markdown, filename string) string {
	if cfg.Document.Title != "" {
		return cfg.Document.Title
	}
	if h := extractFirstHeading(markdown); h != "" {
		return h
	}
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

// convertFiles reads every file, converts the readable ones concurrently and
// publishes each document next to its output path.
func convertFiles(ctx context.Context, conv *md2docx.Converter, jobs []job, cfg *config.Config, workers int) []ConversionResult {
	results := make([]ConversionResult, len(jobs))
	inputs := make([]md2docx.Input, 0, len(jobs))
	pending := make([]int, 0, len(jobs))

	for i, j := range jobs {
		results[i] = ConversionResult{InputPath: j.Source, OutputPath: j.Target}
		content, err := os.ReadFile(j.Source) // #nosec G304 -- discovered path
		if err != nil {
			results[i].Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
			continue
		}
		md := string(content)
		inputs = append(inputs, md2docx.Input{
			Markdown: md,
			Title:    truncateRunes(documentTitle(cfg, md, j.Source), md2docx.MaxTitleLength),
			Author:   cfg.Document.Author,
		})
		pending = append(pending, i)
	}

	for _, br := range conv.ConvertAll(ctx, inputs, workers) {
		r := &results[pending[br.Index]]
		r.Duration = br.Duration
		if br.Err != nil {
			r.Err = br.Err
			continue
		}
		r.Stats = br.Result.Stats

		start := time.Now()
		pub := &md2docx.DirPublisher{Dir: filepath.Dir(r.OutputPath)}
		if _, err := pub.Publish(ctx, filepath.Base(r.OutputPath), br.Result.DOCX); err != nil {
			r.Err = fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
		}
		r.Duration += time.Since(start)
	}
	return results
}

// truncateRunes shortens a derived title that would fail input validation.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v, %d formulas, %d kept as text)\n",
				r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond),
				r.Stats.Formulas, r.Stats.MathFallbacks)
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
