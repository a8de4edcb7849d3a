package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"runtime"
	"sync"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input: pass markdown files or --from-url")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteDocx        = errors.New("failed to write docx file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// Worker bounds for batch conversion.
const (
	minWorkers = 1
	maxWorkers = 8
)

// job is one pending conversion: source content plus output path.
type job struct {
	name     string
	markdown string
	output   string
}

// run loads config, gathers inputs, and converts them in parallel.
func run(ctx context.Context, flags *convertFlags, inputs []string) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	mergeFlags(cfg, flags)

	jobs, err := gatherJobs(ctx, flags, inputs, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return ErrNoInput
	}

	style := &md2docx.StyleConfig{
		Title:           cfg.Style.Title,
		BaseFontSize:    cfg.Style.BaseFontSize,
		ColoredHeadings: cfg.Style.ColoredHeadings,
		PreserveMath:    cfg.Style.PreserveMath,
	}
	if err := style.Validate(); err != nil {
		return err
	}

	var opts []md2docx.Option
	if cfg.Style.HighlightStyle == "" {
		opts = append(opts, md2docx.WithoutSyntaxHighlight())
	} else {
		opts = append(opts, md2docx.WithHighlightStyle(cfg.Style.HighlightStyle))
	}
	conv := md2docx.NewConverter(opts...)

	return convertAll(ctx, conv, jobs, style, flags)
}

// mergeFlags overlays explicitly-set flags on top of the loaded config.
func mergeFlags(cfg *config.Config, flags *convertFlags) {
	if flags.title != "" {
		cfg.Style.Title = flags.title
	}
	if flags.fontSize != fontSizeUnset {
		cfg.Style.BaseFontSize = flags.fontSize
	}
	if flags.noColorHeadings {
		cfg.Style.ColoredHeadings = false
	}
	if flags.noMath {
		cfg.Style.PreserveMath = false
	}
	if flags.highlightStyle != "" {
		cfg.Style.HighlightStyle = flags.highlightStyle
	}
	if flags.noHighlight {
		cfg.Style.HighlightStyle = ""
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
}

// gatherJobs reads file inputs verbatim as UTF-8 and fetches URL inputs.
func gatherJobs(ctx context.Context, flags *convertFlags, inputs []string, outDir string) ([]job, error) {
	jobs := make([]job, 0, len(inputs)+len(flags.fromURL))

	for _, input := range inputs {
		if !fileutil.IsMarkdownFile(input) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtension, input)
		}
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		jobs = append(jobs, job{
			name:     input,
			markdown: string(content),
			output:   fileutil.OutputName(input, outDir),
		})
	}

	for _, fileURL := range flags.fromURL {
		rawURL, err := md2docx.RawContentURL(fileURL)
		if err != nil {
			return nil, err
		}
		content, err := md2docx.FetchMarkdown(ctx, nil, rawURL)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job{
			name:     fileURL,
			markdown: content,
			output:   fileutil.OutputName(urlBase(rawURL), outDir),
		})
	}

	return jobs, nil
}

// urlBase extracts the file name from a URL for output naming.
func urlBase(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "document.md"
	}
	return path.Base(u.Path)
}

// convertAll runs the jobs over a bounded worker set. The converter is
// shared: it is stateless and safe for concurrent use.
func convertAll(ctx context.Context, conv *md2docx.Converter, jobs []job, style *md2docx.StyleConfig, flags *convertFlags) error {
	workers := resolveWorkers(flags.workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Converting %d document(s) with %d worker(s)\n", len(jobs), workers)
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	for _, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(j job) {
			defer wg.Done()
			defer func() { <-sem }()

			err := convertOne(ctx, conv, j, style)
			if err == nil && !flags.quiet {
				fmt.Printf("Created %s\n", j.output)
			}
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", j.name, err))
				mu.Unlock()
			}
		}(j)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// convertOne converts a single job and writes the output file.
func convertOne(ctx context.Context, conv *md2docx.Converter, j job, style *md2docx.StyleConfig) error {
	result, err := conv.Convert(ctx, md2docx.Input{Markdown: j.markdown, Style: style})
	if err != nil {
		return err
	}
	if err := os.WriteFile(j.output, result.DOCX, 0o644); err != nil { // #nosec G306 -- document output
		return fmt.Errorf("%w: %v", ErrWriteDocx, err)
	}
	return nil
}

// resolveWorkers determines the batch concurrency. Priority: explicit
// --workers > GOMAXPROCS (adjusted by automaxprocs in containers),
// clamped to [minWorkers, maxWorkers].
func resolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0)
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
