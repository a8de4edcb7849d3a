package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// fontSizeUnset marks --font-size as not given so the config file value
// survives the merge. 0 is out of the valid 8-16 range.
const fontSizeUnset = 0

// convertFlags holds all CLI flags.
type convertFlags struct {
	config          string
	output          string
	title           string
	fontSize        int
	noColorHeadings bool
	noMath          bool
	highlightStyle  string
	noHighlight     bool
	fromURL         []string
	workers         int
	quiet           bool
	verbose         bool
	version         bool
}

// parseFlags parses args (including the program name at args[0]) and
// returns the flags plus the positional input paths.
func parseFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: md2docx [flags] <input.md> [input2.md ...]\n\nFlags:\n%s", fs.FlagUsages())
	}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to each input)")
	fs.StringVarP(&f.title, "title", "t", "", "document title rendered as a centered heading")
	fs.IntVar(&f.fontSize, "font-size", fontSizeUnset, "base font size in points (8-16)")
	fs.BoolVar(&f.noColorHeadings, "no-color-headings", false, "render headings in the default text color")
	fs.BoolVar(&f.noMath, "no-math", false, "leave \\(...\\) and \\[...\\] as literal text")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for fenced code blocks")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable code block syntax colouring")
	fs.StringSliceVar(&f.fromURL, "from-url", nil, "GitHub file URL to fetch and convert (repeatable)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions for batch input (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
