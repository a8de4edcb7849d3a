// Package md2docx converts Markdown documents to Word (.docx) files with
// no external conversion binary.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv := md2docx.NewConverter()
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld with \\(E=mc^{2}\\)",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Normalization (line endings, multi-line display math collapsed)
//  2. Block parsing (headings, paragraphs, lists, tables, code fences,
//     rules, blockquotes) with inline span tokenization (bold, italic,
//     code, LaTeX math transliterated to Unicode)
//  3. DOCX serialization (OOXML package written with archive/zip)
//
// The parser is fail-open: unmatched delimiters, malformed tables, and
// unknown LaTeX commands degrade to plain text rather than erroring.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2docx.NewConverter(
//	    md2docx.WithHighlightStyle("monokai"),
//	)
//
// Per-conversion settings are passed via Input.Style:
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: content,
//	    Style: &md2docx.StyleConfig{
//	        Title:           "Report",
//	        BaseFontSize:    11,
//	        ColoredHeadings: true,
//	        PreserveMath:    true,
//	    },
//	})
//
// # Remote Sources
//
// GitHub file URLs can be resolved and fetched before conversion:
//
//	raw, err := md2docx.RawContentURL("https://github.com/owner/repo/blob/main/README.md")
//	content, err := md2docx.FetchMarkdown(ctx, nil, raw)
//
// # Concurrency
//
// A Converter is stateless between calls and safe for concurrent use;
// conversions in flight share nothing and cannot affect each other.
package md2docx
