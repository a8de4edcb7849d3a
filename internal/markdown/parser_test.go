package markdown

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []Block
	}{
		{
			name:  "heading blank paragraph",
			input: "# Title\n\nplain text",
			expected: []Block{
				{Kind: BlockHeading, Level: 1, Spans: []Span{{Kind: SpanPlain, Text: "Title"}}},
				{Kind: BlockBlank},
				{Kind: BlockParagraph, Spans: []Span{{Kind: SpanPlain, Text: "plain text"}}},
			},
		},
		{
			name:  "heading levels",
			input: "# One\n## Two\n### Three\n#### Four",
			expected: []Block{
				{Kind: BlockHeading, Level: 1, Spans: []Span{{Kind: SpanPlain, Text: "One"}}},
				{Kind: BlockHeading, Level: 2, Spans: []Span{{Kind: SpanPlain, Text: "Two"}}},
				{Kind: BlockHeading, Level: 3, Spans: []Span{{Kind: SpanPlain, Text: "Three"}}},
				{Kind: BlockParagraph, Spans: []Span{{Kind: SpanPlain, Text: "#### Four"}}},
			},
		},
		{
			name:  "code fence content is verbatim",
			input: "```\n**not bold**\n```",
			expected: []Block{
				{Kind: BlockCode, Lines: []string{"**not bold**"}},
			},
		},
		{
			name:  "code fence language tag",
			input: "```Go\nfmt.Println(1)\n```",
			expected: []Block{
				{Kind: BlockCode, Lang: "go", Lines: []string{"fmt.Println(1)"}},
			},
		},
		{
			name:  "unterminated fence kept at EOF",
			input: "```\nleft open",
			expected: []Block{
				{Kind: BlockCode, Lines: []string{"left open"}},
			},
		},
		{
			name:  "horizontal rule",
			input: "---",
			expected: []Block{
				{Kind: BlockRule},
			},
		},
		{
			name:  "bullet items",
			input: "- first\n* second",
			expected: []Block{
				{Kind: BlockListItem, Spans: []Span{{Kind: SpanPlain, Text: "first"}}},
				{Kind: BlockListItem, Spans: []Span{{Kind: SpanPlain, Text: "second"}}},
			},
		},
		{
			name:  "numbered items",
			input: "1. first\n12. twelfth",
			expected: []Block{
				{Kind: BlockListItem, Ordered: true, Spans: []Span{{Kind: SpanPlain, Text: "first"}}},
				{Kind: BlockListItem, Ordered: true, Spans: []Span{{Kind: SpanPlain, Text: "twelfth"}}},
			},
		},
		{
			name:  "blockquote",
			input: "> wise words",
			expected: []Block{
				{Kind: BlockQuote, Spans: []Span{{Kind: SpanPlain, Text: "wise words"}}},
			},
		},
		{
			name:  "table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			expected: []Block{
				{Kind: BlockTable, Table: &TableData{
					Headers: []string{"A", "B"},
					Rows:    [][]string{{"1", "2"}},
				}},
			},
		},
		{
			name:  "pipe lines without separator are paragraphs",
			input: "| a | b |\n| c | d |",
			expected: []Block{
				{Kind: BlockParagraph, Spans: []Span{{Kind: SpanPlain, Text: "| a | b |"}}},
				{Kind: BlockParagraph, Spans: []Span{{Kind: SpanPlain, Text: "| c | d |"}}},
			},
		},
		{
			name:  "dashes without pipe are not a separator",
			input: "a | b\n---\nx",
			expected: []Block{
				{Kind: BlockParagraph, Spans: []Span{{Kind: SpanPlain, Text: "a | b"}}},
				{Kind: BlockRule},
				{Kind: BlockParagraph, Spans: []Span{{Kind: SpanPlain, Text: "x"}}},
			},
		},
		{
			name:  "empty document",
			input: "",
			expected: []Block{
				{Kind: BlockBlank},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.input, true)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseMathInHeading(t *testing.T) {
	t.Parallel()

	blocks := Parse(`# Energy \(E = mc^2\)`, true)
	if len(blocks) != 1 || blocks[0].Kind != BlockHeading {
		t.Fatalf("expected a single heading, got %+v", blocks)
	}

	spans := blocks[0].Spans
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %+v", spans)
	}
	if spans[1].Kind != SpanInlineMath || spans[1].Text != "E = mc²" {
		t.Errorf("math span = %+v, want transliterated inline math", spans[1])
	}
}

func TestParseMathDisabled(t *testing.T) {
	t.Parallel()

	blocks := Parse(`\(x\) stays raw`, false)
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Fatalf("expected a single paragraph, got %+v", blocks)
	}
	if len(blocks[0].Spans) != 1 || blocks[0].Spans[0].Kind != SpanPlain {
		t.Errorf("expected one plain span, got %+v", blocks[0].Spans)
	}
}
