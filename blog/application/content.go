package application

import (
	"regexp"
	"strings"

	"github.com/ZeroDay-Lk/vuldb/blog/domain"
)

const (
	codeFence       = "```"
	defaultLanguage = "text"
)

var languageTokenRegex = regexp.MustCompile(`^[A-Za-z]+$`)

// ContentParser defines the interface for turning a raw post body into an
// ordered sequence of content blocks.
type ContentParser interface {
	Parse(content string) []domain.ContentBlock
}

type ContentParserImpl struct{}

func NewContentParser() ContentParser {
	return &ContentParserImpl{}
}

// Parse splits content on the triple-backtick fence. Segments at even
// positions are prose, segments at odd positions are fenced code. The parse
// is total: any input, including malformed or unbalanced fences, yields a
// block sequence without error.
func (p *ContentParserImpl) Parse(content string) []domain.ContentBlock {
	if content == "" {
		return nil
	}

	blocks := make([]domain.ContentBlock, 0)
	for i, segment := range strings.Split(content, codeFence) {
		if i%2 == 1 {
			blocks = append(blocks, parseCodeSegment(segment))
			continue
		}
		blocks = append(blocks, parseProseSegment(segment)...)
	}

	return blocks
}

// parseCodeSegment always produces exactly one code block. If the first line
// of the segment is a bare letters-only token, it names the language and is
// stripped from the body; otherwise the whole segment is code.
func parseCodeSegment(segment string) domain.ContentBlock {
	newline := strings.Index(segment, "\n")
	if newline >= 0 {
		token := strings.TrimSuffix(segment[:newline], "\r")
		if languageTokenRegex.MatchString(token) {
			return domain.CodeBlock(token, segment[newline+1:])
		}
	}

	return domain.CodeBlock(defaultLanguage, segment)
}

// parseProseSegment splits prose into blank-line-delimited blocks and
// classifies each one. Blocks that are empty after trimming are dropped.
func parseProseSegment(segment string) []domain.ContentBlock {
	blocks := make([]domain.ContentBlock, 0)

	for _, raw := range strings.Split(segment, "\n\n") {
		block := strings.TrimSpace(raw)

		switch {
		case block == "":
			continue
		case strings.HasPrefix(block, "# "):
			blocks = append(blocks, domain.Heading(1, strings.TrimSpace(block[2:])))
		case strings.HasPrefix(block, "## "):
			blocks = append(blocks, domain.Heading(2, strings.TrimSpace(block[3:])))
		case strings.HasPrefix(block, "### "):
			blocks = append(blocks, domain.Heading(3, strings.TrimSpace(block[4:])))
		case strings.Contains(block, "\n- "):
			blocks = append(blocks, parseBulletBlock(block)...)
		default:
			blocks = append(blocks, domain.Paragraph(block))
		}
	}

	return blocks
}

// parseBulletBlock turns a block containing "\n- " markers into an optional
// leading paragraph (the text before the first marker) followed by one bullet
// list holding the remaining items.
func parseBulletBlock(block string) []domain.ContentBlock {
	parts := strings.Split(block, "\n- ")

	blocks := make([]domain.ContentBlock, 0, 2)
	if lead := strings.TrimSpace(parts[0]); lead != "" {
		blocks = append(blocks, domain.Paragraph(lead))
	}

	items := make([]string, 0, len(parts)-1)
	for _, item := range parts[1:] {
		items = append(items, strings.TrimSpace(item))
	}

	return append(blocks, domain.BulletList(items))
}
