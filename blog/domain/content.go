package domain

// BlockKind discriminates the content block variants.
type BlockKind string

const (
	BlockHeading    BlockKind = "heading"
	BlockParagraph  BlockKind = "paragraph"
	BlockBulletList BlockKind = "list"
	BlockCode       BlockKind = "code"
)

// ContentBlock is one semantic unit of a rendered post body. Which fields are
// meaningful depends on Kind: Level and Text for headings, Text for
// paragraphs, Items for bullet lists, Language and Code for code blocks.
// Blocks are recomputed from Post.Content on every render and never stored.
type ContentBlock struct {
	Kind     BlockKind
	Level    int
	Text     string
	Items    []string
	Language string
	Code     string
}

func Heading(level int, text string) ContentBlock {
	return ContentBlock{Kind: BlockHeading, Level: level, Text: text}
}

func Paragraph(text string) ContentBlock {
	return ContentBlock{Kind: BlockParagraph, Text: text}
}

func BulletList(items []string) ContentBlock {
	return ContentBlock{Kind: BlockBulletList, Items: items}
}

func CodeBlock(language, code string) ContentBlock {
	return ContentBlock{Kind: BlockCode, Language: language, Code: code}
}
