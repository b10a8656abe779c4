package obsidian2latex

import "strings"

// InjectHeaderComment prepends the generated provenance comment block.
// Pure function of the metadata and source filename; always emits at least
// the auto-generated and source lines even with empty metadata.
func InjectHeaderComment(content, sourceName string, meta Metadata) string {
	var b strings.Builder
	b.WriteString("% Auto-generated from Obsidian markdown\n")
	b.WriteString("% Source: " + sourceName + "\n")
	if meta.Title != "" {
		b.WriteString("% Title: " + meta.Title + "\n")
	}
	if len(meta.Tags) > 0 {
		b.WriteString("% Tags: " + strings.Join(meta.Tags, ", ") + "\n")
	}
	b.WriteString("%\n\n")
	b.WriteString(content)
	return b.String()
}
