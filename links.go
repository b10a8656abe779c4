package obsidian2latex

import "regexp"

var (
	// Wikilink with display text: [[target|display]].
	wikiLinkWithTextPattern = regexp.MustCompile(`\[\[(.*?)\|(.*?)\]\]`)

	// Plain wikilink: [[target]].
	wikiLinkPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

	// Standard markdown link: [display](url).
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// ConvertLinks rewrites link syntaxes in three ordered substitutions.
// Internal wikilinks become plain italic text since the target note has no
// LaTeX equivalent; only standard markdown links keep a hyperlink. The
// display-text variant must run before the plain one so the simpler
// pattern cannot swallow it.
func ConvertLinks(content string) string {
	content = wikiLinkWithTextPattern.ReplaceAllString(content, `\textit{${2}}`)
	content = wikiLinkPattern.ReplaceAllString(content, `\textit{${1}}`)
	return markdownLinkPattern.ReplaceAllString(content, `\href{${2}}{${1}}`)
}
