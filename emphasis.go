package obsidian2latex

import "regexp"

// Emphasis patterns. All use non-greedy capture: bold runs before italic,
// and a greedy italic pattern would eat the second asterisk of a bold
// delimiter left in partially marked-up text.
var (
	boldPattern          = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern        = regexp.MustCompile(`\*(.*?)\*`)
	strikethroughPattern = regexp.MustCompile(`~~(.*?)~~`)
)

// ConvertEmphasis maps bold, italic, and strikethrough markers to their
// LaTeX commands, in that fixed order.
func ConvertEmphasis(content string) string {
	content = boldPattern.ReplaceAllString(content, `\textbf{${1}}`)
	content = italicPattern.ReplaceAllString(content, `\textit{${1}}`)
	return strikethroughPattern.ReplaceAllString(content, `\sout{${1}}`)
}
