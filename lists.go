package obsidian2latex

import "regexp"

var (
	// Dash bullet at the start of a line.
	listItemPattern = regexp.MustCompile(`(?m)^- (.*?)$`)

	// Maximal contiguous run of \item lines. A blank or non-item line
	// breaks the run; a trailing item without a newline is not wrapped.
	itemRunPattern = regexp.MustCompile(`(?m)(?:^\\item .*\n)+`)
)

// ConvertLists rewrites dash-bulleted lines into \item lines, then wraps
// every maximal contiguous run of \item lines in a single itemize
// environment. Nested and ordered lists are not supported.
func ConvertLists(content string) string {
	content = listItemPattern.ReplaceAllString(content, `\item ${1}`)
	return itemRunPattern.ReplaceAllStringFunc(content, func(run string) string {
		return "\\begin{itemize}\n" + run + "\\end{itemize}\n"
	})
}
