package obsidian2latex

import "regexp"

// commentPattern matches Obsidian %%...%% comment spans, across lines.
// An unterminated opening marker produces no match, so a dangling %% does
// not swallow the rest of the document.
var commentPattern = regexp.MustCompile(`(?s)%%(.*?)%%`)

// RemoveComments deletes all %%...%% comment spans, including their
// interior content.
func RemoveComments(content string) string {
	return commentPattern.ReplaceAllString(content, "")
}
