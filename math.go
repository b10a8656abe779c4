package obsidian2latex

import "regexp"

// alignedPattern matches the aligned math environment across lines.
var alignedPattern = regexp.MustCompile(`(?s)\\begin\{aligned\}(.*?)\\end\{aligned\}`)

// PreserveMath normalizes the aligned environment spelling by re-emitting
// it identically. All other math is left untouched; upstream dollar-
// delimited and display math is assumed to already be valid LaTeX.
// Equation environments would renumber in a multi-file project, so no
// rewriting happens here.
func PreserveMath(content string) string {
	return alignedPattern.ReplaceAllString(content, `\begin{aligned}${1}\end{aligned}`)
}
