package obsidian2latex

import "regexp"

// sectionCommands lists the available LaTeX sectioning commands in
// increasing depth.
var sectionCommands = []string{
	`\section`,
	`\subsection`,
	`\subsubsection`,
	`\paragraph`,
	`\subparagraph`,
}

// headerPatterns match ATX headings of exactly one through five marker
// characters, anchored to line boundaries. The mandatory space after the
// hashes keeps each pattern from matching deeper headings.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^# (.*?)$`),
	regexp.MustCompile(`(?m)^## (.*?)$`),
	regexp.MustCompile(`(?m)^### (.*?)$`),
	regexp.MustCompile(`(?m)^#### (.*?)$`),
	regexp.MustCompile(`(?m)^##### (.*?)$`),
}

// ConvertHeaders maps markdown headings to LaTeX sectioning commands,
// shifted by adjust and clamped into the valid command range at both ends.
//
// Substitution runs one fixed depth at a time in ascending order. When
// clamping maps two source depths onto the same command, both emit that
// command text without being merged structurally; this is intentional.
func ConvertHeaders(content string, adjust int) string {
	for i, pattern := range headerPatterns {
		level := i + adjust
		if level < 0 {
			level = 0
		}
		if level >= len(sectionCommands) {
			level = len(sectionCommands) - 1
		}
		content = pattern.ReplaceAllString(content, sectionCommands[level]+"{${1}}")
	}
	return content
}
