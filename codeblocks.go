package obsidian2latex

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

var (
	// Fenced block with optional language tag on the opening fence,
	// matched non-greedily across line breaks.
	fencedCodePattern = regexp.MustCompile("(?s)```(.*?)\n(.*?)```")

	// Single-backtick inline span. Confined to one line so the pattern
	// cannot bridge the backticks of a preserved math fence.
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")
)

// ConvertCodeBlocks maps fenced blocks to verbatim or lstlisting
// environments, then inline spans to \texttt.
//
// A fenced block whose trimmed content is a single dollar-delimited math
// expression passes through byte-identical, so math authored inside a
// fence is not corrupted. A language tag is emitted verbatim into the
// lstlisting options.
func ConvertCodeBlocks(content string) string {
	content = fencedCodePattern.ReplaceAllStringFunc(content, func(match string) string {
		m := fencedCodePattern.FindStringSubmatch(match)
		language := strings.TrimSpace(m[1])
		code := m[2]

		trimmed := strings.TrimSpace(code)
		if strings.HasPrefix(trimmed, "$") && strings.HasSuffix(trimmed, "$") {
			return match
		}

		if language == "" {
			return "\\begin{verbatim}\n" + code + "\n\\end{verbatim}"
		}
		return "\\begin{lstlisting}[language=" + language + "]\n" + code + "\n\\end{lstlisting}"
	})

	return inlineCodePattern.ReplaceAllString(content, `\texttt{${1}}`)
}

// unknownFenceLanguages returns the fence language tags not present in the
// chroma lexer registry. Purely diagnostic; the emitted tag is always the
// author's verbatim spelling.
func unknownFenceLanguages(content string) []string {
	var unknown []string
	for _, m := range fencedCodePattern.FindAllStringSubmatch(content, -1) {
		lang := strings.TrimSpace(m[1])
		if lang == "" {
			continue
		}
		if lexers.Get(lang) == nil {
			unknown = append(unknown, lang)
		}
	}
	return unknown
}
