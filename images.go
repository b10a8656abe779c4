package obsidian2latex

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// Obsidian embed syntax: ![[path]] or ![[path|300]].
	embedImagePattern = regexp.MustCompile(`!\[\[(.*?)\]\]`)

	// Standard markdown image syntax: ![alt text](path).
	markdownImagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

	// Characters replaced by underscores when sanitizing filenames.
	unsafeFilenameChars = regexp.MustCompile(`[^\w.\-]`)
)

// ConvertImages rewrites both image syntaxes into floating figure blocks.
// The embed syntax supports an optional pipe-separated numeric size,
// emitted as a width directive in points; the markdown syntax carries its
// alt text into the caption verbatim. figuresDir is prefixed to every
// resolved basename; the original path is never checked for existence.
func ConvertImages(content, figuresDir string) string {
	content = embedImagePattern.ReplaceAllStringFunc(content, func(match string) string {
		inner := embedImagePattern.FindStringSubmatch(match)[1]
		return embedFigure(inner, figuresDir)
	})

	return markdownImagePattern.ReplaceAllStringFunc(content, func(match string) string {
		m := markdownImagePattern.FindStringSubmatch(match)
		return markdownFigure(m[1], m[2], figuresDir)
	})
}

// embedFigure builds a figure block for the ![[path|size]] syntax.
// Caption derives from the filename (underscores to spaces, text before
// the first dot); the label is the sanitized filename with dots replaced.
func embedFigure(inner, figuresDir string) string {
	imagePath, sizePart, hasSize := strings.Cut(inner, "|")
	imagePath = strings.TrimSpace(imagePath)

	sizeInfo := ""
	if hasSize {
		size := strings.TrimSpace(strings.SplitN(sizePart, "|", 2)[0])
		if isDigits(size) {
			sizeInfo = "[width=" + size + "pt]"
		}
	}

	filename := filepath.Base(imagePath)
	cleanFilename := unsafeFilenameChars.ReplaceAllString(filename, "_")
	caption := strings.SplitN(strings.ReplaceAll(filename, "_", " "), ".", 2)[0]
	label := "fig:" + strings.ReplaceAll(cleanFilename, ".", "_")

	return figureBlock(sizeInfo, figuresDir+"/"+cleanFilename, caption, label)
}

// markdownFigure builds a figure block for the ![alt](path) syntax.
// No sizing support; the alt text is the caption and the raw basename is
// used as-is, with dots replaced only in the label.
func markdownFigure(alt, imagePath, figuresDir string) string {
	filename := filepath.Base(imagePath)
	label := "fig:" + strings.ReplaceAll(filename, ".", "_")
	return figureBlock("", figuresDir+"/"+filename, alt, label)
}

// figureBlock emits a centered floating figure with caption and label.
func figureBlock(sizeInfo, includePath, caption, label string) string {
	return fmt.Sprintf(`
\begin{figure}[htbp]
    \centering
    \includegraphics%s{%s}
    \caption{%s}
    \label{%s}
\end{figure}
`, sizeInfo, includePath, caption, label)
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
