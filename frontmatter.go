package obsidian2latex

import (
	"regexp"
	"strings"
)

// frontmatterPattern matches a leading YAML-style block delimited by
// three-dash lines at the very start of the document.
var frontmatterPattern = regexp.MustCompile(`(?s)\A---[ \t]*\n(.*?)\n---[ \t]*\n`)

// ExtractFrontmatter parses the leading frontmatter block into a raw
// key:value map and the Metadata derived from it.
//
// Parsing is deliberately simplistic, not real YAML: each line inside the
// block is split on its first colon; a value beginning with a dash is
// treated as a dash-list literal and stripped of leading dash/space
// characters. Multi-line lists are not followed (their item lines contain
// no colon and are skipped). Absent or malformed blocks yield an empty map
// and zero-value Metadata.
func ExtractFrontmatter(content string) (map[string]string, Metadata) {
	frontmatter := make(map[string]string)
	var meta Metadata

	m := frontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		return frontmatter, meta
	}

	for _, line := range strings.Split(m[1], "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		frontmatter[key] = value

		isList := strings.HasPrefix(value, "-")
		switch key {
		case "title":
			if isList {
				meta.Title = parseDashList(value)[0]
			} else {
				meta.Title = value
			}
		case "tags":
			// Tags is a list field; a scalar value cannot populate it.
			if isList {
				meta.Tags = parseDashList(value)
			}
		}
	}

	return frontmatter, meta
}

// parseDashList splits a dash-led value into items stripped of leading and
// trailing dash/space characters. The value is a single joined string, so
// in practice this yields one item.
func parseDashList(value string) []string {
	parts := strings.Split(value, "\n")
	items := make([]string, len(parts))
	for i, p := range parts {
		items[i] = strings.Trim(p, "- ")
	}
	return items
}

// StripFrontmatter removes the leading frontmatter block from the content.
// No-op when no block matches.
func StripFrontmatter(content string) string {
	return frontmatterPattern.ReplaceAllString(content, "")
}
