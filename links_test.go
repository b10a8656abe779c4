package obsidian2latex

import "testing"

func TestConvertLinks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "wikilink with display text keeps only the display text",
			input:    "[[Note A|shown text]]",
			expected: `\textit{shown text}`,
		},
		{
			name:     "plain wikilink keeps the target as text",
			input:    "[[Note A]]",
			expected: `\textit{Note A}`,
		},
		{
			name:     "markdown link becomes a hyperlink",
			input:    "[text](http://x)",
			expected: `\href{http://x}{text}`,
		},
		{
			name:     "display-text variant is not swallowed by the simpler pattern",
			input:    "[[Target|d]] and [[Other]]",
			expected: `\textit{d} and \textit{Other}`,
		},
		{
			name:     "mixed link kinds in one line",
			input:    "see [[Note]] or [docs](https://example.com)",
			expected: `see \textit{Note} or \href{https://example.com}{docs}`,
		},
		{
			name:     "no links unchanged",
			input:    "plain text",
			expected: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertLinks(tt.input)
			if got != tt.expected {
				t.Errorf("ConvertLinks() = %q, want %q", got, tt.expected)
			}
		})
	}
}
