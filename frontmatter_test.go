package obsidian2latex

import (
	"reflect"
	"testing"
)

func TestExtractFrontmatter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantTags  []string
		wantKeys  int
	}{
		{
			name:      "title only",
			input:     "---\ntitle: My Note\n---\nBody text",
			wantTitle: "My Note",
			wantKeys:  1,
		},
		{
			name:      "title and inline dash tag",
			input:     "---\ntitle: My Note\ntags: - math\n---\nBody",
			wantTitle: "My Note",
			wantTags:  []string{"math"},
			wantKeys:  2,
		},
		{
			name: "multi-line tag list items are skipped",
			// Item lines contain no colon, so only the bare "tags:" line
			// registers; the list items never populate metadata.
			input:     "---\ntitle: T\ntags:\n- alpha\n- beta\n---\nBody",
			wantTitle: "T",
			wantTags:  nil,
			wantKeys:  2,
		},
		{
			name:      "scalar tags value cannot populate the list field",
			input:     "---\ntags: justtext\n---\nBody",
			wantTitle: "",
			wantTags:  nil,
			wantKeys:  1,
		},
		{
			name:      "unknown keys ignored for metadata but returned raw",
			input:     "---\nauthor: someone\ndate: 2023-01-01\n---\nBody",
			wantTitle: "",
			wantKeys:  2,
		},
		{
			name:      "no frontmatter",
			input:     "# Just a heading\n",
			wantTitle: "",
			wantKeys:  0,
		},
		{
			name:      "unclosed block yields nothing",
			input:     "---\ntitle: Lost\nBody without closing delimiter",
			wantTitle: "",
			wantKeys:  0,
		},
		{
			name:      "block not at document start yields nothing",
			input:     "Intro line\n---\ntitle: Late\n---\n",
			wantTitle: "",
			wantKeys:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, meta := ExtractFrontmatter(tt.input)
			if meta.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", meta.Title, tt.wantTitle)
			}
			if !reflect.DeepEqual(meta.Tags, tt.wantTags) {
				t.Errorf("Tags = %v, want %v", meta.Tags, tt.wantTags)
			}
			if len(raw) != tt.wantKeys {
				t.Errorf("raw map has %d keys, want %d (%v)", len(raw), tt.wantKeys, raw)
			}
		})
	}
}

func TestStripFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading block",
			input:    "---\ntitle: My Note\n---\n# Heading\n",
			expected: "# Heading\n",
		},
		{
			name:     "no-op without block",
			input:    "# Heading\n",
			expected: "# Heading\n",
		},
		{
			name:     "no-op on unclosed block",
			input:    "---\ntitle: x\nrest of document",
			expected: "---\ntitle: x\nrest of document",
		},
		{
			name:     "later delimiters untouched",
			input:    "body\n---\nnot frontmatter\n---\n",
			expected: "body\n---\nnot frontmatter\n---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFrontmatter(tt.input)
			if got != tt.expected {
				t.Errorf("StripFrontmatter() = %q, want %q", got, tt.expected)
			}
		})
	}
}
