package todosync

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		indentWidth int
		expected    int
	}{
		{
			name:        "root bullet is level 1",
			line:        "- TODO a",
			indentWidth: 2,
			expected:    1,
		},
		{
			name:        "two spaces is level 2",
			line:        "  - TODO b",
			indentWidth: 2,
			expected:    2,
		},
		{
			name:        "four spaces is level 3",
			line:        "    - TODO c",
			indentWidth: 2,
			expected:    3,
		},
		{
			name:        "tab counts as one indent unit",
			line:        "\t- TODO b",
			indentWidth: 2,
			expected:    2,
		},
		{
			name:        "mixed tab and spaces",
			line:        "\t  - TODO c",
			indentWidth: 2,
			expected:    3,
		},
		{
			name:        "partial indent rounds down",
			line:        "   - odd indent",
			indentWidth: 2,
			expected:    2,
		},
		{
			name:        "four-space indent unit",
			line:        "    - TODO b",
			indentWidth: 4,
			expected:    2,
		},
		{
			name:        "zero width falls back to default",
			line:        "  - TODO b",
			indentWidth: 0,
			expected:    2,
		},
		{
			name:        "empty line is level 1",
			line:        "",
			indentWidth: 2,
			expected:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Level(tt.line, tt.indentWidth)
			if got != tt.expected {
				t.Errorf("Level(%q, %d) = %d, want %d", tt.line, tt.indentWidth, got, tt.expected)
			}
		})
	}
}

func TestIsBulletLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{name: "dash bullet", line: "- TODO a", expected: true},
		{name: "star bullet", line: "* item", expected: true},
		{name: "plus bullet", line: "+ item", expected: true},
		{name: "indented bullet", line: "  - child", expected: true},
		{name: "tab indented bullet", line: "\t- child", expected: true},
		{name: "empty bullet", line: "- ", expected: true},
		{name: "bare marker", line: "-", expected: true},
		{name: "continuation text", line: "  some note text", expected: false},
		{name: "block property", line: "  collapsed:: true", expected: false},
		{name: "blank line", line: "", expected: false},
		{name: "horizontal rule", line: "---", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isBulletLine(tt.line)
			if got != tt.expected {
				t.Errorf("isBulletLine(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestIsBlockProperty(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{name: "simple property", line: "collapsed:: true", expected: true},
		{name: "indented property", line: "  id:: 6590e4bb-9e02", expected: true},
		{name: "tab indented property", line: "\tSCHEDULED:: <2026-01-01>", expected: true},
		{name: "hyphenated key", line: "  created-at:: 1700000000", expected: true},
		{name: "valueless property", line: "  background-color::", expected: true},
		{name: "bullet line", line: "- TODO a", expected: false},
		{name: "double colon mid-line", line: "- see Foo::Bar", expected: false},
		{name: "plain text", line: "  a note", expected: false},
		{name: "blank", line: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isBlockProperty(tt.line)
			if got != tt.expected {
				t.Errorf("isBlockProperty(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestSplitIndent(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantIndent  string
		wantContent string
	}{
		{name: "no indent", line: "- TODO a", wantIndent: "", wantContent: "- TODO a"},
		{name: "spaces", line: "  - TODO b", wantIndent: "  ", wantContent: "- TODO b"},
		{name: "tabs", line: "\t\t- x", wantIndent: "\t\t", wantContent: "- x"},
		{name: "only whitespace", line: "   ", wantIndent: "   ", wantContent: ""},
		{name: "empty", line: "", wantIndent: "", wantContent: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indent, content := splitIndent(tt.line)
			if indent != tt.wantIndent || content != tt.wantContent {
				t.Errorf("splitIndent(%q) = (%q, %q), want (%q, %q)",
					tt.line, indent, content, tt.wantIndent, tt.wantContent)
			}
		})
	}
}
