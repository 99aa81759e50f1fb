package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name        string
		md          string
		contains    string
		notContains string
	}{
		{
			name:     "bold",
			md:       "some **bold** text",
			contains: "<strong>bold</strong>",
		},
		{
			name:     "list",
			md:       "- one\n- two",
			contains: "<li>one</li>",
		},
		{
			name:        "script stripped",
			md:          `safe <script>alert("x")</script> text`,
			contains:    "safe",
			notContains: "<script>",
		},
		{
			name:     "code block",
			md:       "```\nfmt.Println(1)\n```",
			contains: "<pre>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToHTML([]byte(tt.md))
			assert.Contains(t, got, tt.contains)
			if tt.notContains != "" {
				assert.NotContains(t, got, tt.notContains)
			}
		})
	}
}
