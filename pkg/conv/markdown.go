package conv

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags | html.HrefTargetBlank
	webPolicy  = bluemonday.NewPolicy()
)

func init() {
	// Minimal tag set for rendering chat answers in the web UI
	webPolicy.AllowElements(
		"p", "br", "b", "strong", "i", "em", "u", "s", "del",
		"code", "pre", "blockquote", "ul", "ol", "li",
		"h1", "h2", "h3", "h4",
	)
	webPolicy.AllowAttrs("href").OnElements("a")
	webPolicy.RequireNoFollowOnLinks(true)
	webPolicy.AllowAttrs("class").OnElements("code")
}

// MarkdownToHTML renders model output as sanitized HTML suitable for
// embedding in the reader UI.
func MarkdownToHTML(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	sanitized := webPolicy.SanitizeBytes(unsafeHTML)

	return string(sanitized)
}
