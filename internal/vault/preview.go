package vault

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PreviewText extracts the leading plain text of a markdown document for
// display in preview panes, stripping frontmatter and markup. At most
// maxRunes runes are returned.
func PreviewText(content []byte, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}

	if m := frontMatterRe.FindIndex(content); m != nil {
		content = content[m[1]:]
	}

	parser := goldmark.DefaultParser()
	document := parser.Parse(text.NewReader(content))

	var b strings.Builder
	_ = ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(content))
		case *ast.Paragraph, *ast.Heading, *ast.ListItem:
			if b.Len() > 0 {
				b.WriteString(" ")
			}
		}

		if len([]rune(b.String())) >= maxRunes {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	preview := strings.Join(strings.Fields(b.String()), " ")
	runes := []rune(preview)
	if len(runes) > maxRunes {
		preview = string(runes[:maxRunes]) + "…"
	}
	return preview
}
