package startpage

import (
	"fmt"

	"github.com/kuzzh/obsidian-startpage/internal/cache"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
	"github.com/kuzzh/obsidian-startpage/utils"
)

const previewCacheSize = 64

// renderPreview produces the right-hand pane for a document, caching the
// rendered output by path. The cache is invalidated per path whenever the
// watcher reports a change.
func (m *StartPageModel) renderPreview(item documentItem) string {
	if item.broken {
		return brokenItemStyle.Render(item.path + " is gone. Unpin it with P.")
	}

	if cached, ok := m.previews.Get(item.path); ok {
		return cached
	}

	doc := item.doc
	if !doc.IsMarkdown() {
		summary := fmt.Sprintf(
			"%s\n\n%s file, %s",
			doc.Path,
			doc.Extension,
			vault.ReadableSize(doc.SizeBytes),
		)
		m.previews.Put(item.path, summary)
		return summary
	}

	content, err := m.state.Source.ReadContent(doc.Path)
	if err != nil {
		return "Error reading document"
	}

	rendered := utils.RenderMarkdown(content, m.width/2)
	m.previews.Put(item.path, rendered)
	return rendered
}

func newPreviewCache() *cache.LRUCache[string] {
	return cache.NewLRUCache[string](previewCacheSize)
}
