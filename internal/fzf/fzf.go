package fzf

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/kuzzh/obsidian-startpage/internal/parser"
	"github.com/kuzzh/obsidian-startpage/internal/pathutil"
	"github.com/kuzzh/obsidian-startpage/internal/vault"
)

// DocumentPicker runs an interactive fuzzy selection over a vault snapshot
// with a rendered markdown preview pane. Commands use it wherever a note
// argument was not given on the command line.
type DocumentPicker struct {
	source *vault.Source
	Header string
	docs   vault.Snapshot
}

func NewDocumentPicker(source *vault.Source, header string) *DocumentPicker {
	return &DocumentPicker{source: source, Header: header}
}

// Pick shows the picker and returns the chosen document. A non-empty query
// pre-fills the finder prompt.
func (p *DocumentPicker) Pick(query string) (vault.DocumentRef, error) {
	snapshot, err := p.source.Snapshot()
	if err != nil {
		return vault.DocumentRef{}, fmt.Errorf("error listing documents: %w", err)
	}
	if len(snapshot) == 0 {
		return vault.DocumentRef{}, fmt.Errorf("vault has no documents")
	}

	p.docs = snapshot

	idx, err := p.selectDocument(query)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return vault.DocumentRef{}, fmt.Errorf("no document selected")
		}
		return vault.DocumentRef{}, err
	}

	return p.docs[idx], nil
}

func (p *DocumentPicker) selectDocument(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(p.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if p.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(p.Header))
	}

	labels := make([]string, len(p.docs))
	for i, doc := range p.docs {
		labels[i] = p.pickerLabel(doc)
	}

	return fuzzyfinder.Find(p.docs, func(i int) string {
		return labels[i]
	}, options...)
}

// pickerLabel formats one row: the frontmatter title when present, the
// aliases and tags, and the parent folder so same-named notes stay
// distinguishable.
func (p *DocumentPicker) pickerLabel(doc vault.DocumentRef) string {
	label := doc.Basename()
	var tags []string

	if doc.IsMarkdown() {
		if content, err := p.source.ReadContent(doc.Path); err == nil {
			meta := parser.ParseFrontMatter(content)
			if meta.Title != "" {
				label = meta.Title
			}
			tags = meta.Tags
		}
	}

	if len(doc.Aliases) > 0 {
		label = fmt.Sprintf("%s [%s]", label, strings.Join(doc.Aliases, ", "))
	}
	if len(tags) > 0 {
		label = fmt.Sprintf("%s #%s", label, strings.Join(tags, " #"))
	}
	if doc.ParentFolder != "/" {
		label = fmt.Sprintf("%s  (%s)", label, pathutil.TruncateMiddle(doc.ParentFolder, 12, 16))
	}
	return label
}

func (p *DocumentPicker) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	doc := p.docs[i]
	if !doc.IsMarkdown() {
		return fmt.Sprintf("%s\n\n%s, %s", doc.Path, doc.Extension, vault.ReadableSize(doc.SizeBytes))
	}

	content, err := p.source.ReadContent(doc.Path)
	if err != nil {
		return "Error reading document"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}
