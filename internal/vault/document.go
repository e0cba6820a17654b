package vault

import (
	"strings"
	"time"

	"github.com/kuzzh/obsidian-startpage/internal/pathutil"
)

// DocumentRef is an immutable view of one document in the vault. Path is the
// vault-relative, slash-separated identifier and the only identity the rest
// of the system uses; everything else is display metadata.
type DocumentRef struct {
	Path         string
	Name         string
	Extension    string
	SizeBytes    int64
	ModifiedAt   time.Time
	ParentFolder string
	Aliases      []string
}

// Basename returns the document name without its extension.
func (d DocumentRef) Basename() string {
	if d.Extension == "" {
		return d.Name
	}
	return strings.TrimSuffix(d.Name, "."+d.Extension)
}

// IsMarkdown reports whether the document is a markdown note.
func (d DocumentRef) IsMarkdown() bool {
	return strings.EqualFold(d.Extension, "md")
}

func newDocumentRef(rel string, size int64, modified time.Time, aliases []string) DocumentRef {
	name := rel
	if idx := strings.LastIndex(rel, "/"); idx != -1 {
		name = rel[idx+1:]
	}

	ext := ""
	if dot := strings.LastIndex(name, "."); dot > 0 {
		ext = strings.ToLower(name[dot+1:])
	}

	return DocumentRef{
		Path:         rel,
		Name:         name,
		Extension:    ext,
		SizeBytes:    size,
		ModifiedAt:   modified,
		ParentFolder: pathutil.ParentFolder(rel),
		Aliases:      aliases,
	}
}

// Snapshot is a point-in-time, ordered view of every document the source
// knows about. Consumers never mutate it.
type Snapshot []DocumentRef

// Lookup returns the document with the given path, if present.
func (s Snapshot) Lookup(path string) (DocumentRef, bool) {
	for _, doc := range s {
		if doc.Path == path {
			return doc, true
		}
	}
	return DocumentRef{}, false
}

// Markdown returns the subset of the snapshot that is markdown notes,
// preserving order.
func (s Snapshot) Markdown() Snapshot {
	out := make(Snapshot, 0, len(s))
	for _, doc := range s {
		if doc.IsMarkdown() {
			out = append(out, doc)
		}
	}
	return out
}
