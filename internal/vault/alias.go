package vault

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// AliasKind distinguishes the shapes the frontmatter "aliases" key shows up
// in. Vault frontmatter is loosely typed: the key may be absent, a bare
// scalar, or a sequence, and downstream code should only ever see the
// normalized slice.
type AliasKind int

const (
	AliasNone AliasKind = iota
	AliasSingle
	AliasMany
)

// Alias is the normalized-at-the-boundary representation of a document's
// frontmatter aliases.
type Alias struct {
	Kind   AliasKind
	Values []string
}

// Strings returns the alias values as a flat slice, nil when none exist.
func (a Alias) Strings() []string {
	if a.Kind == AliasNone || len(a.Values) == 0 {
		return nil
	}
	return a.Values
}

var frontMatterRe = regexp.MustCompile(`(?ms)^---\s*\n(.*?)\n---\s*\n?`)

// ParseAliases extracts the aliases declared in a document's YAML
// frontmatter block. Documents without frontmatter, with malformed YAML, or
// without an aliases key all yield AliasNone; a scan should never fail on
// one bad note.
func ParseAliases(content []byte) Alias {
	m := frontMatterRe.FindSubmatch(content)
	if len(m) < 2 {
		return Alias{Kind: AliasNone}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(m[1], &doc); err != nil {
		return Alias{Kind: AliasNone}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Alias{Kind: AliasNone}
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return Alias{Kind: AliasNone}
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		if key != "aliases" && key != "alias" {
			continue
		}
		return aliasFromNode(mapping.Content[i+1])
	}

	return Alias{Kind: AliasNone}
}

func aliasFromNode(node *yaml.Node) Alias {
	switch node.Kind {
	case yaml.SequenceNode:
		values := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			if v := strings.TrimSpace(child.Value); v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return Alias{Kind: AliasNone}
		}
		return Alias{Kind: AliasMany, Values: values}
	case yaml.ScalarNode:
		v := strings.TrimSpace(node.Value)
		if v == "" {
			return Alias{Kind: AliasNone}
		}
		return Alias{Kind: AliasSingle, Values: []string{v}}
	default:
		return Alias{Kind: AliasNone}
	}
}
