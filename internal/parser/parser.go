package parser

import (
	"regexp"

	"gopkg.in/yaml.v2"
)

// Metadata is the typed subset of a note's frontmatter the start page
// surfaces: a display title and tags for picker rows.
type Metadata struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

var frontMatterRe = regexp.MustCompile(`(?ms)^---\n(.+?)\n---`)

// ParseFrontMatter decodes the leading --- block of a markdown document.
// Content without a block, or with one that does not parse, yields the zero
// Metadata; a bad frontmatter block should never break a listing.
func ParseFrontMatter(content []byte) Metadata {
	m := frontMatterRe.FindSubmatch(content)
	if len(m) < 2 {
		return Metadata{}
	}

	var data Metadata
	if err := yaml.Unmarshal(m[1], &data); err != nil {
		return Metadata{}
	}
	return data
}
