package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownContainsText(t *testing.T) {
	out := RenderMarkdown([]byte("# Title\n\nbody text"), 80)
	if !strings.Contains(out, "Title") {
		t.Errorf("rendered output missing heading text: %q", out)
	}
	if !strings.Contains(out, "body text") {
		t.Errorf("rendered output missing body text: %q", out)
	}
}
