package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's
// separator and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns the path to target relative to the provided vault
// directory. The returned path always uses forward slashes so document paths
// stay stable identifiers across platforms.
func VaultRelative(vaultDir, target string) (string, error) {
	base := NormalizePath(vaultDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// ParentFolder returns the display folder for a vault-relative document path.
// Documents at the vault root report "/"; nested documents report their
// directory prefixed with "/".
func ParentFolder(rel string) string {
	if rel == "" {
		return "/"
	}
	rel = filepath.ToSlash(rel)
	idx := strings.LastIndex(rel, "/")
	if idx == -1 {
		return "/"
	}
	return "/" + rel[:idx]
}

// TruncateMiddle shortens long paths for display, keeping the head and tail
// so both the top-level folder and the file name stay readable.
func TruncateMiddle(s string, head, tail int) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	if len(runes) <= head+tail+3 {
		return s
	}
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
