package opener

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kuzzh/obsidian-startpage/internal/config"
)

const fallbackEditor = "vi"

// EditorCommand builds the command that opens a document at an absolute
// path. Resolution order: the configured editor, $EDITOR, then vi. The
// configured value may carry arguments ("code --wait").
func EditorCommand(settings *config.Settings, absPath string) (*exec.Cmd, error) {
	editor := ""
	if settings != nil {
		editor = strings.TrimSpace(settings.Editor)
	}
	if editor == "" {
		editor = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	if editor == "" {
		editor = fallbackEditor
	}

	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}

	args := append(parts[1:], absPath)
	return exec.Command(parts[0], args...), nil
}

// Open launches the editor attached to the terminal and waits for it to
// exit. Used by the one-shot commands; the dashboard wraps EditorCommand in
// an exec process instead so the program suspends cleanly.
func Open(settings *config.Settings, absPath string) error {
	cmd, err := EditorCommand(settings, absPath)
	if err != nil {
		return err
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s: %w", absPath, err)
	}
	return nil
}
