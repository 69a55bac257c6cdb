package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard puts text on the system clipboard and tells the operator.
func (t *TUI) CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintf(t.out, "Copied to clipboard: %s\n", text)
	return nil
}
