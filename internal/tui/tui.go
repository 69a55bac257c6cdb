// Package tui renders the desktop operator's view of a sync: markdown
// reports through glamour, money through go-money and the confirmation
// prompt through bubbletea.
package tui

import (
	"io"
	"os"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
)

// TUI writes to out and reads confirmations from in.
type TUI struct {
	in       io.Reader
	out      io.Writer
	currency string
	// plain disables glamour styling, for pipes and tests.
	plain bool

	logger *logger.Logger
}

func New(currency string, logger *logger.Logger) *TUI {
	return &TUI{
		in:       os.Stdin,
		out:      os.Stdout,
		currency: currency,
		logger:   logger,
	}
}

// NewPlain returns a TUI that prints raw markdown to out and reads
// confirmations from in.
func NewPlain(in io.Reader, out io.Writer, currency string) *TUI {
	return &TUI{
		in:       in,
		out:      out,
		currency: currency,
		plain:    true,
		logger:   logger.Nop(),
	}
}
