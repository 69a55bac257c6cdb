// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/go-ledger-sync/models"

// UI is what commands need from the terminal. *tui.TUI implements it.
type UI interface {
	Print(md string) error
	Confirm(title string, warnings []string) (bool, error)
	CopyToClipboard(text string) error

	AccountsMarkdown(title string, accounts []models.AccountSummary) string
	TransactionsMarkdown(title string, transactions []models.SyncTransaction) string
}
