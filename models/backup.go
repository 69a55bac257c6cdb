// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BackupResult is returned by a backup attempt.
type BackupResult struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
}

// BackupInfo describes one snapshot file in the backup directory.
type BackupInfo struct {
	Path      string    `json:"path"`
	Reason    string    `json:"reason"`
	Tag       string    `json:"tag"`
	CreatedAt time.Time `json:"created_at"`
	Size      int64     `json:"size"`
}

// LedgerSnapshot is the full content of a ledger database, written to
// backup files and read back on restore.
type LedgerSnapshot struct {
	Reason       string        `json:"reason"`
	Tag          string        `json:"tag"`
	CreatedAt    time.Time     `json:"created_at"`
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
}
