// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/shopspring/decimal"
)

// SyncDirection tells which device is the source of truth for a sync.
type SyncDirection string

const (
	// MobileToDesktop: the serving (mobile) device is the source; the desktop
	// applies the packaged data to its own ledger.
	MobileToDesktop SyncDirection = "mobile_to_desktop"
	// DesktopToMobile: the serving (mobile) device is the destination.
	DesktopToMobile SyncDirection = "desktop_to_mobile"
)

// IsValid reports whether d is one of the known directions.
func (d SyncDirection) IsValid() bool {
	return d == MobileToDesktop || d == DesktopToMobile
}

func (d SyncDirection) String() string { return string(d) }

// SyncMode is the reconciliation strategy applied on the destination.
type SyncMode string

const (
	CreateNew SyncMode = "create_new"
	Replace   SyncMode = "replace"
	Merge     SyncMode = "merge"
	NewOnly   SyncMode = "new_only"
)

// SyncModes lists every mode in presentation order.
var SyncModes = []SyncMode{CreateNew, Replace, Merge, NewOnly}

// IsValid reports whether m is one of the known modes.
func (m SyncMode) IsValid() bool {
	for _, known := range SyncModes {
		if m == known {
			return true
		}
	}
	return false
}

func (m SyncMode) String() string { return string(m) }

// SyncStatus is the per-account outcome of an Execute call.
type SyncStatus string

const (
	StatusCreated    SyncStatus = "created"
	StatusReplaced   SyncStatus = "replaced"
	StatusMerged     SyncStatus = "merged"
	StatusNewOnly    SyncStatus = "new_only"
	StatusSourceOnly SyncStatus = "source_only"
	StatusError      SyncStatus = "error"
)

// StatusForMode returns the success status a destination strategy reports.
func StatusForMode(mode SyncMode) SyncStatus {
	switch mode {
	case CreateNew:
		return StatusCreated
	case Replace:
		return StatusReplaced
	case Merge:
		return StatusMerged
	case NewOnly:
		return StatusNewOnly
	default:
		return StatusError
	}
}

// SyncAccount is the wire description of one account taking part in a sync.
//
// SourceID is the account id on the device that produced the description.
// TargetAccountID is the id of the matching account on the destination
// device, nil when a new account is to be created.
type SyncAccount struct {
	SourceID              int64             `json:"source_id"`
	Name                  string            `json:"name"`
	OpeningBalance        decimal.Decimal   `json:"opening_balance"`
	Icon                  string            `json:"icon,omitempty"`
	Color                 string            `json:"color,omitempty"`
	TransactionCount      int               `json:"transaction_count"`
	LatestTransactionDate *Date             `json:"latest_transaction_date"`
	Transactions          []SyncTransaction `json:"transactions,omitempty"`
	TargetAccountID       *int64            `json:"target_account_id,omitempty"`
	ClassifiedCount       int               `json:"classified_count"`
}

// Count returns TransactionCount, falling back to the number of carried
// transactions when the count was not filled.
func (a SyncAccount) Count() int {
	if a.TransactionCount == 0 && len(a.Transactions) > 0 {
		return len(a.Transactions)
	}
	return a.TransactionCount
}

// LatestDate returns LatestTransactionDate, falling back to the latest
// carried transaction.
func (a SyncAccount) LatestDate() *Date {
	if a.LatestTransactionDate != nil && !a.LatestTransactionDate.IsZero() {
		return a.LatestTransactionDate
	}
	return LatestSyncTransactionDate(a.Transactions)
}

// SyncComparison is the per-account risk assessment returned by Prepare.
type SyncComparison struct {
	AccountID           int64  `json:"account_id"`
	AccountName         string `json:"account_name"`
	SourceCount         int    `json:"source_count"`
	SourceLatestDate    *Date  `json:"source_latest_date"`
	DestCount           int    `json:"dest_count"`
	DestLatestDate      *Date  `json:"dest_latest_date"`
	DestClassifiedCount int    `json:"dest_classified_count"`
	HasWarning          bool   `json:"has_warning"`
	WarningMessage      string `json:"warning_message,omitempty"`
}

// SyncPrepareRequest asks the serving device to assess a sync.
type SyncPrepareRequest struct {
	Direction      SyncDirection `json:"direction"`
	Mode           SyncMode      `json:"mode"`
	SourceAccounts []SyncAccount `json:"source_accounts"`
}

// SyncPrepareResponse is the assessment. Prepare never mutates ledger data
// but always attempts a backup first.
type SyncPrepareResponse struct {
	Success                     bool             `json:"success"`
	BackupCreated               bool             `json:"backup_created"`
	BackupPath                  string           `json:"backup_path,omitempty"`
	Comparisons                 []SyncComparison `json:"comparisons"`
	RequiresConfirmation        bool             `json:"requires_confirmation"`
	HasClassificationWarning    bool             `json:"has_classification_warning"`
	TotalClassifiedTransactions int              `json:"total_classified_transactions"`
}

// SyncExecuteRequest commits a sync. Confirmed must be present and true.
type SyncExecuteRequest struct {
	Confirmed *bool         `json:"confirmed"`
	Direction SyncDirection `json:"direction"`
	Mode      SyncMode      `json:"mode"`
	Accounts  []SyncAccount `json:"accounts"`
}

// IsConfirmed reports whether the operator explicitly confirmed the request.
func (r SyncExecuteRequest) IsConfirmed() bool {
	return r.Confirmed != nil && *r.Confirmed
}

// SyncAccountResult is the outcome for one account of an Execute call.
type SyncAccountResult struct {
	AccountID                int64        `json:"account_id"`
	AccountName              string       `json:"account_name"`
	Status                   SyncStatus   `json:"status"`
	PreviousTransactionCount int          `json:"previous_transaction_count"`
	NewTransactionCount      int          `json:"new_transaction_count"`
	DuplicatesSkipped        int          `json:"duplicates_skipped"`
	NewOnlyAdded             int          `json:"new_only_added"`
	AccountData              *SyncAccount `json:"account_data,omitempty"`
	ErrorMessage             string       `json:"error_message,omitempty"`
}

// SyncExecuteResponse aggregates per-account results.
type SyncExecuteResponse struct {
	Success                bool                `json:"success"`
	Results                []SyncAccountResult `json:"results"`
	TotalProcessed         int                 `json:"total_processed"`
	TotalDuplicatesSkipped int                 `json:"total_duplicates_skipped"`
	TotalNewAdded          int                 `json:"total_new_added"`
	Message                string              `json:"message"`
}

// AccountMapping pairs a desktop account with a mobile account for a sync
// started from the desktop. RemoteAccountID is nil when the destination
// account is to be created.
type AccountMapping struct {
	LocalAccountID  int64  `json:"local_account_id"`
	RemoteAccountID *int64 `json:"remote_account_id,omitempty"`
}

// SyncPlan is what the desktop operator asked for.
type SyncPlan struct {
	Direction SyncDirection
	Mode      SyncMode
	Accounts  []AccountMapping
}

// ClientSyncResult is the outcome of a desktop-driven sync: the remote
// Execute response and, for MobileToDesktop, the local apply.
type ClientSyncResult struct {
	Remote       SyncExecuteResponse  `json:"remote"`
	Local        *SyncExecuteResponse `json:"local,omitempty"`
	BackupResult *BackupResult        `json:"local_backup,omitempty"`
}
