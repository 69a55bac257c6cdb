// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a dated, signed movement of money within one account.
//
// Classification is only ever filled on the desktop side. It never travels
// over the wire; a sync only reports how many classified rows would be lost.
type Transaction struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"account_id"`
	Date           Date            `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Reason         string          `json:"reason,omitempty"`
	Classification string          `json:"classification,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ModifiedAt     time.Time       `json:"modified_at"`
}

// IsClassified reports whether the transaction carries a classification.
func (t Transaction) IsClassified() bool {
	return strings.TrimSpace(t.Classification) != ""
}

// ToSync converts the stored row into its wire form.
func (t Transaction) ToSync() SyncTransaction {
	return SyncTransaction{
		Date:         t.Date,
		SignedAmount: t.Amount,
		Description:  t.Description,
		Reason:       t.Reason,
		CreatedAt:    t.CreatedAt,
		ModifiedAt:   t.ModifiedAt,
	}
}

// SyncTransaction is the wire form of a transaction. It carries no
// identifiers: both devices allocate their own.
type SyncTransaction struct {
	Date         Date            `json:"date"`
	SignedAmount decimal.Decimal `json:"signed_amount"`
	Description  string          `json:"description"`
	Reason       string          `json:"reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	ModifiedAt   time.Time       `json:"modified_at"`
}

// ToTransaction builds a new row for accountID. Missing timestamps are set
// to now.
func (s SyncTransaction) ToTransaction(accountID int64, now time.Time) Transaction {
	t := Transaction{
		AccountID:   accountID,
		Date:        s.Date,
		Amount:      s.SignedAmount,
		Description: s.Description,
		Reason:      s.Reason,
		CreatedAt:   s.CreatedAt,
		ModifiedAt:  s.ModifiedAt,
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.ModifiedAt.IsZero() {
		t.ModifiedAt = t.CreatedAt
	}
	return t
}

// ToSyncTransactions converts stored rows into wire form, keeping order.
func ToSyncTransactions(transactions []Transaction) []SyncTransaction {
	out := make([]SyncTransaction, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.ToSync())
	}
	return out
}

// LatestTransactionDate returns the latest transaction date or nil for an
// empty slice.
func LatestTransactionDate(transactions []Transaction) *Date {
	dates := make([]Date, 0, len(transactions))
	for _, t := range transactions {
		dates = append(dates, t.Date)
	}
	return MaxDate(dates...)
}

// LatestSyncTransactionDate is LatestTransactionDate for wire transactions.
func LatestSyncTransactionDate(transactions []SyncTransaction) *Date {
	dates := make([]Date, 0, len(transactions))
	for _, t := range transactions {
		dates = append(dates, t.Date)
	}
	return MaxDate(dates...)
}
