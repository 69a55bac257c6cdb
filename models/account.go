// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a named ledger as stored on one device.
//
// Identifiers are local to the device that owns the row: the same logical
// account usually has different IDs on the mobile and the desktop side.
type Account struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Icon           string          `json:"icon,omitempty"`
	Color          string          `json:"color,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AccountSummary is the listing row served by GET /accounts.
type AccountSummary struct {
	Account
	TransactionCount      int             `json:"transaction_count"`
	LatestTransactionDate *Date           `json:"latest_transaction_date"`
	Balance               decimal.Decimal `json:"balance"`
}

// AccountTransactions groups an account's transactions for GET /transactions.
type AccountTransactions struct {
	AccountID    int64             `json:"account_id"`
	AccountName  string            `json:"account_name"`
	Transactions []SyncTransaction `json:"transactions"`
}

// ToSyncAccount describes the account and its transactions in wire form.
// TargetAccountID is left unset.
func (a Account) ToSyncAccount(transactions []Transaction) SyncAccount {
	out := SyncAccount{
		SourceID:         a.ID,
		Name:             a.Name,
		OpeningBalance:   a.OpeningBalance,
		Icon:             a.Icon,
		Color:            a.Color,
		TransactionCount: len(transactions),
		Transactions:     make([]SyncTransaction, 0, len(transactions)),
	}
	for _, t := range transactions {
		out.Transactions = append(out.Transactions, t.ToSync())
		if t.IsClassified() {
			out.ClassifiedCount++
		}
	}
	out.LatestTransactionDate = LatestTransactionDate(transactions)
	return out
}
