package service

import (
	"strings"

	"github.com/MKhiriev/go-ledger-sync/models"
)

type transactionReconciler struct{}

func NewTransactionReconciler() TransactionReconciler {
	return &transactionReconciler{}
}

// IsDuplicate scans existing linearly. Ledgers hold thousands of rows, not
// millions, so no index is built.
func (r *transactionReconciler) IsDuplicate(candidate models.SyncTransaction, existing []models.SyncTransaction) bool {
	for _, e := range existing {
		if sameEvent(candidate, e) {
			return true
		}
	}
	return false
}

func (r *transactionReconciler) Filter(existing, incoming []models.SyncTransaction) ([]models.SyncTransaction, int) {
	toInsert := make([]models.SyncTransaction, 0, len(incoming))
	skipped := 0

	for _, t := range incoming {
		if r.IsDuplicate(t, existing) {
			skipped++
			continue
		}
		toInsert = append(toInsert, t)
	}

	return toInsert, skipped
}

// NewerThan does not look for duplicates: anything on or before the cutoff
// is dropped, anything after it is kept.
func (r *transactionReconciler) NewerThan(existing, incoming []models.SyncTransaction) ([]models.SyncTransaction, *models.Date) {
	cutoff := models.LatestSyncTransactionDate(existing)
	if cutoff == nil {
		return append([]models.SyncTransaction(nil), incoming...), nil
	}

	toInsert := make([]models.SyncTransaction, 0, len(incoming))
	for _, t := range incoming {
		if t.Date.After(*cutoff) {
			toInsert = append(toInsert, t)
		}
	}

	return toInsert, cutoff
}

// sameEvent compares calendar date, exact amount and trimmed,
// case-insensitive description. Reasons only count when both sides have one.
func sameEvent(a, b models.SyncTransaction) bool {
	if !a.Date.Equal(b.Date) {
		return false
	}
	if !a.SignedAmount.Equal(b.SignedAmount) {
		return false
	}
	if !equalFold(a.Description, b.Description) {
		return false
	}

	reasonA, reasonB := strings.TrimSpace(a.Reason), strings.TrimSpace(b.Reason)
	if reasonA != "" && reasonB != "" && !strings.EqualFold(reasonA, reasonB) {
		return false
	}

	return true
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
