package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrSyncNotConfirmed:      http.StatusBadRequest,
	service.ErrInvalidDirection:      http.StatusBadRequest,
	service.ErrInvalidMode:           http.StatusBadRequest,
	service.ErrInvalidAccountID:      http.StatusBadRequest,
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrIntegrityCheckFailed:  http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
	utils.ErrEmptyBody:               http.StatusBadRequest,

	store.ErrAccountNotFound:   http.StatusNotFound,
	store.ErrBackupNotFound:    http.StatusNotFound,
	store.ErrBackupOutsideBase: http.StatusBadRequest,
	store.ErrDatabaseBusy:      http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError picks the most specific status: a 4xx match wins over a
// 5xx one, so "restore failed: backup not found" is still a 404.
func statusFromError(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	status := 0
	for target, candidate := range errorStatusMap {
		if errors.Is(err, target) && (status == 0 || candidate < status) {
			status = candidate
		}
	}
	if status == 0 {
		return http.StatusInternalServerError
	}
	return status
}
