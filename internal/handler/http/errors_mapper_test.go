package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not confirmed", err: service.ErrSyncNotConfirmed, want: http.StatusBadRequest},
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoAccountsProvided), want: http.StatusBadRequest},
		{name: "empty body", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, utils.ErrEmptyBody), want: http.StatusBadRequest},
		{name: "path param", err: ErrInvalidAccountIDParam, want: http.StatusBadRequest},
		{name: "integrity", err: ErrHashMismatch, want: http.StatusBadRequest},
		{name: "unknown account", err: fmt.Errorf("acquire: %w", store.ErrAccountNotFound), want: http.StatusNotFound},
		{name: "restore of missing backup", err: fmt.Errorf("%w: %w", service.ErrRestoreFailed, store.ErrBackupNotFound), want: http.StatusNotFound},
		{name: "restore outside base", err: fmt.Errorf("%w: %w", service.ErrRestoreFailed, store.ErrBackupOutsideBase), want: http.StatusBadRequest},
		{name: "busy", err: store.ErrDatabaseBusy, want: http.StatusServiceUnavailable},
		{name: "busy while querying", err: fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrDatabaseBusy), want: http.StatusInternalServerError},
		{name: "too large", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, &http.MaxBytesError{Limit: 1}), want: http.StatusRequestEntityTooLarge},
		{name: "unknown", err: errors.New("disk on fire"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
