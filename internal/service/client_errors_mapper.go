// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/app"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// or store error. The mobile handler writes the error text as the body, so
// the body starts with one of the app.Msg strings.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.HasPrefix(msg, app.MsgSyncNotConfirmed):
			return remoteError(ErrSyncNotConfirmed, msg)
		case strings.HasPrefix(msg, app.MsgInvalidDirection):
			return remoteError(ErrInvalidDirection, msg)
		case strings.HasPrefix(msg, app.MsgInvalidMode):
			return remoteError(ErrInvalidMode, msg)
		case strings.HasPrefix(msg, app.MsgInvalidAccountID):
			return remoteError(ErrInvalidAccountID, msg)
		case strings.HasPrefix(msg, app.MsgIntegrityCheckFailed):
			return remoteError(ErrIntegrityCheckFailed, msg)
		case strings.Contains(msg, app.MsgBackupOutsideBase):
			return remoteError(store.ErrBackupOutsideBase, msg)
		case strings.HasPrefix(msg, app.MsgInvalidDataProvided):
			return remoteError(ErrInvalidDataProvided, msg)
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch {
		case strings.Contains(msg, app.MsgBackupNotFound):
			return remoteError(store.ErrBackupNotFound, msg)
		case strings.HasPrefix(msg, app.MsgAccountNotFound):
			return remoteError(store.ErrAccountNotFound, msg)
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		if strings.HasPrefix(msg, app.MsgRestoreFailed) {
			return remoteError(ErrRestoreFailed, msg)
		}
	}

	return err
}

// remoteError wraps sentinel, keeping whatever detail the server added
// after the sentinel's own text.
func remoteError(sentinel error, msg string) error {
	detail := strings.TrimPrefix(strings.TrimPrefix(msg, sentinel.Error()), ": ")
	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
