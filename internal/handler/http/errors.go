// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/service"
)

var (
	// ErrMissingHash is returned when a hash key is configured and a body
	// arrives without the HashSHA256 header.
	ErrMissingHash = fmt.Errorf("%w: missing HashSHA256 header", service.ErrIntegrityCheckFailed)

	// ErrHashMismatch is returned when the HashSHA256 header does not match
	// the received body.
	ErrHashMismatch = fmt.Errorf("%w: body hash mismatch", service.ErrIntegrityCheckFailed)

	// ErrInvalidAccountIDParam is returned when {accountID} is not an integer.
	ErrInvalidAccountIDParam = fmt.Errorf("%w: not an integer", service.ErrInvalidAccountID)
)
