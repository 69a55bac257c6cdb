// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the mobile HTTP
// handlers and the desktop client.
//
// Handlers write these into error response bodies; the desktop adapter reads
// them back and maps them onto service errors, so both sides must agree on
// the exact wording.
package app

const (
	// MsgInvalidDataProvided: the body could not be decoded or failed
	// structural validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgSyncNotConfirmed: an Execute request without confirmed=true.
	MsgSyncNotConfirmed = "sync not confirmed"

	MsgInvalidDirection = "invalid sync direction"
	MsgInvalidMode      = "invalid sync mode"

	// MsgInvalidAccountID: a path account id that is not a positive integer.
	MsgInvalidAccountID = "invalid account id"

	MsgAccountNotFound = "account not found"

	// MsgIntegrityCheckFailed: the HashSHA256 header does not match the body.
	MsgIntegrityCheckFailed = "integrity check failed"

	MsgBackupNotFound    = "backup not found"
	MsgBackupOutsideBase = "backup path is outside the backup directory"
	MsgRestoreFailed     = "restore failed"

	// MsgUseSyncExecute answers the legacy POST /transactions.
	MsgUseSyncExecute = "use /sync/execute"

	MsgInternalServerError = "internal server error"
)
