// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
)

var (
	ErrPromptFailed = errors.New("confirmation prompt failed")
	ErrRenderFailed = errors.New("rendering report failed")
)

// HumanizeError turns transport failures into advice for the operator.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrServerUnreachable) {
		return "The phone is not reachable. Check that the app is open and both devices are on the same network."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "context deadline exceeded") || strings.Contains(s, "i/o timeout") {
		return "The phone did not answer in time. Try again, or raise the request timeout."
	}

	return err.Error()
}
