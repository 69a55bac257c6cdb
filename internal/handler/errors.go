// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// configured. The mobile side has nothing to serve without one.
var errNoHandlersAreCreated = errors.New("no handlers are created")
