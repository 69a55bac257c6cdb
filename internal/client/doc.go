// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the desktop CLI.
//
// Every command is a google/subcommands command bound to one [App]: ping,
// info, accounts, transactions, sync, backups and restore. Commands talk to
// the mobile device through the client services and render markdown through
// the tui package.
package client
