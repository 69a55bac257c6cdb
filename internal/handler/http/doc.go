// Package http is the mobile device's HTTP surface.
//
// It wires the chi router, the read-only ledger endpoints, the two-phase
// sync endpoints and backup management. Request tracing, access logging,
// gzip and body integrity checks run as middleware before a request reaches
// the service layer.
package http
