package models

import "time"

// PingResponse answers GET /ping. DeviceID is stable across restarts so the
// desktop can recognize a phone it has synced with before.
type PingResponse struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	DeviceID   string    `json:"device_id"`
	DeviceName string    `json:"device_name"`
}

// InfoResponse answers GET /info.
type InfoResponse struct {
	App         string `json:"app"`
	Version     string `json:"version"`
	Platform    string `json:"platform"`
	Port        int    `json:"port"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}

// TransactionsUploadResponse answers the legacy POST /transactions endpoint.
// Writes only go through /sync/execute.
type TransactionsUploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RestoreRequest is the body of POST /backups/restore.
type RestoreRequest struct {
	Path string `json:"path"`
}

// RestoreResponse answers POST /backups/restore.
type RestoreResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}
