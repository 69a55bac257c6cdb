package http

import (
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.services.BackupService.ListBackups(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listBackups").Msg("error listing backups")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, backups, http.StatusOK)
}

func (h *Handler) restoreBackup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RestoreRequest
	if err := decodeRequest(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.restoreBackup").Msg("invalid JSON was passed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response, err := h.services.BackupService.Restore(r.Context(), request.Path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.restoreBackup").Str("path", request.Path).Msg("restore failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
