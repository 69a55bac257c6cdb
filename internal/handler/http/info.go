package http

import (
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Ping(r.Context()), http.StatusOK)
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Info(r.Context()), http.StatusOK)
}
