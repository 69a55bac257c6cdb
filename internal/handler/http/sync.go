package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

func (h *Handler) prepareSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SyncPrepareRequest
	if err := decodeRequest(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.prepareSync").Msg("invalid JSON was passed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response, err := h.services.SyncCoordinator.Prepare(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.prepareSync").
			Str("direction", request.Direction.String()).
			Str("mode", request.Mode.String()).
			Msg("prepare failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) executeSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SyncExecuteRequest
	if err := decodeRequest(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.executeSync").Msg("invalid JSON was passed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response, err := h.services.SyncCoordinator.Execute(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.executeSync").
			Str("direction", request.Direction.String()).
			Str("mode", request.Mode.String()).
			Msg("execute failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("func", "*Handler.executeSync").
		Bool("success", response.Success).
		Int("processed", response.TotalProcessed).
		Msg(response.Message)

	utils.WriteJSON(w, response, http.StatusOK)
}

// decodeRequest reports every malformed body as invalid data so the desktop
// sees one error kind for it.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) error {
	if err := utils.DecodeJSON(w, r, v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}
