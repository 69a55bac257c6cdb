package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

// withHashCheck verifies the HashSHA256 header against the raw (already
// gunzipped) body. It is a no-op when no hash key is configured.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.verifyHashes {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" {
			log.Err(ErrMissingHash).Str("func", "*Handler.withHashCheck").Str("uri", r.RequestURI).Send()
			http.Error(w, ErrMissingHash.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, utils.MaxRequestBody))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !utils.VerifyHash(body, signature) {
			log.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", signature).
				Int("body_size", len(body)).
				Msg("hashes are not equal")
			http.Error(w, ErrHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.withHashCheck").Msg("hashes are equal")
		next.ServeHTTP(w, r)
	})
}
