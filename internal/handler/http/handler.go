package http

import (
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
)

type Handler struct {
	services *service.Services

	// verifyHashes is set when a shared hash key is configured.
	verifyHashes   bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Bool("integrity_check", hashKey != "").Msg("http handler created")
	return &Handler{
		services:       services,
		verifyHashes:   hashKey != "",
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
