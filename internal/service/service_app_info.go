package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
)

const appName = "ledger-sync"

type appInfoService struct {
	appVersion string
	deviceID   string
	deviceName string
	port       int
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reads the device id persisted next to the ledger,
// creating it on first start. The configured version wins over the one
// linked into the binary.
func NewAppInfoService(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.App.Version
	if version == "" && buildInfo.HasVersion() {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	deviceID, err := loadOrCreateDeviceID(store.DeviceIDPath(cfg.Storage), utils.NewUUIDGenerator())
	if err != nil {
		logger.Err(err).Str("func", "NewAppInfoService").Msg("failed to load device id")
		return nil, fmt.Errorf("%w: %w", ErrDeviceIDUnavailable, err)
	}

	return &appInfoService{
		appVersion: version,
		deviceID:   deviceID,
		deviceName: cfg.App.DeviceName,
		port:       portOf(cfg.Server.HTTPAddress),
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Ping(ctx context.Context) models.PingResponse {
	return models.PingResponse{
		Status:     "ok",
		Timestamp:  time.Now().UTC(),
		DeviceID:   s.deviceID,
		DeviceName: s.deviceName,
	}
}

func (s *appInfoService) Info(ctx context.Context) models.InfoResponse {
	return models.InfoResponse{
		App:         appName,
		Version:     s.appVersion,
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		Port:        s.port,
		BuildDate:   s.buildInfo.BuildDate(),
		BuildCommit: s.buildInfo.BuildCommit(),
	}
}

type idGenerator interface {
	Generate() string
}

func loadOrCreateDeviceID(path string, gen idGenerator) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	id := gen.Generate()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", err
	}

	return id, nil
}

func portOf(address string) int {
	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return 0
	}
	p, _ := strconv.Atoi(port)
	return p
}
