package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/tui"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// App carries what every command shares.
type App struct {
	services *service.ClientServices
	ui       UI
	errOut   io.Writer
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, errOut io.Writer, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		errOut:   errOut,
		logger:   logger,
	}
}

// Register adds every command to commander.
func (a *App) Register(commander *subcommands.Commander) {
	commander.Register(&pingCmd{app: a}, "device")
	commander.Register(&infoCmd{app: a}, "device")

	commander.Register(&accountsCmd{app: a}, "ledger")
	commander.Register(&transactionsCmd{app: a}, "ledger")

	commander.Register(&syncCmd{app: a}, "sync")

	commander.Register(&backupsCmd{app: a}, "backups")
	commander.Register(&restoreCmd{app: a}, "backups")
}

// commandContext gives each command run its own trace id, which the server
// adapter forwards as X-Trace-ID.
func (a *App) commandContext(ctx context.Context, command string) context.Context {
	traceID := uuid.NewString()
	log := a.logger.With().Str("trace_id", traceID).Str("command", command).Logger()
	ctx = utils.WithTraceID(ctx, traceID)
	return log.WithContext(ctx)
}

// fail reports err to the operator and the log file.
func (a *App) fail(ctx context.Context, command string, err error) subcommands.ExitStatus {
	logger.FromContext(ctx).Err(err).Str("func", command).Msg("command failed")
	fmt.Fprintf(a.errOut, "%s: %s\n", command, tui.HumanizeError(err))
	return subcommands.ExitFailure
}

func (a *App) print(ctx context.Context, command, md string) subcommands.ExitStatus {
	if err := a.ui.Print(md); err != nil {
		return a.fail(ctx, command, err)
	}
	return subcommands.ExitSuccess
}
