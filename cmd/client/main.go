package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/client"
	"github.com/MKhiriev/go-ledger-sync/internal/config"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/store"
	"github.com/MKhiriev/go-ledger-sync/internal/tui"
	"github.com/google/subcommands"
)

var (
	serverAddress = flag.String("server", "", "phone address host:port")
	databaseDSN   = flag.String("db", "", "desktop ledger database")
	backupDir     = flag.String("backups", "", "desktop backup directory")
	configPath    = flag.String("config", "", "JSON config file path")
	hashKey       = flag.String("hash-key", "", "request integrity key shared with the phone")
	logDir        = flag.String("log-dir", "", "directory of ledger-sync.log (default: next to the binary)")
	plain         = flag.Bool("plain", false, "print raw markdown")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	flag.Parse()

	log := logger.NewClientLogger("ledger-sync-client", *logDir)
	cfg, err := config.GetClientConfig(config.ClientFlags{
		ServerAddress: *serverAddress,
		DSN:           *databaseDSN,
		BackupDir:     *backupDir,
		ConfigPath:    *configPath,
		HashKey:       *hashKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating desktop storages")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ui := tui.New(cfg.App.Currency, log)
	if *plain {
		ui = tui.NewPlain(os.Stdin, os.Stdout, cfg.App.Currency)
	}

	app := client.NewApp(service.NewClientServices(storages, serverAdapter, log), ui, os.Stderr, log)
	app.Register(commander)

	status := commander.Execute(ctx)
	storages.Close()
	os.Exit(int(status))
}
