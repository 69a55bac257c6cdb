package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/tui"
	"github.com/google/subcommands"
)

type backupsCmd struct {
	app   *App
	local bool
	copy  bool
}

func (*backupsCmd) Name() string     { return "backups" }
func (*backupsCmd) Synopsis() string { return "list ledger snapshots" }
func (*backupsCmd) Usage() string {
	return `backups [-local] [-copy]

  Lists the phone's snapshots, newest first, or the desktop's with -local.
  -copy puts the newest path on the clipboard, ready for restore -path.
`
}

func (c *backupsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.local, "local", false, "list desktop snapshots instead of the phone's")
	f.BoolVar(&c.copy, "copy", false, "copy the newest snapshot path to the clipboard")
}

func (c *backupsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx = c.app.commandContext(ctx, c.Name())

	title := "Phone backups"
	listBackups := c.app.services.RemoteService.ListBackups
	if c.local {
		title = "Desktop backups"
		listBackups = c.app.services.BackupService.ListBackups
	}

	backups, err := listBackups(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}

	if status := c.app.print(ctx, c.Name(), tui.BackupsMarkdown(title, backups)); status != subcommands.ExitSuccess {
		return status
	}

	if c.copy && len(backups) > 0 {
		if err := c.app.ui.CopyToClipboard(backups[0].Path); err != nil {
			return c.app.fail(ctx, c.Name(), err)
		}
	}
	return subcommands.ExitSuccess
}

type restoreCmd struct {
	app   *App
	path  string
	local bool
	yes   bool
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "restore a ledger snapshot" }
func (*restoreCmd) Usage() string {
	return `restore -path <snapshot> [-local] [-yes]

  Replaces the phone's ledger, or the desktop's with -local, by a snapshot
  from "backups". The current ledger is snapshotted first.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "snapshot path as listed by backups")
	f.BoolVar(&c.local, "local", false, "restore the desktop ledger instead of the phone's")
	f.BoolVar(&c.yes, "yes", false, "skip the confirmation prompt")
}

func (c *restoreCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.path == "" {
		fmt.Fprintln(c.app.errOut, "-path is required")
		return subcommands.ExitUsageError
	}
	ctx = c.app.commandContext(ctx, c.Name())

	side := "phone"
	restore := c.app.services.RemoteService.Restore
	if c.local {
		side = "desktop"
		restore = c.app.services.BackupService.Restore
	}

	if !c.yes {
		ok, err := c.app.ui.Confirm(fmt.Sprintf("Replace the %s ledger with %s?", side, c.path), nil)
		if err != nil {
			return c.app.fail(ctx, c.Name(), err)
		}
		if !ok {
			fmt.Fprintln(c.app.errOut, "restore cancelled")
			return subcommands.ExitSuccess
		}
	}

	resp, err := restore(ctx, c.path)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	return c.app.print(ctx, c.Name(), fmt.Sprintf("# Restored\n\nThe %s ledger now matches `%s`.\n", side, resp.Path))
}
