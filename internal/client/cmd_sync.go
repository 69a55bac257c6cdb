package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/MKhiriev/go-ledger-sync/internal/tui"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/google/subcommands"
)

type syncCmd struct {
	app       *App
	direction string
	mode      string
	mappings  mappingFlag
	yes       bool
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "sync accounts between the desktop and the phone" }
func (*syncCmd) Usage() string {
	return `sync -direction <dir> -mode <mode> -map local:remote [-map ...] [-yes]

  Directions: mobile_to_desktop, desktop_to_mobile.
  Modes: create_new, replace, merge, new_only.

  The destination is backed up and compared first. The sync only runs
  after confirmation. -yes skips the prompt unless the comparison raised a
  warning.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.direction, "direction", "", "sync direction")
	f.StringVar(&c.mode, "mode", "", "sync mode")
	f.Var(&c.mappings, "map", "account mapping local:remote, repeatable")
	f.BoolVar(&c.yes, "yes", false, "confirm without a prompt when nothing needs attention")
}

func (c *syncCmd) plan() models.SyncPlan {
	return models.SyncPlan{
		Direction: models.SyncDirection(c.direction),
		Mode:      models.SyncMode(c.mode),
		Accounts:  c.mappings,
	}
}

func (c *syncCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan := c.plan()
	if !plan.Direction.IsValid() || !plan.Mode.IsValid() || len(plan.Accounts) == 0 {
		fmt.Fprint(c.app.errOut, c.Usage())
		return subcommands.ExitUsageError
	}
	ctx = c.app.commandContext(ctx, c.Name())

	prepared, err := c.app.services.SyncService.Prepare(ctx, plan)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	if status := c.app.print(ctx, c.Name(), tui.PrepareMarkdown(plan, prepared)); status != subcommands.ExitSuccess {
		return status
	}

	confirmed := c.yes && !prepared.RequiresConfirmation
	if !confirmed {
		title := fmt.Sprintf("Run %s for %d account(s), %s?", plan.Mode, len(plan.Accounts), plan.Direction)
		confirmed, err = c.app.ui.Confirm(title, tui.Warnings(prepared))
		if err != nil {
			return c.app.fail(ctx, c.Name(), err)
		}
	}
	if !confirmed {
		fmt.Fprintln(c.app.errOut, "sync cancelled, nothing was changed")
		return subcommands.ExitSuccess
	}

	result, err := c.app.services.SyncService.Execute(ctx, plan, confirmed)
	if err != nil {
		// A failed local apply still returns what the phone did.
		if result.Remote.Message != "" {
			c.app.print(ctx, c.Name(), tui.ResultMarkdown(result))
		}
		return c.app.fail(ctx, c.Name(), err)
	}

	if status := c.app.print(ctx, c.Name(), tui.ResultMarkdown(result)); status != subcommands.ExitSuccess {
		return status
	}
	if !result.Remote.Success || (result.Local != nil && !result.Local.Success) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
