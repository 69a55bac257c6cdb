package client

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
)

type pingCmd struct {
	app *App
}

func (*pingCmd) Name() string     { return "ping" }
func (*pingCmd) Synopsis() string { return "check that the phone is reachable" }
func (*pingCmd) Usage() string {
	return `ping

  Asks the phone for its status, name and device id.
`
}

func (*pingCmd) SetFlags(*flag.FlagSet) {}

func (c *pingCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx = c.app.commandContext(ctx, c.Name())

	ping, err := c.app.services.RemoteService.Ping(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}

	md := fmt.Sprintf("# %s\n\n- Status: **%s**\n- Device id: `%s`\n- Phone time: %s\n",
		ping.DeviceName, ping.Status, ping.DeviceID, ping.Timestamp.Local().Format(time.DateTime))
	return c.app.print(ctx, c.Name(), md)
}

type infoCmd struct {
	app *App
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "show the phone app version" }
func (*infoCmd) Usage() string {
	return `info

  Shows the app name, version, platform and build of the phone.
`
}

func (*infoCmd) SetFlags(*flag.FlagSet) {}

func (c *infoCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx = c.app.commandContext(ctx, c.Name())

	info, err := c.app.services.RemoteService.Info(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}

	md := fmt.Sprintf("# %s %s\n\n- Platform: %s\n- Port: %d\n- Build date: %s\n- Build commit: %s\n",
		info.App, info.Version, info.Platform, info.Port, info.BuildDate, info.BuildCommit)
	return c.app.print(ctx, c.Name(), md)
}
