package client

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type accountsCmd struct {
	app   *App
	local bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with balances" }
func (*accountsCmd) Usage() string {
	return `accounts [-local]

  Lists the phone's accounts, or the desktop's own with -local. The ids
  shown are the ones sync -map expects.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.local, "local", false, "list the desktop ledger instead of the phone")
}

func (c *accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx = c.app.commandContext(ctx, c.Name())

	title := "Phone accounts"
	getAccounts := c.app.services.RemoteService.GetAccounts
	if c.local {
		title = "Desktop accounts"
		getAccounts = c.app.services.AccountService.GetAccounts
	}

	accounts, err := getAccounts(ctx)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}
	return c.app.print(ctx, c.Name(), c.app.ui.AccountsMarkdown(title, accounts))
}

type transactionsCmd struct {
	app       *App
	accountID int64
	local     bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list one account's transactions" }
func (*transactionsCmd) Usage() string {
	return `transactions -account <id> [-local]

  Lists the transactions of a phone account, or of a desktop account with
  -local.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.accountID, "account", 0, "account id")
	f.BoolVar(&c.local, "local", false, "read the desktop ledger instead of the phone")
}

func (c *transactionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountID <= 0 {
		fmt.Fprintln(c.app.errOut, "-account must be a positive account id")
		return subcommands.ExitUsageError
	}
	ctx = c.app.commandContext(ctx, c.Name())

	side := "Phone"
	getTransactions := c.app.services.RemoteService.GetAccountTransactions
	if c.local {
		side = "Desktop"
		getTransactions = c.app.services.AccountService.GetAccountTransactions
	}

	transactions, err := getTransactions(ctx, c.accountID)
	if err != nil {
		return c.app.fail(ctx, c.Name(), err)
	}

	title := fmt.Sprintf("%s account %d", side, c.accountID)
	return c.app.print(ctx, c.Name(), c.app.ui.TransactionsMarkdown(title, transactions))
}
