package client

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/adapter"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/mock"
	"github.com/MKhiriev/go-ledger-sync/internal/service"
	"github.com/MKhiriev/go-ledger-sync/internal/tui"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeUI renders plain markdown and answers prompts from a script.
type fakeUI struct {
	*tui.TUI
	answer    bool
	prompts   []string
	warnings  [][]string
	clipboard string
}

func (f *fakeUI) Confirm(title string, warnings []string) (bool, error) {
	f.prompts = append(f.prompts, title)
	f.warnings = append(f.warnings, warnings)
	return f.answer, nil
}

func (f *fakeUI) CopyToClipboard(text string) error {
	f.clipboard = text
	return nil
}

type testApp struct {
	sync    *mock.MockClientSyncService
	remote  *mock.MockClientRemoteService
	local   *mock.MockAccountService
	backups *mock.MockBackupService

	ui     *fakeUI
	out    *bytes.Buffer
	errOut *bytes.Buffer
	app    *App
}

func newTestApp(t *testing.T) *testApp {
	ctrl := gomock.NewController(t)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	ta := &testApp{
		sync:    mock.NewMockClientSyncService(ctrl),
		remote:  mock.NewMockClientRemoteService(ctrl),
		local:   mock.NewMockAccountService(ctrl),
		backups: mock.NewMockBackupService(ctrl),
		ui:      &fakeUI{TUI: tui.NewPlain(nil, out, "USD")},
		out:     out,
		errOut:  errOut,
	}
	ta.app = NewApp(&service.ClientServices{
		SyncService:    ta.sync,
		RemoteService:  ta.remote,
		AccountService: ta.local,
		BackupService:  ta.backups,
	}, ta.ui, errOut, logger.Nop())
	return ta
}

func (ta *testApp) run(args ...string) subcommands.ExitStatus {
	fs := flag.NewFlagSet("ledger-sync", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "ledger-sync")
	ta.app.Register(commander)
	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return commander.Execute(context.Background())
}

func int64Ptr(v int64) *int64 { return &v }

// ─────────────────────────────────────────────
// device and ledger commands
// ─────────────────────────────────────────────

func TestPing(t *testing.T) {
	ta := newTestApp(t)
	ta.remote.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.PingResponse, error) {
		traceID, ok := utils.GetTraceIDFromContext(ctx)
		assert.True(t, ok)
		assert.NotEmpty(t, traceID)
		return models.PingResponse{Status: "ok", DeviceID: "dev-1", DeviceName: "Pixel", Timestamp: time.Now()}, nil
	})

	require.Equal(t, subcommands.ExitSuccess, ta.run("ping"))
	assert.Contains(t, ta.out.String(), "# Pixel")
	assert.Contains(t, ta.out.String(), "`dev-1`")
}

func TestPing_Unreachable(t *testing.T) {
	ta := newTestApp(t)
	ta.remote.EXPECT().Ping(gomock.Any()).Return(models.PingResponse{}, adapter.ErrServerUnreachable)

	assert.Equal(t, subcommands.ExitFailure, ta.run("ping"))
	assert.Contains(t, ta.errOut.String(), "The phone is not reachable")
}

func TestInfo(t *testing.T) {
	ta := newTestApp(t)
	ta.remote.EXPECT().Info(gomock.Any()).Return(models.InfoResponse{App: "Ledger", Version: "1.4.0", Platform: "android", Port: 8080}, nil)

	require.Equal(t, subcommands.ExitSuccess, ta.run("info"))
	assert.Contains(t, ta.out.String(), "# Ledger 1.4.0")
	assert.Contains(t, ta.out.String(), "Port: 8080")
}

func TestAccounts_RemoteAndLocal(t *testing.T) {
	ta := newTestApp(t)
	summary := []models.AccountSummary{{Account: models.Account{ID: 3, Name: "Wallet"}, Balance: decimal.NewFromInt(12)}}

	ta.remote.EXPECT().GetAccounts(gomock.Any()).Return(summary, nil)
	require.Equal(t, subcommands.ExitSuccess, ta.run("accounts"))
	assert.Contains(t, ta.out.String(), "# Phone accounts")
	assert.Contains(t, ta.out.String(), "| 3 | Wallet |")

	ta.out.Reset()
	ta.local.EXPECT().GetAccounts(gomock.Any()).Return(summary, nil)
	require.Equal(t, subcommands.ExitSuccess, ta.run("accounts", "-local"))
	assert.Contains(t, ta.out.String(), "# Desktop accounts")
}

func TestTransactions(t *testing.T) {
	ta := newTestApp(t)
	ta.remote.EXPECT().GetAccountTransactions(gomock.Any(), int64(5)).Return([]models.SyncTransaction{{
		Date: models.MustParseDate("2024-01-02"), SignedAmount: decimal.NewFromInt(-4), Description: "tea",
	}}, nil)

	require.Equal(t, subcommands.ExitSuccess, ta.run("transactions", "-account", "5"))
	assert.Contains(t, ta.out.String(), "## Phone account 5")
	assert.Contains(t, ta.out.String(), "| 2024-01-02 | -$4.00 | tea |")
}

func TestTransactions_RequiresAccount(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, subcommands.ExitUsageError, ta.run("transactions"))
	assert.Contains(t, ta.errOut.String(), "-account")
}

// ─────────────────────────────────────────────
// backups
// ─────────────────────────────────────────────

func TestBackups_CopyNewest(t *testing.T) {
	ta := newTestApp(t)
	ta.remote.EXPECT().ListBackups(gomock.Any()).Return([]models.BackupInfo{
		{Path: "/b/newest.json.gz", Reason: "pre_sync"},
		{Path: "/b/older.json.gz", Reason: "pre_sync"},
	}, nil)

	require.Equal(t, subcommands.ExitSuccess, ta.run("backups", "-copy"))
	assert.Equal(t, "/b/newest.json.gz", ta.ui.clipboard)
	assert.Contains(t, ta.out.String(), "# Phone backups")
}

func TestRestore_Confirmed(t *testing.T) {
	ta := newTestApp(t)
	ta.ui.answer = true
	ta.backups.EXPECT().Restore(gomock.Any(), "snap.json.gz").Return(models.RestoreResponse{Success: true, Path: "/d/snap.json.gz"}, nil)

	require.Equal(t, subcommands.ExitSuccess, ta.run("restore", "-local", "-path", "snap.json.gz"))
	require.Len(t, ta.ui.prompts, 1)
	assert.Contains(t, ta.ui.prompts[0], "desktop ledger")
	assert.Contains(t, ta.out.String(), "`/d/snap.json.gz`")
}

func TestRestore_Declined(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, subcommands.ExitSuccess, ta.run("restore", "-path", "snap.json.gz"))
	assert.Contains(t, ta.errOut.String(), "restore cancelled")
}

func TestRestore_MissingPath(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, subcommands.ExitUsageError, ta.run("restore"))
}

// ─────────────────────────────────────────────
// sync
// ─────────────────────────────────────────────

func TestSync_PromptsAndExecutes(t *testing.T) {
	ta := newTestApp(t)
	ta.ui.answer = true
	wantPlan := models.SyncPlan{
		Direction: models.DesktopToMobile,
		Mode:      models.Replace,
		Accounts:  []models.AccountMapping{{LocalAccountID: 1, RemoteAccountID: int64Ptr(9)}},
	}

	gomock.InOrder(
		ta.sync.EXPECT().Prepare(gomock.Any(), wantPlan).Return(models.SyncPrepareResponse{
			Success: true, BackupCreated: true, BackupPath: "/p/b.json.gz",
			Comparisons: []models.SyncComparison{{AccountName: "Wallet", HasWarning: true, WarningMessage: "destination is newer"}},
			RequiresConfirmation: true,
		}, nil),
		ta.sync.EXPECT().Execute(gomock.Any(), wantPlan, true).Return(models.ClientSyncResult{
			Remote: models.SyncExecuteResponse{Success: true, Message: "Synced 1 account(s)"},
		}, nil),
	)

	status := ta.run("sync", "-direction", "desktop_to_mobile", "-mode", "replace", "-map", "1:9", "-yes")

	require.Equal(t, subcommands.ExitSuccess, status)
	require.Len(t, ta.ui.prompts, 1, "a warning forces the prompt even with -yes")
	assert.Equal(t, []string{"Wallet: destination is newer"}, ta.ui.warnings[0])
	assert.Contains(t, ta.out.String(), "# Sync plan")
	assert.Contains(t, ta.out.String(), "# Sync result")
}

func TestSync_YesSkipsPromptWithoutWarnings(t *testing.T) {
	ta := newTestApp(t)
	ta.sync.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(models.SyncPrepareResponse{Success: true, BackupCreated: true}, nil)
	ta.sync.EXPECT().Execute(gomock.Any(), gomock.Any(), true).Return(models.ClientSyncResult{
		Remote: models.SyncExecuteResponse{Success: true, Message: "ok"},
	}, nil)

	require.Equal(t, subcommands.ExitSuccess, ta.run("sync", "-direction", "mobile_to_desktop", "-mode", "create_new", "-map", ":4", "-yes"))
	assert.Empty(t, ta.ui.prompts)
}

func TestSync_DeclinedNeverExecutes(t *testing.T) {
	ta := newTestApp(t)
	ta.sync.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(models.SyncPrepareResponse{Success: true}, nil)

	require.Equal(t, subcommands.ExitSuccess, ta.run("sync", "-direction", "desktop_to_mobile", "-mode", "merge", "-map", "2:3"))
	assert.Contains(t, ta.errOut.String(), "nothing was changed")
}

func TestSync_LocalApplyFailureStillShowsRemote(t *testing.T) {
	ta := newTestApp(t)
	ta.ui.answer = true
	ta.sync.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(models.SyncPrepareResponse{Success: true}, nil)
	ta.sync.EXPECT().Execute(gomock.Any(), gomock.Any(), true).Return(models.ClientSyncResult{
		Remote: models.SyncExecuteResponse{Success: true, Message: "Packaged 1 account(s)"},
	}, service.ErrLocalApplyFailed)

	assert.Equal(t, subcommands.ExitFailure, ta.run("sync", "-direction", "mobile_to_desktop", "-mode", "replace", "-map", "1:2"))
	assert.Contains(t, ta.out.String(), "Packaged 1 account(s)")
	assert.Contains(t, ta.errOut.String(), service.ErrLocalApplyFailed.Error())
}

func TestSync_PartialFailureExitCode(t *testing.T) {
	ta := newTestApp(t)
	ta.ui.answer = true
	ta.sync.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(models.SyncPrepareResponse{Success: true}, nil)
	ta.sync.EXPECT().Execute(gomock.Any(), gomock.Any(), true).Return(models.ClientSyncResult{
		Remote: models.SyncExecuteResponse{Success: false, Message: "No accounts were synced"},
	}, nil)

	assert.Equal(t, subcommands.ExitFailure, ta.run("sync", "-direction", "desktop_to_mobile", "-mode", "merge", "-map", "1:2"))
}

func TestSync_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no direction", args: []string{"sync", "-mode", "merge", "-map", "1:2"}},
		{name: "bad mode", args: []string{"sync", "-direction", "desktop_to_mobile", "-mode", "overwrite", "-map", "1:2"}},
		{name: "no mapping", args: []string{"sync", "-direction", "desktop_to_mobile", "-mode", "merge"}},
		{name: "bad mapping", args: []string{"sync", "-direction", "desktop_to_mobile", "-mode", "merge", "-map", "a:2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			assert.Equal(t, subcommands.ExitUsageError, ta.run(tt.args...))
		})
	}
}

func TestSync_PrepareError(t *testing.T) {
	ta := newTestApp(t)
	ta.sync.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(models.SyncPrepareResponse{}, errors.New("boom"))

	assert.Equal(t, subcommands.ExitFailure, ta.run("sync", "-direction", "desktop_to_mobile", "-mode", "merge", "-map", "1:2"))
	assert.Contains(t, ta.errOut.String(), "sync: boom")
}
