package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/charmbracelet/glamour"
)

const wordWrap = 100

// Print renders md for the terminal.
func (t *TUI) Print(md string) error {
	if t.plain {
		_, err := fmt.Fprint(t.out, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wordWrap))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	_, err = fmt.Fprint(t.out, out)
	return err
}

func dateOrDash(d *models.Date) string {
	if d == nil || d.IsZero() {
		return "-"
	}
	return d.String()
}

// cell keeps user text from breaking a markdown table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// AccountsMarkdown lists accounts of one device.
func (t *TUI) AccountsMarkdown(title string, accounts []models.AccountSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(accounts) == 0 {
		b.WriteString("_No accounts._\n")
		return b.String()
	}

	b.WriteString("| ID | Name | Transactions | Latest | Balance |\n")
	b.WriteString("|---:|------|-------------:|--------|--------:|\n")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %d | %s | %d | %s | %s |\n",
			a.ID, cell(a.Name), a.TransactionCount, dateOrDash(a.LatestTransactionDate), FormatMoney(a.Balance, t.currency))
	}
	return b.String()
}

// TransactionsMarkdown lists one account's transactions, oldest first as
// stored.
func (t *TUI) TransactionsMarkdown(title string, transactions []models.SyncTransaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	if len(transactions) == 0 {
		b.WriteString("_No transactions._\n")
		return b.String()
	}

	b.WriteString("| Date | Amount | Description | Reason |\n")
	b.WriteString("|------|-------:|-------------|--------|\n")
	for _, tx := range transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			tx.Date.String(), FormatMoney(tx.SignedAmount, t.currency), cell(tx.Description), cell(tx.Reason))
	}
	return b.String()
}

// BackupsMarkdown lists snapshots newest first.
func BackupsMarkdown(title string, backups []models.BackupInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(backups) == 0 {
		b.WriteString("_No backups._\n")
		return b.String()
	}

	b.WriteString("| Created | Reason | Tag | Size | Path |\n")
	b.WriteString("|---------|--------|-----|-----:|------|\n")
	for _, info := range backups {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | `%s` |\n",
			info.CreatedAt.Format("2006-01-02 15:04:05"), info.Reason, info.Tag, info.Size, info.Path)
	}
	return b.String()
}

// PrepareMarkdown describes what Execute would do.
func PrepareMarkdown(plan models.SyncPlan, resp models.SyncPrepareResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sync plan: %s, %s\n\n", plan.Direction, plan.Mode)

	if resp.BackupCreated {
		fmt.Fprintf(&b, "Backup on the destination: `%s`\n\n", resp.BackupPath)
	} else {
		b.WriteString("**No backup could be taken on the destination.**\n\n")
	}

	b.WriteString("| Account | Source | Source latest | Destination | Destination latest | Classified |\n")
	b.WriteString("|---------|-------:|---------------|------------:|--------------------|-----------:|\n")
	for _, c := range resp.Comparisons {
		fmt.Fprintf(&b, "| %s | %d | %s | %d | %s | %d |\n",
			cell(c.AccountName), c.SourceCount, dateOrDash(c.SourceLatestDate),
			c.DestCount, dateOrDash(c.DestLatestDate), c.DestClassifiedCount)
	}

	if warnings := Warnings(resp); len(warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return b.String()
}

// Warnings collects the per-account warnings and the classification note.
func Warnings(resp models.SyncPrepareResponse) []string {
	var warnings []string
	for _, c := range resp.Comparisons {
		if c.HasWarning {
			warnings = append(warnings, fmt.Sprintf("%s: %s", c.AccountName, c.WarningMessage))
		}
	}
	if resp.HasClassificationWarning {
		warnings = append(warnings, fmt.Sprintf("%d classified transaction(s) on the destination would lose their reason.", resp.TotalClassifiedTransactions))
	}
	return warnings
}

// ResultMarkdown reports a finished sync, including the local apply of a
// MobileToDesktop run.
func ResultMarkdown(result models.ClientSyncResult) string {
	var b strings.Builder
	b.WriteString("# Sync result\n\n")
	writeExecute(&b, "Phone", result.Remote)

	if result.BackupResult != nil {
		fmt.Fprintf(&b, "\nDesktop backup: `%s`\n", result.BackupResult.Path)
	}
	if result.Local != nil {
		b.WriteString("\n")
		writeExecute(&b, "Desktop", *result.Local)
	}
	return b.String()
}

func writeExecute(b *strings.Builder, side string, resp models.SyncExecuteResponse) {
	status := "ok"
	if !resp.Success {
		status = "failed"
	}
	fmt.Fprintf(b, "## %s (%s)\n\n%s\n\n", side, status, resp.Message)

	if len(resp.Results) == 0 {
		return
	}

	b.WriteString("| Account | Status | Before | After | Duplicates skipped | Added | Error |\n")
	b.WriteString("|---------|--------|-------:|------:|-------------------:|------:|-------|\n")
	for _, r := range resp.Results {
		fmt.Fprintf(b, "| %s | %s | %d | %d | %d | %d | %s |\n",
			cell(r.AccountName), r.Status, r.PreviousTransactionCount, r.NewTransactionCount,
			r.DuplicatesSkipped, r.NewOnlyAdded, cell(r.ErrorMessage))
	}
}
