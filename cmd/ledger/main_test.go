package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerRunner runs commands against one SQLite file in a temp directory.
type ledgerRunner struct {
	t      *testing.T
	dbPath string
}

func newLedgerRunner(t *testing.T) *ledgerRunner {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return &ledgerRunner{t: t, dbPath: filepath.Join(dir, "ledger.db")}
}

func (r *ledgerRunner) run(args ...string) (string, error) {
	r.t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--sqlite-path", r.dbPath, "--timezone", "UTC"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (r *ledgerRunner) mustRun(args ...string) string {
	r.t.Helper()
	out, err := r.run(args...)
	require.NoError(r.t, err, out)
	return out
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{
		"log", "history", "export", "analytics", "breakdown", "insights", "theme",
		"achievements", "showcase", "budget", "limit", "category", "card",
	} {
		assert.NotNil(t, findCommand(root, name), "%s subcommand should exist", name)
	}

	budget := findCommand(root, "budget")
	require.NotNil(t, budget)
	for _, name := range []string{"add", "list", "delete"} {
		assert.NotNil(t, findCommand(budget, name), "budget %s should exist", name)
	}

	flag := root.PersistentFlags().Lookup("store")
	require.NotNil(t, flag)
	assert.Equal(t, "sqlite", flag.DefValue)
}

func TestLogAndHistory(t *testing.T) {
	r := newLedgerRunner(t)

	out := r.mustRun("log", "4.50", "Coffee", "-d", "Flat white")
	assert.Contains(t, out, "Logged 4.50 in Coffee (cash)")
	assert.Contains(t, out, "Streak: 1 day(s)")
	assert.Contains(t, out, "Achievement unlocked: First Step")

	r.mustRun("log", "12", "Transport")

	out = r.mustRun("history")
	assert.Contains(t, out, "Flat white")
	assert.Contains(t, out, "Transport")
	assert.Contains(t, out, "16.50")
}

func TestLog_Rejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown category", []string{"log", "3", "Groceries"}},
		{"negative amount", []string{"log", "-3", "Coffee"}},
		{"card without card id", []string{"log", "3", "Coffee", "--payment", "card"}},
		{"malformed amount", []string{"log", "three", "Coffee"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newLedgerRunner(t)
			_, err := r.run(tt.args...)
			assert.Error(t, err)

			out := r.mustRun("history")
			assert.Contains(t, out, "No expenses yet")
		})
	}
}

func TestBudgetAlertAndLimit(t *testing.T) {
	r := newLedgerRunner(t)

	out := r.mustRun("budget", "add", "Coffee", "10", "--period", "week")
	assert.Contains(t, out, "Coffee 10.00 per week")

	out = r.mustRun("log", "9", "Coffee")
	assert.Contains(t, out, "Budget danger: Coffee spent 9.00 of 10.00 this week")

	out = r.mustRun("budget", "list")
	assert.Contains(t, out, "danger")

	_, err := r.run("budget", "add", "Coffee", "20", "--period", "week")
	assert.Error(t, err, "a second weekly Coffee budget should be refused")

	r.mustRun("limit", "set", "50", "--period", "week")
	r.mustRun("log", "60", "Shopping")
	out = r.mustRun("limit", "status")
	assert.Contains(t, out, "Spent 69.00 of 50.00 this week (100.0%)")
	assert.Contains(t, out, "Over limit")
}

func TestCategoriesAndCards(t *testing.T) {
	r := newLedgerRunner(t)

	r.mustRun("category", "add", "Books", "--icon", "book")
	out := r.mustRun("category", "list")
	assert.Contains(t, out, "Books")
	assert.Contains(t, out, "Coffee")

	_, err := r.run("category", "add", "coffee")
	assert.Error(t, err)

	_, err = r.run("card", "add", "Travel", "12a4")
	assert.Error(t, err)

	r.mustRun("card", "add", "Travel", "4242")
	out = r.mustRun("card", "list")
	assert.Contains(t, out, "Travel")
	assert.Contains(t, out, "4242")
}

func TestInsightsAndTheme(t *testing.T) {
	r := newLedgerRunner(t)

	out := r.mustRun("insights")
	assert.Contains(t, out, "[1/5]")

	out = r.mustRun("insights", "--rotate")
	assert.Contains(t, out, "[2/5]")

	out = r.mustRun("insights")
	assert.Contains(t, out, "[2/5]", "rotation index should persist between runs")

	out = r.mustRun("theme")
	assert.Contains(t, out, "rgb(232, 209, 167)")
}

func TestAnalyticsAndBreakdown(t *testing.T) {
	r := newLedgerRunner(t)
	r.mustRun("log", "30", "Coffee")
	r.mustRun("log", "10", "Health")

	out := r.mustRun("analytics", "--period", "week")
	assert.Contains(t, out, "Expenses: 2")
	assert.Contains(t, out, "Total: 40.00")

	out = r.mustRun("breakdown")
	assert.Contains(t, out, "75.0%")

	_, err := r.run("analytics", "--period", "decade")
	assert.Error(t, err)
}

func TestAchievementsAndShowcase(t *testing.T) {
	r := newLedgerRunner(t)
	r.mustRun("log", "5", "Coffee")

	out := r.mustRun("achievements")
	assert.Contains(t, out, "first_expense")
	assert.Contains(t, out, "showcased")

	out = r.mustRun("showcase", "first_expense", "--remove")
	assert.Contains(t, out, "Removed from showcase: first_expense")

	_, err := r.run("showcase", "century_club")
	assert.Error(t, err, "locked achievements cannot be showcased")
}

func TestExportCSV(t *testing.T) {
	r := newLedgerRunner(t)
	r.mustRun("log", "4.5", "Coffee", "-d", "Flat white")

	out := r.mustRun("export", "--format", "csv", "-o", "-")
	assert.Contains(t, out, "Date,Category,Amount,Payment,Card,Description")
	assert.Contains(t, out, "Coffee,4.50,cash,,Flat white")

	file := filepath.Join(t.TempDir(), "ledger.xlsx")
	out = r.mustRun("export", "-o", file)
	assert.Contains(t, out, "Exported 1 expense(s)")
	assert.FileExists(t, file)
}

func TestInvalidLogLevel(t *testing.T) {
	r := newLedgerRunner(t)
	_, err := r.run("--log-level", "loud", "history")
	assert.Error(t, err)
}
