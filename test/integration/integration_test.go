//go:build integration

// Package integration runs the Gherkin features against an in-process API
// backed by in-memory SQLite and miniredis.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/pocket-ledger/backend/test/integration/steps"
)

// opts can be overridden on the command line, e.g.
// go test -tags integration ./test/integration -godog.format=pretty
var opts = godog.Options{
	Format:      "progress",
	Paths:       []string{"features"},
	Output:      colors.Colored(os.Stdout),
	Concurrency: 1,
	Strict:      true,
}

func init() {
	godog.BindCommandLineFlags("godog.", &opts)
}

func TestFeatures(t *testing.T) {
	o := opts
	o.TestingT = t
	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		o.Tags = tags
	}

	status := godog.TestSuite{
		Name:                 "pocket-ledger",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options:              &o,
	}.Run()
	if status != 0 {
		t.Fatalf("feature suite failed with status %d", status)
	}
}
