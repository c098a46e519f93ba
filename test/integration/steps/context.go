// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/infra/dependency"
	"github.com/pocket-ledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the state of one scenario.
type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	vars     map[string]string

	db    *mock.Db
	redis *redis.Client
	clock *mock.Time

	accessToken  string
	refreshToken string
}

type response struct {
	status int
	body   any
}

var (
	serverInit    sync.Once
	accountsURL   string
	guestURL      string
	suiteClock    = mock.NewTime()
	suiteDB       *mock.Db
	suiteRedis    *redis.Client
	suiteAccounts *httptest.Server
	suiteGuest    *httptest.Server
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if suiteAccounts != nil {
			suiteAccounts.Close()
		}
		if suiteGuest != nil {
			suiteGuest.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the guest API server is running$`, test.theGuestAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Account steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am registered and logged in as "([^"]*)"$`, test.iAmRegisteredAndLoggedInAs)

	// Ledger setup steps
	ctx.Given(`^I logged a (\d+(?:\.\d+)?) cash expense in "([^"]*)"$`, test.iLoggedACashExpenseIn)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps, also used to arrange state in Given blocks
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, test.iRememberTheResponseFieldAs)

	// Storage assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the redis key "([^"]*)" should exist$`, test.theRedisKeyShouldExist)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.vars = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.clock = suiteClock
	t.clock.Reset()

	if suiteDB != nil {
		_ = suiteDB.ClearDB()
	}
	if suiteRedis != nil {
		_ = mock.ClearRedis(suiteRedis)
	}
}

// startServers wires two API servers sharing one clock: one over SQLite
// with accounts enabled, one over Redis serving the guest ledger.
func (t *testContext) startServers() {
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)

		suiteDB = mock.NewDb()
		suiteRedis = mock.NewRedis()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Metrics.Enabled = true
		cfg.Ledger.GuestMode = false

		relational := dependency.NewRelationalStore(config.StoreDriverSQLite, suiteDB.Database, suiteClock)
		accounts := dependency.NewInjector(context.Background(), cfg, relational, suiteClock)
		suiteAccounts = httptest.NewServer(accounts.Router.Setup(cfg.Server.Environment))
		accountsURL = suiteAccounts.URL

		keyValue := dependency.NewKeyValueStore(suiteRedis, suiteClock)
		guest := dependency.NewInjector(context.Background(), cfg, keyValue, suiteClock)
		suiteGuest = httptest.NewServer(guest.Router.Setup(cfg.Server.Environment))
		guestURL = suiteGuest.URL
	})

	t.db = suiteDB
	t.redis = suiteRedis
}
