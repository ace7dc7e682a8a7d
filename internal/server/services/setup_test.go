package services

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/safekey/internal/logging"
	"github.com/dmitrijs2005/safekey/internal/server/blobs"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/safekey/internal/timex"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

// testEnv wires every service to one migrated in-memory SQLite database.
type testEnv struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	clock    *timex.FakeClock
	blobs    *blobs.MemoryStore
	users    *UserService
	vault    *VaultService
	settings *SettingsService
	otp      *OtpService
	activity *ActivityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repomanager.Open(ctx, repomanager.DriverSQLite, "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := repomanager.NewRepositoryManager(repomanager.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(ctx, db))

	clock := timex.NewFakeClock(epoch)
	store := blobs.NewMemoryStore()
	log := logging.NewNopLogger()

	return &testEnv{
		db:       db,
		repos:    m,
		clock:    clock,
		blobs:    store,
		users:    NewUserService(db, m, store, clock, log),
		vault:    NewVaultService(db, m, clock, log),
		settings: NewSettingsService(db, m),
		otp:      NewOtpService(db, m, clock, 5*time.Minute, log),
		activity: NewActivityService(db, m, clock, log),
	}
}

func (e *testEnv) mustUser(t *testing.T, first string) *models.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), UserInput{FirstName: first, LastName: "Tester", PinCode: 1234})
	require.NoError(t, err)
	return u
}

func (e *testEnv) mustCategory(t *testing.T, userID, name string) *models.Category {
	t.Helper()
	c, err := e.vault.CreateCategory(context.Background(), userID, name)
	require.NoError(t, err)
	return c
}

func (e *testEnv) mustCredential(t *testing.T, userID, categoryID, platform string) *models.Credential {
	t.Helper()
	c, err := e.vault.CreateCredential(context.Background(), userID, CredentialFields{
		CategoryID:        categoryID,
		PlatformName:      platform,
		AccountIdentifier: "tester@example.org",
		SecretValue:       "s3cr3t",
	})
	require.NoError(t, err)
	return c
}

func (e *testEnv) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func strPtr(s string) *string { return &s }
