// Package repomanager provides the RepositoryManager for the supported SQL
// backends, wiring repository constructors and goose migrations together.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrijs2005/safekey/internal/dbx"
	"github.com/dmitrijs2005/safekey/internal/server/migrations"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/activity"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/categories"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/settings"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Driver names accepted by Open and NewRepositoryManager.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// SQLRepositoryManager serves both drivers; only the migration set and the
// goose dialect differ between them.
type SQLRepositoryManager struct {
	dialect    string
	migrations fs.FS
	dir        string
}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Credentials(db dbx.DBTX) credentials.Repository {
	return credentials.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Challenges(db dbx.DBTX) challenges.Repository {
	return challenges.NewSQLRepository(db)
}

func (m *SQLRepositoryManager) Activity(db dbx.DBTX) activity.Repository {
	return activity.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// RunMigrations applies the embedded migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(m.migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, m.dir); err != nil {
		return err
	}
	return nil
}

// NewRepositoryManager constructs a RepositoryManager for the given driver.
func NewRepositoryManager(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres:
		return &SQLRepositoryManager{dialect: "postgres", migrations: migrations.Postgres, dir: "postgres"}, nil
	case DriverSQLite:
		return &SQLRepositoryManager{dialect: "sqlite3", migrations: migrations.SQLite, dir: "sqlite"}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the database and checks the connection.
//
// SQLite connections get foreign key enforcement and a sortable time format
// through DSN parameters, and the pool is limited to one connection so an
// in-memory database is shared by every caller.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		dsn = sqliteDSN(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func sqliteDSN(dsn string) string {
	params := url.Values{}
	if !strings.Contains(dsn, "foreign_keys") {
		params.Add("_pragma", "foreign_keys(1)")
	}
	if !strings.Contains(dsn, "_time_format") {
		params.Add("_time_format", "sqlite")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + params.Encode()
}
