package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/safekey/internal/dbx"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/activity"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/categories"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/settings"
	"github.com/dmitrijs2005/safekey/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either a *sql.DB or a
// *sql.Tx, so services can run several of them inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Categories(db dbx.DBTX) categories.Repository
	Credentials(db dbx.DBTX) credentials.Repository
	Settings(db dbx.DBTX) settings.Repository
	Challenges(db dbx.DBTX) challenges.Repository
	Activity(db dbx.DBTX) activity.Repository
}
