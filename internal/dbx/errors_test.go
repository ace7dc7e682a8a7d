package dbx

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupConstraintDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)
	_, err = db.Exec(`
CREATE TABLE parents (id TEXT PRIMARY KEY, name TEXT NOT NULL UNIQUE);
CREATE TABLE children (id TEXT PRIMARY KEY, parent_id TEXT NOT NULL REFERENCES parents(id));
`)
	require.NoError(t, err)
	return db
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	db := setupConstraintDB(t)

	_, err := db.Exec(`INSERT INTO parents (id, name) VALUES ('p1', 'dup')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO parents (id, name) VALUES ('p2', 'dup')`)
	require.Error(t, err)

	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(fmt.Errorf("db error: %w", err)), "wrapped errors must be classified")
	assert.False(t, IsForeignKeyViolation(err))
}

func TestIsForeignKeyViolation_SQLite(t *testing.T) {
	db := setupConstraintDB(t)

	_, err := db.Exec(`INSERT INTO children (id, parent_id) VALUES ('c1', 'ghost')`)
	require.Error(t, err)

	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestClassification_Postgres(t *testing.T) {
	unique := fmt.Errorf("db error: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("db error: %w", &pgconn.PgError{Code: "23503"})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(fk))
}

func TestClassification_Other(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsForeignKeyViolation(sql.ErrNoRows))
}

func TestRequireAffected(t *testing.T) {
	assert.NoError(t, RequireAffected(sqlmock.NewResult(0, 1)))
	assert.ErrorIs(t, RequireAffected(sqlmock.NewResult(0, 0)), common.ErrorNotFound)

	err := RequireAffected(sqlmock.NewErrorResult(errors.New("no count")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: no count")
}

func TestNullHelpers(t *testing.T) {
	assert.Nil(t, NullIfEmpty(""))
	assert.Equal(t, "x", NullIfEmpty("x"))

	assert.Nil(t, NullString(nil))
	s := "https://example.org"
	assert.Equal(t, s, NullString(&s))

	assert.Nil(t, StringPtr(sql.NullString{}))
	got := StringPtr(sql.NullString{String: "v", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "v", *got)
}
