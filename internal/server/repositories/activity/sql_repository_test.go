package activity

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewSQLRepository(db), mock, db
}

var (
	at      = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	cols    = []string{"id", "user_id", "action", "target", "details", "logged_at"}
	insertQ = `(?s)^INSERT\s+INTO\s+activity_logs\s*\(id,\s*user_id,\s*action,\s*target,\s*details,\s*logged_at\)\s*VALUES\s*\(\$1,.*\$6\)\s*$`
)

func TestAppend(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	details := "via web"
	mock.ExpectExec(insertQ).
		WithArgs(sqlmock.AnyArg(), "u-1", "LOGIN", "session", "via web", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertQ).
		WithArgs(sqlmock.AnyArg(), "u-1", "VIEW", "credential cr-1", nil, at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Append(context.Background(), &models.ActivityLogEntry{UserID: "u-1", Action: "LOGIN", Target: "session", Details: &details, Timestamp: at})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)

	_, err = repo.Append(context.Background(), &models.ActivityLogEntry{UserID: "u-1", Action: "VIEW", Target: "credential cr-1", Timestamp: at})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).WillReturnError(errors.New("FOREIGN KEY constraint failed"))
	mock.ExpectExec(insertQ).WillReturnError(errors.New("disk full"))

	_, err := repo.Append(context.Background(), &models.ActivityLogEntry{ID: "a-1", UserID: "ghost", Action: "A", Target: "T", Timestamp: at})
	assert.True(t, common.IsNotFoundKind(err, common.KindUser))

	_, err = repo.Append(context.Background(), &models.ActivityLogEntry{ID: "a-2", UserID: "u-1", Action: "A", Target: "T", Timestamp: at})
	assert.ErrorContains(t, err, "db error: disk full")
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)FROM\s+activity_logs\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+logged_at,\s*id$`
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(sqlmock.NewRows(cols).
		AddRow("a-1", "u-1", "LOGIN", "session", nil, at).
		AddRow("a-2", "u-1", "VIEW", "credential", "github", at.Add(time.Minute)))

	got, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Details)
	require.NotNil(t, got[1].Details)
	assert.Equal(t, "github", *got[1].Details)
	assert.Equal(t, at.Add(time.Minute), got[1].Timestamp)
}

func TestListAll_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)FROM\s+activity_logs\s+ORDER\s+BY\s+logged_at,\s*id$`
	mock.ExpectQuery(q).WillReturnError(errors.New("offline"))

	_, err := repo.ListAll(context.Background())
	assert.ErrorContains(t, err, "db error: offline")
}

func TestDeleteAndClear(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+activity_logs\s+WHERE\s+id\s*=\s*\$1$`).WithArgs("a-1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+activity_logs$`).WillReturnResult(sqlmock.NewResult(0, 3))

	assert.ErrorIs(t, repo.Delete(context.Background(), "a-1"), common.ErrorNotFound)

	n, err := repo.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
