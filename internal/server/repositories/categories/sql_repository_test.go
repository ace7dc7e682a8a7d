package categories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
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
	cols       = []string{"id", "name", "user_id"}
	insertQ    = `(?s)^INSERT\s+INTO\s+categories\s*\(id,\s*name,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`
	selectByID = `(?s)^SELECT\s+id,\s*name,\s*user_id\s+FROM\s+categories\s+WHERE\s+id\s*=\s*\$1$`
	renameQ    = `(?s)^UPDATE\s+categories\s+SET\s+name\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1$`
)

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs(sqlmock.AnyArg(), "Banking", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &models.Category{Name: "Banking", UserID: "u-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		dbErr error
		check func(t *testing.T, err error)
	}{
		{
			name:  "duplicate name",
			dbErr: &pgconn.PgError{Code: "23505"},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, common.ErrorAlreadyExists) },
		},
		{
			name:  "unknown owner",
			dbErr: &pgconn.PgError{Code: "23503"},
			check: func(t *testing.T, err error) { assert.True(t, common.IsNotFoundKind(err, common.KindUser)) },
		},
		{
			name:  "driver failure",
			dbErr: errors.New("conn reset"),
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "db error: conn reset") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()
			mock.ExpectExec(insertQ).WillReturnError(tt.dbErr)

			_, err := repo.Create(context.Background(), &models.Category{ID: "c-1", Name: "Banking", UserID: "u-1"})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestGetByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectByID).WithArgs("c-1").WillReturnRows(sqlmock.NewRows(cols).AddRow("c-1", "Banking", "u-1"))
	mock.ExpectQuery(selectByID).WithArgs("c-2").WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, &models.Category{ID: "c-1", Name: "Banking", UserID: "u-1"}, got)

	_, err = repo.GetByID(context.Background(), "c-2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*user_id\s+FROM\s+categories\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+name\s*$`
	mock.ExpectQuery(q).WithArgs("u-1").WillReturnRows(sqlmock.NewRows(cols).
		AddRow("c-1", "Banking", "u-1").
		AddRow("c-2", "Social", "u-1"))

	got, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, []models.Category{
		{ID: "c-1", Name: "Banking", UserID: "u-1"},
		{ID: "c-2", Name: "Social", UserID: "u-1"},
	}, got)
}

func TestListAll_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*user_id\s+FROM\s+categories\s+ORDER\s+BY\s+name\s*$`
	mock.ExpectQuery(q).WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListAll_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*user_id\s+FROM\s+categories`
	mock.ExpectQuery(q).WillReturnRows(sqlmock.NewRows(cols).
		AddRow("c-1", "Banking", "u-1").
		RowError(0, errors.New("cursor broke")))

	_, err := repo.ListAll(context.Background())
	assert.ErrorContains(t, err, "db error: cursor broke")
}

func TestRename(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(renameQ).WithArgs("c-1", "Finance").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectByID).WithArgs("c-1").WillReturnRows(sqlmock.NewRows(cols).AddRow("c-1", "Finance", "u-1"))

	got, err := repo.Rename(context.Background(), "c-1", "Finance")
	require.NoError(t, err)
	assert.Equal(t, "Finance", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRename_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(renameQ).WithArgs("c-1", "Taken").WillReturnError(errors.New("UNIQUE constraint failed: categories.name"))
	mock.ExpectExec(renameQ).WithArgs("ghost", "Any").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Rename(context.Background(), "c-1", "Taken")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = repo.Rename(context.Background(), "ghost", "Any")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+categories\s+WHERE\s+id\s*=\s*\$1$`
	mock.ExpectExec(q).WithArgs("c-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("c-1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "c-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "c-1"), common.ErrorNotFound)
}
