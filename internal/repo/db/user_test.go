package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/we2pos/backend/internal/dto"
	"github.com/we2pos/backend/internal/repo"
)

var userRows = []string{
	"id", "email", "hash_password", "firstname", "lastname", "nickname",
	"profile_img", "birthday", "refresh_token", "password_reset_token",
	"password_reset_expires_at", "verify_email_at", "token_version",
	"isactive", "created_by", "updated_by", "created_at", "updated_at",
}

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Repository{conn: sqlx.NewDb(db, "sqlmock")}, mock
}

func addUserRow(rows *sqlmock.Rows, id int64, email string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, email, "stored-hash", "John", "Doe", nil,
		nil, nil, nil, nil,
		nil, nil, 0,
		"Y", nil, nil, now, now,
	)
}

func TestRepository_GetUserByEmail(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
		WithArgs("test@example.com").
		WillReturnRows(addUserRow(sqlmock.NewRows(userRows), 7, "test@example.com"))

	res, err := r.GetUserByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "stored-hash", res.HashPassword)
	assert.Equal(t, "Y", res.IsActive)

	mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows(userRows))

	_, err = r.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetUserByID(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
		WithArgs(int64(7)).
		WillReturnRows(addUserRow(sqlmock.NewRows(userRows), 7, "test@example.com"))

	res, err := r.GetUserByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", res.Email)

	mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(userRows))

	_, err = r.GetUserByID(ctx, 8)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateUser(t *testing.T) {
	r, mock := newTestRepo(t)
	ctx := context.Background()

	req := &dto.SignUpRequest{
		Email:        "test@example.com",
		HashPassword: "stored-hash",
		Firstname:    "John",
		Lastname:     "Doe",
	}

	mock.ExpectExec(regexp.QuoteMeta(userCreateQ)).
		WithArgs(
			req.Email, req.HashPassword, req.Firstname, req.Lastname,
			nullable(""), nullable(""), "Y",
		).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := r.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	// A racing signup loses to the unique index; same conflict as the
	// pre-check.
	mock.ExpectExec(regexp.QuoteMeta(userCreateQ)).
		WithArgs(
			req.Email, req.HashPassword, req.Firstname, req.Lastname,
			nullable(""), nullable(""), "Y",
		).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err = r.CreateUser(ctx, req)
	assert.ErrorIs(t, err, repo.ErrAlreadyExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
