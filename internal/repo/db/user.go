package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/opentracing/opentracing-go"
	"github.com/we2pos/backend/internal/dto"
	md "github.com/we2pos/backend/internal/models"
	"github.com/we2pos/backend/internal/repo"
	"go.uber.org/zap"
)

// MySQL error number for a duplicate entry on a unique key.
const duplicateEntry = 1062

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByEmailQ, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		zap.L().Error("failed to get user by email", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID int64) (*md.User, error) {
	const op = "users.GetUserByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByIDQ, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}

		zap.L().Error("failed to get user by id", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	return res, nil
}

// CreateUser inserts the row and returns its assigned id. A duplicate
// email surfaces as repo.ErrAlreadyExists, which lets the store's
// unique index resolve racing signups.
func (r *Repository) CreateUser(ctx context.Context, req *dto.SignUpRequest) (int64, error) {
	const op = "users.CreateUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(
		ctx,
		userCreateQ,
		req.Email,
		req.HashPassword,
		req.Firstname,
		req.Lastname,
		nullable(req.Nickname),
		nullable(req.Birthday),
		"Y",
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntry {
			return 0, repo.ErrAlreadyExists
		}

		zap.L().Error("failed to create user", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		zap.L().Error("failed to get inserted id", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	return id, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
