package ctrl

import (
	"context"
	"errors"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/we2pos/backend/internal/auth"
	"github.com/we2pos/backend/internal/config"
	"github.com/we2pos/backend/internal/dto"
	"github.com/we2pos/backend/internal/repo"
	"go.uber.org/zap"
)

// NormalizeEmail lowers and trims an email so both the uniqueness check
// and the login lookup share one key and case-duplicates cannot appear.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c *Controller) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SafeUser, error) {
	const op = "auth.SignUp.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	req.Email = NormalizeEmail(req.Email)

	_, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	id, err := c.repo.CreateUser(ctx, req)
	if err != nil {
		// Racing signup lost to the unique index. Same outcome as the
		// pre-check conflict.
		if errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	res, err := c.repo.GetUserByID(ctx, id)
	if err != nil {
		zap.L().Error(
			"failed to load created user",
			zap.String("op", op),
			zap.Int64("id", id),
			zap.Error(err),
		)

		return nil, err
	}

	return dto.NewSafeUser(res), nil
}

func (c *Controller) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	const op = "auth.Login.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetUserByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.PasswordsMatch(req.HashPassword, res.HashPassword) {
		return nil, auth.ErrInvalidCredentials
	}

	// Checked only after a successful match so the distinct wording
	// cannot be used to probe for accounts.
	if res.IsActive != config.ActiveFlag {
		return nil, auth.ErrUserNotActive
	}

	access, err := c.au.NewToken(ctx, res.ID, res.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{AccessToken: access}, nil
}

func (c *Controller) Me(ctx context.Context, userID int64) (*dto.SafeUser, error) {
	const op = "auth.Me.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := c.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return dto.NewSafeUser(res), nil
}
