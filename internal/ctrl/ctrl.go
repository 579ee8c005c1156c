package ctrl

import (
	"context"

	"github.com/we2pos/backend/internal/auth/jwt"
	"github.com/we2pos/backend/internal/dto"
	md "github.com/we2pos/backend/internal/models"
)

type AppRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)
	GetUserByID(ctx context.Context, userID int64) (*md.User, error)
	CreateUser(ctx context.Context, req *dto.SignUpRequest) (int64, error)
}

type AppCtrl interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.SafeUser, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID int64) (*dto.SafeUser, error)
}

type Controller struct {
	repo AppRepo
	au   jwt.Port
}

func New(repo AppRepo, au jwt.Port) *Controller {
	return &Controller{
		repo: repo,
		au:   au,
	}
}
