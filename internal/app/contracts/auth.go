package contracts

import (
	"context"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/dto/requests"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*models.Session, error)
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	GetUserData(ctx context.Context) (*models.UserRecord, bool)
	GetToken(ctx context.Context) (string, bool)
	GetUserType(ctx context.Context) (string, bool)
	TokenClaims(ctx context.Context) (*models.TokenClaims, error)
}
