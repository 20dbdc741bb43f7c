package contracts

import (
	"context"
	"saude-connect/internal/app/models"
)

type SessionService interface {
	Save(ctx context.Context, token string, rawUser []byte) (*models.Session, error)
	Replace(ctx context.Context, user *models.UserRecord) error
	Clear(ctx context.Context)
	Current(ctx context.Context) (*models.Session, bool)
	IsAuthenticated(ctx context.Context) bool
	Token(ctx context.Context) (string, bool)
	User(ctx context.Context) (*models.UserRecord, bool)
	UserType(ctx context.Context) (string, bool)
	TokenClaims(ctx context.Context) (*models.TokenClaims, error)
}
