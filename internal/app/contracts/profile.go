package contracts

import (
	"context"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
)

type ProfileUsecase interface {
	GetUserProfile(ctx context.Context) (*responses.UserProfile, error)
	UpdateUserProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.Message, error)
	UpdateProfessionalProfile(ctx context.Context, request *requests.UpdateProfessionalProfile) (*responses.Message, error)
}
