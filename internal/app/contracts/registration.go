package contracts

import (
	"context"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
)

type RegistrationUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Registration, error)
	RegisterProfessional(ctx context.Context, request *requests.RegisterProfessional) (*responses.Registration, error)
	SignUpPatient(ctx context.Context, request *requests.RegisterPatient) (*models.Session, error)
}
