package contracts

import (
	"context"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
)

type SearchUsecase interface {
	SearchProfessionals(ctx context.Context, filters *requests.ProfessionalSearch) ([]responses.Professional, error)
	GetActivities(ctx context.Context) ([]responses.Activity, error)
	GetCategories(ctx context.Context) ([]responses.Category, error)
	GetProfessionalDetails(ctx context.Context, professionalID int64) (*responses.Professional, error)
	GetProfessionalActivities(ctx context.Context, professionalID int64) ([]responses.Activity, error)
}
