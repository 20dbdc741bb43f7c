package contracts

import (
	"context"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
)

type AdminUsecase interface {
	GetPendingProfessionals(ctx context.Context) ([]responses.PendingProfessional, error)
	ApproveProfessional(ctx context.Context, professionalID int64) (*responses.Message, error)
	RejectProfessional(ctx context.Context, professionalID int64, reason string) (*responses.Message, error)
	CreateCategory(ctx context.Context, request *requests.Category) (*responses.Message, error)
	UpdateCategory(ctx context.Context, categoryID int64, request *requests.Category) (*responses.Message, error)
	DeleteCategory(ctx context.Context, categoryID int64) (*responses.Message, error)
	ListActivities(ctx context.Context) ([]responses.Activity, error)
	CreateActivity(ctx context.Context, request *requests.Activity) (*responses.Message, error)
	UpdateActivity(ctx context.Context, activityID int64, request *requests.Activity) (*responses.Message, error)
	DeleteActivity(ctx context.Context, activityID int64) (*responses.Message, error)
	GetDiploma(ctx context.Context, professionalID int64) (*responses.Diploma, error)
	ArchiveDiploma(ctx context.Context, professionalID int64) (*responses.ArchivedDiploma, error)
}
