package search

import (
	"context"
	"net/url"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
	"saude-connect/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type searchUsecase struct {
	APIClient contracts.APIClient
	Log       *zap.Logger
}

func NewSearchUsecase(apiClient contracts.APIClient, logger *zap.Logger) contracts.SearchUsecase {
	return &searchUsecase{
		APIClient: apiClient,
		Log:       logger,
	}
}

// SearchProfessionals only sends the filters that were given. No match is
// an empty slice, never an error.
func (uc *searchUsecase) SearchProfessionals(ctx context.Context, filters *requests.ProfessionalSearch) ([]responses.Professional, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("searchUsecase.SearchProfessionals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	if filters != nil {
		utils.SanitizeProfessionalSearch(filters)
		setIfPresent(query, "activity", filters.Activity)
		setIfPresent(query, "category", filters.Category)
		setIfPresent(query, "name", filters.Name)
	}

	professionals := []responses.Professional{}
	ok, err := uc.APIClient.Do(ctx, models.APICall{
		Operation: constvars.OperationSearchProfessionals,
		Query:     query,
	}, &professionals)
	if err != nil {
		uc.Log.Error("searchUsecase.SearchProfessionals error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Any(constvars.LoggingQueryParamsKey, query),
			zap.Error(err),
		)
		return nil, err
	}
	if !ok || professionals == nil {
		professionals = []responses.Professional{}
	}

	uc.Log.Info("searchUsecase.SearchProfessionals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(professionals)),
	)
	return professionals, nil
}

func (uc *searchUsecase) GetActivities(ctx context.Context) ([]responses.Activity, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("searchUsecase.GetActivities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.listActivities(ctx, models.APICall{Operation: constvars.OperationGetActivities})
}

func (uc *searchUsecase) GetCategories(ctx context.Context) ([]responses.Category, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("searchUsecase.GetCategories called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	categories := []responses.Category{}
	ok, err := uc.APIClient.Do(ctx, models.APICall{Operation: constvars.OperationGetCategories}, &categories)
	if err != nil {
		return nil, err
	}
	if !ok || categories == nil {
		return []responses.Category{}, nil
	}
	return categories, nil
}

func (uc *searchUsecase) GetProfessionalDetails(ctx context.Context, professionalID int64) (*responses.Professional, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("searchUsecase.GetProfessionalDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
	)

	professional := &responses.Professional{}
	_, err := uc.APIClient.Do(ctx, models.APICall{
		Operation:  constvars.OperationGetProfessionalDetails,
		PathParams: []string{strconv.FormatInt(professionalID, 10)},
	}, professional)
	if err != nil {
		uc.Log.Error("searchUsecase.GetProfessionalDetails error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
			zap.Error(err),
		)
		return nil, err
	}
	return professional, nil
}

func (uc *searchUsecase) GetProfessionalActivities(ctx context.Context, professionalID int64) ([]responses.Activity, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("searchUsecase.GetProfessionalActivities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
	)
	return uc.listActivities(ctx, models.APICall{
		Operation:  constvars.OperationGetProfessionalActivities,
		PathParams: []string{strconv.FormatInt(professionalID, 10)},
	})
}

func (uc *searchUsecase) listActivities(ctx context.Context, call models.APICall) ([]responses.Activity, error) {
	activities := []responses.Activity{}
	ok, err := uc.APIClient.Do(ctx, call, &activities)
	if err != nil {
		uc.Log.Error("searchUsecase.listActivities error calling backend",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingOperationKey, call.Operation),
			zap.Error(err),
		)
		return nil, err
	}
	if !ok || activities == nil {
		return []responses.Activity{}, nil
	}
	return activities, nil
}

func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
