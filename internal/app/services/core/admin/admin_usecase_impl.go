package admin

import (
	"context"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

type adminUsecase struct {
	APIClient      contracts.APIClient
	DiplomaArchive contracts.DiplomaArchive
	Log            *zap.Logger
}

func NewAdminUsecase(
	apiClient contracts.APIClient,
	diplomaArchive contracts.DiplomaArchive,
	logger *zap.Logger,
) contracts.AdminUsecase {
	return &adminUsecase{
		APIClient:      apiClient,
		DiplomaArchive: diplomaArchive,
		Log:            logger,
	}
}

func (uc *adminUsecase) GetPendingProfessionals(ctx context.Context) ([]responses.PendingProfessional, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.GetPendingProfessionals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	pending := []responses.PendingProfessional{}
	ok, err := uc.APIClient.Do(ctx, models.APICall{Operation: constvars.OperationGetPendingProfessionals}, &pending)
	if err != nil {
		uc.Log.Error("adminUsecase.GetPendingProfessionals error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !ok || pending == nil {
		pending = []responses.PendingProfessional{}
	}

	uc.Log.Info("adminUsecase.GetPendingProfessionals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(pending)),
	)
	return pending, nil
}

func (uc *adminUsecase) ApproveProfessional(ctx context.Context, professionalID int64) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.ApproveProfessional called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
	)
	return uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationApproveProfessional,
		PathParams: []string{formatID(professionalID)},
	})
}

// RejectProfessional sends the reason only when one was given.
func (uc *adminUsecase) RejectProfessional(ctx context.Context, professionalID int64, reason string) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.RejectProfessional called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
	)
	return uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationRejectProfessional,
		PathParams: []string{formatID(professionalID)},
		JSON:       &requests.RejectProfessional{Reason: strings.TrimSpace(reason)},
	})
}

func (uc *adminUsecase) CreateCategory(ctx context.Context, request *requests.Category) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.CreateCategory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	if err := validateCategory(request); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, models.APICall{
		Operation: constvars.OperationCreateCategory,
		JSON:      request,
	})
}

func (uc *adminUsecase) UpdateCategory(ctx context.Context, categoryID int64, request *requests.Category) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.UpdateCategory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
	)
	if err := validateCategory(request); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationUpdateCategory,
		PathParams: []string{formatID(categoryID)},
		JSON:       request,
	})
}

func (uc *adminUsecase) DeleteCategory(ctx context.Context, categoryID int64) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.DeleteCategory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCategoryIDKey, categoryID),
	)
	return uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationDeleteCategory,
		PathParams: []string{formatID(categoryID)},
	})
}

func (uc *adminUsecase) ListActivities(ctx context.Context) ([]responses.Activity, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.ListActivities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	activities := []responses.Activity{}
	ok, err := uc.APIClient.Do(ctx, models.APICall{Operation: constvars.OperationListActivities}, &activities)
	if err != nil {
		uc.Log.Error("adminUsecase.ListActivities error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !ok || activities == nil {
		activities = []responses.Activity{}
	}
	return activities, nil
}

func (uc *adminUsecase) CreateActivity(ctx context.Context, request *requests.Activity) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.CreateActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	if err := validateActivity(request); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, models.APICall{
		Operation: constvars.OperationCreateActivity,
		JSON:      request,
	})
}

func (uc *adminUsecase) UpdateActivity(ctx context.Context, activityID int64, request *requests.Activity) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.UpdateActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingActivityIDKey, activityID),
	)
	if err := validateActivity(request); err != nil {
		return nil, err
	}
	return uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationUpdateActivity,
		PathParams: []string{formatID(activityID)},
		JSON:       request,
	})
}

func (uc *adminUsecase) DeleteActivity(ctx context.Context, activityID int64) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.DeleteActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingActivityIDKey, activityID),
	)
	return uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationDeleteActivity,
		PathParams: []string{formatID(activityID)},
	})
}

// GetDiploma downloads the file a professional registered with. The name
// comes from Content-Disposition when the server sends one.
func (uc *adminUsecase) GetDiploma(ctx context.Context, professionalID int64) (*responses.Diploma, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.GetDiploma called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
	)

	raw, err := uc.APIClient.DoRaw(ctx, models.APICall{
		Operation:  constvars.OperationGetDiploma,
		PathParams: []string{formatID(professionalID)},
	})
	if err != nil {
		uc.Log.Error("adminUsecase.GetDiploma error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
			zap.Error(err),
		)
		return nil, err
	}
	if raw == nil {
		return nil, exceptions.ErrNotFound(nil, constvars.OperationGetDiploma, constvars.ErrClientDiplomaNotFound)
	}

	contentType := raw.ContentType
	if contentType == "" {
		contentType = utils.ContentTypeForFile(raw.Filename)
	}
	diploma := &responses.Diploma{
		ProfessionalID: professionalID,
		Filename:       raw.Filename,
		ContentType:    contentType,
		Content:        raw.Body,
	}

	uc.Log.Info("adminUsecase.GetDiploma succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
		zap.Int(constvars.LoggingResponseLengthKey, len(diploma.Content)),
	)
	return diploma, nil
}

// ArchiveDiploma downloads the diploma and keeps a copy in the archive
// bucket, typically right before an approval decision.
func (uc *adminUsecase) ArchiveDiploma(ctx context.Context, professionalID int64) (*responses.ArchivedDiploma, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("adminUsecase.ArchiveDiploma called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
	)

	diploma, err := uc.GetDiploma(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	archived, err := uc.DiplomaArchive.Store(ctx, diploma)
	if err != nil {
		uc.Log.Error("adminUsecase.ArchiveDiploma error storing diploma",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
			zap.Error(err),
		)
		return nil, err
	}
	return archived, nil
}

func (uc *adminUsecase) mutate(ctx context.Context, call models.APICall) (*responses.Message, error) {
	requestID := utils.RequestIDFromContext(ctx)
	response := &responses.Message{}
	if _, err := uc.APIClient.Do(ctx, call, response); err != nil {
		uc.Log.Error("adminUsecase.mutate error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, call.Operation),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Log.Info("adminUsecase.mutate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, call.Operation),
	)
	return response, nil
}

func validateCategory(request *requests.Category) error {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func validateActivity(request *requests.Activity) error {
	request.Name = strings.TrimSpace(request.Name)
	request.Description = strings.TrimSpace(request.Description)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
