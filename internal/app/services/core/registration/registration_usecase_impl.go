package registration

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

	"go.uber.org/zap"
)

type registrationUsecase struct {
	APIClient   contracts.APIClient
	AuthUsecase contracts.AuthUsecase
	Log         *zap.Logger
}

func NewRegistrationUsecase(
	apiClient contracts.APIClient,
	authUsecase contracts.AuthUsecase,
	logger *zap.Logger,
) contracts.RegistrationUsecase {
	return &registrationUsecase{
		APIClient:   apiClient,
		AuthUsecase: authUsecase,
		Log:         logger,
	}
}

func (uc *registrationUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Registration, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("registrationUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeRegisterPatientRequest(request)
	if err := checkPasswordConfirmation(request.Password, request.ConfirmPassword); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("registrationUsecase.RegisterPatient rejected invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	response := &responses.Registration{}
	_, err := uc.APIClient.Do(ctx, models.APICall{
		Operation: constvars.OperationRegisterPatient,
		JSON:      request,
	}, response)
	if err != nil {
		uc.Log.Error("registrationUsecase.RegisterPatient error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("registrationUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, response.UserID),
	)
	return response, nil
}

// RegisterProfessional sends the profile and diploma as one multipart form.
// Offered activities go out as parallel repeated fields, one entry each.
func (uc *registrationUsecase) RegisterProfessional(ctx context.Context, request *requests.RegisterProfessional) (*responses.Registration, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("registrationUsecase.RegisterProfessional called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeRegisterProfessionalRequest(request)
	if err := checkPasswordConfirmation(request.Password, request.ConfirmPassword); err != nil {
		return nil, err
	}
	if request.Diploma == nil || len(request.Diploma.Content) == 0 {
		return nil, exceptions.ErrClientValidation(constvars.ErrClientDiplomaRequired)
	}
	if !utils.IsAllowedDiplomaFile(request.Diploma.Filename) {
		return nil, exceptions.ErrClientValidation(constvars.ErrClientDiplomaInvalidFormat)
	}
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("registrationUsecase.RegisterProfessional rejected invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	response := &responses.Registration{}
	_, err := uc.APIClient.Do(ctx, models.APICall{
		Operation: constvars.OperationRegisterProfessional,
		Form:      buildProfessionalForm(request),
	}, response)
	if err != nil {
		uc.Log.Error("registrationUsecase.RegisterProfessional error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("registrationUsecase.RegisterProfessional succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, response.UserID),
	)
	return response, nil
}

// SignUpPatient registers and then logs in with the same credentials.
func (uc *registrationUsecase) SignUpPatient(ctx context.Context, request *requests.RegisterPatient) (*models.Session, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("registrationUsecase.SignUpPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if _, err := uc.RegisterPatient(ctx, request); err != nil {
		return nil, err
	}
	return uc.AuthUsecase.Login(ctx, &requests.Login{
		Email:    request.Email,
		Password: request.Password,
	})
}

func checkPasswordConfirmation(password, confirmation string) error {
	if confirmation != "" && confirmation != password {
		return exceptions.ErrClientValidation(constvars.ErrClientPasswordsDoNotMatch)
	}
	return nil
}

func buildProfessionalForm(request *requests.RegisterProfessional) *models.MultipartForm {
	form := &models.MultipartForm{}
	form.Add("name", request.Name)
	form.Add("email", request.Email)
	form.Add("password", request.Password)
	form.AddIfPresent("phone", request.Phone)
	form.Add("document_number", request.DocumentNumber)
	form.AddIfPresent("bio", request.Bio)

	for _, activity := range request.Activities {
		form.Add(constvars.FormFieldActivities, strconv.FormatInt(activity.ActivityID, 10))
		form.Add(constvars.FormFieldDescriptions, activity.Description)
		form.Add(constvars.FormFieldExperienceYears, strconv.Itoa(activity.ExperienceYears))
		form.Add(constvars.FormFieldPrices, strconv.FormatFloat(activity.Price, 'f', -1, 64))
	}

	contentType := request.Diploma.ContentType
	if contentType == "" {
		contentType = utils.ContentTypeForFile(request.Diploma.Filename)
	}
	form.AttachFile(constvars.FormFieldDiploma, request.Diploma.Filename, contentType, request.Diploma.Content)
	return form
}
