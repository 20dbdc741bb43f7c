package profiles

import (
	"context"
	"math"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type profileUsecase struct {
	APIClient      contracts.APIClient
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewProfileUsecase(
	apiClient contracts.APIClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		APIClient:      apiClient,
		SessionService: sessionService,
		Log:            logger,
	}
}

// GetUserProfile lays the server profile over the cached user and caches
// the result. Admins have no profile resource and get the session record.
// A profile whose user_id is not the session user is never merged.
func (uc *profileUsecase) GetUserProfile(ctx context.Context) (*responses.UserProfile, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("profileUsecase.GetUserProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, ok := uc.SessionService.User(ctx)
	if !ok {
		return nil, exceptions.ErrAuthRequired(nil)
	}
	base, err := user.Fields()
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	var call models.APICall
	switch user.UserType {
	case constvars.UserTypeAdmin:
		return buildUserProfile(base), nil
	case constvars.UserTypePatient:
		call = models.APICall{
			Operation:  constvars.OperationGetPatientProfile,
			PathParams: []string{strconv.FormatInt(user.ID, 10)},
		}
	case constvars.UserTypeProfessional:
		call = models.APICall{
			Operation:  constvars.OperationGetProfessionalProfile,
			PathParams: []string{strconv.FormatInt(professionalResourceID(user, base), 10)},
		}
	default:
		return nil, exceptions.ErrUnknownUserType(user.UserType)
	}

	overlay := map[string]interface{}{}
	if _, err := uc.APIClient.Do(ctx, call, &overlay); err != nil {
		uc.Log.Error("profileUsecase.GetUserProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserTypeKey, user.UserType),
			zap.Error(err),
		)
		return nil, err
	}
	if owner, ok := integralField(overlay, "user_id"); ok && owner != user.ID {
		uc.Log.Warn("profileUsecase.GetUserProfile profile belongs to another user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, user.ID),
			zap.Int64("profile_user_id", owner),
		)
		return nil, exceptions.ErrNotFound(nil, call.Operation, constvars.ErrClientProfileNotFound)
	}
	normalizeDocumentField(overlay)
	merged := utils.MergeFields(base, overlay)

	uc.cacheUser(ctx, merged)

	uc.Log.Info("profileUsecase.GetUserProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return buildUserProfile(merged), nil
}

// UpdateUserProfile sends the changes to the resource that owns the
// caller's profile and, on success, folds them into the cached user.
func (uc *profileUsecase) UpdateUserProfile(ctx context.Context, request *requests.UpdateProfile) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("profileUsecase.UpdateUserProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, ok := uc.SessionService.User(ctx)
	if !ok {
		return nil, exceptions.ErrAuthRequired(nil)
	}
	base, err := user.Fields()
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	utils.SanitizeUpdateProfileRequest(request)

	call := models.APICall{JSON: request}
	switch user.UserType {
	case constvars.UserTypePatient:
		call.Operation = constvars.OperationUpdatePatientProfile
		call.PathParams = []string{strconv.FormatInt(user.ID, 10)}
	case constvars.UserTypeProfessional:
		call.Operation = constvars.OperationUpdateProfessionalProfile
		call.PathParams = []string{strconv.FormatInt(professionalResourceID(user, base), 10)}
	case constvars.UserTypeAdmin:
		call.Operation = constvars.OperationUpdateUserProfile
		call.PathParams = []string{strconv.FormatInt(user.ID, 10)}
	default:
		return nil, exceptions.ErrUnknownUserType(user.UserType)
	}

	response := &responses.Message{}
	if _, err := uc.APIClient.Do(ctx, call, response); err != nil {
		uc.Log.Error("profileUsecase.UpdateUserProfile error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, call.Operation),
			zap.Error(err),
		)
		return nil, err
	}

	uc.foldIntoSession(ctx, base, request)

	uc.Log.Info("profileUsecase.UpdateUserProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return response, nil
}

// UpdateProfessionalProfile goes out as multipart when a new diploma is
// attached and as JSON otherwise.
func (uc *profileUsecase) UpdateProfessionalProfile(ctx context.Context, request *requests.UpdateProfessionalProfile) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("profileUsecase.UpdateProfessionalProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, ok := uc.SessionService.User(ctx)
	if !ok {
		return nil, exceptions.ErrAuthRequired(nil)
	}
	if !user.IsProfessional() {
		return nil, exceptions.ErrClientValidation(constvars.ErrClientProfessionalOnly)
	}
	base, err := user.Fields()
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	call := models.APICall{
		Operation:  constvars.OperationUpdateProfessionalProfile,
		PathParams: []string{strconv.FormatInt(professionalResourceID(user, base), 10)},
	}
	if request.Diploma != nil {
		if !utils.IsAllowedDiplomaFile(request.Diploma.Filename) {
			return nil, exceptions.ErrClientValidation(constvars.ErrClientDiplomaInvalidFormat)
		}
		form := &models.MultipartForm{}
		form.AddIfPresent("name", request.Name)
		form.AddIfPresent("phone", request.Phone)
		form.AddIfPresent("bio", request.Bio)
		contentType := request.Diploma.ContentType
		if contentType == "" {
			contentType = utils.ContentTypeForFile(request.Diploma.Filename)
		}
		form.AttachFile(constvars.FormFieldDiploma, request.Diploma.Filename, contentType, request.Diploma.Content)
		call.Form = form
	} else {
		call.JSON = request
	}

	response := &responses.Message{}
	if _, err := uc.APIClient.Do(ctx, call, response); err != nil {
		uc.Log.Error("profileUsecase.UpdateProfessionalProfile error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.foldIntoSession(ctx, base, &requests.UpdateProfile{
		Name:  request.Name,
		Phone: request.Phone,
		Bio:   request.Bio,
	})

	uc.Log.Info("profileUsecase.UpdateProfessionalProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return response, nil
}

func (uc *profileUsecase) foldIntoSession(ctx context.Context, base map[string]interface{}, changes interface{}) {
	data, err := json.Marshal(changes)
	if err != nil {
		return
	}
	overlay := map[string]interface{}{}
	if err := json.Unmarshal(data, &overlay); err != nil {
		return
	}
	uc.cacheUser(ctx, utils.MergeFields(base, overlay))
}

// cacheUser replaces the session user with fields. A failure only costs a
// stale cache, so it is logged and not returned.
func (uc *profileUsecase) cacheUser(ctx context.Context, fields map[string]interface{}) {
	requestID := utils.RequestIDFromContext(ctx)
	raw, err := json.Marshal(fields)
	if err == nil {
		var record *models.UserRecord
		record, err = models.ParseUserRecord(raw)
		if err == nil {
			err = uc.SessionService.Replace(ctx, record)
		}
	}
	if err != nil {
		uc.Log.Warn("profileUsecase.cacheUser error replacing session user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// professionalResourceID is the professional record id, which differs from
// the user id. It is known once a profile has been merged or when the login
// response carried it.
func professionalResourceID(user *models.UserRecord, fields map[string]interface{}) int64 {
	for _, key := range []string{"profile_id", "professional_id"} {
		if id, ok := integralField(fields, key); ok {
			return id
		}
	}
	return user.ID
}

// normalizeDocumentField moves the patient resource's document key to
// document_number, the name used everywhere else.
func normalizeDocumentField(fields map[string]interface{}) {
	document, ok := fields["document"]
	if !ok {
		return
	}
	if _, exists := fields["document_number"]; !exists && document != nil {
		fields["document_number"] = document
	}
	delete(fields, "document")
}

func buildUserProfile(fields map[string]interface{}) *responses.UserProfile {
	profile := &responses.UserProfile{Fields: fields}
	profile.ID, _ = integralField(fields, "id")
	profile.ProfileID, _ = integralField(fields, "profile_id")
	profile.Email, _ = fields["email"].(string)
	profile.UserType, _ = fields["user_type"].(string)
	profile.Name, _ = fields["name"].(string)
	return profile
}

func integralField(fields map[string]interface{}, key string) (int64, bool) {
	value, ok := fields[key].(float64)
	if !ok || value != math.Trunc(value) {
		return 0, false
	}
	return int64(value), true
}
