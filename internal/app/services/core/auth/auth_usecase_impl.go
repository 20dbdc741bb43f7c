package auth

import (
	"context"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	APIClient      contracts.APIClient
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewAuthUsecase(
	apiClient contracts.APIClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		APIClient:      apiClient,
		SessionService: sessionService,
		Log:            logger,
	}
}

// Login posts the credentials and stores the returned token and user. The
// previous session, if any, is only replaced once the server accepts them.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*models.Session, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("authUsecase.Login rejected malformed request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMalformedLogin(err, exceptions.FormatFirstValidationError(err))
	}

	var response responses.Login
	ok, err := uc.APIClient.Do(ctx, models.APICall{
		Operation: constvars.OperationLogin,
		JSON:      request,
	}, &response)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !ok {
		return nil, exceptions.ErrLoginServer(nil, 0, constvars.FallbackLogin)
	}

	session, err := uc.SessionService.Save(ctx, response.Token, response.User)
	if err != nil {
		uc.Log.Error("authUsecase.Login error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, session.User.ID),
		zap.String(constvars.LoggingUserTypeKey, session.User.UserType),
	)
	return session, nil
}

// Logout only forgets the local session; the backend keeps no server-side
// session to revoke.
func (uc *authUsecase) Logout(ctx context.Context) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	uc.SessionService.Clear(ctx)
}

func (uc *authUsecase) IsAuthenticated(ctx context.Context) bool {
	return uc.SessionService.IsAuthenticated(ctx)
}

func (uc *authUsecase) GetUserData(ctx context.Context) (*models.UserRecord, bool) {
	return uc.SessionService.User(ctx)
}

func (uc *authUsecase) GetToken(ctx context.Context) (string, bool) {
	return uc.SessionService.Token(ctx)
}

func (uc *authUsecase) GetUserType(ctx context.Context) (string, bool) {
	return uc.SessionService.UserType(ctx)
}

func (uc *authUsecase) TokenClaims(ctx context.Context) (*models.TokenClaims, error) {
	return uc.SessionService.TokenClaims(ctx)
}
