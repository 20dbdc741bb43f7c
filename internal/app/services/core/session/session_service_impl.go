package session

import (
	"context"
	"errors"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

var errMissingToken = errors.New("login response carried no token")

type sessionService struct {
	Storage contracts.SessionStorage
	Log     *zap.Logger
}

func NewSessionService(storage contracts.SessionStorage, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		Storage: storage,
		Log:     logger,
	}
}

// Save stores token and the user exactly as received. Both are validated
// first so a bad login response never leaves half a session behind.
func (svc *sessionService) Save(ctx context.Context, token string, rawUser []byte) (*models.Session, error) {
	requestID := utils.RequestIDFromContext(ctx)
	svc.Log.Info("sessionService.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if strings.TrimSpace(token) == "" {
		return nil, exceptions.ErrInvalidUserRecord(errMissingToken)
	}
	user, err := models.ParseUserRecord(rawUser)
	if err != nil {
		svc.Log.Error("sessionService.Save invalid user record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidUserRecord(err)
	}

	err = svc.Storage.Set(ctx, constvars.SessionTokenKey, token)
	if err == nil {
		err = svc.Storage.Set(ctx, constvars.SessionUserKey, string(user.Raw))
	}
	if err != nil {
		svc.Log.Error("sessionService.Save error persisting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		svc.Clear(ctx)
		return nil, exceptions.ErrSessionStore(err)
	}
	svc.removeLegacyUser(ctx)

	svc.Log.Info("sessionService.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingUserTypeKey, user.UserType),
	)
	return &models.Session{Token: token, User: user}, nil
}

// Replace swaps the cached user, keeping the token.
func (svc *sessionService) Replace(ctx context.Context, user *models.UserRecord) error {
	requestID := utils.RequestIDFromContext(ctx)
	svc.Log.Info("sessionService.Replace called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	raw := []byte(user.Raw)
	if len(raw) == 0 {
		var err error
		raw, err = json.Marshal(user)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
	}
	if _, err := models.ParseUserRecord(raw); err != nil {
		return exceptions.ErrInvalidUserRecord(err)
	}

	if err := svc.Storage.Set(ctx, constvars.SessionUserKey, string(raw)); err != nil {
		svc.Log.Error("sessionService.Replace error persisting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSessionStore(err)
	}
	return nil
}

// Clear removes every session key. Storage failures are logged, never returned.
func (svc *sessionService) Clear(ctx context.Context) {
	requestID := utils.RequestIDFromContext(ctx)
	svc.Log.Info("sessionService.Clear called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	for _, key := range []string{constvars.SessionTokenKey, constvars.SessionUserKey, constvars.SessionLegacyUserKey} {
		if err := svc.Storage.Remove(ctx, key); err != nil {
			svc.Log.Warn("sessionService.Clear error removing key",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStorageKey, key),
				zap.Error(err),
			)
		}
	}
}

// Current reads the session and heals it: a token without a user, a user
// without a token, or a user that does not parse clears every key. A
// storage read failure is reported as no session and leaves storage alone.
func (svc *sessionService) Current(ctx context.Context) (*models.Session, bool) {
	requestID := utils.RequestIDFromContext(ctx)
	svc.Log.Debug("sessionService.Current called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, tokenFound, err := svc.Storage.Get(ctx, constvars.SessionTokenKey)
	if err != nil {
		svc.logReadFailure(requestID, constvars.SessionTokenKey, err)
		return nil, false
	}
	rawUser, userFound, err := svc.Storage.Get(ctx, constvars.SessionUserKey)
	if err != nil {
		svc.logReadFailure(requestID, constvars.SessionUserKey, err)
		return nil, false
	}

	migrateLegacy := false
	if !userFound {
		rawUser, userFound, err = svc.Storage.Get(ctx, constvars.SessionLegacyUserKey)
		if err != nil {
			svc.logReadFailure(requestID, constvars.SessionLegacyUserKey, err)
			return nil, false
		}
		migrateLegacy = userFound
	}

	if !tokenFound && !userFound {
		return nil, false
	}
	if strings.TrimSpace(token) == "" || !userFound {
		svc.Log.Warn("sessionService.Current clearing partial session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool("token_present", tokenFound),
			zap.Bool("user_present", userFound),
		)
		svc.Clear(ctx)
		return nil, false
	}

	user, err := models.ParseUserRecord([]byte(rawUser))
	if err != nil {
		svc.Log.Warn("sessionService.Current clearing corrupt user record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		svc.Clear(ctx)
		return nil, false
	}

	if migrateLegacy {
		svc.migrateLegacyUser(ctx, rawUser)
	}
	return &models.Session{Token: token, User: user}, true
}

func (svc *sessionService) IsAuthenticated(ctx context.Context) bool {
	_, ok := svc.Current(ctx)
	return ok
}

func (svc *sessionService) Token(ctx context.Context) (string, bool) {
	session, ok := svc.Current(ctx)
	if !ok {
		return "", false
	}
	return session.Token, true
}

func (svc *sessionService) User(ctx context.Context) (*models.UserRecord, bool) {
	session, ok := svc.Current(ctx)
	if !ok {
		return nil, false
	}
	return session.User, true
}

func (svc *sessionService) UserType(ctx context.Context) (string, bool) {
	session, ok := svc.Current(ctx)
	if !ok {
		return "", false
	}
	return session.User.UserType, true
}

// TokenClaims decodes the bearer token without checking its signature.
func (svc *sessionService) TokenClaims(ctx context.Context) (*models.TokenClaims, error) {
	token, ok := svc.Token(ctx)
	if !ok {
		return nil, exceptions.ErrAuthRequired(nil)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		svc.Log.Debug("sessionService.TokenClaims token is not a JWT",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrNotAJWT(err)
	}

	result := &models.TokenClaims{Claims: claims}
	if userID, ok := claims["user_id"].(float64); ok {
		result.UserID = int64(userID)
	}
	result.UserType, _ = claims["user_type"].(string)
	result.ExpiresAt = numericDate(claims["exp"])
	result.IssuedAt = numericDate(claims["iat"])
	return result, nil
}

func numericDate(value interface{}) *time.Time {
	seconds, ok := value.(float64)
	if !ok {
		return nil
	}
	t := time.Unix(int64(seconds), 0).UTC()
	return &t
}

func (svc *sessionService) migrateLegacyUser(ctx context.Context, rawUser string) {
	requestID := utils.RequestIDFromContext(ctx)
	if err := svc.Storage.Set(ctx, constvars.SessionUserKey, rawUser); err != nil {
		svc.Log.Warn("sessionService.migrateLegacyUser error writing user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	svc.removeLegacyUser(ctx)
	svc.Log.Info("sessionService.migrateLegacyUser moved legacy user key",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
}

func (svc *sessionService) removeLegacyUser(ctx context.Context) {
	if err := svc.Storage.Remove(ctx, constvars.SessionLegacyUserKey); err != nil {
		svc.Log.Warn("sessionService.removeLegacyUser error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
	}
}

func (svc *sessionService) logReadFailure(requestID, key string, err error) {
	svc.Log.Warn("sessionService.Current storage read failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStorageKey, key),
		zap.Error(err),
	)
}
