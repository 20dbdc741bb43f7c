// Package api bundles every usecase behind one value, wired from the
// drivers and settings in a config.Bootstrap.
package api

import (
	"fmt"
	"net/http"
	"saude-connect/internal/app/config"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/services/core/admin"
	"saude-connect/internal/app/services/core/auth"
	"saude-connect/internal/app/services/core/bookings"
	"saude-connect/internal/app/services/core/profiles"
	"saude-connect/internal/app/services/core/registration"
	"saude-connect/internal/app/services/core/search"
	"saude-connect/internal/app/services/core/session"
	"saude-connect/internal/app/services/shared/apiclient"
	"saude-connect/internal/app/services/shared/events"
	"saude-connect/internal/app/services/shared/localstorage"
	"saude-connect/internal/app/services/shared/ratelimiter"
	"saude-connect/internal/app/services/shared/redis"
	"saude-connect/internal/app/services/shared/storage"
	"saude-connect/internal/pkg/constvars"

	"go.uber.org/zap"
)

type API struct {
	Session      contracts.SessionService
	Client       contracts.APIClient
	Auth         contracts.AuthUsecase
	Registration contracts.RegistrationUsecase
	Search       contracts.SearchUsecase
	Profiles     contracts.ProfileUsecase
	Admin        contracts.AdminUsecase
	Bookings     contracts.BookingUsecase
}

// New wires the API from bootstrap. A nil httpClient gets a plain client.
func New(bootstrap *config.Bootstrap, httpClient *http.Client) (*API, error) {
	sessionStorage, err := NewSessionStorage(bootstrap)
	if err != nil {
		return nil, err
	}
	return NewWithStorage(bootstrap, sessionStorage, httpClient), nil
}

func NewWithStorage(bootstrap *config.Bootstrap, sessionStorage contracts.SessionStorage, httpClient *http.Client) *API {
	log := bootstrap.Logger
	app := bootstrap.InternalConfig.App

	// Session
	sessionService := session.NewSessionService(sessionStorage, log)

	// Transport
	limiter := ratelimiter.NewOutboundLimiter(app.MaxRequestsPerSecond)
	apiClient := apiclient.NewAPIClient(app.BaseUrl, httpClient, sessionService, limiter, log)

	// Side channels
	diplomaArchive := NewDiplomaArchive(bootstrap)
	eventPublisher := NewEventPublisher(bootstrap)

	// Usecases
	authUsecase := auth.NewAuthUsecase(apiClient, sessionService, log)

	return &API{
		Session:      sessionService,
		Client:       apiClient,
		Auth:         authUsecase,
		Registration: registration.NewRegistrationUsecase(apiClient, authUsecase, log),
		Search:       search.NewSearchUsecase(apiClient, log),
		Profiles:     profiles.NewProfileUsecase(apiClient, sessionService, log),
		Admin:        admin.NewAdminUsecase(apiClient, diplomaArchive, log),
		Bookings:     bookings.NewBookingUsecase(apiClient, sessionService, eventPublisher, log),
	}
}

// NewSessionStorage picks the session substrate named by APP_SESSION_STORE.
func NewSessionStorage(bootstrap *config.Bootstrap) (contracts.SessionStorage, error) {
	app := bootstrap.InternalConfig.App
	switch app.SessionStore {
	case constvars.SessionStoreMemory:
		return localstorage.NewMemoryStorage(), nil
	case constvars.SessionStoreFile, "":
		return localstorage.NewFileStorage(app.SessionFilePath, bootstrap.Logger), nil
	case constvars.SessionStoreRedis:
		if bootstrap.Redis == nil {
			return nil, fmt.Errorf("session store %q needs REDIS_HOST to be set", app.SessionStore)
		}
		return redis.NewRedisSessionStorage(bootstrap.Redis, bootstrap.Logger, app.SessionKeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", app.SessionStore)
	}
}

func NewDiplomaArchive(bootstrap *config.Bootstrap) contracts.DiplomaArchive {
	if bootstrap.Minio == nil {
		return storage.NewDisabledDiplomaArchive()
	}
	return storage.NewMinioDiplomaArchive(bootstrap.Minio, bootstrap.InternalConfig.App.DiplomaBucketName, bootstrap.Logger)
}

// NewEventPublisher falls back to the no-op publisher when the broker is
// not configured or the queue cannot be declared.
func NewEventPublisher(bootstrap *config.Bootstrap) contracts.EventPublisher {
	if bootstrap.RabbitMQ == nil {
		return events.NewNoopEventPublisher(bootstrap.Logger)
	}
	queue := bootstrap.InternalConfig.App.EventsQueue
	publisher, err := events.NewRabbitMQEventPublisher(bootstrap.RabbitMQ, queue, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Warn("api.NewEventPublisher falling back to no-op publisher",
			zap.String("queue", queue),
			zap.Error(err),
		)
		return events.NewNoopEventPublisher(bootstrap.Logger)
	}
	return publisher
}
