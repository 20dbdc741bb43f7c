package contracts

import (
	"context"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/dto/responses"
)

// SessionStorage is the key/value substrate the session is persisted in.
// Get reports found=false for a missing key without an error.
type SessionStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type DiplomaArchive interface {
	Store(ctx context.Context, diploma *responses.Diploma) (*responses.ArchivedDiploma, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event *models.ClientEvent) error
}
