package storage

import (
	"context"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/pkg/dto/responses"
	"saude-connect/internal/pkg/exceptions"
)

type disabledDiplomaArchive struct{}

// NewDisabledDiplomaArchive is wired when no MinIO endpoint is configured.
func NewDisabledDiplomaArchive() contracts.DiplomaArchive {
	return disabledDiplomaArchive{}
}

func (disabledDiplomaArchive) Store(ctx context.Context, diploma *responses.Diploma) (*responses.ArchivedDiploma, error) {
	return nil, exceptions.ErrDiplomaArchiveMissing()
}
