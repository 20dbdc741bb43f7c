package contracts

import (
	"context"
	"saude-connect/internal/app/models"
)

type APIClient interface {
	// Do runs the call and decodes a 2xx body into out. ok is false with a
	// nil error when the route policy turned the failure into an empty result.
	Do(ctx context.Context, call models.APICall, out interface{}) (ok bool, err error)
	DoRaw(ctx context.Context, call models.APICall) (*models.RawResponse, error)
}
