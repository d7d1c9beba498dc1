// Package export publishes roster snapshots to object storage.
package export

import (
	"context"
	"errors"
)

// ErrDisabled is returned when no bucket is configured.
var ErrDisabled = errors.New("roster export is not configured")

type Location struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (Location, error)
}

// Disabled is used when EXPORT_S3_BUCKET is empty.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, []byte, string) (Location, error) {
	return Location{}, ErrDisabled
}
