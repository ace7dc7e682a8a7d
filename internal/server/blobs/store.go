// Package blobs keeps opaque binary payloads, currently user fingerprint
// templates, outside the relational store.
package blobs

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/safekey/internal/server/config"
)

// Store is a flat key → bytes object store. Get returns
// common.ErrorNotFound for unknown keys; Delete of an unknown key succeeds.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// FingerprintKey is the object key of one revision of a user's fingerprint
// template. Every write uses a fresh revision so the previous object stays
// readable until the row pointing at it has changed.
func FingerprintKey(userID, revision string) string {
	return fmt.Sprintf("users/%s/fingerprint/%s", userID, revision)
}

// New returns an S3-backed store when an endpoint is configured and an
// in-memory one otherwise.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.S3BaseEndpoint == "" {
		return NewMemoryStore(), nil
	}
	return NewS3Store(ctx, cfg)
}
