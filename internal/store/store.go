// Package store holds the persistence adapters for the admin bearer token.
package store

import (
	"context"
	"errors"
)

// ErrNoToken is returned by Get when no token has been stored.
var ErrNoToken = errors.New("no admin token stored")

// TokenStore persists the admin bearer token between requests or runs.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
