package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (Snapshot, error)
	Save(ctx context.Context, s Snapshot) error
	Delete(ctx context.Context, id uuid.UUID) error
}
