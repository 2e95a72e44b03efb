package user

import (
	"context"

	"sharebook/internal/platform/postalcode"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=user

type Repository interface {
	Create(ctx context.Context, u *User, genreIDs []string) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	ListByIDs(ctx context.Context, ids []string) ([]User, error)
	UpdatePhoto(ctx context.Context, userID, photoKey string) error
}

// PhotoStorage is the part of the object store used for profile photos.
type PhotoStorage interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
	URL(ctx context.Context, bucket, key string) (string, error)
	Remove(ctx context.Context, bucket string, keys ...string) error
}

// RegionResolver confirms that a postal code exists before it is stored.
type RegionResolver interface {
	Resolve(ctx context.Context, cep string) (postalcode.Region, error)
}
