package book

import (
	"context"

	"sharebook/internal/bookstate"
	"sharebook/internal/platform/postalcode"
	"sharebook/internal/rescue"
	"sharebook/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Book, error)
	ListExcludingOwner(ctx context.Context, ownerID string) ([]Book, error)
}

type UserDirectory interface {
	GetByID(ctx context.Context, id string) (user.User, error)
	ListByIDs(ctx context.Context, ids []string) (map[string]user.User, error)
}

type GenreCatalog interface {
	FindAllByUserID(ctx context.Context, userID string) ([]string, error)
	FindAllByBookID(ctx context.Context, bookID string) ([]string, error)
	FindAllByBookIDs(ctx context.Context, bookIDs []string) (map[string][]string, error)
	FindGenderName(ctx context.Context, bookID string) ([]string, error)
}

type StateCatalog interface {
	FindOne(ctx context.Context, id string) (bookstate.State, error)
}

type RescueLedger interface {
	FindIfABookWasRequested(ctx context.Context, bookID string) (bool, error)
	FindIfUserHasRequestedBook(ctx context.Context, bookID, userID string) (bool, error)
	ListByBook(ctx context.Context, bookID string) ([]rescue.Rescue, error)
}

type ObjectStorage interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
	URL(ctx context.Context, bucket, key string) (string, error)
	Remove(ctx context.Context, bucket string, keys ...string) error
}

type RegionResolver interface {
	Resolve(ctx context.Context, cep string) (postalcode.Region, error)
}
