package rescue

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=rescue

type Repository interface {
	Create(ctx context.Context, r *Rescue) error
	List(ctx context.Context) ([]Rescue, error)
	ListByBook(ctx context.Context, bookID string) ([]Rescue, error)
	ListByRequester(ctx context.Context, requesterID string) ([]Rescue, error)
	ExistsForBook(ctx context.Context, bookID string) (bool, error)
	ExistsForBookAndUser(ctx context.Context, bookID, userID string) (bool, error)
	// BookOwner returns the owner of bookID or ErrBookNotFound.
	BookOwner(ctx context.Context, bookID string) (string, error)
}
