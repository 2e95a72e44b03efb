package genre

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=genre

type Repository interface {
	List(ctx context.Context) ([]Genre, error)
	IDsByUser(ctx context.Context, userID string) ([]string, error)
	IDsByBook(ctx context.Context, bookID string) ([]string, error)
	IDsByBooks(ctx context.Context, bookIDs []string) (map[string][]string, error)
	NamesByBook(ctx context.Context, bookID string) ([]string, error)
}
