package bookstate

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=bookstate

type Repository interface {
	GetByID(ctx context.Context, id string) (State, error)
	List(ctx context.Context) ([]State, error)
}
