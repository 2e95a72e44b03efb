package rescue

import (
	"errors"
	"time"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrOwnBook          = errors.New("cannot request your own book")
	ErrAlreadyRequested = errors.New("book already requested by this user")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

// Rescue is a request by one user to receive another user's book.
type Rescue struct {
	ID          string    `json:"id"`
	BookID      string    `json:"book_id"`
	RequesterID string    `json:"requester_id"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
