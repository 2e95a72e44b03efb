package bookstate

import "errors"

var ErrNotFound = errors.New("book state not found")

// State describes the physical condition of a book, e.g. "Novo" or "Usado".
type State struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
