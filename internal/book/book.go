package book

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrRequested blocks edits and deletes once anyone asked for the book.
	ErrRequested = errors.New("book has already been requested")
	ErrForbidden = errors.New("book belongs to another user")
	// ErrInvalidReference reports an unknown state or genre id.
	ErrInvalidReference = errors.New("unknown book state or genre")
)

// Book is the stored record. CoverKey and ImageKeys are object keys in the
// BookImages bucket. ImageKeys may hold empty placeholders.
type Book struct {
	ID             string    `json:"id"`
	ISBN           string    `json:"isbn"`
	Title          string    `json:"title"`
	Synopsis       string    `json:"synopsis"`
	Author         string    `json:"author"`
	OwnerID        string    `json:"owner_id"`
	Edition        string    `json:"edition"`
	Language       string    `json:"language"`
	CanFetch       bool      `json:"can_fetch"`
	WantsToReceive bool      `json:"wants_to_receive"`
	CoverKey       string    `json:"cover_key"`
	ImageKeys      []string  `json:"image_keys"`
	StateID        string    `json:"state_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	GenreIDs       []string  `json:"genre_ids,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Fields are the owner-editable attributes of a book.
type Fields struct {
	ISBN           string  `json:"isbn" validate:"omitempty,isbn"`
	Title          string  `json:"title" validate:"required,max=200"`
	Synopsis       string  `json:"synopsis" validate:"max=5000"`
	Author         string  `json:"author" validate:"required,max=200"`
	Edition        string  `json:"edition" validate:"max=50"`
	Language       string  `json:"language" validate:"max=50"`
	CanFetch       bool    `json:"can_fetch"`
	WantsToReceive bool    `json:"wants_to_receive"`
	StateID        string  `json:"state_id" validate:"required,uuid"`
	Latitude       float64 `json:"latitude" validate:"latitude"`
	Longitude      float64 `json:"longitude" validate:"longitude"`
}

func (f Fields) apply(b *Book) {
	b.ISBN = f.ISBN
	b.Title = f.Title
	b.Synopsis = f.Synopsis
	b.Author = f.Author
	b.Edition = f.Edition
	b.Language = f.Language
	b.CanFetch = f.CanFetch
	b.WantsToReceive = f.WantsToReceive
	b.StateID = f.StateID
	b.Latitude = f.Latitude
	b.Longitude = f.Longitude
}

type CreateInput struct {
	Fields
	GenreIDs []string `json:"genre_ids" validate:"omitempty,dive,uuid"`
}

// Upload is a file received from the client.
type Upload struct {
	Data        []byte
	ContentType string
}

// OwnerInfo is the public profile of a book owner.
type OwnerInfo struct {
	ProfilePhoto string `json:"profile_photo"`
	Name         string `json:"name"`
	City         string `json:"city"`
	UF           string `json:"uf"`
}

// Detail is a book with every key resolved to a display value.
type Detail struct {
	ID             string   `json:"id"`
	ISBN           string   `json:"isbn"`
	Title          string   `json:"title"`
	Synopsis       string   `json:"synopsis"`
	Author         string   `json:"author"`
	OwnerID        string   `json:"owner_id"`
	Edition        string   `json:"edition"`
	Language       string   `json:"language"`
	CanFetch       bool     `json:"can_fetch"`
	WantsToReceive bool     `json:"wants_to_receive"`
	Cover          string   `json:"cover"`
	Images         []string `json:"images"`
	Genres         []string `json:"genres"`
	State          string   `json:"state"`
}

type DetailedBook struct {
	Owner OwnerInfo `json:"owner_info"`
	Book  Detail    `json:"book"`
}

// Summary is the card shown in listings.
type Summary struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Cover     string  `json:"cover"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Partitions are independent views over the books of other users; a book
// may appear in several of them.
type Partitions struct {
	Available      []Summary `json:"available_books"`
	FavoriteGenres []Summary `json:"favorite_genres"`
	NextToYou      []Summary `json:"next_to_you"`
}

type MyBook struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Author         string   `json:"author"`
	Cover          string   `json:"cover"`
	Edition        string   `json:"edition"`
	WantsToReceive bool     `json:"wants_to_receive"`
	CanFetch       bool     `json:"can_fetch"`
	Genres         []string `json:"genres"`
	State          string   `json:"state"`
}

// Requester describes a user who asked for a book, as shown to its owner.
type Requester struct {
	RescueID     string `json:"rescue_id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	UF           string `json:"uf"`
	ProfilePhoto string `json:"profile_photo"`
	Status       string `json:"status"`
}

// View is what FindOne returns. Owners get the requests made for their
// book; everybody else learns whether they already asked for it.
type View struct {
	DetailedBook DetailedBook `json:"detailed_book"`
	IsOwner      bool         `json:"is_owner"`
	Rescues      []Requester  `json:"rescues,omitempty"`
	IsRequest    bool         `json:"is_request"`
}
