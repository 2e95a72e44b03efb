package main

import (
	"context"
	"net/http"
	"time"

	"sharebook/internal/auth"
	"sharebook/internal/book"
	"sharebook/internal/bookstate"
	"sharebook/internal/genre"
	"sharebook/internal/rescue"
	"sharebook/internal/session"
	"sharebook/internal/user"
)

type handlers struct {
	auth     *auth.HTTPHandler
	users    *user.HTTPHandler
	sessions *session.HTTPHandler
	genres   *genre.HTTPHandler
	states   *bookstate.HTTPHandler
	books    *book.HTTPHandler
	rescues  *rescue.HTTPHandler
}

func newRouter(h handlers, protect func(http.Handler) http.Handler, ping func(context.Context) error) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	private := func(pattern string, fn http.HandlerFunc) {
		router.Handle(pattern, protect(fn))
	}

	router.HandleFunc("POST /v1/auth/register", h.users.Register)
	router.HandleFunc("POST /v1/auth/login", h.auth.Login)
	router.HandleFunc("POST /v1/auth/refresh", h.auth.RefreshToken)
	private("POST /v1/auth/logout", h.auth.Logout)

	router.HandleFunc("GET /v1/genres", h.genres.List)
	router.HandleFunc("GET /v1/book-states", h.states.List)

	private("GET /v1/me", h.users.GetCurrentUser)
	private("PUT /v1/me/photo", h.users.UpdatePhoto)
	private("GET /v1/me/sessions", h.sessions.ListSessions)
	private("DELETE /v1/me/sessions/{id}", h.sessions.DeleteSession)
	private("GET /v1/me/books", h.books.FindMyBooks)
	private("GET /v1/me/rescues", h.rescues.ListMine)

	private("GET /v1/books", h.books.FindAll)
	private("POST /v1/books", h.books.Create)
	private("GET /v1/books/isbn/{isbn}", h.books.GetByISBN)
	private("GET /v1/books/{id}", h.books.FindOne)
	private("PUT /v1/books/{id}", h.books.Update)
	private("DELETE /v1/books/{id}", h.books.Delete)
	private("POST /v1/books/{id}/rescues", h.rescues.Create)

	return router
}
