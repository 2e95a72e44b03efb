package book

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"sharebook/internal/genre"
	"sharebook/internal/platform/objectstore"
	"sharebook/internal/platform/postalcode"
	"sharebook/internal/user"
)

// enrichLimit caps concurrent lookups issued while enriching one response.
const enrichLimit = 8

// Deps are the collaborators of the catalog service.
type Deps struct {
	Repo    Repository
	Users   UserDirectory
	Genres  GenreCatalog
	States  StateCatalog
	Rescues RescueLedger
	Storage ObjectStorage
	Regions RegionResolver
}

// Service provides book-related business logic.
type Service struct {
	repo    Repository
	users   UserDirectory
	genres  GenreCatalog
	states  StateCatalog
	rescues RescueLedger
	storage ObjectStorage
	regions RegionResolver
}

// NewService creates a new book service.
func NewService(d Deps) *Service {
	return &Service{
		repo:    d.Repo,
		users:   d.Users,
		genres:  d.Genres,
		states:  d.States,
		rescues: d.Rescues,
		storage: d.Storage,
		regions: d.Regions,
	}
}

// UserRegion returns the state (UF) a postal code belongs to.
func (s *Service) UserRegion(ctx context.Context, postalCode string) (string, error) {
	r, err := s.regions.Resolve(ctx, postalCode)
	if err != nil {
		return "", err
	}
	return r.UF, nil
}

// UserIBGE returns the IBGE municipality code of a postal code.
func (s *Service) UserIBGE(ctx context.Context, postalCode string) (string, error) {
	r, err := s.regions.Resolve(ctx, postalCode)
	if err != nil {
		return "", err
	}
	return r.IBGE, nil
}

// ContainsGender reports whether the user likes at least one genre of the book.
func (s *Service) ContainsGender(ctx context.Context, userID, bookID string) (bool, error) {
	var userGenres, bookGenres []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		userGenres, err = s.genres.FindAllByUserID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		bookGenres, err = s.genres.FindAllByBookID(gctx, bookID)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, err
	}
	return genre.Intersects(userGenres, bookGenres), nil
}

// GetByISBN returns the stored book with the given ISBN, without enrichment.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// FindUnique returns the raw book row. Every lookup by id goes through it.
func (s *Service) FindUnique(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) imageURL(ctx context.Context, key string) (string, error) {
	return s.storage.URL(ctx, objectstore.BookImages, key)
}

// DetailedBook resolves a book together with its owner's public profile.
func (s *Service) DetailedBook(ctx context.Context, bookID string) (DetailedBook, error) {
	b, err := s.FindUnique(ctx, bookID)
	if err != nil {
		return DetailedBook{}, err
	}
	return s.detail(ctx, b)
}

func (s *Service) detail(ctx context.Context, b Book) (DetailedBook, error) {
	out := DetailedBook{
		Book: Detail{
			ID:             b.ID,
			ISBN:           b.ISBN,
			Title:          b.Title,
			Synopsis:       b.Synopsis,
			Author:         b.Author,
			OwnerID:        b.OwnerID,
			Edition:        b.Edition,
			Language:       b.Language,
			CanFetch:       b.CanFetch,
			WantsToReceive: b.WantsToReceive,
		},
	}

	keys := make([]string, 0, len(b.ImageKeys))
	for _, k := range b.ImageKeys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	out.Book.Images = make([]string, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)

	g.Go(func() error {
		owner, err := s.users.GetByID(gctx, b.OwnerID)
		if err != nil {
			return fmt.Errorf("owner of book %s: %w", b.ID, err)
		}
		uf, err := s.UserRegion(gctx, owner.PostalCode)
		if err != nil {
			return err
		}
		photo, err := s.storage.URL(gctx, objectstore.UserImages, owner.ProfilePhoto)
		if err != nil {
			return err
		}
		out.Owner = OwnerInfo{ProfilePhoto: photo, Name: owner.Name, City: owner.City, UF: uf}
		return nil
	})
	g.Go(func() (err error) {
		out.Book.Cover, err = s.imageURL(gctx, b.CoverKey)
		return err
	})
	for i, key := range keys {
		g.Go(func() (err error) {
			out.Book.Images[i], err = s.imageURL(gctx, key)
			return err
		})
	}
	g.Go(func() (err error) {
		out.Book.Genres, err = s.genres.FindGenderName(gctx, b.ID)
		return err
	})
	g.Go(func() error {
		st, err := s.states.FindOne(gctx, b.StateID)
		if err != nil {
			return fmt.Errorf("state of book %s: %w", b.ID, err)
		}
		out.Book.State = st.Name
		return nil
	})

	if err := g.Wait(); err != nil {
		return DetailedBook{}, err
	}
	return out, nil
}

// FindAll lists the books of every other user in three partitions. Owner
// regions are resolved up front so the region filter runs over plain values.
func (s *Service) FindAll(ctx context.Context, userID string) (Partitions, error) {
	caller, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Partitions{}, err
	}

	books, err := s.repo.ListExcludingOwner(ctx, userID)
	if err != nil {
		return Partitions{}, err
	}

	var (
		callerUF    string
		affinities  []string
		bookGenres  map[string][]string
		ownerRegion map[string]string
		summaries   = make([]Summary, len(books))
	)
	bookIDs := make([]string, len(books))
	for i, b := range books {
		bookIDs[i] = b.ID
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		callerUF, err = s.UserRegion(gctx, caller.PostalCode)
		return err
	})
	g.Go(func() (err error) {
		affinities, err = s.genres.FindAllByUserID(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		bookGenres, err = s.genres.FindAllByBookIDs(gctx, bookIDs)
		return err
	})
	g.Go(func() (err error) {
		ownerRegion, err = s.ownerRegions(gctx, books)
		return err
	})
	g.Go(func() error {
		return s.summarize(gctx, books, summaries)
	})
	if err := g.Wait(); err != nil {
		return Partitions{}, err
	}

	out := Partitions{
		Available:      summaries,
		FavoriteGenres: []Summary{},
		NextToYou:      []Summary{},
	}
	for i, b := range books {
		if genre.Intersects(affinities, bookGenres[b.ID]) {
			out.FavoriteGenres = append(out.FavoriteGenres, summaries[i])
		}
		if uf, ok := ownerRegion[b.OwnerID]; ok && uf != "" && uf == callerUF {
			out.NextToYou = append(out.NextToYou, summaries[i])
		}
	}
	return out, nil
}

// ownerRegions maps each distinct owner of books to its UF. Each postal
// code is resolved once. Owners whose postal code is unknown to the
// resolver are left out of the map.
func (s *Service) ownerRegions(ctx context.Context, books []Book) (map[string]string, error) {
	ownerIDs := make([]string, 0, len(books))
	seen := make(map[string]struct{}, len(books))
	for _, b := range books {
		if _, ok := seen[b.OwnerID]; !ok {
			seen[b.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, b.OwnerID)
		}
	}
	if len(ownerIDs) == 0 {
		return map[string]string{}, nil
	}

	owners, err := s.users.ListByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	ceps := make([]string, 0, len(owners))
	cepSeen := make(map[string]struct{}, len(owners))
	for _, o := range owners {
		if _, ok := cepSeen[o.PostalCode]; !ok {
			cepSeen[o.PostalCode] = struct{}{}
			ceps = append(ceps, o.PostalCode)
		}
	}

	ufs := make([]string, len(ceps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for i, cep := range ceps {
		g.Go(func() error {
			uf, err := s.UserRegion(gctx, cep)
			if errors.Is(err, postalcode.ErrNotFound) {
				log.Warn().Str("cep", cep).Msg("owner postal code not found, skipping region match")
				return nil
			}
			ufs[i] = uf
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCEP := make(map[string]string, len(ceps))
	for i, cep := range ceps {
		byCEP[cep] = ufs[i]
	}
	out := make(map[string]string, len(owners))
	for id, o := range owners {
		out[id] = byCEP[o.PostalCode]
	}
	return out, nil
}

func (s *Service) summarize(ctx context.Context, books []Book, into []Summary) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for i, b := range books {
		g.Go(func() error {
			cover, err := s.imageURL(gctx, b.CoverKey)
			if err != nil {
				return err
			}
			into[i] = Summary{
				ID:        b.ID,
				Title:     b.Title,
				Author:    b.Author,
				Cover:     cover,
				Latitude:  b.Latitude,
				Longitude: b.Longitude,
			}
			return nil
		})
	}
	return g.Wait()
}

// FindMyBooks lists the caller's own books.
func (s *Service) FindMyBooks(ctx context.Context, userID string) ([]MyBook, error) {
	books, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]MyBook, len(books))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for i, b := range books {
		g.Go(func() error {
			cover, err := s.imageURL(gctx, b.CoverKey)
			if err != nil {
				return err
			}
			genres, err := s.genres.FindGenderName(gctx, b.ID)
			if err != nil {
				return err
			}
			st, err := s.states.FindOne(gctx, b.StateID)
			if err != nil {
				return fmt.Errorf("state of book %s: %w", b.ID, err)
			}
			out[i] = MyBook{
				ID:             b.ID,
				Title:          b.Title,
				Author:         b.Author,
				Cover:          cover,
				Edition:        b.Edition,
				WantsToReceive: b.WantsToReceive,
				CanFetch:       b.CanFetch,
				Genres:         genres,
				State:          st.Name,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindOne shows a book to userID. The owner sees who asked for it; anyone
// else sees whether they already did.
func (s *Service) FindOne(ctx context.Context, bookID, userID string) (View, error) {
	b, err := s.FindUnique(ctx, bookID)
	if err != nil {
		return View{}, err
	}

	detailed, err := s.detail(ctx, b)
	if err != nil {
		return View{}, err
	}

	if b.OwnerID != userID {
		requested, err := s.rescues.FindIfUserHasRequestedBook(ctx, bookID, userID)
		if err != nil {
			return View{}, err
		}
		return View{DetailedBook: detailed, IsRequest: requested}, nil
	}

	requesters, err := s.requesters(ctx, bookID)
	if err != nil {
		return View{}, err
	}
	return View{DetailedBook: detailed, IsOwner: true, Rescues: requesters, IsRequest: false}, nil
}

func (s *Service) requesters(ctx context.Context, bookID string) ([]Requester, error) {
	rescues, err := s.rescues.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if len(rescues) == 0 {
		return []Requester{}, nil
	}

	ids := make([]string, len(rescues))
	for i, r := range rescues {
		ids[i] = r.RequesterID
	}
	users, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]Requester, len(rescues))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for i, r := range rescues {
		g.Go(func() error {
			u, ok := users[r.RequesterID]
			if !ok {
				return fmt.Errorf("requester %s: %w", r.RequesterID, user.ErrNotFound)
			}
			uf, err := s.UserRegion(gctx, u.PostalCode)
			if err != nil {
				return err
			}
			photo, err := s.storage.URL(gctx, objectstore.UserImages, u.ProfilePhoto)
			if err != nil {
				return err
			}
			out[i] = Requester{
				RescueID:     r.ID,
				UserID:       u.ID,
				Name:         u.Name,
				City:         u.City,
				UF:           uf,
				ProfilePhoto: photo,
				Status:       string(r.Status),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create uploads the cover and images, then stores the book. Objects
// already uploaded are removed again when a later step fails.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput, cover Upload, images []Upload) (Book, error) {
	b := &Book{OwnerID: ownerID, GenreIDs: in.GenreIDs}
	in.Fields.apply(b)
	b.CoverKey = coverKey(in.Title)
	b.ImageKeys = make([]string, len(images))
	for i := range images {
		b.ImageKeys[i] = uuid.NewString()
	}

	keys := append([]string{b.CoverKey}, b.ImageKeys...)
	files := append([]Upload{cover}, images...)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)
	for i, f := range files {
		g.Go(func() error {
			return s.storage.Put(gctx, objectstore.BookImages, keys[i], f.Data, contentType(f))
		})
	}
	if err := g.Wait(); err != nil {
		s.discard(ctx, keys...)
		return Book{}, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.discard(ctx, keys...)
		return Book{}, err
	}
	return *b, nil
}

// mutable loads a book the caller may change: it must exist, belong to
// the caller and have no requests.
func (s *Service) mutable(ctx context.Context, callerID, bookID string) (Book, error) {
	b, err := s.FindUnique(ctx, bookID)
	if err != nil {
		return Book{}, err
	}
	if b.OwnerID != callerID {
		return Book{}, ErrForbidden
	}
	requested, err := s.rescues.FindIfABookWasRequested(ctx, bookID)
	if err != nil {
		return Book{}, err
	}
	if requested {
		return Book{}, ErrRequested
	}
	return b, nil
}

// Update replaces the editable fields of a book. A new cover, when given,
// is stored under a fresh key and the previous object is removed once the
// row points at the new one. Image keys are kept as they are.
func (s *Service) Update(ctx context.Context, callerID, bookID string, in Fields, cover *Upload) (Book, error) {
	b, err := s.mutable(ctx, callerID, bookID)
	if err != nil {
		return Book{}, err
	}

	oldCover := b.CoverKey
	in.apply(&b)
	if cover != nil {
		b.CoverKey = coverKey(in.Title)
		if err := s.storage.Put(ctx, objectstore.BookImages, b.CoverKey, cover.Data, contentType(*cover)); err != nil {
			return Book{}, err
		}
	}

	if err := s.repo.Update(ctx, &b); err != nil {
		if cover != nil {
			s.discard(ctx, b.CoverKey)
		}
		return Book{}, err
	}

	if cover != nil && oldCover != "" {
		s.discard(ctx, oldCover)
	}
	return b, nil
}

// Delete removes a book and then its stored objects. The objects go with
// the row: no other job sweeps the BookImages bucket.
func (s *Service) Delete(ctx context.Context, callerID, bookID string) error {
	b, err := s.mutable(ctx, callerID, bookID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, bookID); err != nil {
		return err
	}
	s.discard(ctx, append([]string{b.CoverKey}, b.ImageKeys...)...)
	return nil
}

// discard removes objects best-effort. Failures leave orphans behind and
// are only logged.
func (s *Service) discard(ctx context.Context, keys ...string) {
	if err := s.storage.Remove(context.WithoutCancel(ctx), objectstore.BookImages, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("could not remove book objects")
	}
}

func contentType(u Upload) string {
	if u.ContentType != "" {
		return u.ContentType
	}
	return http.DetectContentType(u.Data)
}
