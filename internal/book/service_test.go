package book

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharebook/internal/bookstate"
	"sharebook/internal/platform/objectstore"
	"sharebook/internal/platform/postalcode"
	"sharebook/internal/rescue"
	"sharebook/internal/user"
)

type fixture struct {
	repo    *MockRepository
	users   *MockUserDirectory
	genres  *MockGenreCatalog
	states  *MockStateCatalog
	rescues *MockRescueLedger
	storage *MockObjectStorage
	regions *MockRegionResolver
	service *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:    NewMockRepository(ctrl),
		users:   NewMockUserDirectory(ctrl),
		genres:  NewMockGenreCatalog(ctrl),
		states:  NewMockStateCatalog(ctrl),
		rescues: NewMockRescueLedger(ctrl),
		storage: NewMockObjectStorage(ctrl),
		regions: NewMockRegionResolver(ctrl),
	}
	f.service = NewService(Deps{
		Repo:    f.repo,
		Users:   f.users,
		Genres:  f.genres,
		States:  f.states,
		Rescues: f.rescues,
		Storage: f.storage,
		Regions: f.regions,
	})
	return f
}

// stubURLs makes every object resolve to a predictable URL.
func (f *fixture) stubURLs() {
	f.storage.EXPECT().URL(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bucket, key string) (string, error) {
			if key == "" {
				return "", nil
			}
			return "https://cdn/" + bucket + "/" + key, nil
		}).AnyTimes()
}

func (f *fixture) stubRegions(ufByCEP map[string]string) {
	f.regions.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cep string) (postalcode.Region, error) {
			uf, ok := ufByCEP[cep]
			if !ok {
				return postalcode.Region{}, postalcode.ErrNotFound
			}
			return postalcode.Region{CEP: cep, UF: uf}, nil
		}).AnyTimes()
}

var (
	owner1 = user.User{ID: "u1", Name: "Ana", City: "Recife", PostalCode: "50000-000", ProfilePhoto: "ana.png"}
	owner2 = user.User{ID: "u2", Name: "Bia", City: "Olinda", PostalCode: "53000-000"}
	owner3 = user.User{ID: "u3", Name: "Caio", City: "Santos", PostalCode: "11000-000"}
)

func TestService_DetailedBook(t *testing.T) {
	ctx := context.Background()

	t.Run("skips empty image keys and keeps order", func(t *testing.T) {
		f := newFixture(t)
		f.stubURLs()
		f.stubRegions(map[string]string{owner1.PostalCode: "PE"})
		b := Book{ID: "b1", OwnerID: "u1", Title: "Dom Casmurro", CoverKey: "dom-casmurro-1a2b", StateID: "s1",
			ImageKeys: []string{"img1.png", "", "img2.png"}}
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(b, nil)
		f.users.EXPECT().GetByID(gomock.Any(), "u1").Return(owner1, nil)
		f.genres.EXPECT().FindGenderName(gomock.Any(), "b1").Return([]string{"Romance"}, nil)
		f.states.EXPECT().FindOne(gomock.Any(), "s1").Return(bookstate.State{ID: "s1", Name: "Usado"}, nil)

		d, err := f.service.DetailedBook(ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://cdn/BookImages/img1.png",
			"https://cdn/BookImages/img2.png",
		}, d.Book.Images)
		assert.Equal(t, "https://cdn/BookImages/dom-casmurro-1a2b", d.Book.Cover)
		assert.Equal(t, OwnerInfo{ProfilePhoto: "https://cdn/UserImages/ana.png", Name: "Ana", City: "Recife", UF: "PE"}, d.Owner)
		assert.Equal(t, []string{"Romance"}, d.Book.Genres)
		assert.Equal(t, "Usado", d.Book.State)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(Book{}, ErrNotFound)

		_, err := f.service.DetailedBook(ctx, "missing")

		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("resolver failure propagates", func(t *testing.T) {
		f := newFixture(t)
		f.stubURLs()
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(Book{ID: "b1", OwnerID: "u1", StateID: "s1"}, nil)
		f.users.EXPECT().GetByID(gomock.Any(), "u1").Return(owner1, nil)
		f.regions.EXPECT().Resolve(gomock.Any(), owner1.PostalCode).Return(postalcode.Region{}, postalcode.ErrLookup)
		f.genres.EXPECT().FindGenderName(gomock.Any(), "b1").Return(nil, nil).AnyTimes()
		f.states.EXPECT().FindOne(gomock.Any(), "s1").Return(bookstate.State{}, nil).AnyTimes()

		_, err := f.service.DetailedBook(ctx, "b1")

		assert.ErrorIs(t, err, postalcode.ErrLookup)
	})
}

func TestService_FindAll(t *testing.T) {
	ctx := context.Background()
	books := []Book{
		{ID: "b1", OwnerID: "u1", Title: "Duna", CoverKey: "duna"},
		{ID: "b2", OwnerID: "u3", Title: "Neuromancer", CoverKey: "neuro"},
		{ID: "b3", OwnerID: "u1", Title: "Solaris", CoverKey: "solaris"},
	}

	t.Run("partitions", func(t *testing.T) {
		f := newFixture(t)
		f.stubURLs()
		f.users.EXPECT().GetByID(gomock.Any(), "u2").Return(owner2, nil)
		f.repo.EXPECT().ListExcludingOwner(gomock.Any(), "u2").Return(books, nil)
		f.genres.EXPECT().FindAllByUserID(gomock.Any(), "u2").Return([]string{"fiction", "horror"}, nil)
		f.genres.EXPECT().FindAllByBookIDs(gomock.Any(), []string{"b1", "b2", "b3"}).
			Return(map[string][]string{"b1": {"fiction"}, "b2": {"cyberpunk"}}, nil)
		f.users.EXPECT().ListByIDs(gomock.Any(), []string{"u1", "u3"}).
			Return(map[string]user.User{"u1": owner1, "u3": owner3}, nil)
		f.stubRegions(map[string]string{
			owner1.PostalCode: "PE",
			owner2.PostalCode: "PE",
			owner3.PostalCode: "SP",
		})

		p, err := f.service.FindAll(ctx, "u2")

		require.NoError(t, err)
		assert.Equal(t, []string{"b1", "b2", "b3"}, ids(p.Available))
		assert.Equal(t, []string{"b1"}, ids(p.FavoriteGenres))
		assert.Equal(t, []string{"b1", "b3"}, ids(p.NextToYou))
		assert.Equal(t, "https://cdn/BookImages/neuro", p.Available[1].Cover)
	})

	t.Run("never lists the caller's own books", func(t *testing.T) {
		f := newFixture(t)
		f.stubURLs()
		f.stubRegions(map[string]string{owner1.PostalCode: "PE"})
		f.users.EXPECT().GetByID(gomock.Any(), "u1").Return(owner1, nil)
		f.repo.EXPECT().ListExcludingOwner(gomock.Any(), "u1").Return(nil, nil)
		f.genres.EXPECT().FindAllByUserID(gomock.Any(), "u1").Return([]string{"fiction"}, nil)
		f.genres.EXPECT().FindAllByBookIDs(gomock.Any(), gomock.Any()).Return(map[string][]string{}, nil)

		p, err := f.service.FindAll(ctx, "u1")

		require.NoError(t, err)
		assert.Empty(t, p.Available)
		assert.Empty(t, p.FavoriteGenres)
		assert.Empty(t, p.NextToYou)
		assert.NotNil(t, p.NextToYou)
	})

	t.Run("unknown owner postal code only drops the region match", func(t *testing.T) {
		f := newFixture(t)
		f.stubURLs()
		stray := user.User{ID: "u3", PostalCode: "99999-999"}
		f.users.EXPECT().GetByID(gomock.Any(), "u2").Return(owner2, nil)
		f.repo.EXPECT().ListExcludingOwner(gomock.Any(), "u2").Return(books[1:2], nil)
		f.genres.EXPECT().FindAllByUserID(gomock.Any(), "u2").Return(nil, nil)
		f.genres.EXPECT().FindAllByBookIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.users.EXPECT().ListByIDs(gomock.Any(), []string{"u3"}).Return(map[string]user.User{"u3": stray}, nil)
		f.stubRegions(map[string]string{owner2.PostalCode: "PE"})

		p, err := f.service.FindAll(ctx, "u2")

		require.NoError(t, err)
		assert.Len(t, p.Available, 1)
		assert.Empty(t, p.NextToYou)
	})

	t.Run("each postal code resolved once", func(t *testing.T) {
		f := newFixture(t)
		f.stubURLs()
		neighbour := user.User{ID: "u3", PostalCode: owner1.PostalCode}
		f.users.EXPECT().GetByID(gomock.Any(), "u2").Return(owner2, nil)
		f.repo.EXPECT().ListExcludingOwner(gomock.Any(), "u2").Return(books, nil)
		f.genres.EXPECT().FindAllByUserID(gomock.Any(), "u2").Return(nil, nil)
		f.genres.EXPECT().FindAllByBookIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.users.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).Return(map[string]user.User{"u1": owner1, "u3": neighbour}, nil)
		f.regions.EXPECT().Resolve(gomock.Any(), owner2.PostalCode).Return(postalcode.Region{UF: "PE"}, nil).Times(1)
		f.regions.EXPECT().Resolve(gomock.Any(), owner1.PostalCode).Return(postalcode.Region{UF: "PE"}, nil).Times(1)

		p, err := f.service.FindAll(ctx, "u2")

		require.NoError(t, err)
		assert.Len(t, p.NextToYou, 3)
	})
}

func TestService_FindAllReusesResolvedRegions(t *testing.T) {
	ctx := context.Background()
	ufByPath := map[string]string{
		"/50000000/json/": "PE",
		"/53000000/json/": "PE",
		"/11000000/json/": "SP",
	}
	var hits int32
	viaCEP := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"uf":%q}`, ufByPath[r.URL.Path])
	}))
	t.Cleanup(viaCEP.Close)

	f := newFixture(t)
	f.stubURLs()
	svc := NewService(Deps{
		Repo:    f.repo,
		Users:   f.users,
		Genres:  f.genres,
		States:  f.states,
		Rescues: f.rescues,
		Storage: f.storage,
		Regions: postalcode.NewClient(postalcode.Config{BaseURL: viaCEP.URL, RPS: 1000}),
	})
	books := []Book{
		{ID: "b1", OwnerID: "u1", CoverKey: "duna"},
		{ID: "b2", OwnerID: "u3", CoverKey: "neuro"},
	}
	f.users.EXPECT().GetByID(gomock.Any(), "u2").Return(owner2, nil).Times(2)
	f.repo.EXPECT().ListExcludingOwner(gomock.Any(), "u2").Return(books, nil).Times(2)
	f.genres.EXPECT().FindAllByUserID(gomock.Any(), "u2").Return(nil, nil).Times(2)
	f.genres.EXPECT().FindAllByBookIDs(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.users.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).
		Return(map[string]user.User{"u1": owner1, "u3": owner3}, nil).Times(2)

	for round := 1; round <= 2; round++ {
		p, err := svc.FindAll(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, []string{"b1"}, ids(p.NextToYou), "round %d", round)
		assert.Equal(t, int32(3), atomic.LoadInt32(&hits), "round %d", round)
	}
}

func ids(s []Summary) []string {
	out := make([]string, len(s))
	for i, b := range s {
		out[i] = b.ID
	}
	return out
}

func TestService_ContainsGender(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		userGenres []string
		bookGenres []string
		want       bool
	}{
		{"shared genre", []string{"fiction", "horror"}, []string{"fiction"}, true},
		{"disjoint", []string{"horror"}, []string{"fiction"}, false},
		{"no affinities", nil, []string{"fiction"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.genres.EXPECT().FindAllByUserID(gomock.Any(), "u2").Return(tt.userGenres, nil)
			f.genres.EXPECT().FindAllByBookID(gomock.Any(), "b1").Return(tt.bookGenres, nil)

			got, err := f.service.ContainsGender(ctx, "u2", "b1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_FindOne(t *testing.T) {
	ctx := context.Background()
	b := Book{ID: "b1", OwnerID: "u1", StateID: "s1"}

	expectDetail := func(f *fixture) {
		f.stubURLs()
		f.stubRegions(map[string]string{owner1.PostalCode: "PE", owner2.PostalCode: "PE"})
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(b, nil)
		f.users.EXPECT().GetByID(gomock.Any(), "u1").Return(owner1, nil)
		f.genres.EXPECT().FindGenderName(gomock.Any(), "b1").Return(nil, nil)
		f.states.EXPECT().FindOne(gomock.Any(), "s1").Return(bookstate.State{Name: "Novo"}, nil)
	}

	t.Run("owner sees requesters and is_request is false", func(t *testing.T) {
		f := newFixture(t)
		expectDetail(f)
		f.rescues.EXPECT().ListByBook(gomock.Any(), "b1").
			Return([]rescue.Rescue{{ID: "r1", BookID: "b1", RequesterID: "u2", Status: rescue.StatusPending}}, nil)
		requester := owner2
		requester.ProfilePhoto = "bia.png"
		f.users.EXPECT().ListByIDs(gomock.Any(), []string{"u2"}).Return(map[string]user.User{"u2": requester}, nil)

		v, err := f.service.FindOne(ctx, "b1", "u1")

		require.NoError(t, err)
		assert.True(t, v.IsOwner)
		assert.False(t, v.IsRequest)
		require.Len(t, v.Rescues, 1)
		assert.Equal(t, Requester{
			RescueID:     "r1",
			UserID:       "u2",
			Name:         "Bia",
			City:         "Olinda",
			UF:           "PE",
			ProfilePhoto: "https://cdn/" + objectstore.UserImages + "/bia.png",
			Status:       "PENDING",
		}, v.Rescues[0])
	})

	t.Run("visitor learns whether they requested", func(t *testing.T) {
		f := newFixture(t)
		expectDetail(f)
		f.rescues.EXPECT().FindIfUserHasRequestedBook(gomock.Any(), "b1", "u2").Return(true, nil)

		v, err := f.service.FindOne(ctx, "b1", "u2")

		require.NoError(t, err)
		assert.False(t, v.IsOwner)
		assert.True(t, v.IsRequest)
		assert.Nil(t, v.Rescues)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	in := CreateInput{
		Fields:   Fields{Title: "Memórias Póstumas", Author: "Machado", StateID: "s1"},
		GenreIDs: []string{"g1"},
	}
	cover := Upload{Data: []byte("cover"), ContentType: "image/jpeg"}
	images := []Upload{{Data: []byte("a")}, {Data: []byte("b")}}

	t.Run("uploads then persists", func(t *testing.T) {
		f := newFixture(t)
		var (
			mu     sync.Mutex
			stored []string
		)
		f.storage.EXPECT().Put(gomock.Any(), objectstore.BookImages, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, key string, _ []byte, _ string) error {
				mu.Lock()
				defer mu.Unlock()
				stored = append(stored, key)
				return nil
			}).Times(3)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *Book) error {
			b.ID = "b1"
			return nil
		})

		b, err := f.service.Create(ctx, "u1", in, cover, images)

		require.NoError(t, err)
		assert.Equal(t, "b1", b.ID)
		assert.Equal(t, "u1", b.OwnerID)
		assert.Equal(t, []string{"g1"}, b.GenreIDs)
		assert.Regexp(t, `^memorias-postumas-[0-9a-f]{8}$`, b.CoverKey)
		assert.Len(t, b.ImageKeys, 2)
		assert.NotEqual(t, b.ImageKeys[0], b.ImageKeys[1])
		assert.ElementsMatch(t, append([]string{b.CoverKey}, b.ImageKeys...), stored)
	})

	t.Run("persist failure removes uploaded objects", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().Put(gomock.Any(), objectstore.BookImages, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ErrInvalidReference)
		f.storage.EXPECT().Remove(gomock.Any(), objectstore.BookImages, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.service.Create(ctx, "u1", in, cover, images)

		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("upload failure", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().Put(gomock.Any(), objectstore.BookImages, gomock.Any(), gomock.Any(), gomock.Any()).Return(objectstore.ErrStorage)
		f.storage.EXPECT().Remove(gomock.Any(), objectstore.BookImages, gomock.Any()).Return(nil)

		_, err := f.service.Create(ctx, "u1", in, cover, nil)

		assert.ErrorIs(t, err, objectstore.ErrStorage)
	})
}

func TestService_RequestedBookIsLocked(t *testing.T) {
	ctx := context.Background()
	b := Book{ID: "b1", OwnerID: "u1", CoverKey: "old", ImageKeys: []string{"i1"}}

	t.Run("update", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(b, nil)
		f.rescues.EXPECT().FindIfABookWasRequested(gomock.Any(), "b1").Return(true, nil)

		_, err := f.service.Update(ctx, "u1", "b1", Fields{Title: "x"}, &Upload{Data: []byte("c")})

		assert.True(t, errors.Is(err, ErrRequested))
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(b, nil)
		f.rescues.EXPECT().FindIfABookWasRequested(gomock.Any(), "b1").Return(true, nil)

		err := f.service.Delete(ctx, "u1", "b1")

		assert.True(t, errors.Is(err, ErrRequested))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	existing := Book{ID: "b1", OwnerID: "u1", Title: "Old", CoverKey: "old-cover", ImageKeys: []string{"i1", "", "i2"}}

	t.Run("new cover replaces the old object", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(existing, nil)
		f.rescues.EXPECT().FindIfABookWasRequested(gomock.Any(), "b1").Return(false, nil)
		f.storage.EXPECT().Put(gomock.Any(), objectstore.BookImages, gomock.Any(), []byte("new"), gomock.Any()).Return(nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		f.storage.EXPECT().Remove(gomock.Any(), objectstore.BookImages, "old-cover").Return(nil)

		b, err := f.service.Update(ctx, "u1", "b1", Fields{Title: "Novo Título", Author: "A", StateID: "s1"}, &Upload{Data: []byte("new")})

		require.NoError(t, err)
		assert.Equal(t, "Novo Título", b.Title)
		assert.NotEqual(t, "old-cover", b.CoverKey)
		assert.Regexp(t, `^novo-titulo-`, b.CoverKey)
		assert.Equal(t, []string{"i1", "", "i2"}, b.ImageKeys)
	})

	t.Run("without cover keeps the key", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(existing, nil)
		f.rescues.EXPECT().FindIfABookWasRequested(gomock.Any(), "b1").Return(false, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		b, err := f.service.Update(ctx, "u1", "b1", Fields{Title: "Old", Author: "A", StateID: "s1"}, nil)

		require.NoError(t, err)
		assert.Equal(t, "old-cover", b.CoverKey)
	})

	t.Run("not the owner", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(existing, nil)

		_, err := f.service.Update(ctx, "u2", "b1", Fields{}, nil)

		assert.True(t, errors.Is(err, ErrForbidden))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(Book{}, ErrNotFound)

		_, err := f.service.Update(ctx, "u1", "b1", Fields{}, nil)

		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(Book{ID: "b1", OwnerID: "u1", CoverKey: "c", ImageKeys: []string{"i1", ""}}, nil)
	f.rescues.EXPECT().FindIfABookWasRequested(gomock.Any(), "b1").Return(false, nil)
	f.repo.EXPECT().Delete(gomock.Any(), "b1").Return(nil)
	f.storage.EXPECT().Remove(gomock.Any(), objectstore.BookImages, "c", "i1", "").Return(nil)

	assert.NoError(t, f.service.Delete(ctx, "u1", "b1"))
}

func TestService_UserRegion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.regions.EXPECT().Resolve(gomock.Any(), "01001-000").
		Return(postalcode.Region{UF: "SP", IBGE: "3550308"}, nil).Times(2)

	uf, err := f.service.UserRegion(ctx, "01001-000")
	require.NoError(t, err)
	ibge, err := f.service.UserIBGE(ctx, "01001-000")
	require.NoError(t, err)

	assert.Equal(t, "SP", uf)
	assert.Equal(t, "3550308", ibge)
}

func TestService_FindMyBooks(t *testing.T) {
	ctx := context.Background()
	books := []Book{
		{ID: "b1", OwnerID: "u1", Title: "Duna", Author: "Frank Herbert", CoverKey: "duna", StateID: "s1", Edition: "2", CanFetch: true},
		{ID: "b2", OwnerID: "u1", Title: "Solaris", Author: "Stanislaw Lem", CoverKey: "solaris", StateID: "s2", WantsToReceive: true},
		{ID: "b3", OwnerID: "u1", Title: "Ubik", Author: "Philip K. Dick", CoverKey: "ubik", StateID: "s1"},
	}
	states := map[string]bookstate.State{"s1": {ID: "s1", Name: "Usado"}, "s2": {ID: "s2", Name: "Novo"}}

	t.Run("enriches every book in repository order", func(t *testing.T) {
		f := newFixture(t)
		f.stubURLs()
		f.repo.EXPECT().ListByOwner(gomock.Any(), "u1").Return(books, nil)
		f.genres.EXPECT().FindGenderName(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, bookID string) ([]string, error) {
				if bookID == "b1" {
					// finish last so positions cannot follow completion order
					time.Sleep(20 * time.Millisecond)
				}
				return []string{"genre of " + bookID}, nil
			}).Times(3)
		f.states.EXPECT().FindOne(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) (bookstate.State, error) {
				return states[id], nil
			}).Times(3)

		got, err := f.service.FindMyBooks(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, []MyBook{
			{ID: "b1", Title: "Duna", Author: "Frank Herbert", Cover: "https://cdn/BookImages/duna", Edition: "2",
				CanFetch: true, Genres: []string{"genre of b1"}, State: "Usado"},
			{ID: "b2", Title: "Solaris", Author: "Stanislaw Lem", Cover: "https://cdn/BookImages/solaris",
				WantsToReceive: true, Genres: []string{"genre of b2"}, State: "Novo"},
			{ID: "b3", Title: "Ubik", Author: "Philip K. Dick", Cover: "https://cdn/BookImages/ubik",
				Genres: []string{"genre of b3"}, State: "Usado"},
		}, got)
	})

	t.Run("no books", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ListByOwner(gomock.Any(), "u1").Return(nil, nil)

		got, err := f.service.FindMyBooks(ctx, "u1")

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("state lookup failure propagates", func(t *testing.T) {
		f := newFixture(t)
		f.stubURLs()
		f.repo.EXPECT().ListByOwner(gomock.Any(), "u1").Return(books[:1], nil)
		f.genres.EXPECT().FindGenderName(gomock.Any(), "b1").Return([]string{"Ficção"}, nil)
		f.states.EXPECT().FindOne(gomock.Any(), "s1").Return(bookstate.State{}, bookstate.ErrNotFound)

		_, err := f.service.FindMyBooks(ctx, "u1")

		assert.ErrorIs(t, err, bookstate.ErrNotFound)
	})

	t.Run("cover failure propagates", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ListByOwner(gomock.Any(), "u1").Return(books[:1], nil)
		f.storage.EXPECT().URL(gomock.Any(), objectstore.BookImages, "duna").Return("", objectstore.ErrStorage)

		_, err := f.service.FindMyBooks(ctx, "u1")

		assert.ErrorIs(t, err, objectstore.ErrStorage)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ListByOwner(gomock.Any(), "u1").Return(nil, context.DeadlineExceeded)

		_, err := f.service.FindMyBooks(ctx, "u1")

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestService_FindUnique(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), "b1").Return(Book{ID: "b1", Title: "Duna"}, nil)
	f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(Book{}, ErrNotFound)

	b, err := f.service.FindUnique(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Duna", b.Title)

	_, err = f.service.FindUnique(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
