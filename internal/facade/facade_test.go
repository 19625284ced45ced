package facade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hbnb/internal/domain"
	"hbnb/internal/metrics"
)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordEntityOp(kind, op string, count int) {
	m.Called(kind, op, count)
}

func ptr[T any](v T) *T { return &v }

func createUser(t *testing.T, f *Facade, email string) *domain.User {
	t.Helper()
	u, err := f.CreateUser(context.Background(), UserInput{FirstName: "Alice", LastName: "Smith", Email: email})
	require.NoError(t, err)
	return u
}

func createPlace(t *testing.T, f *Facade, ownerID string, amenityIDs ...string) *domain.Place {
	t.Helper()
	p, err := f.CreatePlace(context.Background(), PlaceInput{
		Title:       "Nice Place",
		Description: "A nice place",
		Price:       50,
		Latitude:    48.8566,
		Longitude:   2.3522,
		OwnerID:     ownerID,
		AmenityIDs:  amenityIDs,
	})
	require.NoError(t, err)
	return p
}

func TestCreateUser(t *testing.T) {
	f := New()
	ctx := context.Background()

	u := createUser(t, f, "a@b.com")

	got, err := f.GetUser(ctx, u.ID())
	require.NoError(t, err)
	assert.Same(t, u, got)

	byEmail, err := f.GetUserByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Same(t, u, byEmail)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := New()
	createUser(t, f, "a@b.com")

	_, err := f.CreateUser(context.Background(), UserInput{FirstName: "Bob", LastName: "Jones", Email: "a@b.com"})

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "email", ve.Field)
	assert.Len(t, f.GetAllUsers(context.Background()), 1)
}

func TestCreateUser_Invalid(t *testing.T) {
	f := New()
	_, err := f.CreateUser(context.Background(), UserInput{FirstName: "", LastName: "", Email: "invalid-email"})
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, f.GetAllUsers(context.Background()))
}

func TestGetUser_NotFound(t *testing.T) {
	f := New()
	_, err := f.GetUser(context.Background(), "missing")
	assert.True(t, domain.IsNotFound(err))

	_, err = f.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdateUser(t *testing.T) {
	f := New()
	ctx := context.Background()
	alice := createUser(t, f, "alice@example.com")
	createUser(t, f, "bob@example.com")

	_, err := f.UpdateUser(ctx, alice.ID(), domain.UserPatch{Email: ptr("bob@example.com")})
	assert.True(t, domain.IsValidation(err), "email of another user")

	u, err := f.UpdateUser(ctx, alice.ID(), domain.UserPatch{Email: ptr("alice@example.com"), LastName: ptr("Jones")})
	require.NoError(t, err)
	assert.Equal(t, "Jones", u.LastName())
	assert.Equal(t, "Alice", u.FirstName())

	_, err = f.UpdateUser(ctx, "missing", domain.UserPatch{LastName: ptr("X")})
	assert.True(t, domain.IsNotFound(err))
}

func TestAmenities(t *testing.T) {
	f := New()
	ctx := context.Background()
	assert.Empty(t, f.GetAllAmenities(ctx))

	a, err := f.CreateAmenity(ctx, "Wi-Fi")
	require.NoError(t, err)

	_, err = f.CreateAmenity(ctx, "")
	assert.True(t, domain.IsValidation(err))

	updated, err := f.UpdateAmenity(ctx, a.ID(), domain.AmenityPatch{Name: ptr("Parking")})
	require.NoError(t, err)
	assert.Equal(t, "Parking", updated.Name())

	_, err = f.UpdateAmenity(ctx, a.ID(), domain.AmenityPatch{Name: ptr("")})
	assert.True(t, domain.IsValidation(err))

	_, err = f.UpdateAmenity(ctx, "missing", domain.AmenityPatch{Name: ptr("Pool")})
	assert.True(t, domain.IsNotFound(err))

	_, err = f.GetAmenity(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
	assert.Len(t, f.GetAllAmenities(ctx), 1)
}

func TestCreatePlace(t *testing.T) {
	f := New()
	ctx := context.Background()
	owner := createUser(t, f, "a@b.com")
	wifi, err := f.CreateAmenity(ctx, "Wi-Fi")
	require.NoError(t, err)

	p := createPlace(t, f, owner.ID(), wifi.ID(), wifi.ID())

	assert.Same(t, owner, p.Owner())
	assert.Equal(t, 50.0, p.Price())
	require.Len(t, p.Amenities(), 1)
	assert.Same(t, wifi, p.Amenities()[0])

	got, err := f.GetPlace(ctx, p.ID())
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func TestCreatePlace_UnknownOwner(t *testing.T) {
	f := New()
	_, err := f.CreatePlace(context.Background(), PlaceInput{Title: "Loft", Price: 10, OwnerID: "nonexistent-owner-id"})

	var re *domain.ReferenceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "owner_id", re.Field)
	assert.Equal(t, "owner does not exist", re.Error())
	assert.Empty(t, f.GetAllPlaces(context.Background()))
}

func TestCreatePlace_UnknownAmenityFailsFast(t *testing.T) {
	f := New()
	owner := createUser(t, f, "a@b.com")

	_, err := f.CreatePlace(context.Background(), PlaceInput{
		Title: "Loft", Price: 10, OwnerID: owner.ID(), AmenityIDs: []string{"ghost"},
	})
	assert.True(t, domain.IsReference(err))
	assert.Empty(t, f.GetAllPlaces(context.Background()))
}

func TestCreatePlace_InvalidFields(t *testing.T) {
	f := New()
	owner := createUser(t, f, "a@b.com")

	cases := map[string]PlaceInput{
		"price":     {Title: "Loft", Price: -5, Latitude: 0, Longitude: 0},
		"latitude":  {Title: "Loft", Price: 5, Latitude: 200, Longitude: 0},
		"longitude": {Title: "Loft", Price: 5, Latitude: 0, Longitude: 200},
		"title":     {Title: "", Price: 5},
	}
	for field, in := range cases {
		in.OwnerID = owner.ID()
		_, err := f.CreatePlace(context.Background(), in)
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve), field)
		assert.Equal(t, field, ve.Field)
	}
	assert.Empty(t, f.GetAllPlaces(context.Background()))
}

func TestUpdatePlace(t *testing.T) {
	f := New()
	ctx := context.Background()
	owner := createUser(t, f, "a@b.com")
	other := createUser(t, f, "c@d.com")
	wifi, _ := f.CreateAmenity(ctx, "Wi-Fi")
	pool, _ := f.CreateAmenity(ctx, "Pool")
	p := createPlace(t, f, owner.ID(), wifi.ID())
	before := p.UpdatedAt()

	updated, err := f.UpdatePlace(ctx, p.ID(), PlaceUpdate{
		Title:      ptr("Updated Place"),
		Price:      ptr(75.0),
		OwnerID:    ptr(other.ID()),
		AmenityIDs: []string{wifi.ID(), pool.ID()},
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated Place", updated.Title())
	assert.Equal(t, 75.0, updated.Price())
	assert.Equal(t, "A nice place", updated.Description())
	assert.Equal(t, 48.8566, updated.Latitude())
	assert.Same(t, other, updated.Owner())
	assert.Len(t, updated.Amenities(), 2)
	assert.True(t, updated.UpdatedAt().After(before))
}

func TestUpdatePlace_Errors(t *testing.T) {
	f := New()
	ctx := context.Background()
	owner := createUser(t, f, "a@b.com")
	p := createPlace(t, f, owner.ID())

	_, err := f.UpdatePlace(ctx, "missing", PlaceUpdate{Title: ptr("X")})
	assert.True(t, domain.IsNotFound(err))

	_, err = f.UpdatePlace(ctx, p.ID(), PlaceUpdate{Title: ptr("X"), OwnerID: ptr("ghost")})
	assert.True(t, domain.IsReference(err))

	_, err = f.UpdatePlace(ctx, p.ID(), PlaceUpdate{AmenityIDs: []string{"ghost"}})
	assert.True(t, domain.IsReference(err))

	_, err = f.UpdatePlace(ctx, p.ID(), PlaceUpdate{Title: ptr("X"), Price: ptr(-1.0)})
	assert.True(t, domain.IsValidation(err))

	assert.Equal(t, "Nice Place", p.Title(), "failed updates leave the place untouched")
	assert.Same(t, owner, p.Owner())
}

func TestCreateReview(t *testing.T) {
	f := New()
	ctx := context.Background()
	user := createUser(t, f, "a@b.com")
	p := createPlace(t, f, user.ID())

	r, err := f.CreateReview(ctx, ReviewInput{Text: "Great place!", Rating: 5, UserID: user.ID(), PlaceID: p.ID()})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating())
	assert.Same(t, p, r.Place())
	assert.Same(t, user, r.User())
	assert.Len(t, p.Reviews(), 1)

	got, err := f.GetReview(ctx, r.ID())
	require.NoError(t, err)
	assert.Same(t, r, got)
	assert.Len(t, f.GetAllReviews(ctx), 1)
}

func TestCreateReview_Errors(t *testing.T) {
	f := New()
	ctx := context.Background()
	user := createUser(t, f, "a@b.com")
	p := createPlace(t, f, user.ID())

	_, err := f.CreateReview(ctx, ReviewInput{Text: "ok", Rating: 3, UserID: "ghost", PlaceID: p.ID()})
	assert.True(t, domain.IsReference(err))

	_, err = f.CreateReview(ctx, ReviewInput{Text: "ok", Rating: 3, UserID: user.ID(), PlaceID: "ghost"})
	assert.True(t, domain.IsReference(err))

	_, err = f.CreateReview(ctx, ReviewInput{Text: "", Rating: 0, UserID: "", PlaceID: ""})
	assert.True(t, domain.IsReference(err), "references are checked first")

	for _, rating := range []int{0, 6} {
		_, err = f.CreateReview(ctx, ReviewInput{Text: "ok", Rating: rating, UserID: user.ID(), PlaceID: p.ID()})
		assert.True(t, domain.IsValidation(err), "rating %d", rating)
	}

	assert.Empty(t, f.GetAllReviews(ctx))
	assert.Empty(t, p.Reviews())
}

func TestGetReviewsByPlace(t *testing.T) {
	f := New()
	ctx := context.Background()
	user := createUser(t, f, "a@b.com")
	p1 := createPlace(t, f, user.ID())
	p2 := createPlace(t, f, user.ID())

	for i, p := range []*domain.Place{p1, p2, p1} {
		_, err := f.CreateReview(ctx, ReviewInput{Text: "ok", Rating: i + 1, UserID: user.ID(), PlaceID: p.ID()})
		require.NoError(t, err)
	}

	got, err := f.GetReviewsByPlace(ctx, p1.ID())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rating())
	assert.Equal(t, 3, got[1].Rating())

	_, err = f.GetReviewsByPlace(ctx, "ghost")
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdateReview(t *testing.T) {
	f := New()
	ctx := context.Background()
	user := createUser(t, f, "a@b.com")
	p := createPlace(t, f, user.ID())
	r, err := f.CreateReview(ctx, ReviewInput{Text: "Great", Rating: 5, UserID: user.ID(), PlaceID: p.ID()})
	require.NoError(t, err)

	updated, err := f.UpdateReview(ctx, r.ID(), domain.ReviewPatch{Text: ptr("Updated review text"), Rating: ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, "Updated review text", updated.Text())
	assert.Equal(t, 4, updated.Rating())

	_, err = f.UpdateReview(ctx, r.ID(), domain.ReviewPatch{Rating: ptr(6)})
	assert.True(t, domain.IsValidation(err))

	_, err = f.UpdateReview(ctx, "missing", domain.ReviewPatch{Rating: ptr(3)})
	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteReview(t *testing.T) {
	f := New()
	ctx := context.Background()
	user := createUser(t, f, "a@b.com")
	p := createPlace(t, f, user.ID())
	r, err := f.CreateReview(ctx, ReviewInput{Text: "Great", Rating: 5, UserID: user.ID(), PlaceID: p.ID()})
	require.NoError(t, err)

	require.NoError(t, f.DeleteReview(ctx, r.ID()))

	_, err = f.GetReview(ctx, r.ID())
	assert.True(t, domain.IsNotFound(err))
	assert.Empty(t, p.Reviews())

	err = f.DeleteReview(ctx, r.ID())
	assert.True(t, domain.IsNotFound(err), "second delete")
}

func TestNoCascadeDelete(t *testing.T) {
	f := New()
	ctx := context.Background()
	user := createUser(t, f, "a@b.com")
	p := createPlace(t, f, user.ID())
	r, err := f.CreateReview(ctx, ReviewInput{Text: "Great", Rating: 5, UserID: user.ID(), PlaceID: p.ID()})
	require.NoError(t, err)

	require.NoError(t, f.DeleteReview(ctx, r.ID()))

	_, err = f.GetPlace(ctx, p.ID())
	assert.NoError(t, err)
	_, err = f.GetUser(ctx, user.ID())
	assert.NoError(t, err)
}

func TestRecorderReceivesWrites(t *testing.T) {
	rec := new(MockRecorder)
	rec.On("RecordEntityOp", domain.KindUser, metrics.OpCreate, 1).Return().Once()
	rec.On("RecordEntityOp", domain.KindAmenity, metrics.OpCreate, 1).Return().Once()
	rec.On("RecordEntityOp", domain.KindAmenity, metrics.OpUpdate, 1).Return().Once()

	f := New(WithRecorder(rec))
	ctx := context.Background()
	createUser(t, f, "a@b.com")
	a, err := f.CreateAmenity(ctx, "Wi-Fi")
	require.NoError(t, err)
	_, err = f.UpdateAmenity(ctx, a.ID(), domain.AmenityPatch{Name: ptr("Pool")})
	require.NoError(t, err)

	// failed writes are not recorded
	_, err = f.CreateAmenity(ctx, "")
	require.Error(t, err)

	rec.AssertExpectations(t)
}
