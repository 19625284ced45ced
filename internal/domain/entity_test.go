package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("Alice", "Smith", "alice@example.com", false)
	require.NoError(t, err)
	return u
}

func mustPlace(t *testing.T, owner *User) *Place {
	t.Helper()
	p, err := NewPlace("Nice Place", "A nice place", 50, 48.8566, 2.3522, owner)
	require.NoError(t, err)
	return p
}

func TestNewUser_Valid(t *testing.T) {
	u, err := NewUser("Jane", "Doe", "jane.doe@example.com", true)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID())
	assert.Equal(t, "Jane", u.FirstName())
	assert.Equal(t, "Doe", u.LastName())
	assert.Equal(t, "jane.doe@example.com", u.Email())
	assert.True(t, u.IsAdmin())
	assert.False(t, u.CreatedAt().IsZero())
	assert.Equal(t, u.CreatedAt(), u.UpdatedAt())
}

func TestNewUser_Invalid(t *testing.T) {
	long := strings.Repeat("a", MaxNameLength+1)

	cases := []struct {
		name      string
		first     string
		last      string
		email     string
		wantField string
	}{
		{"empty first name", "", "Doe", "a@b.com", "first_name"},
		{"empty last name", "Jane", "", "a@b.com", "last_name"},
		{"long first name", long, "Doe", "a@b.com", "first_name"},
		{"long last name", "Jane", long, "a@b.com", "last_name"},
		{"email without at", "Jane", "Doe", "invalid-email", "email"},
		{"email without dot", "Jane", "Doe", "jane@example", "email"},
		{"empty email", "Jane", "Doe", "", "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := NewUser(tc.first, tc.last, tc.email, false)
			assert.Nil(t, u)
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestUser_NameLengthCountsCharacters(t *testing.T) {
	_, err := NewUser(strings.Repeat("é", MaxNameLength), "Doe", "a@b.com", false)
	assert.NoError(t, err)
}

func TestUser_UpdateIsAtomic(t *testing.T) {
	u := mustUser(t)
	first := "Bob"
	bad := "not-an-email"

	err := u.Update(UserPatch{FirstName: &first, Email: &bad})
	require.Error(t, err)
	assert.Equal(t, "Alice", u.FirstName())
	assert.Equal(t, "alice@example.com", u.Email())

	admin := true
	require.NoError(t, u.Update(UserPatch{FirstName: &first, IsAdmin: &admin}))
	assert.Equal(t, "Bob", u.FirstName())
	assert.Equal(t, "Smith", u.LastName())
	assert.True(t, u.IsAdmin())
}

func TestUser_SetterRejectsInvalid(t *testing.T) {
	u := mustUser(t)
	assert.Error(t, u.SetEmail("nope"))
	assert.Error(t, u.SetFirstName(""))
	assert.Equal(t, "alice@example.com", u.Email())
	assert.Equal(t, "Alice", u.FirstName())
}

func TestNewAmenity(t *testing.T) {
	a, err := NewAmenity("Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", a.Name())

	_, err = NewAmenity("")
	assert.True(t, IsValidation(err))

	_, err = NewAmenity(strings.Repeat("x", MaxAmenityNameLength+1))
	assert.True(t, IsValidation(err))

	_, err = NewAmenity(strings.Repeat("x", MaxAmenityNameLength))
	assert.NoError(t, err)
}

func TestNewPlace_NormalizesFields(t *testing.T) {
	owner := mustUser(t)

	p, err := NewPlace("  Loft  ", "   ", 50, -90, 180, owner)
	require.NoError(t, err)

	assert.Equal(t, "Loft", p.Title())
	assert.Equal(t, "", p.Description())
	assert.Equal(t, 50.0, p.Price())
	assert.Equal(t, -90.0, p.Latitude())
	assert.Equal(t, 180.0, p.Longitude())
	assert.Same(t, owner, p.Owner())
	assert.Empty(t, p.Amenities())
	assert.Empty(t, p.Reviews())
}

func TestNewPlace_Invalid(t *testing.T) {
	owner := mustUser(t)

	cases := []struct {
		name      string
		title     string
		price     float64
		lat       float64
		lon       float64
		owner     *User
		wantField string
	}{
		{"blank title", "   ", 10, 0, 0, owner, "title"},
		{"long title", strings.Repeat("t", MaxPlaceTitleLength+1), 10, 0, 0, owner, "title"},
		{"negative price", "Loft", -0.01, 0, 0, owner, "price"},
		{"latitude too high", "Loft", 10, 90.0001, 0, owner, "latitude"},
		{"latitude too low", "Loft", 10, -91, 0, owner, "latitude"},
		{"longitude too high", "Loft", 10, 0, 200, owner, "longitude"},
		{"longitude too low", "Loft", 10, 0, -180.5, owner, "longitude"},
		{"missing owner", "Loft", 10, 0, 0, nil, "owner_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlace(tc.title, "", tc.price, tc.lat, tc.lon, tc.owner)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestPlace_AddAmenitySkipsDuplicates(t *testing.T) {
	p := mustPlace(t, mustUser(t))
	wifi, _ := NewAmenity("Wi-Fi")

	assert.True(t, p.AddAmenity(wifi))
	assert.False(t, p.AddAmenity(wifi))
	assert.False(t, p.AddAmenity(nil))
	assert.Len(t, p.Amenities(), 1)
	assert.True(t, p.HasAmenity(wifi.ID()))
}

func TestPlace_UpdateIsAtomic(t *testing.T) {
	owner := mustUser(t)
	p := mustPlace(t, owner)
	wifi, _ := NewAmenity("Wi-Fi")

	title := "Updated"
	badLat := 120.0
	err := p.Update(PlacePatch{Title: &title, Latitude: &badLat, Amenities: []*Amenity{wifi}})
	require.Error(t, err)
	assert.Equal(t, "Nice Place", p.Title())
	assert.Empty(t, p.Amenities())

	price := 75.0
	require.NoError(t, p.Update(PlacePatch{Title: &title, Price: &price, Amenities: []*Amenity{wifi, wifi}}))
	assert.Equal(t, "Updated", p.Title())
	assert.Equal(t, 75.0, p.Price())
	assert.Equal(t, "A nice place", p.Description())
	assert.Len(t, p.Amenities(), 1)
}

func TestPlace_ReviewsList(t *testing.T) {
	owner := mustUser(t)
	p := mustPlace(t, owner)
	r, err := NewReview("Great", 5, p, owner)
	require.NoError(t, err)

	snapshot := p.Reviews()
	assert.True(t, p.AddReview(r))
	assert.False(t, p.AddReview(r))
	assert.Empty(t, snapshot)
	assert.Len(t, p.Reviews(), 1)

	assert.True(t, p.RemoveReview(r.ID()))
	assert.False(t, p.RemoveReview(r.ID()))
	assert.Empty(t, p.Reviews())
}

func TestNewReview(t *testing.T) {
	owner := mustUser(t)
	p := mustPlace(t, owner)

	r, err := NewReview("Great place!", 5, p, owner)
	require.NoError(t, err)
	assert.Equal(t, "Great place!", r.Text())
	assert.Equal(t, 5, r.Rating())
	assert.Same(t, p, r.Place())
	assert.Same(t, owner, r.User())

	for _, rating := range []int{0, 6, -1} {
		_, err := NewReview("ok", rating, p, owner)
		assert.True(t, IsValidation(err), "rating %d", rating)
	}

	_, err = NewReview("", 3, p, owner)
	assert.True(t, IsValidation(err))
	_, err = NewReview("ok", 3, nil, owner)
	assert.True(t, IsValidation(err))
	_, err = NewReview("ok", 3, p, nil)
	assert.True(t, IsValidation(err))
}

func TestReview_Update(t *testing.T) {
	owner := mustUser(t)
	r, err := NewReview("Great", 5, mustPlace(t, owner), owner)
	require.NoError(t, err)

	text := "Updated review text"
	bad := 9
	require.Error(t, r.Update(ReviewPatch{Text: &text, Rating: &bad}))
	assert.Equal(t, "Great", r.Text())

	rating := 4
	require.NoError(t, r.Update(ReviewPatch{Text: &text, Rating: &rating}))
	assert.Equal(t, text, r.Text())
	assert.Equal(t, 4, r.Rating())
}

func TestTouch_StrictlyIncreases(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	restore := SetClock(func() time.Time { return fixed })
	defer restore()

	a, err := NewAmenity("Pool")
	require.NoError(t, err)
	before := a.UpdatedAt()

	a.Touch()
	first := a.UpdatedAt()
	a.Touch()

	assert.True(t, first.After(before))
	assert.True(t, a.UpdatedAt().After(first))
	assert.Equal(t, fixed, a.CreatedAt())
}

func TestAttribute(t *testing.T) {
	owner := mustUser(t)
	p := mustPlace(t, owner)

	v, ok := owner.Attribute("email")
	assert.True(t, ok)
	assert.Equal(t, "alice@example.com", v)

	v, ok = p.Attribute("owner_id")
	assert.True(t, ok)
	assert.Equal(t, owner.ID(), v)

	v, ok = p.Attribute("id")
	assert.True(t, ok)
	assert.Equal(t, p.ID(), v)

	_, ok = p.Attribute("nope")
	assert.False(t, ok)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("f", "bad")))
	assert.True(t, IsReference(NewReferenceError("owner_id", "x", "")))
	assert.True(t, IsNotFound(NewNotFoundError(KindReview, "x")))
	assert.False(t, IsNotFound(NewValidationError("f", "bad")))

	assert.Equal(t, "review not found", NewNotFoundError(KindReview, "x").Error())
	assert.Equal(t, `owner_id "x" does not exist`, NewReferenceError("owner_id", "x", "").Error())
}
