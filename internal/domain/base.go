package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entity kinds, used in error messages, logs and metrics labels.
const (
	KindUser    = "user"
	KindAmenity = "amenity"
	KindPlace   = "place"
	KindReview  = "review"
)

var (
	clockMu sync.Mutex
	clock   = func() time.Time { return time.Now().UTC() }
)

// SetClock replaces the time source for new and touched entities and
// returns a function restoring the previous one. Intended for tests.
func SetClock(fn func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := clock
	clock = fn
	clockMu.Unlock()
	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}

func now() time.Time {
	clockMu.Lock()
	defer clockMu.Unlock()
	return clock()
}

// Base is the identity shared by every entity. The id is assigned once at
// construction and never changes.
type Base struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
}

func newBase() Base {
	t := now()
	return Base{id: uuid.NewString(), createdAt: t, updatedAt: t}
}

func (b *Base) ID() string { return b.id }

func (b *Base) CreatedAt() time.Time { return b.createdAt }

func (b *Base) UpdatedAt() time.Time { return b.updatedAt }

// Touch refreshes the last-update timestamp. The new value is always
// strictly later than the previous one, even on coarse clocks.
func (b *Base) Touch() {
	t := now()
	if !t.After(b.updatedAt) {
		t = b.updatedAt.Add(time.Microsecond)
	}
	b.updatedAt = t
}

func (b *Base) baseAttribute(name string) (any, bool) {
	switch name {
	case "id":
		return b.id, true
	case "created_at":
		return b.createdAt, true
	case "updated_at":
		return b.updatedAt, true
	}
	return nil, false
}
