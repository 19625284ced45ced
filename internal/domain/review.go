package domain

// Review is a user's rated comment about a place.
type Review struct {
	Base
	text   string
	rating int
	place  *Place
	user   *User
}

type ReviewPatch struct {
	Text   *string
	Rating *int
}

func NewReview(text string, rating int, place *Place, user *User) (*Review, error) {
	r := &Review{Base: newBase()}
	if err := r.SetText(text); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}
	if err := r.SetPlace(place); err != nil {
		return nil, err
	}
	if err := r.SetUser(user); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) Text() string  { return r.text }
func (r *Review) Rating() int   { return r.rating }
func (r *Review) Place() *Place { return r.place }
func (r *Review) User() *User   { return r.user }

func (r *Review) SetText(v string) error {
	v, err := validateReviewText(v)
	if err != nil {
		return err
	}
	r.text = v
	return nil
}

func (r *Review) SetRating(v int) error {
	v, err := validateRating(v)
	if err != nil {
		return err
	}
	r.rating = v
	return nil
}

func (r *Review) SetPlace(p *Place) error {
	if p == nil {
		return NewValidationError("place_id", "place must be a place")
	}
	r.place = p
	return nil
}

func (r *Review) SetUser(u *User) error {
	if u == nil {
		return NewValidationError("user_id", "user must be a user")
	}
	r.user = u
	return nil
}

func (r *Review) Update(p ReviewPatch) error {
	text, rating := r.text, r.rating
	var err error
	if p.Text != nil {
		if text, err = validateReviewText(*p.Text); err != nil {
			return err
		}
	}
	if p.Rating != nil {
		if rating, err = validateRating(*p.Rating); err != nil {
			return err
		}
	}
	r.text, r.rating = text, rating
	return nil
}

func (r *Review) Attribute(name string) (any, bool) {
	switch name {
	case "text":
		return r.text, true
	case "rating":
		return r.rating, true
	case "place_id":
		return r.place.ID(), true
	case "user_id":
		return r.user.ID(), true
	}
	return r.baseAttribute(name)
}
