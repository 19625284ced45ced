package domain

// Place is a listing owned by exactly one user. It references the amenities
// it offers and the reviews written about it.
type Place struct {
	Base
	title       string
	description string
	price       float64
	latitude    float64
	longitude   float64
	owner       *User
	reviews     []*Review
	amenities   []*Amenity
}

// PlacePatch holds the fields supplied by a partial update. Owner and
// Amenities must already be resolved; Amenities are attached, never replaced.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	Owner       *User
	Amenities   []*Amenity
}

func NewPlace(title, description string, price, latitude, longitude float64, owner *User) (*Place, error) {
	p := &Place{Base: newBase()}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetLatitude(latitude); err != nil {
		return nil, err
	}
	if err := p.SetLongitude(longitude); err != nil {
		return nil, err
	}
	if err := p.SetOwner(owner); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Place) Title() string       { return p.title }
func (p *Place) Description() string { return p.description }
func (p *Place) Price() float64      { return p.price }
func (p *Place) Latitude() float64   { return p.latitude }
func (p *Place) Longitude() float64  { return p.longitude }
func (p *Place) Owner() *User        { return p.owner }

func (p *Place) Amenities() []*Amenity {
	out := make([]*Amenity, len(p.amenities))
	copy(out, p.amenities)
	return out
}

func (p *Place) Reviews() []*Review {
	out := make([]*Review, len(p.reviews))
	copy(out, p.reviews)
	return out
}

func (p *Place) SetTitle(v string) error {
	v, err := validateTitle(v)
	if err != nil {
		return err
	}
	p.title = v
	return nil
}

func (p *Place) SetDescription(v string) error {
	v, err := validateDescription(v)
	if err != nil {
		return err
	}
	p.description = v
	return nil
}

func (p *Place) SetPrice(v float64) error {
	v, err := validatePrice(v)
	if err != nil {
		return err
	}
	p.price = v
	return nil
}

func (p *Place) SetLatitude(v float64) error {
	v, err := validateLatitude(v)
	if err != nil {
		return err
	}
	p.latitude = v
	return nil
}

func (p *Place) SetLongitude(v float64) error {
	v, err := validateLongitude(v)
	if err != nil {
		return err
	}
	p.longitude = v
	return nil
}

func (p *Place) SetOwner(u *User) error {
	if u == nil {
		return NewValidationError("owner_id", "owner must be a user")
	}
	p.owner = u
	return nil
}

// HasAmenity reports whether an amenity with the given id is attached.
func (p *Place) HasAmenity(id string) bool {
	for _, a := range p.amenities {
		if a.ID() == id {
			return true
		}
	}
	return false
}

// AddAmenity attaches a; it returns false if a is nil or already attached.
func (p *Place) AddAmenity(a *Amenity) bool {
	if a == nil || p.HasAmenity(a.ID()) {
		return false
	}
	p.amenities = append(p.amenities, a)
	return true
}

func (p *Place) AddReview(r *Review) bool {
	if r == nil {
		return false
	}
	for _, existing := range p.reviews {
		if existing.ID() == r.ID() {
			return false
		}
	}
	p.reviews = append(p.reviews, r)
	return true
}

func (p *Place) RemoveReview(id string) bool {
	for i, r := range p.reviews {
		if r.ID() == id {
			p.reviews = append(p.reviews[:i:i], p.reviews[i+1:]...)
			return true
		}
	}
	return false
}

// Update applies patch atomically: all scalar fields are validated on a
// copy first, so a rejected patch leaves p unchanged.
func (p *Place) Update(patch PlacePatch) error {
	next := Place{
		title:       p.title,
		description: p.description,
		price:       p.price,
		latitude:    p.latitude,
		longitude:   p.longitude,
		owner:       p.owner,
	}
	if patch.Title != nil {
		if err := next.SetTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := next.SetDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Price != nil {
		if err := next.SetPrice(*patch.Price); err != nil {
			return err
		}
	}
	if patch.Latitude != nil {
		if err := next.SetLatitude(*patch.Latitude); err != nil {
			return err
		}
	}
	if patch.Longitude != nil {
		if err := next.SetLongitude(*patch.Longitude); err != nil {
			return err
		}
	}
	if patch.Owner != nil {
		if err := next.SetOwner(patch.Owner); err != nil {
			return err
		}
	}

	p.title = next.title
	p.description = next.description
	p.price = next.price
	p.latitude = next.latitude
	p.longitude = next.longitude
	p.owner = next.owner
	for _, a := range patch.Amenities {
		p.AddAmenity(a)
	}
	return nil
}

func (p *Place) Attribute(name string) (any, bool) {
	switch name {
	case "title":
		return p.title, true
	case "description":
		return p.description, true
	case "price":
		return p.price, true
	case "latitude":
		return p.latitude, true
	case "longitude":
		return p.longitude, true
	case "owner_id":
		return p.owner.ID(), true
	}
	return p.baseAttribute(name)
}
