package domain

// Amenity is a feature a place can offer, such as Wi-Fi or parking.
type Amenity struct {
	Base
	name string
}

type AmenityPatch struct {
	Name *string
}

func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{Base: newBase()}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) Name() string { return a.name }

func (a *Amenity) SetName(v string) error {
	v, err := validateAmenityName(v)
	if err != nil {
		return err
	}
	a.name = v
	return nil
}

func (a *Amenity) Update(p AmenityPatch) error {
	if p.Name == nil {
		return nil
	}
	return a.SetName(*p.Name)
}

func (a *Amenity) Attribute(name string) (any, bool) {
	if name == "name" {
		return a.name, true
	}
	return a.baseAttribute(name)
}
