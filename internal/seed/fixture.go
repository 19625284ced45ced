// Package seed loads YAML fixtures and creates their entities through the
// facade.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is a set of entities that refer to each other by key instead of id.
type Fixture struct {
	Users     []User    `yaml:"users"`
	Amenities []Amenity `yaml:"amenities"`
	Places    []Place   `yaml:"places"`
	Reviews   []Review  `yaml:"reviews"`
}

type User struct {
	Key       string `yaml:"key"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	IsAdmin   bool   `yaml:"is_admin"`
}

type Amenity struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type Place struct {
	Key         string   `yaml:"key"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Latitude    float64  `yaml:"latitude"`
	Longitude   float64  `yaml:"longitude"`
	Owner       string   `yaml:"owner"`
	Amenities   []string `yaml:"amenities"`
}

type Review struct {
	Text   string `yaml:"text"`
	Rating int    `yaml:"rating"`
	User   string `yaml:"user"`
	Place  string `yaml:"place"`
}

// Load reads and checks the fixture at path.
func Load(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a fixture document. Fields the fixture types do not declare
// are rejected.
func Decode(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode fixture: document is empty")
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := fx.Check(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// Check verifies that keys are present and unique and that every reference
// names a key declared in the fixture. Field values are left to the domain.
func (fx *Fixture) Check() error {
	users, err := keySet("users", len(fx.Users), func(i int) string { return fx.Users[i].Key })
	if err != nil {
		return err
	}
	amenities, err := keySet("amenities", len(fx.Amenities), func(i int) string { return fx.Amenities[i].Key })
	if err != nil {
		return err
	}
	places, err := keySet("places", len(fx.Places), func(i int) string { return fx.Places[i].Key })
	if err != nil {
		return err
	}

	for i, p := range fx.Places {
		if _, ok := users[p.Owner]; !ok {
			return fmt.Errorf("places[%d] (%s): unknown owner %q", i, p.Key, p.Owner)
		}
		for _, a := range p.Amenities {
			if _, ok := amenities[a]; !ok {
				return fmt.Errorf("places[%d] (%s): unknown amenity %q", i, p.Key, a)
			}
		}
	}
	for i, r := range fx.Reviews {
		if _, ok := users[r.User]; !ok {
			return fmt.Errorf("reviews[%d]: unknown user %q", i, r.User)
		}
		if _, ok := places[r.Place]; !ok {
			return fmt.Errorf("reviews[%d]: unknown place %q", i, r.Place)
		}
	}
	return nil
}

func keySet(section string, n int, key func(int) string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if k == "" {
			return nil, fmt.Errorf("%s[%d]: key is required", section, i)
		}
		if _, dup := set[k]; dup {
			return nil, fmt.Errorf("%s[%d]: duplicate key %q", section, i, k)
		}
		set[k] = struct{}{}
	}
	return set, nil
}
