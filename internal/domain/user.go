package domain

// User is a registered person who can own places and write reviews.
type User struct {
	Base
	firstName string
	lastName  string
	email     string
	isAdmin   bool
}

// UserPatch holds the fields supplied by a partial update. Nil fields are left unchanged.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	IsAdmin   *bool
}

func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	u := &User{Base: newBase()}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	u.SetIsAdmin(isAdmin)
	return u, nil
}

func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string  { return u.lastName }
func (u *User) Email() string     { return u.email }
func (u *User) IsAdmin() bool     { return u.isAdmin }

func (u *User) SetFirstName(v string) error {
	v, err := validatePersonName("first_name", v)
	if err != nil {
		return err
	}
	u.firstName = v
	return nil
}

func (u *User) SetLastName(v string) error {
	v, err := validatePersonName("last_name", v)
	if err != nil {
		return err
	}
	u.lastName = v
	return nil
}

func (u *User) SetEmail(v string) error {
	v, err := validateEmail(v)
	if err != nil {
		return err
	}
	u.email = v
	return nil
}

func (u *User) SetIsAdmin(v bool) { u.isAdmin = v }

// Update applies p atomically: every supplied field is validated before any is assigned.
func (u *User) Update(p UserPatch) error {
	next := *u
	if p.FirstName != nil {
		if err := next.SetFirstName(*p.FirstName); err != nil {
			return err
		}
	}
	if p.LastName != nil {
		if err := next.SetLastName(*p.LastName); err != nil {
			return err
		}
	}
	if p.Email != nil {
		if err := next.SetEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.IsAdmin != nil {
		next.SetIsAdmin(*p.IsAdmin)
	}
	u.firstName, u.lastName, u.email, u.isAdmin = next.firstName, next.lastName, next.email, next.isAdmin
	return nil
}

func (u *User) Attribute(name string) (any, bool) {
	switch name {
	case "first_name":
		return u.firstName, true
	case "last_name":
		return u.lastName, true
	case "email":
		return u.email, true
	case "is_admin":
		return u.isAdmin, true
	}
	return u.baseAttribute(name)
}
