package entity

type User struct {
	Base
	firstName string
	lastName  string
	email     string
	password  string
	isAdmin   bool
	places    []*Place
	reviews   []*Review
}

// UserUpdate is a partial profile update. Identity, timestamps and the admin
// flag have no field here, so they cannot change through it.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

func NewUser(firstName, lastName, email, password string) (*User, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	return &User{
		Base:      NewBase(),
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		password:  password,
		places:    []*Place{},
		reviews:   []*Review{},
	}, nil
}

// Getters
func (u *User) FirstName() string { return u.firstName }
func (u *User) LastName() string  { return u.lastName }
func (u *User) Email() string     { return u.email }
func (u *User) Password() string  { return u.password }
func (u *User) IsAdmin() bool     { return u.isAdmin }

// Places returns a copy of the back-reference list.
func (u *User) Places() []*Place {
	return append([]*Place(nil), u.places...)
}

// Reviews returns a copy of the back-reference list.
func (u *User) Reviews() []*Review {
	return append([]*Review(nil), u.reviews...)
}

// Buisness methods

// UpdateProfile validates then applies the supplied fields and touches the user.
func (u *User) UpdateProfile(upd UserUpdate) error {
	if upd.Email != nil {
		if err := ValidateEmail(*upd.Email); err != nil {
			return err
		}
	}

	if upd.FirstName != nil {
		u.firstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.lastName = *upd.LastName
	}
	if upd.Email != nil {
		u.email = *upd.Email
	}
	if upd.Password != nil {
		u.password = *upd.Password
	}

	u.Touch()
	return nil
}

func (u *User) AddPlace(place *Place) {
	u.places = append(u.places, place)
}

// RemovePlace drops the place if present and reports whether it was.
func (u *User) RemovePlace(place *Place) bool {
	var removed bool
	u.places, removed = removeRef(u.places, place)
	return removed
}

func (u *User) AddReview(review *Review) {
	u.reviews = append(u.reviews, review)
}

// RemoveReview drops the review if present and reports whether it was.
func (u *User) RemoveReview(review *Review) bool {
	var removed bool
	u.reviews, removed = removeRef(u.reviews, review)
	return removed
}

// removeRef removes the first element identical to target.
func removeRef[T comparable](refs []T, target T) ([]T, bool) {
	for i, ref := range refs {
		if ref == target {
			return append(refs[:i], refs[i+1:]...), true
		}
	}
	return refs, false
}
