package entity

type Place struct {
	Base
	title       string
	description string
	price       float64
	latitude    *float64
	longitude   *float64
	ownerID     string
	reviews     []*Review
	amenities   []*Amenity
}

// Coordinate is an optional update to a nullable coordinate. Set=false leaves
// the current value alone; Set=true with a nil Value clears it.
type Coordinate struct {
	Set   bool
	Value *float64
}

// PlaceUpdate is a partial place update.
type PlaceUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    Coordinate
	Longitude   Coordinate
	OwnerID     *string
}

func NewPlace(
	title, description string,
	price float64,
	latitude, longitude *float64,
	ownerID string,
) (*Place, error) {
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateLatitude(latitude); err != nil {
		return nil, err
	}
	if err := validateLongitude(longitude); err != nil {
		return nil, err
	}

	return &Place{
		Base:        NewBase(),
		title:       title,
		description: description,
		price:       price,
		latitude:    copyFloat(latitude),
		longitude:   copyFloat(longitude),
		ownerID:     ownerID,
		reviews:     []*Review{},
		amenities:   []*Amenity{},
	}, nil
}

// Getters
func (p *Place) Title() string       { return p.title }
func (p *Place) Description() string { return p.description }
func (p *Place) Price() float64      { return p.price }
func (p *Place) Latitude() *float64  { return copyFloat(p.latitude) }
func (p *Place) Longitude() *float64 { return copyFloat(p.longitude) }
func (p *Place) OwnerID() string     { return p.ownerID }

func (p *Place) Reviews() []*Review {
	return append([]*Review(nil), p.reviews...)
}

func (p *Place) Amenities() []*Amenity {
	return append([]*Amenity(nil), p.amenities...)
}

// Apply validates every supplied field before assigning any of them. It does
// not touch the timestamp; the repository update path does that.
func (p *Place) Apply(upd PlaceUpdate) error {
	if upd.Price != nil {
		if err := validatePrice(*upd.Price); err != nil {
			return err
		}
	}
	if upd.Latitude.Set {
		if err := validateLatitude(upd.Latitude.Value); err != nil {
			return err
		}
	}
	if upd.Longitude.Set {
		if err := validateLongitude(upd.Longitude.Value); err != nil {
			return err
		}
	}

	if upd.Title != nil {
		p.title = *upd.Title
	}
	if upd.Description != nil {
		p.description = *upd.Description
	}
	if upd.Price != nil {
		p.price = *upd.Price
	}
	if upd.Latitude.Set {
		p.latitude = copyFloat(upd.Latitude.Value)
	}
	if upd.Longitude.Set {
		p.longitude = copyFloat(upd.Longitude.Value)
	}
	if upd.OwnerID != nil {
		p.ownerID = *upd.OwnerID
	}
	return nil
}

// AddReview appends unconditionally and touches the place.
func (p *Place) AddReview(review *Review) {
	p.reviews = append(p.reviews, review)
	p.Touch()
}

// RemoveReview drops the review if present and reports whether it was.
func (p *Place) RemoveReview(review *Review) bool {
	var removed bool
	p.reviews, removed = removeRef(p.reviews, review)
	return removed
}

// AddAmenity inserts the amenity unless this exact amenity is already linked.
// The timestamp only moves when something was inserted.
func (p *Place) AddAmenity(amenity *Amenity) bool {
	for _, a := range p.amenities {
		if a == amenity {
			return false
		}
	}
	p.amenities = append(p.amenities, amenity)
	p.Touch()
	return true
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
