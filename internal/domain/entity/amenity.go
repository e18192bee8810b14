package entity

type Amenity struct {
	Base
	name        string
	description string
}

type AmenityUpdate struct {
	Name        *string
	Description *string
}

func NewAmenity(name, description string) (*Amenity, error) {
	trimmed, err := trimRequired("name", name, msgEmptyAmenityName)
	if err != nil {
		return nil, err
	}

	return &Amenity{
		Base:        NewBase(),
		name:        trimmed,
		description: description,
	}, nil
}

func (a *Amenity) Name() string        { return a.name }
func (a *Amenity) Description() string { return a.description }

func (a *Amenity) Apply(upd AmenityUpdate) error {
	var name string
	if upd.Name != nil {
		trimmed, err := trimRequired("name", *upd.Name, msgEmptyAmenityName)
		if err != nil {
			return err
		}
		name = trimmed
	}

	if upd.Name != nil {
		a.name = name
	}
	if upd.Description != nil {
		a.description = *upd.Description
	}
	return nil
}
