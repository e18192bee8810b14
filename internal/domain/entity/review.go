package entity

type Review struct {
	Base
	rating  int
	comment string
	userID  string
	placeID string
}

// ReviewUpdate is a partial review update. Author and place are fixed.
type ReviewUpdate struct {
	Rating  *int
	Comment *string
}

func NewReview(rating int, comment, userID, placeID string) (*Review, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	trimmed, err := trimRequired("comment", comment, msgEmptyComment)
	if err != nil {
		return nil, err
	}

	return &Review{
		Base:    NewBase(),
		rating:  rating,
		comment: trimmed,
		userID:  userID,
		placeID: placeID,
	}, nil
}

func (r *Review) Rating() int     { return r.rating }
func (r *Review) Comment() string { return r.comment }
func (r *Review) UserID() string  { return r.userID }
func (r *Review) PlaceID() string { return r.placeID }

// Apply re-runs the construction rules on the supplied fields, then assigns.
func (r *Review) Apply(upd ReviewUpdate) error {
	if upd.Rating != nil {
		if err := validateRating(*upd.Rating); err != nil {
			return err
		}
	}
	var comment string
	if upd.Comment != nil {
		trimmed, err := trimRequired("comment", *upd.Comment, msgEmptyComment)
		if err != nil {
			return err
		}
		comment = trimmed
	}

	if upd.Rating != nil {
		r.rating = *upd.Rating
	}
	if upd.Comment != nil {
		r.comment = comment
	}
	return nil
}
