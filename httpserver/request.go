package httpserver

import (
	"moviedb/movie"
)

// MovieRequest is the body of create and update calls. Every field is
// required on create; update only looks at the fields that were sent.
type MovieRequest struct {
	Title       movie.Field `json:"title" validate:"required"`
	Rating      movie.Field `json:"rating" validate:"required"`
	Awards      movie.Field `json:"awards" validate:"required"`
	ReleaseDate movie.Field `json:"release_date" validate:"required"`
	Length      movie.Field `json:"length" validate:"required"`
	GenreID     movie.Field `json:"genre_id" validate:"required"`
}

func (r MovieRequest) ToInput() (movie.Input, error) {
	rating, err := r.Rating.Float("rating")
	if err != nil {
		return movie.Input{}, err
	}
	released, err := r.ReleaseDate.Date("release_date")
	if err != nil {
		return movie.Input{}, err
	}
	length, err := r.Length.Int("length")
	if err != nil {
		return movie.Input{}, err
	}
	genreID, err := r.GenreID.Int("genre_id")
	if err != nil {
		return movie.Input{}, err
	}

	return movie.Input{
		Title:       r.Title.String(),
		Rating:      rating,
		Awards:      r.Awards.String(),
		ReleaseDate: released,
		Length:      int(length),
		GenreID:     genreID,
	}, nil
}

func (r MovieRequest) ToChanges() (movie.Changes, error) {
	var ch movie.Changes

	if r.Title.IsPresent() {
		title := r.Title.String()
		ch.Title = &title
	}
	if r.Rating.IsPresent() {
		rating, err := r.Rating.Float("rating")
		if err != nil {
			return movie.Changes{}, err
		}
		ch.Rating = &rating
	}
	if r.Awards.IsPresent() {
		awards := r.Awards.String()
		ch.Awards = &awards
	}
	if r.ReleaseDate.IsPresent() {
		released, err := r.ReleaseDate.Date("release_date")
		if err != nil {
			return movie.Changes{}, err
		}
		ch.ReleaseDate = &released
	}
	if r.Length.IsPresent() {
		length, err := r.Length.Int("length")
		if err != nil {
			return movie.Changes{}, err
		}
		n := int(length)
		ch.Length = &n
	}
	if r.GenreID.IsPresent() {
		genreID, err := r.GenreID.Int("genre_id")
		if err != nil {
			return movie.Changes{}, err
		}
		ch.GenreID = &genreID
	}

	if ch.IsEmpty() {
		return movie.Changes{}, movie.ErrNothingToUpdate
	}
	return ch, nil
}
