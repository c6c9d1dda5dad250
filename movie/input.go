package movie

import (
	"strings"
	"time"
)

// Input carries every field needed to create a movie.
type Input struct {
	Title       string
	Rating      float64
	Awards      string
	ReleaseDate time.Time
	Length      int
	GenreID     int64
}

func (in Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidTitle
	}
	if !validRating(in.Rating) {
		return ErrInvalidRating
	}
	if !validLength(in.Length) {
		return ErrInvalidLength
	}
	if in.GenreID <= 0 {
		return ErrGenreNotFound
	}
	return nil
}

func (in Input) ToMovie() Movie {
	return Movie{
		Title:       in.Title,
		Rating:      in.Rating,
		Awards:      in.Awards,
		ReleaseDate: in.ReleaseDate,
		Length:      in.Length,
		GenreID:     in.GenreID,
	}
}

// Changes is a partial update. Nil fields were not sent.
type Changes struct {
	Title       *string
	Rating      *float64
	Awards      *string
	ReleaseDate *time.Time
	Length      *int
	GenreID     *int64
}

func (ch Changes) IsEmpty() bool {
	return ch.Title == nil && ch.Rating == nil && ch.Awards == nil &&
		ch.ReleaseDate == nil && ch.Length == nil && ch.GenreID == nil
}

// Apply overwrites the fields of m whose new value is set and non-zero.
// Zero values keep what m already holds; the title is trimmed.
func (ch Changes) Apply(m *Movie) {
	if ch.Title != nil {
		if title := strings.TrimSpace(*ch.Title); title != "" {
			m.Title = title
		}
	}
	if ch.Rating != nil && *ch.Rating != 0 {
		m.Rating = *ch.Rating
	}
	if ch.Awards != nil && *ch.Awards != "" {
		m.Awards = *ch.Awards
	}
	if ch.ReleaseDate != nil && !ch.ReleaseDate.IsZero() {
		m.ReleaseDate = *ch.ReleaseDate
	}
	if ch.Length != nil && *ch.Length != 0 {
		m.Length = *ch.Length
	}
	if ch.GenreID != nil && *ch.GenreID != 0 {
		m.GenreID = *ch.GenreID
	}
}

func (ch Changes) Validate() error {
	if ch.IsEmpty() {
		return ErrNothingToUpdate
	}
	if ch.Rating != nil && !validRating(*ch.Rating) {
		return ErrInvalidRating
	}
	if ch.Length != nil && !validLength(*ch.Length) {
		return ErrInvalidLength
	}
	if ch.GenreID != nil && *ch.GenreID < 0 {
		return ErrGenreNotFound
	}
	return nil
}

// validRating also rejects NaN, which fails every comparison.
func validRating(r float64) bool {
	return r >= 0 && r <= MaxRating
}

func validLength(n int) bool {
	return n >= 0 && int64(n) <= MaxLength
}
