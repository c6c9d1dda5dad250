package movie

import (
	"math"
	"strconv"
	"strings"
	"time"

	"moviedb/errs"
)

// DateLayout is the wire and storage format of release dates.
const DateLayout = "2006-01-02"

// Column bounds of the movies table: rating is numeric(3,1), length an INTEGER.
const (
	MaxRating = 99.9
	MaxLength = math.MaxInt32
)

var (
	ErrInvalidID        = errs.Errorf(errs.ENOTFOUND, "invalid movie id")
	ErrMovieNotFound    = errs.Errorf(errs.ENOTFOUND, "no movie with that id")
	ErrGenreNotFound    = errs.Errorf(errs.EINVALID, "genre does not exist")
	ErrInvalidTitle     = errs.Errorf(errs.EINVALID, "title must not be blank")
	ErrInvalidRating    = errs.Errorf(errs.EINVALID, "validation error: rating must be between 0 and 99.9")
	ErrInvalidLength    = errs.Errorf(errs.EINVALID, "validation error: length must be between 0 and 2147483647")
	ErrNothingToUpdate  = errs.Errorf(errs.EINVALID, "validation error: at least one field is required")
	ErrInvalidSortField = errs.Errorf(errs.EINVALID, "invalid sort field")
	ErrInvalidValue     = errs.Errorf(errs.EINVALID, "validation error: fields must be strings or numbers")
)

type Movie struct {
	ID              int64
	Title           string
	Rating          float64
	Awards          string
	ReleaseDate     time.Time
	Length          int
	GenreID         int64
	FavoriteMovieID *int64
	Genre           *Genre
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Genre struct {
	ID      int64
	Name    string
	Ranking int
}

// ParseID parses a movie id taken from a request path.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

type SortField string

const (
	SortByID          SortField = "id"
	SortByReleaseDate SortField = "release_date"
	SortByRating      SortField = "rating"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByID, SortByReleaseDate, SortByRating:
		return true
	}
	return false
}

// Query narrows a Find call. Zero values mean no filter, id order and no limit.
type Query struct {
	MinRating *float64
	OrderBy   SortField
	Desc      bool
	Limit     int
}
