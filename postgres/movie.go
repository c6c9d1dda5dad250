package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviedb/movie"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenreModel represents the database model for genres
type GenreModel struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"not null;uniqueIndex"`
	Ranking int    `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (GenreModel) TableName() string {
	return "genres"
}

// MovieModel represents the database model for movies
type MovieModel struct {
	ID              int64     `gorm:"primaryKey"`
	Title           string    `gorm:"not null"`
	Rating          float64   `gorm:"type:numeric(3,1);not null"`
	Awards          string    `gorm:"not null;default:''"`
	ReleaseDate     time.Time `gorm:"type:date;not null"`
	Length          int       `gorm:"not null"`
	GenreID         *int64
	Genre           *GenreModel `gorm:"foreignKey:GenreID"`
	FavoriteMovieID *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	mv := movie.Movie{
		ID:              m.ID,
		Title:           m.Title,
		Rating:          m.Rating,
		Awards:          m.Awards,
		ReleaseDate:     m.ReleaseDate,
		Length:          m.Length,
		FavoriteMovieID: m.FavoriteMovieID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.GenreID != nil {
		mv.GenreID = *m.GenreID
	}
	if m.Genre != nil {
		mv.Genre = &movie.Genre{
			ID:      m.Genre.ID,
			Name:    m.Genre.Name,
			Ranking: m.Genre.Ranking,
		}
	}
	return mv
}

func newMovieModel(m movie.Movie) MovieModel {
	model := MovieModel{
		ID:              m.ID,
		Title:           m.Title,
		Rating:          m.Rating,
		Awards:          m.Awards,
		ReleaseDate:     m.ReleaseDate,
		Length:          m.Length,
		FavoriteMovieID: m.FavoriteMovieID,
	}
	if m.GenreID != 0 {
		genreID := m.GenreID
		model.GenreID = &genreID
	}
	return model
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// withGenre preloads the genre columns exposed by the API.
func (r *MovieRepository) withGenre(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Genre", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "ranking")
	})
}

func (r *MovieRepository) Find(ctx context.Context, q movie.Query) ([]movie.Movie, error) {
	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = movie.SortByID
	}
	if !orderBy.Valid() {
		return nil, movie.ErrInvalidSortField
	}

	tx := r.withGenre(ctx)
	if q.MinRating != nil {
		tx = tx.Where("rating >= ?", *q.MinRating)
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: string(orderBy)}, Desc: q.Desc})
	if orderBy != movie.SortByID {
		// stable output for ties
		tx = tx.Order("id")
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var models []MovieModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies, nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel
	err := r.withGenre(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("find movie %d: %w", id, err)
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) Create(ctx context.Context, m movie.Movie) (int64, error) {
	model := newMovieModel(m)
	model.ID = 0
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&model).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return 0, movie.ErrGenreNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("create movie: %w", err)
	}
	return model.ID, nil
}

func (r *MovieRepository) Update(ctx context.Context, m movie.Movie) error {
	model := newMovieModel(m)
	result := r.db.WithContext(ctx).
		Model(&MovieModel{ID: m.ID}).
		Select("title", "rating", "awards", "release_date", "length", "genre_id", "updated_at").
		Updates(&model)
	if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
		return movie.ErrGenreNotFound
	}
	if result.Error != nil {
		return fmt.Errorf("update movie %d: %w", m.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&MovieModel{}).
			Where("favorite_movie_id = ?", id).
			Update("favorite_movie_id", nil).Error
		if err != nil {
			return fmt.Errorf("clear favorite movie %d: %w", id, err)
		}

		result := tx.Delete(&MovieModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete movie %d: %w", id, result.Error)
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
