package postgres

import (
	"context"
	"fmt"
	"strings"

	"moviedb/movie"

	"gorm.io/gorm"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Ensure returns the genre called name, creating it with the next free
// ranking when it does not exist yet.
func (r *GenreRepository) Ensure(ctx context.Context, name string) (movie.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return movie.Genre{}, movie.ErrGenreNotFound
	}

	var model GenreModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ranking int
		err := tx.Model(&GenreModel{}).Select("COALESCE(MAX(ranking), 0)").Scan(&ranking).Error
		if err != nil {
			return err
		}
		return tx.Where(GenreModel{Name: name}).
			Attrs(GenreModel{Ranking: ranking + 1}).
			FirstOrCreate(&model).Error
	})
	if err != nil {
		return movie.Genre{}, fmt.Errorf("ensure genre %q: %w", name, err)
	}

	return movie.Genre{ID: model.ID, Name: model.Name, Ranking: model.Ranking}, nil
}
