package movie

import "context"

const (
	NewestLimit          = 5
	RecommendedMinRating = 8.0
)

type Service interface {
	List(ctx context.Context) ([]Movie, error)
	Newest(ctx context.Context) ([]Movie, error)
	Recommended(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, id int64) (Movie, error)
	Create(ctx context.Context, in Input) (Movie, error)
	Update(ctx context.Context, id int64, ch Changes) (Movie, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Repository is the movie store. Every returned movie has its Genre loaded
// when GenreID points at an existing genre.
type Repository interface {
	Find(ctx context.Context, q Query) ([]Movie, error)
	FindByID(ctx context.Context, id int64) (Movie, error)
	Create(ctx context.Context, m Movie) (int64, error)
	Update(ctx context.Context, m Movie) error
	// Delete clears favorite_movie_id references to id, then removes the
	// movie, returning the number of deleted rows.
	Delete(ctx context.Context, id int64) (int64, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) List(ctx context.Context) ([]Movie, error) {
	return uc.r.Find(ctx, Query{OrderBy: SortByID})
}

func (uc *Usecase) Newest(ctx context.Context) ([]Movie, error) {
	return uc.r.Find(ctx, Query{
		OrderBy: SortByReleaseDate,
		Desc:    true,
		Limit:   NewestLimit,
	})
}

func (uc *Usecase) Recommended(ctx context.Context) ([]Movie, error) {
	minRating := RecommendedMinRating
	return uc.r.Find(ctx, Query{
		MinRating: &minRating,
		OrderBy:   SortByRating,
		Desc:      true,
	})
}

func (uc *Usecase) Get(ctx context.Context, id int64) (Movie, error) {
	return uc.r.FindByID(ctx, id)
}

func (uc *Usecase) Create(ctx context.Context, in Input) (Movie, error) {
	if err := in.Validate(); err != nil {
		return Movie{}, err
	}
	id, err := uc.r.Create(ctx, in.ToMovie())
	if err != nil {
		return Movie{}, err
	}
	return uc.r.FindByID(ctx, id)
}

func (uc *Usecase) Update(ctx context.Context, id int64, ch Changes) (Movie, error) {
	if err := ch.Validate(); err != nil {
		return Movie{}, err
	}
	m, err := uc.r.FindByID(ctx, id)
	if err != nil {
		return Movie{}, err
	}

	ch.Apply(&m)
	if err := uc.r.Update(ctx, m); err != nil {
		return Movie{}, err
	}
	return uc.r.FindByID(ctx, id)
}

func (uc *Usecase) Delete(ctx context.Context, id int64) (int64, error) {
	return uc.r.Delete(ctx, id)
}
