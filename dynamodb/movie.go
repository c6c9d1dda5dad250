package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"moviedb/movie"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// movieCounter is the key of the counters table row holding the last movie id.
const movieCounter = "movies"

// Tables names the tables used by MovieRepository. Movies and genres are
// keyed by a numeric "id", counters by a string "name".
type Tables struct {
	Movies   string
	Genres   string
	Counters string
}

// MovieRepository implements movie.Repository on DynamoDB. Ids come from an
// atomic counter so they stay numeric like the PostgreSQL serials.
type MovieRepository struct {
	client API
	tables Tables
	now    func() time.Time
}

type movieItem struct {
	ID              int64   `dynamodbav:"id"`
	Title           string  `dynamodbav:"title"`
	Rating          float64 `dynamodbav:"rating"`
	Awards          string  `dynamodbav:"awards"`
	ReleaseDate     string  `dynamodbav:"release_date"`
	Length          int     `dynamodbav:"length"`
	GenreID         int64   `dynamodbav:"genre_id"`
	FavoriteMovieID *int64  `dynamodbav:"favorite_movie_id,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

type genreItem struct {
	ID      int64  `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Ranking int    `dynamodbav:"ranking"`
}

func NewMovieRepository(client API, tables Tables) *MovieRepository {
	return &MovieRepository{
		client: client,
		tables: tables,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (r *MovieRepository) Find(ctx context.Context, q movie.Query) ([]movie.Movie, error) {
	if q.OrderBy != "" && !q.OrderBy.Valid() {
		return nil, movie.ErrInvalidSortField
	}
	if err := r.validate(); err != nil {
		return nil, err
	}

	items, err := r.scanMovies(ctx)
	if err != nil {
		return nil, err
	}
	genres, err := r.allGenres(ctx)
	if err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, 0, len(items))
	for _, item := range items {
		m, err := item.toMovie()
		if err != nil {
			return nil, err
		}
		if g, ok := genres[m.GenreID]; ok {
			m.Genre = &g
		}
		movies = append(movies, m)
	}

	return applyQuery(movies, q), nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id int64) (movie.Movie, error) {
	if err := r.validate(); err != nil {
		return movie.Movie{}, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &r.tables.Movies,
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: get movie %d: %w", id, err)
	}
	if len(out.Item) == 0 {
		return movie.Movie{}, movie.ErrMovieNotFound
	}

	var item movieItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: unmarshal movie: %w", err)
	}
	m, err := item.toMovie()
	if err != nil {
		return movie.Movie{}, err
	}

	g, err := r.getGenre(ctx, m.GenreID)
	switch {
	case err == nil:
		m.Genre = &g
	case !errors.Is(err, movie.ErrGenreNotFound):
		return movie.Movie{}, err
	}
	return m, nil
}

func (r *MovieRepository) Create(ctx context.Context, m movie.Movie) (int64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	if _, err := r.getGenre(ctx, m.GenreID); err != nil {
		return 0, err
	}

	id, err := r.nextID(ctx)
	if err != nil {
		return 0, err
	}

	now := r.now()
	m.ID = id
	m.CreatedAt, m.UpdatedAt = now, now
	av, err := attributevalue.MarshalMap(newMovieItem(m))
	if err != nil {
		return 0, fmt.Errorf("dynamodb: marshal movie: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.tables.Movies,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return 0, fmt.Errorf("dynamodb: put movie: %w", err)
	}
	return id, nil
}

func (r *MovieRepository) Update(ctx context.Context, m movie.Movie) error {
	if err := r.validate(); err != nil {
		return err
	}
	if _, err := r.getGenre(ctx, m.GenreID); err != nil {
		return err
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.now()
	}
	m.UpdatedAt = r.now()
	av, err := attributevalue.MarshalMap(newMovieItem(m))
	if err != nil {
		return fmt.Errorf("dynamodb: marshal movie: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.tables.Movies,
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return movie.ErrMovieNotFound
		}
		return fmt.Errorf("dynamodb: update movie %d: %w", m.ID, err)
	}
	return nil
}

// Delete has no transaction to lean on: references are cleared one by one
// before the movie itself goes.
func (r *MovieRepository) Delete(ctx context.Context, id int64) (int64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}

	items, err := r.scanMovies(ctx)
	if err != nil {
		return 0, err
	}
	for _, item := range items {
		if item.FavoriteMovieID == nil || *item.FavoriteMovieID != id {
			continue
		}
		_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:        &r.tables.Movies,
			Key:              idKey(item.ID),
			UpdateExpression: aws.String("REMOVE favorite_movie_id"),
		})
		if err != nil {
			return 0, fmt.Errorf("dynamodb: clear favorite movie %d: %w", id, err)
		}
	}

	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    &r.tables.Movies,
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return 0, fmt.Errorf("dynamodb: delete movie %d: %w", id, err)
	}
	if len(out.Attributes) == 0 {
		return 0, nil
	}
	return 1, nil
}

func (r *MovieRepository) validate() error {
	for _, table := range []string{r.tables.Movies, r.tables.Genres, r.tables.Counters} {
		if err := validateTable(table); err != nil {
			return err
		}
	}
	return nil
}

func (r *MovieRepository) scanMovies(ctx context.Context) ([]movieItem, error) {
	var items []movieItem
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: &r.tables.Movies,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan movies: %w", err)
		}

		var page []movieItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal movies: %w", err)
		}
		items = append(items, page...)
	}
	return items, nil
}

func (r *MovieRepository) allGenres(ctx context.Context) (map[int64]movie.Genre, error) {
	genres := make(map[int64]movie.Genre)
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: &r.tables.Genres,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan genres: %w", err)
		}

		var items []genreItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal genres: %w", err)
		}
		for _, item := range items {
			genres[item.ID] = item.toGenre()
		}
	}
	return genres, nil
}

func (r *MovieRepository) getGenre(ctx context.Context, id int64) (movie.Genre, error) {
	if id <= 0 {
		return movie.Genre{}, movie.ErrGenreNotFound
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.tables.Genres,
		Key:       idKey(id),
	})
	if err != nil {
		return movie.Genre{}, fmt.Errorf("dynamodb: get genre %d: %w", id, err)
	}
	if len(out.Item) == 0 {
		return movie.Genre{}, movie.ErrGenreNotFound
	}

	var item genreItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return movie.Genre{}, fmt.Errorf("dynamodb: unmarshal genre: %w", err)
	}
	return item.toGenre(), nil
}

func (r *MovieRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: &r.tables.Counters,
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: movieCounter},
		},
		UpdateExpression: aws.String("ADD #v :one"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("dynamodb: next movie id: %w", err)
	}

	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("dynamodb: next movie id: counter value missing")
	}
	id, err := strconv.ParseInt(v.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("dynamodb: parse movie id: %w", err)
	}
	return id, nil
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func newMovieItem(m movie.Movie) movieItem {
	return movieItem{
		ID:              m.ID,
		Title:           m.Title,
		Rating:          m.Rating,
		Awards:          m.Awards,
		ReleaseDate:     m.ReleaseDate.Format(movie.DateLayout),
		Length:          m.Length,
		GenreID:         m.GenreID,
		FavoriteMovieID: m.FavoriteMovieID,
		CreatedAt:       m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func (item movieItem) toMovie() (movie.Movie, error) {
	released, err := time.Parse(movie.DateLayout, item.ReleaseDate)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: parse release_date of movie %d: %w", item.ID, err)
	}

	m := movie.Movie{
		ID:              item.ID,
		Title:           item.Title,
		Rating:          item.Rating,
		Awards:          item.Awards,
		ReleaseDate:     released,
		Length:          item.Length,
		GenreID:         item.GenreID,
		FavoriteMovieID: item.FavoriteMovieID,
	}
	// timestamps are informational, a malformed one is left zero
	if t, err := time.Parse(time.RFC3339Nano, item.CreatedAt); err == nil {
		m.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, item.UpdatedAt); err == nil {
		m.UpdatedAt = t
	}
	return m, nil
}

func (item genreItem) toGenre() movie.Genre {
	return movie.Genre{ID: item.ID, Name: item.Name, Ranking: item.Ranking}
}

// applyQuery filters, orders and limits movies the way the SQL store does:
// ties on the sort column fall back to ascending id.
func applyQuery(movies []movie.Movie, q movie.Query) []movie.Movie {
	out := movies[:0]
	for _, m := range movies {
		if q.MinRating != nil && m.Rating < *q.MinRating {
			continue
		}
		out = append(out, m)
	}

	compare := func(a, b movie.Movie) int {
		switch q.OrderBy {
		case movie.SortByReleaseDate:
			return a.ReleaseDate.Compare(b.ReleaseDate)
		case movie.SortByRating:
			switch {
			case a.Rating < b.Rating:
				return -1
			case a.Rating > b.Rating:
				return 1
			}
			return 0
		}
		return compareID(a.ID, b.ID)
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if q.Desc {
			c = -c
		}
		if c == 0 {
			return out[i].ID < out[j].ID
		}
		return c < 0
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
