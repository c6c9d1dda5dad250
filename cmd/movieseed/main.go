package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"moviedb/movie"
	"moviedb/pkg/config"
	"moviedb/pkg/logger"
	"moviedb/postgres"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var requiredColumns = []string{"title", "rating", "awards", "release_date", "length", "genre"}

// seedRow is one valid CSV line: the movie plus the name of its genre.
type seedRow struct {
	Input movie.Input
	Genre string
}

func main() {
	var (
		csvPath string
		csvURL  string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to a movies CSV file")
	flag.StringVar(&csvURL, "url", "", "URL of a movies CSV file (used when -csv is empty)")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fallback, _ := logger.New("")
		fallback.Fatalw("load config failed", "error", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	src, err := openSource(csvPath, csvURL)
	if err != nil {
		log.Fatalw("cannot open csv", "error", err)
	}
	defer src.Close()

	rows, skipped, err := readRows(src, limit)
	if err != nil {
		log.Fatalw("cannot read csv", "error", err)
	}
	if skipped > 0 {
		log.Warnw("skipped malformed rows", "rows", skipped)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		log.Fatalw("cannot open postgres connection", "error", err)
	}

	count, err := importRows(context.Background(), db, rows, log)
	if err != nil {
		log.Fatalw("import failed", "error", err)
	}

	log.Infow("import completed", "rows", count)
}

func openSource(path, url string) (io.ReadCloser, error) {
	if path != "" {
		return os.Open(path)
	}
	if url == "" {
		return nil, errors.New("either -csv or -url is required")
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url) // nolint: noctx
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return resp.Body, nil
}

// readRows parses up to limit valid rows. Rows that do not describe a
// complete movie are counted as skipped.
func readRows(r io.Reader, limit int) ([]seedRow, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, 0, err
	}

	var (
		rows    []seedRow
		skipped int
	)
	for limit <= 0 || len(rows) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, err
		}

		row, err := parseRecord(record, idx)
		if err != nil {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	return rows, skipped, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q in csv header", col)
		}
	}
	return idx, nil
}

func parseRecord(record []string, idx map[string]int) (seedRow, error) {
	field := func(col string) movie.Field {
		i := idx[col]
		if i >= len(record) {
			return movie.Field{}
		}
		return movie.NewField(record[i])
	}

	for _, col := range requiredColumns {
		if col != "awards" && !field(col).IsPresent() {
			return seedRow{}, fmt.Errorf("%s is required", col)
		}
	}

	rating, err := field("rating").Float("rating")
	if err != nil {
		return seedRow{}, err
	}
	released, err := field("release_date").Date("release_date")
	if err != nil {
		return seedRow{}, err
	}
	length, err := field("length").Int("length")
	if err != nil {
		return seedRow{}, err
	}

	in := movie.Input{
		Title:       strings.TrimSpace(field("title").String()),
		Rating:      rating,
		Awards:      strings.TrimSpace(field("awards").String()),
		ReleaseDate: released,
		Length:      int(length),
		// resolved against the genres table on import
		GenreID: 1,
	}
	if err := in.Validate(); err != nil {
		return seedRow{}, err
	}

	return seedRow{Input: in, Genre: strings.TrimSpace(field("genre").String())}, nil
}

// importRows inserts every row in a single transaction, creating missing
// genres on the way.
func importRows(ctx context.Context, db *gorm.DB, rows []seedRow, log *zap.SugaredLogger) (int, error) {
	count := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres := postgres.NewGenreRepository(tx)
		movies := postgres.NewMovieRepository(tx)
		genreIDs := make(map[string]int64)

		for _, row := range rows {
			genreID, ok := genreIDs[row.Genre]
			if !ok {
				g, err := genres.Ensure(ctx, row.Genre)
				if err != nil {
					return err
				}
				genreID = g.ID
				genreIDs[row.Genre] = genreID
				log.Debugw("genre ready", "name", g.Name, "id", g.ID)
			}

			in := row.Input
			in.GenreID = genreID
			if _, err := movies.Create(ctx, in.ToMovie()); err != nil {
				return fmt.Errorf("insert %q: %w", in.Title, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
