package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type SearchLogRepository struct {
	db DBTX
}

func NewSearchLogRepository(db DBTX) *SearchLogRepository {
	return &SearchLogRepository{db: db}
}

const searchLogColumns = `id, user_id, search_query, search_type, filters_applied,
	results_count, created_at, updated_at`

func scanSearchLog(row interface{ Scan(dest ...any) error }, log *models.SearchLog) error {
	return row.Scan(
		&log.ID,
		&log.UserID,
		&log.SearchQuery,
		&log.SearchType,
		&log.FiltersApplied,
		&log.ResultsCount,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
}

func (r *SearchLogRepository) Create(ctx context.Context, log *models.SearchLog) error {
	query := `
		INSERT INTO search_logs (user_id, search_query, search_type, filters_applied, results_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		log.UserID, log.SearchQuery, log.SearchType, log.FiltersApplied, log.ResultsCount,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)
}

func (r *SearchLogRepository) ListRecentForUser(ctx context.Context, userID int64, limit int) ([]models.SearchLog, error) {
	query := `
		SELECT ` + searchLogColumns + `
		FROM search_logs
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.SearchLog, 0)
	for rows.Next() {
		var log models.SearchLog
		if err := scanSearchLog(rows, &log); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

type SearchLogListFilter struct {
	SearchType *string
	UserID     *int64
	Limit      int
	Offset     int
}

func (r *SearchLogRepository) List(ctx context.Context, filter SearchLogListFilter) ([]models.SearchLog, int, error) {
	where := `
		WHERE ($1::varchar IS NULL OR search_type = $1)
		AND ($2::bigint IS NULL OR user_id = $2)
	`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM search_logs`+where,
		filter.SearchType, filter.UserID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + searchLogColumns + `
		FROM search_logs` + where + `
		ORDER BY id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, filter.SearchType, filter.UserID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]models.SearchLog, 0)
	for rows.Next() {
		var log models.SearchLog
		if err := scanSearchLog(rows, &log); err != nil {
			return nil, 0, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// PopularQueries aggregates the most frequent queries for a search type.
func (r *SearchLogRepository) PopularQueries(ctx context.Context, searchType string, limit int) ([]string, error) {
	query := `
		SELECT search_query
		FROM search_logs
		WHERE search_type = $1
		GROUP BY search_query
		ORDER BY COUNT(*) DESC, search_query
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, searchType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queries := make([]string, 0)
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}
