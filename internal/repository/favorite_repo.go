package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type FavoriteRepository struct {
	db DBTX
}

func NewFavoriteRepository(db DBTX) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

const favoriteColumns = `id, user_id, favoritable_type, favoritable_id, created_at, updated_at`

func scanFavorite(row interface{ Scan(dest ...any) error }, fav *models.UserFavorite) error {
	return row.Scan(
		&fav.ID,
		&fav.UserID,
		&fav.FavoritableType,
		&fav.FavoritableID,
		&fav.CreatedAt,
		&fav.UpdatedAt,
	)
}

func (r *FavoriteRepository) Create(ctx context.Context, fav *models.UserFavorite) error {
	query := `
		INSERT INTO user_favorites (user_id, favoritable_type, favoritable_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, fav.UserID, fav.FavoritableType, fav.FavoritableID).
		Scan(&fav.ID, &fav.CreatedAt, &fav.UpdatedAt)
}

// GetByID is user-scoped so one user cannot read another's favorites.
func (r *FavoriteRepository) GetByID(ctx context.Context, id, userID int64) (*models.UserFavorite, error) {
	query := `SELECT ` + favoriteColumns + ` FROM user_favorites WHERE id = $1 AND user_id = $2`
	var fav models.UserFavorite
	if err := scanFavorite(r.db.QueryRow(ctx, query, id, userID), &fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

type FavoriteListFilter struct {
	FavoritableType *string
	Limit           int
	Offset          int
}

func (r *FavoriteRepository) ListForUser(ctx context.Context, userID int64, filter FavoriteListFilter) ([]models.UserFavorite, int, error) {
	where := ` WHERE user_id = $1 AND ($2::varchar IS NULL OR favoritable_type = $2)`

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_favorites`+where,
		userID, filter.FavoritableType,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + favoriteColumns + ` FROM user_favorites` + where + `
		ORDER BY id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, userID, filter.FavoritableType, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	favorites := make([]models.UserFavorite, 0)
	for rows.Next() {
		var fav models.UserFavorite
		if err := scanFavorite(rows, &fav); err != nil {
			return nil, 0, err
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_favorites WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
