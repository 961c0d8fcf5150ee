package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type AchievementRepository struct {
	db DBTX
}

func NewAchievementRepository(db DBTX) *AchievementRepository {
	return &AchievementRepository{db: db}
}

const achievementColumns = `id, user_id, achievement_type, achievement_name, description,
	icon, criteria, created_at, updated_at`

func scanAchievement(row interface{ Scan(dest ...any) error }, achievement *models.UserAchievement) error {
	return row.Scan(
		&achievement.ID,
		&achievement.UserID,
		&achievement.AchievementType,
		&achievement.AchievementName,
		&achievement.Description,
		&achievement.Icon,
		&achievement.Criteria,
		&achievement.CreatedAt,
		&achievement.UpdatedAt,
	)
}

func (r *AchievementRepository) Create(ctx context.Context, achievement *models.UserAchievement) error {
	query := `
		INSERT INTO user_achievements (user_id, achievement_type, achievement_name, description, icon, criteria)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		achievement.UserID, achievement.AchievementType, achievement.AchievementName,
		achievement.Description, achievement.Icon, achievement.Criteria,
	).Scan(&achievement.ID, &achievement.CreatedAt, &achievement.UpdatedAt)
}

func (r *AchievementRepository) GetByID(ctx context.Context, id int64) (*models.UserAchievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM user_achievements WHERE id = $1`
	var achievement models.UserAchievement
	if err := scanAchievement(r.db.QueryRow(ctx, query, id), &achievement); err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *AchievementRepository) ListForUser(ctx context.Context, userID int64) ([]models.UserAchievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM user_achievements WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := make([]models.UserAchievement, 0)
	for rows.Next() {
		var achievement models.UserAchievement
		if err := scanAchievement(rows, &achievement); err != nil {
			return nil, err
		}
		achievements = append(achievements, achievement)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *AchievementRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_achievements WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
