package repository

import (
	"context"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
)

type SettingRepository struct {
	db DBTX
}

func NewSettingRepository(db DBTX) *SettingRepository {
	return &SettingRepository{db: db}
}

const settingColumns = `id, user_id, setting_key, setting_value, created_at, updated_at`

func scanSetting(row interface{ Scan(dest ...any) error }, setting *models.UserSetting) error {
	return row.Scan(
		&setting.ID,
		&setting.UserID,
		&setting.Key,
		&setting.Value,
		&setting.CreatedAt,
		&setting.UpdatedAt,
	)
}

func (r *SettingRepository) Create(ctx context.Context, setting *models.UserSetting) error {
	query := `
		INSERT INTO user_settings (user_id, setting_key, setting_value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, setting.UserID, setting.Key, setting.Value).
		Scan(&setting.ID, &setting.CreatedAt, &setting.UpdatedAt)
}

func (r *SettingRepository) GetByID(ctx context.Context, id, userID int64) (*models.UserSetting, error) {
	query := `SELECT ` + settingColumns + ` FROM user_settings WHERE id = $1 AND user_id = $2`
	var setting models.UserSetting
	if err := scanSetting(r.db.QueryRow(ctx, query, id, userID), &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) ListForUser(ctx context.Context, userID int64) ([]models.UserSetting, error) {
	query := `SELECT ` + settingColumns + ` FROM user_settings WHERE user_id = $1 ORDER BY setting_key`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]models.UserSetting, 0)
	for rows.Next() {
		var setting models.UserSetting
		if err := scanSetting(rows, &setting); err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingRepository) UpdateValue(ctx context.Context, id, userID int64, value string) (*models.UserSetting, error) {
	query := `
		UPDATE user_settings
		SET setting_value = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + settingColumns + `
	`
	var setting models.UserSetting
	if err := scanSetting(r.db.QueryRow(ctx, query, id, userID, value), &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_settings WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
