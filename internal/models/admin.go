package models

import "time"

// AdminUser lives in a credential space separate from application users.
type AdminUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Permissions  *[]string `json:"permissions"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	AdminRoleSuperAdmin = "super_admin"
	AdminRoleAdmin      = "admin"
	AdminRoleEditor     = "editor"
)

type DashboardStats struct {
	Users             int `json:"users"`
	Workouts          int `json:"workouts"`
	Recipes           int `json:"recipes"`
	MealPlans         int `json:"meal_plans"`
	EducationContents int `json:"education_contents"`
	ActiveChats       int `json:"active_chats"`
	SignupsLast7Days  int `json:"signups_last_7_days"`
}
