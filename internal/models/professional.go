package models

import "time"

// Professional kinds referenced by chats. A chat points at exactly one of
// these three disjoint tables via a (type, id) pair.
const (
	ProfessionalTypeCoach     = "coach"
	ProfessionalTypeClinic    = "clinic"
	ProfessionalTypeTherapist = "therapist"
)

type Coach struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Bio             *string   `json:"bio"`
	ProfileImage    *string   `json:"profile_image"`
	Specializations *[]string `json:"specializations"`
	Certifications  *[]string `json:"certifications"`
	ExperienceYears *int      `json:"experience_years"`
	HourlyRate      *float64  `json:"hourly_rate"`
	Phone           *string   `json:"phone"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Clinic struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Description  *string   `json:"description"`
	Logo         *string   `json:"logo"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	Website      *string   `json:"website"`
	Services     *[]string `json:"services"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Therapist struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Bio             *string   `json:"bio"`
	ProfileImage    *string   `json:"profile_image"`
	Specializations *[]string `json:"specializations"`
	Certifications  *[]string `json:"certifications"`
	Phone           *string   `json:"phone"`
	ClinicID        *int64    `json:"clinic_id"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
