package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
	"github.com/Sarmadkhalid1/fithabs-backend/pkg/utils"
)

// ProfessionalHandler serves the coach, clinic and therapist directories
// plus their admin CRUD.
type ProfessionalHandler struct {
	coachRepo     *repository.CoachRepository
	clinicRepo    *repository.ClinicRepository
	therapistRepo *repository.TherapistRepository
}

func NewProfessionalHandler(
	coachRepo *repository.CoachRepository,
	clinicRepo *repository.ClinicRepository,
	therapistRepo *repository.TherapistRepository,
) *ProfessionalHandler {
	return &ProfessionalHandler{coachRepo: coachRepo, clinicRepo: clinicRepo, therapistRepo: therapistRepo}
}

func (h *ProfessionalHandler) ListCoaches(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)
	activeOnly := principalKind(c) != services.PrincipalAdmin

	coaches, total, err := h.coachRepo.List(c.Context(), activeOnly, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, coaches, len(coaches), buildPaginationMeta(page, limit, total))
}

func (h *ProfessionalHandler) GetCoach(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	coach, err := h.coachRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !coach.IsActive && principalKind(c) != services.PrincipalAdmin {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, coach)
}

type createCoachRequest struct {
	Name            string    `json:"name" validate:"required,max=255"`
	Email           string    `json:"email" validate:"required,email"`
	Password        string    `json:"password" validate:"required,min=8"`
	Bio             *string   `json:"bio"`
	ProfileImage    *string   `json:"profile_image" validate:"omitempty,url"`
	Specializations *[]string `json:"specializations"`
	Certifications  *[]string `json:"certifications"`
	ExperienceYears *int      `json:"experience_years" validate:"omitempty,gte=0"`
	HourlyRate      *float64  `json:"hourly_rate" validate:"omitempty,gte=0"`
	Phone           *string   `json:"phone"`
	IsActive        *bool     `json:"is_active"`
}

func (h *ProfessionalHandler) CreateCoach(c *fiber.Ctx) error {
	var req createCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	coach := &models.Coach{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		Bio:             req.Bio,
		ProfileImage:    req.ProfileImage,
		Specializations: req.Specializations,
		Certifications:  req.Certifications,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		Phone:           req.Phone,
		IsActive:        active,
	}
	if err := h.coachRepo.Create(c.Context(), coach); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, coach)
}

type updateCoachRequest struct {
	Name            *string   `json:"name" validate:"omitempty,max=255"`
	Bio             *string   `json:"bio"`
	ProfileImage    *string   `json:"profile_image" validate:"omitempty,url"`
	Specializations *[]string `json:"specializations"`
	Certifications  *[]string `json:"certifications"`
	ExperienceYears *int      `json:"experience_years" validate:"omitempty,gte=0"`
	HourlyRate      *float64  `json:"hourly_rate" validate:"omitempty,gte=0"`
	Phone           *string   `json:"phone"`
	IsActive        *bool     `json:"is_active"`
}

func (h *ProfessionalHandler) UpdateCoach(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateCoachRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	coach, err := h.coachRepo.Update(c.Context(), int64(id), repository.UpdateCoachInput{
		Name:            req.Name,
		Bio:             req.Bio,
		ProfileImage:    req.ProfileImage,
		Specializations: req.Specializations,
		Certifications:  req.Certifications,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		Phone:           req.Phone,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, coach)
}

func (h *ProfessionalHandler) DeleteCoach(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.coachRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Coach deleted"})
}

func (h *ProfessionalHandler) ListClinics(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)
	activeOnly := principalKind(c) != services.PrincipalAdmin

	clinics, total, err := h.clinicRepo.List(c.Context(), activeOnly, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, clinics, len(clinics), buildPaginationMeta(page, limit, total))
}

func (h *ProfessionalHandler) GetClinic(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	clinic, err := h.clinicRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !clinic.IsActive && principalKind(c) != services.PrincipalAdmin {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, clinic)
}

// ListClinicTherapists lists the therapists attached to one clinic.
func (h *ProfessionalHandler) ListClinicTherapists(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}
	page, limit, offset := parsePage(c)

	clinicID := int64(id)
	therapists, total, err := h.therapistRepo.List(c.Context(), repository.TherapistListFilter{
		ClinicID:   &clinicID,
		ActiveOnly: principalKind(c) != services.PrincipalAdmin,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, therapists, len(therapists), buildPaginationMeta(page, limit, total))
}

type createClinicRequest struct {
	Name        string    `json:"name" validate:"required,max=255"`
	Email       string    `json:"email" validate:"required,email"`
	Password    string    `json:"password" validate:"required,min=8"`
	Description *string   `json:"description"`
	Logo        *string   `json:"logo" validate:"omitempty,url"`
	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	Website     *string   `json:"website" validate:"omitempty,url"`
	Services    *[]string `json:"services"`
	IsActive    *bool     `json:"is_active"`
}

func (h *ProfessionalHandler) CreateClinic(c *fiber.Ctx) error {
	var req createClinicRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	clinic := &models.Clinic{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Description:  req.Description,
		Logo:         req.Logo,
		Phone:        req.Phone,
		Address:      req.Address,
		Website:      req.Website,
		Services:     req.Services,
		IsActive:     active,
	}
	if err := h.clinicRepo.Create(c.Context(), clinic); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, clinic)
}

type updateClinicRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=255"`
	Description *string   `json:"description"`
	Logo        *string   `json:"logo" validate:"omitempty,url"`
	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	Website     *string   `json:"website" validate:"omitempty,url"`
	Services    *[]string `json:"services"`
	IsActive    *bool     `json:"is_active"`
}

func (h *ProfessionalHandler) UpdateClinic(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateClinicRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	clinic, err := h.clinicRepo.Update(c.Context(), int64(id), repository.UpdateClinicInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Phone:       req.Phone,
		Address:     req.Address,
		Website:     req.Website,
		Services:    req.Services,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, clinic)
}

func (h *ProfessionalHandler) DeleteClinic(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.clinicRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Clinic deleted"})
}

func (h *ProfessionalHandler) ListTherapists(c *fiber.Ctx) error {
	page, limit, offset := parsePage(c)

	var clinicID *int64
	if raw := c.QueryInt("clinic_id", 0); raw > 0 {
		id := int64(raw)
		clinicID = &id
	}

	therapists, total, err := h.therapistRepo.List(c.Context(), repository.TherapistListFilter{
		ClinicID:   clinicID,
		ActiveOnly: principalKind(c) != services.PrincipalAdmin,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondPage(c, therapists, len(therapists), buildPaginationMeta(page, limit, total))
}

func (h *ProfessionalHandler) GetTherapist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	therapist, err := h.therapistRepo.GetByID(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !therapist.IsActive && principalKind(c) != services.PrincipalAdmin {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, therapist)
}

type createTherapistRequest struct {
	Name            string    `json:"name" validate:"required,max=255"`
	Email           string    `json:"email" validate:"required,email"`
	Password        string    `json:"password" validate:"required,min=8"`
	Bio             *string   `json:"bio"`
	ProfileImage    *string   `json:"profile_image" validate:"omitempty,url"`
	Specializations *[]string `json:"specializations"`
	Certifications  *[]string `json:"certifications"`
	Phone           *string   `json:"phone"`
	ClinicID        *int64    `json:"clinic_id" validate:"omitempty,gt=0"`
	IsActive        *bool     `json:"is_active"`
}

func (h *ProfessionalHandler) CreateTherapist(c *fiber.Ctx) error {
	var req createTherapistRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	therapist := &models.Therapist{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		Bio:             req.Bio,
		ProfileImage:    req.ProfileImage,
		Specializations: req.Specializations,
		Certifications:  req.Certifications,
		Phone:           req.Phone,
		ClinicID:        req.ClinicID,
		IsActive:        active,
	}
	if err := h.therapistRepo.Create(c.Context(), therapist); err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusCreated, therapist)
}

type updateTherapistRequest struct {
	Name            *string   `json:"name" validate:"omitempty,max=255"`
	Bio             *string   `json:"bio"`
	ProfileImage    *string   `json:"profile_image" validate:"omitempty,url"`
	Specializations *[]string `json:"specializations"`
	Certifications  *[]string `json:"certifications"`
	Phone           *string   `json:"phone"`
	ClinicID        *int64    `json:"clinic_id" validate:"omitempty,gt=0"`
	IsActive        *bool     `json:"is_active"`
}

func (h *ProfessionalHandler) UpdateTherapist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req updateTherapistRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fields := validateStruct(req); fields != nil {
		return respondValidation(c, fields)
	}

	therapist, err := h.therapistRepo.Update(c.Context(), int64(id), repository.UpdateTherapistInput{
		Name:            req.Name,
		Bio:             req.Bio,
		ProfileImage:    req.ProfileImage,
		Specializations: req.Specializations,
		Certifications:  req.Certifications,
		Phone:           req.Phone,
		ClinicID:        req.ClinicID,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondData(c, fiber.StatusOK, therapist)
}

func (h *ProfessionalHandler) DeleteTherapist(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := h.therapistRepo.Delete(c.Context(), int64(id))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return respondError(c, fiber.StatusNotFound, "Not found")
	}
	return respondData(c, fiber.StatusOK, fiber.Map{"message": "Therapist deleted"})
}
