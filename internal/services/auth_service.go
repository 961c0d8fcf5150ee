package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/logger"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/models"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/pkg/utils"
)

const (
	PrincipalUser      = "user"
	PrincipalAdmin     = "admin"
	PrincipalCoach     = "coach"
	PrincipalClinic    = "clinic"
	PrincipalTherapist = "therapist"
)

const resetTokenLifetime = 60 * time.Minute

// credential is the slice of any principal row that login needs.
type credential struct {
	ID           int64
	PasswordHash string
	Active       bool
}

type AuthService struct {
	userRepo      *repository.UserRepository
	adminRepo     *repository.AdminRepository
	coachRepo     *repository.CoachRepository
	clinicRepo    *repository.ClinicRepository
	therapistRepo *repository.TherapistRepository
	tokenRepo     *repository.TokenRepository
	resetRepo     *repository.PasswordResetRepository
	mailer        Mailer
	jwtSecret     string
	log           *logger.Logger
}

func NewAuthService(
	userRepo *repository.UserRepository,
	adminRepo *repository.AdminRepository,
	coachRepo *repository.CoachRepository,
	clinicRepo *repository.ClinicRepository,
	therapistRepo *repository.TherapistRepository,
	tokenRepo *repository.TokenRepository,
	resetRepo *repository.PasswordResetRepository,
	mailer Mailer,
	jwtSecret string,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		adminRepo:     adminRepo,
		coachRepo:     coachRepo,
		clinicRepo:    clinicRepo,
		therapistRepo: therapistRepo,
		tokenRepo:     tokenRepo,
		resetRepo:     resetRepo,
		mailer:        mailer,
		jwtSecret:     jwtSecret,
		log:           log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, "", ErrConflict
		}
		return nil, "", err
	}

	token, err := s.issueToken(ctx, user.ID, PrincipalUser)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates against the credential table matching kind and returns
// a bearer token plus the principal row. Failures are uniform: a missing
// account and a wrong password both map to ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, kind, email, password string) (string, any, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var (
		cred      credential
		principal any
	)
	switch kind {
	case PrincipalUser:
		user, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return "", nil, loginErr(err)
		}
		cred = credential{ID: user.ID, PasswordHash: user.PasswordHash, Active: true}
		principal = user
	case PrincipalAdmin:
		admin, err := s.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			return "", nil, loginErr(err)
		}
		cred = credential{ID: admin.ID, PasswordHash: admin.PasswordHash, Active: admin.IsActive}
		principal = admin
	case PrincipalCoach:
		coach, err := s.coachRepo.GetByEmail(ctx, email)
		if err != nil {
			return "", nil, loginErr(err)
		}
		cred = credential{ID: coach.ID, PasswordHash: coach.PasswordHash, Active: coach.IsActive}
		principal = coach
	case PrincipalClinic:
		clinic, err := s.clinicRepo.GetByEmail(ctx, email)
		if err != nil {
			return "", nil, loginErr(err)
		}
		cred = credential{ID: clinic.ID, PasswordHash: clinic.PasswordHash, Active: clinic.IsActive}
		principal = clinic
	case PrincipalTherapist:
		therapist, err := s.therapistRepo.GetByEmail(ctx, email)
		if err != nil {
			return "", nil, loginErr(err)
		}
		cred = credential{ID: therapist.ID, PasswordHash: therapist.PasswordHash, Active: therapist.IsActive}
		principal = therapist
	default:
		return "", nil, ErrInvalidInput
	}

	if !utils.CheckPassword(password, cred.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	if !cred.Active {
		return "", nil, ErrAccountDisabled
	}

	token, err := s.issueToken(ctx, cred.ID, kind)
	if err != nil {
		return "", nil, err
	}
	return token, principal, nil
}

func loginErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrInvalidCredentials
	}
	return err
}

func (s *AuthService) issueToken(ctx context.Context, principalID int64, kind string) (string, error) {
	tokenID := uuid.NewString()
	signed, _, err := utils.GenerateTokenWithID(strconv.FormatInt(principalID, 10), kind, tokenID, s.jwtSecret)
	if err != nil {
		return "", err
	}
	if err := s.tokenRepo.Create(ctx, &models.AccessToken{
		ID:            tokenID,
		PrincipalID:   principalID,
		PrincipalKind: kind,
	}); err != nil {
		return "", err
	}
	return signed, nil
}

// Logout revokes the single token the request carried.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	return s.tokenRepo.Delete(ctx, tokenID)
}

// LogoutAll revokes every token issued to the principal.
func (s *AuthService) LogoutAll(ctx context.Context, principalID int64, kind string) error {
	return s.tokenRepo.DeleteForPrincipal(ctx, principalID, kind)
}

// ForgotPassword issues a reset code for a user account. An unknown email
// returns nil so the endpoint never reveals which addresses exist.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	code := hex.EncodeToString(raw)

	hash, err := utils.HashPassword(code)
	if err != nil {
		return err
	}
	if err := s.resetRepo.Upsert(ctx, email, hash); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, email, code); err != nil {
		s.log.Error("password reset mail failed", "email", email, "error", err)
		return err
	}
	return nil
}

type ResetPasswordInput struct {
	Email    string
	Token    string
	Password string
}

func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	record, err := s.resetRepo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInvalidCredentials
		}
		return err
	}
	if time.Since(record.CreatedAt) > resetTokenLifetime {
		_ = s.resetRepo.Delete(ctx, email)
		return ErrTokenExpired
	}
	if !utils.CheckPassword(input.Token, record.Token) {
		return ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInvalidCredentials
		}
		return err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}
	if err := s.resetRepo.Delete(ctx, email); err != nil {
		return err
	}
	// Old sessions die with the old password.
	return s.tokenRepo.DeleteForPrincipal(ctx, user.ID, PrincipalUser)
}

// Authenticate resolves a bearer token to a live principal. It validates the
// signature, then requires the anchoring row to still exist.
func (s *AuthService) Authenticate(ctx context.Context, bearer string) (*models.AccessToken, error) {
	claims, err := utils.ValidateToken(bearer, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.tokenRepo.Get(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := s.tokenRepo.Touch(ctx, token.ID); err != nil {
		s.log.Warn("touch access token failed", "token_id", token.ID, "error", err)
	}
	return token, nil
}
