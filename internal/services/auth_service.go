package services

import (
	"errors"
	"time"

	"jobconnect/internal/apperrors"
	"jobconnect/internal/auth"
	"jobconnect/internal/config"
	"jobconnect/internal/models"
	"jobconnect/internal/repositories"
	"jobconnect/internal/services/dto"

	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Signup registers an employer or jobseeker and issues a token right away.
// Employers may attach a company verification document during signup.
func (s *AuthService) Signup(db *gorm.DB, req *dto.SignupRequest, verificationDoc string) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role != models.UserRoleEmployer && role != models.UserRoleJobseeker {
		return nil, apperrors.NewBadRequestError("Role must be employer or jobseeker")
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		Role:            role,
		CompanyName:     req.CompanyName,
		VerificationDoc: verificationDoc,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	cfg := config.GetConfig()
	token, err := auth.GenerateToken(user.ID, string(user.Role), cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  buildUserResponse(user),
	}, nil
}

func buildUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		CompanyName:     user.CompanyName,
		VerificationDoc: user.VerificationDoc,
	}
}
