package services

import (
	"testing"

	"jobconnect/internal/apperrors"
	"jobconnect/internal/repositories"
	"jobconnect/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServices() (*AuthService, *UserService) {
	userRepo := repositories.NewUserRepository()
	return NewAuthService(userRepo), NewUserService(userRepo)
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	authService, _ := newAuthServices()

	resp, err := authService.Signup(db, &dto.SignupRequest{
		Name:        "Acme HR",
		Email:       "hr@acme.io",
		Password:    "supersecret1",
		Role:        "employer",
		CompanyName: "Acme",
	}, "verify-doc.pdf")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "employer", resp.User.Role)
	assert.Equal(t, "Acme", resp.User.CompanyName)
	assert.Equal(t, "verify-doc.pdf", resp.User.VerificationDoc)

	login, err := authService.Login(db, &dto.LoginRequest{
		Email:    "hr@acme.io",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	authService, _ := newAuthServices()

	req := &dto.SignupRequest{
		Name:     "Seeker",
		Email:    "dup@test.io",
		Password: "supersecret1",
		Role:     "jobseeker",
	}
	_, err := authService.Signup(db, req, "")
	require.NoError(t, err)

	_, err = authService.Signup(db, req, "")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_Signup_RejectsInvalidRole(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	authService, _ := newAuthServices()

	_, err := authService.Signup(db, &dto.SignupRequest{
		Name:     "Nope",
		Email:    "nope@test.io",
		Password: "supersecret1",
		Role:     "admin",
	}, "")
	assert.Error(t, err)
}

func TestAuthService_Signup_RejectsShortPassword(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	authService, _ := newAuthServices()

	_, err := authService.Signup(db, &dto.SignupRequest{
		Name:     "Seeker",
		Email:    "short@test.io",
		Password: "short",
		Role:     "jobseeker",
	}, "")
	assert.Error(t, err)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	authService, _ := newAuthServices()

	_, err := authService.Signup(db, &dto.SignupRequest{
		Name:     "Seeker",
		Email:    "seeker@test.io",
		Password: "supersecret1",
		Role:     "jobseeker",
	}, "")
	require.NoError(t, err)

	_, err = authService.Login(db, &dto.LoginRequest{Email: "seeker@test.io", Password: "wrongpassword"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown emails report the same error as a wrong password.
	_, err = authService.Login(db, &dto.LoginRequest{Email: "ghost@test.io", Password: "supersecret1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	authService, userService := newAuthServices()

	resp, err := authService.Signup(db, &dto.SignupRequest{
		Name:     "Old Name",
		Email:    "profile@test.io",
		Password: "supersecret1",
		Role:     "jobseeker",
	}, "")
	require.NoError(t, err)

	newName := "New Name"
	updated, err := userService.UpdateProfile(db, resp.User.ID, &dto.UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	got, err := userService.GetProfile(db, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "profile@test.io", got.Email)
}
