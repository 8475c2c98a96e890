package services

import (
	"testing"

	"jobconnect/internal/config"
	"jobconnect/internal/models"
	"jobconnect/internal/repositories"
	"jobconnect/internal/services/dto"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
}

// setupTestDB opens a fresh in-memory database per test. FK constraints stay
// off, matching production: deleting a job must leave its applications behind.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Blog{},
		&models.BlogComment{},
		&models.SavedJob{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createEmployer(t *testing.T, db *gorm.DB, email string) *models.User {
	return createUser(t, db, "Employer "+email, email, models.UserRoleEmployer)
}

func createJobseeker(t *testing.T, db *gorm.DB, email string) *models.User {
	return createUser(t, db, "Seeker "+email, email, models.UserRoleJobseeker)
}

func createJob(t *testing.T, db *gorm.DB, jobService *JobService, employerID, title string) *dto.JobResponse {
	t.Helper()

	job, err := jobService.CreateJob(db, employerID, &dto.CreateJobRequest{
		Title:    title,
		Location: "Remote",
	})
	require.NoError(t, err)
	return job
}

func newTestServices() (*JobService, *ApplicationService, *BlogService, *JobseekerService) {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()
	blogRepo := repositories.NewBlogRepository()
	savedRepo := repositories.NewSavedJobRepository()

	jobService := NewJobService(jobRepo)
	appService := NewApplicationService(appRepo, jobRepo, userRepo, nil)
	blogService := NewBlogService(blogRepo, userRepo)
	seekerService := NewJobseekerService(savedRepo, jobRepo)
	return jobService, appService, blogService, seekerService
}
