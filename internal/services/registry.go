package services

import (
	"jobconnect/internal/email"
	"jobconnect/internal/repositories"
)

// ServiceContainer wires every service over the shared repository set.
type ServiceContainer struct {
	Auth        *AuthService
	User        *UserService
	Job         *JobService
	Application *ApplicationService
	Blog        *BlogService
	Jobseeker   *JobseekerService
}

func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()
	blogRepo := repositories.NewBlogRepository()
	savedRepo := repositories.NewSavedJobRepository()

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo),
		User:        NewUserService(userRepo),
		Job:         NewJobService(jobRepo),
		Application: NewApplicationService(appRepo, jobRepo, userRepo, emailProvider),
		Blog:        NewBlogService(blogRepo, userRepo),
		Jobseeker:   NewJobseekerService(savedRepo, jobRepo),
	}
}
