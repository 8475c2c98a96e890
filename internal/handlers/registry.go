package handlers

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	BlogHandler        *BlogHandler
	JobseekerHandler   *JobseekerHandler
	FileHandler        *FileHandler
}
