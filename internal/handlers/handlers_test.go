package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"jobconnect/internal/config"
	"jobconnect/internal/email"
	"jobconnect/internal/handlers"
	"jobconnect/internal/imageprocessor"
	"jobconnect/internal/middleware"
	"jobconnect/internal/models"
	"jobconnect/internal/routes"
	"jobconnect/internal/services"
	"jobconnect/internal/storage"
	"jobconnect/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type mockEmail struct{}

func (mockEmail) Send(to, subject, htmlBody string) error { return nil }

var _ email.Provider = mockEmail{}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedCVExts = []string{".pdf", ".doc", ".docx"}
	cfg.Upload.ImageMaxWidth = 1600
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	config.AppConfig = cfg

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
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

	store, err := storage.NewLocalStorage(storage.Config{BasePath: cfg.Storage.BasePath, BaseURL: cfg.Storage.BaseURL})
	require.NoError(t, err)

	container := services.NewServiceContainer(mockEmail{})
	base := handlers.NewBaseHandler(validator.New(), store, imageprocessor.NewProcessor(cfg.Upload.ImageMaxWidth, 85))

	appHandlers := &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, container.Auth, container.User),
		JobHandler:         handlers.NewJobHandler(base, container.Job),
		ApplicationHandler: handlers.NewApplicationHandler(base, container.Application),
		BlogHandler:        handlers.NewBlogHandler(base, container.Blog),
		JobseekerHandler:   handlers.NewJobseekerHandler(base, container.Jobseeker),
		FileHandler:        handlers.NewFileHandler(base),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.DBMiddleware(db))
	routes.RegisterRoutes(router, appHandlers)
	return router
}

func sendJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	parsed := map[string]interface{}{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func sendForm(t *testing.T, router *gin.Engine, method, path, token string, fields map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	parsed := map[string]interface{}{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func signup(t *testing.T, router *gin.Engine, name, emailAddr, role string) string {
	t.Helper()

	w, body := sendJSON(t, router, "POST", "/api/auth/signup", "", map[string]interface{}{
		"name":     name,
		"email":    emailAddr,
		"password": "supersecret1",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createJobHTTP(t *testing.T, router *gin.Engine, token, title string) string {
	t.Helper()

	w, body := sendJSON(t, router, "POST", "/api/jobs", token, map[string]interface{}{
		"title":    title,
		"location": "Remote",
	})
	require.Equal(t, http.StatusCreated, w.Code, "create job failed: %s", w.Body.String())

	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, body := sendJSON(t, router, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestAuthGuards(t *testing.T) {
	router := newTestRouter(t)

	// No token.
	w, _ := sendJSON(t, router, "POST", "/api/jobs", "", map[string]interface{}{"title": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong role: jobseekers cannot post jobs.
	seekerToken := signup(t, router, "Seeker", "seeker@test.io", "jobseeker")
	w, _ = sendJSON(t, router, "POST", "/api/jobs", seekerToken, map[string]interface{}{"title": "X"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Employers cannot apply.
	employerToken := signup(t, router, "Employer", "emp@test.io", "employer")
	jobID := createJobHTTP(t, router, employerToken, "Engineer")
	w, _ = sendForm(t, router, "POST", "/api/applications/"+jobID, employerToken, map[string]string{
		"role": "Engineer", "experience": "2 years",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestApplicationFlow(t *testing.T) {
	router := newTestRouter(t)

	employerToken := signup(t, router, "Employer", "emp@test.io", "employer")
	jobID := createJobHTTP(t, router, employerToken, "Backend Engineer")

	// Three jobseekers apply with varying experience.
	for i, experience := range []string{"2 years", "10 years", "Fresher"} {
		seekerToken := signup(t, router, fmt.Sprintf("Seeker %d", i), fmt.Sprintf("seeker%d@test.io", i), "jobseeker")
		w, _ := sendForm(t, router, "POST", "/api/applications/"+jobID, seekerToken, map[string]string{
			"role":       "Engineer",
			"experience": experience,
		})
		require.Equal(t, http.StatusCreated, w.Code, "apply failed: %s", w.Body.String())
	}

	// Employer sees them ranked by experience.
	w, body := sendJSON(t, router, "GET", "/api/applications/"+jobID+"?sort_by=experience", employerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 3, body["total"])

	applicants, ok := body["applicants"].([]interface{})
	require.True(t, ok)
	require.Len(t, applicants, 3)
	first := applicants[0].(map[string]interface{})
	assert.Equal(t, "10 years", first["experience"])
	last := applicants[2].(map[string]interface{})
	assert.Equal(t, "Fresher", last["experience"])

	// Shortlist the top applicant.
	appID, _ := first["id"].(string)
	require.NotEmpty(t, appID)
	w, _ = sendJSON(t, router, "PATCH", "/api/applications/status/"+appID, employerToken, map[string]interface{}{
		"status": "shortlisted",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Invalid status values are rejected.
	w, _ = sendJSON(t, router, "PATCH", "/api/applications/status/"+appID, employerToken, map[string]interface{}{
		"status": "hired",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// Private note.
	w, _ = sendJSON(t, router, "PATCH", "/api/applications/note/"+appID, employerToken, map[string]interface{}{
		"note": "call on Monday",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestApplicationFlow_DuplicateAndStopped(t *testing.T) {
	router := newTestRouter(t)

	employerToken := signup(t, router, "Employer", "emp@test.io", "employer")
	jobID := createJobHTTP(t, router, employerToken, "Engineer")
	seekerToken := signup(t, router, "Seeker", "seeker@test.io", "jobseeker")

	w, _ := sendForm(t, router, "POST", "/api/applications/"+jobID, seekerToken, map[string]string{
		"role": "Engineer", "experience": "1 year",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Applying twice conflicts.
	w, _ = sendForm(t, router, "POST", "/api/applications/"+jobID, seekerToken, map[string]string{
		"role": "Engineer", "experience": "1 year",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Applying to a stopped job fails.
	otherJobID := createJobHTTP(t, router, employerToken, "Closed Role")
	w, _ = sendJSON(t, router, "PATCH", "/api/jobs/"+otherJobID+"/stop", employerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = sendForm(t, router, "POST", "/api/applications/"+otherJobID, seekerToken, map[string]string{
		"role": "Engineer", "experience": "1 year",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestJobOwnershipOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	ownerToken := signup(t, router, "Owner", "owner@test.io", "employer")
	intruderToken := signup(t, router, "Intruder", "intruder@test.io", "employer")
	jobID := createJobHTTP(t, router, ownerToken, "Protected Job")

	// Non-owners get 404, not 403: existence stays hidden.
	w, _ := sendJSON(t, router, "PUT", "/api/jobs/"+jobID, intruderToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w, _ = sendJSON(t, router, "DELETE", "/api/jobs/"+jobID, intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	// Owner still sees the original title.
	w, body := sendJSON(t, router, "GET", "/api/jobs/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Protected Job", body["title"])
}

func TestBlogFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	employerToken := signup(t, router, "Author", "author@test.io", "employer")
	seekerToken := signup(t, router, "Reader", "reader@test.io", "jobseeker")

	w, body := sendForm(t, router, "POST", "/api/blogs", employerToken, map[string]string{
		"title":   "Hiring Trends",
		"content": "Long form content.",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	blogID, _ := body["id"].(string)
	require.NotEmpty(t, blogID)

	// Jobseekers cannot author blogs.
	w, _ = sendForm(t, router, "POST", "/api/blogs", seekerToken, map[string]string{
		"title": "X", "content": "Y",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// But they can like and comment.
	w, body = sendJSON(t, router, "POST", "/api/blogs/"+blogID+"/like", seekerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["liked"])

	w, _ = sendJSON(t, router, "POST", "/api/blogs/"+blogID+"/comment", seekerToken, map[string]interface{}{
		"text": "Nice write-up",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, body = sendJSON(t, router, "GET", "/api/blogs/"+blogID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["likeCount"])
	comments, _ := body["comments"].([]interface{})
	require.Len(t, comments, 1)
}

func TestSavedJobsOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	employerToken := signup(t, router, "Employer", "emp@test.io", "employer")
	seekerToken := signup(t, router, "Seeker", "seeker@test.io", "jobseeker")
	jobID := createJobHTTP(t, router, employerToken, "Engineer")

	w, body := sendJSON(t, router, "POST", "/api/jobseeker/saved-jobs/"+jobID, seekerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["saved"])

	w, body = sendJSON(t, router, "GET", "/api/jobseeker/saved-jobs", seekerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	// Toggling again removes the bookmark.
	w, body = sendJSON(t, router, "POST", "/api/jobseeker/saved-jobs/"+jobID, seekerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["saved"])

	// Employers have no saved-jobs surface.
	w, _ = sendJSON(t, router, "GET", "/api/jobseeker/saved-jobs", employerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
