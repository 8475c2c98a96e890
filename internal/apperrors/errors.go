package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services to the HTTP boundary.
// Code is machine-readable; Message is safe to surface to the client verbatim.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap keeps the underlying error in the chain.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - wrapper over the standard errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - wrapper over the standard errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	ErrEmailAlreadyExists = New(CodeAlreadyExists, "Email already exists", http.StatusConflict)
	ErrValidationFailed   = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Ownership-gated lookups report not-found on mismatch as well: a
	// non-owner must not be able to probe whether a resource exists.
	ErrJobNotFound         = New(CodeNotFound, "Job not found", http.StatusNotFound)
	ErrApplicationNotFound = New(CodeNotFound, "Application not found", http.StatusNotFound)
	ErrBlogNotFound        = New(CodeNotFound, "Blog not found", http.StatusNotFound)
	ErrUserNotFound        = New(CodeNotFound, "User not found", http.StatusNotFound)

	ErrJobNotActive       = New(CodeInvalidOperation, "Job is no longer accepting applications", http.StatusBadRequest)
	ErrAlreadyApplied     = New(CodeAlreadyExists, "You have already applied to this job", http.StatusConflict)
	ErrInvalidStatusValue = New(CodeValidationFailed, "Status must be one of: applied, shortlisted, rejected", http.StatusBadRequest)
	ErrEmptyComment       = New(CodeValidationFailed, "Comment text cannot be empty", http.StatusBadRequest)

	ErrFileTooLarge    = New(CodeFileTooLarge, "File size exceeds the allowed limit", http.StatusRequestEntityTooLarge)
	ErrInvalidFileType = New(CodeInvalidFileType, "The provided file type is not allowed", http.StatusUnsupportedMediaType)
)

// Helper factories

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewConflictError(message string) *AppError {
	return New(CodeAlreadyExists, message, http.StatusConflict)
}
