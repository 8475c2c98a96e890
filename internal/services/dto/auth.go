package dto

type SignupRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required" validate:"email"`
	Password string `form:"password" json:"password" binding:"required"`
	Role     string `form:"role" json:"role" binding:"required" validate:"oneof=employer jobseeker"`

	// Employer-only field
	CompanyName string `form:"companyName" json:"companyName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	CompanyName     string `json:"companyName,omitempty"`
	VerificationDoc string `json:"verificationDoc,omitempty"`
}
