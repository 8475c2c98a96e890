package dto

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	CompanyName *string `json:"companyName"`
}
