package dto

// LoginRequest authenticates a staff member.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token for subsequent API calls.
type LoginResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"displayName"`
}
