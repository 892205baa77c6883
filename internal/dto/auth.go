package dto

// LoginRequest is the password login payload for admins.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AdminID string `json:"adminID"`
	Name    string `json:"name"`
	Token   string `json:"token"`
}
