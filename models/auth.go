package models

// SignupRequest creates a new parent account.
type SignupRequest struct {
	Username    string `json:"username" binding:"required,min=3"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// SigninRequest authenticates by username or email.
type SigninRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the signed-in profile.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
