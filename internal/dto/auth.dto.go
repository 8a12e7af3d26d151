package dto

// RegisterRequest is the email/password signup body.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the email/password login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest carries a Google ID token from the sign-in widget.
type GoogleLoginRequest struct {
	Token string `json:"token"`
}

// TokenResponse carries the issued session JWT.
type TokenResponse struct {
	Token string `json:"token"`
}
