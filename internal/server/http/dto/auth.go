package dto

// LoginRequest carries the operator password.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse returns the issued auth token.
type LoginResponse struct {
	Token string `json:"token"`
}
