package models

// User roles
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

// User is an account that can authenticate against the API
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     string `json:"role"`
}

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
