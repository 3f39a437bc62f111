package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePostRequest is the body of POST /api/posts. Author fields are not
// accepted from the client.
type CreatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
