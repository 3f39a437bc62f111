package models

// MessageResponse is the generic `{"msg": ...}` body used for errors and
// plain acknowledgements.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// AuthResponse is returned by successful registration and login.
type AuthResponse struct {
	Msg   string     `json:"msg"`
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// PostResponse is returned by successful post creation.
type PostResponse struct {
	Msg  string `json:"msg"`
	Post Post   `json:"post"`
}
